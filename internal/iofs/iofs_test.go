package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxobox/pkg/errcode"
	"github.com/gnames/gntaxobox/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs verifies that all directories are created with 0755
// permissions and that repeated calls succeed.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gntaxobox"),
		filepath.Join(tmpDir, ".cache", "gntaxobox"),
		filepath.Join(tmpDir, ".local", "share", "gntaxobox", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), v)
	}
}

// TestTouchDir verifies creation of nested directories and that existing
// ones are left alone.
func TestTouchDir(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")
	require.NoError(t, touchDir(newDir))
	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	existing := filepath.Join(tmpDir, "existing")
	require.NoError(t, os.MkdirAll(existing, 0700))
	require.NoError(t, touchDir(existing))
	info, err = os.Stat(existing)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

// TestEnsureConfigFile verifies that the embedded template is written
// once and never overwrites user changes.
func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "gntaxobox", "config.yaml")
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, templates.ConfigYAML, string(content))

	custom := "# Custom config\nlang: de\n"
	require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

// TestEnsureConfigFileNoDir verifies the error when the config directory
// is missing.
func TestEnsureConfigFileNoDir(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "nohome"))
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CopyFileError, gnErr.Code)
}

// TestConfigYAML verifies the embedded template has all sections.
func TestConfigYAML(t *testing.T) {
	for _, v := range []string{"lang:", "footnotes:", "enrich:", "log:", "jobs_number:"} {
		assert.Contains(t, templates.ConfigYAML, v)
	}
}

// TestOpen verifies reading from files and standard input.
func TestOpen(t *testing.T) {
	for _, v := range []string{"", "-"} {
		f, err := Open(v)
		require.NoError(t, err)
		assert.Equal(t, os.Stdin, f)
	}

	path := filepath.Join(t.TempDir(), "dump.xml")
	require.NoError(t, os.WriteFile(path, []byte("<mediawiki/>"), 0644))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, path, f.Name())

	_, err = Open(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}
