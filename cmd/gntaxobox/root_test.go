/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gntaxobox/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootVersion(t *testing.T) {
	for _, v := range []string{"--version", "-V"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{v})

		require.NoError(t, cmd.Execute(), v)
		assert.Contains(t, buf.String(), "v1.2.3", v)
		assert.Contains(t, buf.String(), "abc123", v)
		assert.NotContains(t, buf.String(), "gntaxobox version", v)
	}
}

func TestRootHelp(t *testing.T) {
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	help := buf.String()
	for _, v := range []string{"GNtaxobox", "extract", "index", "GNTAXOBOX_LANG"} {
		assert.Contains(t, help, v)
	}
}

func TestRootSettings(t *testing.T) {
	cmd := getRootCmd()
	assert.NotNil(t, cmd.PersistentPreRunE)
	assert.NotNil(t, cmd.RunE)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
	assert.NotSame(t, cmd, getRootCmd())
}

func TestRootInvalidCommand(t *testing.T) {
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"nonexistent-command"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestExtractFlags(t *testing.T) {
	cmd := getExtractCmd()
	tests := []struct {
		name, short, def string
	}{
		{"lang", "l", ""},
		{"jobs", "j", "0"},
		{"footnotes", "f", "false"},
		{"enrich", "e", "false"},
		{"db", "", ""},
		{"rows", "r", "false"},
		{"output", "o", ""},
	}

	for _, v := range tests {
		fl := cmd.Flags().Lookup(v.name)
		require.NotNil(t, fl, v.name)
		assert.Equal(t, v.short, fl.Shorthand, v.name)
		assert.Equal(t, v.def, fl.DefValue, v.name)
	}
}

func TestFlagOptions(t *testing.T) {
	assert := assert.New(t)
	cmd := getExtractCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-l", "de", "-j", "3", "--enrich"}))

	var f extractFlags
	f.lang, _ = cmd.Flags().GetString("lang")
	f.jobs, _ = cmd.Flags().GetInt("jobs")
	f.enrich, _ = cmd.Flags().GetBool("enrich")

	c := config.New()
	c.Update([]config.Option{config.OptFootnotes(true)})
	c.Update(flagOptions(cmd, f))
	assert.Equal("de", c.Lang)
	assert.Equal(3, c.JobsNumber)
	assert.True(c.Enrich.Enabled)
	assert.True(c.Footnotes, "flags not given keep their config value")
}

func TestInputSize(t *testing.T) {
	assert.Equal(t, int64(0), inputSize(os.Stdin))

	path := filepath.Join(t.TempDir(), "dump.xml")
	require.NoError(t, os.WriteFile(path, []byte("<mediawiki/>"), 0644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, int64(12), inputSize(f))
}

func TestDumpPath(t *testing.T) {
	assert.Equal(t, "", dumpPath(nil))
	assert.Equal(t, "dump.xml", dumpPath([]string{"dump.xml"}))
}
