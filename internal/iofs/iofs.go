// Package iofs prepares the directories and files GNtaxobox keeps in
// the home directory of a user.
package iofs

import (
	"os"

	"github.com/gnames/gntaxobox/pkg/config"
	"github.com/gnames/gntaxobox/pkg/templates"
)

// EnsureDirs creates config, cache and log directories if they are
// missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// Open opens a file for reading. Empty path or "-" means standard input.
func Open(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return f, nil
}
