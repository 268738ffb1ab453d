package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gntaxobox"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gntaxobox by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gntaxobox by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gntaxobox/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gntaxobox/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// TaxonomyDBPath returns the path of the taxonomy template index.
// It is the configured Enrich.DBPath or the default file in the cache
// directory.
func (c *Config) TaxonomyDBPath() string {
	if c.Enrich.DBPath != "" {
		return c.Enrich.DBPath
	}
	return filepath.Join(CacheDir(c.HomeDir), "taxonomy.sqlite")
}
