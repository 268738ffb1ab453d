// Package ioconfig reads config.yaml and GNTAXOBOX_* environment variables
// into a config.Config.
package ioconfig

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/gnames/gntaxobox/pkg/config"
	"github.com/spf13/viper"
)

// Load reads the config file of homeDir and applies environment variables
// on top of it. A missing file is not an error, built-in defaults are used
// instead.
func Load(homeDir string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetConfigType("yaml")

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, ConfigReadError(cfgPath, err)
	}

	var parsed config.Config
	if err = v.Unmarshal(&parsed); err != nil {
		return nil, ConfigUnmarshalError(cfgPath, err)
	}

	res := config.New()
	res.Update(parsed.ToOptions())
	res.Update([]config.Option{config.OptHomeDir(homeDir)})
	return res, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

func initEnvVars(v *viper.Viper) {
	// Bound keys match the fields of config.ToOptions().
	v.SetEnvPrefix("GNTAXOBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("lang", "GNTAXOBOX_LANG")
	v.BindEnv("footnotes", "GNTAXOBOX_FOOTNOTES")

	v.BindEnv("enrich.enabled", "GNTAXOBOX_ENRICH_ENABLED")
	v.BindEnv("enrich.db_path", "GNTAXOBOX_ENRICH_DB_PATH")

	v.BindEnv("log.level", "GNTAXOBOX_LOG_LEVEL")
	v.BindEnv("log.format", "GNTAXOBOX_LOG_FORMAT")
	v.BindEnv("log.destination", "GNTAXOBOX_LOG_DESTINATION")

	v.BindEnv("jobs_number", "GNTAXOBOX_JOBS_NUMBER")

	v.AutomaticEnv()
}
