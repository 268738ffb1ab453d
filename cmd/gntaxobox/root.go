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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxobox/internal/ioconfig"
	"github.com/gnames/gntaxobox/internal/iofs"
	"github.com/gnames/gntaxobox/internal/iologger"
	app "github.com/gnames/gntaxobox/pkg"
	"github.com/gnames/gntaxobox/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logOut io.Closer
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gntaxobox",
		Short: "GNtaxobox extracts taxonomic records from Wikipedia taxoboxes",
		Long: `GNtaxobox reads a MediaWiki XML dump of a Wikipedia language edition
and resolves the taxobox templates of its articles into taxonomic records:
scientific name, rank, classification, synonyms, vernacular names, fossil
range, conservation status and media.

The tool provides two commands:
  - extract: write a record for every taxon article of a dump
  - index: build the taxonomy template index used by automatic taxoboxes

Configuration precedence (highest to lowest):
  1. CLI flags (--lang, --jobs, etc.)
  2. Environment variables (GNTAXOBOX_*)
  3. Config file (~/.config/gntaxobox/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (enrich.enabled → GNTAXOBOX_ENRICH_ENABLED).

  Examples:
    GNTAXOBOX_LANG              Language edition of the dump (en, de...)
    GNTAXOBOX_FOOTNOTES         Render citation templates
    GNTAXOBOX_ENRICH_ENABLED    Use the taxonomy template index
    GNTAXOBOX_JOBS_NUMBER       Number of concurrent workers
    GNTAXOBOX_LOG_LEVEL         Log level (debug/info/warn/error)`,
		Version:           fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		PersistentPreRunE: bootstrap,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logOut != nil {
				return logOut.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gntaxobox version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gntaxobox")

	rootCmd.AddCommand(getExtractCmd())
	rootCmd.AddCommand(getIndexCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	logOut, err = iologger.Init(config.LogDir(homeDir), cfg.Log, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))
	return nil
}
