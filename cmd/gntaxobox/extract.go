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
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gntaxobox/internal/ioenrich"
	"github.com/gnames/gntaxobox/internal/ioextract"
	"github.com/gnames/gntaxobox/internal/iofs"
	"github.com/gnames/gntaxobox/pkg/config"
	"github.com/gnames/gntaxobox/pkg/engine"
	"github.com/gnames/gntaxobox/pkg/parserpool"
	"github.com/spf13/cobra"
)

// reportSize is the number of unknown templates shown after extraction.
const reportSize = 10

type extractFlags struct {
	lang      string
	jobs      int
	footnotes bool
	enrich    bool
	dbPath    string
	rows      bool
	output    string
}

// getExtractCmd returns the extract command.
func getExtractCmd() *cobra.Command {
	var f extractFlags

	extractCmd := &cobra.Command{
		Use:   "extract [dump.xml]",
		Short: "Extract taxon records from a Wikipedia dump",
		Long: `Read a MediaWiki XML dump and write one JSON record per line for every
article with a taxobox. Redirects, pages of other namespaces and articles
with more than one taxobox are skipped.

Without a file argument, or with '-', the dump is read from STDIN.
Records go to STDOUT unless --output is given.

With --enrich, automatic taxoboxes and species boxes get their higher
classification from the taxonomy template index. Build the index first
with 'gntaxobox index'.

Examples:
  # Extract records from the English Wikipedia
  gntaxobox extract enwiki-pages-articles.xml > taxa.jsonl

  # German edition, read from a compressed dump
  bzcat dewiki-pages-articles.xml.bz2 | gntaxobox extract -l de

  # Write archive rows instead of records
  gntaxobox extract --rows -o rows.jsonl enwiki-pages-articles.xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExtract(cmd, args, f)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	extractCmd.Flags().StringVarP(
		&f.lang, "lang", "l", "",
		"language edition of the dump (en, de, fr...)",
	)
	extractCmd.Flags().IntVarP(
		&f.jobs, "jobs", "j", 0,
		"number of concurrent workers",
	)
	extractCmd.Flags().BoolVarP(
		&f.footnotes, "footnotes", "f", false,
		"render citation templates inside values",
	)
	extractCmd.Flags().BoolVarP(
		&f.enrich, "enrich", "e", false,
		"classify automatic taxoboxes with the taxonomy index",
	)
	extractCmd.Flags().StringVar(
		&f.dbPath, "db", "",
		"path to the taxonomy index",
	)
	extractCmd.Flags().BoolVarP(
		&f.rows, "rows", "r", false,
		"write archive rows instead of records",
	)
	extractCmd.Flags().StringVarP(
		&f.output, "output", "o", "",
		"output file (default STDOUT)",
	)

	return extractCmd
}

// flagOptions converts flags given on the command line to config options.
func flagOptions(cmd *cobra.Command, f extractFlags) []config.Option {
	var res []config.Option
	fl := cmd.Flags()
	if fl.Changed("lang") {
		res = append(res, config.OptLang(f.lang))
	}
	if fl.Changed("jobs") {
		res = append(res, config.OptJobsNumber(f.jobs))
	}
	if fl.Changed("footnotes") {
		res = append(res, config.OptFootnotes(f.footnotes))
	}
	if fl.Changed("enrich") {
		res = append(res, config.OptEnrichEnabled(f.enrich))
	}
	if fl.Changed("db") {
		res = append(res, config.OptEnrichDBPath(f.dbPath))
	}
	return res
}

func runExtract(cmd *cobra.Command, args []string, f extractFlags) error {
	ctx := cmd.Context()
	cfg.Update(flagOptions(cmd, f))

	path := dumpPath(args)
	in, err := iofs.Open(path)
	if err != nil {
		return err
	}
	defer closeInput(in)

	var out io.Writer = os.Stdout
	if f.output != "" {
		fout, err := os.Create(f.output)
		if err != nil {
			return iofs.CreateFileError(f.output, err)
		}
		defer fout.Close()
		out = fout
	}

	var opts []engine.Option
	if cfg.Enrich.Enabled {
		en, closeEnricher, err := newEnricher(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeEnricher()
		opts = append(opts, engine.OptEnricher(en))
	}
	eng := engine.New(cfg, opts...)

	var sink ioextract.Sink = ioextract.NewJSONSink(out)
	if f.rows {
		sink = ioextract.NewRowsSink(out)
	}

	x := ioextract.New(eng, sink,
		ioextract.OptJobsNumber(cfg.JobsNumber),
		ioextract.OptInputSize(inputSize(in)),
		ioextract.OptProgress(true),
	)

	gn.Info("Extracting taxa from <em>%s</em> Wikipedia...", cfg.Lang)
	stats, err := x.Extract(ctx, in)
	if err != nil {
		return err
	}

	gn.Info(
		"Extracted <em>%s</em> records from %s articles (%s pages) in %s",
		humanize.Comma(int64(stats.Records)),
		humanize.Comma(int64(stats.Articles)),
		humanize.Comma(int64(stats.Pages)),
		stats.Duration.Round(time.Millisecond).String(),
	)
	reportUnknown(eng)
	return nil
}

func newEnricher(
	ctx context.Context,
	cfg *config.Config,
) (*ioenrich.Enricher, func(), error) {
	idx, err := ioenrich.Open(cfg.TaxonomyDBPath())
	if err != nil {
		return nil, nil, err
	}

	n, err := idx.Count(ctx)
	if err != nil {
		_ = idx.Close()
		return nil, nil, err
	}
	if n == 0 {
		gn.Warn(
			"Taxonomy index <em>%s</em> is empty, run 'gntaxobox index' first",
			idx.Path(),
		)
	}

	pool := parserpool.New(nomcode.Botanical, cfg.JobsNumber)
	closer := func() {
		pool.Close()
		if err := idx.Close(); err != nil {
			slog.Warn("Cannot close taxonomy index", "error", err)
		}
	}
	return ioenrich.NewEnricher(idx, pool), closer, nil
}

func reportUnknown(eng *engine.Engine) {
	tmpls := eng.UnknownTemplates()
	for i, v := range tmpls {
		if i < reportSize {
			gn.Info("  unknown template <em>%s</em>: %s", v.Name, humanize.Comma(int64(v.Count)))
		}
		slog.Info("Unknown template", "name", v.Name, "count", v.Count)
	}
	for _, v := range eng.UnknownKeys() {
		slog.Info("Unknown taxobox parameter", "key", v.Name, "count", v.Count)
	}
}

func dumpPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// inputSize returns the size of a regular file or 0.
func inputSize(f *os.File) int64 {
	if f == os.Stdin {
		return 0
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return 0
	}
	return info.Size()
}

func closeInput(f *os.File) {
	if f == os.Stdin {
		return
	}
	if err := f.Close(); err != nil {
		slog.Warn("Cannot close dump", "file", f.Name(), "error", err)
	}
}
