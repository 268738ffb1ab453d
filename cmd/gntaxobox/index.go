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
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gntaxobox/internal/ioenrich"
	"github.com/gnames/gntaxobox/internal/ioextract"
	"github.com/gnames/gntaxobox/internal/iofs"
	"github.com/gnames/gntaxobox/pkg/config"
	"github.com/spf13/cobra"
)

// getIndexCmd returns the index command.
func getIndexCmd() *cobra.Command {
	var dbPath string

	indexCmd := &cobra.Command{
		Use:   "index [dump.xml]",
		Short: "Build the taxonomy template index from a Wikipedia dump",
		Long: `Read a MediaWiki XML dump and store every 'Template:Taxonomy/...' page
in a SQLite index. Each page gives the rank, parent and extinct flag of
one taxon of the automatic taxonomy. 'gntaxobox extract --enrich' walks
the parents of a name in this index to classify automatic taxoboxes.

Existing entries with the same title are replaced. Only one process can
build the same index at a time.

Without a file argument, or with '-', the dump is read from STDIN.

Examples:
  # Build the default index in ~/.cache/gntaxobox
  gntaxobox index enwiki-pages-articles.xml

  # Build an index at a custom location
  gntaxobox index --db /data/taxonomy.sqlite enwiki-pages-articles.xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("db") {
				cfg.Update([]config.Option{config.OptEnrichDBPath(dbPath)})
			}
			err := runIndex(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	indexCmd.Flags().StringVar(
		&dbPath, "db", "",
		"path to the taxonomy index",
	)

	return indexCmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	in, err := iofs.Open(dumpPath(args))
	if err != nil {
		return err
	}
	defer closeInput(in)

	idx, err := ioenrich.Open(cfg.TaxonomyDBPath())
	if err != nil {
		return err
	}
	defer idx.Close()

	gn.Info("Building taxonomy index <em>%s</em>...", idx.Path())
	ix := ioextract.NewIndexer(idx,
		ioextract.OptInputSize(inputSize(in)),
		ioextract.OptProgress(true),
	)
	n, err := ix.Index(ctx, in)
	if err != nil {
		return err
	}

	gn.Info("Stored <em>%s</em> taxonomy entries", humanize.Comma(int64(n)))
	return nil
}
