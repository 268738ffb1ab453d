package ioextract

import (
	"context"
	"io"

	"github.com/gnames/gntaxobox/internal/ioenrich"
	"golang.org/x/sync/errgroup"
)

// Indexer fills a taxonomy index from the template pages of a dump.
type Indexer struct {
	idx *ioenrich.Index
	settings
}

// NewIndexer creates an Indexer for idx. The number of jobs is ignored,
// pages are parsed as they are read.
func NewIndexer(idx *ioenrich.Index, opts ...Option) *Indexer {
	return &Indexer{idx: idx, settings: newSettings(opts)}
}

// Index reads the dump from r and stores every taxonomy page. It returns
// the number of stored entries.
func (ix *Indexer) Index(ctx context.Context, r io.Reader) (int, error) {
	r, finish := ix.reader(r, "Indexing ")
	defer finish()

	chIn := make(chan Page)
	chEntries := make(chan ioenrich.Entry)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		return ReadDump(gCtx, r, chIn)
	})

	g.Go(func() error {
		defer close(chEntries)
		for p := range chIn {
			if p.NS != NSTemplate || p.Redirect {
				continue
			}
			e, ok := ioenrich.ParsePage(p.Title, p.Text)
			if !ok {
				continue
			}
			select {
			case <-gCtx.Done():
				for range chIn {
				}
				return gCtx.Err()
			case chEntries <- e:
			}
		}
		return nil
	})

	var res int
	g.Go(func() error {
		var err error
		res, err = ix.idx.Ingest(gCtx, chEntries)
		return err
	})

	err := g.Wait()
	return res, err
}
