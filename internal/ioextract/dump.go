// Package ioextract reads MediaWiki XML dumps and turns their articles
// into taxon records, using all available cores.
package ioextract

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/dustin/go-wikiparse"
)

// Namespaces of pages used by the extraction.
const (
	NSMain     = 0
	NSTemplate = 10
)

// Page is one page of a dump with the text of its latest revision.
type Page struct {
	ID       string
	Title    string
	NS       int
	Redirect bool
	Text     string
}

func newPage(wp *wikiparse.Page) Page {
	res := Page{
		ID:       strconv.FormatUint(wp.ID, 10),
		Title:    wp.Title,
		NS:       int(wp.Ns),
		Redirect: wp.Redir.Title != "",
	}
	if n := len(wp.Revisions); n > 0 {
		res.Text = wp.Revisions[n-1].Text
	}
	return res
}

// ReadDump sends pages of a dump to ch in the order of the dump. It does
// not close ch. A dump without pages is not an error.
func ReadDump(ctx context.Context, r io.Reader, ch chan<- Page) error {
	p, err := wikiparse.NewParser(r)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return ExtractReadDumpError(err)
	}

	for {
		wp, err := p.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return ExtractReadDumpError(err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ch <- newPage(wp):
		}
	}
}
