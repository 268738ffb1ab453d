package ioextract

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/gnames/gntaxobox/pkg/engine"
	"github.com/gnames/gntaxobox/pkg/taxon"
	"golang.org/x/sync/errgroup"
)

// Stats summarizes an extraction run.
type Stats struct {
	// Pages is the number of pages in the dump.
	Pages int
	// Articles is the number of main namespace pages that are not
	// redirects.
	Articles int
	// Records is the number of records sent to the sink.
	Records int
	// Duration is the time of the run.
	Duration time.Duration
}

// Extractor runs the engine over the articles of a dump.
type Extractor struct {
	eng  *engine.Engine
	sink Sink
	settings
}

// settings are shared by Extractor and Indexer.
type settings struct {
	jobs     int
	size     int64
	progress bool
}

// Option modifies an Extractor or an Indexer during creation.
type Option func(*settings)

// OptJobsNumber sets the number of concurrent workers.
func OptJobsNumber(i int) Option {
	return func(x *settings) {
		if i > 0 {
			x.jobs = i
		}
	}
}

// OptInputSize sets the size of the dump in bytes, if it is known. It
// enables the progress bar.
func OptInputSize(n int64) Option {
	return func(x *settings) {
		x.size = n
	}
}

// OptProgress enables progress output to a terminal.
func OptProgress(b bool) Option {
	return func(x *settings) {
		x.progress = b
	}
}

// New creates an Extractor that sends records of eng to sink.
func New(eng *engine.Engine, sink Sink, opts ...Option) *Extractor {
	res := &Extractor{
		eng:      eng,
		sink:     sink,
		settings: newSettings(opts),
	}
	return res
}

type result struct {
	id  string
	rec *taxon.Record
}

// Extract reads the dump from r and writes a record for every taxon
// article. The sink is closed at the end.
func (x *Extractor) Extract(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats
	start := time.Now()

	r, finish := x.reader(r, "Extracting ")
	defer finish()
	cnt := newCounter(x.progress && x.size <= 0)

	chIn := make(chan Page)
	chArticles := make(chan engine.Article)
	chOut := make(chan result)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		return ReadDump(gCtx, r, chIn)
	})

	g.Go(func() error {
		defer close(chArticles)
		defer cnt.done()
		for p := range chIn {
			stats.Pages++
			cnt.tick(stats.Pages)
			if p.NS != NSMain || p.Redirect {
				continue
			}
			stats.Articles++
			a := engine.Article{ID: p.ID, Title: p.Title, Text: p.Text}
			select {
			case <-gCtx.Done():
				for range chIn {
				}
				return gCtx.Err()
			case chArticles <- a:
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for range x.jobs {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return x.worker(gCtx, chArticles, chOut)
		})
	}

	go func() {
		wg.Wait()
		close(chOut)
	}()

	g.Go(func() error {
		for res := range chOut {
			if err := x.sink.Write(res.id, res.rec); err != nil {
				for range chOut {
				}
				return err
			}
			stats.Records++
		}
		return nil
	})

	err := g.Wait()
	if cerr := x.sink.Close(); err == nil && cerr != nil {
		err = ExtractSinkError("", cerr)
	}
	stats.Duration = time.Since(start)
	if err != nil {
		return stats, err
	}

	slog.Info("Extraction is done",
		"pages", stats.Pages,
		"articles", stats.Articles,
		"records", stats.Records,
		"duration", stats.Duration.String(),
	)
	return stats, nil
}

func (x *Extractor) worker(
	ctx context.Context,
	chIn <-chan engine.Article,
	chOut chan<- result,
) error {
	for a := range chIn {
		rec := x.eng.ProcessArticle(ctx, a)
		if rec == nil {
			continue
		}
		select {
		case <-ctx.Done():
			for range chIn {
			}
			return ctx.Err()
		case chOut <- result{id: a.ID, rec: rec}:
		}
	}
	return nil
}

func newSettings(opts []Option) settings {
	res := settings{jobs: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

func (s settings) reader(r io.Reader, prefix string) (io.Reader, func()) {
	if !s.progress {
		return r, func() {}
	}
	return newProgressBar(r, s.size, prefix)
}
