// Package engine resolves the taxobox templates of an article into one
// taxon.Record.
//
// An Engine is shared by all workers of a run. It keeps immutable
// settings and the telemetry of unknown templates and parameter keys.
// Each article is processed by its own Session, which is not safe for
// concurrent use.
package engine

import (
	"cmp"
	"context"
	"log/slog"
	"regexp"
	"slices"
	"sync"

	"github.com/gnames/gntaxobox/pkg/config"
	"github.com/gnames/gntaxobox/pkg/dialect"
	"github.com/gnames/gntaxobox/pkg/enrich"
	"github.com/gnames/gntaxobox/pkg/taxon"
	"github.com/gnames/gntaxobox/pkg/wikitext"
)

// Engine creates sessions and collects telemetry.
type Engine struct {
	lang      string
	footnotes bool
	renderer  wikitext.Renderer
	enricher  enrich.Enricher

	mu        sync.Mutex
	templates map[string]int
	keys      map[string]int
}

// Option modifies an Engine during creation.
type Option func(*Engine)

// OptRenderer replaces the default wikitext.PlainRenderer.
func OptRenderer(r wikitext.Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// OptEnricher sets the classification source of automatic taxoboxes.
// Without it automatic boxes only get what their parameters say.
func OptEnricher(en enrich.Enricher) Option {
	return func(e *Engine) {
		e.enricher = en
	}
}

// New creates an Engine for the language edition given in cfg.
func New(cfg *config.Config, opts ...Option) *Engine {
	res := &Engine{
		lang:      cfg.Lang,
		footnotes: cfg.Footnotes,
		renderer:  wikitext.PlainRenderer{},
		templates: make(map[string]int),
		keys:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Lang returns the language edition of the engine.
func (e *Engine) Lang() string {
	return e.lang
}

// Article is one page of a dump.
type Article struct {
	ID    string
	Title string
	Text  string
}

var redirectRe = regexp.MustCompile(`(?i)^.REDIRECT`)

// ProcessArticle scans the markup of an article and returns its record.
// The result is nil for redirects, for articles without a taxobox and for
// articles with more than one taxobox.
func (e *Engine) ProcessArticle(ctx context.Context, a Article) *taxon.Record {
	if redirectRe.MatchString(a.Text) {
		return nil
	}
	text := wikitext.StripComments(a.Text)
	s := e.NewSession(a.Title)
	for _, t := range wikitext.Templates(text) {
		if _, ok := dialect.Lookup(e.lang, t.Name); ok {
			s.HandleTemplate(ctx, t.Name, t.Params)
			continue
		}
		s.observe(text[t.Start:t.End])
	}
	for _, v := range wikitext.LanguageLinks(text) {
		s.AddLanguageLink(v.Lang, v.Text)
	}
	return s.Finish()
}

// Count is a telemetry entry.
type Count struct {
	Name  string
	Count int
}

// UnknownTemplates returns templates without a rendering rule found on
// taxon pages, the most frequent first.
func (e *Engine) UnknownTemplates() []Count {
	e.mu.Lock()
	defer e.mu.Unlock()
	return sorted(e.templates)
}

// UnknownKeys returns taxobox parameter keys no dialect knows, the most
// frequent first.
func (e *Engine) UnknownKeys() []Count {
	e.mu.Lock()
	defer e.mu.Unlock()
	return sorted(e.keys)
}

func (e *Engine) countTemplate(name string) {
	e.mu.Lock()
	e.templates[name]++
	e.mu.Unlock()
}

func (e *Engine) countKey(key, val string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.keys[key] == 0 {
		slog.Debug("Unknown taxobox parameter", "key", key, "value", val)
	}
	e.keys[key]++
}

func sorted(m map[string]int) []Count {
	res := make([]Count, 0, len(m))
	for k, v := range m {
		res = append(res, Count{Name: k, Count: v})
	}
	slices.SortFunc(res, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return res
}
