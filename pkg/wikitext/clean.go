package wikitext

import (
	"regexp"
	"strings"
)

var (
	extinctRe   = regexp.MustCompile(`[†‡]`)
	nameNoiseRe = regexp.MustCompile(`[†‡"'„“+|<>\[\]]`)
	remarkRe    = regexp.MustCompile(`\( *(or [^()]+|\?|plant|animal) *\)`)
)

// CleanName renders a value and strips everything that cannot be part of
// a name. It reports whether an extinct mark (dagger) was found. Names
// that are "incertae sedis" are returned empty.
func CleanName(r Renderer, ctx Context, raw string) (string, bool) {
	extinct := extinctRe.MatchString(stripRefs(raw))
	s := r.Render(ctx, raw)
	extinct = extinct || extinctRe.MatchString(s)
	s = nameNoiseRe.ReplaceAllString(s, " ")
	s = remarkRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "?", " ")
	s = NormalizeSpace(s)
	if strings.EqualFold(s, "incertae sedis") {
		return "", extinct
	}
	return s, extinct
}

// CleanRaw renders a value and normalizes its white space.
func CleanRaw(r Renderer, ctx Context, raw string) string {
	return NormalizeSpace(r.Render(ctx, raw))
}

// NormalizeSpace trims s and collapses runs of white space into a single
// space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Cleaner binds a Renderer to the Context of one article.
type Cleaner struct {
	Renderer Renderer
	Context  Context
}

// NewCleaner returns a Cleaner using PlainRenderer.
func NewCleaner(ctx Context) Cleaner {
	return Cleaner{Renderer: PlainRenderer{}, Context: ctx}
}

// Flatten renders a value keeping its line breaks.
func (c Cleaner) Flatten(raw string) string {
	return c.Renderer.Flatten(c.Context, raw)
}

// CleanName is CleanName bound to the Cleaner.
func (c Cleaner) CleanName(raw string) (string, bool) {
	return CleanName(c.Renderer, c.Context, raw)
}

// CleanRaw is CleanRaw bound to the Cleaner.
func (c Cleaner) CleanRaw(raw string) string {
	return CleanRaw(c.Renderer, c.Context, raw)
}
