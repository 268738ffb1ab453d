// Package listparse splits list-like template values into items.
//
// Synonyms in taxoboxes come in four encodings: a nested species or taxon
// list template, '*' bullets, <br> separated lines, or a single name.
package listparse

import (
	"regexp"
	"strconv"
	"strings"
)

// Resolver gives access to the rendering of nested markup.
type Resolver interface {
	// Flatten renders nested templates and keeps <br/> line breaks.
	Flatten(raw string) string
	// CleanName turns a fragment into a plain name, reporting an extinct
	// mark. An empty result means there is no name.
	CleanName(raw string) (string, bool)
}

var (
	speciesListRe = regexp.MustCompile(`(?i)\{\{(species|taxon)[ _-]?list`)
	brRe          = regexp.MustCompile(`(?i)<br */?>`)
)

// Split returns raw fragments of a synonym value, before cleaning.
func Split(raw string, r Resolver) []string {
	raw = strings.TrimSpace(raw)
	if speciesListRe.MatchString(raw) {
		raw = r.Flatten(raw)
	}
	switch {
	case strings.Contains(raw, "*"):
		return nonEmpty(strings.Split(raw, "*"))
	case brRe.MatchString(raw):
		return brRe.Split(raw, -1)
	default:
		return []string{raw}
	}
}

// Synonyms splits and cleans a synonym value. Empty fragments are dropped,
// duplicates are kept.
func Synonyms(raw string, r Resolver) []string {
	var res []string
	for _, v := range Split(raw, r) {
		if syn, _ := r.CleanName(v); syn != "" {
			res = append(res, syn)
		}
	}
	return res
}

func nonEmpty(ss []string) []string {
	res := ss[:0]
	for _, v := range ss {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// Numbered collects positional parameters "1", "2", ... in order. Gaps
// are skipped while items keep appearing within the next ten positions.
func Numbered(get func(key string) (string, bool)) []string {
	var res []string
	limit := 10
	for i := 1; i <= limit; i++ {
		v, ok := get(strconv.Itoa(i))
		if !ok {
			continue
		}
		res = append(res, v)
		if i == limit {
			limit += 10
		}
	}
	return res
}

// Pairs joins values of a species list template: a name is followed by
// its authority, and pairs are separated by <br/>.
func Pairs(values []string) string {
	var sb strings.Builder
	for i, v := range values {
		sb.WriteString(v)
		if i%2 == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString("<br/>")
		}
	}
	return sb.String()
}

// PlainList converts a numbered list inside plainlist or flatlist to
// bullets.
func PlainList(body string) string {
	return strings.ReplaceAll(body, "#", "*")
}
