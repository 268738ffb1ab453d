package ioenrich

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/gntaxobox/pkg/wikitext"
)

// TaxonomyPrefix starts the titles of pages that describe one node of the
// automatic taxonomy.
const TaxonomyPrefix = "Template:Taxonomy/"

// maxDepth limits the walk up the parent chain.
const maxDepth = 64

// Entry is one taxonomy page.
type Entry struct {
	// Key is the part of the page title after TaxonomyPrefix.
	Key string
	// Name is the displayed taxon name.
	Name string
	// Rank is the verbatim rank.
	Rank string
	// Parent is the key of the parent entry.
	Parent string
	// Extinct is the verbatim extinct flag.
	Extinct string
}

// IsTaxonomyPage is true for titles of taxonomy pages.
func IsTaxonomyPage(title string) bool {
	return strings.HasPrefix(title, TaxonomyPrefix) &&
		len(title) > len(TaxonomyPrefix)
}

// ParsePage reads the entry of a taxonomy page. The boolean is false if
// the page is not a taxonomy page or has neither rank nor parent.
func ParsePage(title, text string) (Entry, bool) {
	if !IsTaxonomyPage(title) {
		return Entry{}, false
	}
	key := NormalizeKey(strings.TrimPrefix(title, TaxonomyPrefix))

	for _, t := range wikitext.Templates(text) {
		rk, hasRank := t.Get("rank")
		parent, hasParent := t.Get("parent")
		if !hasRank && !hasParent {
			continue
		}
		res := Entry{
			Key:     key,
			Name:    displayName(key, t.Value("link")),
			Rank:    strings.TrimSpace(rk),
			Parent:  NormalizeKey(parent),
			Extinct: t.Value("extinct"),
		}
		return res, true
	}
	return Entry{}, false
}

// NormalizeKey turns a page name into its canonical form: underscores
// become spaces, whitespace is collapsed and the first letter is upper
// case.
func NormalizeKey(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.Join(strings.Fields(s), " ")
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// displayName returns the name shown for a link target. Disambiguation
// suffixes like "(genus)" or "(plant)" are dropped.
func displayName(key, link string) string {
	res := strings.TrimSpace(link)
	if strings.HasPrefix(res, "[[") {
		res = strings.TrimSuffix(strings.TrimPrefix(res, "[["), "]]")
		if _, label, ok := strings.Cut(res, "|"); ok && strings.TrimSpace(label) != "" {
			res = label
		}
	}
	if res == "" {
		res = key
		if i := strings.Index(res, "/"); i > 0 {
			res = res[:i]
		}
	}
	if i := strings.Index(res, " ("); i > 0 && strings.HasSuffix(res, ")") {
		res = res[:i]
	}
	res = strings.Trim(res, "'")
	return strings.TrimSpace(res)
}
