package wikitext

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// LanguageLink is an interlanguage link like [[de:Puma (Gattung)]].
type LanguageLink struct {
	Lang string
	Text string
}

var langLinkRe = regexp.MustCompile(`\[\[([a-z]{2,3}):([^\]\[]+)\]\]`)

// LanguageLinks returns interlanguage links of an article. Prefixes that
// are not ISO 639 language codes are skipped.
func LanguageLinks(text string) []LanguageLink {
	var res []LanguageLink
	for _, m := range langLinkRe.FindAllStringSubmatch(text, -1) {
		if _, err := language.ParseBase(m[1]); err != nil {
			continue
		}
		txt := strings.TrimSpace(m[2])
		if txt == "" {
			continue
		}
		res = append(res, LanguageLink{Lang: m[1], Text: txt})
	}
	return res
}
