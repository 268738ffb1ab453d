package wikitext

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/gnames/gntaxobox/pkg/listparse"
)

// Context carries read-only rendering options of one article.
type Context struct {
	// Footnotes enables rendering of citation templates.
	Footnotes bool
	// OnUnknown is called with the normalized name of every template the
	// renderer does not know. It can be nil.
	OnUnknown func(name string)
}

// Renderer resolves nested markup of a single field value.
type Renderer interface {
	// Render returns plain text. Line breaks become new lines.
	Render(ctx Context, text string) string
	// Flatten is like Render, but keeps <br/> line breaks and list bullets
	// for list splitting.
	Flatten(ctx Context, text string) string
}

// PlainRenderer is a stateless Renderer safe for concurrent use.
type PlainRenderer struct{}

var _ Renderer = PlainRenderer{}

// Render implements Renderer.
func (PlainRenderer) Render(ctx Context, text string) string {
	return strings.TrimSpace(finish(expand(ctx, stripRefs(text)), false))
}

// Flatten implements Renderer.
func (PlainRenderer) Flatten(ctx Context, text string) string {
	return strings.TrimSpace(finish(expand(ctx, stripRefs(text)), true))
}

// boxTemplates carry taxon data. They are handled by dialects and never
// expanded inside values.
var boxTemplates = map[string]struct{}{
	"taxobox":          {},
	"automatictaxobox": {},
	"fichadetaxón":     {},
	"fichadetaxon":     {},
	"speciesbox":       {},
	"subspeciesbox":    {},
	"infraspeciesbox":  {},
	"listen":           {},
	"taxonbar":         {},
}

var nameRe = regexp.MustCompile(`[ _-]`)

func normalizeName(name string) string {
	return nameRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")
}

var refRe = regexp.MustCompile(
	`(?is)<\s*ref\b[^>]*/\s*>|<\s*ref\b[^>]*>.*?<\s*/\s*ref\s*>`,
)

func stripRefs(text string) string {
	return refRe.ReplaceAllString(StripComments(text), " ")
}

func expand(ctx Context, text string) string {
	tt := scan(text)
	if len(tt) == 0 {
		return text
	}
	var sb strings.Builder
	var last int
	for _, t := range tt {
		sb.WriteString(text[last:t.Start])
		sb.WriteString(expandTemplate(ctx, t))
		last = t.End
	}
	sb.WriteString(text[last:])
	return sb.String()
}

func expandTemplate(ctx Context, t Template) string {
	name := normalizeName(t.Name)
	if _, ok := boxTemplates[name]; ok {
		return ""
	}
	arg := func(key string) string {
		return strings.TrimSpace(expand(ctx, t.Value(key)))
	}

	switch name {
	case "hybrid":
		return " × "
	case "dagger":
		return "†"
	case "fossilrange", "geologicalrange", "longfossilrange":
		return fossilRange(arg)
	case "cite", "citeweb", "citebook", "citejournal":
		if !ctx.Footnotes {
			return ""
		}
		return citation(t, arg)
	case "plainlist", "flatlist":
		v, _ := t.Get("1")
		return listparse.PlainList(expand(ctx, v))
	case "quote":
		return quote(t, arg)
	case "convert":
		return arg("1") + " " + arg("2")
	case "collapsiblelist":
		items := listparse.Numbered(t.Get)
		for i := range items {
			items[i] = expand(ctx, items[i])
		}
		return strings.Join(items, " <br/>")
	case "specieslist", "taxonlist":
		items := t.Positional()
		for i := range items {
			items[i] = expand(ctx, items[i])
		}
		return listparse.Pairs(items)
	}

	if ctx.OnUnknown != nil {
		ctx.OnUnknown(name)
	}
	return ""
}

// fossilRange renders {{fossil range|from|to|period}}.
func fossilRange(arg func(string) string) string {
	var sb strings.Builder
	period := arg("3")
	if period != "" {
		sb.WriteString(period + " (")
	}
	sb.WriteString(arg("1"))
	if to := arg("2"); to != "" {
		if _, err := strconv.ParseFloat(to, 64); err == nil {
			sb.WriteString("-" + to + " Ma")
		} else {
			sb.WriteString(" to " + to)
		}
	}
	if period != "" {
		sb.WriteString(")")
	}
	return sb.String()
}

func quote(t Template, arg func(string) string) string {
	if _, ok := t.Get("1"); !ok {
		return ""
	}
	res := ` "` + arg("1") + `"`
	if _, ok := t.Get("2"); !ok {
		return res
	}
	res += " (" + arg("2")
	if _, ok := t.Get("3"); ok {
		res += " in " + arg("3")
	}
	return res + ")"
}

var (
	citeSuffixes = []string{"", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	citeLast     = []string{"author", "authors", "last"}
)

// citation renders cite templates as
// "authors (date): title, work, volume(issue): pp. pages. publisher".
// Citations without a title render to nothing.
func citation(t Template, arg func(string) string) string {
	title := arg("title")
	if title == "" {
		return ""
	}
	first := func(keys ...string) string {
		for _, k := range keys {
			if v := arg(k); v != "" {
				return v
			}
		}
		return ""
	}

	var authors []string
	for _, sfx := range citeSuffixes {
		for _, l := range citeLast {
			if _, ok := t.Get(l + sfx); !ok {
				continue
			}
			last, given := arg(l+sfx), arg("first"+sfx)
			switch {
			case last != "" && given != "":
				authors = append(authors, last+", "+given)
			case last != "" || given != "":
				authors = append(authors, last+given)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(authors, "; "))
	if date := first("date", "year"); date != "" {
		if sb.Len() > 0 {
			sb.WriteString(" (" + date + ")")
		} else {
			sb.WriteString(date)
		}
	}
	if sb.Len() > 0 {
		sb.WriteString(": ")
	}
	sb.WriteString(title)
	work := first("work", "journal")
	if work != "" {
		sb.WriteString(", " + work)
	}
	if v := arg("volume"); v != "" {
		sb.WriteString(", " + v)
	}
	if v := arg("issue"); v != "" {
		sb.WriteString("(" + v + ")")
	}
	if v := arg("edition"); v != "" && work == "" {
		sb.WriteString("(" + v + ")")
	}
	if v := first("page", "pages"); v != "" {
		sb.WriteString(": pp. " + v)
	}
	if v := arg("publisher"); v != "" {
		sb.WriteString(". " + v)
	}
	return sb.String()
}

const brMark = "\x00"

var (
	linkRe    = regexp.MustCompile(`\[\[([^\[\]|]*)(\|[^\[\]]*)?\]\]`)
	extLinkRe = regexp.MustCompile(`\[(?:https?:)?//[^\s\]]+(?:\s+([^\]]*))?\]`)
	boldRe    = regexp.MustCompile(`'{2,}`)
	brRe      = regexp.MustCompile(`(?i)<\s*br\s*/?\s*>`)
	tagRe     = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)
	bulletRe  = regexp.MustCompile(`(?m)^[ \t]*[*#:;]+[ \t]*`)
	langRe    = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]+)*$`)
)

// hiddenNamespaces are link prefixes that do not show up in text.
var hiddenNamespaces = map[string]struct{}{
	"file":      {},
	"image":     {},
	"category":  {},
	"datei":     {},
	"bild":      {},
	"kategorie": {},
	"fichier":   {},
	"catégorie": {},
	"archivo":   {},
	"imagen":    {},
	"categoría": {},
}

func finish(text string, flat bool) string {
	text = links(text)
	text = extLinkRe.ReplaceAllString(text, "$1")
	text = boldRe.ReplaceAllString(text, "")
	text = brRe.ReplaceAllString(text, brMark)
	text = tagRe.ReplaceAllString(text, "")
	if !flat {
		text = bulletRe.ReplaceAllString(text, "")
	}
	text = html.UnescapeString(text)
	if flat {
		return strings.ReplaceAll(text, brMark, "<br/>")
	}
	return strings.ReplaceAll(text, brMark, "\n")
}

// links resolves internal links to their display text, innermost first.
func links(text string) string {
	for strings.Contains(text, "[[") {
		next := linkRe.ReplaceAllStringFunc(text, linkText)
		if next == text {
			break
		}
		text = next
	}
	return text
}

func linkText(s string) string {
	m := linkRe.FindStringSubmatch(s)
	target := strings.TrimSpace(m[1])
	if strings.HasPrefix(target, ":") {
		target = strings.TrimPrefix(target, ":")
	} else if ns, _, ok := strings.Cut(target, ":"); ok {
		ns = strings.ToLower(strings.TrimSpace(ns))
		if _, hide := hiddenNamespaces[ns]; hide || langRe.MatchString(ns) {
			return ""
		}
	}
	if m[2] == "" {
		return target
	}
	label := strings.TrimPrefix(m[2], "|")
	if label == "" {
		// pipe trick: [[Puma (genus)|]] shows Puma
		if i := strings.Index(target, " ("); i > 0 {
			return target[:i]
		}
		return target
	}
	return label
}
