// Package wikitext tokenizes template invocations of wiki markup and
// renders field values to plain text.
//
// The renderer covers the handful of templates that appear inside
// taxobox values: hybrid and dagger signs, fossil ranges, species lists,
// plain and collapsible lists, conversions, quotes and citations. Any
// other template renders to nothing and is reported to the caller.
package wikitext

import (
	"regexp"
	"strconv"
	"strings"
)

// Param is one parameter of a template invocation. Positional parameters
// get keys "1", "2", ... in order of appearance.
type Param struct {
	Key   string
	Value string
}

// Template is a top-level template invocation.
type Template struct {
	Name   string
	Params []Param
	// Start and End are byte offsets of the invocation, including braces,
	// in the text it was scanned from.
	Start, End int
}

// Get returns the value of a parameter. When a key repeats, the last
// value wins.
func (t Template) Get(key string) (string, bool) {
	var res string
	var ok bool
	for _, v := range t.Params {
		if v.Key == key {
			res, ok = v.Value, true
		}
	}
	return res, ok
}

// Value returns the trimmed value of a parameter or an empty string.
func (t Template) Value(key string) string {
	v, _ := t.Get(key)
	return strings.TrimSpace(v)
}

// Positional returns positional parameters in order.
func (t Template) Positional() []string {
	var res []string
	for i := 1; ; i++ {
		v, ok := t.Get(strconv.Itoa(i))
		if !ok {
			return res
		}
		res = append(res, v)
	}
}

var commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)

// StripComments removes HTML comments.
func StripComments(text string) string {
	return commentRe.ReplaceAllString(text, "")
}

// Templates returns top-level template invocations of text with comments
// removed. Offsets refer to the text without comments.
func Templates(text string) []Template {
	return scan(StripComments(text))
}

func scan(text string) []Template {
	var res []Template
	for i := 0; i < len(text)-1; {
		if text[i] != '{' || text[i+1] != '{' {
			i++
			continue
		}
		end := closing(text, i)
		if end < 0 {
			i += 2
			continue
		}
		res = append(res, parse(text[i+2:end-2], i, end))
		i = end
	}
	return res
}

// closing returns the offset right after the braces that close the
// invocation opened at i, or -1 if it is never closed.
func closing(text string, i int) int {
	var depth int
	for j := i; j < len(text)-1; {
		switch {
		case text[j] == '{' && text[j+1] == '{':
			depth++
			j += 2
		case text[j] == '}' && text[j+1] == '}':
			depth--
			j += 2
			if depth == 0 {
				return j
			}
		default:
			j++
		}
	}
	return -1
}

func parse(body string, start, end int) Template {
	parts := splitTop(body)
	res := Template{
		Name:  strings.TrimSpace(parts[0]),
		Start: start,
		End:   end,
	}
	var n int
	for _, p := range parts[1:] {
		if k, v, ok := splitKey(p); ok {
			res.Params = append(res.Params, Param{Key: k, Value: v})
			continue
		}
		n++
		res.Params = append(res.Params, Param{Key: strconv.Itoa(n), Value: p})
	}
	return res
}

// splitTop splits the body of an invocation at pipes that are not
// nested in templates or links.
func splitTop(body string) []string {
	var res []string
	var tmpl, link, last int
	for i := 0; i < len(body); i++ {
		two := i < len(body)-1
		switch {
		case two && body[i] == '{' && body[i+1] == '{':
			tmpl++
			i++
		case two && body[i] == '}' && body[i+1] == '}':
			tmpl--
			i++
		case two && body[i] == '[' && body[i+1] == '[':
			link++
			i++
		case two && body[i] == ']' && body[i+1] == ']':
			link--
			i++
		case body[i] == '|' && tmpl <= 0 && link <= 0:
			res = append(res, body[last:i])
			last = i + 1
		}
	}
	return append(res, body[last:])
}

// splitKey splits a named parameter at its first top-level '='.
func splitKey(p string) (string, string, bool) {
	var depth int
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case '=':
			if depth > 0 {
				continue
			}
			key := strings.TrimSpace(p[:i])
			if key == "" || strings.ContainsAny(key, "<>\n") {
				return "", "", false
			}
			return key, strings.TrimSpace(p[i+1:]), true
		}
	}
	return "", "", false
}
