package listparse_test

import (
	"strings"
	"testing"

	"github.com/gnames/gntaxobox/pkg/listparse"
	"github.com/stretchr/testify/assert"
)

// stub flattens any species list to two names and strips quotes.
type stub struct{}

func (stub) Flatten(string) string {
	return "Grus paradisea Lichtenstein<br/>Tetrapteryx capensis Thunberg"
}

func (stub) CleanName(s string) (string, bool) {
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "[[", "")
	s = strings.ReplaceAll(s, "]]", "")
	s = strings.ReplaceAll(s, "<br />", " ")
	return strings.Join(strings.Fields(s), " "), strings.Contains(s, "†")
}

func TestSynonyms(t *testing.T) {
	tests := []struct {
		msg, raw string
		want     []string
	}{
		{
			"bullets",
			"\n* ''[[Ardea]] paradisea''\n* '''''Tetrapteryx capensis'''''\n",
			[]string{"Ardea paradisea", "Tetrapteryx capensis"},
		},
		{
			"line breaks",
			"''Ardea paradisea''<br/>''Tetrapteryx capensis''<BR>Grus caffra",
			[]string{"Ardea paradisea", "Tetrapteryx capensis", "Grus caffra"},
		},
		{
			"bullets win over breaks",
			"* Ardea paradisea<br />* Grus caffra",
			[]string{"Ardea paradisea", "Grus caffra"},
		},
		{
			"single",
			"''Felis concolor''",
			[]string{"Felis concolor"},
		},
		{
			"species list",
			"{{Species list|Grus paradisea|Lichtenstein|Tetrapteryx capensis|Thunberg}}",
			[]string{"Grus paradisea Lichtenstein", "Tetrapteryx capensis Thunberg"},
		},
		{
			"duplicates kept",
			"* Felis concolor\n* Felis concolor",
			[]string{"Felis concolor", "Felis concolor"},
		},
		{"empty", "  ", nil},
	}

	for _, v := range tests {
		res := listparse.Synonyms(v.raw, stub{})
		assert.Equal(t, v.want, res, v.msg)
	}
}

func TestNumbered(t *testing.T) {
	params := map[string]string{"1": "a", "2": "b", "5": "c", "10": "d", "14": "e"}
	get := func(k string) (string, bool) {
		v, ok := params[k]
		return v, ok
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, listparse.Numbered(get))

	params = map[string]string{"1": "a", "12": "b"}
	assert.Equal(t, []string{"a"}, listparse.Numbered(get))
}

func TestPairs(t *testing.T) {
	res := listparse.Pairs([]string{"Ardea paradisea", "Lichtenstein", "Grus caffra", "Fritsch"})
	assert.Equal(t, "Ardea paradisea Lichtenstein<br/>Grus caffra Fritsch<br/>", res)
}

func TestPlainList(t *testing.T) {
	assert.Equal(t, "\n* one\n* two", listparse.PlainList("\n# one\n# two"))
}
