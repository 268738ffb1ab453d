package ioenrich

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gntaxobox/pkg/enrich"
	"github.com/gnames/gntaxobox/pkg/errcode"
	"github.com/gnames/gntaxobox/pkg/parserpool"
	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/gnames/gntaxobox/pkg/taxon"
	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pumaPage = `{{Don't edit this line {{{machine code|}}}
|rank=genus
|link=Puma (genus)|Puma
|parent=Felinae
|refs=<ref>MSW3</ref>
}}`

func TestParsePage(t *testing.T) {
	tests := []struct {
		msg, title, text string
		ok               bool
		want             Entry
	}{
		{
			"genus", "Template:Taxonomy/Puma", pumaPage, true,
			Entry{Key: "Puma", Name: "Puma", Rank: "genus", Parent: "Felinae"},
		},
		{
			"extinct", "Template:Taxonomy/Smilodon",
			"{{Don't edit this line {{{machine code|}}}\n|rank=genus\n|link=Smilodon\n" +
				"|parent=Machairodontinae\n|extinct=yes\n}}", true,
			Entry{Key: "Smilodon", Name: "Smilodon", Rank: "genus",
				Parent: "Machairodontinae", Extinct: "yes"},
		},
		{
			"no link", "Template:Taxonomy/Felinae",
			"{{Don't edit this line {{{machine code|}}}|rank=subfamilia|parent=felidae}}", true,
			Entry{Key: "Felinae", Name: "Felinae", Rank: "subfamilia", Parent: "Felidae"},
		},
		{
			"wiki link", "Template:Taxonomy/Ephedra_(plant)",
			"{{Don't edit this line {{{machine code|}}}|rank=genus|" +
				"link=[[Ephedra (plant)|Ephedra]]|parent=Ephedraceae}}", true,
			Entry{Key: "Ephedra (plant)", Name: "Ephedra", Rank: "genus", Parent: "Ephedraceae"},
		},
		{
			"variant key", "Template:Taxonomy/Aves/Plantae",
			"{{Don't edit this line {{{machine code|}}}|rank=classis|parent=Theropoda}}", true,
			Entry{Key: "Aves/Plantae", Name: "Aves", Rank: "classis", Parent: "Theropoda"},
		},
		{"other template", "Template:Taxonomy/Puma", "{{Documentation}}", false, Entry{}},
		{"other page", "Template:Taxobox", pumaPage, false, Entry{}},
		{"bare prefix", "Template:Taxonomy/", pumaPage, false, Entry{}},
	}

	for _, v := range tests {
		res, ok := ParsePage(v.title, v.text)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.want, res, v.msg)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"felinae", "Felinae"},
		{"Puma_(genus)", "Puma (genus)"},
		{"  Felis   catus ", "Felis catus"},
		{"élan", "Élan"},
		{"", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, NormalizeKey(v.key), v.key)
	}
}

func openIndex(t *testing.T) *Index {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache", "taxonomy.sqlite")
	idx, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func ingest(t *testing.T, idx *Index, entries ...Entry) int {
	t.Helper()
	ch := make(chan Entry)
	go func() {
		defer close(ch)
		for _, v := range entries {
			ch <- v
		}
	}()
	n, err := idx.Ingest(context.Background(), ch)
	require.NoError(t, err)
	return n
}

var felids = []Entry{
	{Key: "Animalia", Name: "Animalia", Rank: "regnum"},
	{Key: "Chordata", Name: "Chordata", Rank: "phylum", Parent: "Animalia"},
	{Key: "Mammalia", Name: "Mammalia", Rank: "classis", Parent: "Chordata"},
	{Key: "Carnivora", Name: "Carnivora", Rank: "ordo", Parent: "Mammalia"},
	{Key: "Feliformia", Name: "Feliformia", Rank: "subordo", Parent: "Carnivora"},
	{Key: "Felidae", Name: "Felidae", Rank: "familia", Parent: "Feliformia"},
	{Key: "Felinae", Name: "Felinae", Rank: "subfamilia", Parent: "Felidae"},
	{Key: "Puma", Name: "Puma", Rank: "genus", Parent: "Felinae"},
	{Key: "Smilodon", Name: "†Smilodon", Rank: "genus", Parent: "Felidae", Extinct: "yes"},
}

func TestIndex(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	idx := openIndex(t)

	n := ingest(t, idx, append(felids, Entry{})...)
	assert.Equal(len(felids), n)
	count, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(len(felids), count)

	e, ok, err := idx.Lookup(ctx, "puma")
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal(felids[7], e)

	_, ok, err = idx.Lookup(ctx, "Panthera")
	require.NoError(t, err)
	assert.False(ok)

	ingest(t, idx, Entry{Key: "Puma", Name: "Puma", Rank: "genus", Parent: "Felidae"})
	e, _, err = idx.Lookup(ctx, "Puma")
	require.NoError(t, err)
	assert.Equal("Felidae", e.Parent)
	count, err = idx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(len(felids), count)
}

func TestIndexReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.sqlite")
	idx, err := Open(path)
	require.NoError(t, err)
	ingest(t, idx, felids...)
	require.NoError(t, idx.Close())
	require.NoError(t, idx.Close())

	idx, err = Open(path)
	require.NoError(t, err)
	defer idx.Close()
	count, err := idx.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(felids), count)
	assert.Equal(t, path, idx.Path())
}

func TestIngestLocked(t *testing.T) {
	idx := openIndex(t)
	other := flock.New(idx.Path() + ".lock")
	ok, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer other.Unlock()

	ch := make(chan Entry)
	close(ch)
	_, err = idx.Ingest(context.Background(), ch)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.TaxonomyIngestError, gnErr.Code)
}

func TestIngestCanceled(t *testing.T) {
	idx := openIndex(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := idx.Ingest(ctx, make(chan Entry))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassify(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	idx := openIndex(t)
	ingest(t, idx, felids...)
	pool := parserpool.New(nomcode.Botanical, 1)
	defer pool.Close()
	en := NewEnricher(idx, pool)

	c, err := en.Classify(ctx, "Puma")
	require.NoError(t, err)
	assert.Equal("genus", c.Rank)
	assert.Empty(c.Extinct)
	require.Len(t, c.Ranks, 8)
	assert.Equal(enrich.RankName{Rank: rank.Genus, Name: "Puma"}, c.Ranks[0])
	assert.Equal(enrich.RankName{Rank: rank.Family, Name: "Felidae"}, c.Ranks[2])
	assert.Equal(enrich.RankName{Rank: rank.Kingdom, Name: "Animalia"}, c.Ranks[7])

	c, err = en.Classify(ctx, "Smilodon Lund, 1842")
	require.NoError(t, err)
	assert.Equal("yes", c.Extinct)
	assert.Equal("†Smilodon", c.Ranks[0].Name)
	assert.Len(c.Ranks, 7)

	c, err = en.Classify(ctx, "Puma concolor (Linnaeus, 1771)")
	require.NoError(t, err)
	assert.Empty(c.Rank)
	assert.Equal("Puma", c.Ranks[0].Name)
	assert.Len(c.Ranks, 8)

	c, err = en.Classify(ctx, "Panthera leo")
	require.NoError(t, err)
	assert.True(c.IsEmpty())
}

func TestClassifyCycle(t *testing.T) {
	idx := openIndex(t)
	ingest(t, idx,
		Entry{Key: "Aus", Name: "Aus", Rank: "genus", Parent: "Bidae"},
		Entry{Key: "Bidae", Name: "Bidae", Rank: "familia", Parent: "Aus"},
	)
	c, err := NewEnricher(idx, nil).Classify(context.Background(), "Aus")
	require.NoError(t, err)
	assert.Equal(t, []enrich.RankName{
		{Rank: rank.Genus, Name: "Aus"},
		{Rank: rank.Family, Name: "Bidae"},
	}, c.Ranks)
}

// TestApplyClassification checks the path of a classification into a
// record of an automatic taxobox.
func TestApplyClassification(t *testing.T) {
	assert := assert.New(t)
	idx := openIndex(t)
	ingest(t, idx, felids...)
	c, err := NewEnricher(idx, nil).Classify(context.Background(), "Smilodon")
	require.NoError(t, err)
	assert.Equal(enrich.RankName{Rank: rank.Uninterpretable, Name: "Feliformia"}, c.Ranks[2])

	rec := taxon.New("en", "Smilodon")
	enrich.Apply(rec, c)
	assert.Equal("Smilodon", rec.Genus)
	assert.Equal("Felidae", rec.Family)
	assert.Equal("Carnivora", rec.Order)
	assert.Equal("Animalia", rec.Kingdom)
	assert.Equal("yes", rec.Extinct)
	assert.Equal("genus", rec.RankVerbatim)
	assert.Equal(rank.Genus, rec.Rank)
}
