package dialect_test

import (
	"testing"

	"github.com/gnames/gntaxobox/pkg/dialect"
	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/gnames/gntaxobox/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "automatictaxobox", dialect.NormalizeTemplate(" Automatic_taxo-box "))
	assert.Equal(t, "fichadetaxón", dialect.NormalizeTemplate("Ficha de taxón"))
	assert.Equal(t, "range_map_caption", dialect.NormalizeKey(" Range map_Caption "))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		msg, name string
		box       dialect.Box
		rank      rank.Rank
		auto      bool
	}{
		{"taxobox", "Taxobox", dialect.Taxobox, rank.None, false},
		{"automatic", "Automatic taxobox", dialect.Taxobox, rank.None, true},
		{"spanish", "Ficha de taxón", dialect.Taxobox, rank.None, false},
		{"spanish ascii", "ficha_de_taxon", dialect.Taxobox, rank.None, false},
		{"speciesbox", "Speciesbox", dialect.Speciesbox, rank.Species, true},
		{"subspecies", "Subspeciesbox", dialect.Speciesbox, rank.Subspecies, true},
		{"infraspecies", "Infraspeciesbox", dialect.Speciesbox, rank.Infraspecies, true},
		{"sound", "Listen", dialect.Soundbox, rank.None, false},
	}

	for _, v := range tests {
		d, ok := dialect.Lookup("en", v.name)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.box, d.Box, v.msg)
		assert.Equal(t, v.auto, d.Automatic, v.msg)
		if v.box == dialect.Speciesbox {
			assert.Equal(t, v.rank, d.Rank, v.msg)
		}
		assert.Equal(t, "en", d.Lang, v.msg)
	}

	_, ok := dialect.Lookup("en", "cite web")
	assert.False(t, ok)
}

func TestTaxoboxTargets(t *testing.T) {
	d, _ := dialect.Lookup("en", "taxobox")
	tests := []struct {
		key  string
		want dialect.Target
	}{
		{"regnum", dialect.Target{Kind: dialect.RankedName, Rank: rank.Kingdom}},
		{"Ordo", dialect.Target{Kind: dialect.RankedName, Rank: rank.Order}},
		{"subfamilia", dialect.Target{Kind: dialect.RankedName, Rank: rank.Subfamily}},
		{"unranked_classis", dialect.Target{Kind: dialect.RankedName, Rank: rank.ClassClade}},
		{"familia_authority", dialect.Target{Kind: dialect.Authorship, Rank: rank.Family}},
		{"binomial", dialect.Target{Kind: dialect.Binomial, Rank: rank.Species}},
		{"trinomial", dialect.Target{Kind: dialect.RankedName, Rank: rank.Infraspecies}},
		{"taxon", dialect.Target{Kind: dialect.Field, Field: taxon.FieldScientificName}},
		{"synonyms", dialect.Target{Kind: dialect.Synonyms}},
		{"range map3 caption", dialect.Target{
			Kind: dialect.Media, MediaKind: dialect.RangeMaps,
			Index: 2, MediaPart: taxon.MediaCaption,
		}},
		{"tausendvon", dialect.Target{Kind: dialect.Field, Field: taxon.FieldFossilFromKyr}},
		{"bild", dialect.Target{
			Kind: dialect.Media, MediaKind: dialect.Images,
			MediaPart: taxon.MediaURL, Placeholder: "ohne",
		}},
		{"dominio", dialect.Target{Kind: dialect.RankedName, Rank: rank.Domain}},
		{"binomial2", dialect.Target{Kind: dialect.Ignore}},
	}

	for _, v := range tests {
		res, ok := d.Target(v.key)
		require.True(t, ok, v.key)
		assert.Equal(t, v.want, res, v.key)
	}

	_, ok := d.Target("no_such_key")
	assert.False(t, ok)
}

func TestGermanPositional(t *testing.T) {
	d, _ := dialect.Lookup("de", "Taxobox")
	tests := []struct {
		key  string
		idx  int
		part dialect.SlotPart
	}{
		{"taxon_wissname", 0, dialect.SlotScientific},
		{"taxon_rang", 0, dialect.SlotRank},
		{"taxon1_WissName", 1, dialect.SlotScientific},
		{"taxon2_rang", 2, dialect.SlotRank},
		{"taxon5_autor", 5, dialect.SlotAuthor},
		{"taxon9_name", 9, dialect.SlotVernacular},
	}

	for _, v := range tests {
		res, ok := d.Target(v.key)
		require.True(t, ok, v.key)
		assert.Equal(t, dialect.Slot, res.Kind, v.key)
		assert.Equal(t, v.idx, res.Index, v.key)
		assert.Equal(t, v.part, res.SlotPart, v.key)
		assert.Less(t, res.Index, taxon.RankOffset, v.key)
	}
}

func TestPositionalTable(t *testing.T) {
	p := dialect.Positional{
		Prefix: "rank",
		From:   1,
		To:     2,
		Parts:  map[string]dialect.SlotPart{"name": dialect.SlotScientific},
	}
	tbl := p.Table()
	assert.Len(t, tbl, 2)
	assert.Equal(t, 2, tbl["rank2_name"].Index)
	_, ok := tbl["rank_name"]
	assert.False(t, ok)

	p.Unnumbered = true
	tbl = p.Table()
	assert.Len(t, tbl, 3)
	assert.Equal(t, 0, tbl["rank_name"].Index)
	assert.NotEqual(t, tbl["rank_name"].Index, tbl["rank1_name"].Index)
}

func TestSpeciesboxTable(t *testing.T) {
	d, _ := dialect.Lookup("en", "speciesbox")
	res, _ := d.Target("species")
	assert.Equal(t, dialect.Ignore, res.Kind)
	res, _ = d.Target("authority")
	assert.True(t, res.Raw)
	res, _ = d.Target("genus")
	assert.Equal(t, dialect.RankedName, res.Kind)
	res, _ = d.Target("image")
	assert.Equal(t, dialect.Media, res.Kind)

	tb, _ := dialect.Lookup("en", "taxobox")
	res, _ = tb.Target("species")
	assert.Equal(t, dialect.Field, res.Kind)
}

func TestKingdomPages(t *testing.T) {
	tests := []struct {
		lang, kingdom, title string
	}{
		{"en", "Animalia", "Animal"},
		{"de", "Plantae", "Pflanzen"},
		{"de", "Chromista", ""},
		{"fr", "Protozoa", "Protozoaire"},
		{"es", "Protozoa", "Protozoo"},
		{"it", "Fungi", "Fungus"},
	}

	for _, v := range tests {
		assert.Equal(t, v.title, dialect.KingdomPages(v.lang)[v.kingdom], v.lang+v.kingdom)
	}
	for _, k := range taxon.Kingdoms {
		assert.NotEmpty(t, dialect.KingdomPages("en")[k], k)
	}
}
