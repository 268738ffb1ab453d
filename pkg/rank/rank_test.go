package rank_test

import (
	"testing"

	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		want  rank.Rank
	}{
		{"empty", "", rank.None},
		{"blank", "   \t", rank.None},
		{"canonical", "Genus", rank.Genus},
		{"lower case", "species", rank.Species},
		{"upper case", "FAMILY", rank.Family},
		{"latin alias", "regnum", rank.Kingdom},
		{"german alias", "Gattung", rank.Genus},
		{"german umlaut alias", "Überfamilie", rank.Superfamily},
		{"german unranked", "ohne Rang", rank.Uninterpretable},
		{"spaces around", "  ordo ", rank.Order},
		{"division is divisio", "division", rank.Divisio},
		{"unknown", "clade", rank.Uninterpretable},
		{"garbage", "xyz123", rank.Uninterpretable},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, rank.FromString(v.input), v.msg)
	}
}

func TestFromStringTotal(t *testing.T) {
	for _, s := range []string{"a", "?", "Rang", "sub-species", "123"} {
		res := rank.FromString(s)
		assert.NotEqual(t, rank.None, res, s)
		assert.True(t, res.IsValid(), s)
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	for _, r := range rank.All() {
		assert.Equal(t, r, rank.FromString(r.String()), r.String())
	}
}

func TestOrdering(t *testing.T) {
	assert.Less(t, rank.Kingdom.Ordinal(), rank.Phylum.Ordinal())
	assert.Less(t, rank.Genus.Ordinal(), rank.Species.Ordinal())
	assert.Less(t, rank.Species.Ordinal(), rank.Subspecies.Ordinal())
	assert.Equal(t, rank.Uninterpretable, rank.All()[len(rank.All())-1])
	assert.Equal(t, 0, rank.Group.Ordinal())
}

func TestIsLowerThan(t *testing.T) {
	assert.True(t, rank.Genus.IsLowerThan(rank.Domain))
	assert.True(t, rank.Subfamily.IsLowerThan(rank.Family))
	assert.False(t, rank.Species.IsLowerThan(rank.Species))
	assert.False(t, rank.Kingdom.IsLowerThan(rank.Genus))
	assert.True(t, rank.Genus.IsLowerThan(rank.Uninterpretable))
	assert.True(t, rank.Kingdom.IsLowerThan(rank.None))
}

func TestIsHigherThan(t *testing.T) {
	assert.True(t, rank.Domain.IsHigherThan(rank.Genus))
	assert.True(t, rank.Family.IsHigherThan(rank.Subfamily))
	assert.False(t, rank.Species.IsHigherThan(rank.Species))
	assert.True(t, rank.Genus.IsHigherThan(rank.Uninterpretable))
	assert.True(t, rank.Species.IsHigherThan(rank.Uninterpretable))
	assert.True(t, rank.Species.IsHigherThan(rank.None))
}

// Both directions pass against an absent or unrecognized argument.
func TestTwoSidedComparison(t *testing.T) {
	for _, r := range rank.All() {
		for _, arg := range []rank.Rank{rank.None, rank.Uninterpretable} {
			assert.True(t, r.IsLowerThan(arg), r.String())
			assert.True(t, r.IsHigherThan(arg), r.String())
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "Species", rank.Species.String())
	assert.Equal(t, "", rank.None.String())
	b, err := rank.Class.MarshalText()
	assert.Nil(t, err)
	assert.Equal(t, "Class", string(b))

	var r rank.Rank
	assert.Nil(t, r.UnmarshalText([]byte("klasse")))
	assert.Equal(t, rank.Class, r)
}
