package dialect

import (
	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/gnames/gntaxobox/pkg/taxon"
)

// Kind tells how a template parameter affects the record.
type Kind int

const (
	// Ignore drops the value without telemetry.
	Ignore Kind = iota
	// Field writes a direct record field.
	Field
	// RankedName offers the value as a name at Rank. Canonical ranks also
	// write their classification field.
	RankedName
	// Binomial offers the value as a name at Rank, adopting it on ties.
	Binomial
	// Authorship writes authorship if the held rank matches Rank.
	Authorship
	// Slot writes one part of a positional classification entry.
	Slot
	// Media writes one part of a media item.
	Media
	// Synonyms splits the value into a list of synonyms.
	Synonyms
)

// SlotPart is the part of a NameSlot a positional key writes.
type SlotPart int

const (
	SlotScientific SlotPart = iota
	SlotAuthor
	SlotVernacular
	SlotRank
)

// MediaKind selects one of the media lists of a record.
type MediaKind int

const (
	Images MediaKind = iota
	RangeMaps
	Sounds
)

// Target is a tagged variant describing what a normalized key does.
// Only the fields relevant to Kind are set.
type Target struct {
	Kind  Kind
	Field taxon.Field
	Rank  rank.Rank
	// Index is the slot index, or the media index.
	Index     int
	SlotPart  SlotPart
	MediaKind MediaKind
	MediaPart taxon.MediaPart
	// Raw values are rendered and whitespace normalized only. Other values
	// go through name cleaning.
	Raw bool
	// Placeholder is a value that means "no value", compared ignoring case.
	Placeholder string
}

func field(f taxon.Field) Target {
	return Target{Kind: Field, Field: f}
}

func rawField(f taxon.Field) Target {
	return Target{Kind: Field, Field: f, Raw: true}
}

func ranked(r rank.Rank) Target {
	return Target{Kind: RankedName, Rank: r}
}

func binomial(r rank.Rank) Target {
	return Target{Kind: Binomial, Rank: r}
}

func authorship(r rank.Rank) Target {
	return Target{Kind: Authorship, Rank: r}
}

func slot(idx int, p SlotPart) Target {
	return Target{Kind: Slot, Index: idx, SlotPart: p}
}

func media(k MediaKind, idx int, p taxon.MediaPart) Target {
	return Target{Kind: Media, MediaKind: k, Index: idx, MediaPart: p}
}

func ignore() Target {
	return Target{Kind: Ignore}
}
