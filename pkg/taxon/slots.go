package taxon

import "github.com/gnames/gntaxobox/pkg/rank"

// RankOffset is the number of leading positions reserved for unranked,
// positionally supplied classification entries. Rank-addressed slots start
// after it.
const RankOffset = 10

// NameSlot is a partially filled classification entry.
type NameSlot struct {
	ScientificName string
	Authorship     string
	VernacularName string
	Rank           rank.Rank
}

func newSlot() *NameSlot {
	return &NameSlot{Rank: rank.None}
}

// IsEmpty is true if the slot carries no scientific name.
func (ns *NameSlot) IsEmpty() bool {
	return ns == nil || ns.ScientificName == ""
}

// Slots is the ordered list of classification entries of a record.
// Positional and rank-keyed addressing share the same list.
type Slots struct {
	items []*NameSlot
}

// At returns a fresh slot at idx. Missing slots below idx become empty
// placeholders. A slot that already existed at idx is discarded, so all
// fields of one entry have to be written through a single At call.
func (s *Slots) At(idx int) *NameSlot {
	for len(s.items) <= idx {
		s.items = append(s.items, newSlot())
	}
	s.items[idx] = newSlot()
	return s.items[idx]
}

// ByRank returns a fresh slot reserved for the given rank.
func (s *Slots) ByRank(r rank.Rank) *NameSlot {
	return s.At(r.Ordinal() + RankOffset)
}

// Len returns the length of the underlying list, placeholders included.
func (s *Slots) Len() int {
	return len(s.items)
}

// Filled returns slots that have a scientific name, in list order.
func (s *Slots) Filled() []*NameSlot {
	var res []*NameSlot
	for _, v := range s.items {
		if !v.IsEmpty() {
			res = append(res, v)
		}
	}
	return res
}
