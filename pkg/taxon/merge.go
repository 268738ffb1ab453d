package taxon

import (
	"strings"

	"github.com/gnames/gntaxobox/pkg/rank"
)

// CanonicalRanks are the ranks that have their own classification field.
var CanonicalRanks = []rank.Rank{
	rank.Kingdom, rank.Phylum, rank.Class, rank.Order,
	rank.Family, rank.Genus, rank.Subgenus,
}

func (r *Record) assignName(rk rank.Rank, name string) {
	r.ScientificName = name
	r.Rank = rk
	r.ExtinctSymbol = r.extinctMark
}

// SetScientificName sets the name given explicitly by a taxon field. The
// rank is left as it is.
func (r *Record) SetScientificName(name string) {
	if r.done {
		return
	}
	r.ScientificName = name
	r.ExtinctSymbol = r.extinctMark
}

// SetRankedName adopts the name as identity if no rank is held yet or if
// the held rank is broader than rk. It reports whether the name was
// adopted.
func (r *Record) SetRankedName(rk rank.Rank, name string) bool {
	if name == "" || r.done {
		return false
	}
	if r.Rank == rank.None || r.Rank.IsHigherThan(rk) {
		r.assignName(rk, name)
		return true
	}
	return false
}

// SetNameIfLowerOrEqual is like SetRankedName, but also adopts the name
// when rk equals the held rank.
func (r *Record) SetNameIfLowerOrEqual(rk rank.Rank, name string) bool {
	if name == "" || r.done {
		return false
	}
	if r.Rank == rank.None || r.Rank == rk || r.Rank.IsHigherThan(rk) {
		r.assignName(rk, name)
		return true
	}
	return false
}

// SetNameFromSlot adopts a classification entry as identity if no rank
// is held yet, or if it is strictly more specific than the held rank.
// Once a rank is held, entries without a rank or with an uninterpretable
// one are not adopted. The authorship and the vernacular name of an
// adopted entry are taken over as well.
func (r *Record) SetNameFromSlot(ns *NameSlot) bool {
	if ns.IsEmpty() || r.done {
		return false
	}
	if r.Rank != rank.None {
		if ns.Rank == rank.None || ns.Rank == rank.Uninterpretable {
			return false
		}
		if !r.Rank.IsHigherThan(ns.Rank) {
			return false
		}
	}
	r.assignName(ns.Rank, ns.ScientificName)
	r.Authorship = ns.Authorship
	r.AddVernacular(ns.VernacularName)
	return true
}

// SetAuthorshipAtRank writes the authorship only if the held rank is rk.
// Authorship of Infraspecies is also written when Infraspecies is more
// specific than the held rank.
func (r *Record) SetAuthorshipAtRank(rk rank.Rank, a string) {
	if a == "" || r.done {
		return
	}
	if r.Rank == rk || (rk == rank.Infraspecies && rk.IsLowerThan(r.Rank)) {
		r.Authorship = a
	}
}

// SetClassification writes the classification field of a canonical rank
// and offers the name as identity. For other ranks only the identity is
// offered.
func (r *Record) SetClassification(rk rank.Rank, name string) {
	if name == "" || r.done {
		return
	}
	r.SetClassificationField(rk, name)
	r.SetRankedName(rk, name)
}

// SetClassificationField writes the classification field of a canonical
// rank and leaves the identity alone. Other ranks are ignored.
func (r *Record) SetClassificationField(rk rank.Rank, name string) {
	if name == "" || r.done {
		return
	}
	switch rk {
	case rank.Kingdom:
		r.Kingdom = name
	case rank.Phylum:
		r.Phylum = name
	case rank.Class:
		r.Class = name
	case rank.Order:
		r.Order = name
	case rank.Family:
		r.Family = name
	case rank.Genus:
		r.Genus = name
	case rank.Subgenus:
		r.Subgenus = name
	}
}

// Classification returns the value of the classification field of a
// canonical rank.
func (r *Record) Classification(rk rank.Rank) string {
	switch rk {
	case rank.Kingdom:
		return r.Kingdom
	case rank.Phylum:
		return r.Phylum
	case rank.Class:
		return r.Class
	case rank.Order:
		return r.Order
	case rank.Family:
		return r.Family
	case rank.Genus:
		return r.Genus
	case rank.Subgenus:
		return r.Subgenus
	}
	return ""
}

// SetSpecies accepts either a binomial or a bare epithet. A value with a
// space or a period is a binomial and is offered as identity at Species.
func (r *Record) SetSpecies(val string) {
	if val == "" || r.done {
		return
	}
	if strings.ContainsAny(val, " .") {
		r.Species = val
		r.SetRankedName(rank.Species, val)
		return
	}
	r.SpeciesEpithet = val
}

func isCanonical(rk rank.Rank) bool {
	for _, v := range CanonicalRanks {
		if v == rk {
			return true
		}
	}
	return false
}
