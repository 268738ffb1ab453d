// Package enrich declares the collaborator that supplies the higher
// classification of automatic taxoboxes, and merges its answer into a
// record.
package enrich

import (
	"context"
	"strings"

	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/gnames/gntaxobox/pkg/taxon"
)

// RankName is one entry of a classification.
type RankName struct {
	Rank rank.Rank
	Name string
}

// Classification is what an Enricher knows about a name.
type Classification struct {
	// Ranks are parents of the name ordered from the name itself towards
	// the root. Unranked entries and clades are allowed, they are ignored
	// by Apply.
	Ranks []RankName
	// Rank is the verbatim rank of the name itself.
	Rank string
	// Extinct is the verbatim extinct flag of the name itself.
	Extinct string
}

// IsEmpty is true if the classification carries no data.
func (c Classification) IsEmpty() bool {
	return len(c.Ranks) == 0 && c.Rank == "" && c.Extinct == ""
}

// Enricher looks up the classification of a scientific name. An unknown
// name is not an error and returns an empty Classification.
type Enricher interface {
	Classify(ctx context.Context, name string) (Classification, error)
}

// Apply merges a classification into a record. The verbatim rank comes
// first and sets the rank only if the record has none. Only canonical
// ranks feed classification fields, through the same rank-aware merge as
// taxobox keys. A named record that is still without a rank keeps its
// name, the chain then fills classification fields only.
func Apply(r *taxon.Record, c Classification) {
	if r.IsDone() {
		return
	}
	if c.Rank != "" {
		r.RankVerbatim = c.Rank
		if r.Rank == rank.None {
			r.Rank = rank.FromString(c.Rank)
		}
	}
	keepName := r.ScientificName != "" && r.Rank == rank.None
	for _, v := range c.Ranks {
		if !canonical(v.Rank) {
			continue
		}
		name := strings.TrimSpace(strings.Trim(v.Name, "†"))
		if keepName {
			r.SetClassificationField(v.Rank, name)
			continue
		}
		r.SetClassification(v.Rank, name)
	}
	r.SetField(taxon.FieldExtinct, c.Extinct)
}

func canonical(rk rank.Rank) bool {
	for _, v := range taxon.CanonicalRanks {
		if v == rk {
			return true
		}
	}
	return false
}
