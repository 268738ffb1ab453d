package ioenrich

import (
	"context"
	"log/slog"

	"github.com/gnames/gntaxobox/pkg/enrich"
	"github.com/gnames/gntaxobox/pkg/parserpool"
	"github.com/gnames/gntaxobox/pkg/rank"
)

var _ enrich.Enricher = (*Enricher)(nil)

// Enricher answers classification lookups from an Index. It implements
// enrich.Enricher and is safe for concurrent use.
type Enricher struct {
	idx  *Index
	pool *parserpool.Pool
}

// NewEnricher creates an Enricher. The pool reduces names with authorship
// to canonical forms and finds the genus of species names. Without a pool
// names are looked up as they are.
func NewEnricher(idx *Index, pool *parserpool.Pool) *Enricher {
	return &Enricher{idx: idx, pool: pool}
}

// Classify returns the classification of a name. If the name has no entry
// of its own, the classification of its genus is returned without the rank
// and extinct flag of the name.
func (e *Enricher) Classify(
	ctx context.Context,
	name string,
) (enrich.Classification, error) {
	var res enrich.Classification

	keys := []string{name}
	var genus string
	if e.pool != nil {
		n := e.pool.Canonical(name)
		if n.Canonical != "" && n.Canonical != name {
			keys = append(keys, n.Canonical)
		}
		genus = n.Genus
	}

	for _, k := range keys {
		entry, ok, err := e.idx.Lookup(ctx, k)
		if err != nil {
			return res, err
		}
		if ok {
			res.Rank = entry.Rank
			res.Extinct = entry.Extinct
			res.Ranks, err = e.chain(ctx, entry)
			return res, err
		}
	}

	if genus == "" {
		return res, nil
	}
	entry, ok, err := e.idx.Lookup(ctx, genus)
	if err != nil || !ok {
		return res, err
	}
	slog.Debug("Classification taken from genus", "name", name, "genus", genus)
	res.Ranks, err = e.chain(ctx, entry)
	return res, err
}

// chain walks from an entry up to the root. A missing parent or a cycle
// ends the walk.
func (e *Enricher) chain(ctx context.Context, entry Entry) ([]enrich.RankName, error) {
	var res []enrich.RankName
	seen := make(map[string]struct{})
	for range maxDepth {
		seen[entry.Key] = struct{}{}
		res = append(res, enrich.RankName{
			Rank: rank.FromString(entry.Rank),
			Name: entry.Name,
		})
		if entry.Parent == "" {
			break
		}
		if _, ok := seen[entry.Parent]; ok {
			slog.Warn("Cycle in taxonomy templates", "key", entry.Key, "parent", entry.Parent)
			break
		}
		next, ok, err := e.idx.Lookup(ctx, entry.Parent)
		if err != nil {
			return res, err
		}
		if !ok {
			break
		}
		entry = next
	}
	return res, nil
}
