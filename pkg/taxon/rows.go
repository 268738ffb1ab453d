package taxon

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
)

// RowKind tells which archive table a row belongs to.
type RowKind int

const (
	RowCore RowKind = iota
	RowSynonym
	RowVernacular
	RowSpeciesProfile
	RowDistribution
	RowImage
	RowSound
	RowType
)

var rowKindNames = []string{
	"core", "synonym", "vernacular", "species_profile",
	"distribution", "image", "sound", "type",
}

func (k RowKind) String() string {
	if k < 0 || int(k) >= len(rowKindNames) {
		return ""
	}
	return rowKindNames[k]
}

// Row is one record of an archive table. ID is the identifier of the
// taxon the row describes, Values are keyed by Darwin Core like terms.
// Empty values are omitted.
type Row struct {
	Kind   RowKind
	ID     string
	Values map[string]string
}

func newRow(k RowKind, id string, kv ...string) Row {
	res := Row{Kind: k, ID: id, Values: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			res.Values[kv[i]] = kv[i+1]
		}
	}
	return res
}

// WikiLink returns the address of the article the record came from.
func (r *Record) WikiLink() string {
	title := strings.ReplaceAll(r.Title, " ", "_")
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s", r.Lang, title)
}

// Rows enumerates archive rows of a finalized record.
func (r *Record) Rows(articleID string) []Row {
	var res []Row

	var raw string
	if len(r.Raw) > 0 {
		enc := gnfmt.GNjson{}
		if bs, err := enc.Encode(r.Raw); err == nil {
			raw = string(bs)
		}
	}
	res = append(res, newRow(RowCore, articleID,
		"source", r.WikiLink(),
		"scientificName", r.ScientificName,
		"scientificNameAuthorship", r.Authorship,
		"taxonRank", r.Rank.String(),
		"verbatimTaxonRank", r.RankVerbatim,
		"kingdom", r.Kingdom,
		"phylum", r.Phylum,
		"class", r.Class,
		"order", r.Order,
		"family", r.Family,
		"genus", r.Genus,
		"subgenus", r.Subgenus,
		"trend", r.Trend,
		"fossilRange", r.FossilRangeText(),
		"remarks", r.Remarks(),
		"taxobox", raw,
	))

	for _, v := range r.Vernaculars {
		if strings.EqualFold(v, r.ScientificName) {
			continue
		}
		res = append(res, newRow(RowVernacular, articleID,
			"vernacularName", v,
			"language", r.Lang,
			"isPreferredName", "true",
		))
	}
	for _, lang := range slices.Sorted(maps.Keys(r.VernacularsOther)) {
		v := r.VernacularsOther[lang]
		if strings.EqualFold(v, r.ScientificName) {
			continue
		}
		res = append(res, newRow(RowVernacular, articleID,
			"vernacularName", v,
			"language", lang,
		))
	}

	if fr := r.FossilRangeText(); fr != "" {
		extinct := r.Extinct
		if extinct == "" {
			extinct = strconv.FormatBool(r.ExtinctSymbol)
		}
		res = append(res, newRow(RowSpeciesProfile, articleID,
			"livingPeriod", fr,
			"isExtinct", extinct,
			"locality", r.Localities,
		))
	}

	for _, v := range r.RangeMaps.Items() {
		res = append(res, newRow(RowDistribution, articleID,
			"identifier", v.URL,
			"locality", v.Caption,
		))
	}
	for _, v := range r.Images.Items() {
		res = append(res, mediaRow(RowImage, articleID, v))
	}
	for _, v := range r.Sounds.Items() {
		res = append(res, mediaRow(RowSound, articleID, v))
	}

	if r.TypeSpecies != "" {
		res = append(res, newRow(RowType, articleID,
			"typeStatus", "type species",
			"scientificName", withAuthority(r.TypeSpecies, r.TypeSpeciesAuthority),
		))
	} else if r.TypeGenus != "" {
		res = append(res, newRow(RowType, articleID,
			"typeStatus", "type genus",
			"scientificName", withAuthority(r.TypeGenus, r.TypeGenusAuthority),
		))
	}

	for i, v := range r.Synonyms {
		id := fmt.Sprintf("%s-syn%d", articleID, i+1)
		res = append(res, newRow(RowSynonym, id,
			"scientificName", v,
			"acceptedNameUsage", r.ScientificName,
			"acceptedNameUsageID", articleID,
			"taxonomicStatus", "synonym",
		))
	}
	return res
}

func mediaRow(k RowKind, id string, m Media) Row {
	return newRow(k, id,
		"identifier", m.URL,
		"title", m.Caption,
		"creator", m.Author,
		"created", m.Date,
		"license", m.License,
		"publisher", m.Publisher,
		"source", m.Source,
		"description", m.Description,
	)
}

// withAuthority appends the authority unless the name already contains it.
func withAuthority(name, authority string) string {
	if name == "" || authority == "" {
		return name
	}
	if strings.Contains(strings.ToLower(name), strings.ToLower(authority)) {
		return name
	}
	return name + " " + authority
}
