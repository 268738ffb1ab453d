// Package rank provides the vocabulary of taxonomic ranks used by
// taxoboxes of different Wikipedia language editions.
//
// Ranks are totally ordered: a smaller ordinal means a broader rank.
// Uninterpretable closes the enumeration and marks rank strings that are
// not blank but could not be recognized.
package rank

import (
	"strings"
)

// Rank is a level in the biological classification hierarchy.
type Rank int

// None designates an absent rank.
const None Rank = -1

const (
	Group Rank = iota
	Superdomain
	Domain
	Superkingdom
	KingdomClade
	Kingdom
	Subkingdom
	Superdivision
	Divisio
	Superphylum
	PhylumClade
	Phylum
	Subdivision
	Subphylum
	Infraphylum
	Microphylum
	Nanophylum
	Superclass
	ClassClade
	Class
	Subclass
	Infraclass
	Supercohort
	Cohort
	Subcohort
	Magnorder
	Superorder
	OrderClade
	Order
	Suborder
	Infraorder
	Parvorder
	Zoodivisio
	Zoosectio
	Zoosubsectio
	Superfamily
	FamilyClade
	Family
	Subfamily
	Supertribe
	Tribe
	Subtribe
	Alliance
	GenusClade
	Genus
	Subgenus
	Section
	Subsection
	Series
	Subseries
	SpeciesGroup
	SpeciesSubgroup
	SpeciesComplex
	Species
	Infraspecies
	Subspecies
	Variety
	Form
	Uninterpretable
)

type entry struct {
	name    string
	aliases []string
}

// vocabulary is indexed by Rank ordinal. Aliases are lower-case.
var vocabulary = []entry{
	Group:           {name: "Group"},
	Superdomain:     {name: "Superdomain"},
	Domain:          {name: "Domain", aliases: []string{"domäne", "dominio"}},
	Superkingdom:    {name: "Superkingdom", aliases: []string{"superregnum"}},
	KingdomClade:    {name: "KingdomClade"},
	Kingdom:         {name: "Kingdom", aliases: []string{"reich", "regnum", "reino", "règne"}},
	Subkingdom:      {name: "Subkingdom", aliases: []string{"unterreich", "subregnum"}},
	Superdivision:   {name: "Superdivision", aliases: []string{"überabteilung"}},
	Divisio:         {name: "Divisio", aliases: []string{"division", "abteilung"}},
	Superphylum:     {name: "Superphylum", aliases: []string{"überstamm"}},
	PhylumClade:     {name: "PhylumClade"},
	Phylum:          {name: "Phylum", aliases: []string{"stamm", "filo", "embranchement"}},
	Subdivision:     {name: "Subdivision"},
	Subphylum:       {name: "Subphylum", aliases: []string{"unterstamm"}},
	Infraphylum:     {name: "Infraphylum"},
	Microphylum:     {name: "Microphylum"},
	Nanophylum:      {name: "Nanophylum"},
	Superclass:      {name: "Superclass", aliases: []string{"überklasse"}},
	ClassClade:      {name: "ClassClade"},
	Class:           {name: "Class", aliases: []string{"class", "classis", "klasse", "clase", "classe"}},
	Subclass:        {name: "Subclass", aliases: []string{"unterklasse"}},
	Infraclass:      {name: "Infraclass"},
	Supercohort:     {name: "Supercohort", aliases: []string{"supercohors"}},
	Cohort:          {name: "Cohort", aliases: []string{"cohors"}},
	Subcohort:       {name: "Subcohort", aliases: []string{"subcohors"}},
	Magnorder:       {name: "Magnorder"},
	Superorder:      {name: "Superorder", aliases: []string{"überordnung"}},
	OrderClade:      {name: "OrderClade"},
	Order:           {name: "Order", aliases: []string{"ordo", "ordnung", "orden", "ordre"}},
	Suborder:        {name: "Suborder", aliases: []string{"unterordnung"}},
	Infraorder:      {name: "Infraorder", aliases: []string{"teilordnung"}},
	Parvorder:       {name: "Parvorder"},
	Zoodivisio:      {name: "Zoodivisio", aliases: []string{"zoodivision"}},
	Zoosectio:       {name: "Zoosectio", aliases: []string{"zoosection"}},
	Zoosubsectio:    {name: "Zoosubsectio", aliases: []string{"zoosubsection"}},
	Superfamily:     {name: "Superfamily", aliases: []string{"überfamilie"}},
	FamilyClade:     {name: "FamilyClade"},
	Family:          {name: "Family", aliases: []string{"familia", "familie", "famille"}},
	Subfamily:       {name: "Subfamily", aliases: []string{"subfamilia", "unterfamilie"}},
	Supertribe:      {name: "Supertribe"},
	Tribe:           {name: "Tribe", aliases: []string{"tribus"}},
	Subtribe:        {name: "Subtribe", aliases: []string{"subtribus"}},
	Alliance:        {name: "Alliance", aliases: []string{"alianza"}},
	GenusClade:      {name: "GenusClade"},
	Genus:           {name: "Genus", aliases: []string{"gattung", "género", "genre"}},
	Subgenus:        {name: "Subgenus", aliases: []string{"untergattung"}},
	Section:         {name: "Section", aliases: []string{"sectio", "sektion"}},
	Subsection:      {name: "Subsection", aliases: []string{"subsectio"}},
	Series:          {name: "Series", aliases: []string{"reihe"}},
	Subseries:       {name: "Subseries"},
	SpeciesGroup:    {name: "SpeciesGroup"},
	SpeciesSubgroup: {name: "SpeciesSubgroup"},
	SpeciesComplex:  {name: "SpeciesComplex"},
	Species:         {name: "Species", aliases: []string{"art", "especie", "espèce"}},
	Infraspecies:    {name: "Infraspecies"},
	Subspecies:      {name: "Subspecies", aliases: []string{"unterart", "subespecie"}},
	Variety:         {name: "Variety", aliases: []string{"varietät", "varietas"}},
	Form:            {name: "Form", aliases: []string{"forma"}},
	Uninterpretable: {name: "Uninterpretable", aliases: []string{"ohne rang"}},
}

var lookup map[string]Rank

func init() {
	lookup = make(map[string]Rank, len(vocabulary)*2)
	// iterate backwards so the first rank declaring an alias wins
	for i := len(vocabulary) - 1; i >= 0; i-- {
		r := Rank(i)
		for _, a := range vocabulary[i].aliases {
			lookup[a] = r
		}
		lookup[strings.ToLower(vocabulary[i].name)] = r
	}
}

// FromString finds a rank by its canonical name or one of its aliases,
// ignoring case. Blank input returns None, any other unrecognized
// input returns Uninterpretable.
func FromString(s string) Rank {
	s = strings.TrimSpace(s)
	if s == "" {
		return None
	}
	if r, ok := lookup[strings.ToLower(s)]; ok {
		return r
	}
	return Uninterpretable
}

// All returns every rank in ascending ordinal order, Uninterpretable
// included.
func All() []Rank {
	res := make([]Rank, len(vocabulary))
	for i := range vocabulary {
		res[i] = Rank(i)
	}
	return res
}

// Ordinal returns the position of the rank in the hierarchy.
func (r Rank) Ordinal() int {
	return int(r)
}

// IsValid is false for None and for values outside of the vocabulary.
func (r Rank) IsValid() bool {
	return r >= Group && r <= Uninterpretable
}

// IsLowerThan tells if r is more specific than other. It is always true
// when other is None or Uninterpretable, whatever r is.
func (r Rank) IsLowerThan(other Rank) bool {
	if other == None || other == Uninterpretable {
		return true
	}
	return r > other
}

// IsHigherThan tells if r is broader than other. It is always true
// when other is None or Uninterpretable, whatever r is.
func (r Rank) IsHigherThan(other Rank) bool {
	if other == None || other == Uninterpretable {
		return true
	}
	return r < other
}

// String returns the canonical rank name or an empty string for None.
func (r Rank) String() string {
	if !r.IsValid() {
		return ""
	}
	return vocabulary[r].name
}

// MarshalText encodes the rank by its canonical name.
func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rank from its name or alias.
func (r *Rank) UnmarshalText(b []byte) error {
	*r = FromString(string(b))
	return nil
}
