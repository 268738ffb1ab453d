// Package dialect maps template parameters of taxobox-like templates of
// different Wikipedia editions to mutations of a taxon.Record.
//
// Each dialect is a table from a normalized key to a Target. The taxobox
// table is composed from the English, German, French and Spanish tables in
// that order, later entries overriding earlier ones.
package dialect

import (
	_ "embed"
	"log/slog"
	"regexp"
	"strings"

	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/gnames/gntaxobox/pkg/taxon"
	"gopkg.in/yaml.v3"
)

// Box is the family of a template.
type Box int

const (
	// NoBox means the template is not handled by dialects.
	NoBox Box = iota
	// Taxobox is a classic or automatic taxobox.
	Taxobox
	// Speciesbox builds identity from genus and species parameters.
	Speciesbox
	// Soundbox adds a sound recording to an existing record.
	Soundbox
)

// Dialect is the resolved vocabulary for one template.
type Dialect struct {
	Lang string
	Box  Box
	// Rank is the rank of a species box: Species, Subspecies or
	// Infraspecies.
	Rank rank.Rank
	// Automatic is true for automatic taxoboxes and species boxes, which
	// take their classification from taxonomy templates.
	Automatic bool
	Table     Table
}

var (
	taxoboxTable    = compose(enTaxobox(), deTaxobox(), frTaxobox(), esTaxobox())
	speciesboxTable = compose(taxoboxTable, speciesboxOverrides())
	soundboxTable   = soundbox()
)

var templateRe = regexp.MustCompile(`[ _-]`)

// NormalizeTemplate lower-cases a template name and removes spaces,
// underscores and dashes.
func NormalizeTemplate(name string) string {
	return templateRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")
}

// NormalizeKey trims and lower-cases a parameter key and replaces spaces
// with underscores.
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
}

// Lookup selects the dialect of a template found in an article of the
// given language edition. The boolean is false for templates that carry
// no taxon data.
func Lookup(lang, templateName string) (Dialect, bool) {
	var res Dialect
	switch NormalizeTemplate(templateName) {
	case "taxobox", "fichadetaxón", "fichadetaxon":
		res = Dialect{Box: Taxobox, Table: taxoboxTable}
	case "automatictaxobox":
		res = Dialect{Box: Taxobox, Automatic: true, Table: taxoboxTable}
	case "speciesbox":
		res = speciesbox(rank.Species)
	case "subspeciesbox":
		res = speciesbox(rank.Subspecies)
	case "infraspeciesbox":
		res = speciesbox(rank.Infraspecies)
	case "listen":
		res = Dialect{Box: Soundbox, Table: soundboxTable}
	default:
		return res, false
	}
	res.Lang = lang
	return res, true
}

func speciesbox(r rank.Rank) Dialect {
	return Dialect{
		Box:       Speciesbox,
		Rank:      r,
		Automatic: true,
		Table:     speciesboxTable,
	}
}

// Target returns the target of a raw parameter key.
func (d Dialect) Target(key string) (Target, bool) {
	t, ok := d.Table[NormalizeKey(key)]
	return t, ok
}

//go:embed kingdoms.yaml
var kingdomsYAML []byte

var kingdomPages map[string]taxon.KingdomPages

func init() {
	if err := yaml.Unmarshal(kingdomsYAML, &kingdomPages); err != nil {
		slog.Error("Cannot parse kingdom pages", "error", err)
	}
}

// KingdomPages returns titles of kingdom articles for a language. Unknown
// languages get the English titles.
func KingdomPages(lang string) taxon.KingdomPages {
	if res, ok := kingdomPages[strings.ToLower(lang)]; ok {
		return res
	}
	return kingdomPages["en"]
}
