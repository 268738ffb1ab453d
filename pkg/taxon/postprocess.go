package taxon

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gntaxobox/pkg/rank"
)

// Kingdoms lists kingdom names recognized by the kingdom page guard, in the
// order they are tried.
var Kingdoms = []string{
	"Animalia", "Archaea", "Bacteria", "Chromista",
	"Fungi", "Plantae", "Protozoa", "Viruses",
}

// KingdomPages maps a kingdom name from Kingdoms to the title of the
// article about that kingdom in one language edition.
type KingdomPages map[string]string

// Postprocess finalizes the record:
//
//  1. removes the imagemap prefix from image URLs;
//  2. moves classification slots into classification fields and identity;
//  3. combines a genus with a bare species epithet;
//  4. expands abbreviated genus and epithet in the name and synonyms;
//  5. rejects the identity of kingdom-like names outside of the kingdom
//     article itself.
//
// Calls after the first one do nothing.
func (r *Record) Postprocess(pages KingdomPages) {
	if r.done {
		return
	}

	r.Images.stripImagemap()

	for _, v := range r.Slots.Filled() {
		r.SetNameFromSlot(v)
		if isCanonical(v.Rank) {
			r.SetClassification(v.Rank, v.ScientificName)
		}
	}

	if r.Genus != "" && r.SpeciesEpithet != "" {
		binomial := r.Genus + " " + r.SpeciesEpithet
		if r.SetRankedName(rank.Species, binomial) && r.Species == "" {
			r.Species = binomial
		}
	}

	r.ScientificName = r.expandName(r.ScientificName)
	for i := range r.Synonyms {
		r.Synonyms[i] = r.expandName(r.Synonyms[i])
	}

	r.guardKingdom(pages)
	r.done = true
}

// NameFromTitle uses the article title as the scientific name if the
// record has none. It is the only mutation allowed after Postprocess.
func (r *Record) NameFromTitle() {
	if r.ScientificName == "" {
		slog.Debug("No scientific name in taxobox, using title", "title", r.Title)
		r.ScientificName = r.Title
	}
}

func (r *Record) expandName(name string) string {
	if name == "" || r.Genus == "" {
		return name
	}
	gen, _ := utf8.DecodeRuneInString(r.Genus)
	genRe := regexp.MustCompile(`^ *` + regexp.QuoteMeta(string(gen)) + `\. *`)
	if !genRe.MatchString(name) {
		return name
	}
	res := genRe.ReplaceAllLiteralString(name, r.Genus+" ")

	epithet := r.SpeciesEpithet
	if epithet == "" && r.Species != "" {
		if idx := strings.LastIndex(r.Species, " "); idx >= 0 {
			epithet = r.Species[idx+1:]
		}
	}
	if epithet != "" {
		ep, _ := utf8.DecodeRuneInString(epithet)
		epRe := regexp.MustCompile(
			`^` + regexp.QuoteMeta(r.Genus) + ` ` + regexp.QuoteMeta(string(ep)) + `\. *`,
		)
		res = epRe.ReplaceAllLiteralString(res, r.Genus+" "+epithet+" ")
	}
	slog.Debug("Expanding abbreviated name", "name", name, "expanded", res)
	return res
}

func (r *Record) guardKingdom(pages KingdomPages) {
	if r.ScientificName == "" {
		return
	}
	name := strings.ToLower(r.ScientificName)
	var kingdom string
	for _, k := range Kingdoms {
		if strings.HasPrefix(name, strings.ToLower(k)) {
			kingdom = k
			break
		}
	}
	if strings.HasPrefix(name, "virus") {
		kingdom = "Viruses"
	}
	if kingdom == "" {
		return
	}
	if !strings.EqualFold(r.Title, pages[kingdom]) || pages[kingdom] == "" {
		slog.Warn("Wrong kingdom page, ignoring its name",
			"title", r.Title, "name", r.ScientificName)
		r.ScientificName = ""
		r.Rank = rank.None
	}
}
