package dialect

import (
	"fmt"
	"maps"

	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/gnames/gntaxobox/pkg/taxon"
)

// Table maps a normalized parameter key to its target.
type Table map[string]Target

// compose merges tables. Entries of later tables win.
func compose(tables ...Table) Table {
	res := make(Table)
	for _, t := range tables {
		maps.Copy(res, t)
	}
	return res
}

// rankKeys are taxobox keys offering a name at a rank. Every key also gets
// an "_authority" companion.
var rankKeys = []struct {
	key  string
	rank rank.Rank
}{
	{"superdomain", rank.Superdomain},
	{"domain", rank.Domain},
	{"superregnum", rank.Superkingdom},
	{"regnum", rank.Kingdom},
	{"kingdom", rank.Kingdom},
	{"subregnum", rank.Subkingdom},
	{"superdivisio", rank.Superdivision},
	{"divisio", rank.Divisio},
	{"division", rank.Divisio},
	{"subdivisio", rank.Subdivision},
	{"superphylum", rank.Superphylum},
	{"phylum", rank.Phylum},
	{"subphylum", rank.Subphylum},
	{"infraphylum", rank.Infraphylum},
	{"microphylum", rank.Microphylum},
	{"nanophylum", rank.Nanophylum},
	{"superclassis", rank.Superclass},
	{"classis", rank.Class},
	{"class", rank.Class},
	{"subclassis", rank.Subclass},
	{"infraclassis", rank.Infraclass},
	{"supercohort", rank.Supercohort},
	{"cohort", rank.Cohort},
	{"subcohort", rank.Subcohort},
	{"magnordo", rank.Magnorder},
	{"superordo", rank.Superorder},
	{"ordo", rank.Order},
	{"order", rank.Order},
	{"subordo", rank.Suborder},
	{"suborder", rank.Suborder},
	{"infraordo", rank.Infraorder},
	{"parvordo", rank.Parvorder},
	{"zoodivisio", rank.Zoodivisio},
	{"zoosectio", rank.Zoosectio},
	{"zoosubsectio", rank.Zoosubsectio},
	{"superfamilia", rank.Superfamily},
	{"familia", rank.Family},
	{"family", rank.Family},
	{"subfamilia", rank.Subfamily},
	{"supertribus", rank.Supertribe},
	{"tribus", rank.Tribe},
	{"subtribus", rank.Subtribe},
	{"alliance", rank.Alliance},
	{"genus", rank.Genus},
	{"subgenus", rank.Subgenus},
	{"sectio", rank.Section},
	{"subsectio", rank.Subsection},
	{"series", rank.Series},
	{"subseries", rank.Subseries},
	{"species_group", rank.SpeciesGroup},
	{"species_subgroup", rank.SpeciesSubgroup},
	{"species_complex", rank.SpeciesComplex},
	{"subspecies", rank.Subspecies},
	{"variety", rank.Variety},
	{"form", rank.Form},
	{"unranked_regnum", rank.KingdomClade},
	{"unranked_kingdom", rank.KingdomClade},
	{"unranked_phylum", rank.PhylumClade},
	{"unranked_classis", rank.ClassClade},
	{"unranked_class", rank.ClassClade},
	{"unranked_ordo", rank.OrderClade},
	{"unranked_order", rank.OrderClade},
	{"unranked_familia", rank.FamilyClade},
	{"unranked_family", rank.FamilyClade},
	{"unranked_genus", rank.GenusClade},
}

func enTaxobox() Table {
	res := Table{
		"taxon":                  field(taxon.FieldScientificName),
		"latin_name":             field(taxon.FieldScientificName),
		"authority":              field(taxon.FieldAuthorship),
		"binomial":               binomial(rank.Species),
		"binominal":              binomial(rank.Species),
		"binomial_authority":     authorship(rank.Species),
		"binominal_authority":    authorship(rank.Species),
		"species_authority":      authorship(rank.Species),
		"trinomial":              ranked(rank.Infraspecies),
		"trinomial_authority":    authorship(rank.Infraspecies),
		"binomial2":              ignore(),
		"binomial2_authority":    ignore(),
		"binomial_authority2":    ignore(),
		"species":                field(taxon.FieldSpecies),
		"name":                   field(taxon.FieldVernacular),
		"status":                 field(taxon.FieldStatus),
		"status_system":          field(taxon.FieldStatusSystem),
		"status_ref":             field(taxon.FieldStatusRef),
		"extinct":                field(taxon.FieldExtinct),
		"fossil_range":           field(taxon.FieldFossilRange),
		"trend":                  field(taxon.FieldTrend),
		"diversity":              field(taxon.FieldDiversity),
		"diversity_link":         field(taxon.FieldDiversityLink),
		"synonyms":               {Kind: Synonyms},
		"synonyms_ref":           field(taxon.FieldSynonymsRef),
		"type_species":           field(taxon.FieldTypeSpecies),
		"type_species_authority": field(taxon.FieldTypeSpeciesAuthority),
		"type_genus":             field(taxon.FieldTypeGenus),
		"type_genus_authority":   field(taxon.FieldTypeGenusAuthority),
		"image":                  media(Images, 0, taxon.MediaURL),
		"image_alt":              media(Images, 0, taxon.MediaAlt),
		"image_caption":          media(Images, 0, taxon.MediaCaption),
		"image2":                 media(Images, 1, taxon.MediaURL),
		"image2_alt":             media(Images, 1, taxon.MediaAlt),
		"image2_caption":         media(Images, 1, taxon.MediaCaption),
		"range_map":              media(RangeMaps, 0, taxon.MediaURL),
		"range_map_alt":          media(RangeMaps, 0, taxon.MediaAlt),
		"range_map_caption":      media(RangeMaps, 0, taxon.MediaCaption),
	}
	for i := 2; i <= 4; i++ {
		k := fmt.Sprintf("range_map%d", i)
		res[k] = media(RangeMaps, i-1, taxon.MediaURL)
		res[k+"_alt"] = media(RangeMaps, i-1, taxon.MediaAlt)
		res[k+"_caption"] = media(RangeMaps, i-1, taxon.MediaCaption)
	}
	for _, v := range rankKeys {
		res[v.key] = ranked(v.rank)
		res[v.key+"_authority"] = authorship(v.rank)
	}
	return res
}

// dePositional is the German convention for numbered classification
// entries: taxonN_wissname, taxonN_autor, taxonN_name, taxonN_rang.
// The unnumbered taxon_* keys are the article taxon. It comes first and
// taxon1_* is its direct parent.
var dePositional = Positional{
	Prefix:     "taxon",
	From:       1,
	To:         9,
	Unnumbered: true,
	Parts: map[string]SlotPart{
		"wissname": SlotScientific,
		"autor":    SlotAuthor,
		"name":     SlotVernacular,
		"rang":     SlotRank,
	},
}

func deTaxobox() Table {
	ohne := func(t Target) Target {
		t.Placeholder = "ohne"
		return t
	}
	res := Table{
		"modus":             field(taxon.FieldPaleoMode),
		"bild":              ohne(media(Images, 0, taxon.MediaURL)),
		"bild2":             ohne(media(Images, 1, taxon.MediaURL)),
		"bild3":             ohne(media(Images, 2, taxon.MediaURL)),
		"bildbeschreibung":  media(Images, 0, taxon.MediaCaption),
		"bildbeschreibung2": media(Images, 1, taxon.MediaCaption),
		"bildbeschreibung3": media(Images, 2, taxon.MediaCaption),
		"erdzeitaltervon":   field(taxon.FieldFossilFrom),
		"erdzeitalterbis":   field(taxon.FieldFossilTo),
		"tausendvon":        field(taxon.FieldFossilFromKyr),
		"tausendbis":        field(taxon.FieldFossilToKyr),
		"miovon":            field(taxon.FieldFossilFromMio),
		"miobis":            field(taxon.FieldFossilToMio),
		"fundorte":          field(taxon.FieldLocalities),
	}
	maps.Copy(res, dePositional.Table())
	return res
}

// frTaxobox is empty, French taxoboxes use the English and German keys.
func frTaxobox() Table {
	return Table{}
}

func esTaxobox() Table {
	return Table{
		"trinominal":           ranked(rank.Infraspecies),
		"trinominal_authority": authorship(rank.Infraspecies),
		"alianza":              ranked(rank.Alliance),
		"especie":              field(taxon.FieldSpecies),
		"especies":             field(taxon.FieldSpecies),
		"dominio":              ranked(rank.Domain),
		"ordo_entry":           ranked(rank.Order),
		"ordre":                ranked(rank.Order),
		"nome":                 field(taxon.FieldVernacular),
		"imagen_caption":       media(Images, 0, taxon.MediaCaption),
		"classis_athority":     authorship(rank.Class),
	}
}

// speciesboxOverrides drop keys that build the identity of a species box
// and keep the rest of the taxobox vocabulary.
func speciesboxOverrides() Table {
	return Table{
		"taxon":      ignore(),
		"species":    ignore(),
		"form":       ignore(),
		"variety":    ignore(),
		"subspecies": ignore(),
		"parent":     ignore(),
		"authority":  rawField(taxon.FieldAuthorship),
		"name":       rawField(taxon.FieldVernacular),
	}
}

func soundbox() Table {
	return Table{
		"filename":    media(Sounds, 0, taxon.MediaURL),
		"title":       media(Sounds, 0, taxon.MediaCaption),
		"description": media(Sounds, 0, taxon.MediaDescription),
		"alt":         media(Sounds, 0, taxon.MediaAlt),
	}
}
