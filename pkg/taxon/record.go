// Package taxon contains the canonical taxonomic record built from the
// taxobox templates of one article.
//
// A Record is created when the first taxobox-like template of an article is
// found. Dialect mappers mutate it through the setters of this package,
// with rank-aware setters applying the priority merge policy. Postprocess
// runs once after the whole article was scanned. After that the record is
// only read.
package taxon

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/gnames/gnuuid"
)

// Record is the resolved taxonomic data of one article.
type Record struct {
	// ID is a UUIDv5 generated from the language and the article title.
	ID    string `json:"id"`
	Lang  string `json:"lang"`
	Title string `json:"title"`

	ScientificName string    `json:"scientificName,omitempty"`
	Authorship     string    `json:"authorship,omitempty"`
	Rank           rank.Rank `json:"rank"`
	RankVerbatim   string    `json:"rankVerbatim,omitempty"`

	Kingdom  string `json:"kingdom,omitempty"`
	Phylum   string `json:"phylum,omitempty"`
	Class    string `json:"class,omitempty"`
	Order    string `json:"order,omitempty"`
	Family   string `json:"family,omitempty"`
	Genus    string `json:"genus,omitempty"`
	Subgenus string `json:"subgenus,omitempty"`
	// Species is a binomial given in a species field.
	Species        string `json:"species,omitempty"`
	SpeciesEpithet string `json:"speciesEpithet,omitempty"`

	Status       string `json:"status,omitempty"`
	StatusSystem string `json:"statusSystem,omitempty"`
	StatusRef    string `json:"statusRef,omitempty"`
	// Extinct is the verbatim value of an explicit extinct field.
	Extinct string `json:"extinct,omitempty"`
	// ExtinctSymbol is true if the value the current scientific name came
	// from carried an extinct mark.
	ExtinctSymbol bool     `json:"extinctSymbol"`
	FossilRange   string   `json:"fossilRange,omitempty"`
	FossilFrom    string   `json:"fossilFrom,omitempty"`
	FossilTo      string   `json:"fossilTo,omitempty"`
	FossilFromMio *float64 `json:"fossilFromMio,omitempty"`
	FossilToMio   *float64 `json:"fossilToMio,omitempty"`
	Trend         string   `json:"trend,omitempty"`
	Localities    string   `json:"localities,omitempty"`

	Synonyms    []string `json:"synonyms,omitempty"`
	SynonymsRef string   `json:"synonymsRef,omitempty"`

	// Vernaculars are names in the language of the record, without
	// duplicates.
	Vernaculars []string `json:"vernaculars,omitempty"`
	// VernacularsOther maps a language code to a name in that language.
	VernacularsOther map[string]string `json:"vernacularsOther,omitempty"`

	Images    MediaList `json:"-"`
	RangeMaps MediaList `json:"-"`
	Sounds    MediaList `json:"-"`

	TypeSpecies          string `json:"typeSpecies,omitempty"`
	TypeSpeciesAuthority string `json:"typeSpeciesAuthority,omitempty"`
	TypeGenus            string `json:"typeGenus,omitempty"`
	TypeGenusAuthority   string `json:"typeGenusAuthority,omitempty"`

	Diversity     string `json:"diversity,omitempty"`
	DiversityLink string `json:"diversityLink,omitempty"`

	// Raw keeps verbatim parameters of the taxobox templates.
	Raw map[string]string `json:"raw,omitempty"`

	// Slots keep positional and rank-keyed classification entries until
	// Postprocess unifies them.
	Slots Slots `json:"-"`

	remarks     []string
	extinctMark bool
	done        bool
}

// New creates an empty record for an article.
func New(lang, title string) *Record {
	return &Record{
		ID:               gnuuid.New(lang + ":" + title).String(),
		Lang:             lang,
		Title:            title,
		Rank:             rank.None,
		VernacularsOther: make(map[string]string),
		Raw:              make(map[string]string),
	}
}

// Field enumerates record properties that are set directly by a dialect
// key, without the rank-aware merge.
type Field int

const (
	FieldScientificName Field = iota
	FieldAuthorship
	FieldRank
	FieldSpecies
	FieldVernacular
	FieldStatus
	FieldStatusSystem
	FieldStatusRef
	FieldExtinct
	FieldPaleoMode
	FieldFossilRange
	FieldFossilFrom
	FieldFossilTo
	FieldFossilFromMio
	FieldFossilToMio
	FieldFossilFromKyr
	FieldFossilToKyr
	FieldTrend
	FieldLocalities
	FieldSynonymsRef
	FieldTypeSpecies
	FieldTypeSpeciesAuthority
	FieldTypeGenus
	FieldTypeGenusAuthority
	FieldDiversity
	FieldDiversityLink
	FieldRemark
)

// SetField writes a cleaned value into a direct field. Empty values are
// ignored. Numeric fields that fail to parse stay unset.
func (r *Record) SetField(f Field, val string) {
	if val == "" || r.done {
		return
	}
	switch f {
	case FieldScientificName:
		r.SetScientificName(val)
	case FieldAuthorship:
		r.Authorship = val
	case FieldRank:
		r.SetRank(val)
	case FieldSpecies:
		r.SetSpecies(val)
	case FieldVernacular:
		r.AddVernacular(val)
	case FieldStatus:
		r.Status = val
	case FieldStatusSystem:
		r.StatusSystem = val
	case FieldStatusRef:
		r.StatusRef = val
	case FieldExtinct:
		r.Extinct = val
	case FieldPaleoMode:
		if strings.EqualFold(val, "paläobox") {
			r.Extinct = "true"
		}
	case FieldFossilRange:
		r.FossilRange = val
	case FieldFossilFrom:
		r.FossilFrom = val
	case FieldFossilTo:
		r.FossilTo = val
	case FieldFossilFromMio:
		r.FossilFromMio = parseMio(val, 1)
	case FieldFossilToMio:
		r.FossilToMio = parseMio(val, 1)
	case FieldFossilFromKyr:
		r.FossilFromMio = parseMio(val, 1000)
	case FieldFossilToKyr:
		r.FossilToMio = parseMio(val, 1000)
	case FieldTrend:
		r.Trend = val
	case FieldLocalities:
		r.Localities = val
	case FieldSynonymsRef:
		r.SynonymsRef = val
	case FieldTypeSpecies:
		r.TypeSpecies = val
	case FieldTypeSpeciesAuthority:
		r.TypeSpeciesAuthority = val
	case FieldTypeGenus:
		r.TypeGenus = val
	case FieldTypeGenusAuthority:
		r.TypeGenusAuthority = val
	case FieldDiversity:
		r.Diversity = val
	case FieldDiversityLink:
		r.DiversityLink = val
	case FieldRemark:
		r.AddRemark(val)
	}
}

// parseMio converts a number to millions of years. The divisor is 1000
// for values given in thousands of years.
func parseMio(val string, div float64) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(val), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Debug("Cannot parse fossil range bound", "value", val)
		return nil
	}
	f = f / div
	return &f
}

// SetRank stores the verbatim rank string and its interpretation.
func (r *Record) SetRank(verbatim string) {
	r.RankVerbatim = verbatim
	r.Rank = rank.FromString(verbatim)
}

// SetExtinctMark remembers if the value parsed last had an extinct mark.
func (r *Record) SetExtinctMark(b bool) {
	r.extinctMark = b
}

// AddVernacular adds a name in the language of the record.
func (r *Record) AddVernacular(name string) {
	if name == "" {
		return
	}
	for _, v := range r.Vernaculars {
		if v == name {
			return
		}
	}
	r.Vernaculars = append(r.Vernaculars, name)
}

// SetVernacularIn sets the name in another language. The last name given
// for a language wins.
func (r *Record) SetVernacularIn(lang, name string) {
	if lang == "" || name == "" {
		return
	}
	r.VernacularsOther[lang] = name
}

// AddSynonym appends a synonym. Duplicates are kept.
func (r *Record) AddSynonym(syn string) {
	if syn == "" || r.done {
		return
	}
	r.Synonyms = append(r.Synonyms, syn)
}

// AddRemark appends a free text remark.
func (r *Record) AddRemark(s string) {
	r.remarks = append(r.remarks, s)
}

// Remarks returns remarks joined by new lines.
func (r *Record) Remarks() string {
	return strings.Join(r.remarks, "\n")
}

// AddRaw keeps a verbatim template parameter.
func (r *Record) AddRaw(key, val string) {
	r.Raw[key] = val
}

// FossilRangeText combines the free text fossil range with its textual
// and numeric bounds.
func (r *Record) FossilRangeText() string {
	var sb strings.Builder
	if strings.TrimSpace(r.FossilRange) != "" {
		sb.WriteString(r.FossilRange)
	}
	from, to := strings.TrimSpace(r.FossilFrom), strings.TrimSpace(r.FossilTo)
	if from != "" || to != "" {
		sb.WriteString(" " + from + " - " + to)
	}
	if r.FossilFromMio != nil || r.FossilToMio != nil {
		sb.WriteString(" " + mioString(r.FossilFromMio) + " - " + mioString(r.FossilToMio))
	}
	return strings.TrimSpace(sb.String())
}

func mioString(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// IsDone is true after Postprocess.
func (r *Record) IsDone() bool {
	return r.done
}

// JSON encodes the record. Media lists are included.
func (r *Record) JSON(pretty bool) ([]byte, error) {
	type alias Record
	out := struct {
		*alias
		Images    []Media `json:"images,omitempty"`
		RangeMaps []Media `json:"rangeMaps,omitempty"`
		Sounds    []Media `json:"sounds,omitempty"`
		Remarks   string  `json:"remarks,omitempty"`
	}{
		alias:     (*alias)(r),
		Images:    r.Images.Items(),
		RangeMaps: r.RangeMaps.Items(),
		Sounds:    r.Sounds.Items(),
		Remarks:   r.Remarks(),
	}
	enc := gnfmt.GNjson{Pretty: pretty}
	return enc.Encode(out)
}
