package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gnames/gntaxobox/pkg/dialect"
	"github.com/gnames/gntaxobox/pkg/enrich"
	"github.com/gnames/gntaxobox/pkg/listparse"
	"github.com/gnames/gntaxobox/pkg/rank"
	"github.com/gnames/gntaxobox/pkg/taxon"
	"github.com/gnames/gntaxobox/pkg/wikitext"
)

// Session builds the record of one article. Templates are fed in the
// order they appear, then language links, then Finish is called once.
type Session struct {
	eng       *Engine
	title     string
	cleaner   wikitext.Cleaner
	rec       *taxon.Record
	ambiguous bool
}

// NewSession starts processing of an article.
func (e *Engine) NewSession(title string) *Session {
	ctx := wikitext.Context{
		Footnotes: e.footnotes,
		OnUnknown: e.countTemplate,
	}
	return &Session{
		eng:     e,
		title:   title,
		cleaner: wikitext.Cleaner{Renderer: e.renderer, Context: ctx},
	}
}

// Record returns the record in progress. It is nil until the first
// taxobox is handled.
func (s *Session) Record() *taxon.Record {
	return s.rec
}

// IsAmbiguous is true if the article has more than one taxobox.
func (s *Session) IsAmbiguous() bool {
	return s.ambiguous
}

// HandleTemplate applies one template invocation. Templates that carry
// no taxon data are ignored.
func (s *Session) HandleTemplate(
	ctx context.Context,
	name string,
	params []wikitext.Param,
) {
	d, ok := dialect.Lookup(s.eng.lang, name)
	if !ok || s.ambiguous {
		return
	}

	switch d.Box {
	case dialect.Taxobox, dialect.Speciesbox:
		if s.rec != nil {
			slog.Debug("Several taxoboxes in article", "title", s.title, "template", name)
			s.ambiguous = true
			return
		}
		s.rec = taxon.New(s.eng.lang, s.title)
		if d.Box == dialect.Speciesbox {
			s.speciesIdentity(d, params)
		}
		s.apply(d, params)
		if d.Automatic {
			s.enrich(ctx)
		}
	case dialect.Soundbox:
		s.sound(d, params)
	}
}

// AddLanguageLink records the title of the article in another language
// edition as a vernacular name in that language.
func (s *Session) AddLanguageLink(lang, text string) {
	if s.rec == nil || s.ambiguous {
		return
	}
	s.rec.SetVernacularIn(lang, text)
}

// Finish post-processes the record and returns it. It returns nil if the
// article had no taxobox or was ambiguous.
func (s *Session) Finish() *taxon.Record {
	if s.rec == nil || s.ambiguous {
		return nil
	}
	s.rec.Postprocess(dialect.KingdomPages(s.eng.lang))
	s.rec.NameFromTitle()
	return s.rec
}

// observe renders a template of a taxon page outside of the taxobox, only
// to count templates without a rendering rule.
func (s *Session) observe(raw string) {
	if s.rec == nil || s.ambiguous {
		return
	}
	s.cleaner.Flatten(raw)
}

// slotParts buffers all parts of one positional entry, because every
// Slots.At call starts the entry from scratch.
type slotParts struct {
	sci, author, vern, rank string
}

func (s *Session) apply(d dialect.Dialect, params []wikitext.Param) {
	slots := make(map[int]*slotParts)
	var order []int

	for _, p := range params {
		s.rec.AddRaw(p.Key, p.Value)
		t, ok := d.Target(p.Key)
		if !ok {
			s.eng.countKey(dialect.NormalizeKey(p.Key), p.Value)
			continue
		}

		switch t.Kind {
		case dialect.Ignore:
			continue
		case dialect.Synonyms:
			for _, syn := range listparse.Synonyms(p.Value, s.cleaner) {
				s.rec.AddSynonym(syn)
			}
			continue
		}

		val, ok := s.value(t, p.Value)
		if !ok {
			continue
		}

		switch t.Kind {
		case dialect.Field:
			s.rec.SetField(t.Field, val)
		case dialect.RankedName:
			s.rec.SetClassification(t.Rank, val)
		case dialect.Binomial:
			s.rec.SetNameIfLowerOrEqual(t.Rank, val)
		case dialect.Authorship:
			s.rec.SetAuthorshipAtRank(t.Rank, val)
		case dialect.Slot:
			sp, ok := slots[t.Index]
			if !ok {
				sp = &slotParts{}
				slots[t.Index] = sp
				order = append(order, t.Index)
			}
			switch t.SlotPart {
			case dialect.SlotScientific:
				sp.sci = val
			case dialect.SlotAuthor:
				sp.author = val
			case dialect.SlotVernacular:
				sp.vern = val
			case dialect.SlotRank:
				sp.rank = val
			}
		case dialect.Media:
			s.media(t.MediaKind).At(t.Index).Set(t.MediaPart, val)
		}
	}

	for _, idx := range order {
		sp := slots[idx]
		ns := s.rec.Slots.At(idx)
		ns.ScientificName = sp.sci
		ns.Authorship = sp.author
		ns.VernacularName = sp.vern
		ns.Rank = rank.FromString(sp.rank)
	}
}

// value cleans a raw parameter value for a target. The boolean is false
// when nothing is left or the value is the placeholder of the target.
func (s *Session) value(t dialect.Target, raw string) (string, bool) {
	var res string
	if t.Raw {
		res = s.cleaner.CleanRaw(raw)
	} else {
		var extinct bool
		res, extinct = s.cleaner.CleanName(raw)
		s.rec.SetExtinctMark(extinct)
	}
	if t.Placeholder != "" && strings.EqualFold(res, t.Placeholder) {
		return "", false
	}
	return res, res != ""
}

func (s *Session) media(k dialect.MediaKind) *taxon.MediaList {
	switch k {
	case dialect.RangeMaps:
		return &s.rec.RangeMaps
	case dialect.Sounds:
		return &s.rec.Sounds
	default:
		return &s.rec.Images
	}
}

// speciesIdentity sets the name of a species box. An explicit taxon wins,
// otherwise the name is built from genus and species with an optional
// infraspecific epithet.
func (s *Session) speciesIdentity(d dialect.Dialect, params []wikitext.Param) {
	get := func(key string) (string, bool) {
		var res string
		var ok bool
		for _, p := range params {
			if dialect.NormalizeKey(p.Key) == key {
				res, ok = p.Value, true
			}
		}
		return res, ok
	}
	has := func(key string) bool {
		_, ok := get(key)
		return ok
	}
	name := func(key string) string {
		v, _ := get(key)
		res, extinct := s.cleaner.CleanName(v)
		s.rec.SetExtinctMark(extinct)
		return res
	}

	if has("taxon") {
		s.rec.SetNameIfLowerOrEqual(d.Rank, name("taxon"))
		return
	}
	if !has("genus") || !has("species") {
		return
	}

	species := name("genus") + " " + name("species")
	switch {
	case has("form"):
		s.rec.SetNameIfLowerOrEqual(rank.Form, species+" f. "+name("form"))
	case has("variety"):
		s.rec.SetNameIfLowerOrEqual(rank.Variety, species+" var. "+name("variety"))
	case has("subspecies"):
		s.rec.SetNameIfLowerOrEqual(rank.Subspecies, species+" subsp. "+name("subspecies"))
	default:
		s.rec.SetNameIfLowerOrEqual(rank.Species, species)
		if d.Rank != rank.Species {
			slog.Warn("Species name in infraspecific box",
				"box", d.Rank.String(), "name", species, "title", s.title)
		}
	}
}

// enrich asks the enricher about the name of an automatic box. Failures
// leave the record as it is.
func (s *Session) enrich(ctx context.Context) {
	en := s.eng.enricher
	if en == nil || s.rec.ScientificName == "" {
		return
	}
	c, err := en.Classify(ctx, s.rec.ScientificName)
	if err != nil {
		slog.Warn("Cannot classify automatic taxobox",
			"name", s.rec.ScientificName, "title", s.title, "error", err)
		return
	}
	enrich.Apply(s.rec, c)
}

// sound adds the recording of a listen template to the record. Sounds
// without a file are dropped, as are sounds outside of taxon pages.
func (s *Session) sound(d dialect.Dialect, params []wikitext.Param) {
	if s.rec == nil {
		return
	}
	var m taxon.Media
	for _, p := range params {
		t, ok := d.Target(p.Key)
		if !ok || t.Kind != dialect.Media {
			continue
		}
		val, _ := s.cleaner.CleanName(p.Value)
		m.Set(t.MediaPart, val)
	}
	if m.URL == "" {
		return
	}
	slog.Debug("Sound found", "name", s.rec.ScientificName, "url", m.URL)
	s.rec.Sounds.Append(m)
}
