package dialect

import "fmt"

// Positional describes a family of numbered keys
// <Prefix><N>_<part> writing classification slots. The slot index is N,
// so lower numbers are visited first during postprocessing.
type Positional struct {
	Prefix string
	From   int
	To     int
	// Unnumbered enables keys without a number, like taxon_rang. They
	// write slot 0.
	Unnumbered bool
	// Parts map key suffixes to slot parts.
	Parts map[string]SlotPart
}

// Table expands the family into concrete keys.
func (p Positional) Table() Table {
	res := make(Table)
	for part, sp := range p.Parts {
		for n := p.From; n <= p.To; n++ {
			key := fmt.Sprintf("%s%d_%s", p.Prefix, n, part)
			res[key] = slot(n, sp)
		}
		if p.Unnumbered {
			key := fmt.Sprintf("%s_%s", p.Prefix, part)
			res[key] = slot(0, sp)
		}
	}
	return res
}
