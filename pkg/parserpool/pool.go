// Package parserpool keeps a pool of gnparser instances to reduce taxobox
// names to canonical forms concurrently.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// Name is the part of a parsed name used for lookups.
type Name struct {
	// Canonical is the simple canonical form without authorship and ranks.
	Canonical string
	// Genus is the first word of a bi- or polynomial canonical form.
	Genus string
	// Cardinality is the number of elements of the name: 1 for uninomials,
	// 2 for binomials, 3 for trinomials, 0 if the name was not parsed.
	Cardinality int
}

// Pool provides parsers for concurrent use.
type Pool struct {
	ch   chan gnparser.GNparser
	size int
}

// New creates a pool of parsers for a nomenclatural code.
// If jobsNum is 0 or less, it defaults to runtime.NumCPU().
func New(code nomcode.Code, jobsNum int) *Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}
	cfg := gnparser.NewConfig(gnparser.OptCode(code))
	return &Pool{
		ch:   gnparser.NewPool(cfg, size),
		size: size,
	}
}

// Size returns the number of parsers in the pool.
func (p *Pool) Size() int {
	return p.size
}

// Canonical parses a name string. It blocks while all parsers are busy.
func (p *Pool) Canonical(name string) Name {
	name = strings.TrimSpace(name)
	if name == "" {
		return Name{}
	}

	parser := <-p.ch
	res := parser.ParseName(name)
	p.ch <- parser

	if !res.Parsed || res.Canonical == nil {
		return Name{}
	}
	n := Name{
		Canonical:   res.Canonical.Simple,
		Cardinality: res.Cardinality,
	}
	if n.Cardinality > 1 {
		if genus, _, ok := strings.Cut(n.Canonical, " "); ok {
			n.Genus = genus
		}
	}
	return n
}

// Close drains the pool. After calling Close, the pool should not be used.
func (p *Pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}
