package ioextract

import (
	"bufio"
	"io"
	"sync"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxobox/pkg/taxon"
)

// Sink receives finished records. Write is called from one goroutine at a
// time, Close is called once after the last Write.
type Sink interface {
	Write(articleID string, rec *taxon.Record) error
	Close() error
}

// JSONSink writes one JSON record per line.
type JSONSink struct {
	w  *bufio.Writer
	mu sync.Mutex
}

// NewJSONSink creates a sink that writes records to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: bufio.NewWriter(w)}
}

func (s *JSONSink) Write(articleID string, rec *taxon.Record) error {
	bs, err := rec.JSON(false)
	if err != nil {
		return ExtractSinkError(rec.Title, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err = s.w.Write(append(bs, '\n')); err != nil {
		return ExtractSinkError(rec.Title, err)
	}
	return nil
}

// Close flushes buffered output.
func (s *JSONSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// RowsSink writes archive rows of records, one JSON object per line.
type RowsSink struct {
	w   *bufio.Writer
	enc gnfmt.GNjson
	mu  sync.Mutex
}

// row is the JSON form of taxon.Row.
type row struct {
	Kind   string            `json:"kind"`
	ID     string            `json:"id"`
	Values map[string]string `json:"values"`
}

// NewRowsSink creates a sink that writes rows to w.
func NewRowsSink(w io.Writer) *RowsSink {
	return &RowsSink{w: bufio.NewWriter(w)}
}

func (s *RowsSink) Write(articleID string, rec *taxon.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range rec.Rows(articleID) {
		bs, err := s.enc.Encode(row{Kind: v.Kind.String(), ID: v.ID, Values: v.Values})
		if err != nil {
			return ExtractSinkError(rec.Title, err)
		}
		if _, err = s.w.Write(append(bs, '\n')); err != nil {
			return ExtractSinkError(rec.Title, err)
		}
	}
	return nil
}

// Close flushes buffered output.
func (s *RowsSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}
