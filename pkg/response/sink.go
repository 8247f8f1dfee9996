// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Sink turns a byte stream into untyped JSON trees for the decoders. The
// stream may hold one value or several, separated by whitespace or
// newlines, and may arrive in arbitrary chunks. Numbers are kept as
// json.Number so large counts and timestamps survive exactly.
type Sink struct {
	dec *json.Decoder
	n   int
}

// NewSink reads JSON values from r.
func NewSink(r io.Reader) *Sink {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Sink{dec: dec}
}

// Next returns the next value, or io.EOF when the stream is exhausted.
func (s *Sink) Next() (any, error) {
	var v any
	if err := s.dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading JSON value %d: %w", s.n+1, err)
	}
	s.n++
	return v, nil
}

// Count returns the number of values read so far.
func (s *Sink) Count() int { return s.n }

// Parse reads exactly one JSON value from b.
func Parse(b []byte) (any, error) {
	s := NewSink(bytes.NewReader(b))
	v, err := s.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty JSON document")
		}
		return nil, err
	}
	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON document")
	}
	return v, nil
}
