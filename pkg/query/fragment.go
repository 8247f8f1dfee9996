// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query compiles typed Crossref query intents into the exact route
// and query-string syntax the REST API expects.
//
// Two join characters must not be confused: a Fragment renders as key:value
// and lives inside a multi-value parameter (filter, facet), while a Param
// renders as key=value and is a top-level query-string parameter joined to its
// siblings with '&'. Compilation is pure and deterministic.
package query

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/crossref/pkg/types"
)

// Fragment is a key, or key:value pair, used inside a multi-value parameter.
type Fragment interface {
	// Key is the wire key. It is never empty.
	Key() string
	// Value returns the wire value and whether one is present.
	Value() (string, bool)
}

// Param is a top-level query-string parameter.
type Param interface {
	// ParamKey is the wire key. It is never empty.
	ParamKey() string
	// ParamValue returns the wire value and whether one is present.
	ParamValue() (string, bool)
}

// RenderFragment joins key and value with ':'.
func RenderFragment(f Fragment) string {
	if v, ok := f.Value(); ok {
		return f.Key() + ":" + v
	}
	return f.Key()
}

// RenderParam joins key and value with '='.
func RenderParam(p Param) string {
	if v, ok := p.ParamValue(); ok {
		return p.ParamKey() + "=" + v
	}
	return p.ParamKey()
}

// RenderParams renders each param and joins them with '&'.
func RenderParams(params ...Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, RenderParam(p))
	}
	return strings.Join(parts, "&")
}

// KeyValue is a literal parameter or fragment. An empty V renders the key
// alone.
type KeyValue struct {
	K string
	V string
}

// ParamKey implements Param.
func (kv KeyValue) ParamKey() string { return kv.K }

// ParamValue implements Param.
func (kv KeyValue) ParamValue() (string, bool) { return kv.V, kv.V != "" }

// Key implements Fragment.
func (kv KeyValue) Key() string { return kv.K }

// Value implements Fragment.
func (kv KeyValue) Value() (string, bool) { return kv.V, kv.V != "" }

// Filters renders a list of filter fragments as the single filter= parameter.
// Fragments keep insertion order and join with ','.
type Filters []Fragment

// ParamKey implements Param.
func (Filters) ParamKey() string { return "filter" }

// ParamValue implements Param.
func (fs Filters) ParamValue() (string, bool) {
	return joinFragments(fs), true
}

// WorksFilters is the typed filter list of a works query.
type WorksFilters []WorksFilter

// ParamKey implements Param.
func (WorksFilters) ParamKey() string { return "filter" }

// ParamValue implements Param.
func (fs WorksFilters) ParamValue() (string, bool) {
	frags := make([]Fragment, len(fs))
	for i, f := range fs {
		frags[i] = f
	}
	return joinFragments(frags), true
}

// checkFragment rejects a fragment whose key or value would split the
// filter parameter or leave the printable ASCII range.
func checkFragment(f Fragment) error {
	k := f.Key()
	if k == "" {
		return &types.ConfigError{Description: "filter with empty key"}
	}
	v, _ := f.Value()
	if !encodable(k) || !encodable(v) {
		return &types.ConfigError{Description: fmt.Sprintf("filter %s: %q cannot be encoded in a filter value", k, v)}
	}
	return nil
}

// encodable reports whether s can sit inside a filter fragment verbatim.
func encodable(s string) bool {
	for _, r := range s {
		if r <= ' ' || r > '~' || strings.ContainsRune("&,#?", r) {
			return false
		}
	}
	return true
}

func joinFragments(fs []Fragment) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = RenderFragment(f)
	}
	return strings.Join(parts, ",")
}

// FormatQuery collapses whitespace runs in a term to single '+' separators.
// Each word is query-escaped, so a literal '+' inside a word survives as %2B.
func FormatQuery(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = url.QueryEscape(w)
	}
	return strings.Join(words, "+")
}

// FormatQueries formats every term and concatenates them with '+'.
// Terms that are blank after trimming contribute nothing.
func FormatQueries(terms []string) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if f := FormatQuery(t); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, "+")
}

// params accumulates rendered parameters in order, skipping empty sections.
type params []string

func (p *params) add(s string) {
	if s != "" {
		*p = append(*p, s)
	}
}

func (p params) String() string { return strings.Join(p, "&") }
