// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/pdiddy/crossref/pkg/types"
)

// Diagnostic records an optional field that was present but malformed and
// therefore decoded as absent.
type Diagnostic struct {
	Field string
	Err   error
}

func (d Diagnostic) String() string { return d.Field + ": " + d.Err.Error() }

// Diagnostics collects the optional fields dropped while decoding. The zero
// value is ready to use. It is not safe for concurrent use.
type Diagnostics struct {
	Items []Diagnostic
}

func (ds *Diagnostics) add(field string, err error) {
	if ds != nil {
		ds.Items = append(ds.Items, Diagnostic{Field: field, Err: err})
	}
}

// Len returns the number of recorded diagnostics.
func (ds *Diagnostics) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.Items)
}

// Option configures a decode call.
type Option func(*decoder)

// WithDiagnostics records dropped optional fields into ds.
func WithDiagnostics(ds *Diagnostics) Option {
	return func(d *decoder) { d.diag = ds }
}

// decoder carries the diagnostics sink and the path of the value being
// decoded. Required-field errors are qualified while unwinding instead.
type decoder struct {
	diag *Diagnostics
	path string
}

func newDecoder(opts []Option) *decoder {
	d := &decoder{}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *decoder) at(field string) *decoder {
	p := field
	switch {
	case d.path == "":
	case len(field) > 0 && field[0] == '[':
		p = d.path + field
	default:
		p = d.path + "." + field
	}
	return &decoder{diag: d.diag, path: p}
}

func (d *decoder) drop(field string, err error) {
	d.diag.add(d.at(field).path, err)
}

// topObject asserts the top-level message shape.
func topObject(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &types.InvalidMessageTypeError{Description: describe(v)}
	}
	return m, nil
}

// nestedObject asserts a nested value is an object; the caller adds the path.
func nestedObject(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &types.InvalidTypeError{}
	}
	return m, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "expected object, got null"
	case []any:
		return "expected object, got array"
	case string:
		return "expected object, got string"
	case bool:
		return "expected object, got bool"
	}
	return fmt.Sprintf("expected object, got %T", v)
}

// fields wraps one JSON object with typed accessors. Required accessors
// return MissingFieldError or InvalidTypeError naming the key; optional
// accessors return the zero value when the key is absent or malformed and
// record a diagnostic for the malformed case.
type fields struct {
	m map[string]any
	d *decoder
}

func (f fields) get(key string) (any, bool) {
	v, ok := f.m[key]
	if ok && v == nil {
		return nil, false
	}
	return v, ok
}

func required[T any](f fields, key string, c func(*decoder, any) (T, error)) (T, error) {
	var zero T
	v, ok := f.get(key)
	if !ok {
		return zero, &types.MissingFieldError{Name: key}
	}
	out, err := c(f.d.at(key), v)
	if err != nil {
		return zero, types.WithFieldPrefix(err, key)
	}
	return out, nil
}

func optional[T any](f fields, key string, c func(*decoder, any) (T, error)) (T, bool) {
	var zero T
	v, ok := f.get(key)
	if !ok {
		return zero, false
	}
	out, err := c(f.d.at(key), v)
	if err != nil {
		f.d.drop(key, types.WithFieldPrefix(err, key))
		return zero, false
	}
	return out, true
}

func optionalPtr[T any](f fields, key string, c func(*decoder, any) (T, error)) *T {
	out, ok := optional(f, key, c)
	if !ok {
		return nil
	}
	return &out
}

// listOf lifts an element converter to a list converter. The first bad
// element fails the whole list with its index in the path.
func listOf[T any](c func(*decoder, any) (T, error)) func(*decoder, any) ([]T, error) {
	return func(d *decoder, v any) ([]T, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, &types.InvalidTypeError{}
		}
		out := make([]T, 0, len(arr))
		for i, el := range arr {
			idx := "[" + strconv.Itoa(i) + "]"
			item, err := c(d.at(idx), el)
			if err != nil {
				return nil, types.WithFieldPrefix(err, idx)
			}
			out = append(out, item)
		}
		return out, nil
	}
}

func (f fields) str(key string) (string, error) { return required(f, key, toString) }
func (f fields) optStr(key string) string {
	s, _ := optional(f, key, toString)
	return s
}
func (f fields) strs(key string) ([]string, error) { return required(f, key, listOf(toString)) }
func (f fields) optStrs(key string) []string {
	s, _ := optional(f, key, listOf(toString))
	return s
}
func (f fields) optInt(key string) *int          { return optionalPtr(f, key, toInt) }
func (f fields) optFloat(key string) *float64    { return optionalPtr(f, key, toFloat) }
func (f fields) optBool(key string) *bool        { return optionalPtr(f, key, toBool) }
func (f fields) integer(key string) (int, error) { return required(f, key, toInt) }
func (f fields) boolean(key string) (bool, error) {
	return required(f, key, toBool)
}

func toString(_ *decoder, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &types.InvalidTypeError{}
	}
	return s, nil
}

func toBool(_ *decoder, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &types.InvalidTypeError{}
	}
	return b, nil
}

func toFloat(_ *decoder, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &types.InvalidTypeError{}
		}
		return f, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, &types.InvalidTypeError{}
}

func toInt64(_ *decoder, v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, &types.InvalidTypeError{}
		}
		return int64(f), nil
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, &types.InvalidTypeError{}
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return 0, &types.InvalidTypeError{}
}

func toInt(d *decoder, v any) (int, error) {
	n, err := toInt64(d, v)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func toAny(_ *decoder, v any) (any, error) { return v, nil }

func toObject(_ *decoder, v any) (map[string]any, error) { return nestedObject(v) }
