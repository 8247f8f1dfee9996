// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

import "github.com/pdiddy/crossref/pkg/types"

// Journal is a serial registered with Crossref. Coverage, CoverageType and
// Breakdowns have changed shape across API versions and stay untyped.
type Journal struct {
	Title               string          `json:"title"`
	Publisher           string          `json:"publisher"`
	Subjects            []Subject       `json:"subjects,omitempty"`
	Counts              *Counts         `json:"counts,omitempty"`
	Breakdowns          map[string]any  `json:"breakdowns,omitempty"`
	Coverage            map[string]any  `json:"coverage,omitempty"`
	CoverageType        map[string]any  `json:"coverage-type,omitempty"`
	Flags               map[string]bool `json:"flags,omitempty"`
	ISSN                []string        `json:"ISSN,omitempty"`
	ISSNType            []ISSN          `json:"issn-type,omitempty"`
	LastStatusCheckTime *int64          `json:"last-status-check-time,omitempty"`
}

// Subject is a journal subject. Older responses carry bare names, newer ones
// add the ASJC code.
type Subject struct {
	Name string `json:"name"`
	ASJC *int   `json:"ASJC,omitempty"`
}

// Counts are the DOI totals of a journal.
type Counts struct {
	TotalDOIs    int `json:"total-dois"`
	CurrentDOIs  int `json:"current-dois"`
	BackfileDOIs int `json:"backfile-dois"`
}

// DecodeJournal converts the message of a /journals/{issn} response.
func DecodeJournal(v any, opts ...Option) (Journal, error) {
	if _, err := topObject(v); err != nil {
		return Journal{}, err
	}
	return decodeJournal(newDecoder(opts), v)
}

func decodeJournal(d *decoder, v any) (Journal, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Journal{}, err
	}
	f := fields{m, d}
	var j Journal
	if j.Title, err = f.str("title"); err != nil {
		return Journal{}, err
	}
	if j.Publisher, err = f.str("publisher"); err != nil {
		return Journal{}, err
	}
	j.Subjects, _ = optional(f, "subjects", listOf(decodeSubject))
	j.Counts = optionalPtr(f, "counts", decodeCounts)
	j.Breakdowns, _ = optional(f, "breakdowns", toObject)
	j.Coverage, _ = optional(f, "coverage", toObject)
	j.CoverageType, _ = optional(f, "coverage-type", toObject)
	j.Flags, _ = optional(f, "flags", decodeFlags)
	j.ISSN = f.optStrs("ISSN")
	j.ISSNType, _ = optional(f, "issn-type", oneOrMany(decodeISSN))
	j.LastStatusCheckTime = optionalPtr(f, "last-status-check-time", toInt64)
	return j, nil
}

func decodeSubject(d *decoder, v any) (Subject, error) {
	if s, ok := v.(string); ok {
		return Subject{Name: s}, nil
	}
	m, err := nestedObject(v)
	if err != nil {
		return Subject{}, err
	}
	f := fields{m, d}
	name, err := f.str("name")
	if err != nil {
		return Subject{}, err
	}
	return Subject{Name: name, ASJC: f.optInt("ASJC")}, nil
}

func decodeCounts(d *decoder, v any) (Counts, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Counts{}, err
	}
	f := fields{m, d}
	var c Counts
	if c.TotalDOIs, err = f.integer("total-dois"); err != nil {
		return Counts{}, err
	}
	if c.CurrentDOIs, err = f.integer("current-dois"); err != nil {
		return Counts{}, err
	}
	if c.BackfileDOIs, err = f.integer("backfile-dois"); err != nil {
		return Counts{}, err
	}
	return c, nil
}

// decodeFlags keeps the boolean entries of the flag map. New flags appear
// over time, so the map is not typed per flag.
func decodeFlags(d *decoder, v any) (map[string]bool, error) {
	m, err := nestedObject(v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(m))
	for k, raw := range m {
		b, ok := raw.(bool)
		if !ok {
			d.drop(k, &types.InvalidTypeError{Name: k})
			continue
		}
		out[k] = b
	}
	return out, nil
}

// oneOrMany accepts either a single object or a list of them.
func oneOrMany[T any](c func(*decoder, any) (T, error)) func(*decoder, any) ([]T, error) {
	return func(d *decoder, v any) ([]T, error) {
		if _, ok := v.([]any); ok {
			return listOf(c)(d, v)
		}
		one, err := c(d, v)
		if err != nil {
			return nil, err
		}
		return []T{one}, nil
	}
}
