// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/crossref/pkg/types"
)

// DateParts is the citeproc nested-array date encoding, e.g.
// [[2006, 5, 19]] or [[2019], [2020, 2]]. Each tuple holds year, month and
// day; a zero component is unknown (null or omitted upstream).
type DateParts [][]int

// CalendarDate is one tuple of DateParts. Month and Day are zero when the
// source gave only year or year-month precision.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Time completes the date to midnight UTC, treating an unknown month or day
// as the first. Use it for ordering, not for display.
func (c CalendarDate) Time() time.Time {
	m, d := c.Month, c.Day
	if m == 0 {
		m = 1
	}
	if d == 0 {
		d = 1
	}
	return time.Date(c.Year, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the year is unknown.
func (c CalendarDate) IsZero() bool { return c.Year == 0 }

// String formats the date as YYYY-MM-DD with an unknown month or day shown
// as 01, or "" when the year is unknown.
func (c CalendarDate) String() string {
	if c.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, max(c.Month, 1), max(c.Day, 1))
}

// daysIn returns the number of days of month m in year y.
func daysIn(y, m int) int {
	return time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateShape is the interpretation of a DateParts value.
type DateShape int

const (
	Single DateShape = iota + 1
	Range
	Multi
)

func (s DateShape) String() string {
	switch s {
	case Single:
		return "single"
	case Range:
		return "range"
	case Multi:
		return "multi"
	}
	return "unknown"
}

// DateField is a single date, a from/to range, or a list of dates, in
// source order.
type DateField struct {
	Shape DateShape
	Dates []CalendarDate
}

// AsDateField interprets the parts by tuple count: one is Single, two is a
// Range, more is Multi. It returns false only when there are no tuples.
func (p DateParts) AsDateField() (DateField, bool) {
	if len(p) == 0 {
		return DateField{}, false
	}
	dates := make([]CalendarDate, len(p))
	for i, tuple := range p {
		var c CalendarDate
		if len(tuple) > 0 {
			c.Year = tuple[0]
		}
		if len(tuple) > 1 {
			c.Month = tuple[1]
		}
		if len(tuple) > 2 {
			c.Day = tuple[2]
		}
		dates[i] = c
	}
	shape := Multi
	switch len(p) {
	case 1:
		shape = Single
	case 2:
		shape = Range
	}
	return DateField{Shape: shape, Dates: dates}, true
}

// From returns the single date or the first date of a range or list.
func (f DateField) From() CalendarDate {
	if len(f.Dates) == 0 {
		return CalendarDate{}
	}
	return f.Dates[0]
}

// To returns the end of a range, or the single date.
func (f DateField) To() CalendarDate {
	if len(f.Dates) == 0 {
		return CalendarDate{}
	}
	return f.Dates[len(f.Dates)-1]
}

// Year returns the year of the first date, 0 when unknown.
func (f DateField) Year() int { return f.From().Year }

// String is the display projection: YYYY-MM-DD for Single, from-to for a
// Range and a comma-joined list for Multi.
func (f DateField) String() string {
	switch f.Shape {
	case Single:
		return f.From().String()
	case Range:
		return f.From().String() + "-" + f.To().String()
	case Multi:
		parts := make([]string, len(f.Dates))
		for i, d := range f.Dates {
			parts[i] = d.String()
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// Date is a full date. Timestamp (milliseconds since the epoch) and
// DateTime (ISO 8601) are kept verbatim and are not reconciled with
// DateParts.
type Date struct {
	DateParts DateParts `json:"date-parts"`
	Timestamp int64     `json:"timestamp"`
	DateTime  string    `json:"date-time"`
}

// AsDateField interprets the date parts.
func (d Date) AsDateField() (DateField, bool) { return d.DateParts.AsDateField() }

// String is the display projection of the date parts.
func (d Date) String() string {
	f, ok := d.AsDateField()
	if !ok {
		return ""
	}
	return f.String()
}

// PartialDate carries only date parts, often with year precision.
type PartialDate struct {
	DateParts DateParts `json:"date-parts"`
}

// AsDateField interprets the date parts.
func (d PartialDate) AsDateField() (DateField, bool) { return d.DateParts.AsDateField() }

// String is the display projection of the date parts.
func (d PartialDate) String() string {
	f, ok := d.AsDateField()
	if !ok {
		return ""
	}
	return f.String()
}

// Year returns the year of the first tuple, 0 when unknown.
func (d PartialDate) Year() int {
	f, _ := d.AsDateField()
	return f.Year()
}

func decodeDateParts(d *decoder, v any) (DateParts, error) {
	outer, ok := v.([]any)
	if !ok {
		return nil, &types.InvalidTypeError{}
	}
	parts := make(DateParts, 0, len(outer))
	for i, t := range outer {
		tuple, ok := t.([]any)
		if !ok || len(tuple) > 3 {
			return nil, &types.InvalidTypeError{Name: fmt.Sprintf("[%d]", i)}
		}
		out := make([]int, len(tuple))
		for j, c := range tuple {
			if c == nil {
				continue
			}
			n, err := toInt(d, c)
			if err != nil || n < 0 || (j == 1 && n > 12) || (j == 2 && n > 31) {
				return nil, &types.InvalidTypeError{Name: fmt.Sprintf("[%d][%d]", i, j)}
			}
			out[j] = n
		}
		if len(out) == 3 && out[0] > 0 && out[1] > 0 && out[2] > daysIn(out[0], out[1]) {
			return nil, &types.InvalidTypeError{Name: fmt.Sprintf("[%d][2]", i)}
		}
		parts = append(parts, out)
	}
	return parts, nil
}

func decodeDate(d *decoder, v any) (Date, error) {
	m, err := nestedObject(v)
	if err != nil {
		return Date{}, err
	}
	f := fields{m, d}
	parts, err := required(f, "date-parts", decodeDateParts)
	if err != nil {
		return Date{}, err
	}
	ts, err := required(f, "timestamp", toInt64)
	if err != nil {
		return Date{}, err
	}
	dt, err := f.str("date-time")
	if err != nil {
		return Date{}, err
	}
	return Date{DateParts: parts, Timestamp: ts, DateTime: dt}, nil
}

func decodePartialDate(d *decoder, v any) (PartialDate, error) {
	m, err := nestedObject(v)
	if err != nil {
		return PartialDate{}, err
	}
	parts, err := required(fields{m, d}, "date-parts", decodeDateParts)
	if err != nil {
		return PartialDate{}, err
	}
	return PartialDate{DateParts: parts}, nil
}
