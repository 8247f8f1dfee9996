// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/crossref/pkg/types"
)

// WorksQuery is the free-text search of /works. Every parameter is ANDed.
// Builder methods return a modified copy, so a query can be reused as a
// template.
//
// When a sample size is set, through SampleSize or a Sample control, every
// other parameter is ignored and the query compiles to sample={n} alone.
type WorksQuery struct {
	Terms        []string
	FieldQueries []FieldQuery
	Filters      WorksFilters
	SortBy       Sort
	OrderBy      Order
	Elements     []WorkElement
	Facets       Facets
	Control      WorkResultControl
	SampleSize   int
}

// NewWorksQuery starts a query with free-text terms.
func NewWorksQuery(terms ...string) WorksQuery {
	return WorksQuery{Terms: slices.Clone(terms)}
}

// RandomWorks requests n random works.
func RandomWorks(n int) WorksQuery {
	return WorksQuery{SampleSize: n}
}

// Query appends free-text terms.
func (q WorksQuery) Query(terms ...string) WorksQuery {
	q.Terms = append(slices.Clip(q.Terms), terms...)
	return q
}

// Field appends field-scoped queries.
func (q WorksQuery) Field(fqs ...FieldQuery) WorksQuery {
	q.FieldQueries = append(slices.Clip(q.FieldQueries), fqs...)
	return q
}

// Filter appends filters. They render in insertion order.
func (q WorksQuery) Filter(fs ...WorksFilter) WorksQuery {
	q.Filters = append(slices.Clip(q.Filters), fs...)
	return q
}

// Sort sets the sort field.
func (q WorksQuery) Sort(s Sort) WorksQuery {
	q.SortBy = s
	return q
}

// Order sets the sort direction.
func (q WorksQuery) Order(o Order) WorksQuery {
	q.OrderBy = o
	return q
}

// Select restricts the returned fields.
func (q WorksQuery) Select(els ...WorkElement) WorksQuery {
	q.Elements = append(slices.Clip(q.Elements), els...)
	return q
}

// Facet appends a facet request.
func (q WorksQuery) Facet(fc FacetCount) WorksQuery {
	q.Facets = append(slices.Clip(q.Facets), fc)
	return q
}

// WithControl sets the result control, replacing any cursor.
func (q WorksQuery) WithControl(rc WorkResultControl) WorksQuery {
	q.Control = rc
	return q
}

// Sample sets the random sample size.
func (q WorksQuery) Sample(n int) WorksQuery {
	q.SampleSize = n
	return q
}

// SampleCount returns the random sample size set with Sample or with a
// Sample result control. Either one overrides every other parameter.
func (q WorksQuery) SampleCount() (int, bool) {
	if q.SampleSize != 0 {
		return q.SampleSize, true
	}
	if rc, ok := q.Control.(ResultControl); ok {
		return rc.SampleSize()
	}
	return 0, false
}

// NewCursor starts a deep-paging session, keeping any row limit.
func (q WorksQuery) NewCursor() WorksQuery {
	return q.NextCursor("")
}

// NextCursor continues a deep-paging session with the token from the last
// page. A row limit from a Rows control or an earlier cursor is kept.
func (q WorksQuery) NextCursor(token string) WorksQuery {
	c := Cursor{Token: token}
	switch rc := q.Control.(type) {
	case ResultControl:
		if rc.kind == controlRows {
			c.Rows = rc.rows
		}
	case Cursor:
		c.Rows = rc.Rows
	}
	q.Control = c
	return q
}

// Ident binds the query to an item of a parent resource.
func (q WorksQuery) Ident(id string) WorksIdentQuery {
	return WorksIdentQuery{ID: id, Query: q}
}

func (q WorksQuery) validate() error {
	for _, fq := range q.FieldQueries {
		if !strings.HasPrefix(fq.Name, "query.") || FormatQuery(fq.Value) == "" {
			return &types.ConfigError{Description: fmt.Sprintf("invalid field query %s=%q", fq.Name, fq.Value)}
		}
	}
	for _, f := range q.Filters {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	for _, e := range q.Elements {
		if e == "" {
			return &types.ConfigError{Description: "empty select element"}
		}
	}
	for _, fc := range q.Facets {
		if fc.Facet == "" || (fc.Count != nil && *fc.Count < 0) {
			return &types.ConfigError{Description: fmt.Sprintf("invalid facet %q", RenderFragment(fc))}
		}
	}
	if q.Control != nil {
		return q.Control.Validate()
	}
	return nil
}

// Params compiles the query string without the leading '?'. Sections appear
// in a fixed order: query, field queries, filter, select, facet, sort,
// order, then result control or cursor.
func (q WorksQuery) Params() (string, error) {
	if n, ok := q.SampleCount(); ok {
		if err := validateSample(n); err != nil {
			return "", err
		}
		return "sample=" + strconv.Itoa(n), nil
	}
	if err := q.validate(); err != nil {
		return "", err
	}

	var p params
	if terms := FormatQueries(q.Terms); terms != "" {
		p.add("query=" + terms)
	}
	for _, fq := range q.FieldQueries {
		p.add(RenderParam(fq))
	}
	if len(q.Filters) > 0 {
		p.add(RenderParam(q.Filters))
	}
	if len(q.Elements) > 0 {
		names := make([]string, len(q.Elements))
		for i, e := range q.Elements {
			names[i] = string(e)
		}
		p.add("select=" + strings.Join(names, ","))
	}
	if len(q.Facets) > 0 {
		p.add(RenderParam(q.Facets))
	}
	if q.SortBy != "" {
		p.add(RenderParam(q.SortBy))
	}
	if q.OrderBy != "" {
		p.add(RenderParam(q.OrderBy))
	}
	if q.Control != nil {
		p.add(q.Control.Render())
	}
	return p.String(), nil
}

// Route compiles the query to /works?{params}, or /works when it has none.
func (q WorksQuery) Route() (string, error) {
	return withParams(ComponentWorks.Route(), q.Params)
}

// Resource implements Query.
func (q WorksQuery) Resource() ResourceComponent {
	return ResourceComponent{Primary: ComponentWorks, Expect: types.MessageWorkList, Query: q}
}

func withParams(path string, compile func() (string, error)) (string, error) {
	ps, err := compile()
	if err != nil {
		return "", err
	}
	if ps == "" {
		return path, nil
	}
	return path + "?" + ps, nil
}

type worksKind int

const (
	worksSearch worksKind = iota
	worksIdentifier
	worksAgency
)

// Works targets the /works resource: a single DOI, the registration agency
// of a DOI, or a search.
type Works struct {
	kind  worksKind
	doi   string
	query WorksQuery
}

// WorkByDOI targets /works/{doi}.
func WorkByDOI(doi string) Works { return Works{kind: worksIdentifier, doi: doi} }

// WorkAgency targets /works/{doi}/agency.
func WorkAgency(doi string) Works { return Works{kind: worksAgency, doi: doi} }

// SearchWorks targets /works?{params}.
func SearchWorks(q WorksQuery) Works { return Works{kind: worksSearch, query: q} }

// Route implements Query.
func (w Works) Route() (string, error) {
	switch w.kind {
	case worksIdentifier, worksAgency:
		if err := checkID(ComponentWorks, w.doi); err != nil {
			return "", err
		}
		r := ComponentWorks.Route() + "/" + w.doi
		if w.kind == worksAgency {
			r += "/agency"
		}
		return r, nil
	}
	return w.query.Route()
}

// Resource implements Query.
func (w Works) Resource() ResourceComponent {
	expect := types.MessageWorkList
	switch w.kind {
	case worksIdentifier:
		expect = types.MessageWork
	case worksAgency:
		expect = types.MessageWorkAgency
	}
	return ResourceComponent{Primary: ComponentWorks, Expect: expect, Query: w}
}
