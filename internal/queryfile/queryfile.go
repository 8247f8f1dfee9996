// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package queryfile stores a works query as YAML so a search can be saved,
// edited by hand and replayed later (for example by a harvest run). Each
// part of the query is kept in the same textual form the CLI accepts.
package queryfile

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/crossref/pkg/query"
)

// File is the on-disk representation of a work-list query.
type File struct {
	// Resource and ID select the works of one parent item, e.g. funders and
	// 100000015. Both are empty for a plain /works search.
	Resource string `yaml:"resource,omitempty"`
	ID       string `yaml:"id,omitempty"`

	Query   []string `yaml:"query,omitempty"`
	Fields  []string `yaml:"fields,omitempty"`
	Filters []string `yaml:"filters,omitempty"`
	Sort    string   `yaml:"sort,omitempty"`
	Order   string   `yaml:"order,omitempty"`
	Select  []string `yaml:"select,omitempty"`
	Facets  []string `yaml:"facets,omitempty"`
	Control string   `yaml:"control,omitempty"`
	Sample  int      `yaml:"sample,omitempty"`

	Saved time.Time `yaml:"saved,omitempty"`
}

// FromQuery captures l in serializable form.
func FromQuery(l query.WorkListQuery) File {
	q := l.Query()
	f := File{
		Resource: string(l.Parent),
		ID:       l.Ident.ID,
		Query:    q.Terms,
		Sort:     string(q.SortBy),
		Order:    string(q.OrderBy),
		Sample:   q.SampleSize,
	}
	for _, fq := range q.FieldQueries {
		f.Fields = append(f.Fields, fq.Name+"="+fq.Value)
	}
	for _, wf := range q.Filters {
		f.Filters = append(f.Filters, query.RenderFragment(wf))
	}
	for _, el := range q.Elements {
		f.Select = append(f.Select, string(el))
	}
	for _, fc := range q.Facets {
		f.Facets = append(f.Facets, query.RenderFragment(fc))
	}
	if q.Control != nil {
		f.Control = q.Control.Render()
	}
	return f
}

// ToQuery parses the stored parts back into a query. The first part that
// does not parse is reported with its field name.
func (f File) ToQuery() (query.WorkListQuery, error) {
	q := query.NewWorksQuery(f.Query...)
	for _, s := range f.Fields {
		fq, err := query.ParseFieldQuery(s)
		if err != nil {
			return query.WorkListQuery{}, fmt.Errorf("fields: %w", err)
		}
		q = q.Field(fq)
	}
	for _, s := range f.Filters {
		wf, err := query.ParseFilter(s)
		if err != nil {
			return query.WorkListQuery{}, fmt.Errorf("filters: %w", err)
		}
		q = q.Filter(wf)
	}
	if f.Sort != "" {
		s, err := query.ParseSort(f.Sort)
		if err != nil {
			return query.WorkListQuery{}, fmt.Errorf("sort: %w", err)
		}
		q = q.Sort(s)
	}
	if f.Order != "" {
		o, err := query.ParseOrder(f.Order)
		if err != nil {
			return query.WorkListQuery{}, fmt.Errorf("order: %w", err)
		}
		q = q.Order(o)
	}
	for _, s := range f.Select {
		q = q.Select(query.WorkElement(s))
	}
	for _, s := range f.Facets {
		fc, err := query.ParseFacet(s)
		if err != nil {
			return query.WorkListQuery{}, fmt.Errorf("facets: %w", err)
		}
		q = q.Facet(fc)
	}
	if f.Control != "" {
		rc, err := query.ParseWorkResultControl(f.Control)
		if err != nil {
			return query.WorkListQuery{}, fmt.Errorf("control: %w", err)
		}
		q = q.WithControl(rc)
	}
	if f.Sample > 0 {
		q = q.Sample(f.Sample)
	}

	if f.Resource == "" {
		if f.ID != "" {
			return query.WorkListQuery{}, fmt.Errorf("id %q given without a resource", f.ID)
		}
		return query.ListWorks(q), nil
	}
	c, err := query.ParseComponent(f.Resource)
	if err != nil {
		return query.WorkListQuery{}, fmt.Errorf("resource: %w", err)
	}
	if !query.CanCombine(c) {
		return query.WorkListQuery{}, fmt.Errorf("resource %s has no works", c)
	}
	return query.Combine(c, q.Ident(f.ID)), nil
}

// Write saves l to path as YAML.
func Write(path string, l query.WorkListQuery) error {
	f := FromQuery(l)
	f.Saved = time.Now().UTC()
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing query file: %w", err)
	}
	return nil
}

// Read loads a query file from disk and parses it.
func Read(path string) (query.WorkListQuery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return query.WorkListQuery{}, fmt.Errorf("reading query file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return query.WorkListQuery{}, fmt.Errorf("parsing query file: %w", err)
	}
	l, err := f.ToQuery()
	if err != nil {
		return query.WorkListQuery{}, fmt.Errorf("query file %s: %w", path, err)
	}
	return l, nil
}
