// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pdiddy/crossref/pkg/query"
)

// addWorksFlags registers the flags that describe a work-list query.
func addWorksFlags(fs *pflag.FlagSet) {
	fs.StringArray("query", nil, "free-text search term (repeatable)")
	fs.StringArray("field", nil, "field query, e.g. author=Hinton or bibliographic=\"deep learning\" (repeatable)")
	fs.StringArray("filter", nil, "filter key or key:value, e.g. has-funder or from-pub-date:2020-01-01 (repeatable)")
	fs.String("sort", "", "sort field, e.g. score, published, is-referenced-by-count")
	fs.String("order", "", "sort order: asc or desc")
	fs.StringSlice("select", nil, "work elements to return, e.g. DOI,title,author")
	fs.StringArray("facet", nil, "facet name or name:count (repeatable)")
	fs.Int("rows", 0, "rows per page (max 1000)")
	fs.Int("offset", 0, "result offset (max 10000)")
	fs.Int("sample", 0, "return N random works (max 100); overrides everything else")
	fs.String("cursor", "", "deep-paging cursor token; * starts a session")
	fs.String("resource", "", "list the works of one item of this resource: funders, journals, members, prefixes, types")
	fs.String("id", "", "identifier of the --resource item")
}

// worksQueryFromFlags builds a work-list query from the flags registered by
// addWorksFlags.
func worksQueryFromFlags(cmd *cobra.Command) (query.WorkListQuery, error) {
	fs := cmd.Flags()
	terms, _ := fs.GetStringArray("query")
	q := query.NewWorksQuery(terms...)

	fields, _ := fs.GetStringArray("field")
	for _, s := range fields {
		fq, err := query.ParseFieldQuery(s)
		if err != nil {
			return query.WorkListQuery{}, err
		}
		q = q.Field(fq)
	}
	filters, _ := fs.GetStringArray("filter")
	for _, s := range filters {
		f, err := query.ParseFilter(s)
		if err != nil {
			return query.WorkListQuery{}, err
		}
		q = q.Filter(f)
	}
	if s, _ := fs.GetString("sort"); s != "" {
		v, err := query.ParseSort(s)
		if err != nil {
			return query.WorkListQuery{}, err
		}
		q = q.Sort(v)
	}
	if s, _ := fs.GetString("order"); s != "" {
		v, err := query.ParseOrder(s)
		if err != nil {
			return query.WorkListQuery{}, err
		}
		q = q.Order(v)
	}
	elements, _ := fs.GetStringSlice("select")
	for _, e := range elements {
		q = q.Select(query.WorkElement(e))
	}
	facets, _ := fs.GetStringArray("facet")
	for _, s := range facets {
		fc, err := query.ParseFacet(s)
		if err != nil {
			return query.WorkListQuery{}, err
		}
		q = q.Facet(fc)
	}

	rows, _ := fs.GetInt("rows")
	offset, _ := fs.GetInt("offset")
	cursor, _ := fs.GetString("cursor")
	switch {
	case cursor != "":
		if offset != 0 {
			return query.WorkListQuery{}, fmt.Errorf("--cursor and --offset are mutually exclusive")
		}
		c := query.Cursor{Rows: rows}
		if cursor != "*" {
			c.Token = cursor
		}
		q = q.WithControl(c)
	case fs.Changed("rows") && fs.Changed("offset"):
		q = q.WithControl(query.RowsOffset(rows, offset))
	case fs.Changed("rows"):
		q = q.WithControl(query.Rows(rows))
	case fs.Changed("offset"):
		q = q.WithControl(query.Offset(offset))
	}
	if fs.Changed("sample") {
		n, _ := fs.GetInt("sample")
		q = q.Sample(n)
	}

	resource, _ := fs.GetString("resource")
	id, _ := fs.GetString("id")
	if resource == "" {
		if id != "" {
			return query.WorkListQuery{}, fmt.Errorf("--id requires --resource")
		}
		return query.ListWorks(q), nil
	}
	c, err := query.ParseComponent(resource)
	if err != nil {
		return query.WorkListQuery{}, err
	}
	return query.Combine(c, q.Ident(id)), nil
}

// addResourceFlags registers the flags of a secondary resource search.
func addResourceFlags(fs *pflag.FlagSet) {
	fs.StringArray("query", nil, "free-text search term (repeatable)")
	fs.StringArray("filter", nil, "filter key:value (repeatable)")
	fs.Int("rows", 0, "rows per page (max 1000)")
	fs.Int("offset", 0, "result offset (max 10000)")
}

func resourceQueryFromFlags(cmd *cobra.Command) (query.ResourceQuery, error) {
	fs := cmd.Flags()
	terms, _ := fs.GetStringArray("query")
	q := query.NewResourceQuery(terms...)
	filters, _ := fs.GetStringArray("filter")
	for _, s := range filters {
		k, v, ok := strings.Cut(s, ":")
		if !ok || k == "" {
			return query.ResourceQuery{}, fmt.Errorf("filter %q: expected key:value", s)
		}
		q = q.Filter(query.KeyValue{K: k, V: v})
	}
	rows, _ := fs.GetInt("rows")
	offset, _ := fs.GetInt("offset")
	switch {
	case fs.Changed("rows") && fs.Changed("offset"):
		q = q.WithControl(query.RowsOffset(rows, offset))
	case fs.Changed("rows"):
		q = q.WithControl(query.Rows(rows))
	case fs.Changed("offset"):
		q = q.WithControl(query.Offset(offset))
	}
	return q, nil
}

// lookup targets one item of any resource, including works.
func lookup(resource, id string, agency bool) (query.Query, error) {
	c, err := query.ParseComponent(resource)
	if err != nil {
		return nil, err
	}
	if c == query.ComponentWorks {
		if agency {
			return query.WorkAgency(id), nil
		}
		return query.WorkByDOI(id), nil
	}
	if agency {
		return nil, fmt.Errorf("--agency applies to works only")
	}
	return query.Lookup(c, id), nil
}
