// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package queryfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crossref/pkg/query"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		q    query.WorkListQuery
	}{
		{
			name: "full works search",
			q: query.ListWorks(query.NewWorksQuery("machine learning").
				Field(query.AuthorQuery("Hinton")).
				Filter(query.HasFunder(), query.Funder("10.13039/100000015"),
					query.FromPubDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
					query.LicenseDelay(30), query.OfType(query.WorkType("journal-article"))).
				Sort(query.SortIsReferencedByCount).
				Order(query.OrderDesc).
				Select(query.WorkElement("DOI"), query.WorkElement("title")).
				Facet(query.NewFacet(query.FacetPublisherName, 5)).
				WithControl(query.RowsOffset(20, 40))),
		},
		{
			name: "combined with cursor",
			q: query.Combine(query.ComponentMembers,
				query.NewWorksQuery().WithControl(query.Cursor{Token: "AoJ+x/1=", Rows: 100}).Ident("98")),
		},
		{
			name: "sample",
			q:    query.ListWorks(query.RandomWorks(5)),
		},
		{
			name: "empty",
			q:    query.ListWorks(query.NewWorksQuery()),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := tt.q.Route()
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "q.yaml")
			require.NoError(t, Write(path, tt.q))
			got, err := Read(path)
			require.NoError(t, err)

			route, err := got.Route()
			require.NoError(t, err)
			assert.Equal(t, want, route)
			assert.Equal(t, tt.q.Parent, got.Parent)
		})
	}
}

func TestRead_HandWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	content := `resource: funders
id: "100000015"
query: [climate]
fields: ["bibliographic=sea level rise"]
filters: [has-license, "until-pub-date:2021-12-31"]
sort: is-reference-by-count
control: "cursor=*&rows=200"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l, err := Read(path)
	require.NoError(t, err)
	route, err := l.Route()
	require.NoError(t, err)
	assert.Equal(t,
		"/funders/100000015/works?query=climate&query.bibliographic=sea+level+rise"+
			"&filter=has-license:true,until-pub-date:2021-12-31&sort=is-referenced-by-count&cursor=*&rows=200",
		route)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown filter", "filters: [has-everything]", "filters"},
		{"bad sort", "sort: sideways", "sort"},
		{"bad order", "order: up", "order"},
		{"bad field", "fields: [shoe=size]", "fields"},
		{"bad facet", "facets: [\"orcid:-2\"]", "facets"},
		{"bad control", "control: rows=ten", "control"},
		{"unknown resource", "resource: books\nid: x", "resource"},
		{"resource without works", "resource: works\nid: x", "has no works"},
		{"id without resource", "id: x", "without a resource"},
		{"not yaml", "query: [unclosed", "parsing query file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "q.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Read(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading query file")
}
