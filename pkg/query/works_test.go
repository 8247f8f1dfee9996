// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crossref/pkg/types"
)

func mustParams(t *testing.T, q WorksQuery) string {
	t.Helper()
	p, err := q.Params()
	require.NoError(t, err)
	return p
}

func TestWorksQuery_FreeText(t *testing.T) {
	q := NewWorksQuery("economic", "geography")
	assert.Equal(t, "query=economic+geography", mustParams(t, q))
	assert.Equal(t, "query=economic+geography&rows=10", mustParams(t, q.WithControl(Rows(10))))
}

func TestWorksQuery_SampleOverridesEverything(t *testing.T) {
	q := NewWorksQuery("economic").
		Field(AuthorQuery("smith")).
		Filter(HasFunder(), Member("15")).
		Sort(SortPublished).
		Order(OrderDesc).
		Facet(AllFacet(FacetLicense)).
		Select(ElementDOI).
		WithControl(Rows(10)).
		Sample(5)
	assert.Equal(t, "sample=5", mustParams(t, q))

	r, err := q.Route()
	require.NoError(t, err)
	assert.Equal(t, "/works?sample=5", r)

	assert.Equal(t, "sample=5", mustParams(t, RandomWorks(5)))

	viaControl := NewWorksQuery("x").Filter(HasFunder()).Sort(SortScore).WithControl(Sample(5))
	assert.Equal(t, "sample=5", mustParams(t, viaControl))
	n, ok := viaControl.SampleCount()
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = NewWorksQuery("x").WithControl(Rows(5)).SampleCount()
	assert.False(t, ok)
}

func TestWorksQuery_FilterJoining(t *testing.T) {
	q := WorksQuery{}.Filter(HasFunder()).Filter(Member("15"))
	assert.Equal(t, "filter=has-funder:true,member:15", mustParams(t, q))

	reversed := WorksQuery{}.Filter(Member("15"), HasFunder())
	assert.Equal(t, "filter=member:15,has-funder:true", mustParams(t, reversed))
}

func TestWorksQuery_Cursor(t *testing.T) {
	assert.Equal(t, "cursor=*", mustParams(t, WorksQuery{}.NewCursor()))
	assert.Equal(t, "cursor=abc", mustParams(t, WorksQuery{}.NextCursor("abc")))
	assert.Equal(t, "cursor=abc&rows=20", mustParams(t, WorksQuery{}.WithControl(Rows(20)).NextCursor("abc")))

	// rows survive across pages
	q := WorksQuery{}.WithControl(Rows(20)).NewCursor().NextCursor("p2").NextCursor("p3")
	assert.Equal(t, "cursor=p3&rows=20", mustParams(t, q))

	// offsets are dropped, cursors do not combine with them
	q = WorksQuery{}.WithControl(RowsOffset(20, 40)).NextCursor("abc")
	assert.Equal(t, "cursor=abc", mustParams(t, q))
}

func TestWorksQuery_FixedOrder(t *testing.T) {
	q := WorksQuery{}.
		WithControl(Rows(5)).
		Order(OrderAsc).
		Sort(SortIssued).
		Facet(NewFacet(FacetPublisherName, 3)).
		Select(ElementDOI, ElementTitle).
		Filter(HasFunder()).
		Field(TitleQuery("room at the bottom"), AuthorQuery("feynman")).
		Query("physics")
	want := "query=physics" +
		"&query.title=room+at+the+bottom" +
		"&query.author=feynman" +
		"&filter=has-funder:true" +
		"&select=DOI,title" +
		"&facet=publisher-name:3" +
		"&sort=issued" +
		"&order=asc" +
		"&rows=5"
	assert.Equal(t, want, mustParams(t, q))
}

func TestWorksQuery_Route(t *testing.T) {
	r, err := WorksQuery{}.Route()
	require.NoError(t, err)
	assert.Equal(t, "/works", r)

	r, err = NewWorksQuery("ontologies").Route()
	require.NoError(t, err)
	assert.Equal(t, "/works?query=ontologies", r)
}

func TestWorksQuery_BuilderDoesNotAlias(t *testing.T) {
	base := NewWorksQuery("a").Filter(HasFunder())
	left := base.Filter(Member("1"))
	right := base.Filter(Member("2"))
	assert.Equal(t, "query=a&filter=has-funder:true,member:1", mustParams(t, left))
	assert.Equal(t, "query=a&filter=has-funder:true,member:2", mustParams(t, right))
	assert.Equal(t, "query=a&filter=has-funder:true", mustParams(t, base))
}

func TestWorksQuery_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		q    WorksQuery
	}{
		{"rows too large", WorksQuery{}.WithControl(Rows(MaxRows + 1))},
		{"negative offset", WorksQuery{}.WithControl(Offset(-1))},
		{"sample too large", RandomWorks(MaxSample + 1)},
		{"negative sample", RandomWorks(-3)},
		{"empty field query", WorksQuery{}.Field(AuthorQuery("  "))},
		{"flag with value", WorksQuery{}.Filter(StringFilter(FilterHasFunder, "x"))},
		{"negative facet", WorksQuery{}.Facet(NewFacet(FacetORCID, -1))},
		{"cursor rows", WorksQuery{}.WithControl(Cursor{Rows: MaxRows + 1})},
		{"filter value with separators", NewWorksQuery("x").
			Filter(StringFilter(FilterContainerTitle, "Science & Nature, Letters")).
			WithControl(Rows(5))},
		{"filter value with space", WorksQuery{}.Filter(StringFilter(FilterContainerTitle, "Physical Review"))},
		{"filter value with hash", WorksQuery{}.Filter(Doi("10.1/x#y"))},
		{"filter value non-ascii", WorksQuery{}.Filter(StringFilter(FilterContainerTitle, "Zeitschrift-für-Physik"))},
		{"sample control too large", WorksQuery{}.WithControl(Sample(MaxSample + 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.q.Route()
			require.Error(t, err)
			var cfg *types.ConfigError
			assert.True(t, errors.As(err, &cfg))
			assert.ErrorIs(t, err, types.ErrRoute)
		})
	}
}

func TestWorks_Variants(t *testing.T) {
	tests := []struct {
		name   string
		works  Works
		route  string
		expect types.MessageType
	}{
		{"doi", WorkByDOI("10.1037/0003-066X.59.1.29"), "/works/10.1037/0003-066X.59.1.29", types.MessageWork},
		{"agency", WorkAgency("10.1037/0003-066X.59.1.29"), "/works/10.1037/0003-066X.59.1.29/agency", types.MessageWorkAgency},
		{"search", SearchWorks(NewWorksQuery("ontologies")), "/works?query=ontologies", types.MessageWorkList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.works.Route()
			require.NoError(t, err)
			assert.Equal(t, tt.route, r)
			rc := tt.works.Resource()
			assert.Equal(t, ComponentWorks, rc.Primary)
			assert.Equal(t, tt.expect, rc.Expect)
		})
	}

	for _, bad := range []string{"", "10.1/a b", "10.1/x?y"} {
		_, err := WorkByDOI(bad).Route()
		assert.ErrorIs(t, err, types.ErrRoute, bad)
	}
}
