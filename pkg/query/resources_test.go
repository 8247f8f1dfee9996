// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crossref/pkg/types"
)

func route(t *testing.T, q Query) string {
	t.Helper()
	r, err := q.Route()
	require.NoError(t, err)
	return r
}

func TestJournals_FreeFormTrailingSlash(t *testing.T) {
	tests := []struct {
		name string
		q    ResourceQuery
		want string
	}{
		{"terms only", NewResourceQuery("nature physics"), "/journals?query=nature+physics"},
		{"terms and rows", NewResourceQuery("nature").WithControl(Rows(10)), "/journals/?query=nature&rows=10"},
		{"rows only", ResourceQuery{}.WithControl(RowsOffset(10, 20)), "/journals/?rows=10&offset=20"},
		{"empty", ResourceQuery{}, "/journals"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, route(t, SearchJournals(tt.q)))
		})
	}
}

func TestResource_Lookup(t *testing.T) {
	assert.Equal(t, "/journals/1476-4687", route(t, Journal("1476-4687")))
	assert.Equal(t, "/funders/100000015", route(t, Lookup(ComponentFunders, "100000015")))
	assert.Equal(t, "/members/98", route(t, Lookup(ComponentMembers, "98")))
	assert.Equal(t, "/prefixes/10.1016", route(t, Lookup(ComponentPrefixes, "10.1016")))
	assert.Equal(t, "/types/journal-article", route(t, Lookup(ComponentTypes, "journal-article")))

	rc := Journal("1476-4687").Resource()
	assert.Equal(t, ComponentJournals, rc.Primary)
	assert.Equal(t, types.MessageJournal, rc.Expect)
	assert.Equal(t, types.MessageJournalList, SearchJournals(ResourceQuery{}).Resource().Expect)
}

func TestResource_SearchWithFilters(t *testing.T) {
	q := NewResourceQuery("science").Filter(KeyValue{K: "location", V: "Germany"})
	assert.Equal(t, "/funders?query=science&filter=location:Germany", route(t, Search(ComponentFunders, q)))
}

func TestResource_ConfigErrors(t *testing.T) {
	bad := []Query{
		Lookup(ComponentWorks, "10.1/x"),
		Lookup(ComponentJournals, ""),
		Search(ComponentPrefixes, NewResourceQuery("x")),
		SearchJournals(ResourceQuery{}.WithControl(Rows(-1))),
		Combine(ComponentWorks, NewWorksQuery().Ident("x")),
		Combine(ComponentFunders, NewWorksQuery().Ident("")),
		SearchJournals(NewResourceQuery("x").Filter(KeyValue{K: "location", V: "Bosnia and Herzegovina"})),
		Search(ComponentFunders, NewResourceQuery("x").Filter(KeyValue{K: "location", V: "a,b"})),
		Search(ComponentMembers, NewResourceQuery("x").Filter(KeyValue{V: "Germany"})),
	}
	for _, q := range bad {
		_, err := q.Route()
		assert.ErrorIs(t, err, types.ErrRoute)
	}
}

func TestCombine_AllParents(t *testing.T) {
	sub := NewWorksQuery("ontologies").WithControl(Rows(5))
	for _, parent := range []Component{ComponentFunders, ComponentJournals, ComponentMembers, ComponentPrefixes, ComponentTypes} {
		t.Run(string(parent), func(t *testing.T) {
			require.True(t, CanCombine(parent))
			l := Combine(parent, sub.Ident("ID"))
			assert.Equal(t, "/"+string(parent)+"/ID/works?query=ontologies&rows=5", route(t, l))

			rc := l.Resource()
			assert.Equal(t, parent, rc.Primary)
			assert.Equal(t, types.MessageWorkList, rc.Expect)

			// the tagged wrapper compiles to the same route
			assert.Equal(t, route(t, l), route(t, rc.Query))
			assert.Equal(t, route(t, l), route(t, WorksOf(parent, sub.Ident("ID"))))
		})
	}
	assert.False(t, CanCombine(ComponentWorks))
}

func TestWorkListQuery_PlainAndCursor(t *testing.T) {
	l := ListWorks(NewWorksQuery("ontologies").WithControl(Rows(20)))
	assert.Equal(t, "/works?query=ontologies&rows=20", route(t, l))
	assert.Equal(t, ComponentWorks, l.Resource().Primary)

	next := l.WithCursor("tok")
	assert.Equal(t, "/works?query=ontologies&cursor=tok&rows=20", route(t, next))
	// the original is untouched
	assert.Equal(t, "/works?query=ontologies&rows=20", route(t, l))

	combined := Combine(ComponentMembers, WorksQuery{}.Ident("98")).WithCursor("")
	assert.Equal(t, "/members/98/works?cursor=*", route(t, combined))
}

func TestURL(t *testing.T) {
	u, err := URL("https://api.crossref.org/", WorkByDOI("10.1/x"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.crossref.org/works/10.1/x", u)

	_, err = URL("https://api.crossref.org", WorkByDOI(""))
	assert.ErrorIs(t, err, types.ErrRoute)
}
