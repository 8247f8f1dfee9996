// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "geography", "geography"},
		{"two words", "economic geography", "economic+geography"},
		{"whitespace runs", "  economic \t\n geography  ", "economic+geography"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"plus inside word", "c++", "c%2B%2B"},
		{"reserved chars", "a&b", "a%26b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuery(tt.in))
		})
	}
}

func TestFormatQueries(t *testing.T) {
	assert.Equal(t, "economic+geography", FormatQueries([]string{"economic", "geography"}))
	assert.Equal(t, "room+at+the+bottom+feynman", FormatQueries([]string{"room at  the bottom", " ", "feynman"}))
	assert.Equal(t, "", FormatQueries(nil))
}

func TestRenderJoinCharacters(t *testing.T) {
	kv := KeyValue{K: "member", V: "15"}
	assert.Equal(t, "member:15", RenderFragment(kv))
	assert.Equal(t, "member=15", RenderParam(kv))
	assert.Equal(t, "location", RenderFragment(KeyValue{K: "location"}))
	assert.Equal(t, "location", RenderParam(KeyValue{K: "location"}))
	assert.Equal(t, "a=1&b=2", RenderParams(KeyValue{"a", "1"}, KeyValue{"b", "2"}))
}

func TestFilters_SingleParameter(t *testing.T) {
	fs := Filters{KeyValue{K: "location", V: "Germany"}, KeyValue{K: "backfile-doi-count", V: "100"}}
	assert.Equal(t, "filter=location:Germany,backfile-doi-count:100", RenderParam(fs))

	wf := WorksFilters{HasFunder(), Member("15")}
	assert.Equal(t, "filter=has-funder:true,member:15", RenderParam(wf))
}

func TestFacets_Render(t *testing.T) {
	fs := Facets{NewFacet(FacetPublisherName, 10), AllFacet(FacetLicense)}
	assert.Equal(t, "facet=publisher-name:10,license:*", RenderParam(fs))
}

func TestParseSortAndOrder(t *testing.T) {
	s, err := ParseSort("published")
	assert.NoError(t, err)
	assert.Equal(t, SortPublished, s)

	s, err = ParseSort("is-reference-by-count")
	assert.NoError(t, err)
	assert.Equal(t, SortIsReferencedByCount, s)
	assert.Equal(t, "sort=is-referenced-by-count", RenderParam(s))

	_, err = ParseSort("popularity")
	assert.Error(t, err)

	o, err := ParseOrder("desc")
	assert.NoError(t, err)
	assert.Equal(t, "order=desc", RenderParam(o))

	_, err = ParseOrder("down")
	assert.Error(t, err)
}

func TestParseFacet(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"publisher-name:10", "publisher-name:10", false},
		{"license:*", "license:*", false},
		{"type-name", "type-name:*", false},
		{":5", "", true},
		{"orcid:zero", "", true},
		{"orcid:0", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			fc, err := ParseFacet(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, RenderFragment(fc))
		})
	}
}
