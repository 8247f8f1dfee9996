// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crossref/pkg/types"
)

func worksCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addWorksFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestWorksQueryFromFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty", nil, "/works"},
		{"terms and rows", []string{"--query", "economic geography", "--rows", "10"},
			"/works?query=economic+geography&rows=10"},
		{"all parts", []string{
			"--query", "ml", "--field", "author=Hinton", "--filter", "has-funder",
			"--filter", "from-pub-date:2020-01-01", "--select", "DOI,title",
			"--facet", "type-name", "--sort", "published", "--order", "desc",
			"--rows", "5", "--offset", "10",
		}, "/works?query=ml&query.author=Hinton&filter=has-funder:true,from-pub-date:2020-01-01" +
			"&select=DOI,title&facet=type-name:*&sort=published&order=desc&rows=5&offset=10"},
		{"offset only", []string{"--offset", "0"}, "/works?offset=0"},
		{"sample wins", []string{"--query", "x", "--sample", "3"}, "/works?sample=3"},
		{"new cursor", []string{"--cursor", "*", "--rows", "100"}, "/works?cursor=*&rows=100"},
		{"cursor token", []string{"--cursor", "abc"}, "/works?cursor=abc"},
		{"combined", []string{"--resource", "members", "--id", "98", "--rows", "2"},
			"/members/98/works?rows=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := worksQueryFromFlags(worksCommand(t, tt.args...))
			require.NoError(t, err)
			got, err := l.Route()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorksQueryFromFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown filter", []string{"--filter", "nope"}},
		{"unknown sort", []string{"--sort", "nope"}},
		{"unknown order", []string{"--order", "sideways"}},
		{"bad field", []string{"--field", "author"}},
		{"bad facet", []string{"--facet", "orcid:x"}},
		{"cursor with offset", []string{"--cursor", "*", "--offset", "5"}},
		{"id without resource", []string{"--id", "98"}},
		{"unknown resource", []string{"--resource", "books", "--id", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := worksQueryFromFlags(worksCommand(t, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestWorksQueryFromFlags_RouteErrors(t *testing.T) {
	l, err := worksQueryFromFlags(worksCommand(t, "--rows", "5000"))
	require.NoError(t, err)
	_, err = l.Route()
	assert.ErrorIs(t, err, types.ErrRoute)
}

func TestResourceQueryFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addResourceFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags([]string{"--query", "nature", "--filter", "location:Germany", "--rows", "10"}))

	q, err := resourceQueryFromFlags(cmd)
	require.NoError(t, err)
	got, err := q.Params()
	require.NoError(t, err)
	assert.Equal(t, "query=nature&filter=location:Germany&rows=10", got)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		resource, id string
		agency       bool
		want         string
	}{
		{"works", "10.1/x", false, "/works/10.1/x"},
		{"works", "10.1/x", true, "/works/10.1/x/agency"},
		{"funders", "100000015", false, "/funders/100000015"},
		{"types", "journal-article", false, "/types/journal-article"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			q, err := lookup(tt.resource, tt.id, tt.agency)
			require.NoError(t, err)
			got, err := q.Route()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := lookup("funders", "1", true)
	assert.Error(t, err)
	_, err = lookup("books", "1", false)
	assert.Error(t, err)
}
