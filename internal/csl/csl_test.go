// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package csl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/crossref/pkg/response"
)

func work(doi string, year int, family ...string) response.Work {
	w := response.Work{
		DOI:     doi,
		Title:   []string{"Title of " + doi},
		Type:    "journal-article",
		Created: response.Date{DateParts: response.DateParts{{2024, 5, 6}}},
	}
	if year != 0 {
		w.Issued = &response.PartialDate{DateParts: response.DateParts{{year}}}
	}
	for _, f := range family {
		w.Author = append(w.Author, response.Contributor{Family: f, Given: "A."})
	}
	return w
}

func TestCiteKey(t *testing.T) {
	tests := []struct {
		name   string
		w      response.Work
		want   string
		wantOK bool
	}{
		{"one author", work("10.1/a", 2019, "Smith"), "Smith2019", true},
		{"two authors", work("10.1/b", 2019, "Smith", "Jones"), "Smith&Jones2019", true},
		{"three authors", work("10.1/c", 2019, "Smith", "Jones", "Brown"), "SmithEtAl2019", true},
		{"accents folded", work("10.1/d", 2001, "Gödel", "Erdős"), "Godel&Erdos2001", true},
		{"punctuation dropped", work("10.1/e", 1999, "O'Neil-Smith"), "ONeilSmith1999", true},
		{"falls back to created year", work("10.1/f", 0, "Smith"), "Smith2024", true},
		{"no authors", work("10.1/g", 2019), "", false},
		{"organisation author", func() response.Work {
			w := work("10.1/h", 2020)
			w.Author = []response.Contributor{{Name: "CERN Collaboration"}}
			return w
		}(), "CERNCollaboration2020", true},
		{"first author unnamed", func() response.Work {
			w := work("10.1/i", 2020)
			w.Author = []response.Contributor{{Given: "Ann"}}
			return w
		}(), "", false},
		{"no year", func() response.Work {
			w := work("10.1/j", 0, "Smith")
			w.Created = response.Date{}
			return w
		}(), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CiteKey(tt.w)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItems_UniqueIDs(t *testing.T) {
	items := Items([]response.Work{
		work("10.1/a", 2019, "Smith"),
		work("10.1/b", 2019, "Smith"),
		work("10.1/c", 2020, "Jones"),
		work("10.1/d", 0),
	})
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"Smith2019a", "Smith2019b", "Jones2020", "10.1/d"}, ids)
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "a", suffix(0))
	assert.Equal(t, "z", suffix(25))
	assert.Equal(t, "aa", suffix(26))
	assert.Equal(t, "ab", suffix(27))
}

func TestToItem(t *testing.T) {
	w := work("10.1103/physrevd.1.1", 0, "Lovelace")
	w.Issued = &response.PartialDate{DateParts: response.DateParts{{1970, 3, 0}}}
	w.Subtitle = []string{"A subtitle"}
	w.ContainerTitle = []string{"Physical Review D"}
	w.Publisher = "APS"
	w.Volume = "1"
	w.ArticleNumber = "012001"
	w.Editor = []response.Contributor{{Name: "Editorial Board"}}

	item := toItem(w)
	assert.Equal(t, "article-journal", item.Type)
	assert.Equal(t, "Title of 10.1103/physrevd.1.1: A subtitle", item.Title)
	assert.Equal(t, "Physical Review D", item.ContainerTitle)
	assert.Equal(t, "012001", item.Page)
	assert.Equal(t, []Name{{Family: "Lovelace", Given: "A."}}, item.Author)
	assert.Equal(t, []Name{{Literal: "Editorial Board"}}, item.Editor)
	require.NotNil(t, item.Issued)
	assert.Equal(t, [][]int{{1970, 3}}, item.Issued.DateParts)
}

func TestToItem_DateFallbackAndType(t *testing.T) {
	w := work("10.1/x", 0)
	w.Type = "something-new"
	w.PublishedOnline = &response.PartialDate{DateParts: response.DateParts{{2021, 7, 9}}}

	item := toItem(w)
	assert.Equal(t, "article", item.Type)
	require.NotNil(t, item.Issued)
	assert.Equal(t, [][]int{{2021, 7, 9}}, item.Issued.DateParts)

	w.PublishedOnline = nil
	assert.Nil(t, toItem(w).Issued)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write([]response.Work{
		work("10.1/a", 2019, "Smith", "Jones"),
		work("10.1/b", 2020),
	}, &buf))

	var got []Item
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Smith&Jones2019", got[0].ID)
	assert.Equal(t, "article-journal", got[0].Type)
	assert.Equal(t, [][]int{{2019}}, got[0].Issued.DateParts)
	assert.Equal(t, "10.1/b", got[1].ID)
	assert.Contains(t, buf.String(), "DOI: 10.1/a")
}
