// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csl converts decoded works to CSL (Citation Style Language) items
// and writes them as CSL-YAML, the format Pandoc and reference managers read.
package csl

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/crossref/pkg/response"
)

// Item is one bibliographic entry. Field names follow the CSL-JSON schema.
type Item struct {
	ID             string   `yaml:"id"`
	Type           string   `yaml:"type"`
	Title          string   `yaml:"title"`
	Author         []Name   `yaml:"author,omitempty"`
	Editor         []Name   `yaml:"editor,omitempty"`
	ContainerTitle string   `yaml:"container-title,omitempty"`
	Publisher      string   `yaml:"publisher,omitempty"`
	Volume         string   `yaml:"volume,omitempty"`
	Issue          string   `yaml:"issue,omitempty"`
	Page           string   `yaml:"page,omitempty"`
	Issued         *Date    `yaml:"issued,omitempty"`
	DOI            string   `yaml:"DOI,omitempty"`
	URL            string   `yaml:"URL,omitempty"`
	ISSN           []string `yaml:"ISSN,omitempty"`
	ISBN           []string `yaml:"ISBN,omitempty"`
	Abstract       string   `yaml:"abstract,omitempty"`
}

// Name is a person or, with Literal, an organisation.
type Name struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// Date holds date-parts with unknown trailing components removed.
type Date struct {
	DateParts [][]int `yaml:"date-parts"`
}

// cslTypes maps Crossref work types onto CSL types. Unlisted types export as
// "article".
var cslTypes = map[string]string{
	"journal-article":     "article-journal",
	"book-chapter":        "chapter",
	"book-section":        "chapter",
	"book-part":           "chapter",
	"proceedings-article": "paper-conference",
	"book":                "book",
	"monograph":           "book",
	"edited-book":         "book",
	"reference-book":      "book",
	"posted-content":      "article",
	"dissertation":        "thesis",
	"report":              "report",
	"dataset":             "dataset",
	"reference-entry":     "entry",
	"standard":            "standard",
	"peer-review":         "review",
}

// Items converts works, giving each a unique citation key as its id.
func Items(works []response.Work) []Item {
	keys := uniqueKeys(works)
	items := make([]Item, len(works))
	for i, w := range works {
		items[i] = toItem(w)
		items[i].ID = keys[i]
	}
	return items
}

// Write encodes works as a CSL-YAML list to w.
func Write(works []response.Work, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Items(works)); err != nil {
		return err
	}
	return enc.Close()
}

func toItem(w response.Work) Item {
	item := Item{
		Type:      "article",
		Title:     first(w.Title),
		Publisher: w.Publisher,
		Volume:    w.Volume,
		Issue:     w.Issue,
		Page:      w.Page,
		DOI:       w.DOI,
		URL:       w.URL,
		ISSN:      w.ISSN,
		ISBN:      w.ISBN,
		Abstract:  strings.TrimSpace(w.Abstract),
	}
	if t, ok := cslTypes[w.Type]; ok {
		item.Type = t
	}
	if len(w.Subtitle) > 0 && item.Title != "" {
		item.Title += ": " + w.Subtitle[0]
	}
	item.ContainerTitle = first(w.ContainerTitle)
	if item.Page == "" {
		item.Page = w.ArticleNumber
	}
	item.Author = names(w.Author)
	item.Editor = names(w.Editor)
	item.Issued = issued(w)
	return item
}

func names(cs []response.Contributor) []Name {
	var out []Name
	for _, c := range cs {
		switch {
		case c.Family != "":
			out = append(out, Name{Family: c.Family, Given: c.Given})
		case c.Name != "":
			out = append(out, Name{Literal: c.Name})
		}
	}
	return out
}

// issued picks the first known publication date: issued, then print, then
// online.
func issued(w response.Work) *Date {
	for _, d := range []*response.PartialDate{w.Issued, w.PublishedPrint, w.PublishedOnline} {
		if d == nil {
			continue
		}
		f, ok := d.AsDateField()
		if !ok || f.From().IsZero() {
			continue
		}
		c := f.From()
		parts := []int{c.Year}
		if c.Month != 0 {
			parts = append(parts, c.Month)
			if c.Day != 0 {
				parts = append(parts, c.Day)
			}
		}
		return &Date{DateParts: [][]int{parts}}
	}
	return nil
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}
