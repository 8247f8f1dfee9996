// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Facet names a metadata dimension the API can aggregate counts over.
type Facet string

const (
	FacetAffiliation         Facet = "affiliation"
	FacetYear                Facet = "published"
	FacetFunderName          Facet = "funder-name"
	FacetFunderDOI           Facet = "funder-doi"
	FacetORCID               Facet = "orcid"
	FacetContainerTitle      Facet = "container-title"
	FacetAssertion           Facet = "assertion"
	FacetArchive             Facet = "archive"
	FacetUpdateType          Facet = "update-type"
	FacetISSN                Facet = "issn"
	FacetLicense             Facet = "license"
	FacetTypeName            Facet = "type-name"
	FacetCategoryName        Facet = "category-name"
	FacetRelationType        Facet = "relation-type"
	FacetAssertionGroup      Facet = "assertion-group"
	FacetPublisherName       Facet = "publisher-name"
	FacetSource              Facet = "source"
	FacetLinkApplication     Facet = "link-application"
	FacetJournalIssue        Facet = "journal-issue"
	FacetJournalVolume       Facet = "journal-volume"
	FacetReferenceVisibility Facet = "reference-visibility"
)

// FacetCount requests counts for one facet. A nil Count asks for all values,
// rendered as '*'.
type FacetCount struct {
	Facet Facet
	Count *int
}

// NewFacet requests up to count values of f.
func NewFacet(f Facet, count int) FacetCount {
	return FacetCount{Facet: f, Count: &count}
}

// AllFacet requests every value of f.
func AllFacet(f Facet) FacetCount {
	return FacetCount{Facet: f}
}

// Key implements Fragment.
func (fc FacetCount) Key() string { return string(fc.Facet) }

// Value implements Fragment.
func (fc FacetCount) Value() (string, bool) {
	if fc.Count == nil {
		return "*", true
	}
	return strconv.Itoa(*fc.Count), true
}

// Facets renders a list of facet requests as the single facet= parameter.
type Facets []FacetCount

// ParamKey implements Param.
func (Facets) ParamKey() string { return "facet" }

// ParamValue implements Param.
func (fs Facets) ParamValue() (string, bool) {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = RenderFragment(f)
	}
	return strings.Join(parts, ","), true
}

// ParseFacet parses "name:count" or "name:*"; a bare name requests all
// values.
func ParseFacet(s string) (FacetCount, error) {
	name, count, _ := strings.Cut(s, ":")
	if name == "" {
		return FacetCount{}, fmt.Errorf("facet %q: missing name", s)
	}
	if count == "" || count == "*" {
		return AllFacet(Facet(name)), nil
	}
	n, err := strconv.Atoi(count)
	if err != nil || n <= 0 {
		return FacetCount{}, fmt.Errorf("facet %q: count must be a positive integer or *", s)
	}
	return NewFacet(Facet(name), n), nil
}
