// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import "fmt"

// Sort selects the field list results are sorted by.
type Sort string

const (
	SortScore               Sort = "score"
	SortRelevance           Sort = "relevance"
	SortUpdated             Sort = "updated"
	SortDeposited           Sort = "deposited"
	SortIndexed             Sort = "indexed"
	SortPublished           Sort = "published"
	SortPublishedPrint      Sort = "published-print"
	SortPublishedOnline     Sort = "published-online"
	SortIssued              Sort = "issued"
	SortIsReferencedByCount Sort = "is-referenced-by-count"
	SortReferenceCount      Sort = "reference-count"
	SortCreated             Sort = "created"
)

var sorts = []Sort{
	SortScore, SortRelevance, SortUpdated, SortDeposited, SortIndexed,
	SortPublished, SortPublishedPrint, SortPublishedOnline, SortIssued,
	SortIsReferencedByCount, SortReferenceCount, SortCreated,
}

// ParseSort converts a wire name into a Sort. The legacy spelling
// "is-reference-by-count" is accepted as an alias.
func ParseSort(s string) (Sort, error) {
	if s == "is-reference-by-count" {
		return SortIsReferencedByCount, nil
	}
	for _, v := range sorts {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown sort %q", s)
}

// ParamKey implements Param.
func (Sort) ParamKey() string { return "sort" }

// ParamValue implements Param.
func (s Sort) ParamValue() (string, bool) { return string(s), true }

// Order is the direction of a sort.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder converts "asc" or "desc" into an Order.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderAsc, OrderDesc:
		return Order(s), nil
	}
	return "", fmt.Errorf("unable to convert %q to order", s)
}

// ParamKey implements Param.
func (Order) ParamKey() string { return "order" }

// ParamValue implements Param.
func (o Order) ParamValue() (string, bool) { return string(o), true }

// Visibility is the reference distribution policy of a work.
type Visibility string

const (
	VisibilityOpen    Visibility = "open"
	VisibilityLimited Visibility = "limited"
	VisibilityClosed  Visibility = "closed"
)
