// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

import "github.com/pdiddy/crossref/pkg/types"

// FacetItem is the count breakdown of one facet.
type FacetItem struct {
	ValueCount int            `json:"value-count"`
	Values     map[string]int `json:"values"`
}

// QueryResponse echoes the search of a list request.
type QueryResponse struct {
	StartIndex  int    `json:"start-index"`
	SearchTerms string `json:"search-terms,omitempty"`
}

// WorkList is the message of a work-list response.
type WorkList struct {
	Facets       map[string]FacetItem `json:"facets"`
	TotalResults int                  `json:"total-results"`
	ItemsPerPage *int                 `json:"items-per-page,omitempty"`
	Query        *QueryResponse       `json:"query,omitempty"`
	Items        []Work               `json:"items"`
	// NextCursor continues a deep-paging session; it is set only when the
	// request carried a cursor.
	NextCursor string `json:"next-cursor,omitempty"`
}

// JournalList is the message of a journal-list response.
type JournalList struct {
	Facets       map[string]FacetItem `json:"facets"`
	TotalResults int                  `json:"total-results"`
	ItemsPerPage *int                 `json:"items-per-page,omitempty"`
	Query        *QueryResponse       `json:"query,omitempty"`
	Items        []Journal            `json:"items"`
}

// DecodeWorkList converts a work-list message. A malformed item fails the
// whole list with its index in the error path.
func DecodeWorkList(v any, opts ...Option) (WorkList, error) {
	m, err := topObject(v)
	if err != nil {
		return WorkList{}, err
	}
	f := fields{m, newDecoder(opts)}
	var l WorkList
	if l.Facets, l.TotalResults, err = listHeader(f); err != nil {
		return WorkList{}, err
	}
	if l.Items, err = required(f, "items", listOf(decodeWork)); err != nil {
		return WorkList{}, err
	}
	l.ItemsPerPage = f.optInt("items-per-page")
	l.Query = optionalPtr(f, "query", decodeQueryResponse)
	l.NextCursor = f.optStr("next-cursor")
	return l, nil
}

// DecodeJournalList converts a journal-list message.
func DecodeJournalList(v any, opts ...Option) (JournalList, error) {
	m, err := topObject(v)
	if err != nil {
		return JournalList{}, err
	}
	f := fields{m, newDecoder(opts)}
	var l JournalList
	if l.Facets, l.TotalResults, err = listHeader(f); err != nil {
		return JournalList{}, err
	}
	if l.Items, err = required(f, "items", listOf(decodeJournal)); err != nil {
		return JournalList{}, err
	}
	l.ItemsPerPage = f.optInt("items-per-page")
	l.Query = optionalPtr(f, "query", decodeQueryResponse)
	return l, nil
}

func listHeader(f fields) (map[string]FacetItem, int, error) {
	facets, err := required(f, "facets", decodeFacets)
	if err != nil {
		return nil, 0, err
	}
	total, err := f.integer("total-results")
	if err != nil {
		return nil, 0, err
	}
	return facets, total, nil
}

func decodeFacets(d *decoder, v any) (map[string]FacetItem, error) {
	m, err := nestedObject(v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]FacetItem, len(m))
	for name, raw := range m {
		item, err := decodeFacetItem(d.at(name), raw)
		if err != nil {
			return nil, types.WithFieldPrefix(err, name)
		}
		out[name] = item
	}
	return out, nil
}

func decodeFacetItem(d *decoder, v any) (FacetItem, error) {
	m, err := nestedObject(v)
	if err != nil {
		return FacetItem{}, err
	}
	f := fields{m, d}
	item := FacetItem{Values: map[string]int{}}
	if n := f.optInt("value-count"); n != nil {
		item.ValueCount = *n
	}
	values, _ := optional(f, "values", toObject)
	for k, raw := range values {
		n, err := toInt(d, raw)
		if err != nil {
			d.at("values").drop(k, err)
			continue
		}
		item.Values[k] = n
	}
	return item, nil
}

func decodeQueryResponse(d *decoder, v any) (QueryResponse, error) {
	m, err := nestedObject(v)
	if err != nil {
		return QueryResponse{}, err
	}
	f := fields{m, d}
	var q QueryResponse
	if n := f.optInt("start-index"); n != nil {
		q.StartIndex = *n
	}
	q.SearchTerms = f.optStr("search-terms")
	return q, nil
}
