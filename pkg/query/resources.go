// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"slices"

	"github.com/pdiddy/crossref/pkg/types"
)

// ResourceQuery is the free-form search of a secondary resource such as
// /journals or /funders.
type ResourceQuery struct {
	Terms   []string
	Filters Filters
	Control ResultControl
}

// NewResourceQuery starts a search with free-text terms.
func NewResourceQuery(terms ...string) ResourceQuery {
	return ResourceQuery{Terms: slices.Clone(terms)}
}

// Filter appends a filter fragment, e.g. KeyValue{"location", "Germany"}.
func (q ResourceQuery) Filter(f Fragment) ResourceQuery {
	q.Filters = append(slices.Clip(q.Filters), f)
	return q
}

// WithControl sets the result control.
func (q ResourceQuery) WithControl(rc ResultControl) ResourceQuery {
	q.Control = rc
	return q
}

// Params compiles query, filter and result control in that order.
func (q ResourceQuery) Params() (string, error) {
	if !q.Control.IsZero() {
		if err := q.Control.Validate(); err != nil {
			return "", err
		}
	}
	for _, f := range q.Filters {
		if err := checkFragment(f); err != nil {
			return "", err
		}
	}
	var p params
	if terms := FormatQueries(q.Terms); terms != "" {
		p.add("query=" + terms)
	}
	if len(q.Filters) > 0 {
		p.add(RenderParam(q.Filters))
	}
	if !q.Control.IsZero() {
		p.add(q.Control.Render())
	}
	return p.String(), nil
}

type resourceKind int

const (
	resourceSearch resourceKind = iota
	resourceIdentifier
	resourceWorks
)

// messages maps each secondary resource to the message types of its single
// and list responses. An empty list type means the resource cannot be
// searched.
var messages = map[Component][2]types.MessageType{
	ComponentFunders:  {types.MessageFunder, types.MessageFunderList},
	ComponentJournals: {types.MessageJournal, types.MessageJournalList},
	ComponentMembers:  {types.MessageMember, types.MessageMemberList},
	ComponentPrefixes: {types.MessagePrefix, ""},
	ComponentTypes:    {types.MessageWorkType, types.MessageWorkTypeList},
}

// Resource targets a secondary resource: one item by id, a free-form search,
// or the works of one item.
type Resource struct {
	component Component
	kind      resourceKind
	id        string
	query     ResourceQuery
	works     WorksQuery
}

// Lookup targets /{component}/{id}.
func Lookup(c Component, id string) Resource {
	return Resource{component: c, kind: resourceIdentifier, id: id}
}

// Search targets /{component}?query={terms}.
func Search(c Component, q ResourceQuery) Resource {
	return Resource{component: c, kind: resourceSearch, query: q}
}

// Journal targets /journals/{issn}.
func Journal(issn string) Resource { return Lookup(ComponentJournals, issn) }

// SearchJournals targets /journals?query={terms}.
func SearchJournals(q ResourceQuery) Resource { return Search(ComponentJournals, q) }

// Component returns the primary resource.
func (r Resource) Component() Component { return r.component }

// Route implements Query.
//
// The free-form search reproduces an upstream quirk: the path gains a
// trailing slash only when a result control is present, giving
// /journals?query=x but /journals/?query=x&rows=10.
func (r Resource) Route() (string, error) {
	msgs, ok := messages[r.component]
	if !ok {
		return "", &types.ConfigError{Description: fmt.Sprintf("%q is not a secondary resource", r.component)}
	}
	switch r.kind {
	case resourceIdentifier:
		if err := checkID(r.component, r.id); err != nil {
			return "", err
		}
		return r.component.Route() + "/" + r.id, nil
	case resourceWorks:
		return Combine(r.component, r.works.Ident(r.id)).Route()
	}
	if msgs[1] == "" {
		return "", &types.ConfigError{Description: fmt.Sprintf("%s cannot be searched", r.component)}
	}
	ps, err := r.query.Params()
	if err != nil {
		return "", err
	}
	switch {
	case !r.query.Control.IsZero():
		return r.component.Route() + "/?" + ps, nil
	case ps == "":
		return r.component.Route(), nil
	}
	return r.component.Route() + "?" + ps, nil
}

// Resource implements Query.
func (r Resource) Resource() ResourceComponent {
	msgs := messages[r.component]
	expect := msgs[1]
	switch r.kind {
	case resourceIdentifier:
		expect = msgs[0]
	case resourceWorks:
		expect = types.MessageWorkList
	}
	return ResourceComponent{Primary: r.component, Expect: expect, Query: r}
}
