// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"

	"github.com/pdiddy/crossref/pkg/types"
)

// WorksIdentQuery binds a works query to one item of a parent resource,
// e.g. the works of funder 100000015.
type WorksIdentQuery struct {
	ID    string
	Query WorksQuery
}

// parents lists the resources whose items own a /works sub-resource.
// Supporting another parent takes one entry here.
var parents = map[Component]bool{
	ComponentFunders:  true,
	ComponentJournals: true,
	ComponentMembers:  true,
	ComponentPrefixes: true,
	ComponentTypes:    true,
}

// CanCombine reports whether c has a /works sub-resource.
func CanCombine(c Component) bool { return parents[c] }

// WorkListQuery targets a route that returns a work list: /works itself or
// /{parent}/{id}/works.
type WorkListQuery struct {
	// Parent is empty for a plain /works search.
	Parent Component
	Ident  WorksIdentQuery
}

// ListWorks wraps a plain /works search.
func ListWorks(q WorksQuery) WorkListQuery {
	return WorkListQuery{Ident: WorksIdentQuery{Query: q}}
}

// Combine targets the works of one item of parent.
func Combine(parent Component, ident WorksIdentQuery) WorkListQuery {
	return WorkListQuery{Parent: parent, Ident: ident}
}

// Query returns the underlying works query.
func (l WorkListQuery) Query() WorksQuery { return l.Ident.Query }

// WithCursor returns the same query continued with a cursor token. An empty
// token starts a new session.
func (l WorkListQuery) WithCursor(token string) WorkListQuery {
	l.Ident.Query = l.Ident.Query.NextCursor(token)
	return l
}

// Route implements Query: /{parent}/{id} followed by the compiled /works route.
func (l WorkListQuery) Route() (string, error) {
	sub, err := l.Ident.Query.Route()
	if err != nil {
		return "", err
	}
	if l.Parent == "" {
		return sub, nil
	}
	if !parents[l.Parent] {
		return "", &types.ConfigError{Description: fmt.Sprintf("%q has no works sub-resource", l.Parent)}
	}
	if err := checkID(l.Parent, l.Ident.ID); err != nil {
		return "", err
	}
	return l.Parent.Route() + "/" + l.Ident.ID + sub, nil
}

// Resource tags the query with its parent resource. A plain search is
// tagged as /works.
func (l WorkListQuery) Resource() ResourceComponent {
	if l.Parent == "" {
		return ResourceComponent{Primary: ComponentWorks, Expect: types.MessageWorkList, Query: l}
	}
	r := Resource{component: l.Parent, kind: resourceWorks, id: l.Ident.ID, works: l.Ident.Query}
	return r.Resource()
}

// WorksOf targets /{c}/{id}/works as a secondary resource value.
func WorksOf(c Component, ident WorksIdentQuery) Resource {
	return Resource{component: c, kind: resourceWorks, id: ident.ID, works: ident.Query}
}
