// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"strings"

	"github.com/pdiddy/crossref/pkg/types"
)

// Component is a top-level REST resource.
type Component string

const (
	ComponentWorks    Component = "works"
	ComponentFunders  Component = "funders"
	ComponentPrefixes Component = "prefixes"
	ComponentMembers  Component = "members"
	ComponentTypes    Component = "types"
	ComponentJournals Component = "journals"
)

// ParseComponent converts a resource name into a Component.
func ParseComponent(s string) (Component, error) {
	switch c := Component(s); c {
	case ComponentWorks, ComponentFunders, ComponentPrefixes, ComponentMembers, ComponentTypes, ComponentJournals:
		return c, nil
	}
	return "", fmt.Errorf("unknown resource %q", s)
}

// Route returns the resource path, e.g. /works.
func (c Component) Route() string { return "/" + string(c) }

// Query is anything that compiles to a route.
type Query interface {
	// Route compiles the query. It fails only with a *types.ConfigError.
	Route() (string, error)
	// Resource tags the query with the resource it targets.
	Resource() ResourceComponent
}

// ResourceComponent tags a query with its primary resource and the message
// type the response must carry.
type ResourceComponent struct {
	Primary Component
	Expect  types.MessageType
	Query   Query
}

// Route compiles the wrapped query.
func (rc ResourceComponent) Route() (string, error) {
	if rc.Query == nil {
		return "", &types.ConfigError{Description: "resource has no query"}
	}
	return rc.Query.Route()
}

// String renders the route, or the compile error in angle brackets.
func (rc ResourceComponent) String() string {
	r, err := rc.Route()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return r
}

// URL joins base and the compiled route of q. Compile errors surface before
// any request is built.
func URL(base string, q Query) (string, error) {
	route, err := q.Route()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + route, nil
}

// checkID rejects identifiers that would change the shape of the route.
func checkID(c Component, id string) error {
	if id == "" {
		return &types.ConfigError{Description: fmt.Sprintf("%s: empty identifier", c)}
	}
	if strings.ContainsAny(id, "?#& \t\r\n") {
		return &types.ConfigError{Description: fmt.Sprintf("%s: identifier %q cannot be encoded in a path", c, id)}
	}
	return nil
}
