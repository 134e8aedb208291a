// Package routes provides declarative HTTP route groups registered onto a
// standard library multiplexer.
package routes

import "net/http"

// Route represents an HTTP route with method, pattern, and handler.
// An empty Method matches every method.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

func (r Route) muxPattern(prefix string) string {
	if r.Method == "" {
		return prefix + r.Pattern
	}
	return r.Method + " " + prefix + r.Pattern
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Register adds every route in the groups to mux, joining nested prefixes.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		register(mux, "", g)
	}
}

// Patterns returns the fully qualified mux patterns of the group.
func (g Group) Patterns() []string {
	var out []string
	g.walk("", func(prefix string, r Route) {
		out = append(out, r.muxPattern(prefix))
	})
	return out
}

func register(mux *http.ServeMux, parent string, g Group) {
	g.walk(parent, func(prefix string, r Route) {
		mux.HandleFunc(r.muxPattern(prefix), r.Handler)
	})
}

func (g Group) walk(parent string, fn func(prefix string, r Route)) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		fn(prefix, r)
	}
	for _, child := range g.Children {
		child.walk(prefix, fn)
	}
}
