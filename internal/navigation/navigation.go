// Package navigation exposes the application route table over a JSON API so
// clients and tooling can enumerate routes, resolve paths, and build URLs
// for named routes.
package navigation

import (
	"fmt"

	"github.com/JaimeStill/mirofish/pkg/views"
)

// System answers navigation queries against a route table.
type System interface {
	List() []Route
	Resolve(path string) (Resolution, error)
	URL(name string, params map[string]string) (Location, error)
}

type navigation struct {
	table *views.Table
}

// New creates a navigation system over table.
func New(table *views.Table) System {
	return &navigation{table: table}
}

func (n *navigation) List() []Route {
	defs := n.table.Defs()
	out := make([]Route, 0, len(defs))
	for _, d := range defs {
		out = append(out, toRoute(d))
	}
	return out
}

func (n *navigation) Resolve(path string) (Resolution, error) {
	if path == "" {
		return Resolution{}, ErrPathMissing
	}
	m, ok := n.table.Resolve(path)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrNoMatch, path)
	}
	return toResolution(m), nil
}

func (n *navigation) URL(name string, params map[string]string) (Location, error) {
	path, err := n.table.URL(name, params)
	if err != nil {
		return Location{}, err
	}
	return Location{Name: name, Path: path}, nil
}
