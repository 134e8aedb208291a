// Package views provides an immutable route table that maps URL path patterns
// to view definitions. Patterns use ":name" segments for named parameters,
// which are extracted at match time and optionally forwarded to the view as props.
package views

import (
	"fmt"
	"maps"
	"slices"
)

// Def defines a routed view: its path pattern, unique name, template, title,
// and client bundle. When Props is set, matched parameters are passed to the
// view as inputs.
type Def struct {
	Name     string
	Path     string
	Template string
	Title    string
	Bundle   string
	Props    bool
}

// Params returns the parameter names declared by the path pattern in order.
// Invalid patterns yield no parameters.
func (d Def) Params() []string {
	p, err := parsePattern(d.Path)
	if err != nil {
		return nil
	}
	return p.params()
}

// Match is the result of resolving a path against a Table.
// Params is never nil. Props holds the parameters forwarded to the view and is
// nil unless the matched Def sets Props.
type Match struct {
	Def    Def
	Params map[string]string
	Props  map[string]string
}

type route struct {
	def     Def
	pattern pattern
}

// Table is a route table built once at startup. It is safe for concurrent use
// because it is never modified after New returns.
type Table struct {
	defs   []Def
	ranked []route
	byName map[string]route
}

// New compiles the definitions into a Table. Names and paths must be unique
// across the table, where paths differing only in parameter names count as
// duplicates.
func New(defs ...Def) (*Table, error) {
	t := &Table{
		defs:   slices.Clone(defs),
		ranked: make([]route, 0, len(defs)),
		byName: make(map[string]route, len(defs)),
	}

	shapes := make(map[string]string, len(defs))
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: path %q", ErrEmptyName, d.Path)
		}
		if _, ok := t.byName[d.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
		}

		p, err := parsePattern(d.Path)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", d.Name, err)
		}

		shape := p.shape()
		if other, ok := shapes[shape]; ok {
			return nil, fmt.Errorf("%w: %s and %s both declare %s", ErrDuplicatePath, other, d.Name, d.Path)
		}
		shapes[shape] = d.Name

		r := route{def: d, pattern: p}
		t.byName[d.Name] = r
		t.ranked = append(t.ranked, r)
	}

	slices.SortStableFunc(t.ranked, func(a, b route) int {
		return compare(a.pattern, b.pattern)
	})

	return t, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// tables declared in source.
func MustNew(defs ...Def) *Table {
	t, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve selects the definition whose pattern matches path and extracts its
// named parameters. The path is expected in escaped form (as returned by
// url.URL.EscapedPath); parameter values are unescaped. A single trailing
// slash is ignored, and any query or fragment is discarded.
func (t *Table) Resolve(path string) (Match, bool) {
	parts, ok := splitPath(path)
	if !ok {
		return Match{}, false
	}

	for _, r := range t.ranked {
		params, ok := r.pattern.match(parts)
		if !ok {
			continue
		}

		m := Match{Def: r.def, Params: params}
		if r.def.Props {
			m.Props = maps.Clone(params)
		}
		return m, true
	}

	return Match{}, false
}

// Lookup returns the definition registered under name.
func (t *Table) Lookup(name string) (Def, bool) {
	r, ok := t.byName[name]
	return r.def, ok
}

// URL builds the escaped path for the named route from the given parameters.
func (t *Table) URL(name string, params map[string]string) (string, error) {
	r, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	path, err := r.pattern.build(params)
	if err != nil {
		return "", fmt.Errorf("route %s: %w", name, err)
	}
	return path, nil
}

// Defs returns a copy of the definitions in declaration order.
func (t *Table) Defs() []Def {
	return slices.Clone(t.defs)
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	return len(t.defs)
}
