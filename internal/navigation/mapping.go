package navigation

import "github.com/JaimeStill/mirofish/pkg/views"

// Route describes one entry of the route table.
type Route struct {
	Name   string   `json:"name"`
	Path   string   `json:"path"`
	Title  string   `json:"title"`
	Params []string `json:"params"`
	Props  bool     `json:"props"`
}

// Resolution is the outcome of resolving a concrete path.
type Resolution struct {
	Route  Route             `json:"route"`
	Params map[string]string `json:"params"`
	Props  map[string]string `json:"props,omitempty"`
}

// Location is a path generated from a named route.
type Location struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func toRoute(d views.Def) Route {
	params := d.Params()
	if params == nil {
		params = []string{}
	}
	return Route{
		Name:   d.Name,
		Path:   d.Path,
		Title:  d.Title,
		Params: params,
		Props:  d.Props,
	}
}

func toResolution(m views.Match) Resolution {
	return Resolution{
		Route:  toRoute(m.Def),
		Params: m.Params,
		Props:  m.Props,
	}
}
