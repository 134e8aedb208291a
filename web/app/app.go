// Package app provides the MiroFish single-page application shell: the route
// table, embedded templates and assets, and a history-mode resolver that
// answers every declared client route with its rendered view.
package app

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/mirofish/pkg/module"
	"github.com/JaimeStill/mirofish/pkg/views"
	"github.com/JaimeStill/mirofish/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"favicon.svg",
	"site.webmanifest",
	"robots.txt",
}

var routes = []views.Def{
	{Name: "Home", Path: "/", Template: "home.html", Title: "Home", Bundle: "app"},
	{Name: "Process", Path: "/process/:projectId", Template: "process.html", Title: "Process", Bundle: "app", Props: true},
	{Name: "Simulation", Path: "/simulation/:simulationId", Template: "simulation.html", Title: "Simulation", Bundle: "app", Props: true},
}

// NotFound is rendered with a 404 status for any path outside the table.
var NotFound = views.Def{Name: "NotFound", Template: "404.html", Title: "Not Found", Bundle: "app"}

var table = views.MustNew(routes...)

// Table returns the application route table.
func Table() *views.Table {
	return table
}

// Observer receives the outcome of each view resolution.
type Observer interface {
	ViewResolved(route string)
	ViewUnmatched()
}

type noopObserver struct{}

func (noopObserver) ViewResolved(string) {}
func (noopObserver) ViewUnmatched()      {}

type options struct {
	observer Observer
}

// Option configures the app module.
type Option func(*options)

// WithObserver reports view resolutions to o.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// NewModule creates the app module mounted at basePath, serving the views of
// table. Every template referenced by the table must exist in the embedded
// view set.
func NewModule(basePath string, table *views.Table, opts ...Option) (*module.Module, error) {
	o := options{observer: noopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}

	defs := append(table.Defs(), NotFound)
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		defs,
	)
	if err != nil {
		return nil, err
	}

	s := &shell{
		table:     table,
		templates: ts,
		observer:  o.observer,
	}

	return module.New(basePath, s.router()), nil
}

type shell struct {
	table     *views.Table
	templates *web.TemplateSet
	observer  Observer
}

func (s *shell) router() http.Handler {
	r := web.NewRouter()
	r.SetFallback(s.resolve)

	r.HandleFunc("GET /dist/", web.DistServer(distFS, "dist", "/dist"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}

// resolve serves client routes in history mode: the request path selects a
// view from the table and its params are forwarded as props.
func (s *shell) resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	m, ok := s.table.Resolve(r.URL.EscapedPath())
	if !ok {
		s.observer.ViewUnmatched()
		s.templates.ErrorHandler(layout, NotFound, http.StatusNotFound)(w, r)
		return
	}

	s.observer.ViewResolved(m.Def.Name)
	data := s.templates.Data(m.Def, m.Props)
	if err := s.templates.Render(w, layout, m.Def.Template, http.StatusOK, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
