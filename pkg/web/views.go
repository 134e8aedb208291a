// Package web provides infrastructure for serving views with Go templates.
// Templates are parsed once at startup from declarative view definitions,
// so rendering has no per-request parse cost and broken templates fail fast.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/JaimeStill/mirofish/pkg/views"
)

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
// Props carries route parameters forwarded to the view as inputs.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Route    string
	Props    map[string]string
	Data     any
}

// TemplateSet holds pre-parsed templates keyed by view template name.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layout templates once and clones them for each
// view definition. A root basePath ("/") is normalized to the empty string so
// templates can write {{ .BasePath }}/dist/... at any mount point.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, defs []views.Def) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]*template.Template, len(defs))
	for _, d := range defs {
		if _, ok := parsed[d.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", d.Template, err)
		}
		if _, err := t.ParseFS(viewSub, d.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", d.Template, err)
		}
		parsed[d.Template] = t
	}

	if basePath == "/" {
		basePath = ""
	}

	return &TemplateSet{
		views:    parsed,
		basePath: basePath,
	}, nil
}

// BasePath returns the normalized base path included in all ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Data builds the ViewData for a definition and its forwarded props.
func (ts *TemplateSet) Data(def views.Def, props map[string]string) ViewData {
	return ViewData{
		Title:    def.Title,
		Bundle:   def.Bundle,
		BasePath: ts.basePath,
		Route:    def.Name,
		Props:    props,
	}
}

// ViewHandler returns an HTTP handler that renders a view without parameters.
func (ts *TemplateSet) ViewHandler(layout string, def views.Def) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, layout, def.Template, http.StatusOK, ts.Data(def, nil)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// ErrorHandler returns an HTTP handler that renders an error view with the
// given status code.
func (ts *TemplateSet) ErrorHandler(layout string, def views.Def, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, layout, def.Template, status, ts.Data(def, nil)); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// Render executes the layout for the named view template and writes the
// result with the given status. Output is buffered so a failed execution
// writes nothing and can still be reported by the caller.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, viewTemplate string, status int, data ViewData) error {
	t, ok := ts.views[viewTemplate]
	if !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", viewTemplate, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
