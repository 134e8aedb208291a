// Package module provides prefix-mounted HTTP modules, each with its own
// handler and middleware chain, composed into a single top-level router.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is an HTTP handler mounted at a single-level path prefix. The root
// prefix "/" mounts a module that receives every request not claimed by
// another module or a native route.
type Module struct {
	prefix     string
	router     http.Handler
	middleware []func(http.Handler) http.Handler
}

// New creates a module for prefix. It panics if the prefix is empty, lacks a
// leading slash, or spans more than one path segment.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		router: router,
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. Middleware added first runs outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module router wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	h := m.router
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and dispatches to
// Handler. A request for the bare prefix is served as "/".
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	if m.prefix == "/" {
		m.Handler().ServeHTTP(w, r)
		return
	}

	r2 := new(http.Request)
	*r2 = *r
	u := *r.URL
	r2.URL = &u
	r2.URL.Path = strings.TrimPrefix(r.URL.Path, m.prefix)
	if r.URL.RawPath != "" {
		r2.URL.RawPath = strings.TrimPrefix(r.URL.RawPath, m.prefix)
	}
	if r2.URL.Path == "" {
		r2.URL.Path = "/"
		r2.URL.RawPath = ""
	}

	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "/" {
		return nil
	}
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
