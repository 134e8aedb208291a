package navigation

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/mirofish/pkg/handlers"
	"github.com/JaimeStill/mirofish/pkg/routes"
)

// Handler serves the navigation System over HTTP as JSON.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a handler that reports errors through logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the handler's endpoints grouped under /routes.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/routes",
		Description: "Application route table",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve},
			{Method: "GET", Pattern: "/{name}/url", Handler: h.URL},
		},
	}
}

// List writes every declared route in declaration order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.List())
}

// Resolve expects the path in escaped form, e.g. ?path=/process/a%252Fb.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Resolve(r.URL.Query().Get("path"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// URL builds a path for the named route from its query parameters.
func (h *Handler) URL(w http.ResponseWriter, r *http.Request) {
	params := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	result, err := h.sys.URL(r.PathValue("name"), params)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
