// Package api assembles the JSON API module: the route table manifest and,
// when an upstream is configured, the backend pass-through.
package api

import (
	"net/http"

	"github.com/JaimeStill/mirofish/internal/config"
	"github.com/JaimeStill/mirofish/internal/infrastructure"
	"github.com/JaimeStill/mirofish/pkg/middleware"
	"github.com/JaimeStill/mirofish/pkg/module"
	"github.com/JaimeStill/mirofish/pkg/views"
)

// NewModule creates the API module mounted at cfg.App.APIPath.
func NewModule(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	table *views.Table,
) *module.Module {
	runtime := NewRuntime(cfg, infra, table)

	mux := http.NewServeMux()
	registerRoutes(mux, runtime, cfg.App.APIPath)

	m := module.New(cfg.App.APIPath, mux)
	m.Use(middleware.CORS(&cfg.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m
}
