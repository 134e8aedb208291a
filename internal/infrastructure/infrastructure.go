// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (lifecycle, logging, metrics) that modules require.
package infrastructure

import (
	"log/slog"

	"github.com/JaimeStill/mirofish/internal/config"
	"github.com/JaimeStill/mirofish/internal/lifecycle"
	"github.com/JaimeStill/mirofish/internal/metrics"
	"github.com/JaimeStill/mirofish/pkg/logging"
)

// Infrastructure holds the core systems shared by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) *Infrastructure {
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
		Metrics:   metrics.New(),
	}
}

// Module returns a copy of the infrastructure whose logger is tagged with
// the module name.
func (i *Infrastructure) Module(name string) *Infrastructure {
	return &Infrastructure{
		Lifecycle: i.Lifecycle,
		Logger:    i.Logger.With("module", name),
		Metrics:   i.Metrics,
	}
}
