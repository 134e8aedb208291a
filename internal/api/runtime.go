package api

import (
	"github.com/JaimeStill/mirofish/internal/config"
	"github.com/JaimeStill/mirofish/internal/infrastructure"
	"github.com/JaimeStill/mirofish/pkg/views"
)

// Runtime extends Infrastructure with API-specific dependencies.
type Runtime struct {
	*infrastructure.Infrastructure
	Table *views.Table
	Proxy config.ProxyConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	table *views.Table,
) *Runtime {
	return &Runtime{
		Infrastructure: infra.Module("api"),
		Table:          table,
		Proxy:          cfg.Proxy,
	}
}
