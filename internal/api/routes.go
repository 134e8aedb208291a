package api

import (
	"net/http"

	"github.com/JaimeStill/mirofish/internal/navigation"
	"github.com/JaimeStill/mirofish/internal/proxy"
	"github.com/JaimeStill/mirofish/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, runtime *Runtime, mountPrefix string) {
	navHandler := navigation.NewHandler(
		navigation.New(runtime.Table),
		runtime.Logger,
	)

	groups := []routes.Group{navHandler.Routes()}

	if runtime.Proxy.Enabled() {
		var failures uint32
		if runtime.Proxy.BreakerEnabled() {
			failures = uint32(runtime.Proxy.BreakerFailures)
		}

		rp := proxy.New(
			runtime.Proxy.UpstreamURL(),
			proxy.Options{
				MountPrefix:     mountPrefix,
				Timeout:         runtime.Proxy.TimeoutDuration(),
				BreakerFailures: failures,
				BreakerTimeout:  runtime.Proxy.BreakerTimeoutDuration(),
			},
			runtime.Logger,
		)
		groups = append(groups, proxy.Routes(rp, runtime.Proxy.Prefixes...))
		runtime.Logger.Info("backend proxy enabled",
			"upstream", runtime.Proxy.Upstream,
			"prefixes", runtime.Proxy.Prefixes,
		)
	}

	routes.Register(mux, groups...)
}
