package main

import (
	"github.com/JaimeStill/mirofish/internal/api"
	"github.com/JaimeStill/mirofish/internal/config"
	"github.com/JaimeStill/mirofish/internal/infrastructure"
	"github.com/JaimeStill/mirofish/pkg/middleware"
	"github.com/JaimeStill/mirofish/pkg/module"
	"github.com/JaimeStill/mirofish/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	table := app.Table()

	apiModule := api.NewModule(cfg, infra, table)

	appModule, err := app.NewModule(
		cfg.App.BasePath,
		table,
		app.WithObserver(infra.Metrics),
	)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}
