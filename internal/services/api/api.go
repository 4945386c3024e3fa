// Package api provides the HTTP API for the application
package api

import (
	"patrolstats/internal/platform/config"
	"patrolstats/internal/platform/logger"
	phttp "patrolstats/internal/platform/net/http"

	"patrolstats/internal/modkit"
	"patrolstats/internal/modkit/httpkit"
	"patrolstats/internal/modkit/module"

	"patrolstats/internal/services/dataset"

	analyticsmod "patrolstats/internal/services/api/analytics/module"
	metamod "patrolstats/internal/services/api/meta/module"
	reportmod "patrolstats/internal/services/api/report/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Data           dataset.Reader
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:  opt.Config,
		Data: opt.Data,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		reportmod.New(deps),
		analyticsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
