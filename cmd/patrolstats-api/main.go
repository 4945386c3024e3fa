package main

import (
	"context"
	"strings"

	"patrolstats/internal/platform/config"
	"patrolstats/internal/platform/logger"
	phttp "patrolstats/internal/platform/net/http"

	"patrolstats/internal/adapters/ingest/sheets"
	"patrolstats/internal/core/row"
	"patrolstats/internal/services/api"
	"patrolstats/internal/services/dataset"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// sheet export URLs live under INGEST_SHEETS_* keyed by source name
	sheetCfg := root.Prefix("INGEST_SHEETS_")

	// bring up logging early
	l := logger.Get()

	urls := map[string]string{}
	for _, src := range row.SourceNames() {
		urls[src] = sheetCfg.MustString("URL_" + strings.ToUpper(src))
	}

	client := sheets.NewClient(sheets.Options{
		URLs:       urls,
		Timeout:    sheetCfg.MayDuration("TIMEOUT", 0),
		MaxRetries: sheetCfg.MayInt("RETRIES", 0),
	})

	holder := dataset.New(client, dataset.Options{
		FetchWorkers: sheetCfg.MayInt("WORKERS", 0),
	})

	// first snapshot before serving; a partial failure still leaves whatever
	// sources landed, so warn and keep going
	ctx := context.Background()
	if err := holder.Refresh(ctx); err != nil {
		l.Warn().Err(err).Msg("initial dataset refresh incomplete")
	}
	go holder.RunPeriodic(ctx, sheetCfg.MayDuration("REFRESH_EVERY", dataset.DefaultRefreshEvery))

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Data:           holder,
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
