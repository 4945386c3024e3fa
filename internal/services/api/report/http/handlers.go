// Package http provides http transport for report
package http

import (
	stdhttp "net/http"

	"patrolstats/internal/modkit/httpkit"
	"patrolstats/internal/services/api/report/domain"
	svc "patrolstats/internal/services/api/report/service"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// flat summary counters under the filter
	httpkit.PostJSON[domain.FilterInput](r, "/summary", h.summary)

	// month comparison and per-org ranking series
	httpkit.PostJSON[domain.FilterInput](r, "/series", h.series)
}

type handlers struct{ svc svc.Service }

func (h *handlers) summary(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Summary(r.Context(), in)
}

func (h *handlers) series(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}
