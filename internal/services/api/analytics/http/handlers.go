// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"patrolstats/internal/modkit/httpkit"
	"patrolstats/internal/services/api/analytics/domain"
	svc "patrolstats/internal/services/api/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// expanded case list under the filter
	httpkit.PostJSON[domain.FilterInput](r, "/cases", h.cases)

	// top stations overall and per headline topic
	httpkit.PostJSON[domain.FilterInput](r, "/rankings", h.rankings)

	// hour-of-day and weekday case histograms
	httpkit.PostJSON[domain.FilterInput](r, "/histograms", h.histograms)

	// daily case trend with moving average and forecast
	httpkit.PostJSON[domain.FilterInput](r, "/trend", h.trend)
}

type handlers struct{ svc svc.Service }

func (h *handlers) cases(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Cases(r.Context(), in)
}

func (h *handlers) rankings(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Rankings(r.Context(), in)
}

func (h *handlers) histograms(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Histograms(r.Context(), in)
}

func (h *handlers) trend(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Trend(r.Context(), in)
}
