// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"patrolstats/internal/core/version"
	"patrolstats/internal/modkit/httpkit"
	"patrolstats/internal/services/dataset"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Data        dataset.Reader
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/dataset", h.dataset)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"patrolstats-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now" example:"2025-09-03T13:05:00Z"`
}

// ReadyResponse summarizes readiness; the service is ready once the first
// dataset snapshot has landed
type ReadyResponse struct {
	Status   string `json:"status" example:"ok"`
	Snapshot string `json:"snapshot,omitempty"`
	Now      string `json:"now" example:"2025-09-03T13:05:00Z"`
}

// DatasetResponse describes the snapshot currently being served
type DatasetResponse struct {
	Snapshot  string         `json:"snapshot"`
	FetchedAt string         `json:"fetched_at"`
	Rows      map[string]int `json:"rows"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) ready(_ *http.Request) (any, error) {
	out := ReadyResponse{
		Status: "fail",
		Now:    time.Now().UTC().Format(time.RFC3339),
	}
	if h.deps.Data != nil {
		if snap := h.deps.Data.Snapshot(); snap.ID != "" {
			out.Status = "ok"
			out.Snapshot = snap.ID
		}
	}
	return out, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) dataset(_ *http.Request) (any, error) {
	out := DatasetResponse{Rows: map[string]int{}}
	if h.deps.Data == nil {
		return out, nil
	}
	snap := h.deps.Data.Snapshot()
	out.Snapshot = snap.ID
	if !snap.FetchedAt.IsZero() {
		out.FetchedAt = snap.FetchedAt.UTC().Format(time.RFC3339)
	}
	for name, table := range snap.Tables {
		out.Rows[name] = len(table)
	}
	return out, nil
}
