// Package module wires analytics into the API using modkit
package module

import (
	"net/http"

	modkit "patrolstats/internal/modkit"
	"patrolstats/internal/modkit/httpkit"
	str "patrolstats/internal/platform/strings"
	analyticshttp "patrolstats/internal/services/api/analytics/http"
	analyticssvc "patrolstats/internal/services/api/analytics/service"
)

// Module implements the analytics module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    any
	register func(httpkit.Router)

	svc analyticssvc.Service
}

// New constructs the analytics module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analytics"), modkit.WithPrefix("/analytics")}, opts...)...)

	svc := analyticssvc.New(deps.Data)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Analytics: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyticshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports exposes the module ports for cross module lookups
func (m *Module) Ports() any { return m.ports }
