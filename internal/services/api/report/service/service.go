// Package service contains report workflows
package service

import (
	"context"
	"time"

	"patrolstats/internal/core/report"
	"patrolstats/internal/services/api/report/domain"
	"patrolstats/internal/services/dataset"
)

// Service defines the report service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the report service against the current dataset snapshot
type Svc struct {
	data dataset.Reader
	now  func() time.Time
}

// New constructs a report service
func New(data dataset.Reader) *Svc {
	if data == nil {
		panic("report.Service requires a non nil dataset reader")
	}
	return &Svc{data: data, now: time.Now}
}

// WithClock overrides the time source, for tests
func (s *Svc) WithClock(now func() time.Time) *Svc {
	s.now = now
	return s
}

// Summary aggregates the snapshot under the given filter
func (s *Svc) Summary(_ context.Context, in domain.FilterInput) (report.Summary, error) {
	spec, err := in.Spec()
	if err != nil {
		return report.Summary{}, err
	}
	sum, _, err := report.Aggregate(s.data.Snapshot().Tables, spec, s.now())
	return sum, err
}

// Series computes the chart series of the snapshot under the given filter
func (s *Svc) Series(_ context.Context, in domain.FilterInput) (report.Series, error) {
	spec, err := in.Spec()
	if err != nil {
		return report.Series{}, err
	}
	_, ser, err := report.Aggregate(s.data.Snapshot().Tables, spec, s.now())
	return ser, err
}
