// Package service contains the case analytics workflows
package service

import (
	"context"
	"sync"
	"time"

	"patrolstats/internal/core/cases"
	"patrolstats/internal/core/row"
	"patrolstats/internal/services/api/analytics/domain"
	"patrolstats/internal/services/dataset"
)

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements analytics over the expanded case set. Expansion is cached
// per dataset snapshot since every endpoint starts from the same cases
type Svc struct {
	data dataset.Reader
	now  func() time.Time

	mu     sync.Mutex
	snapID string
	recs   []cases.Record
}

// New constructs an analytics service
func New(data dataset.Reader) *Svc {
	if data == nil {
		panic("analytics.Service requires a non nil dataset reader")
	}
	return &Svc{data: data, now: time.Now}
}

// WithClock overrides the time source, for tests
func (s *Svc) WithClock(now func() time.Time) *Svc {
	s.now = now
	return s
}

// expanded returns the case set for the current snapshot, re-expanding only
// when the snapshot changed
func (s *Svc) expanded() []cases.Record {
	snap := s.data.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.ID != s.snapID {
		s.recs = cases.Expand(snap.Tables[row.SourceCrime])
		s.snapID = snap.ID
	}
	return s.recs
}

// Cases returns the expanded case list under the filter
func (s *Svc) Cases(_ context.Context, in domain.FilterInput) ([]domain.CaseOutput, error) {
	spec, err := in.Spec()
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]domain.CaseOutput, 0)
	for _, rec := range s.expanded() {
		if cases.Matches(rec, spec, now) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Rankings returns the top-station tables under the filter
func (s *Svc) Rankings(_ context.Context, in domain.FilterInput) (domain.RankingsOutput, error) {
	spec, err := in.Spec()
	if err != nil {
		return domain.RankingsOutput{}, err
	}
	if err := spec.Validate(); err != nil {
		return domain.RankingsOutput{}, err
	}
	return cases.Rank(s.expanded(), spec, s.now()), nil
}

// Histograms returns the hour-of-day and weekday case histograms
func (s *Svc) Histograms(_ context.Context, in domain.FilterInput) (domain.Histograms, error) {
	spec, err := in.Spec()
	if err != nil {
		return domain.Histograms{}, err
	}
	if err := spec.Validate(); err != nil {
		return domain.Histograms{}, err
	}
	recs := s.expanded()
	return domain.Histograms{
		Hours:    cases.HourHistogram(recs, spec, s.now()),
		Weekdays: cases.WeekdayHistogram(recs, spec, s.now()),
	}, nil
}

// Trend returns the daily case trend with its short-horizon forecast
func (s *Svc) Trend(_ context.Context, in domain.FilterInput) (domain.TrendOutput, error) {
	spec, err := in.Spec()
	if err != nil {
		return domain.TrendOutput{}, err
	}
	if err := spec.Validate(); err != nil {
		return domain.TrendOutput{}, err
	}
	return cases.DailyTrend(s.expanded(), spec, s.now()), nil
}
