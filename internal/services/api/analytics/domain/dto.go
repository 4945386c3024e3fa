// Package domain holds DTOs for analytics http and service contracts
package domain

import (
	"time"

	"patrolstats/internal/core/cases"
	"patrolstats/internal/core/filters"
	"patrolstats/internal/core/topic"
	perr "patrolstats/internal/platform/errors"
)

// FilterInput is the query body for the case analytics endpoints. On top of
// the org and date constraints it carries a free-text needle and a topic
// allow-set, both of which only apply at case granularity
type FilterInput struct {
	Unit    int      `json:"unit,omitempty" validate:"omitempty,min=1,max=8" example:"3"`
	Station string   `json:"station,omitempty" validate:"omitempty,max=10" example:"02"`
	Start   string   `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-08-01"`
	End     string   `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-08-31"`
	Month   *int     `json:"month,omitempty" validate:"omitempty,min=0,max=11" example:"7"`
	Search  string   `json:"search,omitempty" validate:"omitempty,max=200" example:"ยาเสพติด"`
	Topics  []string `json:"topics,omitempty" validate:"omitempty,dive,min=1,max=40"`
}

// Spec converts validated transport input into the engine's filter spec.
// Topic strings pass through the classifier, so free-form Thai labels and
// canonical keys both land on the taxonomy
func (f FilterInput) Spec() (filters.Spec, error) {
	s := filters.Spec{
		Unit:    f.Unit,
		Station: f.Station,
		Month:   f.Month,
		Search:  f.Search,
	}
	if f.Start != "" {
		d, err := time.Parse("2006-01-02", f.Start)
		if err != nil {
			return filters.Spec{}, perr.InvalidArgf("start: %v", err)
		}
		s.Start = d
	}
	if f.End != "" {
		d, err := time.Parse("2006-01-02", f.End)
		if err != nil {
			return filters.Spec{}, perr.InvalidArgf("end: %v", err)
		}
		s.End = d
	}
	if (s.Start.IsZero()) != (s.End.IsZero()) {
		return filters.Spec{}, perr.InvalidArgf("start and end must be set together")
	}
	for _, raw := range f.Topics {
		if t := topic.Topic(raw); known(t) {
			s.Topics = append(s.Topics, t)
			continue
		}
		s.Topics = append(s.Topics, topic.Normalize(raw))
	}
	return s, nil
}

func known(t topic.Topic) bool {
	switch t {
	case topic.Drugs, topic.Weapons, topic.HeavyTruck, topic.Warrant, topic.DUI,
		topic.Immigration, topic.Gambling, topic.Theft, topic.Traffic, topic.Other:
		return true
	}
	return false
}

// Histograms bundles the two case histograms the dashboard renders together
type Histograms struct {
	Hours    [24]int `json:"hours"`
	Weekdays [7]int  `json:"weekdays"`
}

// CaseOutput re-exports the expanded case shape for transport
type CaseOutput = cases.Record

// TrendOutput re-exports the trend shape for transport
type TrendOutput = cases.Trend

// RankingsOutput re-exports the rankings shape for transport
type RankingsOutput = cases.Rankings
