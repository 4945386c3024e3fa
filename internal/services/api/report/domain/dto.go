// Package domain holds DTOs for report http and service contracts
package domain

import (
	"time"

	"patrolstats/internal/core/filters"
	perr "patrolstats/internal/platform/errors"
)

// FilterInput is the query body shared by the summary and series endpoints.
// Dates are ISO8601 calendar days without timezone; month is a 0-based index
type FilterInput struct {
	Unit    int    `json:"unit,omitempty" validate:"omitempty,min=1,max=8" example:"3"`
	Station string `json:"station,omitempty" validate:"omitempty,max=10" example:"02"`
	Start   string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-08-01"`
	End     string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-08-31"`
	Month   *int   `json:"month,omitempty" validate:"omitempty,min=0,max=11" example:"7"`
}

// Spec converts validated transport input into the engine's filter spec
func (f FilterInput) Spec() (filters.Spec, error) {
	s := filters.Spec{
		Unit:    f.Unit,
		Station: f.Station,
		Month:   f.Month,
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
	return s, nil
}
