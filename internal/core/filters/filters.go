// Package filters holds the user-chosen constraint set and the predicate
// applied to raw source rows. The predicate is pure: same row, spec, and
// reference instant always produce the same answer
package filters

import (
	"time"

	"patrolstats/internal/core/dates"
	"patrolstats/internal/core/orgs"
	"patrolstats/internal/core/row"
	"patrolstats/internal/core/topic"

	perr "patrolstats/internal/platform/errors"
)

// Spec is an immutable constraint set. Empty fields are vacuously true.
// A date range takes precedence over a month index when both are present
type Spec struct {
	// Unit is the division filter, 1..8; 0 means any
	Unit int
	// Station is the station id filter as entered, possibly with leading
	// zeros; empty means any
	Station string
	// Start and End bound the date window; zero values mean unset
	Start time.Time
	End   time.Time
	// Month is a 0..11 month index; nil means unset
	Month *int
	// Search is a free-text needle, used only by the case-level filter
	Search string
	// Topics is the topic allow-set, used only by the case-level filter;
	// empty allows everything
	Topics []topic.Topic
}

// Validate rejects malformed specs at the boundary, before any row loop
func (s Spec) Validate() error {
	if s.Unit < 0 || s.Unit > orgs.UnitCount {
		return perr.InvalidArgf("unit must be 1..%d, got %d", orgs.UnitCount, s.Unit)
	}
	if s.Month != nil && (*s.Month < 0 || *s.Month > 11) {
		return perr.InvalidArgf("month index must be 0..11, got %d", *s.Month)
	}
	if s.HasRange() && s.End.Before(s.Start) {
		return perr.InvalidArgf("date range end precedes start")
	}
	return nil
}

// HasRange reports whether both range bounds are set
func (s Spec) HasRange() bool { return !s.Start.IsZero() && !s.End.IsZero() }

// HasMonth reports whether a month index is set
func (s Spec) HasMonth() bool { return s.Month != nil }

// DateActive reports whether any date constraint applies
func (s Spec) DateActive() bool { return s.HasRange() || s.HasMonth() }

// Matches evaluates the raw-row predicate: unit, station, and date
// sub-predicates ANDed together. Search and topic constraints do not apply
// to raw rows. now anchors the implicit year of a month-only filter
func Matches(r row.Row, s Spec, now time.Time) bool {
	if s.Unit != 0 {
		if !orgs.MatchesUnit(r.Str("subDiv"), s.Unit) && !orgs.MatchesUnit(r.Str("station"), s.Unit) {
			return false
		}
	}
	if s.Station != "" {
		if !orgs.MatchesStation(r.Str("station"), s.Station) && !orgs.MatchesStation(r.Str("subDiv"), s.Station) {
			return false
		}
	}
	if s.DateActive() && r.Has("date") {
		d, ok := dates.ParseLooseDate(r.Str("date"))
		if !ok {
			// a date-bearing row that cannot be parsed is excluded whenever
			// any date constraint is active
			return false
		}
		if !MatchDate(d, s, now) {
			return false
		}
	}
	return true
}

// MatchDate applies the date constraint to an already-parsed date.
// Range bounds are inclusive, start-of-day to end-of-day. A month-only
// filter also pins the year to now's year, so prior years' data for that
// month never matches
func MatchDate(d time.Time, s Spec, now time.Time) bool {
	switch {
	case s.HasRange():
		lo := time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(), 0, 0, 0, 0, d.Location())
		hi := time.Date(s.End.Year(), s.End.Month(), s.End.Day(), 23, 59, 59, 0, d.Location())
		return !d.Before(lo) && !d.After(hi)
	case s.HasMonth():
		return int(d.Month())-1 == *s.Month && d.Year() == now.Year()
	default:
		return true
	}
}

// AllowsTopic reports whether the spec's allow-set admits t
func (s Spec) AllowsTopic(t topic.Topic) bool {
	if len(s.Topics) == 0 {
		return true
	}
	for _, allowed := range s.Topics {
		if allowed == t {
			return true
		}
	}
	return false
}
