package cases

import (
	"math"
	"sort"
	"strings"
	"time"

	"patrolstats/internal/core/filters"
	"patrolstats/internal/core/orgs"
	"patrolstats/internal/core/topic"
)

// RankEntry is one row of a station ranking table
type RankEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Rankings holds the top-station tables the dashboard shows side by side
type Rankings struct {
	Overall  []RankEntry `json:"overall"`
	Drugs    []RankEntry `json:"drugs"`
	Weapons  []RankEntry `json:"weapons"`
	Warrants []RankEntry `json:"warrants"`
}

// rankingSize caps each ranking table
const rankingSize = 3

// Rank computes the top-station tables over the cases matching the spec.
// Cases whose text never resolved to a station and division are skipped;
// ties break on label so output is deterministic
func Rank(recs []Record, spec filters.Spec, now time.Time) Rankings {
	overall := map[string]int{}
	drugs := map[string]int{}
	weapons := map[string]int{}
	warrants := map[string]int{}

	for _, rec := range recs {
		if !rec.HasOrg || !Matches(rec, spec, now) {
			continue
		}
		label := orgs.Label(rec.Station, rec.Unit)
		overall[label]++
		switch rec.Topic {
		case topic.Drugs:
			drugs[label]++
		case topic.Weapons:
			weapons[label]++
		case topic.Warrant:
			warrants[label]++
		}
	}

	return Rankings{
		Overall:  top(overall),
		Drugs:    top(drugs),
		Weapons:  top(weapons),
		Warrants: top(warrants),
	}
}

func top(counts map[string]int) []RankEntry {
	entries := make([]RankEntry, 0, len(counts))
	for label, n := range counts {
		entries = append(entries, RankEntry{Label: label, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	if len(entries) > rankingSize {
		entries = entries[:rankingSize]
	}
	return entries
}

// HourHistogram buckets matching cases by hour of day. Time cells accept
// HH:MM and HH.MM; anything else is skipped
func HourHistogram(recs []Record, spec filters.Spec, now time.Time) [24]int {
	var hist [24]int
	for _, rec := range recs {
		if !Matches(rec, spec, now) {
			continue
		}
		if h, ok := parseHour(rec.Time); ok {
			hist[h]++
		}
	}
	return hist
}

// WeekdayHistogram buckets matching dated cases by weekday, Sunday first
func WeekdayHistogram(recs []Record, spec filters.Spec, now time.Time) [7]int {
	var hist [7]int
	for _, rec := range recs {
		if !rec.HasDate || !Matches(rec, spec, now) {
			continue
		}
		hist[int(rec.Date.Weekday())]++
	}
	return hist
}

// TrendPoint is one day of the daily trend with its trailing moving average
type TrendPoint struct {
	Date  string  `json:"date"`
	Count int     `json:"count"`
	MA    float64 `json:"ma"`
}

// Trend is the daily case series plus a next-day forecast
type Trend struct {
	Points []TrendPoint `json:"points"`
	// Forecast is the rounded mean of the last three daily counts, zero
	// when fewer than three days of data matched
	Forecast int `json:"forecast"`
}

// trendWindow is the moving-average and forecast span in days
const trendWindow = 3

// DailyTrend groups matching dated cases by calendar day, ascending, and
// attaches a trailing moving average and a naive forecast
func DailyTrend(recs []Record, spec filters.Spec, now time.Time) Trend {
	perDay := map[string]int{}
	for _, rec := range recs {
		if !rec.HasDate || !Matches(rec, spec, now) {
			continue
		}
		perDay[rec.Date.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Strings(days)

	tr := Trend{Points: make([]TrendPoint, 0, len(days))}
	for i, d := range days {
		lo := i - trendWindow + 1
		if lo < 0 {
			lo = 0
		}
		sum := 0
		for _, prev := range days[lo : i+1] {
			sum += perDay[prev]
		}
		tr.Points = append(tr.Points, TrendPoint{
			Date:  d,
			Count: perDay[d],
			MA:    float64(sum) / float64(i+1-lo),
		})
	}

	if len(days) >= trendWindow {
		sum := 0
		for _, d := range days[len(days)-trendWindow:] {
			sum += perDay[d]
		}
		tr.Forecast = int(math.Round(float64(sum) / trendWindow))
	}
	return tr
}

// Matches is the case-level filter. Unlike the row-level predicate it also
// honors the free-text search and the topic allow-set. Dates that failed to
// parse exclude the case whenever a date constraint is active; cases with an
// empty date cell pass through
func Matches(rec Record, s filters.Spec, now time.Time) bool {
	if s.Unit != 0 {
		if rec.HasOrg {
			if rec.Unit != s.Unit {
				return false
			}
		} else if !orgs.MatchesUnit(rec.Text, s.Unit) {
			return false
		}
	}
	if s.Station != "" && !orgs.MatchesStation(rec.Text, s.Station) {
		return false
	}
	if s.DateActive() && rec.RawDate != "" {
		if !rec.HasDate || !filters.MatchDate(rec.Date, s, now) {
			return false
		}
	}
	if !s.AllowsTopic(rec.Topic) {
		return false
	}
	if s.Search != "" {
		// search is case-insensitive on top of the usual width folding
		needle := strings.ToLower(topic.Fold(s.Search))
		hay := strings.ToLower(topic.Fold(rec.CapturedBy + " " + rec.Charge + " " + rec.Text))
		if !strings.Contains(hay, needle) {
			return false
		}
	}
	return true
}

// parseHour extracts the hour from HH:MM or HH.MM time text
func parseHour(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	idx := strings.IndexAny(raw, ":.")
	if idx <= 0 {
		return 0, false
	}
	h := 0
	for _, c := range raw[:idx] {
		if c < '0' || c > '9' {
			return 0, false
		}
		h = h*10 + int(c-'0')
	}
	if h > 23 {
		return 0, false
	}
	return h, true
}
