// Package cases expands the column-encoded crime table into individual case
// records and computes the analytics built on top of them: rankings, hour and
// weekday histograms, and the daily trend with its short-horizon forecast
package cases

import (
	"time"

	"patrolstats/internal/core/dates"
	"patrolstats/internal/core/orgs"
	"patrolstats/internal/core/row"
	"patrolstats/internal/core/topic"
)

// Warrant source tags carried on expanded warrant cases
const (
	WarrantGeneral  = "general"
	WarrantBigData  = "bigdata"
	WarrantBodyworn = "bodyworn"
)

// Record is one expanded case. A crime row holding per-family counts becomes
// that many Records, each carrying the row's date, org resolution, and the
// family's charge label
type Record struct {
	// RawDate is the date cell as received; Date/LocalYear are only
	// meaningful when HasDate is set
	RawDate   string      `json:"raw_date"`
	Date      time.Time   `json:"date"`
	HasDate   bool        `json:"has_date"`
	LocalYear int         `json:"local_year"`
	Time      string      `json:"time"`
	Unit      int         `json:"unit"`
	Station   int         `json:"station"`
	HasOrg    bool        `json:"has_org"`
	Text      string      `json:"text"`
	Topic     topic.Topic `json:"topic"`
	Charge    string      `json:"charge"`
	// WarrantSource is empty on flagrant cases
	WarrantSource string `json:"warrant_source,omitempty"`
	CapturedBy    string `json:"captured_by"`
}

// warrantCol maps a warrant column to its source tag
type warrantCol struct {
	col    string
	source string
}

var warrantCols = []warrantCol{
	{"CRIM_W_GENERAL", WarrantGeneral},
	{"CRIM_W_BIGDATA", WarrantBigData},
	{"CRIM_W_BODYWORN", WarrantBodyworn},
}

// Expand unrolls every crime row into case records: one record per unit of
// each flagrant family count, plus one per unit of each warrant source count.
// Negative counts clamp to zero
func Expand(crime row.Table) []Record {
	var out []Record
	for _, r := range crime {
		base := baseRecord(r)

		for _, off := range topic.Offenses() {
			n := clamp(r.Int("dir_f_" + off.Key))
			for i := 0; i < n; i++ {
				rec := base
				rec.Topic = off.Topic
				rec.Charge = off.Label
				out = append(out, rec)
			}
		}

		for _, w := range warrantCols {
			n := clamp(r.Int(w.col))
			for i := 0; i < n; i++ {
				rec := base
				rec.Topic = topic.Warrant
				rec.Charge = "หมายจับ"
				rec.WarrantSource = w.source
				out = append(out, rec)
			}
		}
	}
	return out
}

// baseRecord resolves the shared fields every case expanded from a row
// carries: date, org, and the free-text columns
func baseRecord(r row.Row) Record {
	rec := Record{
		RawDate:    r.Str("date"),
		Time:       r.Str("time"),
		Text:       r.Str("station"),
		CapturedBy: r.Str("captured_by"),
	}
	if d, ok := dates.ParseRecordDate(rec.RawDate); ok {
		rec.Date = d.Time
		rec.LocalYear = d.LocalYear
		rec.HasDate = true
	}
	unit, ok := orgs.Unit(rec.Text)
	if !ok {
		unit, ok = orgs.Unit(r.Str("subDiv"))
	}
	if ok {
		if st, sok := orgs.Station(rec.Text); sok {
			rec.Unit = unit
			rec.Station = st
			rec.HasOrg = true
		}
	}
	return rec
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
