package report

import (
	"fmt"
	"time"

	"patrolstats/internal/core/dates"
	"patrolstats/internal/core/filters"
	"patrolstats/internal/core/orgs"
	"patrolstats/internal/core/row"
	"patrolstats/internal/core/topic"
)

// NewSummary returns a Summary with every offense and violation counter
// present at zero, so JSON output always carries the full key set
func NewSummary() Summary {
	s := Summary{
		Offenses: make(map[string]int, len(topic.Offenses())),
		Traffic:  make(map[string]int, len(trafficCols)),
	}
	for _, off := range topic.Offenses() {
		s.Offenses[off.Key] = 0
	}
	for _, col := range trafficCols {
		s.Traffic[col] = 0
	}
	return s
}

// Aggregate runs one pass over every source table and produces the summary
// counters and chart series for the given filter spec. now anchors the
// trailing month window and the month filter's year; callers pass time.Now()
// in production and a fixed instant in tests.
//
// The month comparison series deliberately ignore the spec's constraints and
// bucket every parseable row into the trailing 3-month window; everything
// else is filtered by the full spec
func Aggregate(tables row.Tables, spec filters.Spec, now time.Time) (Summary, Series, error) {
	if err := spec.Validate(); err != nil {
		return Summary{}, Series{}, err
	}

	sum := NewSummary()
	ser := Series{StationTotals: map[string]int{}}

	refIdx := monthIndex(now.Year(), now.Month())
	if spec.HasMonth() {
		refIdx = monthIndex(now.Year(), time.Month(*spec.Month+1))
	}
	for i := 0; i < 3; i++ {
		ser.Months[i] = monthLabel(refIdx - 2 + i)
	}

	seedStations(&ser, tables[row.SourceStations])

	aggregateCrime(&sum, &ser, tables[row.SourceCrime], spec, now, refIdx)
	aggregateTraffic(&sum, &ser, tables[row.SourceTraffic], spec, now, refIdx)

	for _, r := range tables[row.SourceConvoy] {
		if !filters.Matches(r, spec, now) {
			continue
		}
		sum.ConvoyRoyal += r.Int("convoy_royal")
		sum.ConvoyGeneral += r.Int("convoy_money") + r.Int("convoy_oil") + r.Int("convoy_other")
	}

	for _, r := range tables[row.SourceItems] {
		if !filters.Matches(r, spec, now) {
			continue
		}
		name := r.Str("item_name")
		amount := r.Num("item_amount")
		if name == "" || amount <= 0 {
			continue
		}
		accumulateItem(&sum.Seized, name, amount)
	}

	for _, r := range tables[row.SourceAccidents] {
		if !filters.Matches(r, spec, now) {
			continue
		}
		sum.AccidentCount++
		sum.AccidentInjured += r.Int("acc_injured")
		sum.AccidentDead += r.Int("acc_dead")
	}

	for _, r := range tables[row.SourceVolunteer] {
		if !filters.Matches(r, spec, now) {
			continue
		}
		sum.VolunteerAssist += r.Int("vol_assist")
	}

	for _, r := range tables[row.SourceService] {
		if !filters.Matches(r, spec, now) {
			continue
		}
		sum.ServiceAssist += r.Int("service_assist")
		sum.ServiceOther += r.Int("service_other")
	}

	sum.WarrantTotal = sum.WarrantGeneral + sum.WarrantBigData + sum.WarrantBodyworn
	sum.CriminalTotal = sum.WarrantTotal + sum.FlagrantTotal
	return sum, ser, nil
}

// aggregateCrime folds the crime table into the warrant/flagrant counters,
// the per-family offense counters, and every crime-derived series
func aggregateCrime(sum *Summary, ser *Series, t row.Table, spec filters.Spec, now time.Time, refIdx int) {
	for _, r := range t {
		rowTotal := r.Int(colWarrantGeneral) + r.Int(colWarrantBigData) +
			r.Int(colWarrantBodyworn) + r.Int(colFlagrantTotal)

		unit, unitOK := rowUnit(r)

		if unitOK {
			bucketMonth(&ser.CrimeByUnit[unit-1], r.Str("date"), refIdx, rowTotal)
		}

		if !filters.Matches(r, spec, now) {
			continue
		}

		sum.WarrantGeneral += r.Int(colWarrantGeneral)
		sum.WarrantBigData += r.Int(colWarrantBigData)
		sum.WarrantBodyworn += r.Int(colWarrantBodyworn)
		sum.FlagrantTotal += r.Int(colFlagrantTotal)

		for _, off := range topic.Offenses() {
			sum.Offenses[off.Key] += r.Int("dir_f_"+off.Key) + r.Int("dir_w_"+off.Key)
		}

		if unitOK {
			ser.UnitTotals[unit-1] += rowTotal
			if st, ok := rowStation(r); ok {
				ser.StationTotals[orgs.Label(st, unit)] += rowTotal
			}
		}
	}
}

// aggregateTraffic folds the traffic table into the violation counters,
// the per-unit month series, and the truck inspection series
func aggregateTraffic(sum *Summary, ser *Series, t row.Table, spec filters.Spec, now time.Time, refIdx int) {
	for _, r := range t {
		rowTotal := 0
		for _, col := range trafficCols {
			rowTotal += r.Int(col)
		}

		unit, unitOK := rowUnit(r)
		if unitOK {
			bucketMonth(&ser.TrafficByUnit[unit-1], r.Str("date"), refIdx, rowTotal)
		}

		if !filters.Matches(r, spec, now) {
			continue
		}

		for _, col := range trafficCols {
			sum.Traffic[col] += r.Int(col)
		}
		sum.TrafficTotal += rowTotal

		if unitOK {
			ser.TruckInspectedByUnit[unit-1] += r.Int("truck_inspected")
			ser.TruckArrestedByUnit[unit-1] += r.Int("truck_arrested")
		}
	}
}

// seedStations pre-fills StationTotals with a zero for every roster entry
// whose name resolves to a station and division, so stations with no matching
// records still appear in the ranking table
func seedStations(ser *Series, roster row.Table) {
	for _, r := range roster {
		name := r.Str("station_name")
		st, ok := orgs.Station(name)
		if !ok {
			continue
		}
		unit, ok := orgs.Unit(name)
		if !ok {
			unit, ok = orgs.Unit(r.Str("subDiv"))
		}
		if !ok {
			continue
		}
		label := orgs.Label(st, unit)
		if _, exists := ser.StationTotals[label]; !exists {
			ser.StationTotals[label] = 0
		}
	}
}

// rowUnit resolves the division for a record, preferring the station text
// field over the sub-division field
func rowUnit(r row.Row) (int, bool) {
	if u, ok := orgs.Unit(r.Str("station")); ok {
		return u, true
	}
	return orgs.Unit(r.Str("subDiv"))
}

// rowStation resolves the station numeral for a record
func rowStation(r row.Row) (int, bool) {
	if st, ok := orgs.Station(r.Str("station")); ok {
		return st, true
	}
	return orgs.Station(r.Str("subDiv"))
}

// bucketMonth adds n to the window slot the record's date falls in, if the
// date parses and lands inside the trailing 3-month window ending at refIdx
func bucketMonth(b *MonthBuckets, rawDate string, refIdx, n int) {
	d, ok := dates.ParseLooseDate(rawDate)
	if !ok {
		return
	}
	switch refIdx - monthIndex(d.Year(), d.Month()) {
	case 0:
		b.Month3 += n
	case 1:
		b.Month2 += n
	case 2:
		b.Month1 += n
	}
}

// monthIndex flattens a year/month pair onto a single comparable axis
func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

// monthLabel renders a flattened month index as yyyy-mm
func monthLabel(idx int) string {
	return fmt.Sprintf("%04d-%02d", idx/12, idx%12+1)
}
