// Package report is the aggregation engine: one pass over each source table
// under a filter spec, accumulating the flat summary counters and the
// month-bucketed chart series the dashboards render
package report

import (
	"strings"

	"patrolstats/internal/core/orgs"
	"patrolstats/internal/core/topic"
)

// SeizedDrugs counts seized narcotics by sub-type
type SeizedDrugs struct {
	Yaba     float64 `json:"yaba"`
	Ice      float64 `json:"ice"`
	Heroin   float64 `json:"heroin"`
	Ketamine float64 `json:"ketamine"`
	Cannabis float64 `json:"cannabis"`
	Others   float64 `json:"others"`
}

// SeizedGuns counts seized firearms by sub-type
type SeizedGuns struct {
	Handgun  float64 `json:"handgun"`
	LongGun  float64 `json:"long_gun"`
	Homemade float64 `json:"homemade"`
	Others   float64 `json:"others"`
}

// SeizedVehicles counts seized vehicles by sub-type
type SeizedVehicles struct {
	Car        float64 `json:"car"`
	Motorcycle float64 `json:"motorcycle"`
	Truck      float64 `json:"truck"`
	Others     float64 `json:"others"`
}

// SeizedOthers counts everything outside drugs, guns, and vehicles
type SeizedOthers struct {
	Money       float64 `json:"money"`
	Accounts    float64 `json:"accounts"`
	Phones      float64 `json:"phones"`
	Electronics float64 `json:"electronics"`
	Misc        float64 `json:"misc"`
}

// Seized is the nested seized-property sub-structure of a Summary
type Seized struct {
	Drugs    SeizedDrugs    `json:"drugs"`
	Guns     SeizedGuns     `json:"guns"`
	Vehicles SeizedVehicles `json:"vehicles"`
	Others   SeizedOthers   `json:"others"`
}

// Summary is the flat counter structure for one aggregation pass.
// CriminalTotal always equals WarrantTotal + FlagrantTotal, and WarrantTotal
// the sum of its three source counters
type Summary struct {
	WarrantGeneral  int `json:"warrant_general"`
	WarrantBigData  int `json:"warrant_bigdata"`
	WarrantBodyworn int `json:"warrant_bodyworn"`
	WarrantTotal    int `json:"warrant_total"`
	FlagrantTotal   int `json:"flagrant_total"`
	CriminalTotal   int `json:"criminal_total"`

	// Offenses is keyed by offense family; each counter is the sum of the
	// family's flagrant and warrant column variants
	Offenses map[string]int `json:"offenses"`

	// Traffic is keyed by violation column name
	Traffic      map[string]int `json:"traffic"`
	TrafficTotal int            `json:"traffic_total"`

	ConvoyRoyal   int `json:"convoy_royal"`
	ConvoyGeneral int `json:"convoy_general"`

	Seized Seized `json:"seized"`

	AccidentCount   int `json:"accident_count"`
	AccidentInjured int `json:"accident_injured"`
	AccidentDead    int `json:"accident_dead"`

	VolunteerAssist int `json:"volunteer_assist"`
	ServiceAssist   int `json:"service_assist"`
	ServiceOther    int `json:"service_other"`
}

// MonthBuckets is a 3-slot trailing month window, oldest to newest
type MonthBuckets struct {
	Month1 int `json:"month1"`
	Month2 int `json:"month2"`
	Month3 int `json:"month3"`
}

// Series holds the month-by-unit comparison series and per-unit totals.
// Unit arrays are indexed by division order (index 0 = division 1) and
// zero-filled for divisions with no data
type Series struct {
	// Months labels the three buckets, oldest to newest, as yyyy-mm
	Months [3]string `json:"months"`

	CrimeByUnit   [orgs.UnitCount]MonthBuckets `json:"crime_by_unit"`
	TrafficByUnit [orgs.UnitCount]MonthBuckets `json:"traffic_by_unit"`

	UnitTotals    [orgs.UnitCount]int `json:"unit_totals"`
	StationTotals map[string]int      `json:"station_totals"`

	TruckInspectedByUnit [orgs.UnitCount]int `json:"truck_inspected_by_unit"`
	TruckArrestedByUnit  [orgs.UnitCount]int `json:"truck_arrested_by_unit"`
}

// warrant source columns on the crime table
const (
	colWarrantGeneral  = "CRIM_W_GENERAL"
	colWarrantBigData  = "CRIM_W_BIGDATA"
	colWarrantBodyworn = "CRIM_W_BODYWORN"
	colFlagrantTotal   = "CRIM_F_TOTAL"
)

// violation columns on the traffic table, in display order
var trafficCols = []string{
	"traf_speed",
	"traf_drunk",
	"traf_belt",
	"traf_helmet",
	"traf_license",
	"traf_red_light",
	"traf_lane",
	"traf_mod_car",
	"traf_insurance",
	"traf_other",
}

// TrafficColumns returns the violation column names in display order
func TrafficColumns() []string { return trafficCols }

// itemRule is one branch of the seized-item cascade. Branches run top to
// bottom and the first keyword hit wins; overlap between keyword lists is
// resolved purely by this order, so keep it a slice
type itemRule struct {
	keywords []string
	add      func(*Seized, float64)
}

var itemCascade = []itemRule{
	{[]string{"ยาบ้า"}, func(s *Seized, n float64) { s.Drugs.Yaba += n }},
	{[]string{"ไอซ์"}, func(s *Seized, n float64) { s.Drugs.Ice += n }},
	{[]string{"เฮโรอีน"}, func(s *Seized, n float64) { s.Drugs.Heroin += n }},
	{[]string{"เคตามีน", "เคนมผง"}, func(s *Seized, n float64) { s.Drugs.Ketamine += n }},
	{[]string{"กัญชา", "กระท่อม"}, func(s *Seized, n float64) { s.Drugs.Cannabis += n }},
	{[]string{"ยาเสพติด", "ยาอี", "ยาไอซ์"}, func(s *Seized, n float64) { s.Drugs.Others += n }},
	{[]string{"ปืนพก", "ปืนสั้น"}, func(s *Seized, n float64) { s.Guns.Handgun += n }},
	{[]string{"ปืนยาว", "ปืนลูกซอง"}, func(s *Seized, n float64) { s.Guns.LongGun += n }},
	{[]string{"ปืนประดิษฐ์", "ปืนไทยประดิษฐ์", "ปืนแก๊ป"}, func(s *Seized, n float64) { s.Guns.Homemade += n }},
	{[]string{"ปืน", "อาวุธ", "กระสุน"}, func(s *Seized, n float64) { s.Guns.Others += n }},
	{[]string{"รถยนต์", "รถเก๋ง", "รถกระบะ"}, func(s *Seized, n float64) { s.Vehicles.Car += n }},
	{[]string{"รถจักรยานยนต์", "จยย."}, func(s *Seized, n float64) { s.Vehicles.Motorcycle += n }},
	{[]string{"รถบรรทุก", "รถพ่วง"}, func(s *Seized, n float64) { s.Vehicles.Truck += n }},
	{[]string{"รถ"}, func(s *Seized, n float64) { s.Vehicles.Others += n }},
	{[]string{"เงินสด", "ธนบัตร", "เงิน"}, func(s *Seized, n float64) { s.Others.Money += n }},
	{[]string{"บัญชี", "สมุดบัญชี"}, func(s *Seized, n float64) { s.Others.Accounts += n }},
	{[]string{"โทรศัพท์", "มือถือ"}, func(s *Seized, n float64) { s.Others.Phones += n }},
	{[]string{"คอมพิวเตอร์", "โน้ตบุ๊ก", "แท็บเล็ต"}, func(s *Seized, n float64) { s.Others.Electronics += n }},
}

// accumulateItem classifies one seized-item name and adds amount to the
// matched bucket; unmatched names land in misc
func accumulateItem(s *Seized, name string, amount float64) {
	folded := topic.Fold(name)
	for _, rule := range itemCascade {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				rule.add(s, amount)
				return
			}
		}
	}
	s.Others.Misc += amount
}
