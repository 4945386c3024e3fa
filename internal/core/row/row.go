// Package row models loosely typed source records as they arrive from the
// ingestion collaborator. Cells are string, number, or absent; consumers
// coerce at every read site instead of trusting a column's type globally
package row

import (
	"strconv"
	"strings"
)

// Kind discriminates the cell union
type Kind uint8

const (
	// KindAbsent marks a missing or null cell
	KindAbsent Kind = iota
	// KindText marks a free-text cell
	KindText
	// KindNumber marks a numeric cell
	KindNumber
)

// Value is one cell of a source record
type Value struct {
	kind Kind
	s    string
	f    float64
}

// Absent is the zero cell
var Absent = Value{}

// Text wraps a string cell
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Number wraps a numeric cell
func Number(f float64) Value { return Value{kind: KindNumber, f: f} }

// Kind returns the cell kind
func (v Value) Kind() Kind { return v.kind }

// Present reports whether the cell carries any value
func (v Value) Present() bool { return v.kind != KindAbsent }

// Num coerces the cell to a float64, defaulting to 0.
// Text cells are parsed after trimming spaces and thousands separators;
// anything unparseable coerces to 0 rather than erroring
func (v Value) Num() float64 {
	switch v.kind {
	case KindNumber:
		return v.f
	case KindText:
		s := strings.TrimSpace(strings.ReplaceAll(v.s, ",", ""))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int coerces the cell to an int, defaulting to 0
func (v Value) Int() int { return int(v.Num()) }

// Str coerces the cell to a string, defaulting to ""
func (v Value) Str() string {
	switch v.kind {
	case KindText:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return ""
	}
}

// Row is one source record keyed by column name
type Row map[string]Value

// Has reports whether the column exists and carries a value
func (r Row) Has(col string) bool { return r[col].Present() }

// Num coerces a column to float64 with a 0 default
func (r Row) Num(col string) float64 { return r[col].Num() }

// Int coerces a column to int with a 0 default
func (r Row) Int(col string) int { return r[col].Int() }

// Str coerces a column to string with a "" default
func (r Row) Str(col string) string { return r[col].Str() }

// Table is an in-memory list of rows for one source
type Table []Row

// Tables maps source name to table
type Tables map[string]Table

// Source names are the wire contract with the ingestion collaborator
const (
	SourceCrime     = "crime"
	SourceTraffic   = "traffic"
	SourceConvoy    = "convoy"
	SourceItems     = "items"
	SourceAccidents = "accidents"
	SourceVolunteer = "volunteer"
	SourceService   = "service"
	SourceStations  = "stations"
)

// SourceNames lists every expected source in fetch order
func SourceNames() []string {
	return []string{
		SourceCrime,
		SourceTraffic,
		SourceConvoy,
		SourceItems,
		SourceAccidents,
		SourceVolunteer,
		SourceService,
		SourceStations,
	}
}
