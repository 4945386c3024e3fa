package sheets

import "patrolstats/internal/core/row"

// re-export the row types so parse code reads cleanly
type (
	// Table is the materialized source table type
	Table = row.Table
	// Row is one source record
	Row = row.Row
	// Value is one loosely typed cell
	Value = row.Value
)

// Absent is the missing cell value
var Absent = row.Absent

// Number wraps a numeric cell
func Number(f float64) Value { return row.Number(f) }

// Text wraps a text cell
func Text(s string) Value { return row.Text(s) }
