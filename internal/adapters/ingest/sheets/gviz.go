package sheets

import (
	"encoding/json"
	"fmt"
	"strings"
)

// gviz exports arrive as a JSONP-style payload:
//
//	/*O_o*/
//	google.visualization.Query.setResponse({...});
//
// The JSON object carries table.cols (id/label) and table.rows, where each
// cell has a raw value v and an optional formatted string f

type gvizCol struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type gvizCell struct {
	V any     `json:"v"`
	F *string `json:"f"`
}

type gvizRow struct {
	C []*gvizCell `json:"c"`
}

type gvizTable struct {
	Cols []gvizCol `json:"cols"`
	Rows []gvizRow `json:"rows"`
}

type gvizResponse struct {
	Status string    `json:"status"`
	Table  gvizTable `json:"table"`
}

// ParseGviz unwraps the JSONP payload and materializes a row.Table.
// Cell-level noise degrades to absent values; only a payload that is not a
// gviz response at all is an error
func ParseGviz(payload []byte) (Table, error) {
	raw, err := unwrap(payload)
	if err != nil {
		return nil, err
	}

	var resp gvizResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("gviz: decode response: %w", err)
	}
	if resp.Status != "" && resp.Status != "ok" {
		return nil, fmt.Errorf("gviz: response status %q", resp.Status)
	}

	names := make([]string, len(resp.Table.Cols))
	for i, c := range resp.Table.Cols {
		if c.Label != "" {
			names[i] = c.Label
		} else {
			names[i] = c.ID
		}
	}

	out := make(Table, 0, len(resp.Table.Rows))
	for _, gr := range resp.Table.Rows {
		r := make(Row, len(names))
		for i, cell := range gr.C {
			if i >= len(names) || names[i] == "" {
				continue
			}
			v := cellValue(cell)
			if v.Present() {
				r[names[i]] = v
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// unwrap strips the JSONP wrapper and returns the inner JSON object
func unwrap(payload []byte) ([]byte, error) {
	s := string(payload)
	start := strings.Index(s, "setResponse(")
	if start < 0 {
		// some exports are plain JSON already
		t := strings.TrimSpace(s)
		if strings.HasPrefix(t, "{") {
			return []byte(t), nil
		}
		return nil, fmt.Errorf("gviz: setResponse wrapper not found")
	}
	s = s[start+len("setResponse("):]
	end := strings.LastIndex(s, ")")
	if end < 0 {
		return nil, fmt.Errorf("gviz: unterminated setResponse payload")
	}
	return []byte(s[:end]), nil
}

// cellValue maps one gviz cell onto the tagged row value union.
// The formatted string f wins when present: for date columns it carries the
// original sheet text (e.g. a Buddhist-era date) that the parsers expect,
// while v holds an opaque Date(...) constructor
func cellValue(cell *gvizCell) Value {
	if cell == nil {
		return Absent
	}
	if cell.F != nil && *cell.F != "" {
		if n, ok := cell.V.(float64); ok && !looksLikeDate(*cell.F) {
			_ = n
			// numeric cell with grouping in f; keep the raw number
			return Number(n)
		}
		return Text(*cell.F)
	}
	switch v := cell.V.(type) {
	case nil:
		return Absent
	case float64:
		return Number(v)
	case string:
		if v == "" {
			return Absent
		}
		return Text(v)
	case bool:
		if v {
			return Text("true")
		}
		return Text("false")
	default:
		return Absent
	}
}

func looksLikeDate(f string) bool {
	return strings.ContainsAny(f, "/-")
}
