package service

import (
	"context"
	"testing"
	"time"

	"patrolstats/internal/core/row"
	"patrolstats/internal/services/api/report/domain"
	"patrolstats/internal/services/dataset"
)

type stubReader struct{ snap dataset.Snapshot }

func (s stubReader) Snapshot() dataset.Snapshot { return s.snap }

var now = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func testService(tables row.Tables) *Svc {
	return New(stubReader{snap: dataset.Snapshot{ID: "snap-1", Tables: tables}}).
		WithClock(func() time.Time { return now })
}

func TestSummary(t *testing.T) {
	s := testService(row.Tables{
		row.SourceCrime: {
			{
				"date":           row.Text("2024-03-10"),
				"station":        row.Text("ส.ทล.2 กก.3 บก.ทล."),
				"CRIM_W_GENERAL": row.Number(2),
				"CRIM_F_TOTAL":   row.Number(3),
			},
		},
	})

	sum, err := s.Summary(context.Background(), domain.FilterInput{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.CriminalTotal != 5 {
		t.Errorf("CriminalTotal = %d, want 5", sum.CriminalTotal)
	}
}

func TestSummary_RangeFilter(t *testing.T) {
	s := testService(row.Tables{
		row.SourceCrime: {
			{"date": row.Text("2024-03-10"), "CRIM_F_TOTAL": row.Number(1)},
			{"date": row.Text("2024-02-10"), "CRIM_F_TOTAL": row.Number(2)},
		},
	})

	sum, err := s.Summary(context.Background(), domain.FilterInput{
		Start: "2024-03-01",
		End:   "2024-03-31",
	})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.FlagrantTotal != 1 {
		t.Errorf("FlagrantTotal = %d, want 1", sum.FlagrantTotal)
	}
}

func TestSummary_HalfOpenRangeRejected(t *testing.T) {
	s := testService(row.Tables{})
	if _, err := s.Summary(context.Background(), domain.FilterInput{Start: "2024-03-01"}); err == nil {
		t.Fatal("expected error when only start is set")
	}
}

func TestSeries_MonthLabels(t *testing.T) {
	s := testService(row.Tables{})
	ser, err := s.Series(context.Background(), domain.FilterInput{})
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if ser.Months != [3]string{"2024-01", "2024-02", "2024-03"} {
		t.Errorf("Months = %v", ser.Months)
	}
}

func TestNew_NilReaderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil dataset reader")
		}
	}()
	New(nil)
}
