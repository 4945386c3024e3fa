package dataset

import (
	"context"
	"testing"
	"time"

	perr "patrolstats/internal/platform/errors"

	"patrolstats/internal/core/row"
)

type fakeFetcher struct {
	tables map[string]row.Table
	fail   map[string]bool
}

func (f *fakeFetcher) Fetch(_ context.Context, source string) (row.Table, error) {
	if f.fail[source] {
		return nil, perr.Unavailablef("source %s down", source)
	}
	return f.tables[source], nil
}

func TestRefresh_SwapsSnapshot(t *testing.T) {
	ff := &fakeFetcher{tables: map[string]row.Table{
		row.SourceCrime: {{"date": row.Text("2024-03-15")}},
	}}
	h := New(ff, Options{Sources: []string{row.SourceCrime}})

	before := h.Snapshot()
	if before.ID != "" || len(before.Tables) != 0 {
		t.Fatalf("expected empty initial snapshot, got %+v", before)
	}

	if err := h.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	after := h.Snapshot()
	if after.ID == "" {
		t.Fatalf("snapshot id not assigned")
	}
	if after.FetchedAt.IsZero() || time.Since(after.FetchedAt) > time.Minute {
		t.Fatalf("implausible FetchedAt %v", after.FetchedAt)
	}
	if len(after.Tables[row.SourceCrime]) != 1 {
		t.Fatalf("crime table not swapped in")
	}
}

func TestRefresh_FailedSourceKeepsPreviousTable(t *testing.T) {
	ff := &fakeFetcher{
		tables: map[string]row.Table{
			row.SourceCrime:   {{"date": row.Text("2024-03-15")}},
			row.SourceTraffic: {{"date": row.Text("2024-03-16")}},
		},
	}
	h := New(ff, Options{Sources: []string{row.SourceCrime, row.SourceTraffic}})
	if err := h.Refresh(context.Background()); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}

	ff.fail = map[string]bool{row.SourceTraffic: true}
	ff.tables[row.SourceCrime] = row.Table{
		{"date": row.Text("2024-03-20")},
		{"date": row.Text("2024-03-21")},
	}

	if err := h.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh to report the failed source")
	}
	snap := h.Snapshot()
	if len(snap.Tables[row.SourceCrime]) != 2 {
		t.Fatalf("healthy source should carry the new table")
	}
	if len(snap.Tables[row.SourceTraffic]) != 1 {
		t.Fatalf("failed source should keep its previous table")
	}
}

func TestNew_DefaultsAndNilFetcherPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil fetcher")
		}
	}()
	New(nil, Options{})
}
