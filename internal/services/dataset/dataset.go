// Package dataset owns the in-memory table set the reporting core reads.
// Each refresh re-fetches every source and swaps in a complete snapshot; the
// core itself never fetches, it receives already-materialized tables per call
package dataset

import (
	"context"
	"sync"
	"time"

	"patrolstats/internal/core/row"
	"patrolstats/internal/platform/logger"

	"github.com/google/uuid"
)

// Fetcher retrieves one source table by name
type Fetcher interface {
	Fetch(ctx context.Context, source string) (row.Table, error)
}

// Snapshot is one immutable fetch result. Consumers must not mutate Tables
type Snapshot struct {
	ID        string
	FetchedAt time.Time
	Tables    row.Tables
}

// Reader is the read side handed to API modules
type Reader interface {
	Snapshot() Snapshot
}

// Options configures the holder
type Options struct {
	// Sources to fetch; defaults to row.SourceNames()
	Sources []string
	// FetchWorkers bounds fetch fan-out; defaults to 4
	FetchWorkers int
}

// Holder keeps the current snapshot and refreshes it on demand
type Holder struct {
	fetcher Fetcher
	opts    Options
	log     logger.Logger

	mu   sync.RWMutex
	snap Snapshot
}

// New constructs a Holder around a fetcher
func New(f Fetcher, opts Options) *Holder {
	if f == nil {
		panic("dataset.Holder requires a non nil Fetcher")
	}
	if len(opts.Sources) == 0 {
		opts.Sources = row.SourceNames()
	}
	if opts.FetchWorkers <= 0 {
		opts.FetchWorkers = 4
	}
	return &Holder{
		fetcher: f,
		opts:    opts,
		log:     *logger.Named("dataset"),
		snap:    Snapshot{Tables: row.Tables{}},
	}
}

// Snapshot returns the current snapshot
func (h *Holder) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// Refresh re-fetches all sources and swaps in a new snapshot.
// A source that fails to fetch keeps its previous table; partial data is the
// steady state for these sheets, so one bad export must not blank a report
func (h *Holder) Refresh(ctx context.Context) error {
	prev := h.Snapshot()

	type result struct {
		source string
		table  row.Table
		err    error
	}

	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < h.opts.FetchWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for src := range jobs {
				t, err := h.fetcher.Fetch(ctx, src)
				results <- result{source: src, table: t, err: err}
			}
		}()
	}
	go func() {
		for _, src := range h.opts.Sources {
			jobs <- src
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	tables := make(row.Tables, len(h.opts.Sources))
	var firstErr error
	for res := range results {
		if res.err != nil {
			h.log.Warn().Err(res.err).Str("source", res.source).Msg("fetch failed, keeping previous table")
			tables[res.source] = prev.Tables[res.source]
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		tables[res.source] = res.table
	}

	snap := Snapshot{
		ID:        uuid.NewString(),
		FetchedAt: time.Now().UTC(),
		Tables:    tables,
	}

	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()

	h.log.Info().
		Str("snapshot", snap.ID).
		Int("sources", len(tables)).
		Msg("dataset refreshed")
	return firstErr
}

// DefaultRefreshEvery is the fallback refresh cadence
const DefaultRefreshEvery = 5 * time.Minute

// RunPeriodic refreshes on a fixed cadence until ctx is done
func (h *Holder) RunPeriodic(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = DefaultRefreshEvery
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := h.Refresh(ctx); err != nil {
				h.log.Warn().Err(err).Msg("periodic refresh incomplete")
			}
		}
	}
}
