package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_FetchParsesExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Errorf("missing User-Agent")
		}
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewClient(Options{URLs: map[string]string{"crime": srv.URL}})
	table, err := c.Fetch(context.Background(), "crime")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table))
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := NewClient(Options{
		URLs:       map[string]string{"crime": srv.URL},
		MaxRetries: 4,
		RetryBase:  time.Millisecond,
	})
	c.sleep = func(time.Duration) {}

	if _, err := c.Fetch(context.Background(), "crime"); err != nil {
		t.Fatalf("Fetch after retries: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestClient_UnknownSource(t *testing.T) {
	c := NewClient(Options{URLs: map[string]string{}})
	if _, err := c.Fetch(context.Background(), "nope"); err == nil {
		t.Fatalf("expected error for unconfigured source")
	}
}

func TestClient_NonTransientStatusFailsFast(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Options{URLs: map[string]string{"crime": srv.URL}})
	c.sleep = func(time.Duration) {}
	if _, err := c.Fetch(context.Background(), "crime"); err == nil {
		t.Fatalf("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("404 should not be retried, got %d attempts", calls.Load())
	}
}
