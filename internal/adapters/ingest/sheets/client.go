// Package sheets fetches published spreadsheet exports and materializes them
// as loosely typed row tables. It is the ingestion collaborator at the edge
// of the reporting core; the core only ever sees the resulting tables
package sheets

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "patrolstats/internal/platform/errors"
	"patrolstats/internal/platform/logger"

	"patrolstats/internal/core/row"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUA        = "patrolstats-ingest"
	defaultMaxRetry  = 4
	defaultRetryBase = 500 * time.Millisecond
	maxBodyBytes     = 16 << 20
)

// Options configures the Client
type Options struct {
	// URLs maps source name to its published gviz export URL
	URLs map[string]string

	UserAgent string
	Timeout   time.Duration

	// Retry config for transient responses
	MaxRetries int
	RetryBase  time.Duration
}

// Client fetches gviz exports with retries and per-request timeouts
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("sheets"),
		sleep: time.Sleep,
	}
}

// Fetch retrieves and parses one source table. Unknown source names are a
// wiring mistake and reported as invalid argument
func (c *Client) Fetch(ctx context.Context, source string) (row.Table, error) {
	url, ok := c.opts.URLs[source]
	if !ok || url == "" {
		return nil, perr.InvalidArgf("sheets: no export url configured for source %q", source)
	}

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	table, err := ParseGviz(body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "sheets: parse %s export", source)
	}
	return table, nil
}

// get issues the request with UA header and retry/backoff on transient codes
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if attempt > 0 {
			c.sleep(c.opts.RetryBase * time.Duration(1<<(attempt-1)))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "sheets: new request")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = perr.Wrapf(err, perr.ErrorCodeUnavailable, "sheets: request failed")
			continue
		}

		b, rerr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if rerr != nil {
				lastErr = perr.Wrapf(rerr, perr.ErrorCodeUnavailable, "sheets: read body")
				continue
			}
			return b, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = perr.Unavailablef("sheets: status %d from export", resp.StatusCode)
			c.log.Warn().Int("status", resp.StatusCode).Int("attempt", attempt).Msg("transient export response")
			continue
		default:
			return nil, perr.Unavailablef("sheets: status %d from export", resp.StatusCode)
		}
	}
	return nil, lastErr
}
