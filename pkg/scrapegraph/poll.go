package scrapegraph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultPollInitial = 2 * time.Second
	defaultPollCap     = 15 * time.Second
	defaultPollTimeout = 5 * time.Minute
)

// Crawl job states reported by GET /crawl/{id}.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// PollOption configures polling behavior.
type PollOption func(*pollConfig)

type pollConfig struct {
	initial time.Duration
	cap     time.Duration
	timeout time.Duration
}

func defaultPollConfig() pollConfig {
	return pollConfig{
		initial: defaultPollInitial,
		cap:     defaultPollCap,
		timeout: defaultPollTimeout,
	}
}

// WithPollInterval overrides the initial poll interval.
func WithPollInterval(d time.Duration) PollOption {
	return func(c *pollConfig) {
		c.initial = d
	}
}

// WithPollCap overrides the maximum poll interval.
func WithPollCap(d time.Duration) PollOption {
	return func(c *pollConfig) {
		c.cap = d
	}
}

// WithPollTimeout overrides the default timeout (applied only if the parent
// context has no deadline).
func WithPollTimeout(d time.Duration) PollOption {
	return func(c *pollConfig) {
		c.timeout = d
	}
}

// RequestID extracts the crawl handle from a Crawl acknowledgement body.
// Deployments have shipped the handle under different keys, so all known
// spellings are accepted.
func RequestID(ack json.RawMessage) (string, error) {
	var body struct {
		RequestID string `json:"request_id"`
		TaskID    string `json:"task_id"`
		ID        string `json:"id"`
	}
	if err := json.Unmarshal(ack, &body); err != nil {
		return "", eris.Wrap(err, "scrapegraph: decode crawl acknowledgement")
	}
	for _, id := range []string{body.RequestID, body.TaskID, body.ID} {
		if id != "" {
			return id, nil
		}
	}
	return "", eris.New("scrapegraph: crawl acknowledgement carries no request id")
}

// Status extracts the job status from a crawl status body.
func Status(raw json.RawMessage) (string, error) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", eris.Wrap(err, "scrapegraph: decode crawl status")
	}
	return body.Status, nil
}

// PollCrawl polls GetCrawlStatus until the crawl completes, fails, or the
// context expires, and returns the final status body. Uses exponential
// backoff: 2s -> 4s -> 8s -> 15s (capped). The MCP tool surface never calls
// this; polling cadence belongs to whoever initiated the crawl.
func PollCrawl(ctx context.Context, client Client, id string, opts ...PollOption) (json.RawMessage, error) {
	cfg := defaultPollConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	interval := cfg.initial
	for {
		raw, err := client.GetCrawlStatus(ctx, id)
		if err != nil {
			return nil, eris.Wrap(err, fmt.Sprintf("scrapegraph: poll crawl %s", id))
		}

		status, err := Status(raw)
		if err != nil {
			return nil, err
		}
		switch status {
		case StatusCompleted:
			return raw, nil
		case StatusFailed:
			return nil, eris.Errorf("scrapegraph: crawl %s failed", id)
		}

		select {
		case <-ctx.Done():
			return nil, eris.Wrap(ctx.Err(), fmt.Sprintf("scrapegraph: poll crawl %s timed out", id))
		case <-time.After(interval):
		}

		interval *= 2
		if interval > cfg.cap {
			interval = cfg.cap
		}
	}
}
