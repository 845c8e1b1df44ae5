// Package scrapegraph provides a client for the ScrapeGraphAI web scraping API.
package scrapegraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

// Default base URL for the ScrapeGraphAI v1 API.
const defaultBaseURL = "https://api.scrapegraphai.com/v1"

// Extraction modes accepted by POST /crawl.
const (
	ExtractionModeAI       = "ai"
	ExtractionModeMarkdown = "markdown"
)

// Client defines the ScrapeGraphAI API operations. Every operation returns
// the upstream JSON body unchanged; callers that need individual fields
// decode what they need.
type Client interface {
	Markdownify(ctx context.Context, req MarkdownifyRequest) (json.RawMessage, error)
	SmartScraper(ctx context.Context, req SmartScraperRequest) (json.RawMessage, error)
	SearchScraper(ctx context.Context, req SearchScraperRequest) (json.RawMessage, error)
	Crawl(ctx context.Context, req CrawlRequest) (json.RawMessage, error)
	GetCrawlStatus(ctx context.Context, requestID string) (json.RawMessage, error)
}

// MarkdownifyRequest is the body for POST /markdownify.
type MarkdownifyRequest struct {
	WebsiteURL string `json:"website_url"`
}

// SmartScraperRequest is the body for POST /smartscraper. Optional fields are
// pointers so that an unset option is omitted from the wire body entirely
// rather than sent as a zero value.
type SmartScraperRequest struct {
	UserPrompt      string `json:"user_prompt"`
	WebsiteURL      string `json:"website_url"`
	NumberOfScrolls *int   `json:"number_of_scrolls,omitempty"`
	MarkdownOnly    *bool  `json:"markdown_only,omitempty"`
}

// SearchScraperRequest is the body for POST /searchscraper.
type SearchScraperRequest struct {
	UserPrompt      string `json:"user_prompt"`
	NumResults      *int   `json:"num_results,omitempty"`
	NumberOfScrolls *int   `json:"number_of_scrolls,omitempty"`
}

// CrawlRequest is the body for POST /crawl. Prompt is required by the API
// when ExtractionMode is "ai" and ignored in "markdown" mode.
type CrawlRequest struct {
	URL            string `json:"url"`
	ExtractionMode string `json:"extraction_mode"`
	Prompt         string `json:"prompt,omitempty"`
	Depth          *int   `json:"depth,omitempty"`
	MaxPages       *int   `json:"max_pages,omitempty"`
	SameDomainOnly *bool  `json:"same_domain_only,omitempty"`
}

// APIError is returned when ScrapeGraphAI responds with a non-200 status.
// The message format is part of the tool contract: assistants pattern-match
// on the embedded status code (e.g. "402") to decide how to react.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.StatusCode, e.Body)
}

// Option configures the httpClient.
type Option func(*httpClient)

// WithBaseURL overrides the default base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// httpClient implements Client using net/http.
type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new ScrapeGraphAI client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Markdownify(ctx context.Context, req MarkdownifyRequest) (json.RawMessage, error) {
	raw, err := c.post(ctx, "/markdownify", req)
	if err != nil {
		return nil, eris.Wrap(err, "scrapegraph: markdownify")
	}
	return raw, nil
}

func (c *httpClient) SmartScraper(ctx context.Context, req SmartScraperRequest) (json.RawMessage, error) {
	raw, err := c.post(ctx, "/smartscraper", req)
	if err != nil {
		return nil, eris.Wrap(err, "scrapegraph: smartscraper")
	}
	return raw, nil
}

func (c *httpClient) SearchScraper(ctx context.Context, req SearchScraperRequest) (json.RawMessage, error) {
	raw, err := c.post(ctx, "/searchscraper", req)
	if err != nil {
		return nil, eris.Wrap(err, "scrapegraph: searchscraper")
	}
	return raw, nil
}

func (c *httpClient) Crawl(ctx context.Context, req CrawlRequest) (json.RawMessage, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	raw, err := c.post(ctx, "/crawl", req)
	if err != nil {
		return nil, eris.Wrap(err, "scrapegraph: start crawl")
	}
	return raw, nil
}

func (c *httpClient) GetCrawlStatus(ctx context.Context, requestID string) (json.RawMessage, error) {
	if requestID == "" {
		return nil, eris.New("scrapegraph: request_id is required")
	}
	raw, err := c.get(ctx, fmt.Sprintf("/crawl/%s", requestID))
	if err != nil {
		return nil, eris.Wrap(err, fmt.Sprintf("scrapegraph: get crawl status %s", requestID))
	}
	return raw, nil
}

// validate enforces the crawl preconditions before any network I/O.
func (r CrawlRequest) validate() error {
	switch r.ExtractionMode {
	case ExtractionModeAI:
		if r.Prompt == "" {
			return eris.New("scrapegraph: prompt is required when extraction_mode is 'ai'")
		}
	case ExtractionModeMarkdown:
	default:
		return eris.Errorf("scrapegraph: invalid extraction_mode %q (want %q or %q)",
			r.ExtractionMode, ExtractionModeAI, ExtractionModeMarkdown)
	}
	return nil
}

func (c *httpClient) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, eris.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, eris.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("SGAI-APIKEY", c.apiKey)

	return c.do(req)
}

func (c *httpClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, eris.Wrap(err, "create request")
	}
	req.Header.Set("SGAI-APIKEY", c.apiKey)

	return c.do(req)
}

func (c *httpClient) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	if !json.Valid(data) {
		return nil, eris.New("decode response: body is not valid JSON")
	}

	return json.RawMessage(data), nil
}
