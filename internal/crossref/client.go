// Package crossref is a rate-limited client for the Crossref works API,
// the external bibliographic registry used for verification.
package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"refcheck/internal/reference"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 15 * time.Second

	// RateLimit keeps the client inside Crossref's polite-pool guidance;
	// it also serves as the inter-request delay between lookups.
	RateLimit = 1.0

	// DefaultSearchRows is the number of candidates requested per title
	// search.
	DefaultSearchRows = 10
)

// Client is a rate-limited HTTP client for the Crossref API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithMailto sets the contact address reported to the polite pool.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithLimiter replaces the default rate limiter.
func WithLimiter(l *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a Crossref client. The contact address is read from
// REFCHECK_MAILTO when not set explicitly.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if m := os.Getenv("REFCHECK_MAILTO"); m != "" {
		c.mailto = m
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// userAgent builds the polite-pool identification header.
func (c *Client) userAgent() string {
	if c.mailto != "" {
		return fmt.Sprintf("refcheck/1.0 (mailto:%s)", c.mailto)
	}
	return "refcheck/1.0"
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 400:
		return &APIError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// WorksByDOI resolves a single work by its identifier. The DOI may carry a
// resolver prefix; it is normalized before the lookup.
func (c *Client) WorksByDOI(ctx context.Context, doi string) (*Work, error) {
	doi = reference.NormalizeDOI(doi)
	if doi == "" {
		return nil, fmt.Errorf("empty DOI")
	}

	var env worksEnvelope
	u := c.baseURL + "/works/" + url.PathEscape(doi)
	if err := c.get(ctx, u, &env); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			apiErr.DOI = doi
		}
		return nil, err
	}

	if env.Message.DOI == "" && env.Message.PrimaryTitle() == "" {
		return nil, ErrNotFound
	}
	return &env.Message, nil
}

// SearchByTitle queries works by title relevance, returning up to rows
// candidates.
func (c *Client) SearchByTitle(ctx context.Context, query string, rows int) ([]Work, error) {
	if rows <= 0 {
		rows = DefaultSearchRows
	}

	q := url.Values{}
	q.Set("query.title", query)
	q.Set("rows", strconv.Itoa(rows))
	q.Set("sort", "relevance")

	var env searchEnvelope
	u := c.baseURL + "/works?" + q.Encode()
	if err := c.get(ctx, u, &env); err != nil {
		return nil, err
	}

	return env.Message.Items, nil
}
