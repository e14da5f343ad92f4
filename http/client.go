// Package http provides an HTTP-based implementation of polodata.Fetcher
// for retrieving match result pages from the league website.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mvesely/polodata"
)

// Defaults used when no option overrides them.
const (
	// DefaultBaseURL is the canonical production endpoint.
	DefaultBaseURL = "https://www.csvp.cz"

	// DefaultTimeout bounds each request.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is a desktop-browser signature; the site rejects
	// requests that identify as automated clients.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
)

// Ensure Client implements polodata.Fetcher at compile time.
var _ polodata.Fetcher = (*Client)(nil)

// Client retrieves match pages over HTTP. It must be opened before the
// first fetch and closed after the last; the underlying http.Client is the
// session resource reused across all fetches in between.
type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	client    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base endpoint. Defaults to DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header. Defaults to DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new Client. The returned client has no open session;
// call Open before fetching.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open acquires the underlying HTTP session.
func (c *Client) Open() error {
	if c.client != nil {
		return polodata.Errorf(polodata.ESESSION, "session already open")
	}
	c.client = &http.Client{
		Timeout: c.timeout,
	}
	return nil
}

// FetchMatch retrieves the HTML document for the match with the given id.
// Exactly one GET request is issued per call, to {base}/zapas/{id}; there
// is no caching and no retry.
func (c *Client) FetchMatch(ctx context.Context, matchID int) (string, error) {
	if matchID < 1 {
		return "", polodata.Errorf(polodata.EINVALID, "match id must be positive, got %d", matchID)
	}
	if c.client == nil {
		return "", polodata.Errorf(polodata.ESESSION, "fetch attempted outside an open session")
	}

	url := fmt.Sprintf("%s/zapas/%d", c.baseURL, matchID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", polodata.WrapErrorf(polodata.EINVALID, "", err, "creating request for %s", url)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", polodata.WrapErrorf(polodata.ETRANSPORT, "", err, "fetching %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", polodata.Errorf(polodata.ETRANSPORT, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", polodata.WrapErrorf(polodata.ETRANSPORT, "", err, "reading response body for %s", url)
	}

	return string(body), nil
}

// Close releases the HTTP session. Closing an already-closed client is a
// no-op.
func (c *Client) Close() error {
	if c.client != nil {
		c.client.CloseIdleConnections()
		c.client = nil
	}
	return nil
}
