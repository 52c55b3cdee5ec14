package ample

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cerl-tools/ample/internal/httpclient"
	"github.com/cerl-tools/ample/internal/ratelimit"
)

// DefaultPageSize is the number of rows requested per search page.
const DefaultPageSize = 100

// maxSearchRows caps paged searches; the backend will not page past this offset.
const maxSearchRows = 10000

// Config controls a Client. The zero value yields a client with the tuned
// default transport, the well-known host table, no rate limiting and the
// default page size.
type Config struct {
	// HTTPClient overrides the default transport, mostly for tests.
	HTTPClient *http.Client

	// Hosts is the alias table consulted by Host and the per-database helpers.
	Hosts Hosts

	// RateLimit paces outgoing requests in requests per second (0 = unlimited).
	RateLimit float64

	// PageSize is the number of rows fetched per search page.
	PageSize int
}

// Client talks to AMPLE database instances. It is safe for concurrent use
// and holds no mutable state between calls.
type Client struct {
	http     *http.Client
	hosts    Hosts
	limiter  *ratelimit.Limiter
	pageSize int
}

// New creates a Client from cfg, filling in defaults for unset fields.
func New(cfg Config) *Client {
	client := cfg.HTTPClient
	if client == nil {
		client = httpclient.New(httpclient.DefaultTimeout)
	}

	hosts := cfg.Hosts
	if hosts == nil {
		hosts = DefaultHosts()
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Client{
		http:     client,
		hosts:    hosts,
		limiter:  ratelimit.New(cfg.RateLimit),
		pageSize: pageSize,
	}
}

// Host resolves a database alias against the client's host table.
// Names missing from the table are treated as literal hosts.
func (c *Client) Host(name string) string {
	return c.hosts.Resolve(name)
}

// get issues a rate-limited GET against host and returns the response along
// with its fully read body. Callers are responsible for status checking.
func (c *Client) get(ctx context.Context, host, path string, params url.Values) (*http.Response, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	endpoint := baseURL(host) + "/" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	return resp, body, nil
}

// checkStatus maps a non-2xx response to a transport error.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("%w: %s returned %s", ErrTransport, resp.Request.URL.Host, resp.Status)
}

// baseURL normalises a host into a request base. Hosts carry no scheme in
// normal use and are served over HTTPS.
func baseURL(host string) string {
	host = strings.TrimSuffix(host, "/")
	if strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}
