package easynews

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultURL     = "https://members.easynews.com/1.0/global5/index.html"
	DefaultTimeout = 20 * time.Second

	maxResponseSize = 32 << 20
	maxErrorBody    = 200
)

// ClientConfig configures the connection to Easynews.
type ClientConfig struct {
	URL     string
	Timeout time.Duration
	// Proxy is the address of a SOCKS5 proxy to dial through.
	Proxy     string
	DebugHTTP string
	// Transport replaces the default network transport.
	Transport http.RoundTripper
}

// Client runs global searches. Every Fetch is one GET without retries.
type Client struct {
	endpoint   *url.URL
	timeout    time.Duration
	httpClient *http.Client
	logger     *log.Entry
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := log.WithField("component", "easynews")
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	endpoint, err := url.Parse(cfg.URL)
	if err != nil || endpoint.Host == "" {
		return nil, fmt.Errorf("invalid easynews url %q", cfg.URL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	base := cfg.Transport
	if base == nil {
		base, err = baseTransport(cfg.Proxy, logger)
		if err != nil {
			return nil, err
		}
	}
	transport, err := newTransport(base, cfg.DebugHTTP)
	if err != nil {
		return nil, err
	}

	return &Client{
		endpoint: endpoint,
		timeout:  cfg.Timeout,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// SearchURL is the url of the search without credentials.
func (c *Client) SearchURL(q Query) string {
	u := *c.endpoint
	values := u.Query()
	for k, vals := range q.Values() {
		values[k] = vals
	}
	u.RawQuery = values.Encode()
	return u.String()
}

// Fetch runs the search and parses the results.
// A rejected account matches ErrUnauthorized, every other failure ErrUpstream.
func (c *Client) Fetch(ctx context.Context, q Query, creds Credentials) ([]Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(withCredentials(ctx, creds), http.MethodGet, c.SearchURL(q), nil)
	if err != nil {
		return nil, wrapError("search", 0, err, "building request")
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.8")

	logger := c.logger.WithFields(log.Fields{"terms": q.Terms, "page": q.Page + 1, "pageSize": q.PageSize})
	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("Easynews search failed")
		return nil, wrapError("search", 0, err, "")
	}
	defer resp.Body.Close()

	logger = logger.WithFields(log.Fields{"status": resp.StatusCode, "took": time.Since(started).String()})
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		logger.Warn("Easynews rejected the account")
		return nil, wrapError("search", resp.StatusCode, ErrUnauthorized, "")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Warn("Easynews search returned an error status")
		return nil, wrapError("search", resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode), strings.TrimSpace(string(body)))
	}

	results, err := ParseFeed(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		logger.WithError(err).Warn("Unreadable Easynews search response")
		return nil, wrapError("parse", resp.StatusCode, err, "")
	}
	logger.WithField("results", len(results)).Debug("Easynews search done")
	return results, nil
}
