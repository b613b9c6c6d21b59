// Package transport provides the JSON-over-HTTP client shared by all venue
// adapters. Connection pooling, timeouts and proxying live here; adapters
// perform exactly one request per call and never retry.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/zecwatch/ratequorum/pkg/version"
)

// Client is a small wrapper around http.Client with sane defaults. It is
// safe for concurrent use by multiple simultaneous requests.
type Client struct {
	http      *http.Client
	userAgent string
}

// Config holds client construction options.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// New creates a Client with a tuned http.Transport.
func New(cfg Config) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = version.AgentString()
	}

	return &Client{
		http:      &http.Client{Timeout: timeout, Transport: transport},
		userAgent: userAgent,
	}
}

// GetJSON performs one HTTP GET against url and decodes the response body
// into out. A non-2xx response is returned as *StatusError; a body that
// cannot be decoded is returned wrapped in ErrDecode.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}
