// Package fetch contains http utils to deal with remote services: a JSON GET helper and
// an optional disk cache whose entries expire every day.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every request of a Client.
const DefaultTimeout = 15 * time.Second

// StatusError is returned for non 2xx responses.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot http GET %v: %v", e.URL, e.Status)
}

// Client performs GET requests against remote JSON APIs.
type Client struct {
	HTTP *http.Client
}

// Options configure a Client.
type Options struct {
	Timeout  time.Duration // zero means DefaultTimeout
	CacheDir string        // daily disk cache location, empty disables the cache
}

// New returns a Client.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	var transport http.RoundTripper = logging{http.DefaultTransport}
	if opts.CacheDir != "" {
		transport = &diskCache{base: transport, dir: opts.CacheDir}
	}
	return &Client{HTTP: &http.Client{Timeout: timeout, Transport: transport}}
}

// Get performs an HTTP GET request and returns the body of a successful response.
func (c *Client) Get(ctx context.Context, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			URL:    resp.Request.URL.Host + resp.Request.URL.Path,
			Status: resp.Status,
			Code:   resp.StatusCode,
		}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return buf.Bytes(), nil
}

// GetJSON performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func (c *Client) GetJSON(ctx context.Context, addr string, data any) error {
	body, err := c.Get(ctx, addr)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("decode %s: %w", addr, err)
	}
	return nil
}
