package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sdl-format/go-sdl/debug"
	"github.com/sdl-format/go-sdl/introspection"
)

// Client fetches introspection results from a GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	headers    http.Header
}

type Option func(*Client)

// WithHTTPClient substitutes the transport; the default is
// http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Add(key, value) }
}

// WithBearerToken sets an Authorization bearer header.
func WithBearerToken(token string) Option {
	return func(c *Client) { c.headers.Set("Authorization", "Bearer "+token) }
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch posts the standard introspection query to endpoint and decodes the
// schema out of the response.
func (c *Client) Fetch(ctx context.Context, endpoint string) (*introspection.Schema, error) {
	body, err := json.Marshal(map[string]string{
		"query": introspection.Query,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if debug.Fetch() {
		debug.Logf("client: POST %s\n", endpoint)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()
	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, resp.Status, truncate(d, 256))
	}
	var res introspection.Response
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if len(res.Errors) != 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, endpoint, res.Errors[0])
	}
	if res.Data == nil || res.Data.Schema == nil {
		return nil, fmt.Errorf("%w: response has no __schema", ErrFetch)
	}
	return res.Data.Schema, nil
}

// Fetch is a one-shot Client.Fetch with the given options.
func Fetch(ctx context.Context, endpoint string, opts ...Option) (*introspection.Schema, error) {
	return New(opts...).Fetch(ctx, endpoint)
}

func truncate(d []byte, n int) string {
	if len(d) <= n {
		return string(d)
	}
	return string(d[:n]) + "..."
}
