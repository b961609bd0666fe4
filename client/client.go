package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/client/auth/transport"
	"github.com/viant/storefront/schema"
)

// DefaultBaseURL is the API origin used when none is configured.
const DefaultBaseURL = "http://127.0.0.1:8000/api/"

type Client struct {
	baseURL       string
	store         store.Store
	transport     *transport.RoundTripper
	httpClient    *http.Client
	logger        zerolog.Logger
	baseTransport http.RoundTripper
	onExpired     transport.SessionExpiredHandler
	timeout       time.Duration
	coalesce      bool
}

// Response is a successful (2xx) API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into target.
func (r *Response) Decode(target interface{}) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// BaseURL returns the API origin, always terminated by a slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Store returns the session store.
func (c *Client) Store() store.Store {
	return c.store
}

// URL resolves path against the base origin.
func (c *Client) URL(path string) string {
	return c.baseURL + strings.TrimLeft(path, "/")
}

// Request performs method on path (relative to the base origin). body may be nil, an
// io.Reader or []byte sent as is, or any value sent as JSON. Non-2xx responses are
// returned as *Error; network failures are returned unchanged.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}, headers http.Header) (*Response, error) {
	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, values := range headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v %v response: %w", method, path, err)
	}
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("api call")
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp, data)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (c *Client) get(ctx context.Context, path string, target interface{}) error {
	return c.send(ctx, http.MethodGet, path, nil, target)
}

func (c *Client) send(ctx context.Context, method, path string, body, target interface{}) error {
	resp, err := c.Request(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	return resp.Decode(target)
}

// getList decodes either a plain JSON array or a paginated envelope.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	resp, err := c.Request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	data := bytes.TrimSpace(resp.Body)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var items []T
		if err = resp.Decode(&items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var page schema.Page[T]
	if err = resp.Decode(&page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func encodeBody(body interface{}) (io.Reader, string, error) {
	switch actual := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return actual, "", nil
	case []byte:
		return bytes.NewReader(actual), "", nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

func normalizeBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", errInvalidBaseURL, baseURL)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL, nil
}

// New creates a storefront client for baseURL (DefaultBaseURL when empty).
func New(baseURL string, options ...Option) (*Client, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	ret := &Client{
		baseURL:       base,
		store:         store.NewMemoryStore(),
		logger:        zerolog.Nop(),
		baseTransport: http.DefaultTransport,
		timeout:       30 * time.Second,
		coalesce:      true,
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.transport, err = transport.New(
		transport.WithStore(ret.store),
		transport.WithTransport(ret.baseTransport),
		transport.WithRefreshURL(ret.URL(transport.RefreshPath)),
		transport.WithSessionExpiredHandler(ret.onExpired),
		transport.WithLogger(ret.logger),
		transport.WithRefreshCoalescing(ret.coalesce),
		transport.WithRefreshTimeout(ret.timeout),
	)
	if err != nil {
		return nil, err
	}
	ret.httpClient = &http.Client{Transport: ret.transport, Timeout: ret.timeout}
	return ret, nil
}
