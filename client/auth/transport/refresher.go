package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RefreshPath is the refresh endpoint relative to the API base origin.
const RefreshPath = "auth/token/refresh/"

// Refresher exchanges a refresh credential for a new access credential.
type Refresher interface {
	Refresh(ctx context.Context, refresh string) (string, error)
}

// RefresherFunc adapts a function to the Refresher interface.
type RefresherFunc func(ctx context.Context, refresh string) (string, error)

func (f RefresherFunc) Refresh(ctx context.Context, refresh string) (string, error) {
	return f(ctx, refresh)
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// HTTPRefresher calls the refresh endpoint with a plain (non authenticating) client.
type HTTPRefresher struct {
	URL    string
	client *http.Client
}

func (h *HTTPRefresher) Refresh(ctx context.Context, refresh string) (string, error) {
	payload, err := json.Marshal(refreshRequest{Refresh: refresh})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token refresh request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read token refresh response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RefreshError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	var out refreshResponse
	if err = json.Unmarshal(body, &out); err != nil {
		return "", &RefreshError{StatusCode: resp.StatusCode, Body: string(body), Reason: "malformed response"}
	}
	if out.Access == "" {
		return "", &RefreshError{StatusCode: resp.StatusCode, Body: string(body), Reason: "missing access credential"}
	}
	return out.Access, nil
}

// NewHTTPRefresher creates a Refresher posting to URL through transport (http.DefaultTransport when nil).
func NewHTTPRefresher(URL string, transport http.RoundTripper) *HTTPRefresher {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &HTTPRefresher{URL: URL, client: &http.Client{Transport: transport}}
}
