package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/viant/storefront/schema"
)

var (
	// ErrUnauthorized matches an *Error carrying status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound matches an *Error carrying status 404.
	ErrNotFound       = errors.New("not found")
	errInvalidBaseURL = errors.New("base URL must be absolute")
)

// Error is a non-2xx API response. Business errors (validation, stock conflicts ...) are
// not interpreted; Body keeps the payload for the caller.
type Error struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized reports whether the API rejected the credential even after a refresh.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Fields returns field level validation messages, e.g. {"phone_number": ["already exists"]}.
func (e *Error) Fields() map[string][]string {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(e.Body, &raw); err != nil {
		return nil
	}
	ret := map[string][]string{}
	for key, value := range raw {
		if key == "detail" {
			continue
		}
		var messages []string
		if err := json.Unmarshal(value, &messages); err == nil {
			ret[key] = messages
			continue
		}
		var message string
		if err := json.Unmarshal(value, &message); err == nil {
			ret[key] = []string{message}
		}
	}
	return ret
}

func newError(resp *http.Response, body []byte) *Error {
	ret := &Error{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.Redacted(),
		StatusCode: resp.StatusCode,
		Body:       body,
	}
	detail := schema.Detail{}
	if json.Unmarshal(body, &detail) == nil {
		ret.Detail = detail.Detail
	}
	return ret
}
