package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned when the access credential cannot be renewed; the session has been cleared.
	ErrSessionExpired = errors.New("session expired")
	// ErrNoRefreshCredential is passed to the SessionExpiredHandler when a 401 arrives with no refresh credential stored.
	ErrNoRefreshCredential = errors.New("no refresh credential")
	errNoRefreshEndpoint   = errors.New("refresh endpoint not configured")
)

// RefreshError describes a rejected call to the refresh endpoint.
type RefreshError struct {
	StatusCode int
	Body       string
	Reason     string
}

func (e *RefreshError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("token refresh failed: %s (status %d)", e.Reason, e.StatusCode)
	}
	return fmt.Sprintf("token refresh failed: status %d: %s", e.StatusCode, e.Body)
}
