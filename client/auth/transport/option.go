package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/storefront/client/auth/store"
)

// SessionExpiredHandler is invoked once the session has been cleared after an
// unrecoverable authorization failure. Hosts use it to redirect to the login entry point.
type SessionExpiredHandler func(ctx context.Context, cause error)

type Option func(*RoundTripper)

// WithStore sets session store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithRefresher sets the refresh credential exchange
func WithRefresher(refresher Refresher) Option {
	return func(t *RoundTripper) {
		t.refresher = refresher
	}
}

// WithRefreshURL sets the absolute refresh endpoint URL, used when no Refresher is supplied
func WithRefreshURL(URL string) Option {
	return func(t *RoundTripper) {
		t.refreshURL = URL
	}
}

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithSessionExpiredHandler sets the terminal failure callback
func WithSessionExpiredHandler(handler SessionExpiredHandler) Option {
	return func(t *RoundTripper) {
		t.onExpired = handler
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}

// WithRefreshCoalescing controls whether concurrent 401s share one refresh call (enabled by default)
func WithRefreshCoalescing(enabled bool) Option {
	return func(t *RoundTripper) {
		t.coalesce = enabled
	}
}

// WithRequestID controls X-Request-ID generation (enabled by default)
func WithRequestID(enabled bool) Option {
	return func(t *RoundTripper) {
		t.requestID = enabled
	}
}

// WithRefreshTimeout bounds a shared refresh call, which no longer follows the cancellation of the request that started it
func WithRefreshTimeout(timeout time.Duration) Option {
	return func(t *RoundTripper) {
		t.refreshTimeout = timeout
	}
}
