package client

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/client/auth/transport"
)

// Option represents option
type Option func(c *Client)

// WithStore sets the session store holding the access and refresh credentials
func WithStore(store store.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithTransport sets the network transport used below the authenticating one
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.baseTransport = transport
	}
}

// WithSessionExpiredHandler sets the callback invoked after a terminal authorization failure
func WithSessionExpiredHandler(handler transport.SessionExpiredHandler) Option {
	return func(c *Client) {
		c.onExpired = handler
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the overall timeout of a single call, refresh and replay included
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRefreshCoalescing controls whether concurrent refreshes are shared
func WithRefreshCoalescing(enabled bool) Option {
	return func(c *Client) {
		c.coalesce = enabled
	}
}
