package transport

import (
	"context"
)

type (
	contextRetryKey string
)

const (
	contextRetriedKey   contextRetryKey = "authRetried"
	contextNoRefreshKey contextRetryKey = "authNoRefresh"
)

// WithoutRefresh marks a request whose 401 is returned as is, without a refresh or session
// expiry. Credential exchanges such as login use it: their 401 means bad input, not an expired session.
func WithoutRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextNoRefreshKey, true)
}

func refreshAllowed(ctx context.Context) bool {
	skip, _ := ctx.Value(contextNoRefreshKey).(bool)
	return !skip
}

// withRetried marks a request context as already replayed after a credential refresh.
func withRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextRetriedKey, true)
}

func isRetried(ctx context.Context) bool {
	if v := ctx.Value(contextRetriedKey); v != nil {
		retried, _ := v.(bool)
		return retried
	}
	return false
}
