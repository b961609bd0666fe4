package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/viant/storefront/client/auth/store"
	"golang.org/x/sync/singleflight"
)

// RequestIDHeader correlates an outbound request and its replay.
const RequestIDHeader = "X-Request-ID"

// DefaultRefreshTimeout bounds a shared refresh call.
const DefaultRefreshTimeout = 30 * time.Second

type RoundTripper struct {
	store          store.Store
	refresher      Refresher
	refreshURL     string
	refreshTimeout time.Duration
	onExpired      SessionExpiredHandler
	transport      http.RoundTripper
	logger         zerolog.Logger
	coalesce       bool
	requestID      bool
	refreshes      singleflight.Group
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport:      http.DefaultTransport,
		store:          store.NewMemoryStore(),
		refreshTimeout: DefaultRefreshTimeout,
		onExpired:      func(context.Context, error) {},
		logger:         zerolog.Nop(),
		coalesce:       true,
		requestID:      true,
	}

	for _, opt := range options {
		opt(ret)
	}

	if ret.refresher == nil {
		if ret.refreshURL == "" {
			return nil, errNoRefreshEndpoint
		}
		ret.refresher = NewHTTPRefresher(ret.refreshURL, ret.transport)
	}
	if ret.onExpired == nil {
		ret.onExpired = func(context.Context, error) {}
	}
	if ret.refreshTimeout <= 0 {
		ret.refreshTimeout = DefaultRefreshTimeout
	}
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	outbound, err := clone(req)
	if err != nil {
		return nil, err
	}
	if r.requestID && outbound.Header.Get(RequestIDHeader) == "" {
		outbound.Header.Set(RequestIDHeader, uuid.NewString())
	}
	retried := isRetried(ctx)
	// a replay carries the credential it was refreshed with
	if !retried {
		if access, ok := r.store.Get(store.AccessKey); ok && access != "" {
			outbound.Header.Set("Authorization", bearer(access))
		}
	}

	resp, err := r.transport.RoundTrip(outbound)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	logger := r.requestLogger(outbound)
	if retried {
		logger.Warn().Msg("refreshed access credential rejected")
		return resp, nil
	}
	if !refreshAllowed(ctx) {
		return resp, nil
	}
	return r.refreshAndRetry(outbound, resp, logger)
}

func (r *RoundTripper) refreshAndRetry(outbound *http.Request, resp *http.Response, logger zerolog.Logger) (*http.Response, error) {
	ctx := withRetried(outbound.Context())
	refresh, ok := r.store.Get(store.RefreshKey)
	if !ok || refresh == "" {
		logger.Info().Msg("access credential rejected without refresh credential, ending session")
		r.expire(ctx, ErrNoRefreshCredential)
		return resp, nil
	}
	drain(resp)

	logger.Debug().Msg("access credential rejected, refreshing")
	access, err := r.refreshAccess(ctx, refresh, bearerToken(outbound.Header))
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			logger.Error().Err(err).Msg("token refresh failed, session cleared")
		} else {
			logger.Debug().Err(err).Msg("token refresh abandoned")
		}
		return nil, err
	}

	retry := outbound.Clone(ctx)
	if outbound.GetBody != nil {
		if retry.Body, err = outbound.GetBody(); err != nil {
			return nil, err
		}
	}
	retry.Header.Set("Authorization", bearer(access))
	return r.RoundTrip(retry)
}

// refreshAccess returns a renewed access credential. With coalescing enabled a credential
// already rotated by a concurrent request is reused, and simultaneous refreshes of the same
// refresh credential share one call. The shared call is detached from the caller that started
// it; every caller stops waiting when its own context is done.
func (r *RoundTripper) refreshAccess(ctx context.Context, refresh, rejected string) (string, error) {
	if !r.coalesce {
		return r.refreshToken(ctx, refresh)
	}
	flight := r.refreshes.DoChan(refresh, func() (interface{}, error) {
		if current, ok := r.store.Get(store.AccessKey); ok && current != "" && current != rejected {
			return current, nil
		}
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.refreshTimeout)
		defer cancel()
		return r.refreshToken(flightCtx, refresh)
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-flight:
		if result.Err != nil {
			return "", result.Err
		}
		return result.Val.(string), nil
	}
}

func (r *RoundTripper) refreshToken(ctx context.Context, refresh string) (string, error) {
	access, err := r.refresher.Refresh(ctx, refresh)
	if err != nil && ctx.Err() != nil {
		// cancelled or timed out: the refresh credential was never rejected
		return "", err
	}
	if err == nil {
		err = r.store.Set(store.AccessKey, access)
	}
	if err != nil {
		r.expire(ctx, err)
		return "", fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	event := r.logger.Debug()
	if expiry, ok := ExpiresAt(access); ok {
		event = event.Time("expires", expiry)
	}
	event.Msg("access credential refreshed")
	return access, nil
}

// expire ends the session: every stored credential is removed before the host is notified.
func (r *RoundTripper) expire(ctx context.Context, cause error) {
	if err := r.store.Clear(); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear session")
	}
	r.onExpired(ctx, cause)
}

func (r *RoundTripper) requestLogger(req *http.Request) zerolog.Logger {
	return r.logger.With().
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Str("request_id", req.Header.Get(RequestIDHeader)).
		Logger()
}
