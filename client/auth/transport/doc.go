// Package transport implements an http.RoundTripper that authenticates storefront API
// calls with a bearer access credential taken from a session store.
//
// When the API rejects a request with `401 Unauthorized` the RoundTripper exchanges the
// stored refresh credential for a new access credential exactly once, persists it and
// replays the original request with the new credential. When recovery is impossible the
// session is cleared and a host supplied SessionExpiredHandler is invoked, typically to
// send the user back to the login entry point.
package transport
