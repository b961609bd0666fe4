// Package mock provides an in-memory storefront API server that facilitates testing of the
// client and its token refresh flow.
//
// The server issues HS256 signed access and refresh credentials, keeps catalog, cart, order,
// voucher and seller data in memory, and exposes hooks to expire credentials or override
// individual endpoints.
package mock
