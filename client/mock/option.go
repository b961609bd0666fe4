package mock

import "time"

// Option represents a service option
type Option func(s *Service)

// WithAccessTTL sets the lifetime of issued access credentials
func WithAccessTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.AccessTTL = ttl
	}
}

// WithRefreshTTL sets the lifetime of issued refresh credentials
func WithRefreshTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.RefreshTTL = ttl
	}
}

// WithSecret sets the HMAC secret used to sign credentials
func WithSecret(secret []byte) Option {
	return func(s *Service) {
		s.Secret = secret
	}
}

// WithPaginatedProducts wraps the product listing in a page envelope
func WithPaginatedProducts(enabled bool) Option {
	return func(s *Service) {
		s.PaginateProducts = enabled
	}
}

// WithSellerAutoApproval approves seller registrations immediately
func WithSellerAutoApproval(enabled bool) Option {
	return func(s *Service) {
		s.AutoApproveSellers = enabled
	}
}
