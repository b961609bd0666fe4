package mock

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/viant/storefront/internal/collection"
	"github.com/viant/storefront/schema"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultPhoneNumber identifies the seeded customer account
	DefaultPhoneNumber = "9800000001"
	// DefaultPassword is the password of the seeded customer account
	DefaultPassword = "secret123"
	// RefreshPath is the refresh endpoint path served by the mock
	RefreshPath = "/api/auth/token/refresh/"
)

// Service simulates the storefront REST API
type Service struct {
	Secret             []byte
	AccessTTL          time.Duration
	RefreshTTL         time.Duration
	PaginateProducts   bool
	AutoApproveSellers bool
	// RefreshHandler replaces the refresh endpoint when set
	RefreshHandler http.HandlerFunc
	// LoginHandler replaces the login endpoint when set
	LoginHandler http.HandlerFunc

	accounts          *collection.SyncMap[string, *account]
	products          *collection.SyncMap[int, *product]
	hits              *collection.SyncMap[string, int]
	accessGeneration  atomic.Int64
	refreshGeneration atomic.Int64

	mux           sync.Mutex
	sequence      int
	categories    []schema.Category
	carts         map[string]*schema.Cart
	orders        map[string][]*schema.Order
	vouchers      map[string][]*schema.Voucher
	notifications map[string][]*schema.Notification
	reviews       map[string][]schema.Review
}

type account struct {
	profile      schema.Profile
	passwordHash []byte
	seller       *schema.SellerStatus
}

type product struct {
	schema.Product
	owner string
}

// NewService creates a storefront API service seeded with a customer account and a small catalog
func NewService(opts ...Option) (*Service, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	ret := &Service{
		Secret:        secret,
		AccessTTL:     5 * time.Minute,
		RefreshTTL:    24 * time.Hour,
		accounts:      collection.NewSyncMap[string, *account](),
		products:      collection.NewSyncMap[int, *product](),
		hits:          collection.NewSyncMap[string, int](),
		carts:         map[string]*schema.Cart{},
		orders:        map[string][]*schema.Order{},
		vouchers:      map[string][]*schema.Voucher{},
		notifications: map[string][]*schema.Notification{},
		reviews:       map[string][]schema.Review{},
	}
	for _, opt := range opts {
		opt(ret)
	}
	if err := ret.seed(); err != nil {
		return nil, err
	}
	return ret, nil
}

// AddAccount registers a customer account
func (s *Service) AddAccount(profile schema.Profile, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	s.mux.Lock()
	profile.ID = s.nextID()
	s.mux.Unlock()
	if !s.accounts.PutIfAbsent(profile.PhoneNumber, &account{profile: profile, passwordHash: hash}) {
		return fmt.Errorf("account %v already exists", profile.PhoneNumber)
	}
	return nil
}

// ApproveSeller approves a pending seller registration
func (s *Service) ApproveSeller(phoneNumber string) error {
	acc, ok := s.accounts.Get(phoneNumber)
	if !ok {
		return fmt.Errorf("account %v not found", phoneNumber)
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if acc.seller == nil {
		return fmt.Errorf("account %v has no seller registration", phoneNumber)
	}
	acc.seller.Status = schema.SellerStatusApproved
	return nil
}

// ExpireAccessTokens invalidates every access credential issued so far
func (s *Service) ExpireAccessTokens() {
	s.accessGeneration.Add(1)
}

// RevokeRefreshTokens invalidates every refresh credential issued so far
func (s *Service) RevokeRefreshTokens() {
	s.refreshGeneration.Add(1)
}

// Hits returns the number of requests received on path, e.g. RefreshPath
func (s *Service) Hits(path string) int {
	count, _ := s.hits.Get(path)
	return count
}

// Register registers HTTP handlers for all mock endpoints onto the given ServeMux.
func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/login/{$}", s.login)
	mux.HandleFunc("POST /api/signup/{$}", s.signup)
	mux.HandleFunc("POST /api/auth/token/refresh/{$}", s.refresh)
	mux.HandleFunc("GET /api/profile/{$}", s.authorized(s.profile))

	mux.HandleFunc("GET /api/home/{$}", s.home)
	mux.HandleFunc("GET /api/about/{$}", s.about)
	mux.HandleFunc("GET /api/categories/{$}", s.listCategories)
	mux.HandleFunc("GET /api/products/{$}", s.listProducts)
	mux.HandleFunc("GET /api/products/{slug}/{$}", s.getProduct)
	mux.HandleFunc("GET /api/products/{slug}/reviews/{$}", s.listReviews)
	mux.HandleFunc("POST /api/products/{slug}/reviews/{$}", s.authorized(s.addReview))

	mux.HandleFunc("GET /api/cart/{$}", s.authorized(s.getCart))
	mux.HandleFunc("POST /api/cart/add/{$}", s.authorized(s.addToCart))
	mux.HandleFunc("PATCH /api/cart/update_item/{$}", s.authorized(s.updateCartItem))
	mux.HandleFunc("DELETE /api/cart/clear/{$}", s.authorized(s.clearCart))
	mux.HandleFunc("GET /api/orders/{$}", s.authorized(s.listOrders))
	mux.HandleFunc("POST /api/orders/create/{$}", s.authorized(s.createOrder))

	mux.HandleFunc("GET /api/seller/register/{$}", s.authorized(s.sellerStatus))
	mux.HandleFunc("POST /api/seller/register/{$}", s.authorized(s.registerSeller))
	mux.HandleFunc("GET /api/seller/products/{$}", s.seller(s.listSellerProducts))
	mux.HandleFunc("POST /api/seller/products/{$}", s.seller(s.createSellerProduct))
	mux.HandleFunc("PATCH /api/seller/products/{id}/{$}", s.seller(s.updateSellerProduct))
	mux.HandleFunc("DELETE /api/seller/products/{id}/{$}", s.seller(s.deleteSellerProduct))
	mux.HandleFunc("POST /api/seller/upload-image/{$}", s.seller(s.uploadImages))
	mux.HandleFunc("GET /api/seller/orders/{$}", s.seller(s.listSellerOrders))

	mux.HandleFunc("GET /api/vouchers/{$}", s.authorized(s.listVouchers))
	mux.HandleFunc("POST /api/vouchers/purchase/{$}", s.authorized(s.purchaseVoucher))
	mux.HandleFunc("GET /api/notifications/{$}", s.authorized(s.listNotifications))
	mux.HandleFunc("POST /api/notifications/{id}/read/{$}", s.authorized(s.markNotificationRead))
}

// Handler returns an http.Handler for all mock endpoints, suitable for any HTTP server.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Update(r.URL.Path, func(count int, _ bool) int { return count + 1 })
		mux.ServeHTTP(w, r)
	})
}

// nextID must be called with mux held.
func (s *Service) nextID() int {
	s.sequence++
	return s.sequence
}

func (s *Service) seed() error {
	if err := s.AddAccount(schema.Profile{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		PhoneNumber: DefaultPhoneNumber,
		Gender:      "female",
	}, DefaultPassword); err != nil {
		return err
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.categories = []schema.Category{
		{ID: s.nextID(), Name: "Electronics", Slug: "electronics"},
		{ID: s.nextID(), Name: "Books", Slug: "books"},
	}
	created := time.Now().Add(-time.Hour)
	for i, item := range []schema.Product{
		{Title: "Go Programming", Slug: "go-programming", Brand: "Gopher Press", Category: "books", Price: "899.00", MRP: "999.00", Stock: 20},
		{Title: "Smart Watch", Slug: "smart-watch", Brand: "Tick", Category: "electronics", Price: "4999.00", MRP: "5999.00", Stock: 5},
		{Title: "Wireless Headphones", Slug: "wireless-headphones", Brand: "Sonic", Category: "electronics", Price: "2499.00", MRP: "2999.00", Stock: 10},
	} {
		item.ID = s.nextID()
		item.Description = item.Title + " by " + item.Brand
		item.IsActive = true
		item.CreatedAt = created.Add(time.Duration(i) * time.Minute)
		s.products.Put(item.ID, &product{Product: item})
	}
	return nil
}
