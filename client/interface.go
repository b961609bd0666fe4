package client

import (
	"context"
	"net/http"

	"github.com/viant/storefront/schema"
	"golang.org/x/oauth2"
)

// Interface defines the storefront operations exposed by Client
type Interface interface {
	// Request performs an authenticated call relative to the base origin
	Request(ctx context.Context, method, path string, body interface{}, headers http.Header) (*Response, error)

	Login(ctx context.Context, phoneNumber, password string) (*oauth2.Token, error)
	Signup(ctx context.Context, request *schema.SignupRequest) (*oauth2.Token, error)
	Logout() error
	IsAuthenticated() bool
	Session() *oauth2.Token
	Profile(ctx context.Context) (*schema.Profile, error)

	Products(ctx context.Context, filter *schema.ProductFilter) ([]schema.Product, error)
	Product(ctx context.Context, slug string) (*schema.Product, error)
	Reviews(ctx context.Context, slug string) ([]schema.Review, error)
	AddReview(ctx context.Context, slug string, rating int, comment string) (*schema.Review, error)
	Categories(ctx context.Context) ([]schema.Category, error)
	Home(ctx context.Context) (schema.Content, error)
	About(ctx context.Context) (schema.Content, error)

	Cart(ctx context.Context) (*schema.Cart, error)
	AddToCart(ctx context.Context, productID, qty int) (*schema.Cart, error)
	UpdateCartItem(ctx context.Context, itemID, qty int) (*schema.Cart, error)
	RemoveCartItem(ctx context.Context, itemID int) (*schema.Cart, error)
	ClearCart(ctx context.Context) error
	Orders(ctx context.Context) ([]schema.Order, error)
	CreateOrder(ctx context.Context) (*schema.Order, error)

	RegisterSeller(ctx context.Context, registration *schema.SellerRegistration) (*schema.SellerStatus, error)
	SellerStatus(ctx context.Context) (*schema.SellerStatus, error)
	SellerProducts(ctx context.Context) ([]schema.Product, error)
	CreateSellerProduct(ctx context.Context, input *schema.ProductInput) (*schema.Product, error)
	UpdateSellerProduct(ctx context.Context, id int, input *schema.ProductInput) (*schema.Product, error)
	DeleteSellerProduct(ctx context.Context, id int) error
	UploadProductImages(ctx context.Context, productID int, images ...schema.ImageFile) ([]schema.ProductImage, error)
	SellerOrders(ctx context.Context) ([]schema.OrderItem, error)

	Vouchers(ctx context.Context) ([]schema.Voucher, error)
	PurchaseVoucher(ctx context.Context, value schema.Decimal) (*schema.Voucher, error)
	Notifications(ctx context.Context) ([]schema.Notification, error)
	MarkNotificationRead(ctx context.Context, id int) error
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
