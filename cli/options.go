package cli

import (
	"os"
	"path/filepath"

	"github.com/viant/storefront"
)

type Options struct {
	Config string `short:"c" long:"config" description:"YAML client options file"`
	storefront.ClientOptions

	Login    LoginCommand    `command:"login" description:"sign in and store the session"`
	Signup   SignupCommand   `command:"signup" description:"create an account"`
	Logout   LogoutCommand   `command:"logout" description:"drop the stored session"`
	Session  SessionCommand  `command:"session" description:"show the stored session"`
	Profile  ProfileCommand  `command:"profile" description:"show the account profile"`
	Request  RequestCommand  `command:"request" description:"call an arbitrary API path"`
	Home     HomeCommand     `command:"home" description:"show the landing page content"`
	About    AboutCommand    `command:"about" description:"show the about page content"`
	Category CategoryCommand `command:"categories" description:"list product categories"`
	Products ProductsCommand `command:"products" description:"list products"`
	Product  ProductCommand  `command:"product" description:"show a product"`
	Reviews  ReviewsCommand  `command:"reviews" description:"list product reviews"`
	Review   ReviewCommand   `command:"review" description:"review a product"`

	Cart       CartCommand       `command:"cart" description:"show the cart"`
	CartAdd    CartAddCommand    `command:"cart-add" description:"add a product to the cart"`
	CartUpdate CartUpdateCommand `command:"cart-update" description:"change a cart line quantity, 0 removes it"`
	CartClear  CartClearCommand  `command:"cart-clear" description:"empty the cart"`
	Orders     OrdersCommand     `command:"orders" description:"list orders"`
	Order      OrderCommand      `command:"order" description:"place an order for the cart content"`

	Vouchers         VouchersCommand         `command:"vouchers" description:"list gift vouchers"`
	VoucherPurchase  VoucherPurchaseCommand  `command:"voucher-purchase" description:"purchase a gift voucher"`
	Notifications    NotificationsCommand    `command:"notifications" description:"list notifications"`
	NotificationRead NotificationReadCommand `command:"notification-read" description:"mark a notification as read"`

	SellerStatus   SellerStatusCommand   `command:"seller-status" description:"show the seller registration"`
	SellerRegister SellerRegisterCommand `command:"seller-register" description:"apply as a seller"`
	SellerProducts SellerProductsCommand `command:"seller-products" description:"list own products"`
	SellerCreate   SellerCreateCommand   `command:"seller-create" description:"create a product"`
	SellerUpdate   SellerUpdateCommand   `command:"seller-update" description:"update a product"`
	SellerDelete   SellerDeleteCommand   `command:"seller-delete" description:"delete a product"`
	SellerUpload   SellerUploadCommand   `command:"seller-upload" description:"upload product images"`
	SellerOrders   SellerOrdersCommand   `command:"seller-orders" description:"list order lines of own products"`
}

func (o *Options) commands() []command {
	return []command{
		&o.Login, &o.Signup, &o.Logout, &o.Session, &o.Profile, &o.Request,
		&o.Home, &o.About, &o.Category, &o.Products, &o.Product, &o.Reviews, &o.Review,
		&o.Cart, &o.CartAdd, &o.CartUpdate, &o.CartClear, &o.Orders, &o.Order,
		&o.Vouchers, &o.VoucherPurchase, &o.Notifications, &o.NotificationRead,
		&o.SellerStatus, &o.SellerRegister, &o.SellerProducts, &o.SellerCreate,
		&o.SellerUpdate, &o.SellerDelete, &o.SellerUpload, &o.SellerOrders,
	}
}

// Init defaults the session to a file in the user home so that it outlives the process.
func (o *Options) Init() {
	if o.SessionURL == "" && o.Store == nil {
		if home, err := os.UserHomeDir(); err == nil {
			o.SessionURL = filepath.Join(home, ".storefront", "session.json")
		}
	}
	o.ClientOptions.Init()
}
