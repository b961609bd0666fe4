package schema

import "time"

type (
	CartItem struct {
		ID            int     `json:"id"`
		Product       int     `json:"product"`
		ProductTitle  string  `json:"product_title"`
		Image         string  `json:"image,omitempty"`
		PriceSnapshot Decimal `json:"price_snapshot"`
		Qty           int     `json:"qty"`
		Subtotal      Decimal `json:"subtotal"`
	}

	Cart struct {
		ID    int        `json:"id"`
		Items []CartItem `json:"items"`
		Total Decimal    `json:"total"`
	}

	AddToCartRequest struct {
		ProductID int `json:"product_id"`
		Qty       int `json:"qty"`
	}

	// UpdateCartItemRequest sets the quantity of a cart line; 0 removes it.
	UpdateCartItemRequest struct {
		ItemID int `json:"item_id"`
		Qty    int `json:"qty"`
	}

	OrderItem struct {
		ID            int     `json:"id"`
		Product       int     `json:"product,omitempty"`
		TitleSnapshot string  `json:"title_snapshot"`
		PriceSnapshot Decimal `json:"price_snapshot"`
		Qty           int     `json:"qty"`
		Subtotal      Decimal `json:"subtotal"`
		Order         int     `json:"order,omitempty"`
		OrderStatus   string  `json:"order_status,omitempty"`
	}

	Order struct {
		ID        int         `json:"id"`
		Status    string      `json:"status"`
		Total     Decimal     `json:"total"`
		Items     []OrderItem `json:"items"`
		CreatedAt time.Time   `json:"created_at"`
	}
)
