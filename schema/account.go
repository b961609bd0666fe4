package schema

import "time"

type (
	Voucher struct {
		ID        int       `json:"id"`
		Code      string    `json:"code"`
		Value     Decimal   `json:"value"`
		IsUsed    bool      `json:"is_used"`
		CreatedAt time.Time `json:"created_at,omitzero"`
	}

	VoucherPurchaseRequest struct {
		Value Decimal `json:"value"`
	}

	Notification struct {
		ID        int       `json:"id"`
		Title     string    `json:"title"`
		Message   string    `json:"message"`
		IsRead    bool      `json:"is_read"`
		CreatedAt time.Time `json:"created_at,omitzero"`
	}
)
