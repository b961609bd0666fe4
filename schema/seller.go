package schema

const (
	SellerStatusPending  = "pending"
	SellerStatusApproved = "approved"
	SellerStatusRejected = "rejected"
)

type (
	SellerRegistration struct {
		ShopName          string `json:"shop_name"`
		PanNo             string `json:"pan_no"`
		BankAccountNumber string `json:"bank_account_number"`
		BankName          string `json:"bank_name"`
		IFSC              string `json:"ifsc"`
		Branch            string `json:"branch"`
		GSTNo             string `json:"gst_no,omitempty"`
	}

	// SellerStatus is either {exists: false} or the seller profile with exists true.
	SellerStatus struct {
		Exists bool   `json:"exists"`
		Status string `json:"status,omitempty"`
		SellerRegistration
	}

	// ImageFile is an image to upload for a seller product.
	ImageFile struct {
		Name string
		Data []byte
	}
)

// Approved reports whether the seller may manage products.
func (s *SellerStatus) Approved() bool {
	return s != nil && s.Exists && s.Status == SellerStatusApproved
}
