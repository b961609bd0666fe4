package schema

type (
	LoginRequest struct {
		PhoneNumber string `json:"phone_number"`
		Password    string `json:"password"`
	}

	SignupRequest struct {
		Name         string `json:"name"`
		PhoneNumber  string `json:"phone_number"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		Password2    string `json:"password2"`
		Gender       string `json:"gender,omitempty"`
		DateOfBirth  string `json:"date_of_birth,omitempty"`
		ReferralCode string `json:"referral_code,omitempty"`
	}

	// Credentials is the token pair returned by login and signup.
	Credentials struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}

	Profile struct {
		ID           int    `json:"id,omitempty"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		PhoneNumber  string `json:"phone_number"`
		Gender       string `json:"gender,omitempty"`
		DateOfBirth  string `json:"date_of_birth,omitempty"`
		ReferralCode string `json:"referral_code,omitempty"`
		IsSeller     bool   `json:"is_seller"`
		SellerStatus string `json:"seller_status,omitempty"`
	}
)
