package schema

import "time"

type (
	ProductImage struct {
		ID    int    `json:"id"`
		Image string `json:"image"`
	}

	Product struct {
		ID          int            `json:"id"`
		Title       string         `json:"title"`
		Slug        string         `json:"slug"`
		Description string         `json:"description,omitempty"`
		Brand       string         `json:"brand,omitempty"`
		Category    string         `json:"category,omitempty"`
		Price       Decimal        `json:"price"`
		MRP         Decimal        `json:"mrp,omitempty"`
		Stock       int            `json:"stock"`
		Thumbnail   string         `json:"thumbnail,omitempty"`
		Images      []ProductImage `json:"images,omitempty"`
		IsActive    bool           `json:"is_active"`
		CreatedAt   time.Time      `json:"created_at,omitzero"`
	}

	// ProductInput is the seller payload for creating or updating a product.
	ProductInput struct {
		Title       string  `json:"title,omitempty"`
		Description string  `json:"description,omitempty"`
		Price       Decimal `json:"price,omitempty"`
		MRP         Decimal `json:"mrp,omitempty"`
		Stock       *int    `json:"stock,omitempty"`
		Brand       string  `json:"brand,omitempty"`
		Category    string  `json:"category,omitempty"`
		IsActive    *bool   `json:"is_active,omitempty"`
	}

	// ProductFilter narrows the product listing.
	ProductFilter struct {
		Search       string
		CategorySlug string
		Ordering     string
	}

	Category struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	Review struct {
		ID        int       `json:"id"`
		User      string    `json:"user"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
	}

	ReviewRequest struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
)

// DefaultOrdering lists newest products first.
const DefaultOrdering = "-created_at"
