package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/client/mock"
	"github.com/viant/storefront/schema"
)

func TestClient_Products(t *testing.T) {
	var testCases = []struct {
		description string
		filter      *schema.ProductFilter
		paginated   bool
		expected    []string
	}{
		{description: "newest first", expected: []string{"wireless-headphones", "smart-watch", "go-programming"}},
		{description: "page envelope", paginated: true, expected: []string{"wireless-headphones", "smart-watch", "go-programming"}},
		{description: "search", filter: &schema.ProductFilter{Search: "WATCH"}, expected: []string{"smart-watch"}},
		{description: "category", filter: &schema.ProductFilter{CategorySlug: "electronics"}, expected: []string{"wireless-headphones", "smart-watch"}},
		{description: "cheapest first", filter: &schema.ProductFilter{Ordering: "price"}, expected: []string{"go-programming", "wireless-headphones", "smart-watch"}},
		{description: "no match", filter: &schema.ProductFilter{Search: "nothing"}, expected: nil},
	}
	for _, testCase := range testCases {
		c, _ := newTestClient(t, mock.WithPaginatedProducts(testCase.paginated))
		products, err := c.Products(context.Background(), testCase.filter)
		require.NoError(t, err, testCase.description)
		var slugs []string
		for _, product := range products {
			slugs = append(slugs, product.Slug)
		}
		assert.Equal(t, testCase.expected, slugs, testCase.description)
	}
}

func TestClient_Product(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	product, err := c.Product(ctx, "smart-watch")
	require.NoError(t, err)
	assert.Equal(t, "Smart Watch", product.Title)
	assert.Equal(t, 4999.0, product.Price.Float())
	assert.Equal(t, "electronics", product.Category)

	_, err = c.Product(ctx, "unknown")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClient_Reviews(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	reviews, err := c.Reviews(ctx, "go-programming")
	require.NoError(t, err)
	assert.Empty(t, reviews)

	_, err = c.AddReview(ctx, "go-programming", 5, "great")
	assert.True(t, errors.Is(err, ErrUnauthorized))

	login(t, c)
	_, err = c.AddReview(ctx, "go-programming", 9, "too much")
	apiErr := &Error{}
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Fields(), "rating")

	review, err := c.AddReview(ctx, "go-programming", 5, "great")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", review.User)

	reviews, err = c.Reviews(ctx, "go-programming")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "great", reviews[0].Comment)
}

func TestClient_Content(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	categories, err := c.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "electronics", categories[0].Slug)

	home, err := c.Home(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the storefront", home["title"])
	assert.Len(t, home["featured"], 3)

	about, err := c.About(ctx)
	require.NoError(t, err)
	assert.Equal(t, "About us", about["title"])
}
