package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/viant/storefront/schema"
)

// Products lists products matching filter (nil lists everything, newest first).
func (c *Client) Products(ctx context.Context, filter *schema.ProductFilter) ([]schema.Product, error) {
	query := url.Values{}
	ordering := schema.DefaultOrdering
	if filter != nil {
		if filter.Search != "" {
			query.Set("search", filter.Search)
		}
		if filter.CategorySlug != "" {
			query.Set("category__slug", filter.CategorySlug)
		}
		if filter.Ordering != "" {
			ordering = filter.Ordering
		}
	}
	query.Set("ordering", ordering)
	return getList[schema.Product](ctx, c, "products/?"+query.Encode())
}

func (c *Client) Product(ctx context.Context, slug string) (*schema.Product, error) {
	product := &schema.Product{}
	if err := c.get(ctx, "products/"+url.PathEscape(slug)+"/", product); err != nil {
		return nil, err
	}
	return product, nil
}

func (c *Client) Reviews(ctx context.Context, slug string) ([]schema.Review, error) {
	return getList[schema.Review](ctx, c, "products/"+url.PathEscape(slug)+"/reviews/")
}

func (c *Client) AddReview(ctx context.Context, slug string, rating int, comment string) (*schema.Review, error) {
	review := &schema.Review{}
	request := &schema.ReviewRequest{Rating: rating, Comment: comment}
	if err := c.send(ctx, http.MethodPost, "products/"+url.PathEscape(slug)+"/reviews/", request, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (c *Client) Categories(ctx context.Context) ([]schema.Category, error) {
	return getList[schema.Category](ctx, c, "categories/")
}

// Home returns the landing page content.
func (c *Client) Home(ctx context.Context) (schema.Content, error) {
	content := schema.Content{}
	if err := c.get(ctx, "home/", &content); err != nil {
		return nil, err
	}
	return content, nil
}

// About returns the about page content.
func (c *Client) About(ctx context.Context) (schema.Content, error) {
	content := schema.Content{}
	if err := c.get(ctx, "about/", &content); err != nil {
		return nil, err
	}
	return content, nil
}
