package client

import (
	"context"
	"net/http"

	"github.com/viant/storefront/schema"
)

func (c *Client) Cart(ctx context.Context) (*schema.Cart, error) {
	cart := &schema.Cart{}
	if err := c.get(ctx, "cart/", cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddToCart adds qty units of a product and returns the updated cart.
func (c *Client) AddToCart(ctx context.Context, productID, qty int) (*schema.Cart, error) {
	cart := &schema.Cart{}
	request := &schema.AddToCartRequest{ProductID: productID, Qty: qty}
	if err := c.send(ctx, http.MethodPost, "cart/add/", request, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateCartItem sets the quantity of a cart line; qty 0 removes the line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID, qty int) (*schema.Cart, error) {
	cart := &schema.Cart{}
	request := &schema.UpdateCartItemRequest{ItemID: itemID, Qty: qty}
	if err := c.send(ctx, http.MethodPatch, "cart/update_item/", request, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID int) (*schema.Cart, error) {
	return c.UpdateCartItem(ctx, itemID, 0)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.send(ctx, http.MethodDelete, "cart/clear/", nil, nil)
}

func (c *Client) Orders(ctx context.Context) ([]schema.Order, error) {
	return getList[schema.Order](ctx, c, "orders/")
}

// CreateOrder places an order for the current cart content.
func (c *Client) CreateOrder(ctx context.Context) (*schema.Order, error) {
	order := &schema.Order{}
	if err := c.send(ctx, http.MethodPost, "orders/create/", nil, order); err != nil {
		return nil, err
	}
	return order, nil
}
