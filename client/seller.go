package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/viant/storefront/schema"
)

// RegisterSeller submits a seller application; it starts in the pending status.
func (c *Client) RegisterSeller(ctx context.Context, registration *schema.SellerRegistration) (*schema.SellerStatus, error) {
	status := &schema.SellerStatus{}
	if err := c.send(ctx, http.MethodPost, "seller/register/", registration, status); err != nil {
		return nil, err
	}
	return status, nil
}

// SellerStatus returns the seller application of the current user ({exists: false} when none).
func (c *Client) SellerStatus(ctx context.Context) (*schema.SellerStatus, error) {
	status := &schema.SellerStatus{}
	if err := c.get(ctx, "seller/register/", status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Client) SellerProducts(ctx context.Context) ([]schema.Product, error) {
	return getList[schema.Product](ctx, c, "seller/products/")
}

func (c *Client) CreateSellerProduct(ctx context.Context, input *schema.ProductInput) (*schema.Product, error) {
	product := &schema.Product{}
	if err := c.send(ctx, http.MethodPost, "seller/products/", input, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (c *Client) UpdateSellerProduct(ctx context.Context, id int, input *schema.ProductInput) (*schema.Product, error) {
	product := &schema.Product{}
	if err := c.send(ctx, http.MethodPatch, sellerProductPath(id), input, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (c *Client) DeleteSellerProduct(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, sellerProductPath(id), nil, nil)
}

// UploadProductImages attaches images to a seller product as a multipart form with
// a `product` field and one `images` part per file.
func (c *Client) UploadProductImages(ctx context.Context, productID int, images ...schema.ImageFile) ([]schema.ProductImage, error) {
	if len(images) == 0 {
		return nil, nil
	}
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("product", strconv.Itoa(productID)); err != nil {
		return nil, err
	}
	for _, image := range images {
		part, err := writer.CreateFormFile("images", image.Name)
		if err != nil {
			return nil, err
		}
		if _, err = part.Write(image.Data); err != nil {
			return nil, fmt.Errorf("failed to encode image %v: %w", image.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	headers := http.Header{}
	headers.Set("Content-Type", writer.FormDataContentType())
	resp, err := c.Request(ctx, http.MethodPost, "seller/upload-image/", body.Bytes(), headers)
	if err != nil {
		return nil, err
	}
	var uploaded []schema.ProductImage
	if err = resp.Decode(&uploaded); err != nil {
		return nil, err
	}
	return uploaded, nil
}

// SellerOrders lists order lines containing the seller's products.
func (c *Client) SellerOrders(ctx context.Context) ([]schema.OrderItem, error) {
	return getList[schema.OrderItem](ctx, c, "seller/orders/")
}

func sellerProductPath(id int) string {
	return "seller/products/" + strconv.Itoa(id) + "/"
}
