package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/viant/storefront/schema"
)

func (c *Client) Vouchers(ctx context.Context) ([]schema.Voucher, error) {
	return getList[schema.Voucher](ctx, c, "vouchers/")
}

func (c *Client) PurchaseVoucher(ctx context.Context, value schema.Decimal) (*schema.Voucher, error) {
	voucher := &schema.Voucher{}
	if err := c.send(ctx, http.MethodPost, "vouchers/purchase/", &schema.VoucherPurchaseRequest{Value: value}, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

func (c *Client) Notifications(ctx context.Context) ([]schema.Notification, error) {
	return getList[schema.Notification](ctx, c, "notifications/")
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodPost, "notifications/"+strconv.Itoa(id)+"/read/", nil, nil)
}
