package cli

import "github.com/viant/storefront/schema"

type VouchersCommand struct {
	base
}

func (c *VouchersCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	vouchers, err := cli.Vouchers(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(vouchers)
}

type VoucherPurchaseCommand struct {
	base
	Args struct {
		Value float64 `positional-arg-name:"value"`
	} `positional-args:"yes" required:"yes"`
}

func (c *VoucherPurchaseCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	voucher, err := cli.PurchaseVoucher(c.app.ctx, schema.NewDecimal(c.Args.Value))
	if err != nil {
		return err
	}
	return c.app.print(voucher)
}

type NotificationsCommand struct {
	base
	Unread bool `short:"u" long:"unread" description:"only unread notifications"`
}

func (c *NotificationsCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	notifications, err := cli.Notifications(c.app.ctx)
	if err != nil {
		return err
	}
	if c.Unread {
		unread := notifications[:0]
		for _, notification := range notifications {
			if !notification.IsRead {
				unread = append(unread, notification)
			}
		}
		notifications = unread
	}
	return c.app.print(notifications)
}

type NotificationReadCommand struct {
	base
	Args struct {
		ID int `positional-arg-name:"id"`
	} `positional-args:"yes" required:"yes"`
}

func (c *NotificationReadCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	return cli.MarkNotificationRead(c.app.ctx, c.Args.ID)
}
