package cli

type CartCommand struct {
	base
}

func (c *CartCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	cart, err := cli.Cart(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(cart)
}

type CartAddCommand struct {
	base
	Qty  int `short:"n" long:"qty" description:"quantity" default:"1"`
	Args struct {
		ProductID int `positional-arg-name:"product-id"`
	} `positional-args:"yes" required:"yes"`
}

func (c *CartAddCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	cart, err := cli.AddToCart(c.app.ctx, c.Args.ProductID, c.Qty)
	if err != nil {
		return err
	}
	return c.app.print(cart)
}

type CartUpdateCommand struct {
	base
	Args struct {
		ItemID int `positional-arg-name:"item-id"`
		Qty    int `positional-arg-name:"qty"`
	} `positional-args:"yes" required:"yes"`
}

func (c *CartUpdateCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	cart, err := cli.UpdateCartItem(c.app.ctx, c.Args.ItemID, c.Args.Qty)
	if err != nil {
		return err
	}
	return c.app.print(cart)
}

type CartClearCommand struct {
	base
}

func (c *CartClearCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	return cli.ClearCart(c.app.ctx)
}

type OrdersCommand struct {
	base
}

func (c *OrdersCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	orders, err := cli.Orders(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(orders)
}

type OrderCommand struct {
	base
}

func (c *OrderCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	order, err := cli.CreateOrder(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(order)
}
