package cli

import "github.com/viant/storefront/schema"

type HomeCommand struct {
	base
}

func (c *HomeCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	content, err := cli.Home(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(content)
}

type AboutCommand struct {
	base
}

func (c *AboutCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	content, err := cli.About(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(content)
}

type CategoryCommand struct {
	base
}

func (c *CategoryCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	categories, err := cli.Categories(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(categories)
}

type ProductsCommand struct {
	base
	Search   string `short:"q" long:"search" description:"full text search"`
	Category string `long:"category" description:"category slug"`
	Ordering string `short:"o" long:"ordering" description:"ordering, e.g. price, -price, -created_at"`
}

func (c *ProductsCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	products, err := cli.Products(c.app.ctx, &schema.ProductFilter{
		Search:       c.Search,
		CategorySlug: c.Category,
		Ordering:     c.Ordering,
	})
	if err != nil {
		return err
	}
	return c.app.print(products)
}

type slugArgs struct {
	Slug string `positional-arg-name:"slug"`
}

type ProductCommand struct {
	base
	Args slugArgs `positional-args:"yes" required:"yes"`
}

func (c *ProductCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	product, err := cli.Product(c.app.ctx, c.Args.Slug)
	if err != nil {
		return err
	}
	return c.app.print(product)
}

type ReviewsCommand struct {
	base
	Args slugArgs `positional-args:"yes" required:"yes"`
}

func (c *ReviewsCommand) Execute(_ []string) error {
	cli, err := c.app.storefront()
	if err != nil {
		return err
	}
	reviews, err := cli.Reviews(c.app.ctx, c.Args.Slug)
	if err != nil {
		return err
	}
	return c.app.print(reviews)
}

type ReviewCommand struct {
	base
	Rating  int      `short:"r" long:"rating" description:"rating from 1 to 5" required:"true"`
	Comment string   `short:"m" long:"comment" description:"review text"`
	Args    slugArgs `positional-args:"yes" required:"yes"`
}

func (c *ReviewCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	review, err := cli.AddReview(c.app.ctx, c.Args.Slug, c.Rating, c.Comment)
	if err != nil {
		return err
	}
	return c.app.print(review)
}
