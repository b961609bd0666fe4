package cli

import (
	"path"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/storefront/schema"
)

type SellerStatusCommand struct {
	base
}

func (c *SellerStatusCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	status, err := cli.SellerStatus(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(status)
}

type SellerRegisterCommand struct {
	base
	ShopName          string `long:"shop" description:"shop name" required:"true"`
	PanNo             string `long:"pan" description:"PAN number" required:"true"`
	BankAccountNumber string `long:"account" description:"bank account number" required:"true"`
	BankName          string `long:"bank" description:"bank name"`
	IFSC              string `long:"ifsc" description:"bank IFSC code"`
	Branch            string `long:"branch" description:"bank branch"`
	GSTNo             string `long:"gst" description:"GST number"`
}

func (c *SellerRegisterCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	status, err := cli.RegisterSeller(c.app.ctx, &schema.SellerRegistration{
		ShopName:          c.ShopName,
		PanNo:             c.PanNo,
		BankAccountNumber: c.BankAccountNumber,
		BankName:          c.BankName,
		IFSC:              c.IFSC,
		Branch:            c.Branch,
		GSTNo:             c.GSTNo,
	})
	if err != nil {
		return err
	}
	return c.app.print(status)
}

type SellerProductsCommand struct {
	base
}

func (c *SellerProductsCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	products, err := cli.SellerProducts(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(products)
}

// productFlags are shared by create and update; unset flags are not sent.
type productFlags struct {
	Title       string `short:"t" long:"title" description:"product title"`
	Description string `long:"description" description:"product description"`
	Price       string `short:"p" long:"price" description:"price, e.g. 199.00"`
	MRP         string `long:"mrp" description:"maximum retail price"`
	Stock       *int   `long:"stock" description:"units in stock"`
	Brand       string `long:"brand" description:"brand"`
	Category    string `long:"category" description:"category slug"`
	Active      string `long:"active" description:"list or unlist the product" choice:"true" choice:"false"`
}

func (f *productFlags) input() *schema.ProductInput {
	var active *bool
	if f.Active != "" {
		value := f.Active == "true"
		active = &value
	}
	return &schema.ProductInput{
		Title:       f.Title,
		Description: f.Description,
		Price:       schema.Decimal(f.Price),
		MRP:         schema.Decimal(f.MRP),
		Stock:       f.Stock,
		Brand:       f.Brand,
		Category:    f.Category,
		IsActive:    active,
	}
}

type SellerCreateCommand struct {
	base
	productFlags
}

func (c *SellerCreateCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	product, err := cli.CreateSellerProduct(c.app.ctx, c.input())
	if err != nil {
		return err
	}
	return c.app.print(product)
}

type productArgs struct {
	ID int `positional-arg-name:"product-id"`
}

type SellerUpdateCommand struct {
	base
	productFlags
	Args productArgs `positional-args:"yes" required:"yes"`
}

func (c *SellerUpdateCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	product, err := cli.UpdateSellerProduct(c.app.ctx, c.Args.ID, c.input())
	if err != nil {
		return err
	}
	return c.app.print(product)
}

type SellerDeleteCommand struct {
	base
	Args productArgs `positional-args:"yes" required:"yes"`
}

func (c *SellerDeleteCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	return cli.DeleteSellerProduct(c.app.ctx, c.Args.ID)
}

type SellerUploadCommand struct {
	base
	Args struct {
		ID     int      `positional-arg-name:"product-id"`
		Images []string `positional-arg-name:"image" description:"image location, a local path or afs URL"`
	} `positional-args:"yes" required:"yes"`
}

func (c *SellerUploadCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	fs := afs.New()
	var images []schema.ImageFile
	for _, location := range c.Args.Images {
		URL := url.Normalize(location, file.Scheme)
		data, err := fs.DownloadWithURL(c.app.ctx, URL)
		if err != nil {
			return err
		}
		images = append(images, schema.ImageFile{Name: path.Base(location), Data: data})
	}
	uploaded, err := cli.UploadProductImages(c.app.ctx, c.Args.ID, images...)
	if err != nil {
		return err
	}
	return c.app.print(uploaded)
}

type SellerOrdersCommand struct {
	base
}

func (c *SellerOrdersCommand) Execute(_ []string) error {
	cli, err := c.app.authenticated()
	if err != nil {
		return err
	}
	lines, err := cli.SellerOrders(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(lines)
}
