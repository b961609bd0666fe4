// Package storefront assembles a storefront API client from declarative options.
//
// ClientOptions can be loaded from YAML, set by command line flags or the
// STOREFRONT_URL environment variable. NewClient wires the session store, the
// token refreshing transport and the logger:
//
//	options, err := storefront.LoadOptions(ctx, "storefront.yaml")
//	if err != nil {
//		return err
//	}
//	cli, err := storefront.NewClient(options)
//	if err != nil {
//		return err
//	}
//	products, err := cli.Products(ctx, nil)
package storefront
