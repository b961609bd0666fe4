// Package client implements a Go client for the storefront REST API.
//
// Every call goes through the authenticating transport from the
// client/auth/transport package: the stored access credential is attached as a
// bearer token and a rejected credential is refreshed once, transparently, before
// the call is replayed. Callers only observe authorization failures that could not
// be recovered.
//
// Beside the generic Request method the client offers typed helpers for the catalog,
// cart, orders, seller, voucher and notification endpoints.
//
// Example:
//
//	cli, _ := client.New("http://127.0.0.1:8000/api/", client.WithStore(sessionStore))
//	if _, err := cli.Login(ctx, "9999999999", "secret"); err != nil { ... }
//	cart, _ := cli.AddToCart(ctx, productID, 1)
//	fmt.Println(cart.Total)
package client
