// Package cli implements the storefront command line front end.
//
// Global options configure the client (see storefront.ClientOptions); every
// command maps to one storefront API operation and prints its result as JSON:
//
//	storefront login 9800000001 secret123
//	storefront products --search watch
//	storefront cart-add 12 --qty 2
package cli
