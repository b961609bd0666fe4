// Package schema defines the wire types exchanged with the storefront REST API.
//
// Monetary amounts are carried as Decimal strings, the way the API serializes them.
package schema
