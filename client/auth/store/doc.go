// Package store defines the session credential storage used by the authenticating
// transport and the storefront client.
//
// A Store is a small key/value space holding the `access` and `refresh` credentials.
// It ships with an in-memory implementation that is sufficient for tests and
// short-lived processes, and a file store backed by github.com/viant/afs that lets a
// CLI session survive restarts.
package store
