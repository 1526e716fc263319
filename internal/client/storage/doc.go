// Package storage opens the local SQLite database of the client and applies
// the embedded goose migrations to it.
package storage
