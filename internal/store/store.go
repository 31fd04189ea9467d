// Package store provides the small key-value persistence port backing
// the provider selection. The registry only needs Get/Set of string
// values; backends are interchangeable.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("store: key not found")

// KV is the persistence port injected into the provider registry.
type KV interface {
	// Get returns the stored value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for key. Last write wins.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the backend.
	Close() error
}
