// Package storage is the key-value namespace the whole application persists into.
//
// Every value is a string; collections are stored as one JSON document per key.
// Backends only need to support whole-value reads and writes plus a namespace wipe.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("storage: store closed")

type Store interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete of a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every key of the namespace.
	Clear(ctx context.Context) error
	// All returns a snapshot of the namespace.
	All(ctx context.Context) (map[string]string, error)
	Close() error
}
