// Package storage persists the profile and food log as JSON blobs behind a
// small key-value contract. Backends live in the sqlite and postgres
// subpackages; an in-memory backend is provided here.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when nothing has been stored under the key.
var ErrNotFound = errors.New("key not found")

// KV is a string-keyed blob store. Set always overwrites the whole value.
type KV interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// Keys under which the records are stored.
const (
	ProfileKey = "profile"
	FoodLogKey = "foodLog"
)
