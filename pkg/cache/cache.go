package cache

import (
	"context"
	"time"
)

// ErrMiss is returned by GetJSON when the key is absent.
type cacheMiss struct{}

func (cacheMiss) Error() string { return "cache: key not found" }

var ErrMiss error = cacheMiss{}

// Cache is a read-through JSON cache. Implementations must treat all
// failures other than a missing key as errors so callers can fall back
// to the source of truth.
type Cache interface {
	// GetJSON unmarshals the cached value for key into dest.
	// Returns ErrMiss when the key does not exist.
	GetJSON(ctx context.Context, key string, dest interface{}) error

	// SetJSON marshals value and stores it under key with the given TTL.
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
