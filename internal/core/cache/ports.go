package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// Cache defines the key-value operations interface following hexagonal architecture.
// This is a port that can be implemented by different providers (Redis, Memcached, etc.).
type Cache interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound (wrapped) if the key is missing.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// SetMany stores all values in a single transaction without expiration.
	SetMany(ctx context.Context, values map[string][]byte) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the service is reachable.
	Ping(ctx context.Context) error

	// Close closes the connection.
	Close() error
}

// Publisher broadcasts payloads on a named channel.
type Publisher interface {
	// Publish sends payload to every subscriber of channel and returns how many received it.
	Publish(ctx context.Context, channel string, payload []byte) (int64, error)
}
