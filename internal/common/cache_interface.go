package common

import "time"

// CacheInterface abstracts the lookup cache so single-node deployments can
// run on the in-memory store while multi-node deployments share Redis.
// Chapter slug lookups go through it; manager counts never do.
type CacheInterface interface {
	// Set stores value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the cached value and whether the key was present.
	Get(key string) (interface{}, bool)

	// Delete evicts key.
	Delete(key string)

	// GetOrSet returns the cached value, loading and storing it on a miss.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any backing connections.
	Close() error
}
