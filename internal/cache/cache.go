// Package cache provides the short-lived response cache used by the API
// gateway client for idempotent GETs. Entries never outlive the process:
// seller data is owned transiently by whichever view fetched it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache defines the interface for caching raw response bodies
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a request method and URL
func Key(method, url string) string {
	hash := sha256.Sum256([]byte(method + " " + url))
	return "sellerpulse:v1:" + hex.EncodeToString(hash[:])
}

// Memory implements in-memory caching with TTL eviction
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a new memory cache
func NewMemory(defaultTTL time.Duration, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *Memory) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value in the cache with the given TTL
func (c *Memory) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *Memory) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (c *Memory) Clear() error {
	c.cache.Flush()
	return nil
}
