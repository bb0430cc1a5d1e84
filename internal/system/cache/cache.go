/*
 * Copyright (c) 2025, Sentra Project (https://github.com/sentra-id).
 *
 * Sentra Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides an in-memory TTL cache used for read-through lookups.
package cache

import (
	"sync"
	"time"

	"github.com/sentra-id/sentra/internal/system/config"
	"github.com/sentra-id/sentra/internal/system/log"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 15 * time.Minute
)

// CacheKey represents a key for the cache.
type CacheKey struct {
	Key string
}

// ToString returns the string representation of the CacheKey.
func (key CacheKey) ToString() string {
	return key.Key
}

// cacheEntry represents a cache entry with its expiry time.
type cacheEntry[T any] struct {
	value      T
	expiryTime time.Time
}

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T)
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey)
	Clear()
	IsEnabled() bool
	CleanupExpired()
}

// Cache implements the CacheInterface for an in-memory TTL cache.
type Cache[T any] struct {
	name    string
	enabled bool
	size    int
	ttl     time.Duration
	entries map[CacheKey]*cacheEntry[T]
	mu      sync.RWMutex
}

// NewCache creates a new cache instance configured from the runtime cache configuration.
func NewCache[T any](cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	cacheConfig := config.GetSentraRuntime().Config.Cache
	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning disabled cache")
		return &Cache[T]{name: cacheName, enabled: false}
	}

	size := cacheConfig.Size
	ttl := time.Duration(cacheConfig.TTL) * time.Second
	for _, property := range cacheConfig.Properties {
		if property.Name != cacheName {
			continue
		}
		if property.Disabled {
			logger.Debug("Individual cache is disabled, returning disabled cache")
			return &Cache[T]{name: cacheName, enabled: false}
		}
		if property.Size > 0 {
			size = property.Size
		}
		if property.TTL > 0 {
			ttl = time.Duration(property.TTL) * time.Second
		}
	}
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Cache[T]{
		name:    cacheName,
		enabled: true,
		size:    size,
		ttl:     ttl,
		entries: make(map[CacheKey]*cacheEntry[T]),
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.name
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set adds a value to the cache, evicting the entry closest to expiry when full.
func (c *Cache[T]) Set(key CacheKey, value T) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.size {
		c.evictOldest()
	}
	c.entries[key] = &cacheEntry[T]{
		value:      value,
		expiryTime: time.Now().Add(c.ttl),
	}
}

// Get retrieves a value from the cache. Expired entries are reported as absent.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return zero, false
	}
	if time.Now().After(entry.expiryTime) {
		c.Delete(key)
		return zero, false
	}
	return entry.value, true
}

// Delete removes a value from the cache.
func (c *Cache[T]) Delete(key CacheKey) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all values from the cache.
func (c *Cache[T]) Clear() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[CacheKey]*cacheEntry[T])
}

// CleanupExpired removes all expired entries from the cache.
func (c *Cache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if now.After(entry.expiryTime) {
			delete(c.entries, key)
		}
	}
}

// evictOldest removes the entry closest to expiry. Caller must hold the lock.
func (c *Cache[T]) evictOldest() {
	var oldestKey CacheKey
	var oldestExpiry time.Time
	first := true
	for key, entry := range c.entries {
		if first || entry.expiryTime.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiryTime
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
