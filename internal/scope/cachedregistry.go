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

package scope

import (
	"github.com/sentra-id/sentra/internal/system/cache"
)

const scopeCacheName = "scopeRegistry"

// CachedRegistry is a read-through caching decorator over another registry.
// Negative lookups are not cached; an unregistered scope is re-resolved on each request.
type CachedRegistry struct {
	delegate RegistryInterface
	cache    cache.CacheInterface[Scope]
}

// NewCachedRegistry creates a caching decorator over the provided registry.
func NewCachedRegistry(delegate RegistryInterface) *CachedRegistry {
	return &CachedRegistry{
		delegate: delegate,
		cache:    cache.NewCache[Scope](scopeCacheName),
	}
}

// FindScope resolves a scope name to its definition, serving repeated lookups from the cache.
func (r *CachedRegistry) FindScope(name string) (*Scope, error) {
	key := cache.CacheKey{Key: name}
	if cached, ok := r.cache.Get(key); ok {
		return &cached, nil
	}

	resolved, err := r.delegate.FindScope(name)
	if err != nil || resolved == nil {
		return resolved, err
	}

	r.cache.Set(key, *resolved)
	return resolved, nil
}
