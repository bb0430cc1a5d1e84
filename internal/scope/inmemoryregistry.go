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

// InMemoryRegistry is a RegistryInterface implementation backed by a fixed scope set.
// Used for config-seeded deployments and tests.
type InMemoryRegistry struct {
	scopes map[string]Scope
}

// NewInMemoryRegistry creates a new in-memory scope registry with the provided scopes.
func NewInMemoryRegistry(scopes []Scope) *InMemoryRegistry {
	scopeMap := make(map[string]Scope, len(scopes))
	for _, s := range scopes {
		scopeMap[s.Name] = s
	}
	return &InMemoryRegistry{scopes: scopeMap}
}

// FindScope resolves a scope name to its definition. Returns nil when the scope is not registered.
func (r *InMemoryRegistry) FindScope(name string) (*Scope, error) {
	s, ok := r.scopes[name]
	if !ok {
		return nil, nil
	}
	return &s, nil
}
