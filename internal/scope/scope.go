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

// Package scope defines the scope model and the scope registry implementations.
package scope

// ScopeType classifies which kind of actor a scope can be granted to.
type ScopeType string

// Scope types.
const (
	ScopeTypeUser    ScopeType = "USER"
	ScopeTypeClient  ScopeType = "CLIENT"
	ScopeTypeGeneric ScopeType = "GENERIC"
)

// AllowsClientActor checks whether the scope type can be requested by a client acting on its own.
func (t ScopeType) AllowsClientActor() bool {
	return t == ScopeTypeClient || t == ScopeTypeGeneric
}

// AllowsUserActor checks whether the scope type can be requested on behalf of a user.
func (t ScopeType) AllowsUserActor() bool {
	return t == ScopeTypeUser || t == ScopeTypeGeneric
}

// Scope represents a registered scope definition. Immutable, registry-owned.
type Scope struct {
	Name       string    `json:"name"`
	Type       ScopeType `json:"type"`
	ResourceID string    `json:"resource_id"`
}

// RegistryInterface defines the interface for resolving scope definitions.
type RegistryInterface interface {
	// FindScope resolves a scope name to its definition. Returns nil when the scope
	// is not registered.
	FindScope(name string) (*Scope, error)
}
