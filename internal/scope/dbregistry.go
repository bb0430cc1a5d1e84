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
	"fmt"

	"github.com/sentra-id/sentra/internal/system/database/provider"
	"github.com/sentra-id/sentra/internal/system/log"
)

const registryLoggerComponentName = "DBScopeRegistry"

// DBRegistry is a RegistryInterface implementation backed by the approvals database.
type DBRegistry struct {
	DBProvider provider.DBProviderInterface
}

// NewDBRegistry creates a new database-backed scope registry.
func NewDBRegistry(dbProvider provider.DBProviderInterface) *DBRegistry {
	return &DBRegistry{
		DBProvider: dbProvider,
	}
}

// FindScope resolves a scope name to its definition. Returns nil when the scope is not registered.
func (r *DBRegistry) FindScope(name string) (*Scope, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, registryLoggerComponentName))

	dbClient, err := r.DBProvider.GetDBClient("approvals")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, err
	}

	results, err := dbClient.Query(queryGetScopeByName, name)
	if err != nil {
		return nil, fmt.Errorf("error while retrieving scope: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	row := results[0]

	scopeName, ok := row["name"].(string)
	if !ok || scopeName == "" {
		return nil, fmt.Errorf("invalid scope row for name: %s", name)
	}
	scopeType, _ := row["type"].(string)
	resourceID, _ := row["resource_id"].(string)

	return &Scope{
		Name:       scopeName,
		Type:       ScopeType(scopeType),
		ResourceID: resourceID,
	}, nil
}
