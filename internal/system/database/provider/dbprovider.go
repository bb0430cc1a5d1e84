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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/sentra-id/sentra/internal/system/config"
	"github.com/sentra-id/sentra/internal/system/database/client"
	"github.com/sentra-id/sentra/internal/system/database/model"
	"github.com/sentra-id/sentra/internal/system/log"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	approvalsClient client.DBClientInterface
	approvalsMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the singleton instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	switch dbName {
	case "approvals":
		approvalsDBConfig := config.GetSentraRuntime().Config.Database.Approvals
		return d.getOrInitClient(&d.approvalsClient, &d.approvalsMutex, approvalsDBConfig)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(
	clientPtr *client.DBClientInterface,
	mutex *sync.RWMutex,
	dataSource config.DataSource,
) (client.DBClientInterface, error) {
	mutex.RLock()
	if *clientPtr != nil {
		dbClient := *clientPtr
		mutex.RUnlock()
		return dbClient, nil
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr != nil {
		return *clientPtr, nil
	}

	if err := d.initializeClient(clientPtr, dataSource); err != nil {
		return nil, err
	}

	return *clientPtr, nil
}

// initializeClient initializes a database client and assigns it to the provided pointer.
func (d *DBProvider) initializeClient(clientPtr *client.DBClientInterface,
	dataSource config.DataSource) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbConfig, err := getDBConfig(dataSource)
	if err != nil {
		return err
	}

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	// Test the database connection.
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Failed to close database connection", log.Error(closeErr))
		}
		return fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err)
	}

	*clientPtr = client.NewDBClient(model.NewDB(db), dbConfig.driverName)
	return nil
}

// getDBConfig returns the driver name and DSN for the provided data source.
func getDBConfig(dataSource config.DataSource) (dbConfig, error) {
	switch dataSource.Type {
	case dataSourceTypePostgres:
		return dbConfig{
			driverName: dataSourceTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case dataSourceTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		return dbConfig{
			driverName: dataSourceTypeSQLite,
			dsn:        dataSource.Path + options,
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}
