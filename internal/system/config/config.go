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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/sentra-id/sentra/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// DataSource holds the individual database connection details.
type DataSource struct {
	Type     string `yaml:"type"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"`
	Options  string `yaml:"options"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Approvals DataSource `yaml:"approvals"`
}

// CacheProperty holds the configuration details for an individual cache.
type CacheProperty struct {
	Name     string `yaml:"name"`
	Disabled bool   `yaml:"disabled"`
	Size     int    `yaml:"size"`
	TTL      int    `yaml:"ttl"`
}

// CacheConfig holds the cache configuration details.
type CacheConfig struct {
	Disabled   bool            `yaml:"disabled"`
	Size       int             `yaml:"size"`
	TTL        int             `yaml:"ttl"`
	Properties []CacheProperty `yaml:"properties"`
}

// ApprovalConfig holds the scope approval configuration details.
type ApprovalConfig struct {
	DefaultValidityPeriod int64 `yaml:"default_validity_period"`
}

// ScriptConfig holds the configuration details for policy script execution.
type ScriptConfig struct {
	MaxExpressionLength int    `yaml:"max_expression_length"`
	CostLimit           uint64 `yaml:"cost_limit"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Approval ApprovalConfig `yaml:"approval"`
	Script   ScriptConfig   `yaml:"script"`
}

// LoadConfig loads the configurations from the specified file path.
func LoadConfig(path string) (*Config, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Config"))

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		logger.Error("Failed to read config file", log.Error(err))
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("Failed to parse config file", log.Error(err))
		return nil, err
	}

	return &cfg, nil
}
