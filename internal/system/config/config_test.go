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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TearDownTest() {
	ResetSentraRuntime()
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	content := `
database:
  approvals:
    type: sqlite
    path: /var/lib/sentra/approvals.db
    options: "_journal_mode=WAL"
cache:
  size: 500
  ttl: 300
  properties:
    - name: scopeRegistry
      ttl: 60
approval:
  default_validity_period: 3600
script:
  max_expression_length: 5000
  cost_limit: 100000
`
	path := filepath.Join(suite.T().TempDir(), "deployment.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(suite.T(), err)

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sqlite", cfg.Database.Approvals.Type)
	assert.Equal(suite.T(), "/var/lib/sentra/approvals.db", cfg.Database.Approvals.Path)
	assert.Equal(suite.T(), 500, cfg.Cache.Size)
	assert.Equal(suite.T(), 300, cfg.Cache.TTL)
	assert.Len(suite.T(), cfg.Cache.Properties, 1)
	assert.Equal(suite.T(), "scopeRegistry", cfg.Cache.Properties[0].Name)
	assert.Equal(suite.T(), 60, cfg.Cache.Properties[0].TTL)
	assert.Equal(suite.T(), int64(3600), cfg.Approval.DefaultValidityPeriod)
	assert.Equal(suite.T(), 5000, cfg.Script.MaxExpressionLength)
	assert.Equal(suite.T(), uint64(100000), cfg.Script.CostLimit)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	_, err := LoadConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	assert.Error(suite.T(), err)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	path := filepath.Join(suite.T().TempDir(), "deployment.yaml")
	err := os.WriteFile(path, []byte("database: [not: valid"), 0600)
	assert.NoError(suite.T(), err)

	_, err = LoadConfig(path)
	assert.Error(suite.T(), err)
}

func (suite *ConfigTestSuite) TestRuntimeInitializeAndGet() {
	ResetSentraRuntime()
	err := InitializeSentraRuntime("/opt/sentra", &Config{
		Approval: ApprovalConfig{DefaultValidityPeriod: 600},
	})
	assert.NoError(suite.T(), err)

	runtime := GetSentraRuntime()
	assert.Equal(suite.T(), "/opt/sentra", runtime.SentraHome)
	assert.Equal(suite.T(), int64(600), runtime.Config.Approval.DefaultValidityPeriod)
}

func (suite *ConfigTestSuite) TestRuntimeInitializeOnlyOnce() {
	ResetSentraRuntime()
	err := InitializeSentraRuntime("/opt/sentra", &Config{})
	assert.NoError(suite.T(), err)
	err = InitializeSentraRuntime("/other/home", &Config{})
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "/opt/sentra", GetSentraRuntime().SentraHome)
}

func (suite *ConfigTestSuite) TestGetRuntimeBeforeInitializePanics() {
	ResetSentraRuntime()
	assert.Panics(suite.T(), func() {
		GetSentraRuntime()
	})
}
