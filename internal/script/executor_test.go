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

package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/sentra-id/sentra/internal/system/config"
)

type CELExecutorTestSuite struct {
	suite.Suite
	executor *CELExecutor
}

func TestCELExecutorSuite(t *testing.T) {
	suite.Run(t, new(CELExecutorTestSuite))
}

func (suite *CELExecutorTestSuite) SetupSuite() {
	config.ResetSentraRuntime()
	err := config.InitializeSentraRuntime("/tmp/sentra", &config.Config{
		Script: config.ScriptConfig{MaxExpressionLength: 200},
	})
	assert.NoError(suite.T(), err)
}

func (suite *CELExecutorTestSuite) TearDownSuite() {
	config.ResetSentraRuntime()
}

func (suite *CELExecutorTestSuite) SetupTest() {
	suite.executor = NewCELExecutor()
}

func (suite *CELExecutorTestSuite) TestExecuteScopeCheck() {
	result, err := suite.executor.Execute("scopeCheck",
		`{"approved": "read:documents" in scopes}`,
		map[string]any{"scopes": []string{"read:documents", "profile"}})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, result["approved"])
}

func (suite *CELExecutorTestSuite) TestExecuteAuthorityCheck() {
	context := map[string]any{
		"user": map[string]any{
			"id":          "user-1",
			"authorities": []string{"myrealm:ROLE_ADMIN"},
		},
	}
	result, err := suite.executor.Execute("authorityCheck",
		`{"approved": "myrealm:ROLE_ADMIN" in user.authorities}`, context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, result["approved"])
}

func (suite *CELExecutorTestSuite) TestExecuteWithExpiry() {
	result, err := suite.executor.Execute("expiryCheck",
		`{"approved": true, "expiresAt": 1767225600}`, nil)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, result["approved"])
	assert.Equal(suite.T(), int64(1767225600), result["expiresAt"])
}

func (suite *CELExecutorTestSuite) TestExecuteWithAbsentContextKeys() {
	// Unset context keys evaluate as empty values rather than failing.
	result, err := suite.executor.Execute("emptyContext",
		`{"approved": size(scopes) > 0}`, nil)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), false, result["approved"])
}

func (suite *CELExecutorTestSuite) TestExecuteClientContext() {
	context := map[string]any{
		"client": map[string]any{"clientId": "client-1", "name": "Test Client"},
	}
	result, err := suite.executor.Execute("clientCheck",
		`{"approved": client.clientId == "client-1"}`, context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, result["approved"])
}

func (suite *CELExecutorTestSuite) TestFunctionBodyTooLong() {
	body := `{"approved": scopes == [` +
		`"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",` +
		`"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",` +
		`"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"]}`
	_, err := suite.executor.Execute("tooLong", body, nil)
	assert.ErrorIs(suite.T(), err, ErrFunctionTooLong)
}

func (suite *CELExecutorTestSuite) TestCompileFailure() {
	_, err := suite.executor.Execute("broken", `{"approved": unknownVariable}`, nil)
	assert.ErrorIs(suite.T(), err, ErrFunctionCompile)
}

func (suite *CELExecutorTestSuite) TestNonMapResult() {
	_, err := suite.executor.Execute("nonMap", `true`, nil)
	assert.ErrorIs(suite.T(), err, ErrInvalidResult)
}

func (suite *CELExecutorTestSuite) TestRepeatedExecutionUsesCache() {
	body := `{"approved": "profile" in scopes}`
	for i := 0; i < 3; i++ {
		result, err := suite.executor.Execute("cached", body,
			map[string]any{"scopes": []string{"profile"}})
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), true, result["approved"])
	}
}
