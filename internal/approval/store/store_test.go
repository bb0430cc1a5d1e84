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

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/sentra-id/sentra/internal/approval/model"
	"github.com/sentra-id/sentra/internal/system/database/client"
	dbmodel "github.com/sentra-id/sentra/internal/system/database/model"
)

type stubDBClient struct {
	results  []map[string]interface{}
	queryErr error
	execErr  error

	lastQueryID   string
	lastQueryArgs []interface{}
	lastExecID    string
	lastExecArgs  []interface{}
}

func (c *stubDBClient) Query(query dbmodel.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	c.lastQueryID = query.GetID()
	c.lastQueryArgs = args
	return c.results, c.queryErr
}

func (c *stubDBClient) Execute(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
	c.lastExecID = query.GetID()
	c.lastExecArgs = args
	if c.execErr != nil {
		return 0, c.execErr
	}
	return 1, nil
}

func (c *stubDBClient) BeginTx() (dbmodel.TxInterface, error) {
	return nil, nil
}

func (c *stubDBClient) Close() error {
	return nil
}

type stubDBProvider struct {
	client *stubDBClient
	err    error
}

func (p *stubDBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.client, nil
}

type ApprovalStoreTestSuite struct {
	suite.Suite
	dbClient *stubDBClient
	store    ApprovalStoreInterface
}

func TestApprovalStoreSuite(t *testing.T) {
	suite.Run(t, new(ApprovalStoreTestSuite))
}

func (suite *ApprovalStoreTestSuite) SetupTest() {
	suite.dbClient = &stubDBClient{}
	suite.store = NewApprovalStore(&stubDBProvider{client: suite.dbClient})
}

func (suite *ApprovalStoreTestSuite) TestFind() {
	expiry := time.Now().Add(time.Hour).Unix()
	suite.dbClient.results = []map[string]interface{}{
		{
			"approval_id": "approval-1",
			"subject_id":  "user-1",
			"client_id":   "client-1",
			"scope":       "read:documents",
			"resource_id": "documents",
			"status":      "APPROVED",
			"expiry_time": expiry,
		},
	}

	stored, err := suite.store.Find("user-1", "client-1", "read:documents")
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), stored)
	assert.Equal(suite.T(), "approval-1", stored.ID)
	assert.Equal(suite.T(), "user-1", stored.SubjectID)
	assert.Equal(suite.T(), "client-1", stored.ClientID)
	assert.Equal(suite.T(), "read:documents", stored.Scope)
	assert.Equal(suite.T(), model.ApprovalStatusApproved, stored.Status)
	assert.Equal(suite.T(), expiry, stored.ExpiryTime.Unix())
	assert.Equal(suite.T(), "APQ-00001", suite.dbClient.lastQueryID)
	assert.Equal(suite.T(), []interface{}{"user-1", "client-1", "read:documents"},
		suite.dbClient.lastQueryArgs)
}

func (suite *ApprovalStoreTestSuite) TestFindAbsent() {
	stored, err := suite.store.Find("user-1", "client-1", "read:documents")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), stored)
}

func (suite *ApprovalStoreTestSuite) TestFindExpired() {
	suite.dbClient.results = []map[string]interface{}{
		{
			"approval_id": "approval-1",
			"status":      "APPROVED",
			"expiry_time": time.Now().Add(-time.Hour).Unix(),
		},
	}

	stored, err := suite.store.Find("user-1", "client-1", "read:documents")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), stored)
}

func (suite *ApprovalStoreTestSuite) TestFindFloatExpiryTime() {
	expiry := time.Now().Add(time.Hour).Unix()
	suite.dbClient.results = []map[string]interface{}{
		{
			"approval_id": "approval-1",
			"status":      "APPROVED",
			"expiry_time": float64(expiry),
		},
	}

	stored, err := suite.store.Find("user-1", "client-1", "read:documents")
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), stored)
	assert.Equal(suite.T(), expiry, stored.ExpiryTime.Unix())
}

func (suite *ApprovalStoreTestSuite) TestFindInvalidRow() {
	suite.dbClient.results = []map[string]interface{}{
		{"approval_id": "approval-1", "expiry_time": "not-a-timestamp"},
	}

	_, err := suite.store.Find("user-1", "client-1", "read:documents")
	assert.Error(suite.T(), err)
}

func (suite *ApprovalStoreTestSuite) TestFindQueryError() {
	suite.dbClient.queryErr = errors.New("connection reset")

	_, err := suite.store.Find("user-1", "client-1", "read:documents")
	assert.Error(suite.T(), err)
}

func (suite *ApprovalStoreTestSuite) TestFindProviderError() {
	store := NewApprovalStore(&stubDBProvider{err: errors.New("database unavailable")})

	_, err := store.Find("user-1", "client-1", "read:documents")
	assert.Error(suite.T(), err)
}

func (suite *ApprovalStoreTestSuite) TestInsert() {
	expiry := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	err := suite.store.Insert(model.StoredApproval{
		ID:         "approval-1",
		SubjectID:  "user-1",
		ClientID:   "client-1",
		Scope:      "read:documents",
		ResourceID: "documents",
		Status:     model.ApprovalStatusApproved,
		ExpiryTime: expiry,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "APQ-00002", suite.dbClient.lastExecID)
	assert.Equal(suite.T(), []interface{}{
		"approval-1", "user-1", "client-1", "read:documents", "documents",
		"APPROVED", expiry.Unix(),
	}, suite.dbClient.lastExecArgs)
}

func (suite *ApprovalStoreTestSuite) TestInsertGeneratesID() {
	err := suite.store.Insert(model.StoredApproval{
		SubjectID:  "user-1",
		ClientID:   "client-1",
		Scope:      "read:documents",
		Status:     model.ApprovalStatusApproved,
		ExpiryTime: time.Now().Add(time.Hour),
	})
	assert.NoError(suite.T(), err)
	generatedID, ok := suite.dbClient.lastExecArgs[0].(string)
	assert.True(suite.T(), ok)
	assert.NotEmpty(suite.T(), generatedID)
}

func (suite *ApprovalStoreTestSuite) TestInsertExecuteError() {
	suite.dbClient.execErr = errors.New("constraint violation")

	err := suite.store.Insert(model.StoredApproval{
		ID:         "approval-1",
		ExpiryTime: time.Now().Add(time.Hour),
	})
	assert.Error(suite.T(), err)
}

func (suite *ApprovalStoreTestSuite) TestDelete() {
	err := suite.store.Delete("user-1", "client-1", "read:documents")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "APQ-00003", suite.dbClient.lastExecID)
	assert.Equal(suite.T(), []interface{}{"user-1", "client-1", "read:documents"},
		suite.dbClient.lastExecArgs)
}

func (suite *ApprovalStoreTestSuite) TestDeleteExecuteError() {
	suite.dbClient.execErr = errors.New("connection reset")

	err := suite.store.Delete("user-1", "client-1", "read:documents")
	assert.Error(suite.T(), err)
}
