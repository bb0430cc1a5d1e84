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

package client

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/sentra-id/sentra/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(suite.T(), err)

	suite.mockDB = mockDB
	suite.mock = mock
	suite.dbClient = NewDBClient(model.NewDB(mockDB), "mock")
}

func (suite *DBClientTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	_ = suite.mockDB.Close()
}

func (suite *DBClientTestSuite) TestQuery() {
	query := model.DBQuery{
		ID:    "TSQ-00001",
		Query: "SELECT NAME, TYPE FROM SCOPE WHERE NAME = $1",
	}
	rows := sqlmock.NewRows([]string{"NAME", "TYPE"}).
		AddRow("read:documents", "GENERIC")
	suite.mock.ExpectQuery("SELECT NAME, TYPE FROM SCOPE WHERE NAME = \\$1").
		WithArgs(driver.Value("read:documents")).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(query, "read:documents")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	// Column names are normalized to lowercase.
	assert.Equal(suite.T(), "read:documents", results[0]["name"])
	assert.Equal(suite.T(), "GENERIC", results[0]["type"])
}

func (suite *DBClientTestSuite) TestQueryNoRows() {
	query := model.DBQuery{
		ID:    "TSQ-00002",
		Query: "SELECT NAME FROM SCOPE WHERE NAME = $1",
	}
	suite.mock.ExpectQuery("SELECT NAME FROM SCOPE WHERE NAME = \\$1").
		WithArgs(driver.Value("unknown")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME"}))

	results, err := suite.dbClient.Query(query, "unknown")
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryError() {
	query := model.DBQuery{
		ID:    "TSQ-00003",
		Query: "SELECT NAME FROM SCOPE",
	}
	suite.mock.ExpectQuery("SELECT NAME FROM SCOPE").
		WillReturnError(errors.New("connection reset"))

	_, err := suite.dbClient.Query(query)
	assert.Error(suite.T(), err)
}

func (suite *DBClientTestSuite) TestExecute() {
	query := model.DBQuery{
		ID:    "TSQ-00004",
		Query: "DELETE FROM SCOPE_APPROVAL WHERE SUBJECT_ID = $1",
	}
	suite.mock.ExpectExec("DELETE FROM SCOPE_APPROVAL WHERE SUBJECT_ID = \\$1").
		WithArgs(driver.Value("user-1")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	rowsAffected, err := suite.dbClient.Execute(query, "user-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteError() {
	query := model.DBQuery{
		ID:    "TSQ-00005",
		Query: "DELETE FROM SCOPE_APPROVAL",
	}
	suite.mock.ExpectExec("DELETE FROM SCOPE_APPROVAL").
		WillReturnError(errors.New("constraint violation"))

	_, err := suite.dbClient.Execute(query)
	assert.Error(suite.T(), err)
}

func (suite *DBClientTestSuite) TestQueryUsesDriverVariant() {
	query := model.DBQuery{
		ID:          "TSQ-00006",
		Query:       "SELECT NAME FROM SCOPE WHERE NAME = $1",
		SQLiteQuery: "SELECT NAME FROM SCOPE WHERE NAME = ?",
	}
	sqliteClient := NewDBClient(model.NewDB(suite.mockDB), "sqlite")

	suite.mock.ExpectQuery(`SELECT NAME FROM SCOPE WHERE NAME = \?`).
		WithArgs(driver.Value("openid")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME"}).AddRow("openid"))

	results, err := sqliteClient.Query(query, "openid")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
}

func (suite *DBClientTestSuite) TestBeginTx() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectCommit()

	tx, err := suite.dbClient.BeginTx()
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), tx.Commit())
}

func (suite *DBClientTestSuite) TestClose() {
	suite.mock.ExpectClose()
	assert.NoError(suite.T(), suite.dbClient.Close())
}
