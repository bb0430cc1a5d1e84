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

import dbmodel "github.com/sentra-id/sentra/internal/system/database/model"

// queryGetApproval is the query to retrieve an approval by subject, client and scope.
var queryGetApproval = dbmodel.DBQuery{
	ID: "APQ-00001",
	Query: "SELECT APPROVAL_ID, SUBJECT_ID, CLIENT_ID, SCOPE, RESOURCE_ID, STATUS, " +
		"EXPIRY_TIME FROM SCOPE_APPROVAL WHERE SUBJECT_ID = $1 AND CLIENT_ID = $2 AND SCOPE = $3",
}

// queryInsertApproval is the query to insert a new approval record.
var queryInsertApproval = dbmodel.DBQuery{
	ID: "APQ-00002",
	Query: "INSERT INTO SCOPE_APPROVAL (APPROVAL_ID, SUBJECT_ID, CLIENT_ID, SCOPE, " +
		"RESOURCE_ID, STATUS, EXPIRY_TIME) VALUES ($1, $2, $3, $4, $5, $6, $7)",
}

// queryDeleteApproval is the query to delete an approval record.
var queryDeleteApproval = dbmodel.DBQuery{
	ID:    "APQ-00003",
	Query: "DELETE FROM SCOPE_APPROVAL WHERE SUBJECT_ID = $1 AND CLIENT_ID = $2 AND SCOPE = $3",
}
