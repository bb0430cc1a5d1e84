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

import dbmodel "github.com/sentra-id/sentra/internal/system/database/model"

// queryGetScopeByName is the query to retrieve a scope definition by name.
var queryGetScopeByName = dbmodel.DBQuery{
	ID:    "SCQ-00001",
	Query: "SELECT NAME, TYPE, RESOURCE_ID FROM SCOPE WHERE NAME = $1",
}
