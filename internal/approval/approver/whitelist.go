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

package approver

import (
	appmodel "github.com/sentra-id/sentra/internal/application/model"
	"github.com/sentra-id/sentra/internal/approval/model"
)

// WhitelistApprover approves its scope unconditionally with a fixed duration.
// Used when no policy is configured for a scope.
type WhitelistApprover struct {
	scope      string
	resourceID string
	expiresIn  int64
}

// NewWhitelistApprover creates a new instance of WhitelistApprover.
func NewWhitelistApprover(scope, resourceID string, expiresIn int64) ScopeApproverInterface {
	return &WhitelistApprover{
		scope:      scope,
		resourceID: resourceID,
		expiresIn:  expiresIn,
	}
}

// Scope returns the scope this approver is configured for.
func (a *WhitelistApprover) Scope() string {
	return a.scope
}

// Approve always approves when the configured scope is requested.
func (a *WhitelistApprover) Approve(subject *model.Subject, client *appmodel.ClientProfile,
	requestedScopes []string) (model.Decision, error) {
	if !containsScope(a.scope, requestedScopes) {
		return model.NoOpinion(), nil
	}
	return model.Approved(newApproval(a.scope, a.resourceID, subject, client, a.expiresIn)), nil
}
