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

// CombinedApprover is the AND-combination of its children: every child must
// approve, and a child with no opinion counts as a failure to satisfy the
// conjunction. Children are evaluated in configured order and evaluation stops
// at the first non-approving child.
type CombinedApprover struct {
	scope      string
	resourceID string
	children   []ScopeApproverInterface
}

// NewCombinedApprover creates a new instance of CombinedApprover.
func NewCombinedApprover(scope, resourceID string,
	children ...ScopeApproverInterface) ScopeApproverInterface {
	return &CombinedApprover{
		scope:      scope,
		resourceID: resourceID,
		children:   children,
	}
}

// Scope returns the scope this approver is configured for.
func (a *CombinedApprover) Scope() string {
	return a.scope
}

// Approve approves only when every child approves; the resulting duration is the
// minimum across the children.
func (a *CombinedApprover) Approve(subject *model.Subject, client *appmodel.ClientProfile,
	requestedScopes []string) (model.Decision, error) {
	if !containsScope(a.scope, requestedScopes) {
		return model.NoOpinion(), nil
	}

	minExpiresIn := int64(-1)
	for _, child := range a.children {
		decision, err := child.Approve(subject, client, requestedScopes)
		if err != nil {
			return model.NoOpinion(), err
		}
		if decision.Opinion != model.OpinionApproved {
			return model.Denied(newApproval(a.scope, a.resourceID, subject, client, 0)), nil
		}
		if minExpiresIn < 0 || decision.Approval.ExpiresIn < minExpiresIn {
			minExpiresIn = decision.Approval.ExpiresIn
		}
	}

	if minExpiresIn < 0 {
		// No children configured; an empty conjunction cannot approve.
		return model.Denied(newApproval(a.scope, a.resourceID, subject, client, 0)), nil
	}
	return model.Approved(newApproval(a.scope, a.resourceID, subject, client, minExpiresIn)), nil
}
