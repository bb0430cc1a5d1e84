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

// SubjectTypeApprover approves its scope only when the requesting actor kind
// matches the configured expected kind.
type SubjectTypeApprover struct {
	scope      string
	resourceID string
	expected   model.ActorKind
	expiresIn  int64
}

// NewSubjectTypeApprover creates a new instance of SubjectTypeApprover.
func NewSubjectTypeApprover(scope, resourceID string, expected model.ActorKind,
	expiresIn int64) ScopeApproverInterface {
	return &SubjectTypeApprover{
		scope:      scope,
		resourceID: resourceID,
		expected:   expected,
		expiresIn:  expiresIn,
	}
}

// Scope returns the scope this approver is configured for.
func (a *SubjectTypeApprover) Scope() string {
	return a.scope
}

// Approve approves when the actor kind matches the expected kind, denies otherwise.
func (a *SubjectTypeApprover) Approve(subject *model.Subject, client *appmodel.ClientProfile,
	requestedScopes []string) (model.Decision, error) {
	if !containsScope(a.scope, requestedScopes) {
		return model.NoOpinion(), nil
	}

	actorKind := model.ActorKindClient
	if subject != nil {
		actorKind = model.ActorKindUser
	}

	approval := newApproval(a.scope, a.resourceID, subject, client, a.expiresIn)
	if actorKind != a.expected {
		return model.Denied(approval), nil
	}
	return model.Approved(approval), nil
}
