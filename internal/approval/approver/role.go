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
	"errors"

	appmodel "github.com/sentra-id/sentra/internal/application/model"
	"github.com/sentra-id/sentra/internal/approval/model"
	"github.com/sentra-id/sentra/internal/approval/rolematch"
)

// ErrNoRolesConfigured is returned when a role approver is constructed without roles.
var ErrNoRolesConfigured = errors.New("no roles configured for role approver")

// RoleApprover approves its scope based on the subject's role authorities.
// With requireAll set, every configured role pattern must be satisfied; otherwise
// a single satisfied pattern is enough.
type RoleApprover struct {
	scope      string
	resourceID string
	roles      []string
	requireAll bool
	expiresIn  int64
}

// NewRoleApprover creates a new instance of RoleApprover.
func NewRoleApprover(scope, resourceID string, roles []string, requireAll bool,
	expiresIn int64) (ScopeApproverInterface, error) {
	if len(roles) == 0 {
		return nil, ErrNoRolesConfigured
	}
	configured := make([]string, len(roles))
	copy(configured, roles)

	return &RoleApprover{
		scope:      scope,
		resourceID: resourceID,
		roles:      configured,
		requireAll: requireAll,
		expiresIn:  expiresIn,
	}, nil
}

// Scope returns the scope this approver is configured for.
func (a *RoleApprover) Scope() string {
	return a.scope
}

// Approve approves when the subject's authorities satisfy the configured role predicate.
// A client acting on its own behalf carries no authorities and is denied.
func (a *RoleApprover) Approve(subject *model.Subject, client *appmodel.ClientProfile,
	requestedScopes []string) (model.Decision, error) {
	if !containsScope(a.scope, requestedScopes) {
		return model.NoOpinion(), nil
	}

	var authorities []string
	if subject != nil {
		authorities = subject.Authorities
	}

	satisfied := false
	if a.requireAll {
		satisfied = rolematch.MatchesAll(a.roles, authorities)
	} else {
		satisfied = rolematch.MatchesAny(a.roles, authorities)
	}

	approval := newApproval(a.scope, a.resourceID, subject, client, a.expiresIn)
	if !satisfied {
		return model.Denied(approval), nil
	}
	return model.Approved(approval), nil
}
