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

// Package approver provides the scope approver contract and its implementations.
//
// Approvers are immutable after construction and safe for concurrent use; a tree
// is assembled once per scope definition and shared across requests. An approver
// whose configured scope is not among the requested scopes returns a no-opinion
// decision so that composition can continue.
package approver

import (
	appmodel "github.com/sentra-id/sentra/internal/application/model"
	"github.com/sentra-id/sentra/internal/approval/model"
)

// ScopeApproverInterface defines the contract for scope approval policy units.
//
// Approve evaluates the requested scopes for the given client; subject is nil
// when the client acts on its own behalf (client_credentials). A decision with
// OpinionNone means the approver is not applicable to the request. A non-nil
// error signals an approver malfunction, never a policy denial.
type ScopeApproverInterface interface {
	Scope() string
	Approve(subject *model.Subject, client *appmodel.ClientProfile,
		requestedScopes []string) (model.Decision, error)
}

// containsScope checks whether the configured scope is among the requested scopes.
func containsScope(scope string, requestedScopes []string) bool {
	for _, requested := range requestedScopes {
		if requested == scope {
			return true
		}
	}
	return false
}

// subjectID resolves the subject identifier recorded in an approval artifact.
func subjectID(subject *model.Subject, client *appmodel.ClientProfile) string {
	if subject != nil {
		return subject.ID
	}
	return client.ClientID
}

// newApproval builds an approval artifact for the given evaluation. The status is
// set by the Decision constructors.
func newApproval(scope, resourceID string, subject *model.Subject,
	client *appmodel.ClientProfile, expiresIn int64) *model.Approval {
	return &model.Approval{
		ResourceID: resourceID,
		Scope:      scope,
		SubjectID:  subjectID(subject, client),
		ClientID:   client.ClientID,
		ExpiresIn:  expiresIn,
	}
}
