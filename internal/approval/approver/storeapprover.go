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
	"time"

	appmodel "github.com/sentra-id/sentra/internal/application/model"
	"github.com/sentra-id/sentra/internal/approval/model"
	"github.com/sentra-id/sentra/internal/approval/store"
)

// StoreApprover approves its scope based on a persisted prior consent of the subject.
// The store is read-only from the approver's perspective.
type StoreApprover struct {
	scope      string
	resourceID string
	store      store.ApprovalStoreInterface
	now        func() time.Time
}

// NewStoreApprover creates a new instance of StoreApprover.
func NewStoreApprover(scope, resourceID string,
	approvalStore store.ApprovalStoreInterface) ScopeApproverInterface {
	return &StoreApprover{
		scope:      scope,
		resourceID: resourceID,
		store:      approvalStore,
		now:        time.Now,
	}
}

// Scope returns the scope this approver is configured for.
func (a *StoreApprover) Scope() string {
	return a.scope
}

// Approve approves when a still-valid persisted approval exists for the subject,
// client and scope. An absent or expired record yields no opinion so that other
// approvers in the composition can decide.
func (a *StoreApprover) Approve(subject *model.Subject, client *appmodel.ClientProfile,
	requestedScopes []string) (model.Decision, error) {
	if !containsScope(a.scope, requestedScopes) {
		return model.NoOpinion(), nil
	}

	stored, err := a.store.Find(subjectID(subject, client), client.ClientID, a.scope)
	if err != nil {
		return model.NoOpinion(), err
	}
	if stored == nil {
		return model.NoOpinion(), nil
	}

	remaining := int64(stored.ExpiryTime.Sub(a.now()).Seconds())
	if remaining <= 0 {
		return model.NoOpinion(), nil
	}

	approval := newApproval(a.scope, a.resourceID, subject, client, remaining)
	if stored.Status != model.ApprovalStatusApproved {
		return model.Denied(approval), nil
	}
	return model.Approved(approval), nil
}
