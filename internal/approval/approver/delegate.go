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

// DelegateApprover is the OR-combination of its children: the first approving
// child wins. Children are evaluated in configured order.
type DelegateApprover struct {
	scope    string
	children []ScopeApproverInterface
}

// NewDelegateApprover creates a new instance of DelegateApprover.
func NewDelegateApprover(scope string, children ...ScopeApproverInterface) ScopeApproverInterface {
	return &DelegateApprover{
		scope:    scope,
		children: children,
	}
}

// Scope returns the scope this approver is configured for.
func (a *DelegateApprover) Scope() string {
	return a.scope
}

// Approve returns the first approving child decision; when no child approves but at
// least one had an opinion, the last denial is returned; when all children have no
// opinion, the result has no opinion.
func (a *DelegateApprover) Approve(subject *model.Subject, client *appmodel.ClientProfile,
	requestedScopes []string) (model.Decision, error) {
	if !containsScope(a.scope, requestedScopes) {
		return model.NoOpinion(), nil
	}

	lastDenial := model.NoOpinion()
	for _, child := range a.children {
		decision, err := child.Approve(subject, client, requestedScopes)
		if err != nil {
			return model.NoOpinion(), err
		}
		switch decision.Opinion {
		case model.OpinionApproved:
			return decision, nil
		case model.OpinionDenied:
			lastDenial = decision
		}
	}
	return lastDenial, nil
}
