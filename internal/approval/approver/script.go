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
	"fmt"
	"time"

	appmodel "github.com/sentra-id/sentra/internal/application/model"
	"github.com/sentra-id/sentra/internal/approval/model"
	"github.com/sentra-id/sentra/internal/script"
)

// ErrInvalidFunctionResult signals that a policy function malfunctioned. It is an
// approver fault, not a policy denial, and callers must surface it distinctly from
// a denied approval.
var ErrInvalidFunctionResult = errors.New("invalid result from function")

// Script result keys.
const (
	resultKeyApproved  = "approved"
	resultKeyExpiresAt = "expiresAt"
)

// ScriptApprover delegates the approval decision to an externally executed policy function.
type ScriptApprover struct {
	scope        string
	resourceID   string
	functionName string
	functionBody string
	executor     script.ExecutorInterface
	expiresIn    int64
	now          func() time.Time
}

// NewScriptApprover creates a new instance of ScriptApprover. The expiresIn value is
// used when the function result carries no expiry of its own.
func NewScriptApprover(scope, resourceID, functionName, functionBody string,
	executor script.ExecutorInterface, expiresIn int64) ScopeApproverInterface {
	return &ScriptApprover{
		scope:        scope,
		resourceID:   resourceID,
		functionName: functionName,
		functionBody: functionBody,
		executor:     executor,
		expiresIn:    expiresIn,
		now:          time.Now,
	}
}

// Scope returns the scope this approver is configured for.
func (a *ScriptApprover) Scope() string {
	return a.scope
}

// Approve evaluates the configured policy function against the request context.
// A result without an "approved" entry yields no opinion; execution or parse
// faults are returned as errors.
func (a *ScriptApprover) Approve(subject *model.Subject, client *appmodel.ClientProfile,
	requestedScopes []string) (model.Decision, error) {
	if !containsScope(a.scope, requestedScopes) {
		return model.NoOpinion(), nil
	}

	context := map[string]any{
		"scopes": requestedScopes,
		"client": map[string]any{
			"clientId": client.ClientID,
			"name":     client.Name,
		},
	}
	if subject != nil {
		user := map[string]any{
			"id":          subject.ID,
			"authorities": subject.Authorities,
		}
		if subject.Attributes != nil {
			user["attributes"] = subject.Attributes
		}
		context["user"] = user
	}

	result, err := a.executor.Execute(a.functionName, a.functionBody, context)
	if err != nil {
		return model.NoOpinion(), fmt.Errorf("%w: %s", ErrInvalidFunctionResult, err)
	}

	approvedValue, present := result[resultKeyApproved]
	if !present || approvedValue == nil {
		return model.NoOpinion(), nil
	}
	approved, ok := approvedValue.(bool)
	if !ok {
		return model.NoOpinion(), fmt.Errorf("%w: approved is %T, expected bool",
			ErrInvalidFunctionResult, approvedValue)
	}

	expiresIn := a.expiresIn
	if expiresAtValue, present := result[resultKeyExpiresAt]; present && expiresAtValue != nil {
		expiresAt, err := toUnixSeconds(expiresAtValue)
		if err != nil {
			return model.NoOpinion(), fmt.Errorf("%w: %s", ErrInvalidFunctionResult, err)
		}
		// The delta to now is taken as an absolute value, so a function returning a
		// past expiresAt still yields a positive validity.
		delta := expiresAt - a.now().Unix()
		if delta < 0 {
			delta = -delta
		}
		expiresIn = delta
	}

	approval := newApproval(a.scope, a.resourceID, subject, client, expiresIn)
	if !approved {
		return model.Denied(approval), nil
	}
	return model.Approved(approval), nil
}

// toUnixSeconds coerces a function result value into unix seconds.
func toUnixSeconds(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expiresAt is %T, expected a numeric timestamp", value)
	}
}
