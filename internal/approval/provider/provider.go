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

// Package provider assembles approver trees from scope policies and exposes them
// through an immutable registry built once at startup.
package provider

import (
	"fmt"

	"github.com/sentra-id/sentra/internal/approval/approver"
	"github.com/sentra-id/sentra/internal/approval/model"
	"github.com/sentra-id/sentra/internal/approval/store"
	"github.com/sentra-id/sentra/internal/script"
	"github.com/sentra-id/sentra/internal/system/config"
)

// Approval modes controlling how multiple policy conditions compose.
const (
	// ApprovalModeAny approves when any configured condition approves (OR).
	ApprovalModeAny = "any"
	// ApprovalModeAll approves only when all configured conditions approve (AND).
	ApprovalModeAll = "all"
)

// ScopeFunction holds a user-supplied policy function attached to a scope.
type ScopeFunction struct {
	Name string `yaml:"name"`
	Body string `yaml:"body"`
}

// ScopePolicy describes the approval policy configured for a single scope.
// A zero policy (no conditions) yields a whitelist approver.
type ScopePolicy struct {
	Scope           string          `yaml:"scope"`
	ResourceID      string          `yaml:"resource_id"`
	SubjectType     model.ActorKind `yaml:"subject_type,omitempty"`
	Roles           []string        `yaml:"roles,omitempty"`
	RequireAllRoles bool            `yaml:"require_all_roles,omitempty"`
	RequireConsent  bool            `yaml:"require_consent,omitempty"`
	Function        *ScopeFunction  `yaml:"function,omitempty"`
	ApprovalMode    string          `yaml:"approval_mode,omitempty"`
	ValidityPeriod  int64           `yaml:"validity_period,omitempty"`
}

// ApproverRegistryInterface defines the interface for resolving the approver tree of a scope.
type ApproverRegistryInterface interface {
	GetApprover(scope string) (approver.ScopeApproverInterface, bool)
}

// ApproverRegistry implements the ApproverRegistryInterface with an immutable scope map.
type ApproverRegistry struct {
	approvers map[string]approver.ScopeApproverInterface
}

// NewApproverRegistry builds the approver trees for the provided scope policies.
// The registry is immutable after construction and safe to share across requests.
func NewApproverRegistry(policies []ScopePolicy, approvalStore store.ApprovalStoreInterface,
	executor script.ExecutorInterface) (*ApproverRegistry, error) {
	approvers := make(map[string]approver.ScopeApproverInterface, len(policies))
	for _, policy := range policies {
		built, err := BuildApprover(policy, approvalStore, executor)
		if err != nil {
			return nil, fmt.Errorf("failed to build approver for scope %s: %w", policy.Scope, err)
		}
		approvers[policy.Scope] = built
	}
	return &ApproverRegistry{approvers: approvers}, nil
}

// GetApprover returns the approver tree for the given scope.
func (r *ApproverRegistry) GetApprover(scope string) (approver.ScopeApproverInterface, bool) {
	built, ok := r.approvers[scope]
	return built, ok
}

// BuildApprover assembles the approver tree for a single scope policy.
func BuildApprover(policy ScopePolicy, approvalStore store.ApprovalStoreInterface,
	executor script.ExecutorInterface) (approver.ScopeApproverInterface, error) {
	if policy.Scope == "" {
		return nil, fmt.Errorf("scope policy is missing a scope name")
	}

	validityPeriod := policy.ValidityPeriod
	if validityPeriod <= 0 {
		validityPeriod = config.GetSentraRuntime().Config.Approval.DefaultValidityPeriod
	}

	var children []approver.ScopeApproverInterface

	if policy.SubjectType != "" {
		children = append(children, approver.NewSubjectTypeApprover(policy.Scope,
			policy.ResourceID, policy.SubjectType, validityPeriod))
	}
	if len(policy.Roles) > 0 {
		roleApprover, err := approver.NewRoleApprover(policy.Scope, policy.ResourceID,
			policy.Roles, policy.RequireAllRoles, validityPeriod)
		if err != nil {
			return nil, err
		}
		children = append(children, roleApprover)
	}
	if policy.Function != nil {
		if executor == nil {
			return nil, fmt.Errorf("scope policy has a function but no executor is configured")
		}
		children = append(children, approver.NewScriptApprover(policy.Scope, policy.ResourceID,
			policy.Function.Name, policy.Function.Body, executor, validityPeriod))
	}
	if policy.RequireConsent {
		if approvalStore == nil {
			return nil, fmt.Errorf("scope policy requires consent but no approval store is configured")
		}
		children = append(children, approver.NewStoreApprover(policy.Scope, policy.ResourceID,
			approvalStore))
	}

	switch len(children) {
	case 0:
		return approver.NewWhitelistApprover(policy.Scope, policy.ResourceID, validityPeriod), nil
	case 1:
		return children[0], nil
	}

	switch policy.ApprovalMode {
	case ApprovalModeAll:
		return approver.NewCombinedApprover(policy.Scope, policy.ResourceID, children...), nil
	case ApprovalModeAny, "":
		return approver.NewDelegateApprover(policy.Scope, children...), nil
	default:
		return nil, fmt.Errorf("unsupported approval mode: %s", policy.ApprovalMode)
	}
}
