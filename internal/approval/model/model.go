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

// Package model defines the data structures used by the scope approval engine.
package model

import "time"

// ApprovalStatus represents the outcome recorded in an approval.
type ApprovalStatus string

// Approval statuses.
const (
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusDenied   ApprovalStatus = "DENIED"
)

// Approval is the decision artifact recording that a subject/client may (or may not)
// be granted a scope for a bounded duration. Produced fresh per decision; persistence,
// if any, is the caller's job.
type Approval struct {
	ResourceID string         `json:"resource_id"`
	Scope      string         `json:"scope"`
	SubjectID  string         `json:"subject_id"`
	ClientID   string         `json:"client_id"`
	ExpiresIn  int64          `json:"expires_in"`
	Status     ApprovalStatus `json:"status"`
}

// Opinion classifies an approver's stance on a request.
type Opinion int

// Approver opinions. OpinionNone means the approver is not applicable to the
// request and composition should continue; it is not a denial.
const (
	OpinionNone Opinion = iota
	OpinionApproved
	OpinionDenied
)

// Decision is the three-valued result of an approver evaluation.
type Decision struct {
	Opinion  Opinion
	Approval *Approval
}

// NoOpinion creates a Decision with no opinion.
func NoOpinion() Decision {
	return Decision{Opinion: OpinionNone}
}

// Approved creates an approving Decision carrying the given approval artifact.
func Approved(approval *Approval) Decision {
	approval.Status = ApprovalStatusApproved
	return Decision{Opinion: OpinionApproved, Approval: approval}
}

// Denied creates a denying Decision carrying the given approval artifact.
func Denied(approval *Approval) Decision {
	approval.Status = ApprovalStatusDenied
	return Decision{Opinion: OpinionDenied, Approval: approval}
}

// ActorKind classifies the requesting actor of an approval evaluation.
type ActorKind string

// Actor kinds.
const (
	ActorKindUser   ActorKind = "user"
	ActorKindClient ActorKind = "client"
)

// Subject represents the authenticated principal a user-facing approval is evaluated for.
type Subject struct {
	ID          string         `json:"id"`
	Authorities []string       `json:"authorities,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

// StoredApproval represents a persisted prior consent read back from the approval store.
type StoredApproval struct {
	ID         string         `json:"id"`
	SubjectID  string         `json:"subject_id"`
	ClientID   string         `json:"client_id"`
	Scope      string         `json:"scope"`
	ResourceID string         `json:"resource_id"`
	Status     ApprovalStatus `json:"status"`
	ExpiryTime time.Time      `json:"expiry_time"`
}
