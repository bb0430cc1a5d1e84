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

// Package store provides persistence for prior explicit scope consents.
// The approval engine only reads from the store; writes originate from the
// consent endpoint.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sentra-id/sentra/internal/approval/model"
	"github.com/sentra-id/sentra/internal/system/database/provider"
	"github.com/sentra-id/sentra/internal/system/log"
)

const loggerComponentName = "ApprovalStore"

// ApprovalStoreInterface defines the interface for managing persisted scope approvals.
type ApprovalStoreInterface interface {
	// Find retrieves the persisted approval for the given subject, client and scope.
	// Expired approvals are reported as absent. Returns nil when no approval exists.
	Find(subjectID, clientID, scope string) (*model.StoredApproval, error)
	// Insert persists a new approval record.
	Insert(approval model.StoredApproval) error
	// Delete removes the approval for the given subject, client and scope.
	Delete(subjectID, clientID, scope string) error
}

// ApprovalStore implements the ApprovalStoreInterface against the approvals database.
type ApprovalStore struct {
	DBProvider provider.DBProviderInterface
}

// NewApprovalStore creates a new instance of ApprovalStore.
func NewApprovalStore(dbProvider provider.DBProviderInterface) ApprovalStoreInterface {
	return &ApprovalStore{
		DBProvider: dbProvider,
	}
}

// Find retrieves the persisted approval for the given subject, client and scope.
func (s *ApprovalStore) Find(subjectID, clientID, scope string) (*model.StoredApproval, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient("approvals")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, err
	}

	results, err := dbClient.Query(queryGetApproval, subjectID, clientID, scope)
	if err != nil {
		return nil, fmt.Errorf("error while retrieving approval: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	row := results[0]

	approval, err := buildStoredApproval(row)
	if err != nil {
		return nil, err
	}
	if !approval.ExpiryTime.After(time.Now()) {
		return nil, nil
	}
	return approval, nil
}

// Insert persists a new approval record.
func (s *ApprovalStore) Insert(approval model.StoredApproval) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient("approvals")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return err
	}

	approvalID := approval.ID
	if approvalID == "" {
		approvalID = uuid.New().String()
	}

	_, err = dbClient.Execute(queryInsertApproval, approvalID, approval.SubjectID,
		approval.ClientID, approval.Scope, approval.ResourceID, string(approval.Status),
		approval.ExpiryTime.UTC().Unix())
	if err != nil {
		logger.Error("Failed to insert approval", log.Error(err))
		return fmt.Errorf("error while inserting approval: %w", err)
	}
	return nil
}

// Delete removes the approval for the given subject, client and scope.
func (s *ApprovalStore) Delete(subjectID, clientID, scope string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient("approvals")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return err
	}

	_, err = dbClient.Execute(queryDeleteApproval, subjectID, clientID, scope)
	if err != nil {
		logger.Error("Failed to delete approval", log.Error(err))
		return fmt.Errorf("error while deleting approval: %w", err)
	}
	return nil
}

// buildStoredApproval maps a result row onto a StoredApproval.
func buildStoredApproval(row map[string]interface{}) (*model.StoredApproval, error) {
	approvalID, ok := row["approval_id"].(string)
	if !ok || approvalID == "" {
		return nil, fmt.Errorf("invalid approval row: missing approval_id")
	}
	subjectID, _ := row["subject_id"].(string)
	clientID, _ := row["client_id"].(string)
	scopeName, _ := row["scope"].(string)
	resourceID, _ := row["resource_id"].(string)
	status, _ := row["status"].(string)

	var expiryTime time.Time
	switch v := row["expiry_time"].(type) {
	case int64:
		expiryTime = time.Unix(v, 0)
	case float64:
		expiryTime = time.Unix(int64(v), 0)
	default:
		return nil, fmt.Errorf("invalid approval row: unexpected expiry_time type %T", v)
	}

	return &model.StoredApproval{
		ID:         approvalID,
		SubjectID:  subjectID,
		ClientID:   clientID,
		Scope:      scopeName,
		ResourceID: resourceID,
		Status:     model.ApprovalStatus(status),
		ExpiryTime: expiryTime,
	}, nil
}
