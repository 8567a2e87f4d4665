package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"assignment-engine/internal/database/models"
	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentAuditService exposes read access to the assignment audit trail.
// Audit rows are written only inside the assignment transaction; this
// service never mutates them.
type AssignmentAuditService struct {
	repo *repository.AssignmentAuditRepository
}

// NewAssignmentAuditService creates a new assignment audit service
func NewAssignmentAuditService(repo *repository.AssignmentAuditRepository) *AssignmentAuditService {
	return &AssignmentAuditService{repo: repo}
}

// AssignmentAuditResponse represents one audit row
type AssignmentAuditResponse struct {
	ID             uuid.UUID             `json:"id"`
	TenantID       uuid.UUID             `json:"tenant_id"`
	RecordType     string                `json:"record_type"`
	RecordID       string                `json:"record_id"`
	AssignedUserID *uuid.UUID            `json:"assigned_user_id,omitempty"`
	AssignedTeamID *uuid.UUID            `json:"assigned_team_id,omitempty"`
	RuleID         *uuid.UUID            `json:"rule_id,omitempty"`
	AssignmentType models.AssignmentType `json:"assignment_type"`
	Details        json.RawMessage       `json:"details,omitempty"`
	CreatedAt      string                `json:"created_at"`
}

// AssignmentAuditListResponse represents a paginated list of audit rows
type AssignmentAuditListResponse struct {
	Audits   []AssignmentAuditResponse `json:"audits"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// GetByID retrieves one audit row
func (s *AssignmentAuditService) GetByID(id uuid.UUID) (*AssignmentAuditResponse, error) {
	audit, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("assignment audit")
		}
		return nil, fmt.Errorf("failed to get assignment audit: %w", err)
	}
	return toAuditResponse(audit), nil
}

// GetByTenant lists a tenant's audit rows, newest first
func (s *AssignmentAuditService) GetByTenant(tenantID uuid.UUID, page, pageSize int) (*AssignmentAuditListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	offset := (page - 1) * pageSize
	audits, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment audits: %w", err)
	}

	return toAuditListResponse(audits, total, page, pageSize), nil
}

// GetByRecord lists the audit history of a single record, newest first
func (s *AssignmentAuditService) GetByRecord(tenantID uuid.UUID, recordType, recordID string, page, pageSize int) (*AssignmentAuditListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	offset := (page - 1) * pageSize
	audits, total, err := s.repo.GetByRecord(tenantID, recordType, recordID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment audits: %w", err)
	}

	return toAuditListResponse(audits, total, page, pageSize), nil
}

func toAuditResponse(audit *models.AssignmentAudit) *AssignmentAuditResponse {
	return &AssignmentAuditResponse{
		ID:             audit.ID,
		TenantID:       audit.TenantID,
		RecordType:     audit.RecordType,
		RecordID:       audit.RecordID,
		AssignedUserID: audit.AssignedUserID,
		AssignedTeamID: audit.AssignedTeamID,
		RuleID:         audit.RuleID,
		AssignmentType: audit.AssignmentType,
		Details:        audit.Details,
		CreatedAt:      audit.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toAuditListResponse(audits []models.AssignmentAudit, total int64, page, pageSize int) *AssignmentAuditListResponse {
	responses := make([]AssignmentAuditResponse, 0, len(audits))
	for i := range audits {
		responses = append(responses, *toAuditResponse(&audits[i]))
	}
	return &AssignmentAuditListResponse{
		Audits:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
