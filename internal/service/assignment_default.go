package service

import (
	"errors"
	"fmt"

	"assignment-engine/internal/database/models"
	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentDefaultService handles business logic for tenant assignment defaults
type AssignmentDefaultService struct {
	repo       *repository.AssignmentDefaultRepository
	tenantRepo *repository.TenantRepository
	teamRepo   *repository.TeamRepository
	memberRepo *repository.MemberRepository
	validator  *validator.Validate
}

// NewAssignmentDefaultService creates a new assignment default service
func NewAssignmentDefaultService(
	repo *repository.AssignmentDefaultRepository,
	tenantRepo *repository.TenantRepository,
	teamRepo *repository.TeamRepository,
	memberRepo *repository.MemberRepository,
	validator *validator.Validate,
) *AssignmentDefaultService {
	return &AssignmentDefaultService{
		repo:       repo,
		tenantRepo: tenantRepo,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// UpdateAssignmentDefaultRequest represents the request to update tenant defaults
type UpdateAssignmentDefaultRequest struct {
	DefaultUserID             *uuid.UUID `json:"default_user_id,omitempty"`
	DefaultTeamID             *uuid.UUID `json:"default_team_id,omitempty"`
	RoundRobinEnabled         *bool      `json:"round_robin_enabled,omitempty"`
	EnableAutomaticAssignment *bool      `json:"enable_automatic_assignment,omitempty"`
}

// AssignmentDefaultResponse represents the response for assignment default operations
type AssignmentDefaultResponse struct {
	ID                        uuid.UUID  `json:"id"`
	TenantID                  uuid.UUID  `json:"tenant_id"`
	DefaultUserID             *uuid.UUID `json:"default_user_id,omitempty"`
	DefaultTeamID             *uuid.UUID `json:"default_team_id,omitempty"`
	RoundRobinEnabled         bool       `json:"round_robin_enabled"`
	EnableAutomaticAssignment bool       `json:"enable_automatic_assignment"`
}

// GetForTenant returns the tenant's defaults, creating the row lazily with
// automatic assignment on and round robin off.
func (s *AssignmentDefaultService) GetForTenant(tenantID uuid.UUID) (*AssignmentDefaultResponse, error) {
	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	def, err := s.repo.GetOrCreate(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment defaults: %w", err)
	}
	return toDefaultResponse(def), nil
}

// Update updates the tenant's defaults, creating the row first if needed
func (s *AssignmentDefaultService) Update(tenantID uuid.UUID, req *UpdateAssignmentDefaultRequest) (*AssignmentDefaultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	def, err := s.repo.GetOrCreate(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment defaults: %w", err)
	}

	if req.DefaultUserID != nil {
		if _, err := s.memberRepo.GetByID(*req.DefaultUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMemberNotFound
			}
			return nil, fmt.Errorf("failed to verify default user: %w", err)
		}
		def.DefaultUserID = req.DefaultUserID
	}
	if req.DefaultTeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.DefaultTeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify default team: %w", err)
		}
		def.DefaultTeamID = req.DefaultTeamID
	}
	if req.RoundRobinEnabled != nil {
		def.RoundRobinEnabled = *req.RoundRobinEnabled
	}
	if req.EnableAutomaticAssignment != nil {
		def.EnableAutomaticAssignment = *req.EnableAutomaticAssignment
	}

	if err := s.repo.Update(def); err != nil {
		return nil, fmt.Errorf("failed to update assignment defaults: %w", err)
	}

	return toDefaultResponse(def), nil
}

func toDefaultResponse(def *models.AssignmentDefault) *AssignmentDefaultResponse {
	return &AssignmentDefaultResponse{
		ID:                        def.ID,
		TenantID:                  def.TenantID,
		DefaultUserID:             def.DefaultUserID,
		DefaultTeamID:             def.DefaultTeamID,
		RoundRobinEnabled:         def.RoundRobinEnabled,
		EnableAutomaticAssignment: def.EnableAutomaticAssignment,
	}
}
