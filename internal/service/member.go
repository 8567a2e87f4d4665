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

// MemberService handles business logic for members
type MemberService struct {
	repo       *repository.MemberRepository
	tenantRepo *repository.TenantRepository
	teamRepo   *repository.TeamRepository
	validator  *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo *repository.MemberRepository, tenantRepo *repository.TenantRepository, teamRepo *repository.TeamRepository, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:       repo,
		tenantRepo: tenantRepo,
		teamRepo:   teamRepo,
		validator:  validator,
	}
}

// CreateMemberRequest represents the request to create a member
type CreateMemberRequest struct {
	TenantID uuid.UUID         `json:"tenant_id" validate:"required"`
	TeamID   *uuid.UUID        `json:"team_id,omitempty"`
	FullName string            `json:"full_name" validate:"required,max=200"`
	Email    string            `json:"email" validate:"required,email,max=200"`
	Role     models.MemberRole `json:"role,omitempty"`
	IsActive *bool             `json:"is_active,omitempty"`
}

// UpdateMemberRequest represents the request to update a member
type UpdateMemberRequest struct {
	TeamID   *uuid.UUID         `json:"team_id,omitempty"`
	FullName *string            `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Role     *models.MemberRole `json:"role,omitempty"`
	IsActive *bool              `json:"is_active,omitempty"`
}

// MemberResponse represents the response for member operations
type MemberResponse struct {
	ID       uuid.UUID         `json:"id"`
	TenantID uuid.UUID         `json:"tenant_id"`
	TeamID   *uuid.UUID        `json:"team_id,omitempty"`
	FullName string            `json:"full_name"`
	Email    string            `json:"email"`
	Role     models.MemberRole `json:"role"`
	IsActive bool              `json:"is_active"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new member
func (s *MemberService) Create(req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.tenantRepo.GetByID(req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}

	exists, err := s.repo.CheckEmailExists(req.TenantID, req.Email, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check member email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrMemberExists
	}

	role := req.Role
	if role == "" {
		role = models.MemberRoleAgent
	}
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	member := &models.Member{
		TenantID: req.TenantID,
		TeamID:   req.TeamID,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     role,
		IsActive: isActive,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return toMemberResponse(member), nil
}

// GetByID retrieves a member by ID
func (s *MemberService) GetByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return toMemberResponse(member), nil
}

// GetByTenant retrieves a tenant's members with pagination
func (s *MemberService) GetByTenant(tenantID uuid.UUID, page, pageSize int) (*MemberListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	offset := (page - 1) * pageSize
	members, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toMemberResponse(&members[i]))
	}

	return &MemberListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a member
func (s *MemberService) Update(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
		member.TeamID = req.TeamID
	}
	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		member.Role = *req.Role
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return toMemberResponse(member), nil
}

// Delete deletes a member
func (s *MemberService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}
	return s.repo.Delete(id)
}

func toMemberResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:       member.ID,
		TenantID: member.TenantID,
		TeamID:   member.TeamID,
		FullName: member.FullName,
		Email:    member.Email,
		Role:     member.Role,
		IsActive: member.IsActive,
	}
}
