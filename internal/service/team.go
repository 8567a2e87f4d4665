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

// TeamService handles business logic for teams
type TeamService struct {
	repo       *repository.TeamRepository
	tenantRepo *repository.TenantRepository
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo *repository.TeamRepository, tenantRepo *repository.TenantRepository, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		tenantRepo: tenantRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	TenantID    uuid.UUID `json:"tenant_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	DisplayName string    `json:"display_name" validate:"max=200"`
	Description string    `json:"description" validate:"max=500"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	DisplayName *string            `json:"display_name,omitempty" validate:"omitempty,max=200"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      *models.TeamStatus `json:"status,omitempty"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID         `json:"id"`
	TenantID    uuid.UUID         `json:"tenant_id"`
	Name        string            `json:"name"`
	DisplayName string            `json:"display_name"`
	Description string            `json:"description"`
	Status      models.TeamStatus `json:"status"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// TeamWithMembersResponse represents a team with its member list
type TeamWithMembersResponse struct {
	TeamResponse
	Members []MemberResponse `json:"members"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.tenantRepo.GetByID(req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	exists, err := s.repo.CheckTeamNameExists(req.TenantID, req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		TenantID:    req.TenantID,
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		Status:      models.TeamStatusActive,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// GetWithMembers retrieves a team together with its members
func (s *TeamService) GetWithMembers(id uuid.UUID) (*TeamWithMembersResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members := make([]MemberResponse, 0, len(team.Members))
	for i := range team.Members {
		members = append(members, *toMemberResponse(&team.Members[i]))
	}

	return &TeamWithMembersResponse{
		TeamResponse: *toTeamResponse(team),
		Members:      members,
	}, nil
}

// GetByTenant retrieves a tenant's teams with pagination
func (s *TeamService) GetByTenant(tenantID uuid.UUID, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.DisplayName != nil {
		team.DisplayName = *req.DisplayName
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		team.Status = *req.Status
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return toTeamResponse(team), nil
}

// Delete deletes a team
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	return s.repo.Delete(id)
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		TenantID:    team.TenantID,
		Name:        team.Name,
		DisplayName: team.DisplayName,
		Description: team.Description,
		Status:      team.Status,
		CreatedAt:   team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
