package service

import (
	"errors"
	"fmt"

	"assignment-engine/internal/database/models"
	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentCounterService exposes admin access to round-robin counters.
// Rotation itself goes through RoundRobinService; this service only lists
// counters and performs the explicit admin reset.
type AssignmentCounterService struct {
	repo *repository.AssignmentCounterRepository
}

// NewAssignmentCounterService creates a new assignment counter service
func NewAssignmentCounterService(repo *repository.AssignmentCounterRepository) *AssignmentCounterService {
	return &AssignmentCounterService{repo: repo}
}

// AssignmentCounterResponse represents one counter row
type AssignmentCounterResponse struct {
	TenantID uuid.UUID `json:"tenant_id"`
	TeamID   uuid.UUID `json:"team_id,omitempty"`
	UserID   uuid.UUID `json:"user_id,omitempty"`
	Counter  int64     `json:"counter"`
}

// GetByTenant lists all counter rows for a tenant
func (s *AssignmentCounterService) GetByTenant(tenantID uuid.UUID) ([]AssignmentCounterResponse, error) {
	counters, err := s.repo.GetByTenantID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment counters: %w", err)
	}

	responses := make([]AssignmentCounterResponse, 0, len(counters))
	for _, c := range counters {
		responses = append(responses, toCounterResponse(&c))
	}
	return responses, nil
}

// Reset zeroes a counter scope. This restarts the rotation and is only
// reachable through the admin API.
func (s *AssignmentCounterService) Reset(tenantID, teamID, userID uuid.UUID) error {
	if err := s.repo.Reset(tenantID, teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentCounterNotFound
		}
		return fmt.Errorf("failed to reset assignment counter: %w", err)
	}
	return nil
}

func toCounterResponse(c *models.AssignmentCounter) AssignmentCounterResponse {
	return AssignmentCounterResponse{
		TenantID: c.TenantID,
		TeamID:   c.TeamID,
		UserID:   c.UserID,
		Counter:  c.Counter,
	}
}
