package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"assignment-engine/internal/criteria"
	"assignment-engine/internal/database/models"
	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRuleService handles business logic for assignment rules
type AssignmentRuleService struct {
	repo       *repository.AssignmentRuleRepository
	tenantRepo *repository.TenantRepository
	validator  *validator.Validate
}

// NewAssignmentRuleService creates a new assignment rule service
func NewAssignmentRuleService(repo *repository.AssignmentRuleRepository, tenantRepo *repository.TenantRepository, validator *validator.Validate) *AssignmentRuleService {
	return &AssignmentRuleService{
		repo:       repo,
		tenantRepo: tenantRepo,
		validator:  validator,
	}
}

// CreateAssignmentRuleRequest represents the request to create an assignment rule
type CreateAssignmentRuleRequest struct {
	TenantID uuid.UUID               `json:"tenant_id" validate:"required"`
	Name     string                  `json:"name" validate:"required,min=1,max=200"`
	Priority int                     `json:"priority"`
	Criteria json.RawMessage         `json:"criteria" validate:"required"`
	Action   models.AssignmentAction `json:"action" validate:"required"`
	Active   *bool                   `json:"active,omitempty"`
}

// UpdateAssignmentRuleRequest represents the request to update an assignment rule
type UpdateAssignmentRuleRequest struct {
	Name     *string                  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Priority *int                     `json:"priority,omitempty"`
	Criteria json.RawMessage          `json:"criteria,omitempty"`
	Action   *models.AssignmentAction `json:"action,omitempty"`
	Active   *bool                    `json:"active,omitempty"`
}

// AssignmentRuleResponse represents the response for assignment rule operations
type AssignmentRuleResponse struct {
	ID        uuid.UUID               `json:"id"`
	TenantID  uuid.UUID               `json:"tenant_id"`
	Name      string                  `json:"name"`
	Priority  int                     `json:"priority"`
	Criteria  json.RawMessage         `json:"criteria"`
	Action    models.AssignmentAction `json:"action"`
	Active    bool                    `json:"active"`
	CreatedAt string                  `json:"created_at"`
	UpdatedAt string                  `json:"updated_at"`
}

// AssignmentRuleListResponse represents a paginated list of assignment rules
type AssignmentRuleListResponse struct {
	Rules    []AssignmentRuleResponse `json:"rules"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Create creates a new assignment rule
func (s *AssignmentRuleService) Create(req *CreateAssignmentRuleRequest) (*AssignmentRuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Criteria must at least be valid JSON; structurally odd trees are
	// allowed and simply never match.
	if _, err := criteria.Parse(req.Criteria); err != nil {
		return nil, apperrors.ErrInvalidCriteria
	}

	if !req.Action.IsValid() {
		return nil, apperrors.ErrInvalidAssignmentAction
	}

	// Validate tenant exists
	if _, err := s.tenantRepo.GetByID(req.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	actionJSON, err := json.Marshal(req.Action)
	if err != nil {
		return nil, fmt.Errorf("failed to encode action: %w", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	rule := &models.AssignmentRule{
		TenantID: req.TenantID,
		Name:     req.Name,
		Priority: req.Priority,
		Criteria: req.Criteria,
		Action:   actionJSON,
		Active:   active,
	}

	if err := s.repo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create assignment rule: %w", err)
	}

	return s.toResponse(rule)
}

// GetByID retrieves an assignment rule by ID
func (s *AssignmentRuleService) GetByID(id uuid.UUID) (*AssignmentRuleResponse, error) {
	rule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentRuleNotFound
		}
		return nil, fmt.Errorf("failed to get assignment rule: %w", err)
	}
	return s.toResponse(rule)
}

// GetByTenant retrieves a tenant's rules with pagination
func (s *AssignmentRuleService) GetByTenant(tenantID uuid.UUID, page, pageSize int) (*AssignmentRuleListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	offset := (page - 1) * pageSize
	rules, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment rules: %w", err)
	}

	responses := make([]AssignmentRuleResponse, 0, len(rules))
	for i := range rules {
		resp, err := s.toResponse(&rules[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return &AssignmentRuleListResponse{
		Rules:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an assignment rule
func (s *AssignmentRuleService) Update(id uuid.UUID, req *UpdateAssignmentRuleRequest) (*AssignmentRuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentRuleNotFound
		}
		return nil, fmt.Errorf("failed to get assignment rule: %w", err)
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.Criteria != nil {
		if _, err := criteria.Parse(req.Criteria); err != nil {
			return nil, apperrors.ErrInvalidCriteria
		}
		rule.Criteria = req.Criteria
	}
	if req.Action != nil {
		if !req.Action.IsValid() {
			return nil, apperrors.ErrInvalidAssignmentAction
		}
		actionJSON, err := json.Marshal(req.Action)
		if err != nil {
			return nil, fmt.Errorf("failed to encode action: %w", err)
		}
		rule.Action = actionJSON
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}

	if err := s.repo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update assignment rule: %w", err)
	}

	return s.toResponse(rule)
}

// Delete deletes an assignment rule
func (s *AssignmentRuleService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentRuleNotFound
		}
		return fmt.Errorf("failed to get assignment rule: %w", err)
	}
	return s.repo.Delete(id)
}

// SelectRule returns the first active rule whose criteria match the record
// fields, scanning in ascending priority order with stable ties. Returns nil
// when no rule matches. Pure read: no side effects.
func (s *AssignmentRuleService) SelectRule(tenantID uuid.UUID, fields map[string]interface{}) (*models.AssignmentRule, error) {
	rules, err := s.repo.GetActiveOrdered(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment rules: %w", err)
	}
	return FirstMatch(rules, fields), nil
}

// FirstMatch scans ordered rules and returns the first whose criteria tree
// matches. Malformed criteria never match (fail closed).
func FirstMatch(rules []models.AssignmentRule, fields map[string]interface{}) *models.AssignmentRule {
	for i := range rules {
		if criteria.Matches(rules[i].Criteria, fields) {
			return &rules[i]
		}
	}
	return nil
}

func (s *AssignmentRuleService) toResponse(rule *models.AssignmentRule) (*AssignmentRuleResponse, error) {
	action, err := rule.DecodeAction()
	if err != nil {
		return nil, fmt.Errorf("failed to decode action for rule %s: %w", rule.ID, err)
	}
	return &AssignmentRuleResponse{
		ID:        rule.ID,
		TenantID:  rule.TenantID,
		Name:      rule.Name,
		Priority:  rule.Priority,
		Criteria:  rule.Criteria,
		Action:    *action,
		Active:    rule.Active,
		CreatedAt: rule.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: rule.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
