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

// TenantService handles business logic for tenants
type TenantService struct {
	repo      *repository.TenantRepository
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo *repository.TenantRepository, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" validate:"max=200"`
	Domain      string `json:"domain" validate:"max=100"`
}

// UpdateTenantRequest represents the request to update a tenant
type UpdateTenantRequest struct {
	DisplayName *string              `json:"display_name,omitempty" validate:"omitempty,max=200"`
	Domain      *string              `json:"domain,omitempty" validate:"omitempty,max=100"`
	Status      *models.TenantStatus `json:"status,omitempty"`
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	DisplayName string              `json:"display_name"`
	Domain      string              `json:"domain"`
	Status      models.TenantStatus `json:"status"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new tenant
func (s *TenantService) Create(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.CheckNameExists(req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check tenant name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTenantExists
	}

	tenant := &models.Tenant{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Domain:      req.Domain,
		Status:      models.TenantStatusActive,
	}

	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return toTenantResponse(tenant), nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return toTenantResponse(tenant), nil
}

// GetAll retrieves all tenants with pagination
func (s *TenantService) GetAll(page, pageSize int) (*TenantListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	offset := (page - 1) * pageSize
	tenants, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, *toTenantResponse(&tenants[i]))
	}

	return &TenantListResponse{
		Tenants:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a tenant
func (s *TenantService) Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if req.DisplayName != nil {
		tenant.DisplayName = *req.DisplayName
	}
	if req.Domain != nil {
		tenant.Domain = *req.Domain
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		tenant.Status = *req.Status
	}

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return toTenantResponse(tenant), nil
}

// Delete deletes a tenant
func (s *TenantService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to get tenant: %w", err)
	}
	return s.repo.Delete(id)
}

func toTenantResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:          tenant.ID,
		Name:        tenant.Name,
		DisplayName: tenant.DisplayName,
		Domain:      tenant.Domain,
		Status:      tenant.Status,
		CreatedAt:   tenant.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   tenant.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
