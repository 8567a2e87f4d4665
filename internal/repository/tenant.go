package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByName retrieves a tenant by name
func (r *TenantRepository) GetByName(name string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves all tenants with pagination
func (r *TenantRepository) GetAll(limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// Update updates a tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// Delete deletes a tenant
func (r *TenantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tenant{}, "id = ?", id).Error
}

// GetWithTeams retrieves a tenant with its teams
func (r *TenantRepository) GetWithTeams(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.Preload("Teams").First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// CheckNameExists checks if a tenant name is already taken
func (r *TenantRepository) CheckNameExists(name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Tenant{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
