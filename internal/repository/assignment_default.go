package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentDefaultRepository handles database operations for tenant-level
// assignment defaults
type AssignmentDefaultRepository struct {
	db *gorm.DB
}

// NewAssignmentDefaultRepository creates a new assignment default repository
func NewAssignmentDefaultRepository(db *gorm.DB) *AssignmentDefaultRepository {
	return &AssignmentDefaultRepository{db: db}
}

// GetOrCreate returns the tenant's defaults, lazily creating the row on
// first access with automatic assignment enabled and round robin disabled.
func (r *AssignmentDefaultRepository) GetOrCreate(tenantID uuid.UUID) (*models.AssignmentDefault, error) {
	var def models.AssignmentDefault
	err := r.db.
		Where(&models.AssignmentDefault{TenantID: tenantID}).
		Attrs(&models.AssignmentDefault{
			TenantID:                  tenantID,
			EnableAutomaticAssignment: true,
			RoundRobinEnabled:         false,
		}).
		FirstOrCreate(&def).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// GetByTenantID retrieves the defaults row without creating it
func (r *AssignmentDefaultRepository) GetByTenantID(tenantID uuid.UUID) (*models.AssignmentDefault, error) {
	var def models.AssignmentDefault
	err := r.db.First(&def, "tenant_id = ?", tenantID).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// Update updates a defaults row
func (r *AssignmentDefaultRepository) Update(def *models.AssignmentDefault) error {
	return r.db.Save(def).Error
}
