package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRuleRepository handles database operations for assignment rules
type AssignmentRuleRepository struct {
	db *gorm.DB
}

// NewAssignmentRuleRepository creates a new assignment rule repository
func NewAssignmentRuleRepository(db *gorm.DB) *AssignmentRuleRepository {
	return &AssignmentRuleRepository{db: db}
}

// Create creates a new assignment rule
func (r *AssignmentRuleRepository) Create(rule *models.AssignmentRule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves an assignment rule by ID
func (r *AssignmentRuleRepository) GetByID(id uuid.UUID) (*models.AssignmentRule, error) {
	var rule models.AssignmentRule
	err := r.db.First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByTenantID retrieves all rules for a tenant with pagination, ordered by
// priority for a predictable admin listing.
func (r *AssignmentRuleRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.AssignmentRule, int64, error) {
	var rules []models.AssignmentRule
	var total int64

	if err := r.db.Model(&models.AssignmentRule{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).
		Order("priority ASC, created_at ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&rules).Error
	if err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}

// GetActiveOrdered retrieves a tenant's active rules in evaluation order:
// ascending priority, ties broken by creation order then id so the ordering
// is stable across calls.
func (r *AssignmentRuleRepository) GetActiveOrdered(tenantID uuid.UUID) ([]models.AssignmentRule, error) {
	var rules []models.AssignmentRule
	err := r.db.Where("tenant_id = ? AND active = ?", tenantID, true).
		Order("priority ASC, created_at ASC, id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// Update updates an assignment rule
func (r *AssignmentRuleRepository) Update(rule *models.AssignmentRule) error {
	return r.db.Save(rule).Error
}

// SetActive toggles whether a rule participates in evaluation
func (r *AssignmentRuleRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.AssignmentRule{}).Where("id = ?", id).Update("active", active).Error
}

// Delete deletes an assignment rule
func (r *AssignmentRuleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AssignmentRule{}, "id = ?", id).Error
}
