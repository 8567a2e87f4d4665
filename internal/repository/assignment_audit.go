package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentAuditRepository handles database operations for assignment
// audits. The table is append-only: no update or delete methods exist.
type AssignmentAuditRepository struct {
	db *gorm.DB
}

// NewAssignmentAuditRepository creates a new assignment audit repository
func NewAssignmentAuditRepository(db *gorm.DB) *AssignmentAuditRepository {
	return &AssignmentAuditRepository{db: db}
}

// Create appends an audit row
func (r *AssignmentAuditRepository) Create(audit *models.AssignmentAudit) error {
	return r.db.Create(audit).Error
}

// GetByID retrieves an audit row by ID
func (r *AssignmentAuditRepository) GetByID(id uuid.UUID) (*models.AssignmentAudit, error) {
	var audit models.AssignmentAudit
	err := r.db.First(&audit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &audit, nil
}

// GetByTenantID retrieves audit rows for a tenant, newest first, with pagination
func (r *AssignmentAuditRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.AssignmentAudit, int64, error) {
	var audits []models.AssignmentAudit
	var total int64

	if err := r.db.Model(&models.AssignmentAudit{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&audits).Error
	if err != nil {
		return nil, 0, err
	}

	return audits, total, nil
}

// GetByRecord retrieves the audit history of a single record, newest first
func (r *AssignmentAuditRepository) GetByRecord(tenantID uuid.UUID, recordType, recordID string, limit, offset int) ([]models.AssignmentAudit, int64, error) {
	var audits []models.AssignmentAudit
	var total int64

	query := r.db.Model(&models.AssignmentAudit{}).
		Where("tenant_id = ? AND record_type = ? AND record_id = ?", tenantID, recordType, recordID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&audits).Error
	if err != nil {
		return nil, 0, err
	}

	return audits, total, nil
}
