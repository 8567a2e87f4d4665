package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordAssignmentRepository handles the persisted assignment state of
// external records
type RecordAssignmentRepository struct {
	db *gorm.DB
}

// NewRecordAssignmentRepository creates a new record assignment repository
func NewRecordAssignmentRepository(db *gorm.DB) *RecordAssignmentRepository {
	return &RecordAssignmentRepository{db: db}
}

// Upsert writes the current owner of a record, inserting or replacing the
// row keyed by (tenant, record type, record id).
func (r *RecordAssignmentRepository) Upsert(ra *models.RecordAssignment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "tenant_id"},
			{Name: "record_type"},
			{Name: "record_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"assigned_user_id", "assigned_team_id", "updated_at"}),
	}).Create(ra).Error
}

// GetByRecord retrieves the assignment state of a record
func (r *RecordAssignmentRepository) GetByRecord(tenantID uuid.UUID, recordType, recordID string) (*models.RecordAssignment, error) {
	var ra models.RecordAssignment
	err := r.db.First(&ra, "tenant_id = ? AND record_type = ? AND record_id = ?", tenantID, recordType, recordID).Error
	if err != nil {
		return nil, err
	}
	return &ra, nil
}

// GetByAssignedUser retrieves all records currently assigned to a user
func (r *RecordAssignmentRepository) GetByAssignedUser(tenantID, userID uuid.UUID, limit, offset int) ([]models.RecordAssignment, int64, error) {
	var assignments []models.RecordAssignment
	var total int64

	query := r.db.Model(&models.RecordAssignment{}).
		Where("tenant_id = ? AND assigned_user_id = ?", tenantID, userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}
