package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentCounterRepository handles database operations for the monotonic
// round-robin counters. Counters are only ever mutated through
// IncrementAndGet so concurrent callers can never observe the same value.
type AssignmentCounterRepository struct {
	db *gorm.DB
}

// NewAssignmentCounterRepository creates a new assignment counter repository
func NewAssignmentCounterRepository(db *gorm.DB) *AssignmentCounterRepository {
	return &AssignmentCounterRepository{db: db}
}

// IncrementAndGet atomically increments the counter for the given scope and
// returns the post-increment value. The row is created lazily with value 0,
// so the first call returns 1. The insert and the increment run inside one
// transaction; the increment itself is a single UPDATE ... RETURNING, never
// a read-then-write.
func (r *AssignmentCounterRepository) IncrementAndGet(tenantID, teamID, userID uuid.UUID) (int64, error) {
	var value int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			INSERT INTO assignment_counters (id, tenant_id, team_id, user_id, counter, created_at, updated_at)
			VALUES (gen_random_uuid(), ?, ?, ?, 0, now(), now())
			ON CONFLICT (tenant_id, team_id, user_id) DO NOTHING`,
			tenantID, teamID, userID).Error; err != nil {
			return err
		}
		return tx.Raw(`
			UPDATE assignment_counters
			SET counter = counter + 1, updated_at = now()
			WHERE tenant_id = ? AND team_id = ? AND user_id = ?
			RETURNING counter`,
			tenantID, teamID, userID).Scan(&value).Error
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Get retrieves the counter row for a scope
func (r *AssignmentCounterRepository) Get(tenantID, teamID, userID uuid.UUID) (*models.AssignmentCounter, error) {
	var counter models.AssignmentCounter
	err := r.db.First(&counter, "tenant_id = ? AND team_id = ? AND user_id = ?", tenantID, teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

// GetByTenantID retrieves all counter rows for a tenant
func (r *AssignmentCounterRepository) GetByTenantID(tenantID uuid.UUID) ([]models.AssignmentCounter, error) {
	var counters []models.AssignmentCounter
	err := r.db.Where("tenant_id = ?", tenantID).Find(&counters).Error
	if err != nil {
		return nil, err
	}
	return counters, nil
}

// Reset sets a counter back to zero. Rotation state is otherwise
// monotonic forever; this exists for explicit admin action only.
func (r *AssignmentCounterRepository) Reset(tenantID, teamID, userID uuid.UUID) error {
	result := r.db.Model(&models.AssignmentCounter{}).
		Where("tenant_id = ? AND team_id = ? AND user_id = ?", tenantID, teamID, userID).
		Update("counter", 0)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
