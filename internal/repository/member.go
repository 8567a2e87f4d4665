package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a member by email within a tenant
func (r *MemberRepository) GetByEmail(tenantID uuid.UUID, email string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "tenant_id = ? AND email = ?", tenantID, email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTenantID retrieves all members for a tenant with pagination
func (r *MemberRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	if err := r.db.Model(&models.Member{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// GetActiveTeamRoster returns the IDs of a team's active members in a stable
// order (creation order, id as tiebreak). Round-robin rotation depends on
// this ordering staying deterministic between calls.
func (r *MemberRepository) GetActiveTeamRoster(tenantID, teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Member{}).
		Where("tenant_id = ? AND team_id = ? AND is_active = ?", tenantID, teamID, true).
		Order("created_at ASC, id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// Delete deletes a member
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}

// CheckEmailExists checks if a member email exists within a tenant
func (r *MemberRepository) CheckEmailExists(tenantID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Member{}).Where("tenant_id = ? AND email = ?", tenantID, email)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
