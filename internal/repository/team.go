package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name within a tenant
func (r *TeamRepository) GetByName(tenantID uuid.UUID, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "tenant_id = ? AND name = ?", tenantID, name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByTenantID retrieves all teams for a tenant with pagination
func (r *TeamRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("tenant_id = ?", tenantID).Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// SetStatus sets the status of a team
func (r *TeamRepository) SetStatus(teamID uuid.UUID, status models.TeamStatus) error {
	return r.db.Model(&models.Team{}).Where("id = ?", teamID).Update("status", status).Error
}

// CheckTeamExists checks if a team exists by ID
func (r *TeamRepository) CheckTeamExists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CheckTeamNameExists checks if a team name exists within a tenant
func (r *TeamRepository) CheckTeamNameExists(tenantID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Team{}).Where("tenant_id = ? AND name = ?", tenantID, name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// GetMemberCount returns the number of members in a team
func (r *TeamRepository) GetMemberCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}
