package repository

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByName(name string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Update(tenant *models.Tenant) error
	Delete(id uuid.UUID) error
	GetWithTeams(id uuid.UUID) (*models.Tenant, error)
	CheckNameExists(name string, excludeID *uuid.UUID) (bool, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(tenantID uuid.UUID, name string) (*models.Team, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	SetStatus(teamID uuid.UUID, status models.TeamStatus) error
	CheckTeamExists(id uuid.UUID) (bool, error)
	CheckTeamNameExists(tenantID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	GetMemberCount(teamID uuid.UUID) (int64, error)
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByEmail(tenantID uuid.UUID, email string) (*models.Member, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.Member, int64, error)
	GetActiveTeamRoster(tenantID, teamID uuid.UUID) ([]uuid.UUID, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
	CheckEmailExists(tenantID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error)
}

// AssignmentRuleRepositoryInterface defines the interface for assignment rule repository operations
type AssignmentRuleRepositoryInterface interface {
	Create(rule *models.AssignmentRule) error
	GetByID(id uuid.UUID) (*models.AssignmentRule, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.AssignmentRule, int64, error)
	GetActiveOrdered(tenantID uuid.UUID) ([]models.AssignmentRule, error)
	Update(rule *models.AssignmentRule) error
	SetActive(id uuid.UUID, active bool) error
	Delete(id uuid.UUID) error
}

// AssignmentCounterRepositoryInterface defines the interface for assignment counter repository operations
type AssignmentCounterRepositoryInterface interface {
	IncrementAndGet(tenantID, teamID, userID uuid.UUID) (int64, error)
	Get(tenantID, teamID, userID uuid.UUID) (*models.AssignmentCounter, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.AssignmentCounter, error)
	Reset(tenantID, teamID, userID uuid.UUID) error
}

// AssignmentDefaultRepositoryInterface defines the interface for assignment default repository operations
type AssignmentDefaultRepositoryInterface interface {
	GetOrCreate(tenantID uuid.UUID) (*models.AssignmentDefault, error)
	GetByTenantID(tenantID uuid.UUID) (*models.AssignmentDefault, error)
	Update(def *models.AssignmentDefault) error
}

// AssignmentAuditRepositoryInterface defines the interface for assignment audit repository operations
type AssignmentAuditRepositoryInterface interface {
	Create(audit *models.AssignmentAudit) error
	GetByID(id uuid.UUID) (*models.AssignmentAudit, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.AssignmentAudit, int64, error)
	GetByRecord(tenantID uuid.UUID, recordType, recordID string, limit, offset int) ([]models.AssignmentAudit, int64, error)
}

// RecordAssignmentRepositoryInterface defines the interface for record assignment repository operations
type RecordAssignmentRepositoryInterface interface {
	Upsert(ra *models.RecordAssignment) error
	GetByRecord(tenantID uuid.UUID, recordType, recordID string) (*models.RecordAssignment, error)
	GetByAssignedUser(tenantID, userID uuid.UUID, limit, offset int) ([]models.RecordAssignment, int64, error)
}
