package service

import (
	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	Create(req *CreateTenantRequest) (*TenantResponse, error)
	GetByID(id uuid.UUID) (*TenantResponse, error)
	GetAll(page, pageSize int) (*TenantListResponse, error)
	Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	Delete(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetWithMembers(id uuid.UUID) (*TeamWithMembersResponse, error)
	GetByTenant(tenantID uuid.UUID, page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	Create(req *CreateMemberRequest) (*MemberResponse, error)
	GetByID(id uuid.UUID) (*MemberResponse, error)
	GetByTenant(tenantID uuid.UUID, page, pageSize int) (*MemberListResponse, error)
	Update(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
	Delete(id uuid.UUID) error
}

// AssignmentRuleServiceInterface defines the interface for assignment rule service
type AssignmentRuleServiceInterface interface {
	Create(req *CreateAssignmentRuleRequest) (*AssignmentRuleResponse, error)
	GetByID(id uuid.UUID) (*AssignmentRuleResponse, error)
	GetByTenant(tenantID uuid.UUID, page, pageSize int) (*AssignmentRuleListResponse, error)
	Update(id uuid.UUID, req *UpdateAssignmentRuleRequest) (*AssignmentRuleResponse, error)
	Delete(id uuid.UUID) error
	SelectRule(tenantID uuid.UUID, fields map[string]interface{}) (*models.AssignmentRule, error)
}

// AssignmentDefaultServiceInterface defines the interface for assignment default service
type AssignmentDefaultServiceInterface interface {
	GetForTenant(tenantID uuid.UUID) (*AssignmentDefaultResponse, error)
	Update(tenantID uuid.UUID, req *UpdateAssignmentDefaultRequest) (*AssignmentDefaultResponse, error)
}

// AssignmentAuditServiceInterface defines the interface for assignment audit service
type AssignmentAuditServiceInterface interface {
	GetByID(id uuid.UUID) (*AssignmentAuditResponse, error)
	GetByTenant(tenantID uuid.UUID, page, pageSize int) (*AssignmentAuditListResponse, error)
	GetByRecord(tenantID uuid.UUID, recordType, recordID string, page, pageSize int) (*AssignmentAuditListResponse, error)
}

// AssignmentCounterServiceInterface defines the interface for assignment counter service
type AssignmentCounterServiceInterface interface {
	GetByTenant(tenantID uuid.UUID) ([]AssignmentCounterResponse, error)
	Reset(tenantID, teamID, userID uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for the assignment orchestrator
type AssignmentServiceInterface interface {
	Assign(req *AssignRecordRequest) (*AssignmentResult, error)
}
