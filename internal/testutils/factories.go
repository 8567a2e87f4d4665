package testutils

import (
	"encoding/json"
	"time"

	"assignment-engine/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique name per instance to avoid unique index collisions
		Name:        "tenant-" + id.String()[:8],
		DisplayName: "Test Tenant",
		Domain:      "test.example.com",
		Status:      models.TenantStatusActive,
	}
}

// WithName sets a custom name for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	return tenant
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		Name:        "team-" + id.String()[:8],
		DisplayName: "Test Team",
		Description: "A test team",
		Status:      models.TeamStatusActive,
	}
}

// WithTenant sets the tenant ID for the team
func (f *TeamFactory) WithTenant(tenantID uuid.UUID) *models.Team {
	team := f.Create()
	team.TenantID = tenantID
	return team
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: uuid.New(),
		TeamID:   nil,
		FullName: "John Doe",
		Email:    "john-" + id.String()[:8] + "@test.com",
		Role:     models.MemberRoleAgent,
		IsActive: true,
	}
}

// WithTenant sets the tenant ID for the member
func (f *MemberFactory) WithTenant(tenantID uuid.UUID) *models.Member {
	member := f.Create()
	member.TenantID = tenantID
	return member
}

// WithTeam sets the tenant and team IDs for the member
func (f *MemberFactory) WithTeam(tenantID, teamID uuid.UUID) *models.Member {
	member := f.Create()
	member.TenantID = tenantID
	member.TeamID = &teamID
	return member
}

// Inactive creates an inactive member on the given team
func (f *MemberFactory) Inactive(tenantID, teamID uuid.UUID) *models.Member {
	member := f.WithTeam(tenantID, teamID)
	member.IsActive = false
	return member
}

// AssignmentRuleFactory provides methods to create test AssignmentRule data
type AssignmentRuleFactory struct{}

// NewAssignmentRuleFactory creates a new AssignmentRuleFactory
func NewAssignmentRuleFactory() *AssignmentRuleFactory {
	return &AssignmentRuleFactory{}
}

// Create creates a test AssignmentRule matching records whose source is "web"
func (f *AssignmentRuleFactory) Create(tenantID uuid.UUID) *models.AssignmentRule {
	id := uuid.New()
	targetUser := uuid.New()
	return &models.AssignmentRule{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: tenantID,
		Name:     "rule-" + id.String()[:8],
		Priority: 10,
		Criteria: json.RawMessage(`{"field":"source","op":"eq","value":"web"}`),
		Action:   MustAction(models.ActionAssignUser, &targetUser, nil),
		Active:   true,
	}
}

// WithCriteria sets custom criteria JSON for the rule
func (f *AssignmentRuleFactory) WithCriteria(tenantID uuid.UUID, criteria string) *models.AssignmentRule {
	rule := f.Create(tenantID)
	rule.Criteria = json.RawMessage(criteria)
	return rule
}

// WithAction sets a custom action for the rule
func (f *AssignmentRuleFactory) WithAction(tenantID uuid.UUID, actionType models.AssignmentActionType, userID, teamID *uuid.UUID) *models.AssignmentRule {
	rule := f.Create(tenantID)
	rule.Action = MustAction(actionType, userID, teamID)
	return rule
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant         *TenantFactory
	Team           *TeamFactory
	Member         *MemberFactory
	AssignmentRule *AssignmentRuleFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:         NewTenantFactory(),
		Team:           NewTeamFactory(),
		Member:         NewMemberFactory(),
		AssignmentRule: NewAssignmentRuleFactory(),
	}
}

// MustAction marshals an assignment action descriptor, panicking on failure.
// Only for test fixtures.
func MustAction(actionType models.AssignmentActionType, userID, teamID *uuid.UUID) json.RawMessage {
	action := models.AssignmentAction{
		Type:   actionType,
		UserID: userID,
		TeamID: teamID,
	}
	data, err := json.Marshal(&action)
	if err != nil {
		panic(err)
	}
	return data
}
