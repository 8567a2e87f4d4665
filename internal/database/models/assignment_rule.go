package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AssignmentActionType represents what a matched rule does with the record
type AssignmentActionType string

const (
	// ActionAssignUser assigns the record to a specific user
	ActionAssignUser AssignmentActionType = "user"
	// ActionAssignTeam assigns the record to a team as a whole
	ActionAssignTeam AssignmentActionType = "team"
	// ActionRoundRobin rotates the record through a team's active roster
	ActionRoundRobin AssignmentActionType = "round_robin"
)

// AssignmentAction is the resolved target descriptor stored on a rule.
// UserID is set for "user" actions, TeamID for "team" and "round_robin".
type AssignmentAction struct {
	Type   AssignmentActionType `json:"type"`
	UserID *uuid.UUID           `json:"user_id,omitempty"`
	TeamID *uuid.UUID           `json:"team_id,omitempty"`
}

// IsValid checks whether the action type is known and carries its target
func (a *AssignmentAction) IsValid() bool {
	switch a.Type {
	case ActionAssignUser:
		return a.UserID != nil
	case ActionAssignTeam, ActionRoundRobin:
		return a.TeamID != nil
	}
	return false
}

// AssignmentRule is a tenant-scoped, prioritized matching rule. Criteria is a
// nested boolean condition tree stored as JSON; lower priority values take
// precedence, ties resolved by creation order.
type AssignmentRule struct {
	BaseModel
	TenantID uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;index:idx_rules_tenant_priority" validate:"required"`
	Name     string          `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Priority int             `json:"priority" gorm:"not null;default:0;index:idx_rules_tenant_priority"`
	Criteria json.RawMessage `json:"criteria" gorm:"type:jsonb;not null"`
	Action   json.RawMessage `json:"action" gorm:"type:jsonb;not null"`
	Active   bool            `json:"active" gorm:"default:true"`

	// Relationships
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssignmentRule
func (AssignmentRule) TableName() string {
	return "assignment_rules"
}

// DecodeAction unmarshals the stored action descriptor
func (r *AssignmentRule) DecodeAction() (*AssignmentAction, error) {
	var action AssignmentAction
	if err := json.Unmarshal(r.Action, &action); err != nil {
		return nil, err
	}
	return &action, nil
}
