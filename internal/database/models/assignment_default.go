package models

import "github.com/google/uuid"

// AssignmentDefault holds the tenant-level fallback configuration consulted
// when no rule matches. One row per tenant, created lazily on first access
// with automatic assignment enabled and round robin disabled.
type AssignmentDefault struct {
	BaseModel
	TenantID                  uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	DefaultUserID             *uuid.UUID `json:"default_user_id,omitempty" gorm:"type:uuid"`
	DefaultTeamID             *uuid.UUID `json:"default_team_id,omitempty" gorm:"type:uuid"`
	RoundRobinEnabled         bool       `json:"round_robin_enabled" gorm:"default:false"`
	EnableAutomaticAssignment bool       `json:"enable_automatic_assignment" gorm:"default:true"`
}

// TableName returns the table name for AssignmentDefault
func (AssignmentDefault) TableName() string {
	return "assignment_defaults"
}
