package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// MemberRole represents the role of a member within a team
type MemberRole string

const (
	MemberRoleAgent   MemberRole = "agent"
	MemberRoleManager MemberRole = "manager"
	MemberRoleAdmin   MemberRole = "admin"
)

// Member is a user in the tenant directory. Active members of a team form
// the ordered roster used for round-robin rotation; roster order is
// creation order so rotation stays deterministic.
type Member struct {
	BaseModel
	TenantID  uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID    *uuid.UUID      `json:"team_id,omitempty" gorm:"type:uuid;index"`
	FullName  string          `json:"full_name" gorm:"size:200;not null" validate:"required,max=200"`
	Email     string          `json:"email" gorm:"size:200;not null;index" validate:"required,email"`
	Role      MemberRole      `json:"role" gorm:"type:varchar(20);default:'agent'"`
	IsActive  bool            `json:"is_active" gorm:"default:true"`
	Metadata  json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`

	// Relationships
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Team   *Team  `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}

// IsValid checks whether the role is a known member role
func (r MemberRole) IsValid() bool {
	return r == MemberRoleAgent || r == MemberRoleManager || r == MemberRoleAdmin
}
