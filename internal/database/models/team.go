package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TeamStatus represents the status of a team
type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "active"
	TeamStatusInactive TeamStatus = "inactive"
)

// Team is a roster of members that records can be assigned to, either
// directly by a rule action or through round-robin rotation.
type Team struct {
	BaseModel
	TenantID    uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string          `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" gorm:"size:200" validate:"max=200"`
	Description string          `json:"description" gorm:"size:500" validate:"max=500"`
	Status      TeamStatus      `json:"status" gorm:"type:varchar(20);default:'active'"`
	Metadata    json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`

	// Relationships
	Tenant  Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Members []Member `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsValid checks whether the status is a known team status
func (s TeamStatus) IsValid() bool {
	return s == TeamStatusActive || s == TeamStatusInactive
}
