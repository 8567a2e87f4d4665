package models

import "github.com/google/uuid"

// RecordAssignment is the subsystem's view of the current owner of an
// external record (contact, deal, lead). One row per (tenant, record type,
// record id), upserted inside the assignment transaction so the assignment
// state and its audit trail commit or roll back together.
type RecordAssignment struct {
	BaseModel
	TenantID       uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_record_assignments_record" validate:"required"`
	RecordType     string     `json:"record_type" gorm:"size:100;not null;uniqueIndex:idx_record_assignments_record" validate:"required"`
	RecordID       string     `json:"record_id" gorm:"size:100;not null;uniqueIndex:idx_record_assignments_record" validate:"required"`
	AssignedUserID *uuid.UUID `json:"assigned_user_id,omitempty" gorm:"type:uuid"`
	AssignedTeamID *uuid.UUID `json:"assigned_team_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for RecordAssignment
func (RecordAssignment) TableName() string {
	return "record_assignments"
}
