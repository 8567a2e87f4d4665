package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AssignmentType represents how an assignment decision was reached
type AssignmentType string

const (
	AssignmentTypeRule       AssignmentType = "rule"
	AssignmentTypeRoundRobin AssignmentType = "round_robin"
	AssignmentTypeDefault    AssignmentType = "default"
)

// IsValid checks whether the value is a known assignment type
func (t AssignmentType) IsValid() bool {
	return t == AssignmentTypeRule || t == AssignmentTypeRoundRobin || t == AssignmentTypeDefault
}

// AssignmentAudit is the append-only trace of one assignment decision.
// Rows are written in the same transaction as the assignment mutation and
// are never updated or deleted by this subsystem.
type AssignmentAudit struct {
	BaseModel
	TenantID       uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;index:idx_audits_tenant_record" validate:"required"`
	RecordType     string          `json:"record_type" gorm:"size:100;not null;index:idx_audits_tenant_record" validate:"required"`
	RecordID       string          `json:"record_id" gorm:"size:100;not null;index:idx_audits_tenant_record" validate:"required"`
	AssignedUserID *uuid.UUID      `json:"assigned_user_id,omitempty" gorm:"type:uuid"`
	AssignedTeamID *uuid.UUID      `json:"assigned_team_id,omitempty" gorm:"type:uuid"`
	RuleID         *uuid.UUID      `json:"rule_id,omitempty" gorm:"type:uuid"`
	AssignmentType AssignmentType  `json:"assignment_type" gorm:"type:varchar(20);not null" validate:"required"`
	Details        json.RawMessage `json:"details,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for AssignmentAudit
func (AssignmentAudit) TableName() string {
	return "assignment_audits"
}
