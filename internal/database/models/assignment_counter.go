package models

import "github.com/google/uuid"

// AssignmentCounter is a monotonic per-scope counter backing round-robin
// rotation. One row exists per (tenant, team) or (tenant, user) scope;
// absent scope components are stored as the zero UUID so the composite
// unique index holds. Rows are created lazily on first use and mutated only
// through an atomic increment-and-read inside a transaction.
type AssignmentCounter struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_counters_scope" validate:"required"`
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000';uniqueIndex:idx_counters_scope"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000';uniqueIndex:idx_counters_scope"`
	Counter  int64     `json:"counter" gorm:"not null;default:0"`
}

// TableName returns the table name for AssignmentCounter
func (AssignmentCounter) TableName() string {
	return "assignment_counters"
}
