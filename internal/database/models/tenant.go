package models

import "encoding/json"

// TenantStatus represents the lifecycle status of a tenant
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
)

// Tenant is the isolation boundary: every rule, counter, default and audit
// row is partitioned by tenant ID.
type Tenant struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" gorm:"size:200" validate:"max=200"`
	Domain      string          `json:"domain" gorm:"size:100"`
	Status      TenantStatus    `json:"status" gorm:"type:varchar(20);default:'active'"`
	Metadata    json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// IsValid checks whether the status is a known tenant status
func (s TenantStatus) IsValid() bool {
	return s == TenantStatusActive || s == TenantStatusSuspended
}
