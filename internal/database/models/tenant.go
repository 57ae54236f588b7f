package models

import (
	"encoding/json"
	"time"
)

// Tenant is an isolated customer account mapped 1:1 to a database schema.
// Stored in the shared schema.
type Tenant struct {
	ID             int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string          `json:"name" gorm:"size:255;not null;index" validate:"required,max=255"`
	Subdomain      string          `json:"subdomain" gorm:"size:63;not null;uniqueIndex" validate:"required,max=63"`
	SchemaName     string          `json:"schema_name" gorm:"size:63;not null;uniqueIndex"`
	Status         TenantStatus    `json:"status" gorm:"type:varchar(32);not null;default:'active';index"`
	Metadata       json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
	DeletionReason *string         `json:"deletion_reason,omitempty" gorm:"size:500"`
	DeletedBy      *string         `json:"deleted_by,omitempty" gorm:"size:255"`
}

// TableName pins tenants to the shared schema regardless of the search path
func (Tenant) TableName() string {
	return "public.tenants"
}
