package models

import (
	"encoding/json"
	"time"
)

// TenantUser lives inside a tenant schema; its id sequence starts at 1 per tenant.
// Never referenced across schemas by foreign key.
type TenantUser struct {
	ID           int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string          `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash *string         `json:"-" gorm:"size:255"`
	FirstName    *string         `json:"first_name,omitempty" gorm:"size:100"`
	LastName     *string         `json:"last_name,omitempty" gorm:"size:100"`
	Role         string          `json:"role" gorm:"size:50;not null;default:'member'"`
	IsOwner      bool            `json:"is_owner" gorm:"not null"`
	IsActive     bool            `json:"is_active" gorm:"not null"`
	LastLogin    *time.Time      `json:"last_login,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`
	TimestampedModel
}

// TableName returns the table name for TenantUser
func (TenantUser) TableName() string {
	return "tenant_users"
}
