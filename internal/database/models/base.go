package models

import (
	"time"
)

// TimestampedModel provides creation/update timestamps shared by tenant-schema tables
type TimestampedModel struct {
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// AuditedModel carries the audit columns used by business tables (tags, contracts)
type AuditedModel struct {
	CreatedAt     time.Time  `json:"created_at" gorm:"not null"`
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
	CreatedBy     *string    `json:"created_by,omitempty" gorm:"size:255"`
	LastUpdatedBy *string    `json:"last_updated_by,omitempty" gorm:"size:255"`
}

// SharedModels lists tables living in the shared ("public") schema.
func SharedModels() []interface{} {
	return []interface{}{
		&Tenant{},
	}
}

// TenantModels is the table template copied into every tenant schema.
// Order matters only for readability; no foreign keys cross these tables.
func TenantModels() []interface{} {
	return []interface{}{
		&TenantUser{},
		&UserSession{},
		&TenantInvitation{},
		&AuditLog{},
		&Tag{},
		&Contract{},
		&TagContract{},
	}
}

// TenantTableNames returns table names of the tenant template, used by test cleanup.
func TenantTableNames() []string {
	return []string{
		TagContract{}.TableName(),
		Contract{}.TableName(),
		Tag{}.TableName(),
		AuditLog{}.TableName(),
		TenantInvitation{}.TableName(),
		UserSession{}.TableName(),
		TenantUser{}.TableName(),
	}
}
