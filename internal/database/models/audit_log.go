package models

import (
	"encoding/json"
	"time"
)

// AuditLog is the tenant-isolated audit trail.
type AuditLog struct {
	ID           int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       *int64          `json:"user_id,omitempty" gorm:"index"`
	Action       string          `json:"action" gorm:"size:100;not null;index"`
	ResourceType *string         `json:"resource_type,omitempty" gorm:"size:100;index"`
	ResourceID   *string         `json:"resource_id,omitempty" gorm:"size:100;index"`
	Changes      json.RawMessage `json:"changes,omitempty" gorm:"type:jsonb"`
	Timestamp    time.Time       `json:"timestamp" gorm:"not null;index"`
	IPAddress    *string         `json:"ip_address,omitempty" gorm:"size:64"`
	UserAgent    *string         `json:"user_agent,omitempty" gorm:"size:512"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
