package models

import (
	"time"
)

// TenantInvitation invites someone to join a tenant. Stored in the tenant schema;
// TenantID references the shared tenants table without a foreign key.
type TenantInvitation struct {
	ID         int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantID   int64            `json:"tenant_id" gorm:"not null;index"`
	Email      string           `json:"email" gorm:"size:255;not null;index"`
	Role       string           `json:"role" gorm:"size:50;not null;default:'owner'"`
	Token      string           `json:"-" gorm:"size:64;not null;uniqueIndex"`
	Status     InvitationStatus `json:"status" gorm:"type:varchar(32);not null;default:'pending';index"`
	ExpiresAt  time.Time        `json:"expires_at" gorm:"not null;index"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`
	CreatedBy  string           `json:"created_by" gorm:"size:255;not null"`
	TimestampedModel
}

// TableName returns the table name for TenantInvitation
func (TenantInvitation) TableName() string {
	return "tenant_invitations"
}

// IsExpired reports a pending invitation whose deadline has passed.
func (i *TenantInvitation) IsExpired(now time.Time) bool {
	return i.Status == InvitationStatusPending && !i.ExpiresAt.After(now)
}

// IsValid reports whether the invitation can still be accepted.
func (i *TenantInvitation) IsValid(now time.Time) bool {
	return i.Status == InvitationStatusPending && i.ExpiresAt.After(now)
}
