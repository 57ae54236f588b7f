package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSession tracks one issued access token server-side. Stored in the tenant schema.
// A session is active iff RevokedAt is nil and ExpiresAt is after now; expiry is
// computed, never written.
type UserSession struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     int64           `json:"user_id" gorm:"not null;index"`
	TokenJTI   string          `json:"-" gorm:"column:token_jti;size:64;not null;uniqueIndex"`
	DeviceInfo json.RawMessage `json:"device_info,omitempty" gorm:"type:jsonb"`
	IPAddress  *string         `json:"ip_address,omitempty" gorm:"size:64"`
	UserAgent  *string         `json:"user_agent,omitempty" gorm:"size:512"`

	CreatedAt  time.Time `json:"created_at" gorm:"not null;index"`
	LastUsedAt time.Time `json:"last_used_at" gorm:"not null"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"not null;index"`

	RevokedAt     *time.Time `json:"revoked_at,omitempty"`
	RevokedReason *string    `json:"revoked_reason,omitempty" gorm:"size:64"`
	RevokedBy     *string    `json:"revoked_by,omitempty" gorm:"size:255"`
}

// TableName returns the table name for UserSession
func (UserSession) TableName() string {
	return "user_sessions"
}

// BeforeCreate sets the UUID if not already set
func (s *UserSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the session is usable at the given instant.
func (s *UserSession) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(now)
}

// Status derives the session state at the given instant.
func (s *UserSession) Status(now time.Time) SessionStatus {
	if s.RevokedAt != nil {
		return SessionStatusRevoked
	}
	if !s.ExpiresAt.After(now) {
		return SessionStatusExpired
	}
	return SessionStatusActive
}

// DeviceInfo describes the client that opened a session.
type DeviceInfo struct {
	Platform string `json:"platform,omitempty"`
	Browser  string `json:"browser,omitempty"`
	Version  string `json:"version,omitempty"`
	IsMobile bool   `json:"is_mobile"`
}
