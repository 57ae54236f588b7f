package repository

import (
	"time"

	"kubera-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles the per-tenant user_sessions table. Active means
// revoked_at IS NULL AND expires_at > now; nothing here ever latches expiry.
type SessionRepository struct{}

// NewSessionRepository creates a new session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

func activeScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("revoked_at IS NULL AND expires_at > ?", now)
	}
}

// Create inserts a new session
func (r *SessionRepository) Create(tx *gorm.DB, session *models.UserSession) error {
	return tx.Create(session).Error
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(tx *gorm.DB, id uuid.UUID) (*models.UserSession, error) {
	var session models.UserSession
	err := tx.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetByJTI retrieves a session by token identifier
func (r *SessionRepository) GetByJTI(tx *gorm.DB, jti string) (*models.UserSession, error) {
	var session models.UserSession
	err := tx.First(&session, "token_jti = ?", jti).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Touch updates last_used_at
func (r *SessionRepository) Touch(tx *gorm.DB, id uuid.UUID, at time.Time) error {
	return tx.Model(&models.UserSession{}).Where("id = ?", id).Update("last_used_at", at).Error
}

// Revoke marks the session with the given JTI as revoked. An already revoked
// session has its reason and actor overwritten. Returns false when no row matched.
func (r *SessionRepository) Revoke(tx *gorm.DB, jti string, reason models.RevocationReason, revokedBy string, at time.Time) (bool, error) {
	result := tx.Model(&models.UserSession{}).
		Where("token_jti = ?", jti).
		Updates(map[string]interface{}{
			"revoked_at":     at,
			"revoked_reason": string(reason),
			"revoked_by":     revokedBy,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RevokeAllForUser revokes every active session of a user, optionally sparing
// one JTI. The count is exactly the rows moved from active to revoked.
func (r *SessionRepository) RevokeAllForUser(tx *gorm.DB, userID int64, exceptJTI string, reason models.RevocationReason, revokedBy string, at time.Time) (int64, error) {
	query := tx.Model(&models.UserSession{}).
		Where("user_id = ?", userID).
		Scopes(activeScope(at))
	if exceptJTI != "" {
		query = query.Where("token_jti <> ?", exceptJTI)
	}

	result := query.Updates(map[string]interface{}{
		"revoked_at":     at,
		"revoked_reason": string(reason),
		"revoked_by":     revokedBy,
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListForUser returns a user's sessions, newest first
func (r *SessionRepository) ListForUser(tx *gorm.DB, userID int64, activeOnly bool, now time.Time) ([]models.UserSession, error) {
	var sessions []models.UserSession
	query := tx.Model(&models.UserSession{}).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Scopes(activeScope(now))
	}
	if err := query.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// CountActive counts a user's active sessions
func (r *SessionRepository) CountActive(tx *gorm.DB, userID int64, now time.Time) (int64, error) {
	var count int64
	err := tx.Model(&models.UserSession{}).
		Where("user_id = ?", userID).
		Scopes(activeScope(now)).
		Count(&count).Error
	return count, err
}

// DeleteExpiredBefore hard-deletes sessions whose expiry precedes cutoff
func (r *SessionRepository) DeleteExpiredBefore(tx *gorm.DB, cutoff time.Time) (int64, error) {
	result := tx.Where("expires_at < ?", cutoff).Delete(&models.UserSession{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
