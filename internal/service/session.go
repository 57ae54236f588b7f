package service

import (
	"context"
	"encoding/json"
	"time"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService is the server-side session store. Every operation runs in
// the schema of the tenant passed in; lookups that miss return nil/false/0,
// only storage failures are errors.
type SessionService struct {
	runner tenant.Runner
	repo   repository.SessionRepositoryInterface
	now    Clock
}

// NewSessionService creates a new session service
func NewSessionService(runner tenant.Runner, repo repository.SessionRepositoryInterface) *SessionService {
	return &SessionService{
		runner: runner,
		repo:   repo,
		now:    systemClock,
	}
}

// WithClock replaces the service clock.
func (s *SessionService) WithClock(now Clock) *SessionService {
	s.now = now
	return s
}

// CreateSessionParams describes a freshly issued token.
type CreateSessionParams struct {
	UserID     int64
	JTI        string
	ExpiresAt  time.Time
	IPAddress  string
	UserAgent  string
	DeviceInfo *models.DeviceInfo
}

// SessionResponse is the API view of a session.
type SessionResponse struct {
	ID            uuid.UUID            `json:"id"`
	DeviceInfo    *models.DeviceInfo   `json:"device_info,omitempty"`
	IPAddress     string               `json:"ip_address,omitempty"`
	UserAgent     string               `json:"user_agent,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	LastUsedAt    time.Time            `json:"last_used_at"`
	ExpiresAt     time.Time            `json:"expires_at"`
	Status        models.SessionStatus `json:"status"`
	IsCurrent     bool                 `json:"is_current"`
	RevokedAt     *time.Time           `json:"revoked_at,omitempty"`
	RevokedReason string               `json:"revoked_reason,omitempty"`
}

// SessionListResponse wraps a user's sessions
type SessionListResponse struct {
	Sessions    []SessionResponse `json:"sessions"`
	Total       int               `json:"total"`
	ActiveCount int64             `json:"active_count"`
}

// Now returns the service's notion of the current time.
func (s *SessionService) Now() time.Time {
	return s.now()
}

// ToResponse renders a session for the API. currentJTI marks the caller's own session.
func (s *SessionService) ToResponse(session *models.UserSession, currentJTI string) SessionResponse {
	resp := SessionResponse{
		ID:            session.ID,
		IPAddress:     derefStr(session.IPAddress),
		UserAgent:     derefStr(session.UserAgent),
		CreatedAt:     session.CreatedAt,
		LastUsedAt:    session.LastUsedAt,
		ExpiresAt:     session.ExpiresAt,
		Status:        session.Status(s.now()),
		IsCurrent:     currentJTI != "" && session.TokenJTI == currentJTI,
		RevokedAt:     session.RevokedAt,
		RevokedReason: derefStr(session.RevokedReason),
	}
	if len(session.DeviceInfo) > 0 {
		var info models.DeviceInfo
		if err := json.Unmarshal(session.DeviceInfo, &info); err == nil {
			resp.DeviceInfo = &info
		}
	}
	return resp
}

// Create records a newly issued token. The session is active on return.
func (s *SessionService) Create(ctx context.Context, info *tenant.Info, params CreateSessionParams) (*models.UserSession, error) {
	var session *models.UserSession
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		var err error
		session, err = s.CreateTx(tx, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": params.UserID,
		"jti":     logger.ShortID(params.JTI),
	}).Debug("Session created")
	return session, nil
}

// CreateTx inserts the session row inside a transaction the caller already
// bound to a tenant schema.
func (s *SessionService) CreateTx(tx *gorm.DB, params CreateSessionParams) (*models.UserSession, error) {
	now := s.now()
	session := &models.UserSession{
		UserID:     params.UserID,
		TokenJTI:   params.JTI,
		IPAddress:  strPtr(params.IPAddress),
		UserAgent:  strPtr(params.UserAgent),
		CreatedAt:  now,
		LastUsedAt: now,
		ExpiresAt:  params.ExpiresAt,
	}
	if params.DeviceInfo != nil {
		session.DeviceInfo = mustJSON(params.DeviceInfo)
	}
	if err := s.repo.Create(tx, session); err != nil {
		return nil, apperrors.NewStorageError("create session", err)
	}
	return session, nil
}

// Validate returns the active session for jti and touches last_used_at.
// Returns nil when the session is unknown, expired or revoked.
func (s *SessionService) Validate(ctx context.Context, info *tenant.Info, jti string) (*models.UserSession, error) {
	if jti == "" {
		return nil, nil
	}

	var result *models.UserSession
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		session, err := s.repo.GetByJTI(tx, jti)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil
			}
			return apperrors.NewStorageError("load session", err)
		}

		now := s.now()
		if !session.IsActive(now) {
			return nil
		}
		if err := s.repo.Touch(tx, session.ID, now); err != nil {
			return apperrors.NewStorageError("touch session", err)
		}
		session.LastUsedAt = now
		result = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a session by id, or nil when it does not exist.
func (s *SessionService) Get(ctx context.Context, info *tenant.Info, id uuid.UUID) (*models.UserSession, error) {
	var result *models.UserSession
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		session, err := s.repo.GetByID(tx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil
			}
			return apperrors.NewStorageError("load session", err)
		}
		result = session
		return nil
	})
	return result, err
}

// Revoke revokes the session identified by jti. A repeated revoke overwrites
// reason and actor. Returns false when no session matched.
func (s *SessionService) Revoke(ctx context.Context, info *tenant.Info, jti string, reason models.RevocationReason, revokedBy string) (bool, error) {
	if !reason.IsValid() {
		return false, apperrors.NewValidationError("reason", "unknown revocation reason")
	}

	var revoked bool
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		ok, err := s.repo.Revoke(tx, jti, reason, revokedBy, s.now())
		if err != nil {
			return apperrors.NewStorageError("revoke session", err)
		}
		revoked = ok
		return nil
	})
	if err != nil {
		return false, err
	}

	if revoked {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"jti":    logger.ShortID(jti),
			"reason": reason,
		}).Info("Session revoked")
	}
	return revoked, nil
}

// RevokeByID revokes one of the given user's sessions by session id. Sessions
// of other users are reported as not found.
func (s *SessionService) RevokeByID(ctx context.Context, info *tenant.Info, userID int64, id uuid.UUID, reason models.RevocationReason, revokedBy string) (bool, error) {
	if !reason.IsValid() {
		return false, apperrors.NewValidationError("reason", "unknown revocation reason")
	}

	var revoked bool
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		session, err := s.repo.GetByID(tx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil
			}
			return apperrors.NewStorageError("load session", err)
		}
		if session.UserID != userID {
			return nil
		}
		ok, err := s.repo.Revoke(tx, session.TokenJTI, reason, revokedBy, s.now())
		if err != nil {
			return apperrors.NewStorageError("revoke session", err)
		}
		revoked = ok
		return nil
	})
	return revoked, err
}

// RevokeAllForUser revokes every active session of a user except exceptJTI,
// in a single transaction. The count is exactly the sessions revoked by this call.
func (s *SessionService) RevokeAllForUser(ctx context.Context, info *tenant.Info, userID int64, reason models.RevocationReason, revokedBy, exceptJTI string) (int64, error) {
	if !reason.IsValid() {
		return 0, apperrors.NewValidationError("reason", "unknown revocation reason")
	}

	var count int64
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		n, err := s.repo.RevokeAllForUser(tx, userID, exceptJTI, reason, revokedBy, s.now())
		if err != nil {
			return apperrors.NewStorageError("revoke user sessions", err)
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": userID,
		"reason":  reason,
		"count":   count,
	}).Info("User sessions revoked")
	return count, nil
}

// ListForUser returns a user's sessions, newest first.
func (s *SessionService) ListForUser(ctx context.Context, info *tenant.Info, userID int64, activeOnly bool) ([]models.UserSession, error) {
	var sessions []models.UserSession
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		var err error
		sessions, err = s.repo.ListForUser(tx, userID, activeOnly, s.now())
		return apperrors.NewStorageError("list sessions", err)
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// ActiveCount counts a user's active sessions.
func (s *SessionService) ActiveCount(ctx context.Context, info *tenant.Info, userID int64) (int64, error) {
	var count int64
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		var err error
		count, err = s.repo.CountActive(tx, userID, s.now())
		return apperrors.NewStorageError("count sessions", err)
	})
	return count, err
}

// CleanupExpired hard-deletes sessions that expired more than olderThanDays
// days ago. Irreversible.
func (s *SessionService) CleanupExpired(ctx context.Context, info *tenant.Info, olderThanDays int) (int64, error) {
	if olderThanDays < 0 {
		return 0, apperrors.NewValidationError("older_than_days", "must not be negative")
	}
	cutoff := s.now().AddDate(0, 0, -olderThanDays)

	var deleted int64
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		var err error
		deleted, err = s.repo.DeleteExpiredBefore(tx, cutoff)
		return apperrors.NewStorageError("cleanup sessions", err)
	})
	return deleted, err
}

// ListSessions renders a user's sessions for the API.
func (s *SessionService) ListSessions(ctx context.Context, bc *tenant.BaseContext, activeOnly bool) (*SessionListResponse, error) {
	info := bc.Tenant()
	sessions, err := s.ListForUser(ctx, info, bc.User.UserID, activeOnly)
	if err != nil {
		return nil, err
	}
	active, err := s.ActiveCount(ctx, info, bc.User.UserID)
	if err != nil {
		return nil, err
	}

	resp := &SessionListResponse{
		Sessions:    make([]SessionResponse, 0, len(sessions)),
		Total:       len(sessions),
		ActiveCount: active,
	}
	for i := range sessions {
		resp.Sessions = append(resp.Sessions, s.ToResponse(&sessions[i], bc.TokenJTI))
	}
	return resp, nil
}

// GetSession renders one of the caller's sessions. Other users' sessions are not found.
func (s *SessionService) GetSession(ctx context.Context, bc *tenant.BaseContext, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.Get(ctx, bc.Tenant(), id)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != bc.User.UserID {
		return nil, apperrors.ErrSessionNotFound
	}
	resp := s.ToResponse(session, bc.TokenJTI)
	return &resp, nil
}

// RevokeSession revokes one of the caller's sessions.
func (s *SessionService) RevokeSession(ctx context.Context, bc *tenant.BaseContext, id uuid.UUID) error {
	ok, err := s.RevokeByID(ctx, bc.Tenant(), bc.User.UserID, id, models.RevocationUserLogout, bc.User.Email)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// RevokeAllSessions revokes the caller's sessions, optionally keeping the current one.
func (s *SessionService) RevokeAllSessions(ctx context.Context, bc *tenant.BaseContext, exceptCurrent bool) (int64, error) {
	except := ""
	if exceptCurrent {
		except = bc.TokenJTI
	}
	return s.RevokeAllForUser(ctx, bc.Tenant(), bc.User.UserID, models.RevocationUserLogoutAll, bc.User.Email, except)
}
