package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/service"
	"kubera-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	ua "github.com/mileusna/useragent"
	"gorm.io/gorm"
)

// Hasher is the password hasher used by AuthService. DummyVerify is called
// for unknown users and accounts without a password so that the response
// time matches a real check.
type Hasher interface {
	service.PasswordHasher
	DummyVerify(password string)
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// ClientMeta describes where a request came from.
type ClientMeta struct {
	Host      string
	IPAddress string
	UserAgent string
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresIn   int64                `json:"expires_in"`
	ExpiresAt   time.Time            `json:"expires_at"`
	User        service.UserResponse `json:"user"`
	Tenant      tenant.Info          `json:"tenant"`
}

// AuthService signs users in to their tenant and turns bearer tokens back
// into a request context.
type AuthService struct {
	tenants   service.TenantServiceInterface
	runner    tenant.Runner
	users     repository.TenantUserRepositoryInterface
	sessions  *service.SessionService
	audit     *service.AuditService
	tokens    *TokenService
	hasher    Hasher
	validator *validator.Validate
	now       service.Clock
}

// NewAuthService creates a new auth service
func NewAuthService(
	tenants service.TenantServiceInterface,
	runner tenant.Runner,
	users repository.TenantUserRepositoryInterface,
	sessions *service.SessionService,
	audit *service.AuditService,
	tokens *TokenService,
	hasher Hasher,
	validator *validator.Validate,
) *AuthService {
	return &AuthService{
		tenants:   tenants,
		runner:    runner,
		users:     users,
		sessions:  sessions,
		audit:     audit,
		tokens:    tokens,
		hasher:    hasher,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock.
func (s *AuthService) WithClock(now service.Clock) *AuthService {
	s.now = now
	s.tokens.now = now
	return s
}

// Login verifies credentials inside the tenant named by the request host and
// opens a tracked session.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest, meta ClientMeta) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("email", "email and password are required")
	}

	subdomain := tenant.ResolveSubdomain(meta.Host)
	if subdomain == tenant.Public {
		return nil, apperrors.ErrTenantSubdomainRequired
	}

	t, err := s.tenants.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if !t.Status.CanAuthenticate() {
		return nil, apperrors.ErrTenantInactive
	}
	info := tenant.InfoFromModel(t)
	ctx = tenant.WithTenant(ctx, info)
	log := logger.WithContext(ctx).WithField("tenant", info.Subdomain)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var user *models.TenantUser
	err = s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		u, err := s.users.GetByEmail(tx, email)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil
			}
			return apperrors.NewStorageError("load user", err)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if user == nil {
		s.hasher.DummyVerify(req.Password)
		log.Info("Login failed: unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}
	// Exactly one hash operation per attempt, whatever the account state.
	verified := false
	if user.PasswordHash != nil {
		verified = s.hasher.Verify(req.Password, *user.PasswordHash)
	} else {
		s.hasher.DummyVerify(req.Password)
	}
	if !verified || !user.IsActive {
		log.WithField("user_id", user.ID).Info("Login failed: bad credentials or inactive user")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, jti, err := s.tokens.Issue(&Claims{
		UserID:           user.ID,
		TenantID:         info.ID,
		TenantSubdomain:  info.Subdomain,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.Email},
	}, 0, "")
	if err != nil {
		return nil, err
	}

	now := s.now()
	userID := user.ID
	err = s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		if _, err := s.sessions.CreateTx(tx, service.CreateSessionParams{
			UserID:     user.ID,
			JTI:        jti,
			ExpiresAt:  expiresAt,
			IPAddress:  meta.IPAddress,
			UserAgent:  meta.UserAgent,
			DeviceInfo: DeviceInfoFromUserAgent(meta.UserAgent),
		}); err != nil {
			return err
		}
		if err := s.users.UpdateLastLogin(tx, user.ID, now); err != nil {
			return apperrors.NewStorageError("update last login", err)
		}
		return s.audit.Record(tx, service.AuditEntry{
			UserID:       &userID,
			Action:       service.AuditUserLogin,
			ResourceType: "user",
			ResourceID:   strconv.FormatInt(user.ID, 10),
			IPAddress:    meta.IPAddress,
			UserAgent:    meta.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	user.LastLogin = &now

	log.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"jti":     logger.ShortID(jti),
	}).Info("User logged in")

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
		ExpiresAt:   expiresAt,
		User:        service.ToUserResponse(user),
		Tenant:      *info,
	}, nil
}

// Logout revokes the caller's current session.
func (s *AuthService) Logout(ctx context.Context, bc *tenant.BaseContext) error {
	_, err := s.sessions.Revoke(ctx, bc.Tenant(), bc.TokenJTI, models.RevocationUserLogout, bc.User.Email)
	return err
}

// ChangePassword replaces the caller's password and revokes every other
// session of theirs. Returns the number of sessions revoked.
func (s *AuthService) ChangePassword(ctx context.Context, bc *tenant.BaseContext, req *ChangePasswordRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, apperrors.NewValidationError("new_password", "must be between 8 and 128 characters")
	}

	info := bc.Tenant()
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		user, err := s.users.GetByID(tx, bc.User.UserID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.NewStorageError("load user", err)
		}
		if user.PasswordHash == nil || !s.hasher.Verify(req.CurrentPassword, *user.PasswordHash) {
			return apperrors.ErrInvalidCredentials
		}

		hash, err := s.hasher.Hash(req.NewPassword)
		if err != nil {
			return err
		}
		if err := s.users.UpdatePassword(tx, user.ID, hash); err != nil {
			return apperrors.NewStorageError("update password", err)
		}
		return s.audit.Record(tx, service.EntryFor(bc, service.AuditUserPasswordChange, "user", strconv.FormatInt(user.ID, 10), nil))
	})
	if err != nil {
		return 0, err
	}

	return s.sessions.RevokeAllForUser(ctx, info, bc.User.UserID, models.RevocationPasswordChange, bc.User.Email, bc.TokenJTI)
}

// Authenticate turns a bearer token into the request's BaseContext. The
// token's tenant must still exist under the same subdomain, the request host
// must not name a different tenant, the user must be active and the session
// behind the token must not be revoked or expired.
func (s *AuthService) Authenticate(ctx context.Context, token string, meta ClientMeta) (*tenant.BaseContext, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	t, err := s.tenants.GetByID(ctx, claims.TenantID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidTenantToken
		}
		return nil, err
	}
	if t.Subdomain != claims.TenantSubdomain {
		return nil, apperrors.ErrInvalidTenantToken
	}

	if requested := tenant.ResolveSubdomain(meta.Host); requested != tenant.Public && requested != t.Subdomain {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"token_tenant":     t.Subdomain,
			"requested_tenant": requested,
		}).Warn("Cross-tenant token rejected")
		return nil, apperrors.ErrTenantDomainMismatch
	}
	if !t.Status.CanAuthenticate() {
		return nil, apperrors.ErrTenantInactive
	}

	info := tenant.InfoFromModel(t)
	var user *models.TenantUser
	err = s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		u, err := s.users.GetByID(tx, claims.UserID)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil
			}
			return apperrors.NewStorageError("load user", err)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !strings.EqualFold(user.Email, claims.Email()) {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.JTI() == "" {
		return nil, apperrors.ErrSessionTrackingMiss
	}
	session, err := s.sessions.Validate(ctx, info, claims.JTI())
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != user.ID {
		return nil, apperrors.ErrSessionRevoked
	}

	return &tenant.BaseContext{
		User: tenant.RequestUser{
			UserID:    user.ID,
			Email:     user.Email,
			FirstName: derefString(user.FirstName),
			LastName:  derefString(user.LastName),
			Role:      user.Role,
			IsOwner:   user.IsOwner,
			Tenant:    *info,
		},
		Authorization: tenant.NewAuthorization(user.Role, user.IsOwner),
		IPAddress:     meta.IPAddress,
		UserAgent:     meta.UserAgent,
		TokenJTI:      claims.JTI(),
	}, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DeviceInfoFromUserAgent extracts platform and browser from a User-Agent
// header. Returns nil for an empty user agent.
func DeviceInfoFromUserAgent(header string) *models.DeviceInfo {
	if header == "" {
		return nil
	}
	parsed := ua.Parse(header)
	return &models.DeviceInfo{
		Platform: parsed.OS,
		Browser:  parsed.Name,
		Version:  parsed.Version,
		IsMobile: parsed.Mobile || parsed.Tablet,
	}
}
