package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"kubera-backend/internal/config"
	apperrors "kubera-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer = "kubera-backend"
	jtiBytes    = 32
)

// Claims is the signed claim set of an access token. Subject carries the
// user's email and ID the session JTI.
type Claims struct {
	UserID          int64  `json:"user_id"`
	TenantID        int64  `json:"tenant_id"`
	TenantSubdomain string `json:"tenant_subdomain"`
	jwt.RegisteredClaims
}

// Email returns the subject of the token.
func (c *Claims) Email() string {
	return c.Subject
}

// JTI returns the token identifier used to track the session.
func (c *Claims) JTI() string {
	return c.ID
}

// TokenService issues and verifies HS256 access tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service. The secret must be at least
// config.MinJWTSecretLength bytes.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < config.MinJWTSecretLength {
		return nil, apperrors.ErrSecretTooShort
	}
	if ttl <= 0 {
		return nil, apperrors.NewConfigurationError("access token ttl must be positive")
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// MustNewTokenService is NewTokenService that panics on a bad configuration.
func MustNewTokenService(secret string, ttl time.Duration) *TokenService {
	svc, err := NewTokenService(secret, ttl)
	if err != nil {
		panic(err)
	}
	return svc
}

// TTL returns the default token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// NewJTI returns 32 random bytes as unpadded URL-safe base64.
func NewJTI() (string, error) {
	buf := make([]byte, jtiBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate jti: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Issue signs claims. A zero ttl uses the service default and an empty jti
// is generated. Returns the token, its expiry and the jti embedded in it.
func (s *TokenService) Issue(claims *Claims, ttl time.Duration, jti string) (string, time.Time, string, error) {
	if claims == nil || claims.Subject == "" {
		return "", time.Time{}, "", apperrors.NewValidationError("sub", "is required")
	}
	if ttl <= 0 {
		ttl = s.ttl
	}
	if jti == "" {
		var err error
		if jti, err = NewJTI(); err != nil {
			return "", time.Time{}, "", err
		}
	}

	now := s.now()
	expiresAt := now.Add(ttl)
	signed := *claims
	signed.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.Subject,
		Issuer:    tokenIssuer,
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &signed)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, signed.ExpiresAt.Time, jti, nil
}

// Verify validates the signature and expiry of a token and returns its
// claims. Tokens without a subject are invalid.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Subject == "" || claims.UserID == 0 || claims.TenantID == 0 {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
