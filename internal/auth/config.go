package auth

import (
	"time"

	"kubera-backend/internal/config"
	apperrors "kubera-backend/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds the authentication settings derived from the application config
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret" json:"-"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" json:"access_token_ttl"`
	BcryptCost     int           `yaml:"bcrypt_cost" json:"bcrypt_cost"`
}

// NewAuthConfig extracts the auth settings from cfg
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:      cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL(),
		BcryptCost:     bcrypt.DefaultCost,
	}
}

// ValidateConfig validates the auth configuration
func (c *AuthConfig) ValidateConfig() error {
	if len(c.JWTSecret) < config.MinJWTSecretLength {
		return apperrors.ErrSecretTooShort
	}
	if c.AccessTokenTTL <= 0 {
		return apperrors.NewConfigurationError("access token ttl must be positive")
	}
	if c.BcryptCost != 0 && (c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost) {
		return apperrors.NewConfigurationError("bcrypt cost out of range")
	}
	return nil
}
