package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// MinJWTSecretLength is the shortest signing secret the service accepts.
const MinJWTSecretLength = 32

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL          string `mapstructure:"DATABASE_URL"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         string `mapstructure:"DB_PORT"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseSSLMode      string `mapstructure:"DB_SSL_MODE"`
	DatabaseMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`

	// JWT configuration
	JWTSecret             string `mapstructure:"JWT_SECRET_KEY"`
	AccessTokenTTLMinutes int    `mapstructure:"ACCESS_TOKEN_TTL_MINUTES"`

	// Domains
	AppDomain     string `mapstructure:"APP_DOMAIN"`
	APIDomain     string `mapstructure:"API_DOMAIN"`
	WebsiteDomain string `mapstructure:"WEBSITE_DOMAIN"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Proxies whose X-Forwarded-For header is believed when recording client IPs
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Tenant lookup cache (disabled when REDIS_URL is empty)
	RedisURL              string `mapstructure:"REDIS_URL"`
	TenantCacheTTLSeconds int    `mapstructure:"TENANT_CACHE_TTL_SECONDS"`

	// Session retention
	SessionRetentionDays         int `mapstructure:"SESSION_RETENTION_DAYS"`
	SessionReaperIntervalMinutes int `mapstructure:"SESSION_REAPER_INTERVAL_MINUTES"`

	// Invitations
	InvitationTTLHours int `mapstructure:"INVITATION_TTL_HOURS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "kubera")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)

	// JWT defaults (no secret default: it must be provided)
	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 30)

	v.SetDefault("APP_DOMAIN", "localhost")
	v.SetDefault("API_DOMAIN", "localhost")
	v.SetDefault("WEBSITE_DOMAIN", "http://localhost:5173")

	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("TRUSTED_PROXIES", []string{"127.0.0.1", "::1"})

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("TENANT_CACHE_TTL_SECONDS", 60)

	v.SetDefault("SESSION_RETENTION_DAYS", 30)
	v.SetDefault("SESSION_REAPER_INTERVAL_MINUTES", 0)

	v.SetDefault("INVITATION_TTL_HOURS", 72)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if len(config.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d bytes long", MinJWTSecretLength)
	}

	if config.DatabaseURL == "" {
		return fmt.Errorf("database url is required")
	}

	if config.AccessTokenTTLMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL_MINUTES must be positive")
	}

	if config.SessionRetentionDays < 0 {
		return fmt.Errorf("SESSION_RETENTION_DAYS must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AccessTokenTTL returns the lifetime of issued access tokens.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// TenantCacheTTL returns how long tenant lookups stay cached.
func (c *Config) TenantCacheTTL() time.Duration {
	return time.Duration(c.TenantCacheTTLSeconds) * time.Second
}

// SessionReaperInterval returns the cleanup period, zero when the reaper is disabled.
func (c *Config) SessionReaperInterval() time.Duration {
	return time.Duration(c.SessionReaperIntervalMinutes) * time.Minute
}

// InvitationTTL returns how long an invitation token stays valid.
func (c *Config) InvitationTTL() time.Duration {
	return time.Duration(c.InvitationTTLHours) * time.Hour
}
