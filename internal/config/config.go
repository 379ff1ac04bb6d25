package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultPort           = "8000"
	DefaultSecretKey      = "dev-secret-key-change-me"
	DefaultTokenTTL       = 30 // minutes
	DefaultAllowedOrigins = "http://localhost:5173"
	DefaultProfileTTL     = 5 * time.Minute
)

// Config is built once at startup and treated as read-only afterwards.
type Config struct {
	Port     string
	Auth     AuthConfig
	CORS     CORSConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Email    EmailConfig
	Logging  LoggingConfig
}

type AuthConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	BcryptCost     int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type DatabaseConfig struct {
	// Driver is "postgres" for the managed store or "sqlite" for local runs.
	Driver string
	DSN    string
}

type RedisConfig struct {
	URL        string
	Host       string
	Port       string
	Password   string
	DB         int
	ProfileTTL time.Duration
}

// Enabled reports whether a Redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Host != ""
}

type NATSConfig struct {
	URL string
}

type EmailConfig struct {
	SendGridAPIKey string
	SenderName     string
	SenderAddress  string
}

type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

func Load() *Config {
	return &Config{
		Port: GetEnvAsString("PORT", DefaultPort),
		Auth: AuthConfig{
			SecretKey:      GetEnvAsString("SECRET_KEY", DefaultSecretKey),
			AccessTokenTTL: time.Duration(GetEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", DefaultTokenTTL)) * time.Minute,
			BcryptCost:     GetEnvAsInt("BCRYPT_COST", 0),
		},
		CORS: CORSConfig{
			AllowedOrigins: GetEnvAsList("ALLOWED_ORIGINS", DefaultAllowedOrigins),
		},
		Database: DatabaseConfig{
			Driver: GetEnvAsString("DATABASE_DRIVER", "postgres"),
			DSN:    GetEnvAsString("DATABASE_URL", GetEnvAsString("SUPABASE_DB_URL", "")),
		},
		Redis: RedisConfig{
			URL:        GetEnvAsString("REDIS_URL", ""),
			Host:       GetEnvAsString("REDIS_HOST", ""),
			Port:       GetEnvAsString("REDIS_PORT", "6379"),
			Password:   GetEnvAsString("REDIS_PASSWORD", ""),
			DB:         GetEnvAsInt("REDIS_DB", 0),
			ProfileTTL: GetEnvAsDuration("PROFILE_CACHE_TTL", DefaultProfileTTL),
		},
		NATS: NATSConfig{
			URL: GetEnvAsString("NATS_URL", ""),
		},
		Email: EmailConfig{
			SendGridAPIKey: GetEnvAsString("SENDGRID_API_KEY", ""),
			SenderName:     GetEnvAsString("EMAIL_SENDER_NAME", "CribHunter"),
			SenderAddress:  GetEnvAsString("EMAIL_SENDER", ""),
		},
		Logging: LoggingConfig{
			Level:  GetEnvAsString("LOG_LEVEL", "info"),
			Format: GetEnvAsString("LOG_FORMAT", "json"),
			Output: GetEnvAsString("LOG_OUTPUT", "stdout"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Auth.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %s", c.Auth.AccessTokenTTL)
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

// UsesDefaultSecret reports whether the development signing key is in use.
func (c *Config) UsesDefaultSecret() bool {
	return c.Auth.SecretKey == DefaultSecretKey
}
