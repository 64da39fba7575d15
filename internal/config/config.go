package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables; .env is applied in main.
type Config struct {
	App      AppConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	AuraCore AuraCoreConfig
	Tenants  TenantConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // hours
}

// AdminConfig is the moderator credential boundary.
// PasswordHash is a bcrypt hash; plaintext is never configured.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// AuraCoreConfig points at the external scoring collaborator.
// Timeout bounds the single outbound call; the heuristic fallback
// takes over when it elapses.
type AuraCoreConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// TenantConfig is the data-driven plan table: sites listed in
// AURA_PRO_SITES get the "pro" plan, everyone else is "starter".
type TenantConfig struct {
	ProSites []string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("AURA_CORE_TIMEOUT", "12s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AURA_CORE_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "AURA UGC Engine"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "4001"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 12), // hours
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "moderator@example.com"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		AuraCore: AuraCoreConfig{
			BaseURL: getEnv("AURA_CORE_URL", "http://localhost:4100"),
			Model:   getEnv("AURA_CORE_MODEL", "phi3"),
			Timeout: timeout,
		},
		Tenants: TenantConfig{
			ProSites: getEnvList("AURA_PRO_SITES"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configuration that is unsafe to run with.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Admin.PasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	// Sub-second deadlines would send nearly every submission to the
	// heuristic fallback.
	if c.AuraCore.Timeout < 1*time.Second {
		return fmt.Errorf("AURA_CORE_TIMEOUT too small: %s", c.AuraCore.Timeout)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
