package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmodel "aura-ugc-engine/internal/domains/auth/model"
)

func TestLoadDefaults(t *testing.T) {
	// getEnv treats empty as unset, so Setenv("") exercises the defaults
	// and restores the caller's environment afterwards.
	t.Setenv("APP_ENV", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("AURA_CORE_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "phi3", cfg.AuraCore.Model)
	assert.Equal(t, 12*time.Second, cfg.AuraCore.Timeout)
}

// The default admin email must survive the login DTO's validation,
// otherwise a default-configured moderator can never sign in.
func TestDefaultAdminEmailIsLoginable(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)

	req := authmodel.LoginRequest{Email: cfg.Admin.Email, Password: "placeholder"}
	require.NoError(t, req.Validate())
}

func TestValidateRejectsShortScorerTimeout(t *testing.T) {
	t.Setenv("AURA_CORE_TIMEOUT", "200ms")

	_, err := Load()
	require.Error(t, err)
}

func TestValidateProductionGuards(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "your-secret-key-change-in-production")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err = Load()
	require.Error(t, err)
}
