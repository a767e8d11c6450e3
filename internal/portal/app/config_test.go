package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "sqlite", cfg.DatabaseDriver)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, 10*time.Second, cfg.OutboxInterval)
	require.Equal(t, 7, cfg.InviteDefaultTTLDays)
	require.Empty(t, cfg.BootstrapToken)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://portal@localhost/portal")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("HOUSEKEEPING_INTERVAL", "30")
	t.Setenv("USE_TEST_EMAIL", "true")
	t.Setenv("TEST_EMAIL_ADDRESS", "qa@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "postgres", cfg.DatabaseDriver)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 30*time.Minute, cfg.HousekeepingInterval)
	require.True(t, cfg.UseTestEmail)
}

func TestLoadConfigFileIsOverriddenByEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: 9090\nADMIN_EMAIL: books@example.com\n"), 0o600))
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("PORT", "9191")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Port)
	require.Equal(t, "books@example.com", cfg.AdminEmail)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("USE_TEST_EMAIL", "true")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "TEST_EMAIL_ADDRESS")
}
