package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		ShutdownGracePeriod:  time.Second,
		DatabaseDriver:       "sqlite",
		DatabaseURL:          filepath.Join(dir, "portal.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		Issuer:               "portal-test",
		SigningKeyFile:       filepath.Join(dir, "keys", "signing.pem"),
		AccessTokenTTL:       time.Hour,
		BootstrapToken:       "boot",
		AppURL:               "http://portal.test",
		OutboxInterval:       time.Hour,
		HousekeepingInterval: time.Hour,
		InviteDefaultTTLDays: 7,
	}
}

func TestApplicationServesAndStops(t *testing.T) {
	cfg := testConfig(t)
	app, err := New(context.Background(), cfg)
	require.NoError(t, err)

	app.Start()
	srv := httptest.NewServer(app.Handler())
	t.Cleanup(func() {
		srv.Close()
		app.Stop()
		require.NoError(t, app.Close())
	})

	ctx := context.Background()
	c := portalapi.NewClient(srv.URL)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	_, err = c.Bootstrap(ctx, "boot", portalapi.BootstrapRequest{Email: "owner@example.com", Password: "owner-password"})
	require.NoError(t, err)

	tok, err := c.Login(ctx, "owner@example.com", "owner-password")
	require.NoError(t, err)
	require.Equal(t, "admin", tok.Role)

	_, err = c.Plans(ctx)
	require.NoError(t, err)

	_, err = c.WithToken(tok.AccessToken).Checkout(ctx, "growth")
	require.Equal(t, http.StatusForbidden, portalapi.StatusCode(err))
}

func TestSigningKeyPersistsAcrossRestarts(t *testing.T) {
	cfg := testConfig(t)
	logger := discardLogger()

	first, err := InitSigningKeys(cfg, logger)
	require.NoError(t, err)
	second, err := InitSigningKeys(cfg, logger)
	require.NoError(t, err)
	require.Equal(t, first.Signer.KID(), second.Signer.KID())

	cfg.SigningKeyFile = ""
	ephemeral, err := InitSigningKeys(cfg, logger)
	require.NoError(t, err)
	require.NotEqual(t, first.Signer.KID(), ephemeral.Signer.KID())
}

func discardLogger() *slog.Logger {
	return slogx.Discard()
}
