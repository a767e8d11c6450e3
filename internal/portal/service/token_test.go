package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/jwtx"
)

func TestLoginIssuesVerifiableToken(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("k1", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, "portal", []string{"portal-api"})

	svc := &TokenService{
		Store: e.store, Identities: e.ids, Signer: signer,
		Issuer: "portal", Audience: []string{"portal-api"}, TTL: 15 * time.Minute,
	}

	res, err := e.clients.Create(ctx, CreateClientRequest{Name: "Login", Email: "login@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	tok, err := svc.Login(ctx, "LOGIN@example.com", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, tok.Role)
	require.Equal(t, int64(900), tok.ExpiresIn)

	claims, err := verifier.Verify(tok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, res.Client.UserID, claims.Subject)
	require.Equal(t, "client", claims.Role)

	_, err = svc.Login(ctx, "login@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "correct-horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBootstrap(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	disabled := &BootstrapService{Store: e.store, Identities: e.ids}
	_, err := disabled.Bootstrap(ctx, "", "a@example.com", "password123", "A")
	require.ErrorIs(t, err, ErrBootstrapDisabled)

	svc := &BootstrapService{Store: e.store, Identities: e.ids, Token: "boot"}
	_, err = svc.Bootstrap(ctx, "nope", "a@example.com", "password123", "A")
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)

	id, err := svc.Bootstrap(ctx, "boot", "first@example.com", "password123", "First Admin")
	require.NoError(t, err)

	role, err := e.access.RoleOf(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "admin", role)

	_, err = svc.Bootstrap(ctx, "boot", "second@example.com", "password123", "Second")
	require.ErrorIs(t, err, ErrBootstrapAlready)
}

func TestRoleOfUnknownUserFails(t *testing.T) {
	e := newEnv(t)
	_, err := e.access.RoleOf(context.Background(), "nobody")
	require.Error(t, err)
}
