package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/jwtx"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

type TokenResult struct {
	AccessToken string
	ExpiresIn   int64 // seconds
	Role        domain.Role
	UserID      string
}

// TokenService issues access tokens for password logins.
type TokenService struct {
	Store      store.Store
	Identities *IdentityService
	Signer     jwtx.Signer
	Issuer     string
	Audience   []string
	TTL        time.Duration
	Now        func() time.Time
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *TokenService) Login(ctx context.Context, email, password string) (TokenResult, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return TokenResult{}, invalid("email and password are required")
	}

	ident, err := s.Identities.Authenticate(ctx, email, password)
	if err != nil {
		return TokenResult{}, err
	}

	// An identity without a profile was left behind by a failed signup. It
	// cannot be authorized for anything, so refuse the login.
	profile, err := s.Store.Profiles().GetProfile(ctx, ident.ID)
	if err != nil {
		log.Warn("login for identity without profile", slog.String("user_id", ident.ID), slog.Any("error", err))
		return TokenResult{}, ErrInvalidCredentials
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewAccessClaims(ident.ID, ident.Email, string(profile.Role), ttl, s.Issuer, s.Audience, s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return TokenResult{}, err
	}

	log.Info("access token issued", slog.String("user_id", ident.ID), slog.String("role", string(profile.Role)))
	return TokenResult{
		AccessToken: token,
		ExpiresIn:   int64(ttl / time.Second),
		Role:        profile.Role,
		UserID:      ident.ID,
	}, nil
}
