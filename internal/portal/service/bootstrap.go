package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapDisabled     = errors.New("bootstrap is disabled")
)

type BootstrapService struct {
	Store      store.Store
	Identities IdentityProvider
	Token      string // BOOTSTRAP_TOKEN; empty disables the endpoint
}

// IsBootstrapped reports whether any profile exists.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	n, err := s.Store.Profiles().CountProfiles(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Bootstrap creates the first admin. It returns the new admin's user id.
func (s *BootstrapService) Bootstrap(ctx context.Context, token, email, password, fullName string) (string, error) {
	log := slogx.FromContext(ctx)

	if s.Token == "" {
		return "", ErrBootstrapDisabled
	}
	if !cryptox.EqualTokens(token, s.Token) {
		log.Warn("unauthorized bootstrap attempt")
		return "", ErrBootstrapUnauthorized
	}

	done, err := s.IsBootstrapped(ctx)
	if err != nil {
		return "", err
	}
	if done {
		log.Warn("attempted bootstrap on already-bootstrapped system")
		return "", ErrBootstrapAlready
	}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", invalid("a valid email is required")
	}
	if len(password) < MinPasswordLength {
		return "", invalid("password must be at least %d characters", MinPasswordLength)
	}

	ident, err := s.Identities.CreateIdentity(ctx, email, password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	err = s.Store.Profiles().CreateProfile(ctx, domain.Profile{
		ID:        ident.ID,
		Email:     ident.Email,
		FullName:  fullName,
		Role:      domain.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Error("failed to create admin profile", slog.Any("error", err))
		if derr := s.Identities.DeleteIdentity(context.WithoutCancel(ctx), ident.ID); derr != nil {
			log.Error("failed to remove identity after profile failure", slog.Any("error", derr))
		}
		return "", err
	}

	log.Info("system bootstrapped", slog.String("admin_user_id", ident.ID))
	return ident.ID, nil
}
