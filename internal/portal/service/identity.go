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
	"github.com/aussiebroadwan/clientportal/pkg/idx"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// MinPasswordLength applies to passwords chosen by users.
const MinPasswordLength = 8

// IdentityProvider manages logins. Client lifecycle only depends on this
// interface so tests can substitute failures.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email, password string) (domain.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
	GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error)
}

type IdentityService struct {
	Store store.Store
}

var _ IdentityProvider = (*IdentityService)(nil)

func (s *IdentityService) CreateIdentity(ctx context.Context, email, password string) (domain.Identity, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Identity{}, err
	}

	ident := domain.Identity{
		ID:           idx.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Identities().CreateIdentity(ctx, ident); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Identity{}, ErrEmailTaken
		}
		return domain.Identity{}, err
	}
	return ident, nil
}

func (s *IdentityService) DeleteIdentity(ctx context.Context, id string) error {
	err := s.Store.Identities().DeleteIdentity(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func (s *IdentityService) GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return s.Store.Identities().GetIdentityByEmail(ctx, email)
}

// Authenticate checks a password login and returns the identity.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (domain.Identity, error) {
	ident, err := s.Store.Identities().GetIdentityByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Identity{}, err
	}
	if err := cryptox.VerifyPassword(password, ident.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.Identity{}, ErrInvalidCredentials
		}
		return domain.Identity{}, err
	}
	return ident, nil
}
