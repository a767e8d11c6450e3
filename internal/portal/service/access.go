package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
)

// AccessService answers who a caller is and which client rows they may touch.
type AccessService struct {
	Store store.Store
}

// RoleOf returns the caller's profile role. A missing profile is an error so
// that the role guard fails closed.
func (s *AccessService) RoleOf(ctx context.Context, userID string) (string, error) {
	p, err := s.Store.Profiles().GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return string(p.Role), nil
}

// ClientFor returns the client row owned by userID.
func (s *AccessService) ClientFor(ctx context.Context, userID string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	return c, err
}

// ResolveClient picks the client a request acts on. Admins must name one;
// clients act on their own row and may not name another.
func (s *AccessService) ResolveClient(ctx context.Context, userID string, role domain.Role, clientID string) (domain.Client, error) {
	if role == domain.RoleAdmin {
		if clientID == "" {
			return domain.Client{}, invalid("client_id is required")
		}
		c, err := s.Store.Clients().GetClient(ctx, clientID)
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return c, err
	}

	c, err := s.ClientFor(ctx, userID)
	if err != nil {
		return domain.Client{}, err
	}
	if clientID != "" && clientID != c.ID {
		return domain.Client{}, ErrForbidden
	}
	return c, nil
}
