package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/idx"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

// MaxMessageLength caps a message body in bytes.
const MaxMessageLength = 10000

type MessageService struct {
	Store  store.Store
	Access *AccessService
	Notify *NotificationService
	Now    func() time.Time
}

func (s *MessageService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Post stores a message from the caller and notifies the other side.
func (s *MessageService) Post(ctx context.Context, userID string, role domain.Role, clientID, body string) (domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Message{}, invalid("body is required")
	}
	if len(body) > MaxMessageLength {
		return domain.Message{}, invalid("body must be at most %d characters", MaxMessageLength)
	}

	c, err := s.Access.ResolveClient(ctx, userID, role, clientID)
	if err != nil {
		return domain.Message{}, err
	}

	sender := domain.SenderClient
	if role == domain.RoleAdmin {
		sender = domain.SenderAdmin
	}

	m := domain.Message{
		ID:        idx.NewString(),
		ClientID:  c.ID,
		SenderID:  userID,
		Body:      body,
		CreatedAt: s.now(),
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Messages().CreateMessage(ctx, m); err != nil {
			return err
		}
		if s.Notify == nil {
			return nil
		}
		if _, err := s.Notify.Message(ctx, tx, c, sender, body); err != nil {
			// The message itself is what matters; a missing admin address
			// only loses the email.
			slogx.FromContext(ctx).Warn("message notification not queued", slog.Any("error", err))
		}
		return nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	return m, nil
}

func (s *MessageService) List(ctx context.Context, userID string, role domain.Role, clientID string) ([]domain.Message, error) {
	c, err := s.Access.ResolveClient(ctx, userID, role, clientID)
	if err != nil {
		return nil, err
	}
	return s.Store.Messages().ListMessages(ctx, c.ID)
}

// UnreadCount counts messages the caller has not read. Admins without a
// client_id get the count across every client.
func (s *MessageService) UnreadCount(ctx context.Context, userID string, role domain.Role, clientID string) (int, error) {
	if role == domain.RoleAdmin && clientID == "" {
		return s.Store.Messages().CountUnread(ctx, "", userID)
	}
	c, err := s.Access.ResolveClient(ctx, userID, role, clientID)
	if err != nil {
		return 0, err
	}
	return s.Store.Messages().CountUnread(ctx, c.ID, userID)
}

func (s *MessageService) MarkRead(ctx context.Context, userID string, role domain.Role, clientID string) (int, error) {
	c, err := s.Access.ResolveClient(ctx, userID, role, clientID)
	if err != nil {
		return 0, err
	}
	return s.Store.Messages().MarkRead(ctx, c.ID, userID)
}
