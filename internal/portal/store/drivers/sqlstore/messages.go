package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type messagesRepo struct{ conn }

func (r messagesRepo) CreateMessage(ctx context.Context, m domain.Message) error {
	_, err := r.exec(ctx,
		`INSERT INTO messages (id, client_id, sender_id, body, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.ClientID, m.SenderID, m.Body, m.Read, ts(m.CreatedAt),
	)
	return err
}

func (r messagesRepo) ListMessages(ctx context.Context, clientID string) ([]domain.Message, error) {
	rows, err := r.query(ctx,
		`SELECT id, client_id, sender_id, body, is_read, created_at
		 FROM messages WHERE client_id = ? ORDER BY created_at, id`, clientID)
	if err != nil {
		return nil, err
	}
	return collect(r.conn, rows, func(s scanner) (domain.Message, error) {
		var m domain.Message
		err := s.Scan(&m.ID, &m.ClientID, &m.SenderID, &m.Body, &m.Read, &m.CreatedAt)
		m.CreatedAt = m.CreatedAt.UTC()
		return m, err
	})
}

func (r messagesRepo) CountUnread(ctx context.Context, clientID, readerID string) (int, error) {
	if clientID == "" {
		return r.count(ctx,
			`SELECT COUNT(*) FROM messages WHERE is_read = ? AND sender_id <> ?`, false, readerID)
	}
	return r.count(ctx,
		`SELECT COUNT(*) FROM messages WHERE client_id = ? AND is_read = ? AND sender_id <> ?`,
		clientID, false, readerID)
}

func (r messagesRepo) MarkRead(ctx context.Context, clientID, readerID string) (int, error) {
	return r.execCount(ctx,
		`UPDATE messages SET is_read = ? WHERE client_id = ? AND is_read = ? AND sender_id <> ?`,
		true, clientID, false, readerID)
}

func (r messagesRepo) DeleteMessagesByClient(ctx context.Context, clientID string) (int, error) {
	return r.execCount(ctx, `DELETE FROM messages WHERE client_id = ?`, clientID)
}
