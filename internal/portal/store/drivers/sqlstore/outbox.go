package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
)

type outboxRepo struct{ conn }

const outboxColumns = `id, kind, recipient, payload, status, attempts, last_error, next_attempt_at, created_at, sent_at`

func (r outboxRepo) Enqueue(ctx context.Context, e domain.OutboxEntry) error {
	payload, err := json.Marshal(e.Notification.Data)
	if err != nil {
		return fmt.Errorf("outbox: encode payload: %w", err)
	}
	_, err = r.exec(ctx,
		`INSERT INTO notification_outbox (`+outboxColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Notification.Kind), e.Notification.Recipient, string(payload), string(e.Status),
		e.Attempts, nullString(e.LastError), ts(e.NextAttemptAt), ts(e.CreatedAt), nullTime(e.SentAt),
	)
	return err
}

func (r outboxRepo) ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]domain.OutboxEntry, error) {
	rows, err := r.query(ctx,
		`SELECT `+outboxColumns+` FROM notification_outbox
		 WHERE status = ? AND next_attempt_at <= ?
		 ORDER BY next_attempt_at, id LIMIT ?`,
		string(domain.OutboxPending), ts(now), limit,
	)
	if err != nil {
		return nil, err
	}
	due, err := collect(r.conn, rows, scanOutbox)
	if err != nil {
		return nil, err
	}

	claimed := due[:0]
	for _, e := range due {
		// Compare-and-set on next_attempt_at so a concurrent worker that read
		// the same row loses the race.
		n, err := r.execCount(ctx,
			`UPDATE notification_outbox SET next_attempt_at = ?
			 WHERE id = ? AND status = ? AND next_attempt_at = ?`,
			ts(leaseUntil), e.ID, string(domain.OutboxPending), ts(e.NextAttemptAt),
		)
		if err != nil {
			return nil, err
		}
		if n == 1 {
			e.NextAttemptAt = ts(leaseUntil)
			claimed = append(claimed, e)
		}
	}
	return claimed, nil
}

func (r outboxRepo) MarkSent(ctx context.Context, id string, at time.Time) error {
	return r.execOne(ctx,
		`UPDATE notification_outbox SET status = ?, sent_at = ?, last_error = NULL WHERE id = ?`,
		string(domain.OutboxSent), ts(at), id)
}

func (r outboxRepo) MarkRetry(ctx context.Context, id string, attempts int, lastErr string, next time.Time) error {
	return r.execOne(ctx,
		`UPDATE notification_outbox SET attempts = ?, last_error = ?, next_attempt_at = ? WHERE id = ?`,
		attempts, nullString(lastErr), ts(next), id)
}

func (r outboxRepo) MarkFailed(ctx context.Context, id string, attempts int, lastErr string) error {
	return r.execOne(ctx,
		`UPDATE notification_outbox SET status = ?, attempts = ?, last_error = ? WHERE id = ?`,
		string(domain.OutboxFailed), attempts, nullString(lastErr), id)
}

func (r outboxRepo) GetEntry(ctx context.Context, id string) (domain.OutboxEntry, error) {
	e, err := scanOutbox(r.queryRow(ctx, `SELECT `+outboxColumns+` FROM notification_outbox WHERE id = ?`, id))
	if err != nil {
		return domain.OutboxEntry{}, r.mapErr(err)
	}
	return e, nil
}

func (r outboxRepo) DeleteSentBefore(ctx context.Context, before time.Time) (int, error) {
	return r.execCount(ctx,
		`DELETE FROM notification_outbox WHERE status = ? AND sent_at < ?`,
		string(domain.OutboxSent), ts(before))
}

func scanOutbox(s scanner) (domain.OutboxEntry, error) {
	var (
		e                     domain.OutboxEntry
		kind, payload, status string
		lastErr               sql.NullString
		sentAt                sql.NullTime
	)
	err := s.Scan(&e.ID, &kind, &e.Notification.Recipient, &payload, &status, &e.Attempts, &lastErr,
		&e.NextAttemptAt, &e.CreatedAt, &sentAt)
	if err != nil {
		return domain.OutboxEntry{}, err
	}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &e.Notification.Data); err != nil {
			return domain.OutboxEntry{}, fmt.Errorf("outbox: decode payload %s: %w", e.ID, err)
		}
	}
	e.Notification.Kind = domain.NotificationKind(kind)
	e.Status = domain.OutboxStatus(status)
	e.LastError = fromNullString(lastErr)
	e.SentAt = fromNullTime(sentAt)
	e.NextAttemptAt = e.NextAttemptAt.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

var _ store.Outbox = outboxRepo{}
