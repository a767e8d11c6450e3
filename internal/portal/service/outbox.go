package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/mail"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/retry"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

const (
	outboxBaseDelay = 30 * time.Second
	outboxMaxDelay  = time.Hour
)

// OutboxWorker delivers queued notifications. Failed sends are retried on
// later ticks with exponential delay until MaxAttempts, then marked failed.
type OutboxWorker struct {
	Store       store.Store
	Sender      mail.Sender
	Logger      *slog.Logger
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
	// Lease is how long a claimed row stays invisible to other workers.
	Lease time.Duration
	Retry retry.Policy
	Now   func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

func NewOutboxWorker(st store.Store, sender mail.Sender, logger *slog.Logger, interval time.Duration, batchSize, maxAttempts int) *OutboxWorker {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 25
	}
	if maxAttempts <= 0 {
		maxAttempts = 8
	}
	return &OutboxWorker{
		Store:       st,
		Sender:      sender,
		Logger:      logger,
		Interval:    interval,
		BatchSize:   batchSize,
		MaxAttempts: maxAttempts,
		Lease:       5 * time.Minute,
		Retry:       retry.DefaultPolicy,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

func (w *OutboxWorker) now() time.Time {
	if w.Now != nil {
		return w.Now().UTC()
	}
	return time.Now().UTC()
}

func (w *OutboxWorker) Start() {
	go w.run()
	w.Logger.Info("outbox worker started", "interval", w.Interval, "batch_size", w.BatchSize)
}

// Stop blocks until the in-flight batch has finished.
func (w *OutboxWorker) Stop() {
	close(w.stopCh)
	<-w.doneCh
	w.Logger.Info("outbox worker stopped")
}

func (w *OutboxWorker) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(slogx.WithContext(context.Background(), w.Logger))
	defer cancel()
	go func() {
		select {
		case <-w.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		if _, err := w.ProcessDue(ctx); err != nil && ctx.Err() == nil {
			w.Logger.Error("outbox batch failed", "error", err)
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// BatchResult counts what one ProcessDue call did.
type BatchResult struct {
	Sent    int
	Retried int
	Failed  int
}

// ProcessDue claims one batch of due notifications and attempts each once
// (with the in-call retry policy).
func (w *OutboxWorker) ProcessDue(ctx context.Context) (BatchResult, error) {
	var res BatchResult

	now := w.now()
	entries, err := w.Store.Outbox().ClaimDue(ctx, now, now.Add(w.Lease), w.BatchSize)
	if err != nil {
		return res, err
	}

	for _, e := range entries {
		switch w.deliver(ctx, e) {
		case domain.OutboxSent:
			res.Sent++
		case domain.OutboxFailed:
			res.Failed++
		default:
			res.Retried++
		}
	}
	if len(entries) > 0 {
		w.Logger.Info("outbox batch processed", "sent", res.Sent, "retried", res.Retried, "failed", res.Failed)
	}
	return res, nil
}

func (w *OutboxWorker) deliver(ctx context.Context, e domain.OutboxEntry) domain.OutboxStatus {
	log := w.Logger.With("notification_id", e.ID, "kind", e.Notification.Kind)
	attempts := e.Attempts + 1

	msg, err := mail.Render(e.Notification)
	if err != nil {
		log.Error("notification cannot be rendered", "error", err)
		if merr := w.Store.Outbox().MarkFailed(ctx, e.ID, attempts, err.Error()); merr != nil {
			log.Error("failed to mark notification failed", "error", merr)
		}
		return domain.OutboxFailed
	}

	err = retry.Do(ctx, w.Retry, mail.Retryable, "mail.send", func(ctx context.Context) error {
		return w.Sender.Send(ctx, msg)
	})
	if err == nil {
		if merr := w.Store.Outbox().MarkSent(ctx, e.ID, w.now()); merr != nil {
			log.Error("failed to mark notification sent", "error", merr)
		}
		return domain.OutboxSent
	}

	if attempts >= w.MaxAttempts || !mail.Retryable(err) {
		log.Error("notification delivery failed permanently", "attempts", attempts, "error", err)
		if merr := w.Store.Outbox().MarkFailed(ctx, e.ID, attempts, err.Error()); merr != nil {
			log.Error("failed to mark notification failed", "error", merr)
		}
		return domain.OutboxFailed
	}

	next := w.now().Add(RetryDelay(attempts))
	log.Warn("notification delivery failed, will retry", "attempts", attempts, "next_attempt_at", next, "error", err)
	if merr := w.Store.Outbox().MarkRetry(ctx, e.ID, attempts, err.Error(), next); merr != nil {
		log.Error("failed to reschedule notification", "error", merr)
	}
	return domain.OutboxPending
}

// RetryDelay is the wait before attempt n+1 after n failed attempts.
func RetryDelay(attempts int) time.Duration {
	d := outboxBaseDelay
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= outboxMaxDelay {
			return outboxMaxDelay
		}
	}
	return d
}
