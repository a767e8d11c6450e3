package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/store"
)

// SentRetention is how long delivered outbox rows are kept.
const SentRetention = 30 * 24 * time.Hour

// HousekeepingService periodically deletes delivered notifications so the
// outbox does not grow without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start is non-blocking. Call Stop to shut the worker down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes sent outbox rows older than SentRetention.
func (s *HousekeepingService) Cleanup(ctx context.Context) int {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	n, err := s.Store.Outbox().DeleteSentBefore(ctx, now.UTC().Add(-SentRetention))
	if err != nil {
		s.Logger.Error("failed to delete sent notifications", "error", err)
		return 0
	}
	s.Logger.Info("housekeeping cleanup completed", "sent_notifications_deleted", n)
	return n
}
