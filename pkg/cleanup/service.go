// Package cleanup enforces data retention.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/event"
	"github.com/ameyzing09/rtr-api-sub000/pkg/config"
)

// Service periodically deletes persisted Event rows past their TTL. Events
// exist only so reconnecting listeners can catch up; the decision log, stage
// history and signal store are the audit trail and are never pruned.
//
// The loop is idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.cleanupExpiredEvents(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupExpiredEvents(ctx)
		}
	}
}

// CleanupExpiredEvents deletes Event rows older than the TTL and returns the
// number removed.
func (s *Service) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	return s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
}

func (s *Service) cleanupExpiredEvents(ctx context.Context) {
	count, err := s.CleanupExpiredEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired events", "count", count)
	}
}
