package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes realtime events for listener delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (signal updates, feedback nudges) are broadcast only.
//
// Each public method accepts a specific typed payload struct; see types.go.
// Internally, payloads are marshaled to JSON and routed to the tenant channel
// via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishActionExecuted persists an action.executed event to the tenant
// channel and broadcasts a transient copy to the global applications channel.
// Both publishes are best-effort: if the persistent one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishActionExecuted(ctx context.Context, payload ActionExecutedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ActionExecutedPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, TenantChannel(payload.TenantID), payloadJSON); err != nil {
		slog.Warn("Failed to publish action executed to tenant channel",
			"tenant_id", payload.TenantID, "application_id", payload.ApplicationID,
			"action_code", payload.ActionCode, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalApplicationsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish action executed to global channel",
			"tenant_id", payload.TenantID, "application_id", payload.ApplicationID,
			"action_code", payload.ActionCode, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishStageChanged persists and broadcasts an application.stage_changed event.
func (p *EventPublisher) PublishStageChanged(ctx context.Context, payload StageChangedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageChangedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, TenantChannel(payload.TenantID), payloadJSON)
}

// PublishStatusChanged persists and broadcasts an application.status_changed event.
func (p *EventPublisher) PublishStatusChanged(ctx context.Context, payload StatusChangedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StatusChangedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, TenantChannel(payload.TenantID), payloadJSON)
}

// PublishEvaluationCompleted persists and broadcasts an evaluation.completed event.
func (p *EventPublisher) PublishEvaluationCompleted(ctx context.Context, payload EvaluationCompletedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal EvaluationCompletedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, TenantChannel(payload.TenantID), payloadJSON)
}

// PublishSignalUpdated broadcasts an application.signal_updated transient
// event (no DB persistence). Signal writes are frequent; the signal store is
// the durable record.
func (p *EventPublisher) PublishSignalUpdated(ctx context.Context, payload SignalUpdatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SignalUpdatedPayload: %w", err)
	}
	return p.notifyOnly(ctx, TenantChannel(payload.TenantID), payloadJSON)
}

// PublishFeedbackCreated broadcasts a feedback.created transient event
// (no DB persistence).
func (p *EventPublisher) PublishFeedbackCreated(ctx context.Context, payload FeedbackCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal FeedbackCreatedPayload: %w", err)
	}
	return p.notifyOnly(ctx, TenantChannel(payload.TenantID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional and held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, payload, created_at) VALUES ($1, $2, $3) RETURNING id`,
		channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction, held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit: INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type          string `json:"type"`
		EventID       string `json:"event_id"`
		TenantID      string `json:"tenant_id"`
		ApplicationID string `json:"application_id"`
		DBEventID     *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":           routing.Type,
		"event_id":       routing.EventID,
		"tenant_id":      routing.TenantID,
		"application_id": routing.ApplicationID,
		"truncated":      true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
