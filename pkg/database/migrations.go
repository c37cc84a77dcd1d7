package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 20260801000000_initial_schema.up.sql.
//
// The signal store is append-only: superseding a signal sets superseded_at on
// the old row and inserts a fresh one. The partial index guarantees at most
// one current row per (application_id, signal_key) even under concurrent
// writers.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS applicationsignal_application_id_signal_key_current
		ON application_signals (application_id, signal_key)
		WHERE superseded_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create current signal index: %w", err)
	}

	return nil
}

// CreateGINIndexes creates full-text search and JSONB GIN indexes for
// PostgreSQL. These support audit queries over decision log snapshots and
// text search across stage feedback.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for signal snapshot containment queries on the decision log
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_action_execution_logs_signal_snapshot_gin
		ON action_execution_logs USING gin(signal_snapshot jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create signal_snapshot GIN index: %w", err)
	}

	// GIN index for feedback comments full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_stage_feedback_comments_gin
		ON stage_feedback USING gin(to_tsvector('english', comments))`)
	if err != nil {
		return fmt.Errorf("failed to create comments GIN index: %w", err)
	}

	return nil
}
