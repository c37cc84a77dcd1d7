package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EventTTL is the maximum age of persisted Event rows before deletion.
	// Events exist so reconnecting listeners can catch up; they are not an
	// audit record and expire quickly.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
// Decision logs, stage history and superseded signals are never cleaned up;
// they are the audit trail.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}
