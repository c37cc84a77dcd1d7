// Package events publishes realtime notifications over PostgreSQL NOTIFY.
// Persistent events are also written to the events table so reconnecting
// listeners can catch up by id.
package events

import (
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeActionExecuted fires after every successful action execution.
	EventTypeActionExecuted = "action.executed"

	// EventTypeStageChanged fires when an application moves between stages,
	// whether action-driven or manual.
	EventTypeStageChanged = "application.stage_changed"

	// EventTypeStatusChanged fires when an application's status changes.
	EventTypeStatusChanged = "application.status_changed"

	// EventTypeEvaluationCompleted fires when an evaluation instance reaches
	// COMPLETED and its aggregated signals are written.
	EventTypeEvaluationCompleted = "evaluation.completed"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Signal writes are frequent and reconstructible from the signal store.
	EventTypeSignalUpdated = "application.signal_updated"

	// Feedback rows live in stage_feedback; the event is a UI nudge only.
	EventTypeFeedbackCreated = "feedback.created"
)

// GlobalApplicationsChannel is the channel for cross-tenant operational
// dashboards. Only action.executed events are mirrored here, transiently.
const GlobalApplicationsChannel = "applications"

// TenantChannel returns the channel name for a tenant's events.
// Format: "tenant:{tenant_id}"
func TenantChannel(tenantID string) string {
	return "tenant:" + tenantID
}

// ActionExecutedPayload is the payload for action.executed events.
type ActionExecutedPayload struct {
	Type          string             `json:"type"` // always EventTypeActionExecuted
	EventID       string             `json:"event_id"`
	TenantID      string             `json:"tenant_id"`
	ApplicationID string             `json:"application_id"`
	ActionCode    string             `json:"action_code"`
	OutcomeType   models.OutcomeType `json:"outcome_type"`
	FromStageID   string             `json:"from_stage_id,omitempty"`
	ToStageID     string             `json:"to_stage_id,omitempty"`
	StatusID      string             `json:"status_id"`
	ExecutedBy    string             `json:"executed_by"`
	Replayed      bool               `json:"replayed,omitempty"` // true when the hash matched an earlier execution
	Timestamp     string             `json:"timestamp"`          // RFC3339Nano
}

// StageChangedPayload is the payload for application.stage_changed events.
type StageChangedPayload struct {
	Type          string `json:"type"` // always EventTypeStageChanged
	EventID       string `json:"event_id"`
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
	FromStageID   string `json:"from_stage_id,omitempty"`
	ToStageID     string `json:"to_stage_id"`
	MovedBy       string `json:"moved_by"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// StatusChangedPayload is the payload for application.status_changed events.
type StatusChangedPayload struct {
	Type          string `json:"type"` // always EventTypeStatusChanged
	EventID       string `json:"event_id"`
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
	StatusID      string `json:"status_id"`
	StatusCode    string `json:"status_code"`
	IsTerminal    bool   `json:"is_terminal"`
	ChangedBy     string `json:"changed_by"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// EvaluationCompletedPayload is the payload for evaluation.completed events.
type EvaluationCompletedPayload struct {
	Type          string   `json:"type"` // always EventTypeEvaluationCompleted
	EventID       string   `json:"event_id"`
	TenantID      string   `json:"tenant_id"`
	ApplicationID string   `json:"application_id"`
	EvaluationID  string   `json:"evaluation_id"`
	StageID       string   `json:"stage_id,omitempty"`
	SignalKeys    []string `json:"signal_keys"` // signals written by aggregation
	Forced        bool     `json:"forced,omitempty"`
	Timestamp     string   `json:"timestamp"` // RFC3339Nano
}

// SignalUpdatedPayload is the payload for application.signal_updated
// transient events.
type SignalUpdatedPayload struct {
	Type          string              `json:"type"` // always EventTypeSignalUpdated
	EventID       string              `json:"event_id"`
	TenantID      string              `json:"tenant_id"`
	ApplicationID string              `json:"application_id"`
	SignalKey     string              `json:"signal_key"`
	Source        models.SignalSource `json:"source"`
	Timestamp     string              `json:"timestamp"` // RFC3339Nano
}

// FeedbackCreatedPayload is the payload for feedback.created transient events.
type FeedbackCreatedPayload struct {
	Type          string `json:"type"` // always EventTypeFeedbackCreated
	EventID       string `json:"event_id"`
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
	StageID       string `json:"stage_id"`
	UserID        string `json:"user_id"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}
