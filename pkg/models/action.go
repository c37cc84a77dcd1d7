package models

import "time"

// ExecuteActionRequest runs one configured action against an application.
type ExecuteActionRequest struct {
	TenantID       string
	UserID         string
	ApplicationID  string
	ActionCode     string `json:"action_code"`
	Notes          string `json:"notes,omitempty"`
	OverrideReason string `json:"override_reason,omitempty"`
	ReviewedBy     string `json:"reviewed_by,omitempty"`
	ApprovedBy     string `json:"approved_by,omitempty"`
}

// AttachApplicationRequest binds an application to a pipeline at its
// first stage and initializes tracking state.
type AttachApplicationRequest struct {
	TenantID      string
	UserID        string
	ApplicationID string
	JobID         string `json:"job_id"`
	PipelineID    string `json:"pipeline_id"`
	FirstStageID  string `json:"first_stage_id"`
}

// MoveStageRequest manually moves an application to another stage of its
// pipeline, outside the configured action flow.
type MoveStageRequest struct {
	TenantID      string
	UserID        string
	ApplicationID string
	ToStageID     string `json:"to_stage_id"`
	Reason        string `json:"reason,omitempty"`
}

// UpdateStatusRequest changes an application's presentation status without
// moving stage.
type UpdateStatusRequest struct {
	TenantID      string
	UserID        string
	ApplicationID string
	StatusCode    string `json:"status_code"`
	Reason        string `json:"reason,omitempty"`
}

// SubmitStageFeedbackRequest records reviewer feedback on the application's
// current stage; the feedback gate of action execution counts these rows.
type SubmitStageFeedbackRequest struct {
	TenantID      string
	UserID        string
	ApplicationID string
	Rating        *int   `json:"rating,omitempty"`
	Comments      string `json:"comments"`
}

// DefineStageActionRequest configures an action in a stage's catalog.
type DefineStageActionRequest struct {
	TenantID           string
	UserID             string
	StageID            string            `json:"stage_id"`
	ActionCode         string            `json:"action_code"`
	Label              string            `json:"label,omitempty"`
	OutcomeType        *OutcomeType      `json:"outcome_type,omitempty"`
	MovesToNextStage   bool              `json:"moves_to_next_stage,omitempty"`
	IsTerminal         bool              `json:"is_terminal,omitempty"`
	RequiresFeedback   bool              `json:"requires_feedback,omitempty"`
	RequiresNotes      bool              `json:"requires_notes,omitempty"`
	RequiredCapability string            `json:"required_capability"`
	SignalConditions   *SignalConditions `json:"signal_conditions,omitempty"`
}

// PipelineStateDTO is the decoupled projection of an application's pipeline
// state returned by engine operations.
type PipelineStateDTO struct {
	ID             string      `json:"id"`
	ApplicationID  string      `json:"application_id"`
	JobID          string      `json:"job_id"`
	PipelineID     string      `json:"pipeline_id"`
	CurrentStageID string      `json:"current_stage_id"`
	Status         string      `json:"status"`
	OutcomeType    OutcomeType `json:"outcome_type"`
	IsTerminal     bool        `json:"is_terminal"`
	EnteredStageAt time.Time   `json:"entered_stage_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
