package models

import "time"

// DecisionLogFilters narrows execution-log listings.
type DecisionLogFilters struct {
	OutcomeType *OutcomeType `json:"outcome_type,omitempty"`
	ActionCode  string       `json:"action_code,omitempty"`
	Limit       int          `json:"limit,omitempty"`
	Offset      int          `json:"offset,omitempty"`
}

// DecisionLogEntry is one execution-log row enriched at read time with
// display fields (executor email, stage names).
type DecisionLogEntry struct {
	ID                  string            `json:"id"`
	ApplicationID       string            `json:"application_id"`
	ActionCode          string            `json:"action_code"`
	StageID             string            `json:"stage_id"`
	StageName           string            `json:"stage_name,omitempty"`
	FromStageID         string            `json:"from_stage_id"`
	FromStageName       string            `json:"from_stage_name,omitempty"`
	ToStageID           string            `json:"to_stage_id,omitempty"`
	ToStageName         string            `json:"to_stage_name,omitempty"`
	OutcomeType         *OutcomeType      `json:"outcome_type,omitempty"`
	IsTerminal          bool              `json:"is_terminal"`
	ExecutedBy          string            `json:"executed_by"`
	ExecutedByEmail     string            `json:"executed_by_email,omitempty"`
	ExecutedAt          time.Time         `json:"executed_at"`
	SignalSnapshot      map[string]any    `json:"signal_snapshot"`
	ConditionsEvaluated []ConditionResult `json:"conditions_evaluated,omitempty"`
	DecisionNote        string            `json:"decision_note,omitempty"`
	OverrideReason      string            `json:"override_reason,omitempty"`
	ReviewedBy          string            `json:"reviewed_by,omitempty"`
	ApprovedBy          string            `json:"approved_by,omitempty"`
}

// DecisionLogList is a paginated execution-log listing.
type DecisionLogList struct {
	Entries    []DecisionLogEntry `json:"entries"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// RejectionReason is the most recent terminal-failure decision for an
// application, or absent when it was never rejected.
type RejectionReason struct {
	ActionCode      string    `json:"action_code"`
	StageName       string    `json:"stage_name,omitempty"`
	DecisionNote    string    `json:"decision_note,omitempty"`
	OverrideReason  string    `json:"override_reason,omitempty"`
	ExecutedBy      string    `json:"executed_by"`
	ExecutedByEmail string    `json:"executed_by_email,omitempty"`
	ExecutedAt      time.Time `json:"executed_at"`
}
