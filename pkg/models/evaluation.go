package models

import "fmt"

// SignalField is one entry of an evaluation template's signal schema:
// the signal it produces, its type, and how panel responses reduce to a
// single value. Aggregation nil falls back to the template default; text
// signals never aggregate.
type SignalField struct {
	Key         string       `json:"key"`
	Type        SignalType   `json:"type"`
	Label       string       `json:"label"`
	Aggregation *Aggregation `json:"aggregation,omitempty"`
	Min         *float64     `json:"min,omitempty"`
	Max         *float64     `json:"max,omitempty"`
	Required    bool         `json:"required,omitempty"`
}

// ValidateSignalSchema checks a template schema for structural validity:
// unique keys, known types, and aggregations compatible with the field type.
func ValidateSignalSchema(fields []SignalField) error {
	if len(fields) == 0 {
		return fmt.Errorf("signal_schema must not be empty")
	}
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f.Key == "" {
			return fmt.Errorf("field %d: key is required", i)
		}
		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("field %d: duplicate key %q", i, f.Key)
		}
		seen[f.Key] = struct{}{}
		if !f.Type.IsValid() {
			return fmt.Errorf("field %q: invalid type %q", f.Key, f.Type)
		}
		if f.Aggregation != nil {
			if !f.Aggregation.IsValid() {
				return fmt.Errorf("field %q: invalid aggregation %q", f.Key, *f.Aggregation)
			}
			if f.Type == SignalText {
				return fmt.Errorf("field %q: text signals cannot aggregate", f.Key)
			}
			if *f.Aggregation == AggregationAverage && !f.Type.IsNumeric() {
				return fmt.Errorf("field %q: AVERAGE requires a numeric type", f.Key)
			}
			if *f.Aggregation != AggregationAverage && f.Type != SignalBoolean {
				return fmt.Errorf("field %q: %s requires a boolean type", f.Key, *f.Aggregation)
			}
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return fmt.Errorf("field %q: min exceeds max", f.Key)
		}
	}
	return nil
}

// CreateTemplateRequest creates a new evaluation template (version 1).
type CreateTemplateRequest struct {
	TenantID           string
	UserID             string
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	ParticipantType    ParticipantType `json:"participant_type"`
	DefaultAggregation *Aggregation    `json:"default_aggregation,omitempty"`
	SignalSchema       []SignalField   `json:"signal_schema"`
}

// UpdateTemplateRequest edits a template. Structural edits against a
// referenced template produce a new version; unreferenced templates are
// updated in place. Nil fields are left unchanged.
type UpdateTemplateRequest struct {
	TenantID           string
	UserID             string
	TemplateID         string
	Name               *string          `json:"name,omitempty"`
	Description        *string          `json:"description,omitempty"`
	ParticipantType    *ParticipantType `json:"participant_type,omitempty"`
	DefaultAggregation *Aggregation     `json:"default_aggregation,omitempty"`
	SignalSchema       []SignalField    `json:"signal_schema,omitempty"`
}

// CreateInstanceRequest instantiates a template against an application,
// optionally bound to a pipeline stage.
type CreateInstanceRequest struct {
	TenantID      string
	UserID        string
	ApplicationID string `json:"application_id"`
	TemplateID    string `json:"template_id"`
	StageID       string `json:"stage_id,omitempty"`
}

// AddParticipantRequest adds a reviewer to an evaluation instance.
type AddParticipantRequest struct {
	TenantID     string
	UserID       string // caller
	EvaluationID string
	Participant  string `json:"user_id"`
}

// SubmitResponseRequest records one participant's response. Data maps
// signal keys from the template schema to typed literals.
type SubmitResponseRequest struct {
	UserID       string
	EvaluationID string
	Data         map[string]any `json:"data"`
}

// CompleteEvaluationRequest finalizes an instance and triggers aggregation.
// Force completes despite missing submissions and requires a note.
type CompleteEvaluationRequest struct {
	UserID       string
	EvaluationID string
	Force        bool   `json:"force,omitempty"`
	ForceNote    string `json:"force_note,omitempty"`
}
