package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationsignal"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipelinestage"
	"github.com/ameyzing09/rtr-api-sub000/ent/stagefeedback"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantstageaction"
	"github.com/ameyzing09/rtr-api-sub000/pkg/events"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ActionService is the decision engine: it executes configured stage actions
// against an application's pipeline state as one serializable transaction,
// and manages the per-stage action catalog.
type ActionService struct {
	client    *ent.Client
	publisher *events.EventPublisher
}

// NewActionService creates a new ActionService. The publisher may be nil.
func NewActionService(client *ent.Client, publisher *events.EventPublisher) *ActionService {
	return &ActionService{client: client, publisher: publisher}
}

// DefineStageAction configures an action in a stage's catalog. Requires
// MANAGE_SETTINGS.
func (s *ActionService) DefineStageAction(ctx context.Context, req models.DefineStageActionRequest) (*ent.TenantStageAction, error) {
	if strings.TrimSpace(req.ActionCode) == "" {
		return nil, NewValidationError("action_code", "required")
	}
	if req.OutcomeType != nil && !req.OutcomeType.IsValid() {
		return nil, NewValidationError("outcome_type", "invalid")
	}
	if req.SignalConditions != nil {
		if err := req.SignalConditions.Validate(); err != nil {
			return nil, NewValidationError("signal_conditions", err.Error())
		}
	}
	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, req.TenantID, req.UserID, models.CapabilityManageSettings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewError(CodeForbidden, "configuring actions requires %s", models.CapabilityManageSettings)
	}

	if err := s.assertStageInTenant(ctx, req.TenantID, req.StageID); err != nil {
		return nil, err
	}

	create := s.client.TenantStageAction.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetStageID(req.StageID).
		SetActionCode(req.ActionCode).
		SetMovesToNextStage(req.MovesToNextStage).
		SetIsTerminal(req.IsTerminal).
		SetRequiresFeedback(req.RequiresFeedback).
		SetRequiresNotes(req.RequiresNotes)
	if req.Label != "" {
		create = create.SetDisplayLabel(req.Label)
	}
	if req.OutcomeType != nil {
		create = create.SetOutcomeType(*req.OutcomeType)
	}
	if req.RequiredCapability != "" {
		create = create.SetRequiredCapability(req.RequiredCapability)
	}
	if req.SignalConditions != nil {
		create = create.SetSignalConditions(req.SignalConditions)
	}

	action, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "action %s already defined for stage", req.ActionCode)
		}
		return nil, fmt.Errorf("failed to define stage action: %w", err)
	}
	return action, nil
}

// ListStageActions returns the active actions configured for a stage.
func (s *ActionService) ListStageActions(ctx context.Context, tenantID, stageID string) ([]*ent.TenantStageAction, error) {
	rows, err := s.client.TenantStageAction.Query().
		Where(
			tenantstageaction.TenantIDEQ(tenantID),
			tenantstageaction.StageIDEQ(stageID),
			tenantstageaction.IsActive(true),
		).
		Order(ent.Asc(tenantstageaction.FieldActionCode)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage actions: %w", err)
	}
	return rows, nil
}

// DeactivateStageAction retires an action from a stage's catalog. Requires
// MANAGE_SETTINGS.
func (s *ActionService) DeactivateStageAction(ctx context.Context, tenantID, callerID, stageID, actionCode string) error {
	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, tenantID, callerID, models.CapabilityManageSettings)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeForbidden, "configuring actions requires %s", models.CapabilityManageSettings)
	}

	n, err := s.client.TenantStageAction.Update().
		Where(
			tenantstageaction.TenantIDEQ(tenantID),
			tenantstageaction.StageIDEQ(stageID),
			tenantstageaction.ActionCodeEQ(actionCode),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate stage action: %w", err)
	}
	if n == 0 {
		return NewError(CodeNotFound, "action %s not defined for stage", actionCode)
	}
	return nil
}

// ExecuteAction runs one configured action against an application. The whole
// decision is a single serializable transaction holding a row lock on the
// pipeline state: gates, transition, history, state mutation and audit log
// either all land or none do.
func (s *ActionService) ExecuteAction(ctx context.Context, req models.ExecuteActionRequest) (*models.PipelineStateDTO, error) {
	if strings.TrimSpace(req.ActionCode) == "" {
		return nil, NewValidationError("action_code", "required")
	}

	tx, err := s.client.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	state, err := lockPipelineState(ctx, tx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if state.TenantID != req.TenantID {
		return nil, NewError(CodeTenantMismatch, "application belongs to another tenant")
	}
	if state.IsTerminal {
		return nil, NewError(CodeTerminalStatus, "application is in terminal status %s", state.StatusCode)
	}

	currentStage, err := tx.PipelineStage.Query().
		Where(pipelinestage.IDEQ(state.CurrentStageID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "current stage %s no longer exists", state.CurrentStageID)
		}
		return nil, fmt.Errorf("failed to load current stage: %w", err)
	}

	action, err := tx.TenantStageAction.Query().
		Where(
			tenantstageaction.TenantIDEQ(req.TenantID),
			tenantstageaction.StageIDEQ(state.CurrentStageID),
			tenantstageaction.ActionCodeEQ(req.ActionCode),
			tenantstageaction.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeInvalidAction, "action %s is not available in stage %s", req.ActionCode, currentStage.Name)
		}
		return nil, fmt.Errorf("failed to load stage action: %w", err)
	}

	if action.RequiredCapability != "" {
		if err := requireTxCapability(ctx, tx, req.TenantID, req.UserID, action.RequiredCapability, "action "+req.ActionCode); err != nil {
			return nil, err
		}
	}
	if action.RequiresNotes && strings.TrimSpace(req.Notes) == "" {
		return nil, NewValidationError("notes", fmt.Sprintf("action %s requires notes", req.ActionCode))
	}
	if action.RequiresFeedback {
		count, err := tx.StageFeedback.Query().
			Where(
				stagefeedback.TenantIDEQ(req.TenantID),
				stagefeedback.ApplicationIDEQ(req.ApplicationID),
				stagefeedback.StageIDEQ(state.CurrentStageID),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count stage feedback: %w", err)
		}
		if count == 0 {
			return nil, NewError(CodeFeedbackRequired, "action %s requires feedback on stage %s", req.ActionCode, currentStage.Name)
		}
	}

	// Snapshot is taken unconditionally so the audit log always records what
	// was known at decision time.
	currentSignals, err := loadCurrentSignals(ctx, tx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	snapshot := signalSnapshot(currentSignals)

	var conditionsTrace []models.ConditionResult
	if action.SignalConditions != nil && len(action.SignalConditions.Conditions) > 0 {
		byKey := make(map[string]*ent.ApplicationSignal, len(currentSignals))
		for _, sig := range currentSignals {
			byKey[sig.SignalKey] = sig
		}
		gate := evaluateGate(action.SignalConditions, byKey)
		conditionsTrace = gate.Results

		if gate.RequiresWarnNote && strings.TrimSpace(req.Notes) == "" {
			return nil, NewValidationError("notes", "required: a gated signal is missing with WARN policy")
		}
		if !gate.Met(action.SignalConditions.Logic) {
			return nil, NewError(CodeSignalsNotMet, "signal conditions not met: %s",
				models.DescribeFailures(gate.Results)).
				WithDetails(map[string]any{"conditions": gate.Results})
		}
	}

	if action.OutcomeType != nil {
		switch *action.OutcomeType {
		case models.OutcomeHold:
			if state.OutcomeType != models.OutcomeActive {
				return nil, NewError(CodeInvalidAction, "cannot hold an application with outcome %s", state.OutcomeType)
			}
		case models.OutcomeActive:
			if state.OutcomeType != models.OutcomeHold {
				return nil, NewError(CodeInvalidAction, "cannot reactivate an application with outcome %s", state.OutcomeType)
			}
		}
	}

	newStage := currentStage
	newOutcome := state.OutcomeType
	newTerminal := action.IsTerminal
	newStatus := state.StatusCode

	if action.MovesToNextStage {
		newStage, err = nextStage(ctx, tx, currentStage)
		if err != nil {
			return nil, err
		}
	}
	if action.OutcomeType != nil {
		newOutcome = *action.OutcomeType
	}
	// A terminal action must land on a terminal status even when it carries
	// no outcome of its own, so is_terminal alone also forces re-resolution.
	if action.OutcomeType != nil || action.IsTerminal {
		newStatus, err = resolveStatusForOutcome(ctx, tx.TenantApplicationStatus, req.TenantID, newOutcome, newTerminal)
		if err != nil {
			return nil, err
		}
	}

	stageChanged := newStage.ID != state.CurrentStageID
	if !stageChanged && newOutcome == state.OutcomeType && newTerminal == state.IsTerminal && newStatus == state.StatusCode {
		// Replay of a transition already applied: nothing to record.
		if err := tx.Commit(); err != nil {
			return nil, FromDB(fmt.Errorf("failed to commit no-op decision: %w", err))
		}
		s.publishActionExecuted(ctx, state, req, nil, newStage.ID, true)
		dto := stateDTO(state)
		return &dto, nil
	}

	fromStageID := state.CurrentStageID
	hash := eventHash(req.ApplicationID, req.ActionCode, fromStageID, newStage.ID, newOutcome, newStatus)
	if err := insertHistory(ctx, tx, historyEntry{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		ActionCode:    req.ActionCode,
		FromStageID:   &fromStageID,
		ToStageID:     newStage.ID,
		Outcome:       newOutcome,
		StatusCode:    newStatus,
		IsTerminal:    newTerminal,
		MovedBy:       req.UserID,
		EventHash:     hash,
	}); err != nil {
		return nil, err
	}

	update := tx.ApplicationPipelineState.UpdateOneID(state.ID).
		SetCurrentStageID(newStage.ID).
		SetOutcomeType(newOutcome).
		SetIsTerminal(newTerminal).
		SetStatusCode(newStatus).
		SetUpdatedAt(time.Now())
	if stageChanged {
		update = update.SetEnteredStageAt(time.Now())
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update pipeline state: %w", err)
	}

	logCreate := tx.ActionExecutionLog.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetApplicationID(req.ApplicationID).
		SetActionCode(req.ActionCode).
		SetStageID(fromStageID).
		SetFromStageID(fromStageID).
		SetToStageID(newStage.ID).
		SetOutcomeType(newOutcome).
		SetIsTerminal(newTerminal).
		SetStatusCode(newStatus).
		SetExecutedBy(req.UserID).
		SetSignalSnapshot(snapshot)
	if req.Notes != "" {
		logCreate = logCreate.SetDecisionNote(req.Notes)
	}
	if req.OverrideReason != "" {
		logCreate = logCreate.SetOverrideReason(req.OverrideReason)
	}
	if req.ReviewedBy != "" {
		logCreate = logCreate.SetReviewedBy(req.ReviewedBy)
	}
	if req.ApprovedBy != "" {
		logCreate = logCreate.SetApprovedBy(req.ApprovedBy)
	}
	if conditionsTrace != nil {
		logCreate = logCreate.SetConditionsEvaluated(conditionsTrace)
	}
	if err := logCreate.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to append execution log: %w", err)
	}

	if stageChanged {
		if err := autoCreateEvaluations(ctx, tx, req.TenantID, req.ApplicationID, state.JobID, newStage); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, FromDB(fmt.Errorf("failed to commit decision: %w", err))
	}

	s.publishActionExecuted(ctx, updated, req, &fromStageID, newStage.ID, false)
	if stageChanged {
		s.publishStageChanged(ctx, updated, fromStageID, req.UserID)
	}
	if newStatus != state.StatusCode {
		s.publishStatusChanged(ctx, updated, req.UserID)
	}

	dto := stateDTO(updated)
	return &dto, nil
}

// GetState returns the application's pipeline state projection.
func (s *ActionService) GetState(ctx context.Context, tenantID, applicationID string) (*models.PipelineStateDTO, error) {
	state, err := s.client.ApplicationPipelineState.Query().
		Where(applicationpipelinestate.ApplicationIDEQ(applicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "application %s is not tracked", applicationID)
		}
		return nil, fmt.Errorf("failed to load pipeline state: %w", err)
	}
	if state.TenantID != tenantID {
		return nil, NewError(CodeTenantMismatch, "application belongs to another tenant")
	}
	dto := stateDTO(state)
	return &dto, nil
}

func (s *ActionService) assertStageInTenant(ctx context.Context, tenantID, stageID string) error {
	stage, err := s.client.PipelineStage.Query().
		Where(pipelinestage.IDEQ(stageID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NewError(CodeNotFound, "stage %s not found", stageID)
		}
		return fmt.Errorf("failed to load stage: %w", err)
	}
	p, err := s.client.Pipeline.Get(ctx, stage.PipelineID)
	if err != nil {
		return fmt.Errorf("failed to load pipeline: %w", err)
	}
	if p.TenantID != tenantID {
		return NewError(CodeTenantMismatch, "stage belongs to another tenant")
	}
	return nil
}

func (s *ActionService) publishActionExecuted(ctx context.Context, state *ent.ApplicationPipelineState, req models.ExecuteActionRequest, fromStageID *string, toStageID string, replayed bool) {
	if s.publisher == nil {
		return
	}
	payload := events.ActionExecutedPayload{
		Type:          events.EventTypeActionExecuted,
		EventID:       uuid.New().String(),
		TenantID:      state.TenantID,
		ApplicationID: state.ApplicationID,
		ActionCode:    req.ActionCode,
		OutcomeType:   state.OutcomeType,
		ToStageID:     toStageID,
		StatusID:      state.StatusCode,
		ExecutedBy:    req.UserID,
		Replayed:      replayed,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	}
	if fromStageID != nil {
		payload.FromStageID = *fromStageID
	}
	if err := s.publisher.PublishActionExecuted(ctx, payload); err != nil {
		slog.Warn("Failed to publish action execution",
			"application_id", state.ApplicationID, "action_code", req.ActionCode, "error", err)
	}
}

func (s *ActionService) publishStageChanged(ctx context.Context, state *ent.ApplicationPipelineState, fromStageID, movedBy string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishStageChanged(ctx, events.StageChangedPayload{
		Type:          events.EventTypeStageChanged,
		EventID:       uuid.New().String(),
		TenantID:      state.TenantID,
		ApplicationID: state.ApplicationID,
		FromStageID:   fromStageID,
		ToStageID:     state.CurrentStageID,
		MovedBy:       movedBy,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish stage change",
			"application_id", state.ApplicationID, "error", err)
	}
}

func (s *ActionService) publishStatusChanged(ctx context.Context, state *ent.ApplicationPipelineState, changedBy string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishStatusChanged(ctx, events.StatusChangedPayload{
		Type:          events.EventTypeStatusChanged,
		EventID:       uuid.New().String(),
		TenantID:      state.TenantID,
		ApplicationID: state.ApplicationID,
		StatusID:      state.StatusCode,
		StatusCode:    state.StatusCode,
		IsTerminal:    state.IsTerminal,
		ChangedBy:     changedBy,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish status change",
			"application_id", state.ApplicationID, "error", err)
	}
}

// lockPipelineState loads the state row under FOR UPDATE inside the caller's
// transaction.
func lockPipelineState(ctx context.Context, tx *ent.Tx, applicationID string) (*ent.ApplicationPipelineState, error) {
	state, err := tx.ApplicationPipelineState.Query().
		Where(applicationpipelinestate.ApplicationIDEQ(applicationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "application %s is not tracked", applicationID)
		}
		return nil, fmt.Errorf("failed to lock pipeline state: %w", err)
	}
	return state, nil
}

// nextStage resolves the stage following the given one in its pipeline.
func nextStage(ctx context.Context, tx *ent.Tx, current *ent.PipelineStage) (*ent.PipelineStage, error) {
	next, err := tx.PipelineStage.Query().
		Where(
			pipelinestage.PipelineIDEQ(current.PipelineID),
			pipelinestage.OrderIndexEQ(current.OrderIndex+1),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeInvalidAction, "application is at the last stage of its pipeline")
		}
		return nil, fmt.Errorf("failed to resolve next stage: %w", err)
	}
	return next, nil
}

func loadCurrentSignals(ctx context.Context, tx *ent.Tx, applicationID string) ([]*ent.ApplicationSignal, error) {
	rows, err := tx.ApplicationSignal.Query().
		Where(
			applicationsignal.ApplicationIDEQ(applicationID),
			applicationsignal.SupersededAtIsNil(),
		).
		Order(ent.Asc(applicationsignal.FieldSignalKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current signals: %w", err)
	}
	return rows, nil
}

// historyEntry is one append-only transition record.
type historyEntry struct {
	TenantID      string
	ApplicationID string
	ActionCode    string
	FromStageID   *string
	ToStageID     string
	Outcome       models.OutcomeType
	StatusCode    string
	IsTerminal    bool
	MovedBy       string
	EventHash     string
}

// insertHistory appends a transition with ON CONFLICT (event_hash) DO
// NOTHING, so a replayed transition never produces a duplicate row. The
// driver reports the skipped insert as sql.ErrNoRows, which is not an error
// here.
func insertHistory(ctx context.Context, tx *ent.Tx, e historyEntry) error {
	create := tx.ApplicationStageHistory.Create().
		SetID(uuid.New().String()).
		SetTenantID(e.TenantID).
		SetApplicationID(e.ApplicationID).
		SetActionCode(e.ActionCode).
		SetToStageID(e.ToStageID).
		SetOutcomeType(e.Outcome).
		SetStatusCode(e.StatusCode).
		SetIsTerminal(e.IsTerminal).
		SetMovedBy(e.MovedBy).
		SetEventHash(e.EventHash)
	if e.FromStageID != nil {
		create = create.SetFromStageID(*e.FromStageID)
	}

	err := create.
		OnConflictColumns(applicationstagehistory.FieldEventHash).
		DoNothing().
		Exec(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to append stage history: %w", err)
	}
	return nil
}

// eventHash is the dedup digest of one logical transition.
func eventHash(applicationID, actionCode, fromStageID, toStageID string, outcome models.OutcomeType, statusCode string) string {
	h := sha256.New()
	for _, part := range []string{applicationID, actionCode, fromStageID, toStageID, string(outcome), statusCode} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func stateDTO(state *ent.ApplicationPipelineState) models.PipelineStateDTO {
	return models.PipelineStateDTO{
		ID:             state.ID,
		ApplicationID:  state.ApplicationID,
		JobID:          state.JobID,
		PipelineID:     state.PipelineID,
		CurrentStageID: state.CurrentStageID,
		Status:         state.StatusCode,
		OutcomeType:    state.OutcomeType,
		IsTerminal:     state.IsTerminal,
		EnteredStageAt: state.EnteredStageAt,
		UpdatedAt:      state.UpdatedAt,
	}
}
