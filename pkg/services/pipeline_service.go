package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/ent/job"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipeline"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipelinestage"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
	"github.com/ameyzing09/rtr-api-sub000/pkg/events"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// Built-in action codes recorded in stage history for transitions that do not
// come from the configured action catalog.
const (
	historyActionAttach       = "ATTACH"
	historyActionMoveStage    = "MOVE_STAGE"
	historyActionUpdateStatus = "UPDATE_STATUS"
)

// PipelineService handles the engine operations outside the configured
// action flow: attaching applications to pipelines, manual stage moves,
// direct status changes, and stage feedback.
type PipelineService struct {
	client    *ent.Client
	publisher *events.EventPublisher
}

// NewPipelineService creates a new PipelineService. The publisher may be nil.
func NewPipelineService(client *ent.Client, publisher *events.EventPublisher) *PipelineService {
	return &PipelineService{client: client, publisher: publisher}
}

// AttachApplicationToPipeline binds an application to a pipeline at its first
// stage, resolves the initial ACTIVE status, records the attach transition,
// and auto-creates any evaluations bound to the entry stage. An application
// can be attached exactly once.
func (s *PipelineService) AttachApplicationToPipeline(ctx context.Context, req models.AttachApplicationRequest) (*models.PipelineStateDTO, error) {
	if strings.TrimSpace(req.ApplicationID) == "" {
		return nil, NewValidationError("application_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	j, err := tx.Job.Query().
		Where(
			job.IDEQ(req.JobID),
			job.TenantIDEQ(req.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "job %s not found", req.JobID)
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	p, err := tx.Pipeline.Query().
		Where(
			pipeline.IDEQ(req.PipelineID),
			pipeline.TenantIDEQ(req.TenantID),
			pipeline.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "pipeline %s not found", req.PipelineID)
		}
		return nil, fmt.Errorf("failed to load pipeline: %w", err)
	}

	firstStage, err := tx.PipelineStage.Query().
		Where(
			pipelinestage.IDEQ(req.FirstStageID),
			pipelinestage.PipelineIDEQ(p.ID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "stage %s is not part of pipeline %s", req.FirstStageID, p.ID)
		}
		return nil, fmt.Errorf("failed to load first stage: %w", err)
	}

	statusCode, err := resolveStatusForOutcome(ctx, tx.TenantApplicationStatus, req.TenantID, models.OutcomeActive, false)
	if err != nil {
		return nil, err
	}

	state, err := tx.ApplicationPipelineState.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetApplicationID(req.ApplicationID).
		SetJobID(j.ID).
		SetPipelineID(p.ID).
		SetCurrentStageID(firstStage.ID).
		SetStatusCode(statusCode).
		SetOutcomeType(models.OutcomeActive).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "application %s is already attached to a pipeline", req.ApplicationID)
		}
		return nil, fmt.Errorf("failed to create pipeline state: %w", err)
	}

	hash := eventHash(req.ApplicationID, historyActionAttach, "", firstStage.ID, models.OutcomeActive, statusCode)
	if err := insertHistory(ctx, tx, historyEntry{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		ActionCode:    historyActionAttach,
		ToStageID:     firstStage.ID,
		Outcome:       models.OutcomeActive,
		StatusCode:    statusCode,
		MovedBy:       req.UserID,
		EventHash:     hash,
	}); err != nil {
		return nil, err
	}

	if err := autoCreateEvaluations(ctx, tx, req.TenantID, req.ApplicationID, j.ID, firstStage); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, FromDB(fmt.Errorf("failed to commit attach: %w", err))
	}

	s.publishStageChanged(ctx, state, "", req.UserID)
	dto := stateDTO(state)
	return &dto, nil
}

// MoveStage manually moves an application to another stage of its pipeline,
// bypassing the configured action flow. Requires OVERRIDE_FLOW. Moving to
// the current stage is a no-op.
func (s *PipelineService) MoveStage(ctx context.Context, req models.MoveStageRequest) (*models.PipelineStateDTO, error) {
	if strings.TrimSpace(req.ToStageID) == "" {
		return nil, NewValidationError("to_stage_id", "required")
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
	if err := requireTxCapability(ctx, tx, req.TenantID, req.UserID, models.CapabilityOverrideFlow, "manual stage moves"); err != nil {
		return nil, err
	}

	if req.ToStageID == state.CurrentStageID {
		if err := tx.Commit(); err != nil {
			return nil, FromDB(fmt.Errorf("failed to commit no-op move: %w", err))
		}
		dto := stateDTO(state)
		return &dto, nil
	}

	target, err := tx.PipelineStage.Query().
		Where(
			pipelinestage.IDEQ(req.ToStageID),
			pipelinestage.PipelineIDEQ(state.PipelineID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeInvalidAction, "stage %s is not part of the application's pipeline", req.ToStageID)
		}
		return nil, fmt.Errorf("failed to load target stage: %w", err)
	}

	fromStageID := state.CurrentStageID
	hash := eventHash(req.ApplicationID, historyActionMoveStage, fromStageID, target.ID, state.OutcomeType, state.StatusCode)
	if err := insertHistory(ctx, tx, historyEntry{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		ActionCode:    historyActionMoveStage,
		FromStageID:   &fromStageID,
		ToStageID:     target.ID,
		Outcome:       state.OutcomeType,
		StatusCode:    state.StatusCode,
		IsTerminal:    state.IsTerminal,
		MovedBy:       req.UserID,
		EventHash:     hash,
	}); err != nil {
		return nil, err
	}

	updated, err := tx.ApplicationPipelineState.UpdateOneID(state.ID).
		SetCurrentStageID(target.ID).
		SetEnteredStageAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update pipeline state: %w", err)
	}

	currentSignals, err := loadCurrentSignals(ctx, tx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	logCreate := tx.ActionExecutionLog.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetApplicationID(req.ApplicationID).
		SetActionCode(historyActionMoveStage).
		SetStageID(fromStageID).
		SetFromStageID(fromStageID).
		SetToStageID(target.ID).
		SetOutcomeType(state.OutcomeType).
		SetIsTerminal(state.IsTerminal).
		SetStatusCode(state.StatusCode).
		SetExecutedBy(req.UserID).
		SetSignalSnapshot(signalSnapshot(currentSignals))
	if req.Reason != "" {
		logCreate = logCreate.SetOverrideReason(req.Reason)
	}
	if err := logCreate.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to append execution log: %w", err)
	}

	if err := autoCreateEvaluations(ctx, tx, req.TenantID, req.ApplicationID, state.JobID, target); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, FromDB(fmt.Errorf("failed to commit stage move: %w", err))
	}

	s.publishStageChanged(ctx, updated, fromStageID, req.UserID)
	dto := stateDTO(updated)
	return &dto, nil
}

// UpdateStatus changes an application's presentation status without moving
// stage. The outcome and terminal flag are derived from the target status's
// catalog entry, so a terminal status like WITHDRAWN finalizes the
// application. Requires CHANGE_STATUS.
func (s *PipelineService) UpdateStatus(ctx context.Context, req models.UpdateStatusRequest) (*models.PipelineStateDTO, error) {
	if strings.TrimSpace(req.StatusCode) == "" {
		return nil, NewValidationError("status_code", "required")
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
	if err := requireTxCapability(ctx, tx, req.TenantID, req.UserID, models.CapabilityChangeStatus, "status changes"); err != nil {
		return nil, err
	}

	if req.StatusCode == state.StatusCode {
		if err := tx.Commit(); err != nil {
			return nil, FromDB(fmt.Errorf("failed to commit no-op status change: %w", err))
		}
		dto := stateDTO(state)
		return &dto, nil
	}

	target, err := tx.TenantApplicationStatus.Query().
		Where(
			tenantapplicationstatus.TenantIDEQ(req.TenantID),
			tenantapplicationstatus.StatusCodeEQ(req.StatusCode),
			tenantapplicationstatus.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeInvalidStatus, "status %q is not an active status of this tenant", req.StatusCode)
		}
		return nil, fmt.Errorf("failed to load target status: %w", err)
	}

	hash := eventHash(req.ApplicationID, historyActionUpdateStatus, state.CurrentStageID, state.CurrentStageID, target.OutcomeType, target.StatusCode)
	fromStageID := state.CurrentStageID
	if err := insertHistory(ctx, tx, historyEntry{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		ActionCode:    historyActionUpdateStatus,
		FromStageID:   &fromStageID,
		ToStageID:     state.CurrentStageID,
		Outcome:       target.OutcomeType,
		StatusCode:    target.StatusCode,
		IsTerminal:    target.IsTerminal,
		MovedBy:       req.UserID,
		EventHash:     hash,
	}); err != nil {
		return nil, err
	}

	updated, err := tx.ApplicationPipelineState.UpdateOneID(state.ID).
		SetStatusCode(target.StatusCode).
		SetOutcomeType(target.OutcomeType).
		SetIsTerminal(target.IsTerminal).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update pipeline state: %w", err)
	}

	currentSignals, err := loadCurrentSignals(ctx, tx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	logCreate := tx.ActionExecutionLog.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetApplicationID(req.ApplicationID).
		SetActionCode(historyActionUpdateStatus).
		SetStageID(state.CurrentStageID).
		SetOutcomeType(target.OutcomeType).
		SetIsTerminal(target.IsTerminal).
		SetStatusCode(target.StatusCode).
		SetExecutedBy(req.UserID).
		SetSignalSnapshot(signalSnapshot(currentSignals))
	if req.Reason != "" {
		logCreate = logCreate.SetDecisionNote(req.Reason)
	}
	if err := logCreate.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to append execution log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, FromDB(fmt.Errorf("failed to commit status change: %w", err))
	}

	s.publishStatusChanged(ctx, updated, req.UserID)
	dto := stateDTO(updated)
	return &dto, nil
}

// SubmitStageFeedback records reviewer feedback on the application's current
// stage. Requires PROVIDE_FEEDBACK (covered by the feedback:* wildcard).
func (s *PipelineService) SubmitStageFeedback(ctx context.Context, req models.SubmitStageFeedbackRequest) (*ent.StageFeedback, error) {
	if strings.TrimSpace(req.Comments) == "" {
		return nil, NewValidationError("comments", "required")
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, NewValidationError("rating", "must be between 1 and 5")
	}

	state, err := s.client.ApplicationPipelineState.Query().
		Where(applicationpipelinestate.ApplicationIDEQ(req.ApplicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "application %s is not tracked", req.ApplicationID)
		}
		return nil, fmt.Errorf("failed to load pipeline state: %w", err)
	}
	if state.TenantID != req.TenantID {
		return nil, NewError(CodeTenantMismatch, "application belongs to another tenant")
	}

	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, req.TenantID, req.UserID, models.CapabilityProvideFeedback)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewError(CodeForbidden, "submitting feedback requires %s", models.CapabilityProvideFeedback)
	}

	create := s.client.StageFeedback.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetApplicationID(req.ApplicationID).
		SetStageID(state.CurrentStageID).
		SetUserID(req.UserID).
		SetComments(req.Comments)
	if req.Rating != nil {
		create = create.SetRating(*req.Rating)
	}

	fb, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save stage feedback: %w", err)
	}

	s.publishFeedbackCreated(ctx, fb)
	return fb, nil
}

// ListHistory returns the application's transition history, oldest first.
func (s *PipelineService) ListHistory(ctx context.Context, tenantID, applicationID string) ([]*ent.ApplicationStageHistory, error) {
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

	rows, err := s.client.ApplicationStageHistory.Query().
		Where(
			applicationstagehistory.TenantIDEQ(tenantID),
			applicationstagehistory.ApplicationIDEQ(applicationID),
		).
		Order(ent.Asc(applicationstagehistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage history: %w", err)
	}
	return rows, nil
}

func (s *PipelineService) publishStageChanged(ctx context.Context, state *ent.ApplicationPipelineState, fromStageID, movedBy string) {
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

func (s *PipelineService) publishStatusChanged(ctx context.Context, state *ent.ApplicationPipelineState, changedBy string) {
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

func (s *PipelineService) publishFeedbackCreated(ctx context.Context, fb *ent.StageFeedback) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishFeedbackCreated(ctx, events.FeedbackCreatedPayload{
		Type:          events.EventTypeFeedbackCreated,
		EventID:       uuid.New().String(),
		TenantID:      fb.TenantID,
		ApplicationID: fb.ApplicationID,
		StageID:       fb.StageID,
		UserID:        fb.UserID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish feedback creation",
			"application_id", fb.ApplicationID, "error", err)
	}
}
