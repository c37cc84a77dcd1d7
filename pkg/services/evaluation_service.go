package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationparticipant"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationtemplate"
	"github.com/ameyzing09/rtr-api-sub000/ent/job"
	"github.com/ameyzing09/rtr-api-sub000/ent/stageevaluation"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenant"
	"github.com/ameyzing09/rtr-api-sub000/ent/user"
	"github.com/ameyzing09/rtr-api-sub000/pkg/events"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationService manages evaluation templates, their stage bindings, and
// evaluation instances through their lifecycle. Completing an instance
// aggregates the submitted responses into signals, which is how structured
// review data reaches the decision gates.
type EvaluationService struct {
	client    *ent.Client
	publisher *events.EventPublisher
}

// NewEvaluationService creates a new EvaluationService. The publisher may be
// nil; completion events are a best-effort notification.
func NewEvaluationService(client *ent.Client, publisher *events.EventPublisher) *EvaluationService {
	return &EvaluationService{client: client, publisher: publisher}
}

// CreateTemplate creates version 1 of a named template. Requires
// MANAGE_SETTINGS.
func (s *EvaluationService) CreateTemplate(ctx context.Context, req models.CreateTemplateRequest) (*ent.EvaluationTemplate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if !req.ParticipantType.IsValid() {
		return nil, NewValidationError("participant_type", "invalid")
	}
	if req.DefaultAggregation != nil && !req.DefaultAggregation.IsValid() {
		return nil, NewValidationError("default_aggregation", "invalid")
	}
	if err := models.ValidateSignalSchema(req.SignalSchema); err != nil {
		return nil, NewValidationError("signal_schema", err.Error())
	}
	if err := s.requireCapability(ctx, req.TenantID, req.UserID, models.CapabilityManageSettings, "managing templates"); err != nil {
		return nil, err
	}

	create := s.client.EvaluationTemplate.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetName(req.Name).
		SetParticipantType(req.ParticipantType).
		SetSignalSchema(req.SignalSchema)
	if req.Description != "" {
		create = create.SetDescription(req.Description)
	}
	if req.DefaultAggregation != nil {
		create = create.SetDefaultAggregation(*req.DefaultAggregation)
	}

	tpl, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "template %s already exists", req.Name)
		}
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tpl, nil
}

// UpdateTemplate edits a template. Templates referenced by at least one
// instance have an immutable structure: structural edits (participant type,
// default aggregation, signal schema) produce a new version row and move
// is_latest; name and description edits always apply in place. Requires
// MANAGE_SETTINGS.
func (s *EvaluationService) UpdateTemplate(ctx context.Context, req models.UpdateTemplateRequest) (*ent.EvaluationTemplate, error) {
	if req.ParticipantType != nil && !req.ParticipantType.IsValid() {
		return nil, NewValidationError("participant_type", "invalid")
	}
	if req.DefaultAggregation != nil && !req.DefaultAggregation.IsValid() {
		return nil, NewValidationError("default_aggregation", "invalid")
	}
	if req.SignalSchema != nil {
		if err := models.ValidateSignalSchema(req.SignalSchema); err != nil {
			return nil, NewValidationError("signal_schema", err.Error())
		}
	}
	if err := s.requireCapability(ctx, req.TenantID, req.UserID, models.CapabilityManageSettings, "managing templates"); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	tpl, err := tx.EvaluationTemplate.Query().
		Where(
			evaluationtemplate.IDEQ(req.TemplateID),
			evaluationtemplate.TenantIDEQ(req.TenantID),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "template not found")
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	structural := req.ParticipantType != nil || req.DefaultAggregation != nil || req.SignalSchema != nil
	referenced := false
	if structural {
		referenced, err = tx.EvaluationInstance.Query().
			Where(evaluationinstance.TemplateIDEQ(tpl.ID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check template references: %w", err)
		}
	}

	var result *ent.EvaluationTemplate
	if structural && referenced {
		result, err = versionTemplate(ctx, tx, tpl, req)
	} else {
		result, err = updateTemplateInPlace(ctx, tx, tpl, req)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, FromDB(fmt.Errorf("failed to commit template update: %w", err))
	}
	return result, nil
}

func updateTemplateInPlace(ctx context.Context, tx *ent.Tx, tpl *ent.EvaluationTemplate, req models.UpdateTemplateRequest) (*ent.EvaluationTemplate, error) {
	update := tx.EvaluationTemplate.UpdateOneID(tpl.ID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.ParticipantType != nil {
		update = update.SetParticipantType(*req.ParticipantType)
	}
	if req.DefaultAggregation != nil {
		update = update.SetDefaultAggregation(*req.DefaultAggregation)
	}
	if req.SignalSchema != nil {
		update = update.SetSignalSchema(req.SignalSchema)
	}
	result, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "template name already in use")
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return result, nil
}

// versionTemplate writes the edited structure as a new version row and moves
// is_latest off the old one. Existing instances keep the version they were
// created from.
func versionTemplate(ctx context.Context, tx *ent.Tx, tpl *ent.EvaluationTemplate, req models.UpdateTemplateRequest) (*ent.EvaluationTemplate, error) {
	if err := tx.EvaluationTemplate.UpdateOneID(tpl.ID).
		SetIsLatest(false).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to retire template version: %w", err)
	}

	name := tpl.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := tpl.Description
	if req.Description != nil {
		description = *req.Description
	}
	participantType := tpl.ParticipantType
	if req.ParticipantType != nil {
		participantType = *req.ParticipantType
	}
	schema := tpl.SignalSchema
	if req.SignalSchema != nil {
		schema = req.SignalSchema
	}

	create := tx.EvaluationTemplate.Create().
		SetID(uuid.New().String()).
		SetTenantID(tpl.TenantID).
		SetName(name).
		SetParticipantType(participantType).
		SetSignalSchema(schema).
		SetVersion(tpl.Version + 1).
		SetIsActive(tpl.IsActive)
	if description != "" {
		create = create.SetDescription(description)
	}
	switch {
	case req.DefaultAggregation != nil:
		create = create.SetDefaultAggregation(*req.DefaultAggregation)
	case tpl.DefaultAggregation != nil:
		create = create.SetDefaultAggregation(*tpl.DefaultAggregation)
	}

	next, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "concurrent edit of template %s", name)
		}
		return nil, fmt.Errorf("failed to create template version: %w", err)
	}
	return next, nil
}

// DeactivateTemplate soft-deletes a template: new instances can no longer be
// created from it, existing ones are untouched. Requires MANAGE_SETTINGS.
func (s *EvaluationService) DeactivateTemplate(ctx context.Context, tenantID, callerID, templateID string) error {
	if err := s.requireCapability(ctx, tenantID, callerID, models.CapabilityManageSettings, "managing templates"); err != nil {
		return err
	}
	n, err := s.client.EvaluationTemplate.Update().
		Where(
			evaluationtemplate.IDEQ(templateID),
			evaluationtemplate.TenantIDEQ(tenantID),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate template: %w", err)
	}
	if n == 0 {
		return NewError(CodeNotFound, "template not found")
	}
	return nil
}

// ListTemplates returns the latest version of every active template.
func (s *EvaluationService) ListTemplates(ctx context.Context, tenantID string) ([]*ent.EvaluationTemplate, error) {
	rows, err := s.client.EvaluationTemplate.Query().
		Where(
			evaluationtemplate.TenantIDEQ(tenantID),
			evaluationtemplate.IsActive(true),
			evaluationtemplate.IsLatest(true),
		).
		Order(ent.Asc(evaluationtemplate.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return rows, nil
}

// GetTemplate returns one template version by id.
func (s *EvaluationService) GetTemplate(ctx context.Context, tenantID, templateID string) (*ent.EvaluationTemplate, error) {
	tpl, err := s.client.EvaluationTemplate.Query().
		Where(
			evaluationtemplate.IDEQ(templateID),
			evaluationtemplate.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "template not found")
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return tpl, nil
}

// BindStageTemplate attaches a template to a pipeline stage so entering the
// stage auto-creates an evaluation instance. Requires MANAGE_SETTINGS.
func (s *EvaluationService) BindStageTemplate(ctx context.Context, tenantID, callerID, stageID, templateID string, autoCreate bool) (*ent.StageEvaluation, error) {
	if err := s.requireCapability(ctx, tenantID, callerID, models.CapabilityManageSettings, "managing stage bindings"); err != nil {
		return nil, err
	}
	if _, err := s.GetTemplate(ctx, tenantID, templateID); err != nil {
		return nil, err
	}

	binding, err := s.client.StageEvaluation.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetStageID(stageID).
		SetTemplateID(templateID).
		SetAutoCreate(autoCreate).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "template already bound to stage")
		}
		return nil, fmt.Errorf("failed to bind template to stage: %w", err)
	}
	return binding, nil
}

// UnbindStageTemplate deactivates a stage binding. Requires MANAGE_SETTINGS.
func (s *EvaluationService) UnbindStageTemplate(ctx context.Context, tenantID, callerID, stageID, templateID string) error {
	if err := s.requireCapability(ctx, tenantID, callerID, models.CapabilityManageSettings, "managing stage bindings"); err != nil {
		return err
	}
	n, err := s.client.StageEvaluation.Update().
		Where(
			stageevaluation.TenantIDEQ(tenantID),
			stageevaluation.StageIDEQ(stageID),
			stageevaluation.TemplateIDEQ(templateID),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to unbind template: %w", err)
	}
	if n == 0 {
		return NewError(CodeNotFound, "binding not found")
	}
	return nil
}

// CreateInstance instantiates a template against a tracked application.
// Requires feedback:manage.
func (s *EvaluationService) CreateInstance(ctx context.Context, req models.CreateInstanceRequest) (*ent.EvaluationInstance, error) {
	if err := s.requireCapability(ctx, req.TenantID, req.UserID, models.CapabilityFeedbackManage, "managing evaluations"); err != nil {
		return nil, err
	}
	if err := s.assertTenant(ctx, req.TenantID, req.ApplicationID); err != nil {
		return nil, err
	}
	tpl, err := s.GetTemplate(ctx, req.TenantID, req.TemplateID)
	if err != nil {
		return nil, err
	}
	if !tpl.IsActive {
		return nil, NewError(CodeInvalidAction, "template %s is deactivated", tpl.Name)
	}

	create := s.client.EvaluationInstance.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetApplicationID(req.ApplicationID).
		SetTemplateID(tpl.ID).
		SetTemplateVersion(tpl.Version).
		SetCreatedBy(req.UserID)
	if req.StageID != "" {
		create = create.SetStageID(req.StageID)
	}

	inst, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "evaluation already exists for this application and stage")
		}
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}
	return inst, nil
}

// GetEvaluation returns an instance with its participants and responses.
func (s *EvaluationService) GetEvaluation(ctx context.Context, tenantID, evaluationID string) (*ent.EvaluationInstance, error) {
	inst, err := s.client.EvaluationInstance.Query().
		Where(
			evaluationinstance.IDEQ(evaluationID),
			evaluationinstance.TenantIDEQ(tenantID),
		).
		WithParticipants().
		WithResponses().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "evaluation not found")
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return inst, nil
}

// ListForApplication returns the application's evaluations, newest first.
func (s *EvaluationService) ListForApplication(ctx context.Context, tenantID, applicationID string) ([]*ent.EvaluationInstance, error) {
	if err := s.assertTenant(ctx, tenantID, applicationID); err != nil {
		return nil, err
	}
	rows, err := s.client.EvaluationInstance.Query().
		Where(
			evaluationinstance.TenantIDEQ(tenantID),
			evaluationinstance.ApplicationIDEQ(applicationID),
		).
		WithParticipants().
		Order(ent.Desc(evaluationinstance.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return rows, nil
}

// AddParticipant adds a reviewer to an open instance. Requires
// feedback:manage.
func (s *EvaluationService) AddParticipant(ctx context.Context, req models.AddParticipantRequest) (*ent.EvaluationParticipant, error) {
	if err := s.requireCapability(ctx, req.TenantID, req.UserID, models.CapabilityFeedbackManage, "managing evaluations"); err != nil {
		return nil, err
	}
	inst, err := s.getInstance(ctx, req.TenantID, req.EvaluationID)
	if err != nil {
		return nil, err
	}
	if !inst.Status.IsOpen() {
		return nil, NewError(CodeInvalidAction, "evaluation is %s", inst.Status)
	}
	if _, err := s.requireTenantUser(ctx, req.TenantID, req.Participant); err != nil {
		return nil, err
	}

	next, err := s.client.EvaluationParticipant.Query().
		Where(evaluationparticipant.EvaluationIDEQ(inst.ID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute participant sequence: %w", err)
	}

	p, err := s.client.EvaluationParticipant.Create().
		SetID(uuid.New().String()).
		SetEvaluationID(inst.ID).
		SetUserID(req.Participant).
		SetSequence(next + 1).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "user is already a participant")
		}
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}
	return p, nil
}

// RemoveParticipant removes a reviewer that has not yet submitted. Requires
// feedback:manage.
func (s *EvaluationService) RemoveParticipant(ctx context.Context, tenantID, callerID, evaluationID, participantUserID string) error {
	if err := s.requireCapability(ctx, tenantID, callerID, models.CapabilityFeedbackManage, "managing evaluations"); err != nil {
		return err
	}
	inst, err := s.getInstance(ctx, tenantID, evaluationID)
	if err != nil {
		return err
	}
	if !inst.Status.IsOpen() {
		return NewError(CodeInvalidAction, "evaluation is %s", inst.Status)
	}

	p, err := s.client.EvaluationParticipant.Query().
		Where(
			evaluationparticipant.EvaluationIDEQ(inst.ID),
			evaluationparticipant.UserIDEQ(participantUserID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NewError(CodeNotFound, "participant not found")
		}
		return fmt.Errorf("failed to load participant: %w", err)
	}
	if p.Status == models.ParticipantSubmitted {
		return NewError(CodeInvalidAction, "participant has already submitted")
	}

	if err := s.client.EvaluationParticipant.DeleteOneID(p.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	return nil
}

// DeclineParticipation marks the caller's own pending participation as
// declined. Declined reviewers do not block panel completion.
func (s *EvaluationService) DeclineParticipation(ctx context.Context, tenantID, userID, evaluationID string) error {
	inst, err := s.getInstance(ctx, tenantID, evaluationID)
	if err != nil {
		return err
	}
	if !inst.Status.IsOpen() {
		return NewError(CodeInvalidAction, "evaluation is %s", inst.Status)
	}

	n, err := s.client.EvaluationParticipant.Update().
		Where(
			evaluationparticipant.EvaluationIDEQ(inst.ID),
			evaluationparticipant.UserIDEQ(userID),
			evaluationparticipant.StatusEQ(models.ParticipantPending),
		).
		SetStatus(models.ParticipantDeclined).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to decline participation: %w", err)
	}
	if n == 0 {
		return NewError(CodeInvalidAction, "no pending participation to decline")
	}
	return nil
}

// CancelInstance cancels an open evaluation. No signals are written.
// Requires feedback:manage.
func (s *EvaluationService) CancelInstance(ctx context.Context, tenantID, callerID, evaluationID string) error {
	if err := s.requireCapability(ctx, tenantID, callerID, models.CapabilityFeedbackManage, "managing evaluations"); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	inst, err := lockInstance(ctx, tx, tenantID, evaluationID)
	if err != nil {
		return err
	}
	if !inst.Status.IsOpen() {
		return NewError(CodeInvalidAction, "evaluation is %s", inst.Status)
	}

	if err := tx.EvaluationInstance.UpdateOneID(inst.ID).
		SetStatus(models.EvaluationCancelled).
		SetCompletedBy(callerID).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to cancel evaluation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return FromDB(fmt.Errorf("failed to commit cancellation: %w", err))
	}
	return nil
}

// SubmitResponse records one participant's response against the template
// schema. Each participant submits at most once; responses are immutable.
func (s *EvaluationService) SubmitResponse(ctx context.Context, req models.SubmitResponseRequest) (*ent.EvaluationResponse, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	inst, err := tx.EvaluationInstance.Query().
		Where(evaluationinstance.IDEQ(req.EvaluationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "evaluation not found")
		}
		return nil, fmt.Errorf("failed to load evaluation: %w", err)
	}
	if !inst.Status.IsOpen() {
		return nil, NewError(CodeInvalidAction, "evaluation is %s", inst.Status)
	}

	participant, err := tx.EvaluationParticipant.Query().
		Where(
			evaluationparticipant.EvaluationIDEQ(inst.ID),
			evaluationparticipant.UserIDEQ(req.UserID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeForbidden, "user is not a participant of this evaluation")
		}
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}
	switch participant.Status {
	case models.ParticipantSubmitted:
		return nil, NewError(CodeConflict, "response already submitted")
	case models.ParticipantDeclined:
		return nil, NewError(CodeInvalidAction, "participation was declined")
	}

	tpl, err := tx.EvaluationTemplate.Get(ctx, inst.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	if err := validateResponseData(tpl.SignalSchema, req.Data); err != nil {
		return nil, err
	}

	if tpl.ParticipantType == models.ParticipantSequential {
		if err := assertSequenceTurn(ctx, tx, inst.ID, participant.Sequence); err != nil {
			return nil, err
		}
	}

	resp, err := tx.EvaluationResponse.Create().
		SetID(uuid.New().String()).
		SetEvaluationID(inst.ID).
		SetParticipantID(participant.ID).
		SetUserID(req.UserID).
		SetResponseData(req.Data).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "response already submitted")
		}
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	if err := tx.EvaluationParticipant.UpdateOneID(participant.ID).
		SetStatus(models.ParticipantSubmitted).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark participant submitted: %w", err)
	}
	if inst.Status == models.EvaluationPending {
		if err := tx.EvaluationInstance.UpdateOneID(inst.ID).
			SetStatus(models.EvaluationInProgress).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to advance evaluation status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, FromDB(fmt.Errorf("failed to commit response: %w", err))
	}
	return resp, nil
}

// CompleteEvaluation finalizes an open instance: checks completeness per the
// template's participant type, aggregates the responses into signals, and
// marks the instance COMPLETED. Force skips the completeness check but
// requires OVERRIDE_FLOW and a non-blank note.
func (s *EvaluationService) CompleteEvaluation(ctx context.Context, req models.CompleteEvaluationRequest) (*ent.EvaluationInstance, error) {
	if req.Force && strings.TrimSpace(req.ForceNote) == "" {
		return nil, NewValidationError("force_note", "required when forcing completion")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	inst, err := tx.EvaluationInstance.Query().
		Where(evaluationinstance.IDEQ(req.EvaluationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "evaluation not found")
		}
		return nil, fmt.Errorf("failed to load evaluation: %w", err)
	}
	if !inst.Status.IsOpen() {
		return nil, NewError(CodeInvalidAction, "evaluation is %s", inst.Status)
	}

	// Completion is open to the instance's own reviewers; anyone else needs
	// the feedback management capability.
	isParticipant, err := tx.EvaluationParticipant.Query().
		Where(
			evaluationparticipant.EvaluationIDEQ(inst.ID),
			evaluationparticipant.UserIDEQ(req.UserID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if !isParticipant {
		if err := requireTxCapability(ctx, tx, inst.TenantID, req.UserID, models.CapabilityFeedbackManage, "completing evaluations"); err != nil {
			return nil, err
		}
	}
	if req.Force {
		if err := requireTxCapability(ctx, tx, inst.TenantID, req.UserID, models.CapabilityOverrideFlow, "force-completing evaluations"); err != nil {
			return nil, err
		}
	}

	tpl, err := tx.EvaluationTemplate.Get(ctx, inst.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	participants, err := tx.EvaluationParticipant.Query().
		Where(evaluationparticipant.EvaluationIDEQ(inst.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	if !req.Force {
		if err := checkCompleteness(tpl.ParticipantType, participants); err != nil {
			return nil, err
		}
	}

	responses, err := tx.EvaluationResponse.Query().
		Where(evaluationresponse.EvaluationIDEQ(inst.ID)).
		Order(ent.Asc(evaluationresponse.FieldSubmittedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}
	datas := make([]map[string]any, 0, len(responses))
	for _, r := range responses {
		datas = append(datas, r.ResponseData)
	}

	now := time.Now()
	update := tx.EvaluationInstance.UpdateOneID(inst.ID).
		SetStatus(models.EvaluationCompleted).
		SetCompletedBy(req.UserID).
		SetCompletedAt(now)
	if req.Force {
		update = update.
			SetForceCompleted(true).
			SetForceNote(req.ForceNote)
	}
	completed, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete evaluation: %w", err)
	}

	aggregated := aggregateResponses(tpl.SignalSchema, tpl.DefaultAggregation, datas)
	signalKeys := make([]string, 0, len(aggregated))
	for _, agg := range aggregated {
		if _, err := putSignal(ctx, tx, models.PutSignalRequest{
			TenantID:      inst.TenantID,
			ApplicationID: inst.ApplicationID,
			Key:           agg.Key,
			Value:         agg.Value,
			Source:        models.SourceEvaluation,
			SourceID:      inst.ID,
			SetBy:         req.UserID,
		}); err != nil {
			return nil, err
		}
		signalKeys = append(signalKeys, agg.Key)
	}

	if err := tx.Commit(); err != nil {
		return nil, FromDB(fmt.Errorf("failed to commit completion: %w", err))
	}

	s.publishCompleted(ctx, completed, signalKeys)
	return completed, nil
}

// checkCompleteness enforces the participant-type completion rule: PANEL
// needs every non-declined reviewer submitted; SINGLE and SEQUENTIAL need at
// least one submission.
func checkCompleteness(pt models.ParticipantType, participants []*ent.EvaluationParticipant) error {
	submitted := 0
	pending := 0
	for _, p := range participants {
		switch p.Status {
		case models.ParticipantSubmitted:
			submitted++
		case models.ParticipantPending:
			pending++
		}
	}
	if submitted == 0 {
		return NewError(CodeEvaluationIncomplete, "no responses submitted")
	}
	if pt == models.ParticipantPanel && pending > 0 {
		return NewError(CodeEvaluationIncomplete, "%d of %d reviewers have not submitted", pending, submitted+pending)
	}
	return nil
}

// assertSequenceTurn rejects an out-of-order submission on a SEQUENTIAL
// evaluation: every participant earlier in the sequence must have submitted
// or declined.
func assertSequenceTurn(ctx context.Context, tx *ent.Tx, evaluationID string, sequence int) error {
	blocked, err := tx.EvaluationParticipant.Query().
		Where(
			evaluationparticipant.EvaluationIDEQ(evaluationID),
			evaluationparticipant.SequenceLT(sequence),
			evaluationparticipant.StatusEQ(models.ParticipantPending),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check sequence order: %w", err)
	}
	if blocked {
		return NewError(CodeInvalidAction, "earlier reviewers have not submitted yet")
	}
	return nil
}

// validateResponseData checks a response map against the template schema:
// no unknown keys, required fields present, values of the declared type and
// within declared bounds.
func validateResponseData(schema []models.SignalField, data map[string]any) error {
	fields := make(map[string]models.SignalField, len(schema))
	for _, f := range schema {
		fields[f.Key] = f
	}
	for key := range data {
		if _, ok := fields[key]; !ok {
			return NewValidationError(key, "not part of the evaluation schema")
		}
	}
	for _, f := range schema {
		raw, present := data[f.Key]
		if !present || raw == nil {
			if f.Required {
				return NewValidationError(f.Key, "required")
			}
			continue
		}
		if err := validateResponseValue(f, raw); err != nil {
			return err
		}
	}
	return nil
}

func validateResponseValue(f models.SignalField, raw any) error {
	switch f.Type {
	case models.SignalBoolean:
		if _, ok := raw.(bool); !ok {
			return NewValidationError(f.Key, "expected a boolean")
		}
	case models.SignalInteger, models.SignalFloat:
		v, ok := numericValue(raw)
		if !ok {
			return NewValidationError(f.Key, "expected a number")
		}
		if f.Type == models.SignalInteger && v != math.Trunc(v) {
			return NewValidationError(f.Key, "expected an integer")
		}
		if f.Min != nil && v < *f.Min {
			return NewValidationError(f.Key, fmt.Sprintf("below minimum %v", *f.Min))
		}
		if f.Max != nil && v > *f.Max {
			return NewValidationError(f.Key, fmt.Sprintf("above maximum %v", *f.Max))
		}
	case models.SignalText:
		if _, ok := raw.(string); !ok {
			return NewValidationError(f.Key, "expected a string")
		}
	}
	return nil
}

func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// autoCreateEvaluations instantiates every active auto-create template bound
// to the stage an application just entered. Runs inside the caller's
// transaction; creation is idempotent per (application, template, stage).
// When the stage is conducted by HR, the job's creator joins as the initial
// participant, falling back to the tenant owner if the creator is gone.
func autoCreateEvaluations(ctx context.Context, tx *ent.Tx, tenantID, applicationID, jobID string, stage *ent.PipelineStage) error {
	bindings, err := tx.StageEvaluation.Query().
		Where(
			stageevaluation.TenantIDEQ(tenantID),
			stageevaluation.StageIDEQ(stage.ID),
			stageevaluation.AutoCreate(true),
			stageevaluation.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stage bindings: %w", err)
	}
	if len(bindings) == 0 {
		return nil
	}

	var participantID string
	if strings.EqualFold(stage.ConductedBy, "HR") {
		participantID, err = resolveHRParticipant(ctx, tx, tenantID, jobID)
		if err != nil {
			return err
		}
	}

	for _, binding := range bindings {
		tpl, err := latestTemplateVersion(ctx, tx, tenantID, binding.TemplateID)
		if err != nil {
			return err
		}
		if tpl == nil {
			continue
		}

		exists, err := tx.EvaluationInstance.Query().
			Where(
				evaluationinstance.TenantIDEQ(tenantID),
				evaluationinstance.ApplicationIDEQ(applicationID),
				evaluationinstance.TemplateIDEQ(tpl.ID),
				evaluationinstance.StageIDEQ(stage.ID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing evaluation: %w", err)
		}
		if exists {
			continue
		}

		inst, err := tx.EvaluationInstance.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetApplicationID(applicationID).
			SetStageID(stage.ID).
			SetTemplateID(tpl.ID).
			SetTemplateVersion(tpl.Version).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("failed to auto-create evaluation: %w", err)
		}

		if participantID != "" {
			if err := tx.EvaluationParticipant.Create().
				SetID(uuid.New().String()).
				SetEvaluationID(inst.ID).
				SetUserID(participantID).
				SetSequence(1).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to add auto-created participant: %w", err)
			}
		}
	}
	return nil
}

// latestTemplateVersion resolves a bound template to the latest active
// version of its name lineage. Deactivated lineages resolve to nil and the
// binding is skipped.
func latestTemplateVersion(ctx context.Context, tx *ent.Tx, tenantID, templateID string) (*ent.EvaluationTemplate, error) {
	bound, err := tx.EvaluationTemplate.Query().
		Where(
			evaluationtemplate.IDEQ(templateID),
			evaluationtemplate.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			slog.Warn("Stage binding references a missing template", "template_id", templateID)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load bound template: %w", err)
	}
	if bound.IsLatest {
		if !bound.IsActive {
			return nil, nil
		}
		return bound, nil
	}

	latest, err := tx.EvaluationTemplate.Query().
		Where(
			evaluationtemplate.TenantIDEQ(tenantID),
			evaluationtemplate.NameEQ(bound.Name),
			evaluationtemplate.IsLatest(true),
			evaluationtemplate.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve latest template version: %w", err)
	}
	return latest, nil
}

func resolveHRParticipant(ctx context.Context, tx *ent.Tx, tenantID, jobID string) (string, error) {
	j, err := tx.Job.Query().
		Where(
			job.IDEQ(jobID),
			job.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", NewError(CodeNotFound, "job %s not found", jobID)
		}
		return "", fmt.Errorf("failed to load job: %w", err)
	}

	creator, err := tx.User.Query().
		Where(
			user.IDEQ(j.CreatedBy),
			user.TenantIDEQ(tenantID),
			user.IsActive(true),
		).
		Only(ctx)
	if err == nil {
		return creator.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to load job creator: %w", err)
	}

	t, err := tx.Tenant.Query().
		Where(tenant.IDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load tenant: %w", err)
	}
	return t.OwnerUserID, nil
}

func (s *EvaluationService) getInstance(ctx context.Context, tenantID, evaluationID string) (*ent.EvaluationInstance, error) {
	inst, err := s.client.EvaluationInstance.Query().
		Where(
			evaluationinstance.IDEQ(evaluationID),
			evaluationinstance.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "evaluation not found")
		}
		return nil, fmt.Errorf("failed to load evaluation: %w", err)
	}
	return inst, nil
}

func lockInstance(ctx context.Context, tx *ent.Tx, tenantID, evaluationID string) (*ent.EvaluationInstance, error) {
	inst, err := tx.EvaluationInstance.Query().
		Where(
			evaluationinstance.IDEQ(evaluationID),
			evaluationinstance.TenantIDEQ(tenantID),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "evaluation not found")
		}
		return nil, fmt.Errorf("failed to lock evaluation: %w", err)
	}
	return inst, nil
}

func (s *EvaluationService) assertTenant(ctx context.Context, tenantID, applicationID string) error {
	state, err := s.client.ApplicationPipelineState.Query().
		Where(applicationpipelinestate.ApplicationIDEQ(applicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NewError(CodeNotFound, "application %s is not tracked", applicationID)
		}
		return fmt.Errorf("failed to load pipeline state: %w", err)
	}
	if state.TenantID != tenantID {
		return NewError(CodeTenantMismatch, "application belongs to another tenant")
	}
	return nil
}

func (s *EvaluationService) requireTenantUser(ctx context.Context, tenantID, userID string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(
			user.IDEQ(userID),
			user.TenantIDEQ(tenantID),
			user.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}

func (s *EvaluationService) requireCapability(ctx context.Context, tenantID, userID, capability, action string) error {
	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, tenantID, userID, capability)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeForbidden, "%s requires %s", action, capability)
	}
	return nil
}

// requireTxCapability is the in-transaction variant used by the engines.
func requireTxCapability(ctx context.Context, tx *ent.Tx, tenantID, userID, capability, action string) error {
	ok, err := hasCapability(ctx, tx.User, tx.RoleCapability, tenantID, userID, capability)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeForbidden, "%s requires %s", action, capability)
	}
	return nil
}

func (s *EvaluationService) publishCompleted(ctx context.Context, inst *ent.EvaluationInstance, signalKeys []string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEvaluationCompleted(ctx, events.EvaluationCompletedPayload{
		Type:          events.EventTypeEvaluationCompleted,
		EventID:       uuid.New().String(),
		TenantID:      inst.TenantID,
		ApplicationID: inst.ApplicationID,
		EvaluationID:  inst.ID,
		StageID:       inst.StageID,
		SignalKeys:    signalKeys,
		Forced:        inst.ForceCompleted,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish evaluation completion",
			"evaluation_id", inst.ID, "error", err)
	}
}
