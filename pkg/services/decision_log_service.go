package services

import (
	"context"
	"fmt"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipelinestage"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/ent/user"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	defaultLogPageSize = 50
	maxLogPageSize     = 200
)

// DecisionLogService is the read side of the execution log: paginated audit
// listings enriched with display fields. The log itself is written only by
// the action engine.
type DecisionLogService struct {
	client *ent.Client
}

// NewDecisionLogService creates a new DecisionLogService.
func NewDecisionLogService(client *ent.Client) *DecisionLogService {
	return &DecisionLogService{client: client}
}

// List returns an application's decisions, newest first. Requires
// VIEW_TRACKING.
func (s *DecisionLogService) List(ctx context.Context, tenantID, userID, applicationID string, filters models.DecisionLogFilters) (*models.DecisionLogList, error) {
	if err := s.authorize(ctx, tenantID, userID, applicationID); err != nil {
		return nil, err
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultLogPageSize
	}
	if limit > maxLogPageSize {
		limit = maxLogPageSize
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	predicates := []predicate.ActionExecutionLog{
		actionexecutionlog.TenantIDEQ(tenantID),
		actionexecutionlog.ApplicationIDEQ(applicationID),
	}
	if filters.OutcomeType != nil {
		predicates = append(predicates, actionexecutionlog.OutcomeTypeEQ(*filters.OutcomeType))
	}
	if filters.ActionCode != "" {
		predicates = append(predicates, actionexecutionlog.ActionCodeEQ(filters.ActionCode))
	}

	total, err := s.client.ActionExecutionLog.Query().
		Where(predicates...).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count decision log: %w", err)
	}

	rows, err := s.client.ActionExecutionLog.Query().
		Where(predicates...).
		Order(ent.Desc(actionexecutionlog.FieldExecutedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decision log: %w", err)
	}

	entries, err := s.enrich(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &models.DecisionLogList{
		Entries:    entries,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Get returns one decision by id. Requires VIEW_TRACKING.
func (s *DecisionLogService) Get(ctx context.Context, tenantID, userID, applicationID, entryID string) (*models.DecisionLogEntry, error) {
	if err := s.authorize(ctx, tenantID, userID, applicationID); err != nil {
		return nil, err
	}

	row, err := s.client.ActionExecutionLog.Query().
		Where(
			actionexecutionlog.IDEQ(entryID),
			actionexecutionlog.TenantIDEQ(tenantID),
			actionexecutionlog.ApplicationIDEQ(applicationID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "decision %s not found", entryID)
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}

	entries, err := s.enrich(ctx, []*ent.ActionExecutionLog{row})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// GetRejectionReason returns the most recent terminal-failure decision for an
// application, or nil when it was never rejected. Requires VIEW_TRACKING.
func (s *DecisionLogService) GetRejectionReason(ctx context.Context, tenantID, userID, applicationID string) (*models.RejectionReason, error) {
	if err := s.authorize(ctx, tenantID, userID, applicationID); err != nil {
		return nil, err
	}

	row, err := s.client.ActionExecutionLog.Query().
		Where(
			actionexecutionlog.TenantIDEQ(tenantID),
			actionexecutionlog.ApplicationIDEQ(applicationID),
			actionexecutionlog.OutcomeTypeEQ(models.OutcomeFailure),
			actionexecutionlog.IsTerminal(true),
		).
		Order(ent.Desc(actionexecutionlog.FieldExecutedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query rejection reason: %w", err)
	}

	reason := &models.RejectionReason{
		ActionCode:     row.ActionCode,
		DecisionNote:   row.DecisionNote,
		OverrideReason: row.OverrideReason,
		ExecutedBy:     row.ExecutedBy,
		ExecutedAt:     row.ExecutedAt,
	}
	if row.StageID != "" {
		stage, err := s.client.PipelineStage.Query().
			Where(pipelinestage.IDEQ(row.StageID)).
			Only(ctx)
		if err == nil {
			reason.StageName = stage.Name
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load stage name: %w", err)
		}
	}
	executor, err := s.client.User.Query().
		Where(user.IDEQ(row.ExecutedBy)).
		Only(ctx)
	if err == nil {
		reason.ExecutedByEmail = executor.Email
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load executor: %w", err)
	}
	return reason, nil
}

func (s *DecisionLogService) authorize(ctx context.Context, tenantID, userID, applicationID string) error {
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

	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, tenantID, userID, models.CapabilityViewTracking)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeForbidden, "reading the decision log requires %s", models.CapabilityViewTracking)
	}
	return nil
}

// enrich resolves display fields (executor emails, stage names) for a page of
// log rows with two batch lookups.
func (s *DecisionLogService) enrich(ctx context.Context, rows []*ent.ActionExecutionLog) ([]models.DecisionLogEntry, error) {
	userIDs := make([]string, 0, len(rows))
	stageIDs := make([]string, 0, len(rows)*2)
	for _, row := range rows {
		userIDs = append(userIDs, row.ExecutedBy)
		if row.StageID != "" {
			stageIDs = append(stageIDs, row.StageID)
		}
		if row.FromStageID != nil {
			stageIDs = append(stageIDs, *row.FromStageID)
		}
		if row.ToStageID != nil {
			stageIDs = append(stageIDs, *row.ToStageID)
		}
	}

	emails := make(map[string]string)
	if len(userIDs) > 0 {
		users, err := s.client.User.Query().
			Where(user.IDIn(userIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load executors: %w", err)
		}
		for _, u := range users {
			emails[u.ID] = u.Email
		}
	}

	stageNames := make(map[string]string)
	if len(stageIDs) > 0 {
		stages, err := s.client.PipelineStage.Query().
			Where(pipelinestage.IDIn(stageIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load stage names: %w", err)
		}
		for _, st := range stages {
			stageNames[st.ID] = st.Name
		}
	}

	entries := make([]models.DecisionLogEntry, 0, len(rows))
	for _, row := range rows {
		outcome := row.OutcomeType
		entry := models.DecisionLogEntry{
			ID:                  row.ID,
			ApplicationID:       row.ApplicationID,
			ActionCode:          row.ActionCode,
			StageID:             row.StageID,
			StageName:           stageNames[row.StageID],
			OutcomeType:         &outcome,
			IsTerminal:          row.IsTerminal,
			ExecutedBy:          row.ExecutedBy,
			ExecutedByEmail:     emails[row.ExecutedBy],
			ExecutedAt:          row.ExecutedAt,
			SignalSnapshot:      row.SignalSnapshot,
			ConditionsEvaluated: row.ConditionsEvaluated,
			DecisionNote:        row.DecisionNote,
			OverrideReason:      row.OverrideReason,
			ReviewedBy:          row.ReviewedBy,
			ApprovedBy:          row.ApprovedBy,
		}
		if row.FromStageID != nil {
			entry.FromStageID = *row.FromStageID
			entry.FromStageName = stageNames[*row.FromStageID]
		}
		if row.ToStageID != nil {
			entry.ToStageID = *row.ToStageID
			entry.ToStageName = stageNames[*row.ToStageID]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
