package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
	testdb "github.com/ameyzing09/rtr-api-sub000/test/database"
)

func TestActionService_DefineStageAction(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	actions := NewActionService(client.Client, nil)
	ctx := context.Background()

	t.Run("defines an action", func(t *testing.T) {
		action := f.defineAction(actions, f.stages[0].ID, nil)
		assert.Equal(t, "ADVANCE", action.ActionCode)
		assert.True(t, action.MovesToNextStage)
		assert.True(t, action.IsActive)
	})

	t.Run("duplicate code on the same stage conflicts", func(t *testing.T) {
		_, err := actions.DefineStageAction(ctx, models.DefineStageActionRequest{
			TenantID:   f.tenant.ID,
			UserID:     f.owner.ID,
			StageID:    f.stages[0].ID,
			ActionCode: "ADVANCE",
		})
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))
	})

	t.Run("invalid gate definition is rejected", func(t *testing.T) {
		_, err := actions.DefineStageAction(ctx, models.DefineStageActionRequest{
			TenantID:   f.tenant.ID,
			UserID:     f.owner.ID,
			StageID:    f.stages[0].ID,
			ActionCode: "GATED",
			SignalConditions: &models.SignalConditions{
				Logic: models.ConditionLogic("SOME"),
			},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires MANAGE_SETTINGS", func(t *testing.T) {
		_, err := actions.DefineStageAction(ctx, models.DefineStageActionRequest{
			TenantID:   f.tenant.ID,
			UserID:     f.interviewer.ID,
			StageID:    f.stages[0].ID,
			ActionCode: "SNEAKY",
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("stage of another tenant is rejected", func(t *testing.T) {
		other := newFixture(t, client.Client)
		_, err := actions.DefineStageAction(ctx, models.DefineStageActionRequest{
			TenantID:   f.tenant.ID,
			UserID:     f.owner.ID,
			StageID:    other.stages[0].ID,
			ActionCode: "CROSS",
		})
		require.Error(t, err)
		assert.Equal(t, CodeTenantMismatch, GetCode(err))
	})
}

func TestActionService_ExecuteAction_Advance(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	actions := NewActionService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	f.defineAction(actions, f.stages[0].ID, nil)
	applicationID := f.attach(pipelines)

	state, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
		TenantID:      f.tenant.ID,
		UserID:        f.recruiter.ID,
		ApplicationID: applicationID,
		ActionCode:    "ADVANCE",
	})
	require.NoError(t, err)
	assert.Equal(t, f.stages[1].ID, state.CurrentStageID)
	assert.Equal(t, "ACTIVE", state.Status)
	assert.Equal(t, models.OutcomeActive, state.OutcomeType)
	assert.False(t, state.IsTerminal)

	t.Run("history records the transition", func(t *testing.T) {
		rows, err := pipelines.ListHistory(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		require.Len(t, rows, 2) // ATTACH, then ADVANCE
		last := rows[1]
		assert.Equal(t, "ADVANCE", last.ActionCode)
		require.NotNil(t, last.FromStageID)
		assert.Equal(t, f.stages[0].ID, *last.FromStageID)
		assert.Equal(t, f.stages[1].ID, last.ToStageID)
	})

	t.Run("execution log records the decision", func(t *testing.T) {
		row, err := client.ActionExecutionLog.Query().
			Where(actionexecutionlog.ApplicationIDEQ(applicationID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ADVANCE", row.ActionCode)
		assert.Equal(t, f.recruiter.ID, row.ExecutedBy)
		assert.NotNil(t, row.SignalSnapshot)
	})

	t.Run("advance past the last stage is INVALID_ACTION", func(t *testing.T) {
		f.defineAction(actions, f.stages[1].ID, nil)
		f.defineAction(actions, f.stages[2].ID, nil)

		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE",
		})
		require.NoError(t, err)

		_, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE",
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))
	})
}

func TestActionService_ExecuteAction_Gates(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	actions := NewActionService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	signals := NewSignalService(client.Client, nil)
	ctx := context.Background()

	t.Run("unknown action is INVALID_ACTION", func(t *testing.T) {
		applicationID := f.attach(pipelines)
		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "TELEPORT",
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))
	})

	t.Run("missing capability is FORBIDDEN", func(t *testing.T) {
		f.defineAction(actions, f.stages[0].ID, nil)
		applicationID := f.attach(pipelines)
		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE",
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("requires_notes demands a non-blank note", func(t *testing.T) {
		f.defineAction(actions, f.stages[0].ID, func(req *models.DefineStageActionRequest) {
			req.ActionCode = "ADVANCE_NOTED"
			req.RequiresNotes = true
		})
		applicationID := f.attach(pipelines)

		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_NOTED",
			Notes:         "   ",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_NOTED",
			Notes:         "strong phone screen",
		})
		require.NoError(t, err)
	})

	t.Run("requires_feedback blocks until feedback exists", func(t *testing.T) {
		f.defineAction(actions, f.stages[0].ID, func(req *models.DefineStageActionRequest) {
			req.ActionCode = "ADVANCE_REVIEWED"
			req.RequiresFeedback = true
		})
		applicationID := f.attach(pipelines)

		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_REVIEWED",
		})
		require.Error(t, err)
		assert.Equal(t, CodeFeedbackRequired, GetCode(err))

		rating := 4
		_, err = pipelines.SubmitStageFeedback(ctx, models.SubmitStageFeedbackRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			Rating:        &rating,
			Comments:      "solid fundamentals",
		})
		require.NoError(t, err)

		_, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_REVIEWED",
		})
		require.NoError(t, err)
	})

	t.Run("signal gate blocks and traces unmet conditions", func(t *testing.T) {
		f.defineAction(actions, f.stages[0].ID, func(req *models.DefineStageActionRequest) {
			req.ActionCode = "ADVANCE_GATED"
			req.SignalConditions = &models.SignalConditions{
				Logic: models.LogicAll,
				Conditions: []models.SignalCondition{
					{Signal: "TECH_SCORE", Operator: models.OpGreaterEqual, Value: "3", OnMissing: models.MissingBlock},
				},
			}
		})
		applicationID := f.attach(pipelines)

		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_GATED",
		})
		require.Error(t, err)
		assert.Equal(t, CodeSignalsNotMet, GetCode(err))
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Contains(t, svcErr.Details, "conditions")

		f.putSignal(signals, applicationID, "TECH_SCORE", models.IntValue(2))
		_, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_GATED",
		})
		require.Error(t, err)
		assert.Equal(t, CodeSignalsNotMet, GetCode(err))

		f.putSignal(signals, applicationID, "TECH_SCORE", models.IntValue(4))
		state, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_GATED",
		})
		require.NoError(t, err)
		assert.Equal(t, f.stages[1].ID, state.CurrentStageID)

		// Gate trace and snapshot land in the execution log.
		row, err := client.ActionExecutionLog.Query().
			Where(actionexecutionlog.ApplicationIDEQ(applicationID)).
			Only(ctx)
		require.NoError(t, err)
		require.Len(t, row.ConditionsEvaluated, 1)
		assert.True(t, row.ConditionsEvaluated[0].Met)
		assert.Equal(t, float64(4), row.SignalSnapshot["TECH_SCORE"])
	})

	t.Run("WARN missing signal demands a note", func(t *testing.T) {
		f.defineAction(actions, f.stages[0].ID, func(req *models.DefineStageActionRequest) {
			req.ActionCode = "ADVANCE_WARN"
			req.SignalConditions = &models.SignalConditions{
				Logic: models.LogicAll,
				Conditions: []models.SignalCondition{
					{Signal: "REFERENCE_OK", Operator: models.OpEqual, Value: "true", OnMissing: models.MissingWarn},
				},
			}
		})
		applicationID := f.attach(pipelines)

		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_WARN",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		state, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE_WARN",
			Notes:         "references still pending, advancing anyway",
		})
		require.NoError(t, err)
		assert.Equal(t, f.stages[1].ID, state.CurrentStageID)
	})
}

func TestActionService_ExecuteAction_HoldAndTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	actions := NewActionService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	hold := models.OutcomeHold
	active := models.OutcomeActive
	failure := models.OutcomeFailure
	f.defineAction(actions, f.stages[0].ID, func(req *models.DefineStageActionRequest) {
		req.ActionCode = "HOLD"
		req.MovesToNextStage = false
		req.OutcomeType = &hold
		req.RequiredCapability = models.CapabilityChangeStatus
	})
	f.defineAction(actions, f.stages[0].ID, func(req *models.DefineStageActionRequest) {
		req.ActionCode = "ACTIVATE"
		req.MovesToNextStage = false
		req.OutcomeType = &active
		req.RequiredCapability = models.CapabilityChangeStatus
	})
	f.defineAction(actions, f.stages[0].ID, func(req *models.DefineStageActionRequest) {
		req.ActionCode = "REJECT"
		req.MovesToNextStage = false
		req.IsTerminal = true
		req.OutcomeType = &failure
		req.RequiredCapability = models.CapabilityTerminateApplication
	})

	applicationID := f.attach(pipelines)

	t.Run("reactivating an active application is INVALID_ACTION", func(t *testing.T) {
		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ACTIVATE",
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))
	})

	t.Run("hold then activate round-trips", func(t *testing.T) {
		state, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "HOLD",
		})
		require.NoError(t, err)
		assert.Equal(t, "ON_HOLD", state.Status)
		assert.Equal(t, models.OutcomeHold, state.OutcomeType)

		// Holding twice is invalid: the application is no longer ACTIVE.
		_, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "HOLD",
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))

		state, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ACTIVATE",
		})
		require.NoError(t, err)
		assert.Equal(t, "ACTIVE", state.Status)
	})

	t.Run("terminal rejection finalizes the application", func(t *testing.T) {
		state, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "REJECT",
			Notes:         "not enough system design depth",
		})
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", state.Status)
		assert.True(t, state.IsTerminal)

		_, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "HOLD",
		})
		require.Error(t, err)
		assert.Equal(t, CodeTerminalStatus, GetCode(err))
	})
}

func TestActionService_ExecuteAction_Replay(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	actions := NewActionService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	// No move, no outcome, not terminal: the computed transition equals the
	// current state, so the execution is a replay and records nothing.
	f.defineAction(actions, f.stages[0].ID, func(req *models.DefineStageActionRequest) {
		req.ActionCode = "TOUCH"
		req.MovesToNextStage = false
		req.RequiredCapability = ""
	})
	applicationID := f.attach(pipelines)

	before, err := pipelines.ListHistory(ctx, f.tenant.ID, applicationID)
	require.NoError(t, err)

	state, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
		TenantID:      f.tenant.ID,
		UserID:        f.owner.ID,
		ApplicationID: applicationID,
		ActionCode:    "TOUCH",
	})
	require.NoError(t, err)
	assert.Equal(t, f.stages[0].ID, state.CurrentStageID)

	after, err := pipelines.ListHistory(ctx, f.tenant.ID, applicationID)
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	count, err := client.ActionExecutionLog.Query().
		Where(actionexecutionlog.ApplicationIDEQ(applicationID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestActionService_ExecuteAction_Isolation(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	actions := NewActionService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	f.defineAction(actions, f.stages[0].ID, nil)
	applicationID := f.attach(pipelines)

	t.Run("cross-tenant execution reads as TENANT_MISMATCH", func(t *testing.T) {
		other := newFixture(t, client.Client)
		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      other.tenant.ID,
			UserID:        other.owner.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE",
		})
		require.Error(t, err)
		assert.Equal(t, CodeTenantMismatch, GetCode(err))
	})

	t.Run("untracked application is NOT_FOUND", func(t *testing.T) {
		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: "ghost",
			ActionCode:    "ADVANCE",
		})
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})

	t.Run("failed gate leaves no history row", func(t *testing.T) {
		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE",
		})
		require.Error(t, err)

		count, err := client.ApplicationStageHistory.Query().
			Where(
				applicationstagehistory.ApplicationIDEQ(applicationID),
				applicationstagehistory.ActionCodeEQ("ADVANCE"),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
