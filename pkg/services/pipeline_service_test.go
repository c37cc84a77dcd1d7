package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
	testdb "github.com/ameyzing09/rtr-api-sub000/test/database"
)

func TestPipelineService_Attach(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	t.Run("attach lands on the first stage with ACTIVE status", func(t *testing.T) {
		applicationID := uuid.New().String()
		state, err := pipelines.AttachApplicationToPipeline(ctx, models.AttachApplicationRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			JobID:         f.job.ID,
			PipelineID:    f.pipeline.ID,
			FirstStageID:  f.stages[0].ID,
		})
		require.NoError(t, err)
		assert.Equal(t, f.stages[0].ID, state.CurrentStageID)
		assert.Equal(t, "ACTIVE", state.Status)
		assert.Equal(t, models.OutcomeActive, state.OutcomeType)
		assert.False(t, state.IsTerminal)

		history, err := pipelines.ListHistory(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "ATTACH", history[0].ActionCode)
		assert.Nil(t, history[0].FromStageID)

		t.Run("second attach conflicts", func(t *testing.T) {
			_, err := pipelines.AttachApplicationToPipeline(ctx, models.AttachApplicationRequest{
				TenantID:      f.tenant.ID,
				UserID:        f.owner.ID,
				ApplicationID: applicationID,
				JobID:         f.job.ID,
				PipelineID:    f.pipeline.ID,
				FirstStageID:  f.stages[0].ID,
			})
			require.Error(t, err)
			assert.Equal(t, CodeConflict, GetCode(err))
		})
	})

	t.Run("unknown job is NOT_FOUND", func(t *testing.T) {
		_, err := pipelines.AttachApplicationToPipeline(ctx, models.AttachApplicationRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: uuid.New().String(),
			JobID:         "ghost",
			PipelineID:    f.pipeline.ID,
			FirstStageID:  f.stages[0].ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})

	t.Run("stage outside the pipeline is NOT_FOUND", func(t *testing.T) {
		other := newFixture(t, client.Client)
		_, err := pipelines.AttachApplicationToPipeline(ctx, models.AttachApplicationRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: uuid.New().String(),
			JobID:         f.job.ID,
			PipelineID:    f.pipeline.ID,
			FirstStageID:  other.stages[0].ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})
}

func TestPipelineService_MoveStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()
	applicationID := f.attach(pipelines)

	t.Run("requires OVERRIDE_FLOW", func(t *testing.T) {
		_, err := pipelines.MoveStage(ctx, models.MoveStageRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			ToStageID:     f.stages[2].ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("moves anywhere in the pipeline and records the reason", func(t *testing.T) {
		state, err := pipelines.MoveStage(ctx, models.MoveStageRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ToStageID:     f.stages[2].ID,
			Reason:        "candidate already cleared interviews elsewhere",
		})
		require.NoError(t, err)
		assert.Equal(t, f.stages[2].ID, state.CurrentStageID)
		// Status does not change on a manual move.
		assert.Equal(t, "ACTIVE", state.Status)

		row, err := client.ActionExecutionLog.Query().
			Where(
				actionexecutionlog.ApplicationIDEQ(applicationID),
				actionexecutionlog.ActionCodeEQ("MOVE_STAGE"),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "candidate already cleared interviews elsewhere", row.OverrideReason)
		require.NotNil(t, row.FromStageID)
		assert.Equal(t, f.stages[0].ID, *row.FromStageID)
	})

	t.Run("moving backward works too", func(t *testing.T) {
		state, err := pipelines.MoveStage(ctx, models.MoveStageRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ToStageID:     f.stages[0].ID,
			Reason:        "needs another screen",
		})
		require.NoError(t, err)
		assert.Equal(t, f.stages[0].ID, state.CurrentStageID)
	})

	t.Run("move to the current stage is a no-op", func(t *testing.T) {
		before, err := pipelines.ListHistory(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)

		state, err := pipelines.MoveStage(ctx, models.MoveStageRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ToStageID:     f.stages[0].ID,
		})
		require.NoError(t, err)
		assert.Equal(t, f.stages[0].ID, state.CurrentStageID)

		after, err := pipelines.ListHistory(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("stage of another pipeline is INVALID_ACTION", func(t *testing.T) {
		other := newFixture(t, client.Client)
		_, err := pipelines.MoveStage(ctx, models.MoveStageRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			ToStageID:     other.stages[1].ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))
	})
}

func TestPipelineService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()
	applicationID := f.attach(pipelines)

	t.Run("requires CHANGE_STATUS", func(t *testing.T) {
		_, err := pipelines.UpdateStatus(ctx, models.UpdateStatusRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			StatusCode:    "ON_HOLD",
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("derives outcome from the target catalog entry", func(t *testing.T) {
		state, err := pipelines.UpdateStatus(ctx, models.UpdateStatusRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			StatusCode:    "ON_HOLD",
			Reason:        "budget freeze",
		})
		require.NoError(t, err)
		assert.Equal(t, "ON_HOLD", state.Status)
		assert.Equal(t, models.OutcomeHold, state.OutcomeType)
		assert.False(t, state.IsTerminal)

		row, err := client.ActionExecutionLog.Query().
			Where(
				actionexecutionlog.ApplicationIDEQ(applicationID),
				actionexecutionlog.ActionCodeEQ("UPDATE_STATUS"),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "budget freeze", row.DecisionNote)
	})

	t.Run("same code is a no-op", func(t *testing.T) {
		before, err := pipelines.ListHistory(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)

		_, err = pipelines.UpdateStatus(ctx, models.UpdateStatusRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			StatusCode:    "ON_HOLD",
		})
		require.NoError(t, err)

		after, err := pipelines.ListHistory(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("unknown status is INVALID_STATUS", func(t *testing.T) {
		_, err := pipelines.UpdateStatus(ctx, models.UpdateStatusRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			StatusCode:    "LIMBO",
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidStatus, GetCode(err))
	})

	t.Run("terminal target finalizes the application", func(t *testing.T) {
		state, err := pipelines.UpdateStatus(ctx, models.UpdateStatusRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			StatusCode:    "WITHDRAWN",
			Reason:        "candidate accepted another offer",
		})
		require.NoError(t, err)
		assert.Equal(t, "WITHDRAWN", state.Status)
		assert.Equal(t, models.OutcomeNeutral, state.OutcomeType)
		assert.True(t, state.IsTerminal)

		_, err = pipelines.UpdateStatus(ctx, models.UpdateStatusRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			StatusCode:    "ACTIVE",
		})
		require.Error(t, err)
		assert.Equal(t, CodeTerminalStatus, GetCode(err))
	})
}

func TestPipelineService_SubmitStageFeedback(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()
	applicationID := f.attach(pipelines)

	t.Run("records feedback on the current stage", func(t *testing.T) {
		rating := 5
		fb, err := pipelines.SubmitStageFeedback(ctx, models.SubmitStageFeedbackRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			Rating:        &rating,
			Comments:      "excellent communication",
		})
		require.NoError(t, err)
		assert.Equal(t, f.stages[0].ID, fb.StageID)
		require.NotNil(t, fb.Rating)
		assert.Equal(t, 5, *fb.Rating)
	})

	t.Run("comments are required", func(t *testing.T) {
		_, err := pipelines.SubmitStageFeedback(ctx, models.SubmitStageFeedbackRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			Comments:      "  ",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rating is bounded 1 to 5", func(t *testing.T) {
		rating := 6
		_, err := pipelines.SubmitStageFeedback(ctx, models.SubmitStageFeedbackRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			Rating:        &rating,
			Comments:      "too good",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
