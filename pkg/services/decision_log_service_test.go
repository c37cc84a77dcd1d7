package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
	testdb "github.com/ameyzing09/rtr-api-sub000/test/database"
)

func TestDecisionLogService(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	actions := NewActionService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	logs := NewDecisionLogService(client.Client)
	ctx := context.Background()

	f.defineAction(actions, f.stages[0].ID, nil)
	failure := models.OutcomeFailure
	f.defineAction(actions, f.stages[1].ID, func(req *models.DefineStageActionRequest) {
		req.ActionCode = "REJECT"
		req.Label = "Reject"
		req.MovesToNextStage = false
		req.IsTerminal = true
		req.OutcomeType = &failure
		req.RequiresNotes = true
		req.RequiredCapability = models.CapabilityTerminateApplication
	})

	applicationID := f.attach(pipelines)

	t.Run("never rejected yields no rejection reason", func(t *testing.T) {
		reason, err := logs.GetRejectionReason(ctx, f.tenant.ID, f.owner.ID, applicationID)
		require.NoError(t, err)
		assert.Nil(t, reason)
	})

	_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
		TenantID:      f.tenant.ID,
		UserID:        f.recruiter.ID,
		ApplicationID: applicationID,
		ActionCode:    "ADVANCE",
	})
	require.NoError(t, err)
	_, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
		TenantID:      f.tenant.ID,
		UserID:        f.owner.ID,
		ApplicationID: applicationID,
		ActionCode:    "REJECT",
		Notes:         "missing mandatory visa sponsorship",
	})
	require.NoError(t, err)

	t.Run("lists newest first with display enrichment", func(t *testing.T) {
		list, err := logs.List(ctx, f.tenant.ID, f.owner.ID, applicationID, models.DecisionLogFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
		assert.Equal(t, defaultLogPageSize, list.Limit)
		require.Len(t, list.Entries, 2)

		reject := list.Entries[0]
		assert.Equal(t, "REJECT", reject.ActionCode)
		assert.True(t, reject.IsTerminal)
		assert.Equal(t, "Interview", reject.StageName)
		assert.Equal(t, f.owner.Email, reject.ExecutedByEmail)
		assert.Equal(t, "missing mandatory visa sponsorship", reject.DecisionNote)

		advance := list.Entries[1]
		assert.Equal(t, "ADVANCE", advance.ActionCode)
		assert.Equal(t, "Screening", advance.FromStageName)
		assert.Equal(t, "Interview", advance.ToStageName)
		assert.Equal(t, f.recruiter.Email, advance.ExecutedByEmail)
	})

	t.Run("filters", func(t *testing.T) {
		list, err := logs.List(ctx, f.tenant.ID, f.owner.ID, applicationID, models.DecisionLogFilters{
			ActionCode: "ADVANCE",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalCount)
		require.Len(t, list.Entries, 1)
		assert.Equal(t, "ADVANCE", list.Entries[0].ActionCode)

		list, err = logs.List(ctx, f.tenant.ID, f.owner.ID, applicationID, models.DecisionLogFilters{
			OutcomeType: &failure,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalCount)
		require.Len(t, list.Entries, 1)
		assert.Equal(t, "REJECT", list.Entries[0].ActionCode)
	})

	t.Run("paging", func(t *testing.T) {
		list, err := logs.List(ctx, f.tenant.ID, f.owner.ID, applicationID, models.DecisionLogFilters{
			Limit: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
		require.Len(t, list.Entries, 1)
		assert.Equal(t, "REJECT", list.Entries[0].ActionCode)

		list, err = logs.List(ctx, f.tenant.ID, f.owner.ID, applicationID, models.DecisionLogFilters{
			Limit:  1,
			Offset: 1,
		})
		require.NoError(t, err)
		require.Len(t, list.Entries, 1)
		assert.Equal(t, "ADVANCE", list.Entries[0].ActionCode)

		list, err = logs.List(ctx, f.tenant.ID, f.owner.ID, applicationID, models.DecisionLogFilters{
			Limit: 999,
		})
		require.NoError(t, err)
		assert.Equal(t, maxLogPageSize, list.Limit)
	})

	t.Run("get one entry", func(t *testing.T) {
		list, err := logs.List(ctx, f.tenant.ID, f.owner.ID, applicationID, models.DecisionLogFilters{})
		require.NoError(t, err)
		require.NotEmpty(t, list.Entries)

		entry, err := logs.Get(ctx, f.tenant.ID, f.owner.ID, applicationID, list.Entries[0].ID)
		require.NoError(t, err)
		assert.Equal(t, list.Entries[0].ID, entry.ID)

		_, err = logs.Get(ctx, f.tenant.ID, f.owner.ID, applicationID, "ghost")
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})

	t.Run("rejection reason reflects the latest terminal failure", func(t *testing.T) {
		reason, err := logs.GetRejectionReason(ctx, f.tenant.ID, f.owner.ID, applicationID)
		require.NoError(t, err)
		require.NotNil(t, reason)
		assert.Equal(t, "REJECT", reason.ActionCode)
		assert.Equal(t, "missing mandatory visa sponsorship", reason.DecisionNote)
		assert.Equal(t, "Interview", reason.StageName)
		assert.Equal(t, f.owner.ID, reason.ExecutedBy)
		assert.Equal(t, f.owner.Email, reason.ExecutedByEmail)
	})

	t.Run("requires VIEW_TRACKING", func(t *testing.T) {
		_, err := logs.List(ctx, f.tenant.ID, f.interviewer.ID, applicationID, models.DecisionLogFilters{})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("cross-tenant read is TENANT_MISMATCH", func(t *testing.T) {
		other := newFixture(t, client.Client)
		_, err := logs.List(ctx, other.tenant.ID, other.owner.ID, applicationID, models.DecisionLogFilters{})
		require.Error(t, err)
		assert.Equal(t, CodeTenantMismatch, GetCode(err))
	})

	t.Run("untracked application is NOT_FOUND", func(t *testing.T) {
		_, err := logs.List(ctx, f.tenant.ID, f.owner.ID, "ghost", models.DecisionLogFilters{})
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})
}
