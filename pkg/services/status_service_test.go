package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
	testdb "github.com/ameyzing09/rtr-api-sub000/test/database"
)

func TestStatusService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	statuses := NewStatusService(client.Client)
	ctx := context.Background()

	list, err := statuses.List(ctx, f.tenant.ID)
	require.NoError(t, err)
	require.Len(t, list, 5)

	// Seeded catalog comes back in sort_order.
	codes := make([]string, 0, len(list))
	for _, st := range list {
		codes = append(codes, st.StatusCode)
	}
	assert.Equal(t, []string{"ACTIVE", "ON_HOLD", "HIRED", "REJECTED", "WITHDRAWN"}, codes)
}

func TestStatusService_ResolveStatusForOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	statuses := NewStatusService(client.Client)
	ctx := context.Background()

	tests := []struct {
		outcome  models.OutcomeType
		terminal bool
		want     string
	}{
		{models.OutcomeActive, false, "ACTIVE"},
		{models.OutcomeHold, false, "ON_HOLD"},
		{models.OutcomeSuccess, true, "HIRED"},
		{models.OutcomeFailure, true, "REJECTED"},
		{models.OutcomeNeutral, true, "WITHDRAWN"},
	}
	for _, tt := range tests {
		code, err := statuses.ResolveStatusForOutcome(ctx, f.tenant.ID, tt.outcome, tt.terminal)
		require.NoError(t, err)
		assert.Equal(t, tt.want, code)
	}

	t.Run("lowest sort_order wins among duplicates", func(t *testing.T) {
		_, err := statuses.CreateStatus(ctx, models.CreateStatusRequest{
			TenantID:    f.tenant.ID,
			UserID:      f.owner.ID,
			StatusCode:  "SHORTLISTED",
			DisplayName: "Shortlisted",
			OutcomeType: models.OutcomeActive,
			SortOrder:   0,
		})
		require.NoError(t, err)

		code, err := statuses.ResolveStatusForOutcome(ctx, f.tenant.ID, models.OutcomeActive, false)
		require.NoError(t, err)
		assert.Equal(t, "SHORTLISTED", code)
	})

	t.Run("unmapped pair is INVALID_STATUS", func(t *testing.T) {
		_, err := statuses.ResolveStatusForOutcome(ctx, f.tenant.ID, models.OutcomeNeutral, false)
		require.Error(t, err)
		assert.Equal(t, CodeInvalidStatus, GetCode(err))
	})
}

func TestStatusService_CreateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	statuses := NewStatusService(client.Client)
	ctx := context.Background()

	t.Run("duplicate code conflicts", func(t *testing.T) {
		_, err := statuses.CreateStatus(ctx, models.CreateStatusRequest{
			TenantID:    f.tenant.ID,
			UserID:      f.owner.ID,
			StatusCode:  "ACTIVE",
			DisplayName: "Active Again",
			OutcomeType: models.OutcomeActive,
		})
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))
	})

	t.Run("same code is fine in another tenant", func(t *testing.T) {
		other := newFixture(t, client.Client)
		st, err := statuses.CreateStatus(ctx, models.CreateStatusRequest{
			TenantID:    other.tenant.ID,
			UserID:      other.owner.ID,
			StatusCode:  "FINAL_LOOP",
			DisplayName: "Final Loop",
			OutcomeType: models.OutcomeActive,
			SortOrder:   9,
		})
		require.NoError(t, err)
		assert.Equal(t, other.tenant.ID, st.TenantID)
	})

	t.Run("requires MANAGE_SETTINGS", func(t *testing.T) {
		_, err := statuses.CreateStatus(ctx, models.CreateStatusRequest{
			TenantID:    f.tenant.ID,
			UserID:      f.interviewer.ID,
			StatusCode:  "NOPE",
			DisplayName: "Nope",
			OutcomeType: models.OutcomeActive,
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})
}

func TestStatusService_UpdateStatusCatalog(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	statuses := NewStatusService(client.Client)
	ctx := context.Background()

	name := "Still Active"
	st, err := statuses.UpdateStatusCatalog(ctx, models.UpdateStatusCatalogRequest{
		TenantID:    f.tenant.ID,
		UserID:      f.owner.ID,
		StatusCode:  "ACTIVE",
		DisplayName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Still Active", st.DisplayName)
	assert.Equal(t, "ACTIVE", st.StatusCode)

	t.Run("blank display name is rejected", func(t *testing.T) {
		blank := "  "
		_, err := statuses.UpdateStatusCatalog(ctx, models.UpdateStatusCatalogRequest{
			TenantID:    f.tenant.ID,
			UserID:      f.owner.ID,
			StatusCode:  "ACTIVE",
			DisplayName: &blank,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown code is NOT_FOUND", func(t *testing.T) {
		_, err := statuses.UpdateStatusCatalog(ctx, models.UpdateStatusCatalogRequest{
			TenantID:   f.tenant.ID,
			UserID:     f.owner.ID,
			StatusCode: "MISSING",
		})
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})
}

func TestStatusService_DeactivateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	statuses := NewStatusService(client.Client)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	t.Run("unused status deactivates", func(t *testing.T) {
		require.NoError(t, statuses.DeactivateStatus(ctx, f.tenant.ID, f.owner.ID, "ON_HOLD"))

		_, err := statuses.ResolveStatusForOutcome(ctx, f.tenant.ID, models.OutcomeHold, false)
		require.Error(t, err)
		assert.Equal(t, CodeInvalidStatus, GetCode(err))
	})

	t.Run("status held by an application cannot deactivate", func(t *testing.T) {
		f.attach(pipelines)

		err := statuses.DeactivateStatus(ctx, f.tenant.ID, f.owner.ID, "ACTIVE")
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))
	})
}
