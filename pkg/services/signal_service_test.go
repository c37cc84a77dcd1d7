package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
	testdb "github.com/ameyzing09/rtr-api-sub000/test/database"
)

func TestSignalService_PutSignal(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	signals := NewSignalService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	applicationID := f.attach(pipelines)
	ctx := context.Background()

	t.Run("first write creates the current version", func(t *testing.T) {
		row, err := signals.PutSignal(ctx, models.PutSignalRequest{
			TenantID:      f.tenant.ID,
			ApplicationID: applicationID,
			Key:           "TECH_SCORE",
			Value:         models.IntValue(3),
			Source:        models.SourceSystem,
			SetBy:         f.owner.ID,
		})
		require.NoError(t, err)
		assert.Nil(t, row.SupersededAt)

		latest, err := signals.Latest(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		require.Len(t, latest, 1)
		assert.Equal(t, "TECH_SCORE", latest[0].Key)
		assert.Equal(t, float64(3), latest[0].Value)
	})

	t.Run("second write supersedes the first", func(t *testing.T) {
		row, err := signals.PutSignal(ctx, models.PutSignalRequest{
			TenantID:      f.tenant.ID,
			ApplicationID: applicationID,
			Key:           "TECH_SCORE",
			Value:         models.IntValue(4),
			Source:        models.SourceManual,
			SetBy:         f.owner.ID,
			Note:          "re-scored after calibration",
		})
		require.NoError(t, err)

		latest, err := signals.Latest(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		require.Len(t, latest, 1)
		assert.Equal(t, float64(4), latest[0].Value)
		assert.Equal(t, models.SourceManual, latest[0].Source)

		history, err := signals.History(ctx, f.tenant.ID, applicationID, "TECH_SCORE")
		require.NoError(t, err)
		require.Len(t, history, 2)
		// Newest first; the superseded row links forward to its successor.
		assert.Equal(t, float64(4), history[0].Value)
		assert.NotNil(t, history[1].SupersededAt)
		assert.Equal(t, row.ID, history[1].SupersededBy)
	})

	t.Run("different keys do not interfere", func(t *testing.T) {
		f.putSignal(signals, applicationID, "BACKGROUND_OK", models.BoolValue(true))

		latest, err := signals.Latest(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		assert.Len(t, latest, 2)
	})

	t.Run("validates key and types", func(t *testing.T) {
		_, err := signals.PutSignal(ctx, models.PutSignalRequest{
			TenantID:      f.tenant.ID,
			ApplicationID: applicationID,
			Key:           " ",
			Value:         models.BoolValue(true),
			Source:        models.SourceSystem,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = signals.PutSignal(ctx, models.PutSignalRequest{
			TenantID:      f.tenant.ID,
			ApplicationID: applicationID,
			Key:           "X",
			Value:         models.SignalValue{Type: models.SignalType("blob")},
			Source:        models.SourceSystem,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSignalService_InterviewSupersession(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	signals := NewSignalService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	applicationID := f.attach(pipelines)
	ctx := context.Background()

	// A manual signal holds the key.
	_, err := signals.PutSignal(ctx, models.PutSignalRequest{
		TenantID:      f.tenant.ID,
		ApplicationID: applicationID,
		Key:           "CULTURE_FIT",
		Value:         models.BoolValue(true),
		Source:        models.SourceManual,
		SetBy:         f.owner.ID,
	})
	require.NoError(t, err)

	// An interview-sourced write only supersedes interview-sourced rows, so
	// it collides with the live manual row on the partial unique index.
	_, err = signals.PutSignal(ctx, models.PutSignalRequest{
		TenantID:      f.tenant.ID,
		ApplicationID: applicationID,
		Key:           "CULTURE_FIT",
		Value:         models.BoolValue(false),
		Source:        models.SourceInterview,
		SourceID:      "round-2",
		SetBy:         f.interviewer.ID,
	})
	require.Error(t, err)
	assert.Equal(t, CodeConflict, GetCode(err))

	// The manual row is untouched.
	latest, err := signals.Latest(ctx, f.tenant.ID, applicationID)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, true, latest[0].Value)
	assert.Equal(t, models.SourceManual, latest[0].Source)
}

func TestSignalService_SetManualSignal(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	signals := NewSignalService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	applicationID := f.attach(pipelines)
	ctx := context.Background()

	t.Run("parses the literal per declared type", func(t *testing.T) {
		row, err := signals.SetManualSignal(ctx, models.SetManualSignalRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			Key:           "YEARS_EXP",
			Type:          models.SignalFloat,
			Value:         "7.5",
			Note:          "from resume",
		})
		require.NoError(t, err)
		require.NotNil(t, row.ValueNumeric)
		assert.Equal(t, 7.5, *row.ValueNumeric)
		assert.Equal(t, models.SourceManual, row.SourceType)
	})

	t.Run("unparseable literal is rejected", func(t *testing.T) {
		_, err := signals.SetManualSignal(ctx, models.SetManualSignalRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: applicationID,
			Key:           "YEARS_EXP",
			Type:          models.SignalInteger,
			Value:         "lots",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires MANAGE_SETTINGS", func(t *testing.T) {
		_, err := signals.SetManualSignal(ctx, models.SetManualSignalRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			Key:           "YEARS_EXP",
			Type:          models.SignalInteger,
			Value:         "3",
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("cross-tenant application reads as TENANT_MISMATCH", func(t *testing.T) {
		other := newFixture(t, client.Client)
		_, err := signals.SetManualSignal(ctx, models.SetManualSignalRequest{
			TenantID:      other.tenant.ID,
			UserID:        other.owner.ID,
			ApplicationID: applicationID,
			Key:           "YEARS_EXP",
			Type:          models.SignalInteger,
			Value:         "3",
		})
		require.Error(t, err)
		assert.Equal(t, CodeTenantMismatch, GetCode(err))
	})

	t.Run("untracked application is NOT_FOUND", func(t *testing.T) {
		_, err := signals.SetManualSignal(ctx, models.SetManualSignalRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.owner.ID,
			ApplicationID: "ghost",
			Key:           "YEARS_EXP",
			Type:          models.SignalInteger,
			Value:         "3",
		})
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})
}
