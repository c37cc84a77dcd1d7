package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
	testdb "github.com/ameyzing09/rtr-api-sub000/test/database"
)

// reviewSchema is the standard template schema used across evaluation tests:
// a boolean verdict, a bounded integer score averaged across the panel, and
// free-form notes.
func reviewSchema() []models.SignalField {
	avg := models.AggregationAverage
	min, max := 1.0, 5.0
	return []models.SignalField{
		{Key: "TECH_OK", Type: models.SignalBoolean, Label: "Technically sound"},
		{Key: "SCORE", Type: models.SignalInteger, Label: "Overall score", Aggregation: &avg, Min: &min, Max: &max, Required: true},
		{Key: "NOTES", Type: models.SignalText, Label: "Notes"},
	}
}

func (f *fixture) newTemplate(evals *EvaluationService, name string, pt models.ParticipantType) *ent.EvaluationTemplate {
	f.t.Helper()
	majority := models.AggregationMajority
	tpl, err := evals.CreateTemplate(context.Background(), models.CreateTemplateRequest{
		TenantID:           f.tenant.ID,
		UserID:             f.owner.ID,
		Name:               name,
		ParticipantType:    pt,
		DefaultAggregation: &majority,
		SignalSchema:       reviewSchema(),
	})
	require.NoError(f.t, err)
	return tpl
}

func TestEvaluationService_Templates(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	evals := NewEvaluationService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	tpl := f.newTemplate(evals, "Tech Review", models.ParticipantPanel)
	assert.Equal(t, 1, tpl.Version)
	assert.True(t, tpl.IsLatest)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		majority := models.AggregationMajority
		_, err := evals.CreateTemplate(ctx, models.CreateTemplateRequest{
			TenantID:           f.tenant.ID,
			UserID:             f.owner.ID,
			Name:               "Tech Review",
			ParticipantType:    models.ParticipantSingle,
			DefaultAggregation: &majority,
			SignalSchema:       reviewSchema(),
		})
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))
	})

	t.Run("schema is validated", func(t *testing.T) {
		avg := models.AggregationAverage
		_, err := evals.CreateTemplate(ctx, models.CreateTemplateRequest{
			TenantID:        f.tenant.ID,
			UserID:          f.owner.ID,
			Name:            "Broken",
			ParticipantType: models.ParticipantSingle,
			SignalSchema: []models.SignalField{
				{Key: "NOTES", Type: models.SignalText, Aggregation: &avg},
			},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires MANAGE_SETTINGS", func(t *testing.T) {
		_, err := evals.CreateTemplate(ctx, models.CreateTemplateRequest{
			TenantID:        f.tenant.ID,
			UserID:          f.interviewer.ID,
			Name:            "Sneaky",
			ParticipantType: models.ParticipantSingle,
			SignalSchema:    reviewSchema(),
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("structural edit of an unreferenced template applies in place", func(t *testing.T) {
		pt := models.ParticipantSingle
		updated, err := evals.UpdateTemplate(ctx, models.UpdateTemplateRequest{
			TenantID:        f.tenant.ID,
			UserID:          f.owner.ID,
			TemplateID:      tpl.ID,
			ParticipantType: &pt,
		})
		require.NoError(t, err)
		assert.Equal(t, tpl.ID, updated.ID)
		assert.Equal(t, 1, updated.Version)
		assert.Equal(t, models.ParticipantSingle, updated.ParticipantType)
	})

	t.Run("structural edit of a referenced template creates a version", func(t *testing.T) {
		applicationID := f.attach(pipelines)
		inst, err := evals.CreateInstance(ctx, models.CreateInstanceRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			TemplateID:    tpl.ID,
			StageID:       f.stages[0].ID,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inst.TemplateVersion)

		pt := models.ParticipantPanel
		next, err := evals.UpdateTemplate(ctx, models.UpdateTemplateRequest{
			TenantID:        f.tenant.ID,
			UserID:          f.owner.ID,
			TemplateID:      tpl.ID,
			ParticipantType: &pt,
		})
		require.NoError(t, err)
		assert.NotEqual(t, tpl.ID, next.ID)
		assert.Equal(t, 2, next.Version)
		assert.True(t, next.IsLatest)

		old, err := evals.GetTemplate(ctx, f.tenant.ID, tpl.ID)
		require.NoError(t, err)
		assert.False(t, old.IsLatest)

		// The existing instance keeps the version it was created from.
		inst, err = evals.GetEvaluation(ctx, f.tenant.ID, inst.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, inst.TemplateVersion)

		// Listing shows one row per lineage, the latest.
		list, err := evals.ListTemplates(ctx, f.tenant.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, next.ID, list[0].ID)
	})

	t.Run("name edit never versions", func(t *testing.T) {
		latest, err := evals.ListTemplates(ctx, f.tenant.ID)
		require.NoError(t, err)
		require.Len(t, latest, 1)

		name := "Tech Review v2"
		updated, err := evals.UpdateTemplate(ctx, models.UpdateTemplateRequest{
			TenantID:   f.tenant.ID,
			UserID:     f.owner.ID,
			TemplateID: latest[0].ID,
			Name:       &name,
		})
		require.NoError(t, err)
		assert.Equal(t, latest[0].ID, updated.ID)
		assert.Equal(t, "Tech Review v2", updated.Name)
	})

	t.Run("deactivated template refuses new instances", func(t *testing.T) {
		dead := f.newTemplate(evals, "Retired Review", models.ParticipantSingle)
		require.NoError(t, evals.DeactivateTemplate(ctx, f.tenant.ID, f.owner.ID, dead.ID))

		applicationID := f.attach(pipelines)
		_, err := evals.CreateInstance(ctx, models.CreateInstanceRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			TemplateID:    dead.ID,
			StageID:       f.stages[0].ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))
	})
}

func TestEvaluationService_StageBindings(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	evals := NewEvaluationService(client.Client, nil)
	ctx := context.Background()

	tpl := f.newTemplate(evals, "Screen Review", models.ParticipantSingle)

	t.Run("bind and duplicate", func(t *testing.T) {
		binding, err := evals.BindStageTemplate(ctx, f.tenant.ID, f.owner.ID, f.stages[0].ID, tpl.ID, true)
		require.NoError(t, err)
		assert.True(t, binding.AutoCreate)

		_, err = evals.BindStageTemplate(ctx, f.tenant.ID, f.owner.ID, f.stages[0].ID, tpl.ID, true)
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))
	})

	t.Run("unknown template is NOT_FOUND", func(t *testing.T) {
		_, err := evals.BindStageTemplate(ctx, f.tenant.ID, f.owner.ID, f.stages[0].ID, "ghost", true)
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})

	t.Run("requires MANAGE_SETTINGS", func(t *testing.T) {
		_, err := evals.BindStageTemplate(ctx, f.tenant.ID, f.recruiter.ID, f.stages[1].ID, tpl.ID, true)
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("unbind", func(t *testing.T) {
		require.NoError(t, evals.UnbindStageTemplate(ctx, f.tenant.ID, f.owner.ID, f.stages[0].ID, tpl.ID))

		err := evals.UnbindStageTemplate(ctx, f.tenant.ID, f.owner.ID, f.stages[2].ID, tpl.ID)
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})
}

func TestEvaluationService_AutoCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	evals := NewEvaluationService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	actions := NewActionService(client.Client, nil)
	ctx := context.Background()

	tpl := f.newTemplate(evals, "Interview Review", models.ParticipantPanel)
	_, err := evals.BindStageTemplate(ctx, f.tenant.ID, f.owner.ID, f.stages[1].ID, tpl.ID, true)
	require.NoError(t, err)
	f.defineAction(actions, f.stages[0].ID, nil)

	t.Run("entering a bound stage creates an instance", func(t *testing.T) {
		applicationID := f.attach(pipelines)
		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE",
		})
		require.NoError(t, err)

		list, err := evals.ListForApplication(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, tpl.ID, list[0].TemplateID)
		assert.Equal(t, f.stages[1].ID, list[0].StageID)
		assert.Equal(t, models.EvaluationPending, list[0].Status)
		assert.Empty(t, list[0].Edges.Participants)
	})

	t.Run("HR stages seed the job creator as the first reviewer", func(t *testing.T) {
		client.PipelineStage.UpdateOneID(f.stages[1].ID).
			SetConductedBy("HR").
			SaveX(ctx)

		applicationID := f.attach(pipelines)
		_, err := actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE",
		})
		require.NoError(t, err)

		list, err := evals.ListForApplication(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Len(t, list[0].Edges.Participants, 1)
		assert.Equal(t, f.owner.ID, list[0].Edges.Participants[0].UserID)
	})

	t.Run("bindings track the latest template version", func(t *testing.T) {
		pt := models.ParticipantSingle
		next, err := evals.UpdateTemplate(ctx, models.UpdateTemplateRequest{
			TenantID:        f.tenant.ID,
			UserID:          f.owner.ID,
			TemplateID:      tpl.ID,
			ParticipantType: &pt,
		})
		require.NoError(t, err)
		require.Equal(t, 2, next.Version)

		applicationID := f.attach(pipelines)
		_, err = actions.ExecuteAction(ctx, models.ExecuteActionRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			ActionCode:    "ADVANCE",
		})
		require.NoError(t, err)

		inst, err := client.EvaluationInstance.Query().
			Where(evaluationinstance.ApplicationIDEQ(applicationID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, next.ID, inst.TemplateID)
		assert.Equal(t, 2, inst.TemplateVersion)
	})
}

func TestEvaluationService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	evals := NewEvaluationService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	tpl := f.newTemplate(evals, "Panel Review", models.ParticipantPanel)
	applicationID := f.attach(pipelines)

	inst, err := evals.CreateInstance(ctx, models.CreateInstanceRequest{
		TenantID:      f.tenant.ID,
		UserID:        f.recruiter.ID,
		ApplicationID: applicationID,
		TemplateID:    tpl.ID,
		StageID:       f.stages[0].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EvaluationPending, inst.Status)

	t.Run("interviewer cannot create instances", func(t *testing.T) {
		_, err := evals.CreateInstance(ctx, models.CreateInstanceRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.interviewer.ID,
			ApplicationID: applicationID,
			TemplateID:    tpl.ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("duplicate instance per application and stage conflicts", func(t *testing.T) {
		_, err := evals.CreateInstance(ctx, models.CreateInstanceRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			TemplateID:    tpl.ID,
			StageID:       f.stages[0].ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))
	})

	t.Run("participants", func(t *testing.T) {
		p, err := evals.AddParticipant(ctx, models.AddParticipantRequest{
			TenantID:     f.tenant.ID,
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Participant:  f.interviewer.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, p.Sequence)
		assert.Equal(t, models.ParticipantPending, p.Status)

		_, err = evals.AddParticipant(ctx, models.AddParticipantRequest{
			TenantID:     f.tenant.ID,
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Participant:  f.interviewer.ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))

		_, err = evals.AddParticipant(ctx, models.AddParticipantRequest{
			TenantID:     f.tenant.ID,
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Participant:  "ghost",
		})
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})

	t.Run("responses are validated against the schema", func(t *testing.T) {
		tests := []struct {
			name string
			data map[string]any
		}{
			{"unknown key", map[string]any{"SCORE": 3, "VIBES": "good"}},
			{"missing required", map[string]any{"TECH_OK": true}},
			{"wrong type", map[string]any{"SCORE": "three"}},
			{"not an integer", map[string]any{"SCORE": 3.5}},
			{"above max", map[string]any{"SCORE": 9}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := evals.SubmitResponse(ctx, models.SubmitResponseRequest{
					UserID:       f.interviewer.ID,
					EvaluationID: inst.ID,
					Data:         tt.data,
				})
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("non-participant cannot submit", func(t *testing.T) {
		_, err := evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"SCORE": 3},
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("submission moves the instance in progress", func(t *testing.T) {
		_, err := evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.interviewer.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"TECH_OK": true, "SCORE": 4, "NOTES": "solid"},
		})
		require.NoError(t, err)

		got, err := evals.GetEvaluation(ctx, f.tenant.ID, inst.ID)
		require.NoError(t, err)
		assert.Equal(t, models.EvaluationInProgress, got.Status)
		require.Len(t, got.Edges.Responses, 1)

		t.Run("responses are immutable", func(t *testing.T) {
			_, err := evals.SubmitResponse(ctx, models.SubmitResponseRequest{
				UserID:       f.interviewer.ID,
				EvaluationID: inst.ID,
				Data:         map[string]any{"SCORE": 2},
			})
			require.Error(t, err)
			assert.Equal(t, CodeConflict, GetCode(err))
		})

		t.Run("submitted participants cannot be removed", func(t *testing.T) {
			err := evals.RemoveParticipant(ctx, f.tenant.ID, f.recruiter.ID, inst.ID, f.interviewer.ID)
			require.Error(t, err)
			assert.Equal(t, CodeInvalidAction, GetCode(err))
		})
	})

	t.Run("decline and removal", func(t *testing.T) {
		extra := f.newUser(models.RoleInterviewer)
		_, err := evals.AddParticipant(ctx, models.AddParticipantRequest{
			TenantID:     f.tenant.ID,
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Participant:  extra.ID,
		})
		require.NoError(t, err)

		require.NoError(t, evals.DeclineParticipation(ctx, f.tenant.ID, extra.ID, inst.ID))

		_, err = evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       extra.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"SCORE": 3},
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))

		err = evals.DeclineParticipation(ctx, f.tenant.ID, extra.ID, inst.ID)
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))

		// A declined participant can still be removed.
		require.NoError(t, evals.RemoveParticipant(ctx, f.tenant.ID, f.recruiter.ID, inst.ID, extra.ID))

		err = evals.RemoveParticipant(ctx, f.tenant.ID, f.recruiter.ID, inst.ID, extra.ID)
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})

	t.Run("cancel closes the instance", func(t *testing.T) {
		require.NoError(t, evals.CancelInstance(ctx, f.tenant.ID, f.recruiter.ID, inst.ID))

		_, err := evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.interviewer.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"SCORE": 3},
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))

		err = evals.CancelInstance(ctx, f.tenant.ID, f.recruiter.ID, inst.ID)
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))

		// Cancellation writes no signals.
		signals := NewSignalService(client.Client, nil)
		latest, err := signals.Latest(ctx, f.tenant.ID, applicationID)
		require.NoError(t, err)
		assert.Empty(t, latest)
	})
}

func TestEvaluationService_Complete(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	evals := NewEvaluationService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	signals := NewSignalService(client.Client, nil)
	ctx := context.Background()

	tpl := f.newTemplate(evals, "Hiring Panel", models.ParticipantPanel)
	applicationID := f.attach(pipelines)

	newPanel := func(t *testing.T, appID string) *ent.EvaluationInstance {
		t.Helper()
		inst, err := evals.CreateInstance(ctx, models.CreateInstanceRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: appID,
			TemplateID:    tpl.ID,
		})
		require.NoError(t, err)
		for _, userID := range []string{f.recruiter.ID, f.interviewer.ID} {
			_, err := evals.AddParticipant(ctx, models.AddParticipantRequest{
				TenantID:     f.tenant.ID,
				UserID:       f.recruiter.ID,
				EvaluationID: inst.ID,
				Participant:  userID,
			})
			require.NoError(t, err)
		}
		return inst
	}

	t.Run("panel completes only when every reviewer submitted", func(t *testing.T) {
		inst := newPanel(t, applicationID)

		_, err := evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeEvaluationIncomplete, GetCode(err))

		_, err = evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"TECH_OK": true, "SCORE": 4, "NOTES": "strong"},
		})
		require.NoError(t, err)

		_, err = evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeEvaluationIncomplete, GetCode(err))

		_, err = evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.interviewer.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"TECH_OK": true, "SCORE": 3},
		})
		require.NoError(t, err)

		completed, err := evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.EvaluationCompleted, completed.Status)
		assert.False(t, completed.ForceCompleted)

		t.Run("aggregated signals land in the store", func(t *testing.T) {
			latest, err := signals.Latest(ctx, f.tenant.ID, applicationID)
			require.NoError(t, err)

			byKey := make(map[string]models.SignalDTO, len(latest))
			for _, s := range latest {
				byKey[s.Key] = s
			}
			// TECH_OK reduces by the template default MAJORITY, SCORE by its
			// field-level AVERAGE. Text never aggregates.
			require.Contains(t, byKey, "TECH_OK")
			assert.Equal(t, true, byKey["TECH_OK"].Value)
			assert.Equal(t, models.SourceEvaluation, byKey["TECH_OK"].Source)
			require.Contains(t, byKey, "SCORE")
			assert.Equal(t, 3.5, byKey["SCORE"].Value)
			assert.NotContains(t, byKey, "NOTES")
		})

		t.Run("completed instances are closed", func(t *testing.T) {
			_, err := evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
				UserID:       f.recruiter.ID,
				EvaluationID: inst.ID,
			})
			require.Error(t, err)
			assert.Equal(t, CodeInvalidAction, GetCode(err))
		})
	})

	t.Run("force completion", func(t *testing.T) {
		appID := f.attach(pipelines)
		inst := newPanel(t, appID)
		_, err := evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"TECH_OK": true, "SCORE": 4},
		})
		require.NoError(t, err)

		t.Run("requires a note", func(t *testing.T) {
			_, err := evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
				UserID:       f.owner.ID,
				EvaluationID: inst.ID,
				Force:        true,
			})
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})

		t.Run("requires OVERRIDE_FLOW", func(t *testing.T) {
			_, err := evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
				UserID:       f.recruiter.ID,
				EvaluationID: inst.ID,
				Force:        true,
				ForceNote:    "second reviewer left the company",
			})
			require.Error(t, err)
			assert.Equal(t, CodeForbidden, GetCode(err))
		})

		completed, err := evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
			UserID:       f.owner.ID,
			EvaluationID: inst.ID,
			Force:        true,
			ForceNote:    "second reviewer left the company",
		})
		require.NoError(t, err)
		assert.True(t, completed.ForceCompleted)
		assert.Equal(t, "second reviewer left the company", completed.ForceNote)

		latest, err := signals.Latest(ctx, f.tenant.ID, appID)
		require.NoError(t, err)
		byKey := make(map[string]models.SignalDTO, len(latest))
		for _, s := range latest {
			byKey[s.Key] = s
		}
		assert.Equal(t, float64(4), byKey["SCORE"].Value)
	})

	t.Run("an outsider without feedback manage cannot complete", func(t *testing.T) {
		appID := f.attach(pipelines)
		inst := newPanel(t, appID)

		outsider := f.newUser(models.RoleInterviewer)
		_, err := evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
			UserID:       outsider.ID,
			EvaluationID: inst.ID,
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})
}

func TestEvaluationService_Sequential(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	evals := NewEvaluationService(client.Client, nil)
	pipelines := NewPipelineService(client.Client, nil)
	ctx := context.Background()

	tpl := f.newTemplate(evals, "Sequential Loop", models.ParticipantSequential)
	applicationID := f.attach(pipelines)

	inst, err := evals.CreateInstance(ctx, models.CreateInstanceRequest{
		TenantID:      f.tenant.ID,
		UserID:        f.recruiter.ID,
		ApplicationID: applicationID,
		TemplateID:    tpl.ID,
	})
	require.NoError(t, err)
	for _, userID := range []string{f.recruiter.ID, f.interviewer.ID} {
		_, err := evals.AddParticipant(ctx, models.AddParticipantRequest{
			TenantID:     f.tenant.ID,
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Participant:  userID,
		})
		require.NoError(t, err)
	}

	t.Run("out of order submission is rejected", func(t *testing.T) {
		_, err := evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.interviewer.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"SCORE": 3},
		})
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, GetCode(err))
	})

	t.Run("in order works and one submission suffices", func(t *testing.T) {
		_, err := evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"SCORE": 4},
		})
		require.NoError(t, err)

		_, err = evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.interviewer.ID,
			EvaluationID: inst.ID,
			Data:         map[string]any{"SCORE": 2},
		})
		require.NoError(t, err)

		completed, err := evals.CompleteEvaluation(ctx, models.CompleteEvaluationRequest{
			UserID:       f.recruiter.ID,
			EvaluationID: inst.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.EvaluationCompleted, completed.Status)
	})

	t.Run("a declined earlier reviewer unblocks the next", func(t *testing.T) {
		second, err := evals.CreateInstance(ctx, models.CreateInstanceRequest{
			TenantID:      f.tenant.ID,
			UserID:        f.recruiter.ID,
			ApplicationID: applicationID,
			TemplateID:    tpl.ID,
			StageID:       f.stages[0].ID,
		})
		require.NoError(t, err)
		for _, userID := range []string{f.recruiter.ID, f.interviewer.ID} {
			_, err := evals.AddParticipant(ctx, models.AddParticipantRequest{
				TenantID:     f.tenant.ID,
				UserID:       f.recruiter.ID,
				EvaluationID: second.ID,
				Participant:  userID,
			})
			require.NoError(t, err)
		}

		require.NoError(t, evals.DeclineParticipation(ctx, f.tenant.ID, f.recruiter.ID, second.ID))

		_, err = evals.SubmitResponse(ctx, models.SubmitResponseRequest{
			UserID:       f.interviewer.ID,
			EvaluationID: second.ID,
			Data:         map[string]any{"SCORE": 5},
		})
		require.NoError(t, err)
	})
}
