package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/pkg/config"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// fixture is the standard test world: a provisioned tenant with the built-in
// status catalog and capability matrix, one user per role, a job, and a
// three-stage pipeline.
type fixture struct {
	t      *testing.T
	client *ent.Client

	tenant      *ent.Tenant
	owner       *ent.User
	recruiter   *ent.User
	interviewer *ent.User

	job      *ent.Job
	pipeline *ent.Pipeline
	stages   []*ent.PipelineStage
}

// newFixture provisions the tenant through TenantService so the seeded
// catalog and capability matrix match production, then builds the pipeline
// directly through ent.
func newFixture(t *testing.T, client *ent.Client) *fixture {
	t.Helper()
	ctx := context.Background()

	builtin := config.GetBuiltinConfig()
	tenants := NewTenantService(client, builtin.SeedStatuses, builtin.SeedCapabilities)

	tenant, owner, err := tenants.CreateTenant(ctx, models.CreateTenantRequest{
		Name:       "Acme Hiring",
		OwnerEmail: "owner@acme.test",
		OwnerName:  "Olive Owner",
	})
	require.NoError(t, err)

	f := &fixture{t: t, client: client, tenant: tenant, owner: owner}
	f.recruiter = f.newUser(models.RoleRecruiter)
	f.interviewer = f.newUser(models.RoleInterviewer)

	f.job = client.Job.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenant.ID).
		SetTitle("Staff Engineer").
		SetCreatedBy(owner.ID).
		SaveX(ctx)

	f.pipeline = client.Pipeline.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenant.ID).
		SetName("Engineering Pipeline").
		SaveX(ctx)

	for i, name := range []string{"Screening", "Interview", "Decision"} {
		stage := client.PipelineStage.Create().
			SetID(uuid.New().String()).
			SetPipelineID(f.pipeline.ID).
			SetName(name).
			SetOrderIndex(i + 1).
			SaveX(ctx)
		f.stages = append(f.stages, stage)
	}

	return f
}

// newUser adds an active user with the given role directly through ent.
func (f *fixture) newUser(role models.Role) *ent.User {
	f.t.Helper()
	return f.client.User.Create().
		SetID(uuid.New().String()).
		SetTenantID(f.tenant.ID).
		SetEmail(fmt.Sprintf("%s-%s@acme.test", role, uuid.New().String()[:8])).
		SetFullName(fmt.Sprintf("Test %s", role)).
		SetRole(role).
		SaveX(context.Background())
}

// attach binds a fresh application to the fixture pipeline at its first
// stage and returns the application id.
func (f *fixture) attach(pipelines *PipelineService) string {
	f.t.Helper()
	applicationID := uuid.New().String()
	_, err := pipelines.AttachApplicationToPipeline(context.Background(), models.AttachApplicationRequest{
		TenantID:      f.tenant.ID,
		UserID:        f.owner.ID,
		ApplicationID: applicationID,
		JobID:         f.job.ID,
		PipelineID:    f.pipeline.ID,
		FirstStageID:  f.stages[0].ID,
	})
	require.NoError(f.t, err)
	return applicationID
}

// defineAction configures a stage action as the owner, applying overrides on
// top of a plain advance action.
func (f *fixture) defineAction(actions *ActionService, stageID string, mutate func(*models.DefineStageActionRequest)) *ent.TenantStageAction {
	f.t.Helper()
	req := models.DefineStageActionRequest{
		TenantID:           f.tenant.ID,
		UserID:             f.owner.ID,
		StageID:            stageID,
		ActionCode:         "ADVANCE",
		Label:              "Advance",
		MovesToNextStage:   true,
		RequiredCapability: models.CapabilityAdvanceStage,
	}
	if mutate != nil {
		mutate(&req)
	}
	action, err := actions.DefineStageAction(context.Background(), req)
	require.NoError(f.t, err)
	return action
}

// putSignal writes a signal for the application as the owner.
func (f *fixture) putSignal(signals *SignalService, applicationID, key string, value models.SignalValue) {
	f.t.Helper()
	_, err := signals.PutSignal(context.Background(), models.PutSignalRequest{
		TenantID:      f.tenant.ID,
		ApplicationID: applicationID,
		Key:           key,
		Value:         value,
		Source:        models.SourceSystem,
		SetBy:         f.owner.ID,
	})
	require.NoError(f.t, err)
}
