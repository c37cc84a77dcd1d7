package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
	testdb "github.com/ameyzing09/rtr-api-sub000/test/database"
)

func TestCapabilityMatches(t *testing.T) {
	tests := []struct {
		granted   string
		requested string
		want      bool
	}{
		{"MANAGE_SETTINGS", "MANAGE_SETTINGS", true},
		{"MANAGE_SETTINGS", "ADVANCE_STAGE", false},
		{"feedback:*", "feedback:manage", true},
		{"feedback:*", "feedback:approve", true},
		{"feedback:*", "feedbacks:manage", false},
		{"feedback:manage", "feedback:*", false},
		{"*", "anything", false},
	}
	for _, tt := range tests {
		t.Run(tt.granted+" vs "+tt.requested, func(t *testing.T) {
			assert.Equal(t, tt.want, capabilityMatches(tt.granted, tt.requested))
		})
	}
}

func TestCapabilityService_Has(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	caps := NewCapabilityService(client.Client)
	ctx := context.Background()

	t.Run("owner holds everything from the seeded matrix", func(t *testing.T) {
		for _, capability := range []string{
			models.CapabilityManageSettings,
			models.CapabilityOverrideFlow,
			models.CapabilityFeedbackManage,
		} {
			ok, err := caps.Has(ctx, f.owner.ID, f.tenant.ID, capability)
			require.NoError(t, err)
			assert.True(t, ok, capability)
		}
	})

	t.Run("recruiter holds feedback:manage but not MANAGE_SETTINGS", func(t *testing.T) {
		ok, err := caps.Has(ctx, f.recruiter.ID, f.tenant.ID, models.CapabilityFeedbackManage)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = caps.Has(ctx, f.recruiter.ID, f.tenant.ID, models.CapabilityManageSettings)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown user holds nothing", func(t *testing.T) {
		ok, err := caps.Has(ctx, "nobody", f.tenant.ID, models.CapabilityViewTracking)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("user of another tenant holds nothing", func(t *testing.T) {
		other := newFixture(t, client.Client)
		ok, err := caps.Has(ctx, other.owner.ID, f.tenant.ID, models.CapabilityViewTracking)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("deactivated user holds nothing", func(t *testing.T) {
		victim := f.newUser(models.RoleAdmin)
		ok, err := caps.Has(ctx, victim.ID, f.tenant.ID, models.CapabilityManageSettings)
		require.NoError(t, err)
		assert.True(t, ok)

		tenants := NewTenantService(client.Client, nil, nil)
		require.NoError(t, tenants.DeactivateUser(ctx, f.tenant.ID, f.owner.ID, victim.ID))

		ok, err = caps.Has(ctx, victim.ID, f.tenant.ID, models.CapabilityManageSettings)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCapabilityService_GrantRevoke(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	caps := NewCapabilityService(client.Client)
	ctx := context.Background()

	t.Run("grant adds a capability to a role", func(t *testing.T) {
		err := caps.Grant(ctx, f.tenant.ID, f.owner.ID, models.RoleInterviewer, models.CapabilityViewTracking)
		require.NoError(t, err)

		ok, err := caps.Has(ctx, f.interviewer.ID, f.tenant.ID, models.CapabilityViewTracking)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("duplicate grant conflicts", func(t *testing.T) {
		err := caps.Grant(ctx, f.tenant.ID, f.owner.ID, models.RoleInterviewer, models.CapabilityViewTracking)
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))
	})

	t.Run("grant without MANAGE_SETTINGS is forbidden", func(t *testing.T) {
		err := caps.Grant(ctx, f.tenant.ID, f.interviewer.ID, models.RoleInterviewer, "something")
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("revoke removes the grant", func(t *testing.T) {
		err := caps.Revoke(ctx, f.tenant.ID, f.owner.ID, models.RoleInterviewer, models.CapabilityViewTracking)
		require.NoError(t, err)

		ok, err := caps.Has(ctx, f.interviewer.ID, f.tenant.ID, models.CapabilityViewTracking)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("revoking an absent grant is NOT_FOUND", func(t *testing.T) {
		err := caps.Revoke(ctx, f.tenant.ID, f.owner.ID, models.RoleInterviewer, "never-granted")
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})

	t.Run("list returns tokens sorted", func(t *testing.T) {
		list, err := caps.ListForRole(ctx, f.tenant.ID, models.RoleRecruiter)
		require.NoError(t, err)
		assert.Contains(t, list, models.CapabilityAdvanceStage)
		assert.Contains(t, list, models.CapabilityFeedbackManage)
		assert.NotContains(t, list, models.CapabilityManageSettings)
	})
}
