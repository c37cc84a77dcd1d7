package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/ent/rolecapability"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
	"github.com/ameyzing09/rtr-api-sub000/pkg/config"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
	testdb "github.com/ameyzing09/rtr-api-sub000/test/database"
)

func TestTenantService_CreateTenant(t *testing.T) {
	client := testdb.NewTestClient(t)
	builtin := config.GetBuiltinConfig()
	tenants := NewTenantService(client.Client, builtin.SeedStatuses, builtin.SeedCapabilities)
	ctx := context.Background()

	t.Run("provisions tenant with owner and seed data", func(t *testing.T) {
		tenant, owner, err := tenants.CreateTenant(ctx, models.CreateTenantRequest{
			Name:       "Fresh Tenant",
			OwnerEmail: "boss@fresh.test",
			OwnerName:  "Betty Boss",
		})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, tenant.OwnerUserID)
		assert.Equal(t, models.RoleOwner, owner.Role)
		assert.True(t, owner.IsActive)

		statuses, err := client.TenantApplicationStatus.Query().
			Where(tenantapplicationstatus.TenantIDEQ(tenant.ID)).
			All(ctx)
		require.NoError(t, err)
		assert.Len(t, statuses, len(builtin.SeedStatuses))

		grants, err := client.RoleCapability.Query().
			Where(rolecapability.TenantIDEQ(tenant.ID)).
			Count(ctx)
		require.NoError(t, err)
		want := 0
		for _, list := range builtin.SeedCapabilities {
			want += len(list)
		}
		assert.Equal(t, want, grants)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateTenantRequest
		}{
			{"missing name", models.CreateTenantRequest{OwnerEmail: "a@b.c", OwnerName: "A"}},
			{"missing owner_email", models.CreateTenantRequest{Name: "T", OwnerName: "A"}},
			{"missing owner_name", models.CreateTenantRequest{Name: "T", OwnerEmail: "a@b.c"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := tenants.CreateTenant(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestTenantService_CreateUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	builtin := config.GetBuiltinConfig()
	tenants := NewTenantService(client.Client, builtin.SeedStatuses, builtin.SeedCapabilities)
	ctx := context.Background()

	t.Run("owner can create users", func(t *testing.T) {
		u, err := tenants.CreateUser(ctx, f.owner.ID, models.CreateUserRequest{
			TenantID: f.tenant.ID,
			Email:    "new@acme.test",
			FullName: "New Person",
			Role:     models.RoleRecruiter,
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleRecruiter, u.Role)
		assert.Equal(t, f.tenant.ID, u.TenantID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := tenants.CreateUser(ctx, f.owner.ID, models.CreateUserRequest{
			TenantID: f.tenant.ID,
			Email:    "new@acme.test",
			FullName: "Other Person",
			Role:     models.RoleRecruiter,
		})
		require.Error(t, err)
		assert.Equal(t, CodeConflict, GetCode(err))
	})

	t.Run("interviewer cannot create users", func(t *testing.T) {
		_, err := tenants.CreateUser(ctx, f.interviewer.ID, models.CreateUserRequest{
			TenantID: f.tenant.ID,
			Email:    "sneaky@acme.test",
			FullName: "Sneaky",
			Role:     models.RoleAdmin,
		})
		require.Error(t, err)
		assert.Equal(t, CodeForbidden, GetCode(err))
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		_, err := tenants.CreateUser(ctx, f.owner.ID, models.CreateUserRequest{
			TenantID: f.tenant.ID,
			Email:    "x@acme.test",
			FullName: "X",
			Role:     models.Role("superuser"),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTenantService_DeactivateUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	f := newFixture(t, client.Client)
	tenants := NewTenantService(client.Client, nil, nil)
	ctx := context.Background()

	t.Run("deactivation flips is_active and keeps the row", func(t *testing.T) {
		victim := f.newUser(models.RoleRecruiter)
		require.NoError(t, tenants.DeactivateUser(ctx, f.tenant.ID, f.owner.ID, victim.ID))

		u, err := tenants.GetUser(ctx, f.tenant.ID, victim.ID)
		require.NoError(t, err)
		assert.False(t, u.IsActive)
	})

	t.Run("cross-tenant deactivation is NOT_FOUND", func(t *testing.T) {
		other := newFixture(t, client.Client)
		err := tenants.DeactivateUser(ctx, f.tenant.ID, f.owner.ID, other.recruiter.ID)
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, GetCode(err))
	})
}
