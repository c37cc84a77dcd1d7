package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/rolecapability"
	"github.com/ameyzing09/rtr-api-sub000/ent/user"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// CapabilityService answers "does user U hold capability X in tenant T?".
// The user's role is always resolved from the persisted user row; a role
// supplied by a caller is never trusted.
type CapabilityService struct {
	client *ent.Client
}

// NewCapabilityService creates a new CapabilityService.
func NewCapabilityService(client *ent.Client) *CapabilityService {
	return &CapabilityService{client: client}
}

// Has reports whether the user holds the capability in the tenant.
// Unknown users, deactivated users, and users of other tenants hold nothing.
func (s *CapabilityService) Has(ctx context.Context, userID, tenantID, capability string) (bool, error) {
	return hasCapability(ctx, s.client.User, s.client.RoleCapability, tenantID, userID, capability)
}

// Grant adds a capability to a role. Requires MANAGE_SETTINGS.
func (s *CapabilityService) Grant(ctx context.Context, tenantID, callerID string, role models.Role, capability string) error {
	if !role.IsValid() {
		return NewValidationError("role", "invalid")
	}
	if strings.TrimSpace(capability) == "" {
		return NewValidationError("capability", "required")
	}
	if err := s.requireManageSettings(ctx, tenantID, callerID); err != nil {
		return err
	}

	err := s.client.RoleCapability.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetRole(role).
		SetCapability(capability).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return NewError(CodeConflict, "role %s already holds %s", role, capability)
		}
		return fmt.Errorf("failed to grant capability: %w", err)
	}
	return nil
}

// Revoke removes a capability from a role. Requires MANAGE_SETTINGS.
func (s *CapabilityService) Revoke(ctx context.Context, tenantID, callerID string, role models.Role, capability string) error {
	if err := s.requireManageSettings(ctx, tenantID, callerID); err != nil {
		return err
	}

	n, err := s.client.RoleCapability.Delete().
		Where(
			rolecapability.TenantIDEQ(tenantID),
			rolecapability.RoleEQ(role),
			rolecapability.CapabilityEQ(capability),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke capability: %w", err)
	}
	if n == 0 {
		return NewError(CodeNotFound, "role %s does not hold %s", role, capability)
	}
	return nil
}

// ListForRole returns the capability tokens granted to a role.
func (s *CapabilityService) ListForRole(ctx context.Context, tenantID string, role models.Role) ([]string, error) {
	rows, err := s.client.RoleCapability.Query().
		Where(
			rolecapability.TenantIDEQ(tenantID),
			rolecapability.RoleEQ(role),
		).
		Order(ent.Asc(rolecapability.FieldCapability)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list capabilities: %w", err)
	}
	caps := make([]string, 0, len(rows))
	for _, r := range rows {
		caps = append(caps, r.Capability)
	}
	return caps, nil
}

func (s *CapabilityService) requireManageSettings(ctx context.Context, tenantID, callerID string) error {
	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, tenantID, callerID, models.CapabilityManageSettings)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeForbidden, "managing capabilities requires %s", models.CapabilityManageSettings)
	}
	return nil
}

// hasCapability resolves the user's role from the persisted user row and
// checks the (tenant, role, capability) grant, honoring prefix wildcards
// ("feedback:*" covers every feedback:… token). Shared with the engine
// services, which check inside their own transactions by passing tx clients.
func hasCapability(ctx context.Context, users *ent.UserClient, caps *ent.RoleCapabilityClient, tenantID, userID, capability string) (bool, error) {
	u, err := users.Query().
		Where(
			user.IDEQ(userID),
			user.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve user role: %w", err)
	}
	if !u.IsActive {
		return false, nil
	}

	grants, err := caps.Query().
		Where(
			rolecapability.TenantIDEQ(tenantID),
			rolecapability.RoleEQ(u.Role),
		).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query capabilities: %w", err)
	}

	for _, g := range grants {
		if capabilityMatches(g.Capability, capability) {
			return true, nil
		}
	}
	return false, nil
}

// capabilityMatches checks a stored grant against a requested token.
// A grant ending in ":*" covers every token sharing its namespace prefix.
func capabilityMatches(granted, requested string) bool {
	if granted == requested {
		return true
	}
	if prefix, ok := strings.CutSuffix(granted, "*"); ok && strings.HasSuffix(prefix, ":") {
		return strings.HasPrefix(requested, prefix)
	}
	return false
}

// seedCapabilities creates the configured default capability matrix for a
// new tenant. Runs inside the tenant provisioning transaction.
func seedCapabilities(ctx context.Context, tx *ent.Tx, tenantID string, matrix map[models.Role][]string) error {
	for _, role := range []models.Role{
		models.RoleOwner,
		models.RoleAdmin,
		models.RoleHiringManager,
		models.RoleRecruiter,
		models.RoleInterviewer,
	} {
		for _, capability := range matrix[role] {
			err := tx.RoleCapability.Create().
				SetID(uuid.New().String()).
				SetTenantID(tenantID).
				SetRole(role).
				SetCapability(capability).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed capability %s for %s: %w", capability, role, err)
			}
		}
	}
	return nil
}
