package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/user"
	"github.com/ameyzing09/rtr-api-sub000/pkg/config"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// TenantService provisions tenants and maintains their identity store.
// Creating a tenant also seeds the default status catalog and role
// capability matrix from configuration, all in one transaction.
type TenantService struct {
	client           *ent.Client
	seedStatuses     []config.StatusSeed
	seedCapabilities map[models.Role][]string
}

// NewTenantService creates a new TenantService.
func NewTenantService(client *ent.Client, statuses []config.StatusSeed, capabilities map[models.Role][]string) *TenantService {
	return &TenantService{
		client:           client,
		seedStatuses:     statuses,
		seedCapabilities: capabilities,
	}
}

// CreateTenant provisions a tenant with its owner user, default status
// catalog, and default capability grants.
func (s *TenantService) CreateTenant(ctx context.Context, req models.CreateTenantRequest) (*ent.Tenant, *ent.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, nil, NewValidationError("name", "required")
	}
	if strings.TrimSpace(req.OwnerEmail) == "" {
		return nil, nil, NewValidationError("owner_email", "required")
	}
	if strings.TrimSpace(req.OwnerName) == "" {
		return nil, nil, NewValidationError("owner_name", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	tenantID := uuid.New().String()
	ownerID := uuid.New().String()

	owner, err := tx.User.Create().
		SetID(ownerID).
		SetTenantID(tenantID).
		SetEmail(req.OwnerEmail).
		SetFullName(req.OwnerName).
		SetRole(models.RoleOwner).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create owner user: %w", err)
	}

	tenant, err := tx.Tenant.Create().
		SetID(tenantID).
		SetName(req.Name).
		SetOwnerUserID(ownerID).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := seedStatuses(ctx, tx, tenantID, s.seedStatuses); err != nil {
		return nil, nil, err
	}
	if err := seedCapabilities(ctx, tx, tenantID, s.seedCapabilities); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit tenant creation: %w", err)
	}

	return tenant, owner, nil
}

// CreateUser adds a user to the tenant's identity store. Requires
// MANAGE_SETTINGS.
func (s *TenantService) CreateUser(ctx context.Context, callerID string, req models.CreateUserRequest) (*ent.User, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, NewValidationError("email", "required")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, NewValidationError("full_name", "required")
	}
	if !req.Role.IsValid() {
		return nil, NewValidationError("role", "invalid")
	}

	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, req.TenantID, callerID, models.CapabilityManageSettings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewError(CodeForbidden, "creating users requires %s", models.CapabilityManageSettings)
	}

	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetEmail(req.Email).
		SetFullName(req.FullName).
		SetRole(req.Role).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "user %s already exists in tenant", req.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// DeactivateUser marks a user inactive. Inactive users keep their rows for
// audit enrichment but lose every capability. Requires MANAGE_SETTINGS.
func (s *TenantService) DeactivateUser(ctx context.Context, tenantID, callerID, userID string) error {
	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, tenantID, callerID, models.CapabilityManageSettings)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeForbidden, "deactivating users requires %s", models.CapabilityManageSettings)
	}

	n, err := s.client.User.Update().
		Where(
			user.IDEQ(userID),
			user.TenantIDEQ(tenantID),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if n == 0 {
		return NewError(CodeNotFound, "user not found")
	}
	return nil
}

// GetUser returns a tenant's user by id.
func (s *TenantService) GetUser(ctx context.Context, tenantID, userID string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(
			user.IDEQ(userID),
			user.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
