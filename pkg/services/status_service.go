package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
	"github.com/ameyzing09/rtr-api-sub000/pkg/config"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// StatusService manages the tenant-scoped status catalog: the presentation
// codes applications carry and their mapping to (outcome_type, is_terminal).
type StatusService struct {
	client *ent.Client
}

// NewStatusService creates a new StatusService.
func NewStatusService(client *ent.Client) *StatusService {
	return &StatusService{client: client}
}

// List returns the tenant's status catalog ordered by sort_order.
func (s *StatusService) List(ctx context.Context, tenantID string) ([]*ent.TenantApplicationStatus, error) {
	statuses, err := s.client.TenantApplicationStatus.Query().
		Where(tenantapplicationstatus.TenantIDEQ(tenantID)).
		Order(ent.Asc(tenantapplicationstatus.FieldSortOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

// IsTerminal reports whether a status code is terminal in the tenant's
// catalog.
func (s *StatusService) IsTerminal(ctx context.Context, tenantID, statusCode string) (bool, error) {
	st, err := s.client.TenantApplicationStatus.Query().
		Where(
			tenantapplicationstatus.TenantIDEQ(tenantID),
			tenantapplicationstatus.StatusCodeEQ(statusCode),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, NewError(CodeNotFound, "status %q not found", statusCode)
		}
		return false, fmt.Errorf("failed to get status: %w", err)
	}
	return st.IsTerminal, nil
}

// ResolveStatusForOutcome returns the status code an application lands on for
// the given (outcome_type, is_terminal) pair: the active catalog entry with
// the lowest sort_order.
func (s *StatusService) ResolveStatusForOutcome(ctx context.Context, tenantID string, outcome models.OutcomeType, isTerminal bool) (string, error) {
	return resolveStatusForOutcome(ctx, s.client.TenantApplicationStatus, tenantID, outcome, isTerminal)
}

// resolveStatusForOutcome is shared with the action engine, which resolves
// inside its own transaction.
func resolveStatusForOutcome(ctx context.Context, q *ent.TenantApplicationStatusClient, tenantID string, outcome models.OutcomeType, isTerminal bool) (string, error) {
	st, err := q.Query().
		Where(
			tenantapplicationstatus.TenantIDEQ(tenantID),
			tenantapplicationstatus.OutcomeTypeEQ(outcome),
			tenantapplicationstatus.IsTerminalEQ(isTerminal),
			tenantapplicationstatus.IsActive(true),
		).
		Order(ent.Asc(tenantapplicationstatus.FieldSortOrder)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", NewError(CodeInvalidStatus,
				"no active status configured for outcome %s (terminal=%t)", outcome, isTerminal)
		}
		return "", fmt.Errorf("failed to resolve status for outcome: %w", err)
	}
	return st.StatusCode, nil
}

// CreateStatus adds a status to the tenant's catalog. Requires MANAGE_SETTINGS.
func (s *StatusService) CreateStatus(ctx context.Context, req models.CreateStatusRequest) (*ent.TenantApplicationStatus, error) {
	if strings.TrimSpace(req.StatusCode) == "" {
		return nil, NewValidationError("status_code", "required")
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, NewValidationError("display_name", "required")
	}
	if !req.OutcomeType.IsValid() {
		return nil, NewValidationError("outcome_type", "invalid")
	}

	if err := s.requireManageSettings(ctx, req.TenantID, req.UserID); err != nil {
		return nil, err
	}

	st, err := s.client.TenantApplicationStatus.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetStatusCode(req.StatusCode).
		SetDisplayName(req.DisplayName).
		SetActionCode(req.ActionCode).
		SetOutcomeType(req.OutcomeType).
		SetIsTerminal(req.IsTerminal).
		SetSortOrder(req.SortOrder).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "status %q already exists", req.StatusCode)
		}
		return nil, fmt.Errorf("failed to create status: %w", err)
	}
	return st, nil
}

// UpdateStatusCatalog edits display fields of a catalog entry. The status
// code and its (outcome_type, is_terminal) mapping are immutable; replacing
// a mapping means creating a new status and deactivating the old one.
func (s *StatusService) UpdateStatusCatalog(ctx context.Context, req models.UpdateStatusCatalogRequest) (*ent.TenantApplicationStatus, error) {
	if err := s.requireManageSettings(ctx, req.TenantID, req.UserID); err != nil {
		return nil, err
	}

	st, err := s.getStatus(ctx, req.TenantID, req.StatusCode)
	if err != nil {
		return nil, err
	}

	update := s.client.TenantApplicationStatus.UpdateOneID(st.ID)
	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, NewValidationError("display_name", "must not be blank")
		}
		update = update.SetDisplayName(*req.DisplayName)
	}
	if req.ActionCode != nil {
		update = update.SetActionCode(*req.ActionCode)
	}
	if req.SortOrder != nil {
		update = update.SetSortOrder(*req.SortOrder)
	}

	st, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	return st, nil
}

// DeactivateStatus removes a status from active use. Refused while any
// application still holds the code: deactivating it would orphan those rows.
func (s *StatusService) DeactivateStatus(ctx context.Context, tenantID, userID, statusCode string) error {
	if err := s.requireManageSettings(ctx, tenantID, userID); err != nil {
		return err
	}

	st, err := s.getStatus(ctx, tenantID, statusCode)
	if err != nil {
		return err
	}

	inUse, err := s.client.ApplicationPipelineState.Query().
		Where(
			applicationpipelinestate.TenantIDEQ(tenantID),
			applicationpipelinestate.StatusCodeEQ(statusCode),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check status usage: %w", err)
	}
	if inUse {
		return NewError(CodeConflict, "status %q is held by existing applications and cannot be deactivated", statusCode)
	}

	if err := s.client.TenantApplicationStatus.UpdateOneID(st.ID).
		SetIsActive(false).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to deactivate status: %w", err)
	}
	return nil
}

func (s *StatusService) getStatus(ctx context.Context, tenantID, statusCode string) (*ent.TenantApplicationStatus, error) {
	st, err := s.client.TenantApplicationStatus.Query().
		Where(
			tenantapplicationstatus.TenantIDEQ(tenantID),
			tenantapplicationstatus.StatusCodeEQ(statusCode),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "status %q not found", statusCode)
		}
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return st, nil
}

func (s *StatusService) requireManageSettings(ctx context.Context, tenantID, userID string) error {
	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, tenantID, userID, models.CapabilityManageSettings)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeForbidden, "managing the status catalog requires %s", models.CapabilityManageSettings)
	}
	return nil
}

// seedStatuses creates the configured default status catalog for a new
// tenant. Runs inside the tenant provisioning transaction.
func seedStatuses(ctx context.Context, tx *ent.Tx, tenantID string, seeds []config.StatusSeed) error {
	for _, seed := range seeds {
		err := tx.TenantApplicationStatus.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetStatusCode(seed.StatusCode).
			SetDisplayName(seed.DisplayLabel).
			SetActionCode(seed.ActionCode).
			SetOutcomeType(seed.OutcomeType).
			SetIsTerminal(seed.IsTerminal).
			SetSortOrder(seed.SortOrder).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed status %s: %w", seed.StatusCode, err)
		}
	}
	return nil
}
