package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationsignal"
	"github.com/ameyzing09/rtr-api-sub000/pkg/events"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// SignalService is the append-only signal store. Writing a key supersedes
// the previous current row instead of updating it; readers see either the
// latest view (one row per key) or the full history.
type SignalService struct {
	client    *ent.Client
	publisher *events.EventPublisher
}

// NewSignalService creates a new SignalService. The publisher may be nil;
// signal events are a best-effort notification, not part of the contract.
func NewSignalService(client *ent.Client, publisher *events.EventPublisher) *SignalService {
	return &SignalService{client: client, publisher: publisher}
}

// PutSignal writes a new version of a signal, superseding the previous
// current row for the key inside one short transaction.
func (s *SignalService) PutSignal(ctx context.Context, req models.PutSignalRequest) (*ent.ApplicationSignal, error) {
	if strings.TrimSpace(req.Key) == "" {
		return nil, NewValidationError("key", "required")
	}
	if !req.Value.Type.IsValid() {
		return nil, NewValidationError("signal_type", "invalid")
	}
	if !req.Source.IsValid() {
		return nil, NewValidationError("source_type", "invalid")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := putSignal(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, FromDB(fmt.Errorf("failed to commit signal write: %w", err))
	}

	s.publishSignalUpdated(ctx, req)
	return row, nil
}

// SetManualSignal is the admin override: parse a stringified literal and
// version the key through the store. Requires MANAGE_SETTINGS; the
// application's tenant is verified from its persisted pipeline state.
func (s *SignalService) SetManualSignal(ctx context.Context, req models.SetManualSignalRequest) (*ent.ApplicationSignal, error) {
	if strings.TrimSpace(req.Key) == "" {
		return nil, NewValidationError("key", "required")
	}
	if !req.Type.IsValid() {
		return nil, NewValidationError("type", "invalid")
	}
	value, err := models.ParseSignalValue(req.Type, req.Value)
	if err != nil {
		return nil, NewValidationError("value", err.Error())
	}

	state, err := s.client.ApplicationPipelineState.Query().
		Where(applicationpipelinestate.ApplicationIDEQ(req.ApplicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(CodeNotFound, "application %s is not tracked", req.ApplicationID)
		}
		return nil, fmt.Errorf("failed to load pipeline state: %w", err)
	}
	if state.TenantID != req.TenantID {
		return nil, NewError(CodeTenantMismatch, "application belongs to another tenant")
	}

	ok, err := hasCapability(ctx, s.client.User, s.client.RoleCapability, req.TenantID, req.UserID, models.CapabilityManageSettings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewError(CodeForbidden, "manual signals require %s", models.CapabilityManageSettings)
	}

	return s.PutSignal(ctx, models.PutSignalRequest{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		Key:           req.Key,
		Value:         value,
		Source:        models.SourceManual,
		Note:          req.Note,
		SetBy:         req.UserID,
	})
}

// Latest returns the current (non-superseded) signals, one per key,
// ordered by key. Tenant membership is verified from the state row.
func (s *SignalService) Latest(ctx context.Context, tenantID, applicationID string) ([]models.SignalDTO, error) {
	if err := s.assertTenant(ctx, tenantID, applicationID); err != nil {
		return nil, err
	}
	rows, err := s.client.ApplicationSignal.Query().
		Where(
			applicationsignal.ApplicationIDEQ(applicationID),
			applicationsignal.SupersededAtIsNil(),
		).
		Order(ent.Asc(applicationsignal.FieldSignalKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest signals: %w", err)
	}
	return toSignalDTOs(rows), nil
}

// History returns every version of one signal key, newest first.
func (s *SignalService) History(ctx context.Context, tenantID, applicationID, key string) ([]models.SignalDTO, error) {
	if err := s.assertTenant(ctx, tenantID, applicationID); err != nil {
		return nil, err
	}
	rows, err := s.client.ApplicationSignal.Query().
		Where(
			applicationsignal.ApplicationIDEQ(applicationID),
			applicationsignal.SignalKeyEQ(key),
		).
		Order(ent.Desc(applicationsignal.FieldSetAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query signal history: %w", err)
	}
	return toSignalDTOs(rows), nil
}

func (s *SignalService) assertTenant(ctx context.Context, tenantID, applicationID string) error {
	state, err := s.client.ApplicationPipelineState.Query().
		Where(applicationpipelinestate.ApplicationIDEQ(applicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NewError(CodeNotFound, "application %s is not tracked", applicationID)
		}
		return fmt.Errorf("failed to load pipeline state: %w", err)
	}
	if state.TenantID != tenantID {
		return NewError(CodeTenantMismatch, "application belongs to another tenant")
	}
	return nil
}

func (s *SignalService) publishSignalUpdated(ctx context.Context, req models.PutSignalRequest) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishSignalUpdated(ctx, events.SignalUpdatedPayload{
		Type:          events.EventTypeSignalUpdated,
		EventID:       uuid.New().String(),
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		SignalKey:     req.Key,
		Source:        req.Source,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish signal update",
			"application_id", req.ApplicationID, "signal_key", req.Key, "error", err)
	}
}

// putSignal performs the supersede-then-insert sequence inside the caller's
// transaction. INTERVIEW-sourced writes supersede only rows that are
// themselves interview-sourced; an interview write racing a live signal of
// another source surfaces as a constraint violation on the partial unique
// index and maps to CONFLICT.
func putSignal(ctx context.Context, tx *ent.Tx, req models.PutSignalRequest) (*ent.ApplicationSignal, error) {
	query := tx.ApplicationSignal.Query().
		Where(
			applicationsignal.ApplicationIDEQ(req.ApplicationID),
			applicationsignal.SignalKeyEQ(req.Key),
			applicationsignal.SupersededAtIsNil(),
		)
	if req.Source == models.SourceInterview {
		query = query.Where(applicationsignal.SourceTypeEQ(models.SourceInterview))
	}

	current, err := query.ForUpdate().Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load current signal: %w", err)
	}

	now := time.Now()

	// Supersede before inserting so the partial unique index on live rows
	// never sees two current versions of the same key.
	if current != nil {
		if err := tx.ApplicationSignal.UpdateOneID(current.ID).
			SetSupersededAt(now).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to supersede signal %s: %w", req.Key, err)
		}
	}

	create := tx.ApplicationSignal.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetApplicationID(req.ApplicationID).
		SetSignalKey(req.Key).
		SetSignalType(req.Value.Type).
		SetSourceType(req.Source).
		SetSetBy(req.SetBy).
		SetSetAt(now)
	if req.Value.Boolean != nil {
		create = create.SetValueBoolean(*req.Value.Boolean)
	}
	if req.Value.Numeric != nil {
		create = create.SetValueNumeric(*req.Value.Numeric)
	}
	if req.Value.Text != nil {
		create = create.SetValueText(*req.Value.Text)
	}
	if req.SourceID != "" {
		create = create.SetSourceID(req.SourceID)
	}
	if req.Note != "" {
		create = create.SetNote(req.Note)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(CodeConflict, "concurrent write on signal %s", req.Key)
		}
		return nil, fmt.Errorf("failed to insert signal %s: %w", req.Key, err)
	}

	if current != nil {
		if err := tx.ApplicationSignal.UpdateOneID(current.ID).
			SetSupersededBy(row.ID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to link superseded signal %s: %w", req.Key, err)
		}
	}

	return row, nil
}

// signalValue extracts the typed value of a signal row as a plain Go value.
// Numeric signals surface as float64 regardless of integer/float type.
func signalValue(sig *ent.ApplicationSignal) any {
	switch sig.SignalType {
	case models.SignalBoolean:
		if sig.ValueBoolean != nil {
			return *sig.ValueBoolean
		}
	case models.SignalInteger, models.SignalFloat:
		if sig.ValueNumeric != nil {
			return *sig.ValueNumeric
		}
	case models.SignalText:
		if sig.ValueText != nil {
			return *sig.ValueText
		}
	}
	return nil
}

// signalSnapshot builds the audit snapshot of the latest view: signal key to
// plain value. Recorded on every decision, even without conditions.
func signalSnapshot(rows []*ent.ApplicationSignal) map[string]any {
	snapshot := make(map[string]any, len(rows))
	for _, sig := range rows {
		snapshot[sig.SignalKey] = signalValue(sig)
	}
	return snapshot
}

func toSignalDTOs(rows []*ent.ApplicationSignal) []models.SignalDTO {
	dtos := make([]models.SignalDTO, 0, len(rows))
	for _, sig := range rows {
		dto := models.SignalDTO{
			ID:           sig.ID,
			Key:          sig.SignalKey,
			Type:         sig.SignalType,
			Value:        signalValue(sig),
			Source:       sig.SourceType,
			SourceID:     sig.SourceID,
			Note:         sig.Note,
			SetBy:        sig.SetBy,
			SetAt:        sig.SetAt,
			SupersededAt: sig.SupersededAt,
		}
		if sig.SupersededBy != nil {
			dto.SupersededBy = *sig.SupersededBy
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
