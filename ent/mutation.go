// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationsignal"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationparticipant"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationtemplate"
	"github.com/ameyzing09/rtr-api-sub000/ent/event"
	"github.com/ameyzing09/rtr-api-sub000/ent/job"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipeline"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipelinestage"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/ent/rolecapability"
	"github.com/ameyzing09/rtr-api-sub000/ent/stageevaluation"
	"github.com/ameyzing09/rtr-api-sub000/ent/stagefeedback"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenant"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantstageaction"
	"github.com/ameyzing09/rtr-api-sub000/ent/user"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActionExecutionLog       = "ActionExecutionLog"
	TypeApplicationPipelineState = "ApplicationPipelineState"
	TypeApplicationSignal        = "ApplicationSignal"
	TypeApplicationStageHistory  = "ApplicationStageHistory"
	TypeEvaluationInstance       = "EvaluationInstance"
	TypeEvaluationParticipant    = "EvaluationParticipant"
	TypeEvaluationResponse       = "EvaluationResponse"
	TypeEvaluationTemplate       = "EvaluationTemplate"
	TypeEvent                    = "Event"
	TypeJob                      = "Job"
	TypePipeline                 = "Pipeline"
	TypePipelineStage            = "PipelineStage"
	TypeRoleCapability           = "RoleCapability"
	TypeStageEvaluation          = "StageEvaluation"
	TypeStageFeedback            = "StageFeedback"
	TypeTenant                   = "Tenant"
	TypeTenantApplicationStatus  = "TenantApplicationStatus"
	TypeTenantStageAction        = "TenantStageAction"
	TypeUser                     = "User"
)

// ActionExecutionLogMutation represents an operation that mutates the ActionExecutionLog nodes in the graph.
type ActionExecutionLogMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	tenant_id                  *string
	application_id             *string
	action_code                *string
	stage_id                   *string
	from_stage_id              *string
	to_stage_id                *string
	outcome_type               *models.OutcomeType
	is_terminal                *bool
	status_code                *string
	executed_by                *string
	decision_note              *string
	override_reason            *string
	reviewed_by                *string
	approved_by                *string
	signal_snapshot            *map[string]interface{}
	conditions_evaluated       *[]models.ConditionResult
	appendconditions_evaluated []models.ConditionResult
	executed_at                *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*ActionExecutionLog, error)
	predicates                 []predicate.ActionExecutionLog
}

var _ ent.Mutation = (*ActionExecutionLogMutation)(nil)

// actionexecutionlogOption allows management of the mutation configuration using functional options.
type actionexecutionlogOption func(*ActionExecutionLogMutation)

// newActionExecutionLogMutation creates new mutation for the ActionExecutionLog entity.
func newActionExecutionLogMutation(c config, op Op, opts ...actionexecutionlogOption) *ActionExecutionLogMutation {
	m := &ActionExecutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActionExecutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionExecutionLogID sets the ID field of the mutation.
func withActionExecutionLogID(id string) actionexecutionlogOption {
	return func(m *ActionExecutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionExecutionLog
		)
		m.oldValue = func(ctx context.Context) (*ActionExecutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionExecutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionExecutionLog sets the old ActionExecutionLog of the mutation.
func withActionExecutionLog(node *ActionExecutionLog) actionexecutionlogOption {
	return func(m *ActionExecutionLogMutation) {
		m.oldValue = func(context.Context) (*ActionExecutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionExecutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionExecutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionExecutionLog entities.
func (m *ActionExecutionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionExecutionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionExecutionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionExecutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ActionExecutionLogMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ActionExecutionLogMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ActionExecutionLogMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetApplicationID sets the "application_id" field.
func (m *ActionExecutionLogMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *ActionExecutionLogMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldApplicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *ActionExecutionLogMutation) ResetApplicationID() {
	m.application_id = nil
}

// SetActionCode sets the "action_code" field.
func (m *ActionExecutionLogMutation) SetActionCode(s string) {
	m.action_code = &s
}

// ActionCode returns the value of the "action_code" field in the mutation.
func (m *ActionExecutionLogMutation) ActionCode() (r string, exists bool) {
	v := m.action_code
	if v == nil {
		return
	}
	return *v, true
}

// OldActionCode returns the old "action_code" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldActionCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionCode: %w", err)
	}
	return oldValue.ActionCode, nil
}

// ResetActionCode resets all changes to the "action_code" field.
func (m *ActionExecutionLogMutation) ResetActionCode() {
	m.action_code = nil
}

// SetStageID sets the "stage_id" field.
func (m *ActionExecutionLogMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *ActionExecutionLogMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ClearStageID clears the value of the "stage_id" field.
func (m *ActionExecutionLogMutation) ClearStageID() {
	m.stage_id = nil
	m.clearedFields[actionexecutionlog.FieldStageID] = struct{}{}
}

// StageIDCleared returns if the "stage_id" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) StageIDCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldStageID]
	return ok
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *ActionExecutionLogMutation) ResetStageID() {
	m.stage_id = nil
	delete(m.clearedFields, actionexecutionlog.FieldStageID)
}

// SetFromStageID sets the "from_stage_id" field.
func (m *ActionExecutionLogMutation) SetFromStageID(s string) {
	m.from_stage_id = &s
}

// FromStageID returns the value of the "from_stage_id" field in the mutation.
func (m *ActionExecutionLogMutation) FromStageID() (r string, exists bool) {
	v := m.from_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStageID returns the old "from_stage_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldFromStageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStageID: %w", err)
	}
	return oldValue.FromStageID, nil
}

// ClearFromStageID clears the value of the "from_stage_id" field.
func (m *ActionExecutionLogMutation) ClearFromStageID() {
	m.from_stage_id = nil
	m.clearedFields[actionexecutionlog.FieldFromStageID] = struct{}{}
}

// FromStageIDCleared returns if the "from_stage_id" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) FromStageIDCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldFromStageID]
	return ok
}

// ResetFromStageID resets all changes to the "from_stage_id" field.
func (m *ActionExecutionLogMutation) ResetFromStageID() {
	m.from_stage_id = nil
	delete(m.clearedFields, actionexecutionlog.FieldFromStageID)
}

// SetToStageID sets the "to_stage_id" field.
func (m *ActionExecutionLogMutation) SetToStageID(s string) {
	m.to_stage_id = &s
}

// ToStageID returns the value of the "to_stage_id" field in the mutation.
func (m *ActionExecutionLogMutation) ToStageID() (r string, exists bool) {
	v := m.to_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToStageID returns the old "to_stage_id" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldToStageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStageID: %w", err)
	}
	return oldValue.ToStageID, nil
}

// ClearToStageID clears the value of the "to_stage_id" field.
func (m *ActionExecutionLogMutation) ClearToStageID() {
	m.to_stage_id = nil
	m.clearedFields[actionexecutionlog.FieldToStageID] = struct{}{}
}

// ToStageIDCleared returns if the "to_stage_id" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) ToStageIDCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldToStageID]
	return ok
}

// ResetToStageID resets all changes to the "to_stage_id" field.
func (m *ActionExecutionLogMutation) ResetToStageID() {
	m.to_stage_id = nil
	delete(m.clearedFields, actionexecutionlog.FieldToStageID)
}

// SetOutcomeType sets the "outcome_type" field.
func (m *ActionExecutionLogMutation) SetOutcomeType(mt models.OutcomeType) {
	m.outcome_type = &mt
}

// OutcomeType returns the value of the "outcome_type" field in the mutation.
func (m *ActionExecutionLogMutation) OutcomeType() (r models.OutcomeType, exists bool) {
	v := m.outcome_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeType returns the old "outcome_type" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldOutcomeType(ctx context.Context) (v models.OutcomeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeType: %w", err)
	}
	return oldValue.OutcomeType, nil
}

// ResetOutcomeType resets all changes to the "outcome_type" field.
func (m *ActionExecutionLogMutation) ResetOutcomeType() {
	m.outcome_type = nil
}

// SetIsTerminal sets the "is_terminal" field.
func (m *ActionExecutionLogMutation) SetIsTerminal(b bool) {
	m.is_terminal = &b
}

// IsTerminal returns the value of the "is_terminal" field in the mutation.
func (m *ActionExecutionLogMutation) IsTerminal() (r bool, exists bool) {
	v := m.is_terminal
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTerminal returns the old "is_terminal" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldIsTerminal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTerminal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTerminal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTerminal: %w", err)
	}
	return oldValue.IsTerminal, nil
}

// ResetIsTerminal resets all changes to the "is_terminal" field.
func (m *ActionExecutionLogMutation) ResetIsTerminal() {
	m.is_terminal = nil
}

// SetStatusCode sets the "status_code" field.
func (m *ActionExecutionLogMutation) SetStatusCode(s string) {
	m.status_code = &s
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *ActionExecutionLogMutation) StatusCode() (r string, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *ActionExecutionLogMutation) ResetStatusCode() {
	m.status_code = nil
}

// SetExecutedBy sets the "executed_by" field.
func (m *ActionExecutionLogMutation) SetExecutedBy(s string) {
	m.executed_by = &s
}

// ExecutedBy returns the value of the "executed_by" field in the mutation.
func (m *ActionExecutionLogMutation) ExecutedBy() (r string, exists bool) {
	v := m.executed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedBy returns the old "executed_by" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldExecutedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedBy: %w", err)
	}
	return oldValue.ExecutedBy, nil
}

// ResetExecutedBy resets all changes to the "executed_by" field.
func (m *ActionExecutionLogMutation) ResetExecutedBy() {
	m.executed_by = nil
}

// SetDecisionNote sets the "decision_note" field.
func (m *ActionExecutionLogMutation) SetDecisionNote(s string) {
	m.decision_note = &s
}

// DecisionNote returns the value of the "decision_note" field in the mutation.
func (m *ActionExecutionLogMutation) DecisionNote() (r string, exists bool) {
	v := m.decision_note
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionNote returns the old "decision_note" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldDecisionNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionNote: %w", err)
	}
	return oldValue.DecisionNote, nil
}

// ClearDecisionNote clears the value of the "decision_note" field.
func (m *ActionExecutionLogMutation) ClearDecisionNote() {
	m.decision_note = nil
	m.clearedFields[actionexecutionlog.FieldDecisionNote] = struct{}{}
}

// DecisionNoteCleared returns if the "decision_note" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) DecisionNoteCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldDecisionNote]
	return ok
}

// ResetDecisionNote resets all changes to the "decision_note" field.
func (m *ActionExecutionLogMutation) ResetDecisionNote() {
	m.decision_note = nil
	delete(m.clearedFields, actionexecutionlog.FieldDecisionNote)
}

// SetOverrideReason sets the "override_reason" field.
func (m *ActionExecutionLogMutation) SetOverrideReason(s string) {
	m.override_reason = &s
}

// OverrideReason returns the value of the "override_reason" field in the mutation.
func (m *ActionExecutionLogMutation) OverrideReason() (r string, exists bool) {
	v := m.override_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrideReason returns the old "override_reason" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldOverrideReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrideReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrideReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrideReason: %w", err)
	}
	return oldValue.OverrideReason, nil
}

// ClearOverrideReason clears the value of the "override_reason" field.
func (m *ActionExecutionLogMutation) ClearOverrideReason() {
	m.override_reason = nil
	m.clearedFields[actionexecutionlog.FieldOverrideReason] = struct{}{}
}

// OverrideReasonCleared returns if the "override_reason" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) OverrideReasonCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldOverrideReason]
	return ok
}

// ResetOverrideReason resets all changes to the "override_reason" field.
func (m *ActionExecutionLogMutation) ResetOverrideReason() {
	m.override_reason = nil
	delete(m.clearedFields, actionexecutionlog.FieldOverrideReason)
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *ActionExecutionLogMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *ActionExecutionLogMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldReviewedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *ActionExecutionLogMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[actionexecutionlog.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *ActionExecutionLogMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, actionexecutionlog.FieldReviewedBy)
}

// SetApprovedBy sets the "approved_by" field.
func (m *ActionExecutionLogMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *ActionExecutionLogMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldApprovedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *ActionExecutionLogMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[actionexecutionlog.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *ActionExecutionLogMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, actionexecutionlog.FieldApprovedBy)
}

// SetSignalSnapshot sets the "signal_snapshot" field.
func (m *ActionExecutionLogMutation) SetSignalSnapshot(value map[string]interface{}) {
	m.signal_snapshot = &value
}

// SignalSnapshot returns the value of the "signal_snapshot" field in the mutation.
func (m *ActionExecutionLogMutation) SignalSnapshot() (r map[string]interface{}, exists bool) {
	v := m.signal_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalSnapshot returns the old "signal_snapshot" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldSignalSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalSnapshot: %w", err)
	}
	return oldValue.SignalSnapshot, nil
}

// ClearSignalSnapshot clears the value of the "signal_snapshot" field.
func (m *ActionExecutionLogMutation) ClearSignalSnapshot() {
	m.signal_snapshot = nil
	m.clearedFields[actionexecutionlog.FieldSignalSnapshot] = struct{}{}
}

// SignalSnapshotCleared returns if the "signal_snapshot" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) SignalSnapshotCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldSignalSnapshot]
	return ok
}

// ResetSignalSnapshot resets all changes to the "signal_snapshot" field.
func (m *ActionExecutionLogMutation) ResetSignalSnapshot() {
	m.signal_snapshot = nil
	delete(m.clearedFields, actionexecutionlog.FieldSignalSnapshot)
}

// SetConditionsEvaluated sets the "conditions_evaluated" field.
func (m *ActionExecutionLogMutation) SetConditionsEvaluated(mr []models.ConditionResult) {
	m.conditions_evaluated = &mr
	m.appendconditions_evaluated = nil
}

// ConditionsEvaluated returns the value of the "conditions_evaluated" field in the mutation.
func (m *ActionExecutionLogMutation) ConditionsEvaluated() (r []models.ConditionResult, exists bool) {
	v := m.conditions_evaluated
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionsEvaluated returns the old "conditions_evaluated" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldConditionsEvaluated(ctx context.Context) (v []models.ConditionResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionsEvaluated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionsEvaluated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionsEvaluated: %w", err)
	}
	return oldValue.ConditionsEvaluated, nil
}

// AppendConditionsEvaluated adds mr to the "conditions_evaluated" field.
func (m *ActionExecutionLogMutation) AppendConditionsEvaluated(mr []models.ConditionResult) {
	m.appendconditions_evaluated = append(m.appendconditions_evaluated, mr...)
}

// AppendedConditionsEvaluated returns the list of values that were appended to the "conditions_evaluated" field in this mutation.
func (m *ActionExecutionLogMutation) AppendedConditionsEvaluated() ([]models.ConditionResult, bool) {
	if len(m.appendconditions_evaluated) == 0 {
		return nil, false
	}
	return m.appendconditions_evaluated, true
}

// ClearConditionsEvaluated clears the value of the "conditions_evaluated" field.
func (m *ActionExecutionLogMutation) ClearConditionsEvaluated() {
	m.conditions_evaluated = nil
	m.appendconditions_evaluated = nil
	m.clearedFields[actionexecutionlog.FieldConditionsEvaluated] = struct{}{}
}

// ConditionsEvaluatedCleared returns if the "conditions_evaluated" field was cleared in this mutation.
func (m *ActionExecutionLogMutation) ConditionsEvaluatedCleared() bool {
	_, ok := m.clearedFields[actionexecutionlog.FieldConditionsEvaluated]
	return ok
}

// ResetConditionsEvaluated resets all changes to the "conditions_evaluated" field.
func (m *ActionExecutionLogMutation) ResetConditionsEvaluated() {
	m.conditions_evaluated = nil
	m.appendconditions_evaluated = nil
	delete(m.clearedFields, actionexecutionlog.FieldConditionsEvaluated)
}

// SetExecutedAt sets the "executed_at" field.
func (m *ActionExecutionLogMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *ActionExecutionLogMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the ActionExecutionLog entity.
// If the ActionExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionExecutionLogMutation) OldExecutedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *ActionExecutionLogMutation) ResetExecutedAt() {
	m.executed_at = nil
}

// Where appends a list predicates to the ActionExecutionLogMutation builder.
func (m *ActionExecutionLogMutation) Where(ps ...predicate.ActionExecutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionExecutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionExecutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionExecutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionExecutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionExecutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionExecutionLog).
func (m *ActionExecutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionExecutionLogMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.tenant_id != nil {
		fields = append(fields, actionexecutionlog.FieldTenantID)
	}
	if m.application_id != nil {
		fields = append(fields, actionexecutionlog.FieldApplicationID)
	}
	if m.action_code != nil {
		fields = append(fields, actionexecutionlog.FieldActionCode)
	}
	if m.stage_id != nil {
		fields = append(fields, actionexecutionlog.FieldStageID)
	}
	if m.from_stage_id != nil {
		fields = append(fields, actionexecutionlog.FieldFromStageID)
	}
	if m.to_stage_id != nil {
		fields = append(fields, actionexecutionlog.FieldToStageID)
	}
	if m.outcome_type != nil {
		fields = append(fields, actionexecutionlog.FieldOutcomeType)
	}
	if m.is_terminal != nil {
		fields = append(fields, actionexecutionlog.FieldIsTerminal)
	}
	if m.status_code != nil {
		fields = append(fields, actionexecutionlog.FieldStatusCode)
	}
	if m.executed_by != nil {
		fields = append(fields, actionexecutionlog.FieldExecutedBy)
	}
	if m.decision_note != nil {
		fields = append(fields, actionexecutionlog.FieldDecisionNote)
	}
	if m.override_reason != nil {
		fields = append(fields, actionexecutionlog.FieldOverrideReason)
	}
	if m.reviewed_by != nil {
		fields = append(fields, actionexecutionlog.FieldReviewedBy)
	}
	if m.approved_by != nil {
		fields = append(fields, actionexecutionlog.FieldApprovedBy)
	}
	if m.signal_snapshot != nil {
		fields = append(fields, actionexecutionlog.FieldSignalSnapshot)
	}
	if m.conditions_evaluated != nil {
		fields = append(fields, actionexecutionlog.FieldConditionsEvaluated)
	}
	if m.executed_at != nil {
		fields = append(fields, actionexecutionlog.FieldExecutedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionExecutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionexecutionlog.FieldTenantID:
		return m.TenantID()
	case actionexecutionlog.FieldApplicationID:
		return m.ApplicationID()
	case actionexecutionlog.FieldActionCode:
		return m.ActionCode()
	case actionexecutionlog.FieldStageID:
		return m.StageID()
	case actionexecutionlog.FieldFromStageID:
		return m.FromStageID()
	case actionexecutionlog.FieldToStageID:
		return m.ToStageID()
	case actionexecutionlog.FieldOutcomeType:
		return m.OutcomeType()
	case actionexecutionlog.FieldIsTerminal:
		return m.IsTerminal()
	case actionexecutionlog.FieldStatusCode:
		return m.StatusCode()
	case actionexecutionlog.FieldExecutedBy:
		return m.ExecutedBy()
	case actionexecutionlog.FieldDecisionNote:
		return m.DecisionNote()
	case actionexecutionlog.FieldOverrideReason:
		return m.OverrideReason()
	case actionexecutionlog.FieldReviewedBy:
		return m.ReviewedBy()
	case actionexecutionlog.FieldApprovedBy:
		return m.ApprovedBy()
	case actionexecutionlog.FieldSignalSnapshot:
		return m.SignalSnapshot()
	case actionexecutionlog.FieldConditionsEvaluated:
		return m.ConditionsEvaluated()
	case actionexecutionlog.FieldExecutedAt:
		return m.ExecutedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionExecutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionexecutionlog.FieldTenantID:
		return m.OldTenantID(ctx)
	case actionexecutionlog.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case actionexecutionlog.FieldActionCode:
		return m.OldActionCode(ctx)
	case actionexecutionlog.FieldStageID:
		return m.OldStageID(ctx)
	case actionexecutionlog.FieldFromStageID:
		return m.OldFromStageID(ctx)
	case actionexecutionlog.FieldToStageID:
		return m.OldToStageID(ctx)
	case actionexecutionlog.FieldOutcomeType:
		return m.OldOutcomeType(ctx)
	case actionexecutionlog.FieldIsTerminal:
		return m.OldIsTerminal(ctx)
	case actionexecutionlog.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case actionexecutionlog.FieldExecutedBy:
		return m.OldExecutedBy(ctx)
	case actionexecutionlog.FieldDecisionNote:
		return m.OldDecisionNote(ctx)
	case actionexecutionlog.FieldOverrideReason:
		return m.OldOverrideReason(ctx)
	case actionexecutionlog.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case actionexecutionlog.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case actionexecutionlog.FieldSignalSnapshot:
		return m.OldSignalSnapshot(ctx)
	case actionexecutionlog.FieldConditionsEvaluated:
		return m.OldConditionsEvaluated(ctx)
	case actionexecutionlog.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActionExecutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionExecutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionexecutionlog.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case actionexecutionlog.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case actionexecutionlog.FieldActionCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionCode(v)
		return nil
	case actionexecutionlog.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case actionexecutionlog.FieldFromStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStageID(v)
		return nil
	case actionexecutionlog.FieldToStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStageID(v)
		return nil
	case actionexecutionlog.FieldOutcomeType:
		v, ok := value.(models.OutcomeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeType(v)
		return nil
	case actionexecutionlog.FieldIsTerminal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTerminal(v)
		return nil
	case actionexecutionlog.FieldStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case actionexecutionlog.FieldExecutedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedBy(v)
		return nil
	case actionexecutionlog.FieldDecisionNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionNote(v)
		return nil
	case actionexecutionlog.FieldOverrideReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrideReason(v)
		return nil
	case actionexecutionlog.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case actionexecutionlog.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case actionexecutionlog.FieldSignalSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalSnapshot(v)
		return nil
	case actionexecutionlog.FieldConditionsEvaluated:
		v, ok := value.([]models.ConditionResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionsEvaluated(v)
		return nil
	case actionexecutionlog.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActionExecutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionExecutionLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionExecutionLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionExecutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActionExecutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionExecutionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionexecutionlog.FieldStageID) {
		fields = append(fields, actionexecutionlog.FieldStageID)
	}
	if m.FieldCleared(actionexecutionlog.FieldFromStageID) {
		fields = append(fields, actionexecutionlog.FieldFromStageID)
	}
	if m.FieldCleared(actionexecutionlog.FieldToStageID) {
		fields = append(fields, actionexecutionlog.FieldToStageID)
	}
	if m.FieldCleared(actionexecutionlog.FieldDecisionNote) {
		fields = append(fields, actionexecutionlog.FieldDecisionNote)
	}
	if m.FieldCleared(actionexecutionlog.FieldOverrideReason) {
		fields = append(fields, actionexecutionlog.FieldOverrideReason)
	}
	if m.FieldCleared(actionexecutionlog.FieldReviewedBy) {
		fields = append(fields, actionexecutionlog.FieldReviewedBy)
	}
	if m.FieldCleared(actionexecutionlog.FieldApprovedBy) {
		fields = append(fields, actionexecutionlog.FieldApprovedBy)
	}
	if m.FieldCleared(actionexecutionlog.FieldSignalSnapshot) {
		fields = append(fields, actionexecutionlog.FieldSignalSnapshot)
	}
	if m.FieldCleared(actionexecutionlog.FieldConditionsEvaluated) {
		fields = append(fields, actionexecutionlog.FieldConditionsEvaluated)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionExecutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionExecutionLogMutation) ClearField(name string) error {
	switch name {
	case actionexecutionlog.FieldStageID:
		m.ClearStageID()
		return nil
	case actionexecutionlog.FieldFromStageID:
		m.ClearFromStageID()
		return nil
	case actionexecutionlog.FieldToStageID:
		m.ClearToStageID()
		return nil
	case actionexecutionlog.FieldDecisionNote:
		m.ClearDecisionNote()
		return nil
	case actionexecutionlog.FieldOverrideReason:
		m.ClearOverrideReason()
		return nil
	case actionexecutionlog.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case actionexecutionlog.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case actionexecutionlog.FieldSignalSnapshot:
		m.ClearSignalSnapshot()
		return nil
	case actionexecutionlog.FieldConditionsEvaluated:
		m.ClearConditionsEvaluated()
		return nil
	}
	return fmt.Errorf("unknown ActionExecutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionExecutionLogMutation) ResetField(name string) error {
	switch name {
	case actionexecutionlog.FieldTenantID:
		m.ResetTenantID()
		return nil
	case actionexecutionlog.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case actionexecutionlog.FieldActionCode:
		m.ResetActionCode()
		return nil
	case actionexecutionlog.FieldStageID:
		m.ResetStageID()
		return nil
	case actionexecutionlog.FieldFromStageID:
		m.ResetFromStageID()
		return nil
	case actionexecutionlog.FieldToStageID:
		m.ResetToStageID()
		return nil
	case actionexecutionlog.FieldOutcomeType:
		m.ResetOutcomeType()
		return nil
	case actionexecutionlog.FieldIsTerminal:
		m.ResetIsTerminal()
		return nil
	case actionexecutionlog.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case actionexecutionlog.FieldExecutedBy:
		m.ResetExecutedBy()
		return nil
	case actionexecutionlog.FieldDecisionNote:
		m.ResetDecisionNote()
		return nil
	case actionexecutionlog.FieldOverrideReason:
		m.ResetOverrideReason()
		return nil
	case actionexecutionlog.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case actionexecutionlog.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case actionexecutionlog.FieldSignalSnapshot:
		m.ResetSignalSnapshot()
		return nil
	case actionexecutionlog.FieldConditionsEvaluated:
		m.ResetConditionsEvaluated()
		return nil
	case actionexecutionlog.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionExecutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionExecutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionExecutionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionExecutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionExecutionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionExecutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionExecutionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionExecutionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActionExecutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionExecutionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActionExecutionLog edge %s", name)
}

// ApplicationPipelineStateMutation represents an operation that mutates the ApplicationPipelineState nodes in the graph.
type ApplicationPipelineStateMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	application_id   *string
	job_id           *string
	pipeline_id      *string
	current_stage_id *string
	status_code      *string
	outcome_type     *models.OutcomeType
	is_terminal      *bool
	entered_stage_at *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ApplicationPipelineState, error)
	predicates       []predicate.ApplicationPipelineState
}

var _ ent.Mutation = (*ApplicationPipelineStateMutation)(nil)

// applicationpipelinestateOption allows management of the mutation configuration using functional options.
type applicationpipelinestateOption func(*ApplicationPipelineStateMutation)

// newApplicationPipelineStateMutation creates new mutation for the ApplicationPipelineState entity.
func newApplicationPipelineStateMutation(c config, op Op, opts ...applicationpipelinestateOption) *ApplicationPipelineStateMutation {
	m := &ApplicationPipelineStateMutation{
		config:        c,
		op:            op,
		typ:           TypeApplicationPipelineState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationPipelineStateID sets the ID field of the mutation.
func withApplicationPipelineStateID(id string) applicationpipelinestateOption {
	return func(m *ApplicationPipelineStateMutation) {
		var (
			err   error
			once  sync.Once
			value *ApplicationPipelineState
		)
		m.oldValue = func(ctx context.Context) (*ApplicationPipelineState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApplicationPipelineState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplicationPipelineState sets the old ApplicationPipelineState of the mutation.
func withApplicationPipelineState(node *ApplicationPipelineState) applicationpipelinestateOption {
	return func(m *ApplicationPipelineStateMutation) {
		m.oldValue = func(context.Context) (*ApplicationPipelineState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationPipelineStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationPipelineStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApplicationPipelineState entities.
func (m *ApplicationPipelineStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationPipelineStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationPipelineStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApplicationPipelineState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ApplicationPipelineStateMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ApplicationPipelineStateMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ApplicationPipelineStateMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetApplicationID sets the "application_id" field.
func (m *ApplicationPipelineStateMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *ApplicationPipelineStateMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldApplicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *ApplicationPipelineStateMutation) ResetApplicationID() {
	m.application_id = nil
}

// SetJobID sets the "job_id" field.
func (m *ApplicationPipelineStateMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ApplicationPipelineStateMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ApplicationPipelineStateMutation) ResetJobID() {
	m.job_id = nil
}

// SetPipelineID sets the "pipeline_id" field.
func (m *ApplicationPipelineStateMutation) SetPipelineID(s string) {
	m.pipeline_id = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *ApplicationPipelineStateMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldPipelineID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *ApplicationPipelineStateMutation) ResetPipelineID() {
	m.pipeline_id = nil
}

// SetCurrentStageID sets the "current_stage_id" field.
func (m *ApplicationPipelineStateMutation) SetCurrentStageID(s string) {
	m.current_stage_id = &s
}

// CurrentStageID returns the value of the "current_stage_id" field in the mutation.
func (m *ApplicationPipelineStateMutation) CurrentStageID() (r string, exists bool) {
	v := m.current_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStageID returns the old "current_stage_id" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldCurrentStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStageID: %w", err)
	}
	return oldValue.CurrentStageID, nil
}

// ResetCurrentStageID resets all changes to the "current_stage_id" field.
func (m *ApplicationPipelineStateMutation) ResetCurrentStageID() {
	m.current_stage_id = nil
}

// SetStatusCode sets the "status_code" field.
func (m *ApplicationPipelineStateMutation) SetStatusCode(s string) {
	m.status_code = &s
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *ApplicationPipelineStateMutation) StatusCode() (r string, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *ApplicationPipelineStateMutation) ResetStatusCode() {
	m.status_code = nil
}

// SetOutcomeType sets the "outcome_type" field.
func (m *ApplicationPipelineStateMutation) SetOutcomeType(mt models.OutcomeType) {
	m.outcome_type = &mt
}

// OutcomeType returns the value of the "outcome_type" field in the mutation.
func (m *ApplicationPipelineStateMutation) OutcomeType() (r models.OutcomeType, exists bool) {
	v := m.outcome_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeType returns the old "outcome_type" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldOutcomeType(ctx context.Context) (v models.OutcomeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeType: %w", err)
	}
	return oldValue.OutcomeType, nil
}

// ResetOutcomeType resets all changes to the "outcome_type" field.
func (m *ApplicationPipelineStateMutation) ResetOutcomeType() {
	m.outcome_type = nil
}

// SetIsTerminal sets the "is_terminal" field.
func (m *ApplicationPipelineStateMutation) SetIsTerminal(b bool) {
	m.is_terminal = &b
}

// IsTerminal returns the value of the "is_terminal" field in the mutation.
func (m *ApplicationPipelineStateMutation) IsTerminal() (r bool, exists bool) {
	v := m.is_terminal
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTerminal returns the old "is_terminal" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldIsTerminal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTerminal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTerminal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTerminal: %w", err)
	}
	return oldValue.IsTerminal, nil
}

// ResetIsTerminal resets all changes to the "is_terminal" field.
func (m *ApplicationPipelineStateMutation) ResetIsTerminal() {
	m.is_terminal = nil
}

// SetEnteredStageAt sets the "entered_stage_at" field.
func (m *ApplicationPipelineStateMutation) SetEnteredStageAt(t time.Time) {
	m.entered_stage_at = &t
}

// EnteredStageAt returns the value of the "entered_stage_at" field in the mutation.
func (m *ApplicationPipelineStateMutation) EnteredStageAt() (r time.Time, exists bool) {
	v := m.entered_stage_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnteredStageAt returns the old "entered_stage_at" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldEnteredStageAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnteredStageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnteredStageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnteredStageAt: %w", err)
	}
	return oldValue.EnteredStageAt, nil
}

// ResetEnteredStageAt resets all changes to the "entered_stage_at" field.
func (m *ApplicationPipelineStateMutation) ResetEnteredStageAt() {
	m.entered_stage_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationPipelineStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationPipelineStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationPipelineStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationPipelineStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationPipelineStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ApplicationPipelineState entity.
// If the ApplicationPipelineState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationPipelineStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationPipelineStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ApplicationPipelineStateMutation builder.
func (m *ApplicationPipelineStateMutation) Where(ps ...predicate.ApplicationPipelineState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationPipelineStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationPipelineStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApplicationPipelineState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationPipelineStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationPipelineStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApplicationPipelineState).
func (m *ApplicationPipelineStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationPipelineStateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, applicationpipelinestate.FieldTenantID)
	}
	if m.application_id != nil {
		fields = append(fields, applicationpipelinestate.FieldApplicationID)
	}
	if m.job_id != nil {
		fields = append(fields, applicationpipelinestate.FieldJobID)
	}
	if m.pipeline_id != nil {
		fields = append(fields, applicationpipelinestate.FieldPipelineID)
	}
	if m.current_stage_id != nil {
		fields = append(fields, applicationpipelinestate.FieldCurrentStageID)
	}
	if m.status_code != nil {
		fields = append(fields, applicationpipelinestate.FieldStatusCode)
	}
	if m.outcome_type != nil {
		fields = append(fields, applicationpipelinestate.FieldOutcomeType)
	}
	if m.is_terminal != nil {
		fields = append(fields, applicationpipelinestate.FieldIsTerminal)
	}
	if m.entered_stage_at != nil {
		fields = append(fields, applicationpipelinestate.FieldEnteredStageAt)
	}
	if m.created_at != nil {
		fields = append(fields, applicationpipelinestate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, applicationpipelinestate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationPipelineStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case applicationpipelinestate.FieldTenantID:
		return m.TenantID()
	case applicationpipelinestate.FieldApplicationID:
		return m.ApplicationID()
	case applicationpipelinestate.FieldJobID:
		return m.JobID()
	case applicationpipelinestate.FieldPipelineID:
		return m.PipelineID()
	case applicationpipelinestate.FieldCurrentStageID:
		return m.CurrentStageID()
	case applicationpipelinestate.FieldStatusCode:
		return m.StatusCode()
	case applicationpipelinestate.FieldOutcomeType:
		return m.OutcomeType()
	case applicationpipelinestate.FieldIsTerminal:
		return m.IsTerminal()
	case applicationpipelinestate.FieldEnteredStageAt:
		return m.EnteredStageAt()
	case applicationpipelinestate.FieldCreatedAt:
		return m.CreatedAt()
	case applicationpipelinestate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationPipelineStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case applicationpipelinestate.FieldTenantID:
		return m.OldTenantID(ctx)
	case applicationpipelinestate.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case applicationpipelinestate.FieldJobID:
		return m.OldJobID(ctx)
	case applicationpipelinestate.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case applicationpipelinestate.FieldCurrentStageID:
		return m.OldCurrentStageID(ctx)
	case applicationpipelinestate.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case applicationpipelinestate.FieldOutcomeType:
		return m.OldOutcomeType(ctx)
	case applicationpipelinestate.FieldIsTerminal:
		return m.OldIsTerminal(ctx)
	case applicationpipelinestate.FieldEnteredStageAt:
		return m.OldEnteredStageAt(ctx)
	case applicationpipelinestate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case applicationpipelinestate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApplicationPipelineState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationPipelineStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case applicationpipelinestate.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case applicationpipelinestate.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case applicationpipelinestate.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case applicationpipelinestate.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case applicationpipelinestate.FieldCurrentStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStageID(v)
		return nil
	case applicationpipelinestate.FieldStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case applicationpipelinestate.FieldOutcomeType:
		v, ok := value.(models.OutcomeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeType(v)
		return nil
	case applicationpipelinestate.FieldIsTerminal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTerminal(v)
		return nil
	case applicationpipelinestate.FieldEnteredStageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnteredStageAt(v)
		return nil
	case applicationpipelinestate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case applicationpipelinestate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApplicationPipelineState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationPipelineStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationPipelineStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationPipelineStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApplicationPipelineState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationPipelineStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationPipelineStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationPipelineStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ApplicationPipelineState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationPipelineStateMutation) ResetField(name string) error {
	switch name {
	case applicationpipelinestate.FieldTenantID:
		m.ResetTenantID()
		return nil
	case applicationpipelinestate.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case applicationpipelinestate.FieldJobID:
		m.ResetJobID()
		return nil
	case applicationpipelinestate.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case applicationpipelinestate.FieldCurrentStageID:
		m.ResetCurrentStageID()
		return nil
	case applicationpipelinestate.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case applicationpipelinestate.FieldOutcomeType:
		m.ResetOutcomeType()
		return nil
	case applicationpipelinestate.FieldIsTerminal:
		m.ResetIsTerminal()
		return nil
	case applicationpipelinestate.FieldEnteredStageAt:
		m.ResetEnteredStageAt()
		return nil
	case applicationpipelinestate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case applicationpipelinestate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApplicationPipelineState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationPipelineStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationPipelineStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationPipelineStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationPipelineStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationPipelineStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationPipelineStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationPipelineStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApplicationPipelineState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationPipelineStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApplicationPipelineState edge %s", name)
}

// ApplicationSignalMutation represents an operation that mutates the ApplicationSignal nodes in the graph.
type ApplicationSignalMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	application_id   *string
	signal_key       *string
	signal_type      *models.SignalType
	value_boolean    *bool
	value_numeric    *float64
	addvalue_numeric *float64
	value_text       *string
	source_type      *models.SignalSource
	source_id        *string
	note             *string
	set_by           *string
	set_at           *time.Time
	superseded_at    *time.Time
	superseded_by    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ApplicationSignal, error)
	predicates       []predicate.ApplicationSignal
}

var _ ent.Mutation = (*ApplicationSignalMutation)(nil)

// applicationsignalOption allows management of the mutation configuration using functional options.
type applicationsignalOption func(*ApplicationSignalMutation)

// newApplicationSignalMutation creates new mutation for the ApplicationSignal entity.
func newApplicationSignalMutation(c config, op Op, opts ...applicationsignalOption) *ApplicationSignalMutation {
	m := &ApplicationSignalMutation{
		config:        c,
		op:            op,
		typ:           TypeApplicationSignal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationSignalID sets the ID field of the mutation.
func withApplicationSignalID(id string) applicationsignalOption {
	return func(m *ApplicationSignalMutation) {
		var (
			err   error
			once  sync.Once
			value *ApplicationSignal
		)
		m.oldValue = func(ctx context.Context) (*ApplicationSignal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApplicationSignal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplicationSignal sets the old ApplicationSignal of the mutation.
func withApplicationSignal(node *ApplicationSignal) applicationsignalOption {
	return func(m *ApplicationSignalMutation) {
		m.oldValue = func(context.Context) (*ApplicationSignal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationSignalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationSignalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApplicationSignal entities.
func (m *ApplicationSignalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationSignalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationSignalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApplicationSignal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ApplicationSignalMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ApplicationSignalMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ApplicationSignalMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetApplicationID sets the "application_id" field.
func (m *ApplicationSignalMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *ApplicationSignalMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldApplicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *ApplicationSignalMutation) ResetApplicationID() {
	m.application_id = nil
}

// SetSignalKey sets the "signal_key" field.
func (m *ApplicationSignalMutation) SetSignalKey(s string) {
	m.signal_key = &s
}

// SignalKey returns the value of the "signal_key" field in the mutation.
func (m *ApplicationSignalMutation) SignalKey() (r string, exists bool) {
	v := m.signal_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalKey returns the old "signal_key" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldSignalKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalKey: %w", err)
	}
	return oldValue.SignalKey, nil
}

// ResetSignalKey resets all changes to the "signal_key" field.
func (m *ApplicationSignalMutation) ResetSignalKey() {
	m.signal_key = nil
}

// SetSignalType sets the "signal_type" field.
func (m *ApplicationSignalMutation) SetSignalType(mt models.SignalType) {
	m.signal_type = &mt
}

// SignalType returns the value of the "signal_type" field in the mutation.
func (m *ApplicationSignalMutation) SignalType() (r models.SignalType, exists bool) {
	v := m.signal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalType returns the old "signal_type" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldSignalType(ctx context.Context) (v models.SignalType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalType: %w", err)
	}
	return oldValue.SignalType, nil
}

// ResetSignalType resets all changes to the "signal_type" field.
func (m *ApplicationSignalMutation) ResetSignalType() {
	m.signal_type = nil
}

// SetValueBoolean sets the "value_boolean" field.
func (m *ApplicationSignalMutation) SetValueBoolean(b bool) {
	m.value_boolean = &b
}

// ValueBoolean returns the value of the "value_boolean" field in the mutation.
func (m *ApplicationSignalMutation) ValueBoolean() (r bool, exists bool) {
	v := m.value_boolean
	if v == nil {
		return
	}
	return *v, true
}

// OldValueBoolean returns the old "value_boolean" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldValueBoolean(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueBoolean is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueBoolean requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueBoolean: %w", err)
	}
	return oldValue.ValueBoolean, nil
}

// ClearValueBoolean clears the value of the "value_boolean" field.
func (m *ApplicationSignalMutation) ClearValueBoolean() {
	m.value_boolean = nil
	m.clearedFields[applicationsignal.FieldValueBoolean] = struct{}{}
}

// ValueBooleanCleared returns if the "value_boolean" field was cleared in this mutation.
func (m *ApplicationSignalMutation) ValueBooleanCleared() bool {
	_, ok := m.clearedFields[applicationsignal.FieldValueBoolean]
	return ok
}

// ResetValueBoolean resets all changes to the "value_boolean" field.
func (m *ApplicationSignalMutation) ResetValueBoolean() {
	m.value_boolean = nil
	delete(m.clearedFields, applicationsignal.FieldValueBoolean)
}

// SetValueNumeric sets the "value_numeric" field.
func (m *ApplicationSignalMutation) SetValueNumeric(f float64) {
	m.value_numeric = &f
	m.addvalue_numeric = nil
}

// ValueNumeric returns the value of the "value_numeric" field in the mutation.
func (m *ApplicationSignalMutation) ValueNumeric() (r float64, exists bool) {
	v := m.value_numeric
	if v == nil {
		return
	}
	return *v, true
}

// OldValueNumeric returns the old "value_numeric" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldValueNumeric(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueNumeric is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueNumeric requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueNumeric: %w", err)
	}
	return oldValue.ValueNumeric, nil
}

// AddValueNumeric adds f to the "value_numeric" field.
func (m *ApplicationSignalMutation) AddValueNumeric(f float64) {
	if m.addvalue_numeric != nil {
		*m.addvalue_numeric += f
	} else {
		m.addvalue_numeric = &f
	}
}

// AddedValueNumeric returns the value that was added to the "value_numeric" field in this mutation.
func (m *ApplicationSignalMutation) AddedValueNumeric() (r float64, exists bool) {
	v := m.addvalue_numeric
	if v == nil {
		return
	}
	return *v, true
}

// ClearValueNumeric clears the value of the "value_numeric" field.
func (m *ApplicationSignalMutation) ClearValueNumeric() {
	m.value_numeric = nil
	m.addvalue_numeric = nil
	m.clearedFields[applicationsignal.FieldValueNumeric] = struct{}{}
}

// ValueNumericCleared returns if the "value_numeric" field was cleared in this mutation.
func (m *ApplicationSignalMutation) ValueNumericCleared() bool {
	_, ok := m.clearedFields[applicationsignal.FieldValueNumeric]
	return ok
}

// ResetValueNumeric resets all changes to the "value_numeric" field.
func (m *ApplicationSignalMutation) ResetValueNumeric() {
	m.value_numeric = nil
	m.addvalue_numeric = nil
	delete(m.clearedFields, applicationsignal.FieldValueNumeric)
}

// SetValueText sets the "value_text" field.
func (m *ApplicationSignalMutation) SetValueText(s string) {
	m.value_text = &s
}

// ValueText returns the value of the "value_text" field in the mutation.
func (m *ApplicationSignalMutation) ValueText() (r string, exists bool) {
	v := m.value_text
	if v == nil {
		return
	}
	return *v, true
}

// OldValueText returns the old "value_text" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldValueText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueText: %w", err)
	}
	return oldValue.ValueText, nil
}

// ClearValueText clears the value of the "value_text" field.
func (m *ApplicationSignalMutation) ClearValueText() {
	m.value_text = nil
	m.clearedFields[applicationsignal.FieldValueText] = struct{}{}
}

// ValueTextCleared returns if the "value_text" field was cleared in this mutation.
func (m *ApplicationSignalMutation) ValueTextCleared() bool {
	_, ok := m.clearedFields[applicationsignal.FieldValueText]
	return ok
}

// ResetValueText resets all changes to the "value_text" field.
func (m *ApplicationSignalMutation) ResetValueText() {
	m.value_text = nil
	delete(m.clearedFields, applicationsignal.FieldValueText)
}

// SetSourceType sets the "source_type" field.
func (m *ApplicationSignalMutation) SetSourceType(ms models.SignalSource) {
	m.source_type = &ms
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *ApplicationSignalMutation) SourceType() (r models.SignalSource, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldSourceType(ctx context.Context) (v models.SignalSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *ApplicationSignalMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceID sets the "source_id" field.
func (m *ApplicationSignalMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *ApplicationSignalMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ClearSourceID clears the value of the "source_id" field.
func (m *ApplicationSignalMutation) ClearSourceID() {
	m.source_id = nil
	m.clearedFields[applicationsignal.FieldSourceID] = struct{}{}
}

// SourceIDCleared returns if the "source_id" field was cleared in this mutation.
func (m *ApplicationSignalMutation) SourceIDCleared() bool {
	_, ok := m.clearedFields[applicationsignal.FieldSourceID]
	return ok
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *ApplicationSignalMutation) ResetSourceID() {
	m.source_id = nil
	delete(m.clearedFields, applicationsignal.FieldSourceID)
}

// SetNote sets the "note" field.
func (m *ApplicationSignalMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *ApplicationSignalMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *ApplicationSignalMutation) ClearNote() {
	m.note = nil
	m.clearedFields[applicationsignal.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *ApplicationSignalMutation) NoteCleared() bool {
	_, ok := m.clearedFields[applicationsignal.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *ApplicationSignalMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, applicationsignal.FieldNote)
}

// SetSetBy sets the "set_by" field.
func (m *ApplicationSignalMutation) SetSetBy(s string) {
	m.set_by = &s
}

// SetBy returns the value of the "set_by" field in the mutation.
func (m *ApplicationSignalMutation) SetBy() (r string, exists bool) {
	v := m.set_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSetBy returns the old "set_by" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldSetBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSetBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSetBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSetBy: %w", err)
	}
	return oldValue.SetBy, nil
}

// ClearSetBy clears the value of the "set_by" field.
func (m *ApplicationSignalMutation) ClearSetBy() {
	m.set_by = nil
	m.clearedFields[applicationsignal.FieldSetBy] = struct{}{}
}

// SetByCleared returns if the "set_by" field was cleared in this mutation.
func (m *ApplicationSignalMutation) SetByCleared() bool {
	_, ok := m.clearedFields[applicationsignal.FieldSetBy]
	return ok
}

// ResetSetBy resets all changes to the "set_by" field.
func (m *ApplicationSignalMutation) ResetSetBy() {
	m.set_by = nil
	delete(m.clearedFields, applicationsignal.FieldSetBy)
}

// SetSetAt sets the "set_at" field.
func (m *ApplicationSignalMutation) SetSetAt(t time.Time) {
	m.set_at = &t
}

// SetAt returns the value of the "set_at" field in the mutation.
func (m *ApplicationSignalMutation) SetAt() (r time.Time, exists bool) {
	v := m.set_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSetAt returns the old "set_at" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldSetAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSetAt: %w", err)
	}
	return oldValue.SetAt, nil
}

// ResetSetAt resets all changes to the "set_at" field.
func (m *ApplicationSignalMutation) ResetSetAt() {
	m.set_at = nil
}

// SetSupersededAt sets the "superseded_at" field.
func (m *ApplicationSignalMutation) SetSupersededAt(t time.Time) {
	m.superseded_at = &t
}

// SupersededAt returns the value of the "superseded_at" field in the mutation.
func (m *ApplicationSignalMutation) SupersededAt() (r time.Time, exists bool) {
	v := m.superseded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersededAt returns the old "superseded_at" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldSupersededAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersededAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersededAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersededAt: %w", err)
	}
	return oldValue.SupersededAt, nil
}

// ClearSupersededAt clears the value of the "superseded_at" field.
func (m *ApplicationSignalMutation) ClearSupersededAt() {
	m.superseded_at = nil
	m.clearedFields[applicationsignal.FieldSupersededAt] = struct{}{}
}

// SupersededAtCleared returns if the "superseded_at" field was cleared in this mutation.
func (m *ApplicationSignalMutation) SupersededAtCleared() bool {
	_, ok := m.clearedFields[applicationsignal.FieldSupersededAt]
	return ok
}

// ResetSupersededAt resets all changes to the "superseded_at" field.
func (m *ApplicationSignalMutation) ResetSupersededAt() {
	m.superseded_at = nil
	delete(m.clearedFields, applicationsignal.FieldSupersededAt)
}

// SetSupersededBy sets the "superseded_by" field.
func (m *ApplicationSignalMutation) SetSupersededBy(s string) {
	m.superseded_by = &s
}

// SupersededBy returns the value of the "superseded_by" field in the mutation.
func (m *ApplicationSignalMutation) SupersededBy() (r string, exists bool) {
	v := m.superseded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersededBy returns the old "superseded_by" field's value of the ApplicationSignal entity.
// If the ApplicationSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationSignalMutation) OldSupersededBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersededBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersededBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersededBy: %w", err)
	}
	return oldValue.SupersededBy, nil
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (m *ApplicationSignalMutation) ClearSupersededBy() {
	m.superseded_by = nil
	m.clearedFields[applicationsignal.FieldSupersededBy] = struct{}{}
}

// SupersededByCleared returns if the "superseded_by" field was cleared in this mutation.
func (m *ApplicationSignalMutation) SupersededByCleared() bool {
	_, ok := m.clearedFields[applicationsignal.FieldSupersededBy]
	return ok
}

// ResetSupersededBy resets all changes to the "superseded_by" field.
func (m *ApplicationSignalMutation) ResetSupersededBy() {
	m.superseded_by = nil
	delete(m.clearedFields, applicationsignal.FieldSupersededBy)
}

// Where appends a list predicates to the ApplicationSignalMutation builder.
func (m *ApplicationSignalMutation) Where(ps ...predicate.ApplicationSignal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationSignalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationSignalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApplicationSignal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationSignalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationSignalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApplicationSignal).
func (m *ApplicationSignalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationSignalMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, applicationsignal.FieldTenantID)
	}
	if m.application_id != nil {
		fields = append(fields, applicationsignal.FieldApplicationID)
	}
	if m.signal_key != nil {
		fields = append(fields, applicationsignal.FieldSignalKey)
	}
	if m.signal_type != nil {
		fields = append(fields, applicationsignal.FieldSignalType)
	}
	if m.value_boolean != nil {
		fields = append(fields, applicationsignal.FieldValueBoolean)
	}
	if m.value_numeric != nil {
		fields = append(fields, applicationsignal.FieldValueNumeric)
	}
	if m.value_text != nil {
		fields = append(fields, applicationsignal.FieldValueText)
	}
	if m.source_type != nil {
		fields = append(fields, applicationsignal.FieldSourceType)
	}
	if m.source_id != nil {
		fields = append(fields, applicationsignal.FieldSourceID)
	}
	if m.note != nil {
		fields = append(fields, applicationsignal.FieldNote)
	}
	if m.set_by != nil {
		fields = append(fields, applicationsignal.FieldSetBy)
	}
	if m.set_at != nil {
		fields = append(fields, applicationsignal.FieldSetAt)
	}
	if m.superseded_at != nil {
		fields = append(fields, applicationsignal.FieldSupersededAt)
	}
	if m.superseded_by != nil {
		fields = append(fields, applicationsignal.FieldSupersededBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationSignalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case applicationsignal.FieldTenantID:
		return m.TenantID()
	case applicationsignal.FieldApplicationID:
		return m.ApplicationID()
	case applicationsignal.FieldSignalKey:
		return m.SignalKey()
	case applicationsignal.FieldSignalType:
		return m.SignalType()
	case applicationsignal.FieldValueBoolean:
		return m.ValueBoolean()
	case applicationsignal.FieldValueNumeric:
		return m.ValueNumeric()
	case applicationsignal.FieldValueText:
		return m.ValueText()
	case applicationsignal.FieldSourceType:
		return m.SourceType()
	case applicationsignal.FieldSourceID:
		return m.SourceID()
	case applicationsignal.FieldNote:
		return m.Note()
	case applicationsignal.FieldSetBy:
		return m.SetBy()
	case applicationsignal.FieldSetAt:
		return m.SetAt()
	case applicationsignal.FieldSupersededAt:
		return m.SupersededAt()
	case applicationsignal.FieldSupersededBy:
		return m.SupersededBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationSignalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case applicationsignal.FieldTenantID:
		return m.OldTenantID(ctx)
	case applicationsignal.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case applicationsignal.FieldSignalKey:
		return m.OldSignalKey(ctx)
	case applicationsignal.FieldSignalType:
		return m.OldSignalType(ctx)
	case applicationsignal.FieldValueBoolean:
		return m.OldValueBoolean(ctx)
	case applicationsignal.FieldValueNumeric:
		return m.OldValueNumeric(ctx)
	case applicationsignal.FieldValueText:
		return m.OldValueText(ctx)
	case applicationsignal.FieldSourceType:
		return m.OldSourceType(ctx)
	case applicationsignal.FieldSourceID:
		return m.OldSourceID(ctx)
	case applicationsignal.FieldNote:
		return m.OldNote(ctx)
	case applicationsignal.FieldSetBy:
		return m.OldSetBy(ctx)
	case applicationsignal.FieldSetAt:
		return m.OldSetAt(ctx)
	case applicationsignal.FieldSupersededAt:
		return m.OldSupersededAt(ctx)
	case applicationsignal.FieldSupersededBy:
		return m.OldSupersededBy(ctx)
	}
	return nil, fmt.Errorf("unknown ApplicationSignal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationSignalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case applicationsignal.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case applicationsignal.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case applicationsignal.FieldSignalKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalKey(v)
		return nil
	case applicationsignal.FieldSignalType:
		v, ok := value.(models.SignalType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalType(v)
		return nil
	case applicationsignal.FieldValueBoolean:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueBoolean(v)
		return nil
	case applicationsignal.FieldValueNumeric:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueNumeric(v)
		return nil
	case applicationsignal.FieldValueText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueText(v)
		return nil
	case applicationsignal.FieldSourceType:
		v, ok := value.(models.SignalSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case applicationsignal.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case applicationsignal.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case applicationsignal.FieldSetBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSetBy(v)
		return nil
	case applicationsignal.FieldSetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSetAt(v)
		return nil
	case applicationsignal.FieldSupersededAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersededAt(v)
		return nil
	case applicationsignal.FieldSupersededBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersededBy(v)
		return nil
	}
	return fmt.Errorf("unknown ApplicationSignal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationSignalMutation) AddedFields() []string {
	var fields []string
	if m.addvalue_numeric != nil {
		fields = append(fields, applicationsignal.FieldValueNumeric)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationSignalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case applicationsignal.FieldValueNumeric:
		return m.AddedValueNumeric()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationSignalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case applicationsignal.FieldValueNumeric:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValueNumeric(v)
		return nil
	}
	return fmt.Errorf("unknown ApplicationSignal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationSignalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(applicationsignal.FieldValueBoolean) {
		fields = append(fields, applicationsignal.FieldValueBoolean)
	}
	if m.FieldCleared(applicationsignal.FieldValueNumeric) {
		fields = append(fields, applicationsignal.FieldValueNumeric)
	}
	if m.FieldCleared(applicationsignal.FieldValueText) {
		fields = append(fields, applicationsignal.FieldValueText)
	}
	if m.FieldCleared(applicationsignal.FieldSourceID) {
		fields = append(fields, applicationsignal.FieldSourceID)
	}
	if m.FieldCleared(applicationsignal.FieldNote) {
		fields = append(fields, applicationsignal.FieldNote)
	}
	if m.FieldCleared(applicationsignal.FieldSetBy) {
		fields = append(fields, applicationsignal.FieldSetBy)
	}
	if m.FieldCleared(applicationsignal.FieldSupersededAt) {
		fields = append(fields, applicationsignal.FieldSupersededAt)
	}
	if m.FieldCleared(applicationsignal.FieldSupersededBy) {
		fields = append(fields, applicationsignal.FieldSupersededBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationSignalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationSignalMutation) ClearField(name string) error {
	switch name {
	case applicationsignal.FieldValueBoolean:
		m.ClearValueBoolean()
		return nil
	case applicationsignal.FieldValueNumeric:
		m.ClearValueNumeric()
		return nil
	case applicationsignal.FieldValueText:
		m.ClearValueText()
		return nil
	case applicationsignal.FieldSourceID:
		m.ClearSourceID()
		return nil
	case applicationsignal.FieldNote:
		m.ClearNote()
		return nil
	case applicationsignal.FieldSetBy:
		m.ClearSetBy()
		return nil
	case applicationsignal.FieldSupersededAt:
		m.ClearSupersededAt()
		return nil
	case applicationsignal.FieldSupersededBy:
		m.ClearSupersededBy()
		return nil
	}
	return fmt.Errorf("unknown ApplicationSignal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationSignalMutation) ResetField(name string) error {
	switch name {
	case applicationsignal.FieldTenantID:
		m.ResetTenantID()
		return nil
	case applicationsignal.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case applicationsignal.FieldSignalKey:
		m.ResetSignalKey()
		return nil
	case applicationsignal.FieldSignalType:
		m.ResetSignalType()
		return nil
	case applicationsignal.FieldValueBoolean:
		m.ResetValueBoolean()
		return nil
	case applicationsignal.FieldValueNumeric:
		m.ResetValueNumeric()
		return nil
	case applicationsignal.FieldValueText:
		m.ResetValueText()
		return nil
	case applicationsignal.FieldSourceType:
		m.ResetSourceType()
		return nil
	case applicationsignal.FieldSourceID:
		m.ResetSourceID()
		return nil
	case applicationsignal.FieldNote:
		m.ResetNote()
		return nil
	case applicationsignal.FieldSetBy:
		m.ResetSetBy()
		return nil
	case applicationsignal.FieldSetAt:
		m.ResetSetAt()
		return nil
	case applicationsignal.FieldSupersededAt:
		m.ResetSupersededAt()
		return nil
	case applicationsignal.FieldSupersededBy:
		m.ResetSupersededBy()
		return nil
	}
	return fmt.Errorf("unknown ApplicationSignal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationSignalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationSignalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationSignalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationSignalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationSignalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationSignalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationSignalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApplicationSignal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationSignalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApplicationSignal edge %s", name)
}

// ApplicationStageHistoryMutation represents an operation that mutates the ApplicationStageHistory nodes in the graph.
type ApplicationStageHistoryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	application_id *string
	action_code    *string
	from_stage_id  *string
	to_stage_id    *string
	outcome_type   *models.OutcomeType
	status_code    *string
	is_terminal    *bool
	moved_by       *string
	event_hash     *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ApplicationStageHistory, error)
	predicates     []predicate.ApplicationStageHistory
}

var _ ent.Mutation = (*ApplicationStageHistoryMutation)(nil)

// applicationstagehistoryOption allows management of the mutation configuration using functional options.
type applicationstagehistoryOption func(*ApplicationStageHistoryMutation)

// newApplicationStageHistoryMutation creates new mutation for the ApplicationStageHistory entity.
func newApplicationStageHistoryMutation(c config, op Op, opts ...applicationstagehistoryOption) *ApplicationStageHistoryMutation {
	m := &ApplicationStageHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeApplicationStageHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationStageHistoryID sets the ID field of the mutation.
func withApplicationStageHistoryID(id string) applicationstagehistoryOption {
	return func(m *ApplicationStageHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ApplicationStageHistory
		)
		m.oldValue = func(ctx context.Context) (*ApplicationStageHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApplicationStageHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplicationStageHistory sets the old ApplicationStageHistory of the mutation.
func withApplicationStageHistory(node *ApplicationStageHistory) applicationstagehistoryOption {
	return func(m *ApplicationStageHistoryMutation) {
		m.oldValue = func(context.Context) (*ApplicationStageHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationStageHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationStageHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApplicationStageHistory entities.
func (m *ApplicationStageHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationStageHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationStageHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApplicationStageHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ApplicationStageHistoryMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ApplicationStageHistoryMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ApplicationStageHistoryMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetApplicationID sets the "application_id" field.
func (m *ApplicationStageHistoryMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *ApplicationStageHistoryMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldApplicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *ApplicationStageHistoryMutation) ResetApplicationID() {
	m.application_id = nil
}

// SetActionCode sets the "action_code" field.
func (m *ApplicationStageHistoryMutation) SetActionCode(s string) {
	m.action_code = &s
}

// ActionCode returns the value of the "action_code" field in the mutation.
func (m *ApplicationStageHistoryMutation) ActionCode() (r string, exists bool) {
	v := m.action_code
	if v == nil {
		return
	}
	return *v, true
}

// OldActionCode returns the old "action_code" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldActionCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionCode: %w", err)
	}
	return oldValue.ActionCode, nil
}

// ClearActionCode clears the value of the "action_code" field.
func (m *ApplicationStageHistoryMutation) ClearActionCode() {
	m.action_code = nil
	m.clearedFields[applicationstagehistory.FieldActionCode] = struct{}{}
}

// ActionCodeCleared returns if the "action_code" field was cleared in this mutation.
func (m *ApplicationStageHistoryMutation) ActionCodeCleared() bool {
	_, ok := m.clearedFields[applicationstagehistory.FieldActionCode]
	return ok
}

// ResetActionCode resets all changes to the "action_code" field.
func (m *ApplicationStageHistoryMutation) ResetActionCode() {
	m.action_code = nil
	delete(m.clearedFields, applicationstagehistory.FieldActionCode)
}

// SetFromStageID sets the "from_stage_id" field.
func (m *ApplicationStageHistoryMutation) SetFromStageID(s string) {
	m.from_stage_id = &s
}

// FromStageID returns the value of the "from_stage_id" field in the mutation.
func (m *ApplicationStageHistoryMutation) FromStageID() (r string, exists bool) {
	v := m.from_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStageID returns the old "from_stage_id" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldFromStageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStageID: %w", err)
	}
	return oldValue.FromStageID, nil
}

// ClearFromStageID clears the value of the "from_stage_id" field.
func (m *ApplicationStageHistoryMutation) ClearFromStageID() {
	m.from_stage_id = nil
	m.clearedFields[applicationstagehistory.FieldFromStageID] = struct{}{}
}

// FromStageIDCleared returns if the "from_stage_id" field was cleared in this mutation.
func (m *ApplicationStageHistoryMutation) FromStageIDCleared() bool {
	_, ok := m.clearedFields[applicationstagehistory.FieldFromStageID]
	return ok
}

// ResetFromStageID resets all changes to the "from_stage_id" field.
func (m *ApplicationStageHistoryMutation) ResetFromStageID() {
	m.from_stage_id = nil
	delete(m.clearedFields, applicationstagehistory.FieldFromStageID)
}

// SetToStageID sets the "to_stage_id" field.
func (m *ApplicationStageHistoryMutation) SetToStageID(s string) {
	m.to_stage_id = &s
}

// ToStageID returns the value of the "to_stage_id" field in the mutation.
func (m *ApplicationStageHistoryMutation) ToStageID() (r string, exists bool) {
	v := m.to_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToStageID returns the old "to_stage_id" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldToStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStageID: %w", err)
	}
	return oldValue.ToStageID, nil
}

// ResetToStageID resets all changes to the "to_stage_id" field.
func (m *ApplicationStageHistoryMutation) ResetToStageID() {
	m.to_stage_id = nil
}

// SetOutcomeType sets the "outcome_type" field.
func (m *ApplicationStageHistoryMutation) SetOutcomeType(mt models.OutcomeType) {
	m.outcome_type = &mt
}

// OutcomeType returns the value of the "outcome_type" field in the mutation.
func (m *ApplicationStageHistoryMutation) OutcomeType() (r models.OutcomeType, exists bool) {
	v := m.outcome_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeType returns the old "outcome_type" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldOutcomeType(ctx context.Context) (v models.OutcomeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeType: %w", err)
	}
	return oldValue.OutcomeType, nil
}

// ResetOutcomeType resets all changes to the "outcome_type" field.
func (m *ApplicationStageHistoryMutation) ResetOutcomeType() {
	m.outcome_type = nil
}

// SetStatusCode sets the "status_code" field.
func (m *ApplicationStageHistoryMutation) SetStatusCode(s string) {
	m.status_code = &s
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *ApplicationStageHistoryMutation) StatusCode() (r string, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *ApplicationStageHistoryMutation) ResetStatusCode() {
	m.status_code = nil
}

// SetIsTerminal sets the "is_terminal" field.
func (m *ApplicationStageHistoryMutation) SetIsTerminal(b bool) {
	m.is_terminal = &b
}

// IsTerminal returns the value of the "is_terminal" field in the mutation.
func (m *ApplicationStageHistoryMutation) IsTerminal() (r bool, exists bool) {
	v := m.is_terminal
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTerminal returns the old "is_terminal" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldIsTerminal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTerminal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTerminal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTerminal: %w", err)
	}
	return oldValue.IsTerminal, nil
}

// ResetIsTerminal resets all changes to the "is_terminal" field.
func (m *ApplicationStageHistoryMutation) ResetIsTerminal() {
	m.is_terminal = nil
}

// SetMovedBy sets the "moved_by" field.
func (m *ApplicationStageHistoryMutation) SetMovedBy(s string) {
	m.moved_by = &s
}

// MovedBy returns the value of the "moved_by" field in the mutation.
func (m *ApplicationStageHistoryMutation) MovedBy() (r string, exists bool) {
	v := m.moved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldMovedBy returns the old "moved_by" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldMovedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMovedBy: %w", err)
	}
	return oldValue.MovedBy, nil
}

// ResetMovedBy resets all changes to the "moved_by" field.
func (m *ApplicationStageHistoryMutation) ResetMovedBy() {
	m.moved_by = nil
}

// SetEventHash sets the "event_hash" field.
func (m *ApplicationStageHistoryMutation) SetEventHash(s string) {
	m.event_hash = &s
}

// EventHash returns the value of the "event_hash" field in the mutation.
func (m *ApplicationStageHistoryMutation) EventHash() (r string, exists bool) {
	v := m.event_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldEventHash returns the old "event_hash" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldEventHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventHash: %w", err)
	}
	return oldValue.EventHash, nil
}

// ResetEventHash resets all changes to the "event_hash" field.
func (m *ApplicationStageHistoryMutation) ResetEventHash() {
	m.event_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationStageHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationStageHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApplicationStageHistory entity.
// If the ApplicationStageHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationStageHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationStageHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ApplicationStageHistoryMutation builder.
func (m *ApplicationStageHistoryMutation) Where(ps ...predicate.ApplicationStageHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationStageHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationStageHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApplicationStageHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationStageHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationStageHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApplicationStageHistory).
func (m *ApplicationStageHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationStageHistoryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, applicationstagehistory.FieldTenantID)
	}
	if m.application_id != nil {
		fields = append(fields, applicationstagehistory.FieldApplicationID)
	}
	if m.action_code != nil {
		fields = append(fields, applicationstagehistory.FieldActionCode)
	}
	if m.from_stage_id != nil {
		fields = append(fields, applicationstagehistory.FieldFromStageID)
	}
	if m.to_stage_id != nil {
		fields = append(fields, applicationstagehistory.FieldToStageID)
	}
	if m.outcome_type != nil {
		fields = append(fields, applicationstagehistory.FieldOutcomeType)
	}
	if m.status_code != nil {
		fields = append(fields, applicationstagehistory.FieldStatusCode)
	}
	if m.is_terminal != nil {
		fields = append(fields, applicationstagehistory.FieldIsTerminal)
	}
	if m.moved_by != nil {
		fields = append(fields, applicationstagehistory.FieldMovedBy)
	}
	if m.event_hash != nil {
		fields = append(fields, applicationstagehistory.FieldEventHash)
	}
	if m.created_at != nil {
		fields = append(fields, applicationstagehistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationStageHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case applicationstagehistory.FieldTenantID:
		return m.TenantID()
	case applicationstagehistory.FieldApplicationID:
		return m.ApplicationID()
	case applicationstagehistory.FieldActionCode:
		return m.ActionCode()
	case applicationstagehistory.FieldFromStageID:
		return m.FromStageID()
	case applicationstagehistory.FieldToStageID:
		return m.ToStageID()
	case applicationstagehistory.FieldOutcomeType:
		return m.OutcomeType()
	case applicationstagehistory.FieldStatusCode:
		return m.StatusCode()
	case applicationstagehistory.FieldIsTerminal:
		return m.IsTerminal()
	case applicationstagehistory.FieldMovedBy:
		return m.MovedBy()
	case applicationstagehistory.FieldEventHash:
		return m.EventHash()
	case applicationstagehistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationStageHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case applicationstagehistory.FieldTenantID:
		return m.OldTenantID(ctx)
	case applicationstagehistory.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case applicationstagehistory.FieldActionCode:
		return m.OldActionCode(ctx)
	case applicationstagehistory.FieldFromStageID:
		return m.OldFromStageID(ctx)
	case applicationstagehistory.FieldToStageID:
		return m.OldToStageID(ctx)
	case applicationstagehistory.FieldOutcomeType:
		return m.OldOutcomeType(ctx)
	case applicationstagehistory.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case applicationstagehistory.FieldIsTerminal:
		return m.OldIsTerminal(ctx)
	case applicationstagehistory.FieldMovedBy:
		return m.OldMovedBy(ctx)
	case applicationstagehistory.FieldEventHash:
		return m.OldEventHash(ctx)
	case applicationstagehistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApplicationStageHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationStageHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case applicationstagehistory.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case applicationstagehistory.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case applicationstagehistory.FieldActionCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionCode(v)
		return nil
	case applicationstagehistory.FieldFromStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStageID(v)
		return nil
	case applicationstagehistory.FieldToStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStageID(v)
		return nil
	case applicationstagehistory.FieldOutcomeType:
		v, ok := value.(models.OutcomeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeType(v)
		return nil
	case applicationstagehistory.FieldStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case applicationstagehistory.FieldIsTerminal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTerminal(v)
		return nil
	case applicationstagehistory.FieldMovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMovedBy(v)
		return nil
	case applicationstagehistory.FieldEventHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventHash(v)
		return nil
	case applicationstagehistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApplicationStageHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationStageHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationStageHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationStageHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApplicationStageHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationStageHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(applicationstagehistory.FieldActionCode) {
		fields = append(fields, applicationstagehistory.FieldActionCode)
	}
	if m.FieldCleared(applicationstagehistory.FieldFromStageID) {
		fields = append(fields, applicationstagehistory.FieldFromStageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationStageHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationStageHistoryMutation) ClearField(name string) error {
	switch name {
	case applicationstagehistory.FieldActionCode:
		m.ClearActionCode()
		return nil
	case applicationstagehistory.FieldFromStageID:
		m.ClearFromStageID()
		return nil
	}
	return fmt.Errorf("unknown ApplicationStageHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationStageHistoryMutation) ResetField(name string) error {
	switch name {
	case applicationstagehistory.FieldTenantID:
		m.ResetTenantID()
		return nil
	case applicationstagehistory.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case applicationstagehistory.FieldActionCode:
		m.ResetActionCode()
		return nil
	case applicationstagehistory.FieldFromStageID:
		m.ResetFromStageID()
		return nil
	case applicationstagehistory.FieldToStageID:
		m.ResetToStageID()
		return nil
	case applicationstagehistory.FieldOutcomeType:
		m.ResetOutcomeType()
		return nil
	case applicationstagehistory.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case applicationstagehistory.FieldIsTerminal:
		m.ResetIsTerminal()
		return nil
	case applicationstagehistory.FieldMovedBy:
		m.ResetMovedBy()
		return nil
	case applicationstagehistory.FieldEventHash:
		m.ResetEventHash()
		return nil
	case applicationstagehistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApplicationStageHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationStageHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationStageHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationStageHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationStageHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationStageHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationStageHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationStageHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApplicationStageHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationStageHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApplicationStageHistory edge %s", name)
}

// EvaluationInstanceMutation represents an operation that mutates the EvaluationInstance nodes in the graph.
type EvaluationInstanceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	application_id      *string
	stage_id            *string
	template_id         *string
	template_version    *int
	addtemplate_version *int
	status              *models.EvaluationStatus
	force_completed     *bool
	force_note          *string
	completed_by        *string
	created_by          *string
	due_at              *time.Time
	completed_at        *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	participants        map[string]struct{}
	removedparticipants map[string]struct{}
	clearedparticipants bool
	responses           map[string]struct{}
	removedresponses    map[string]struct{}
	clearedresponses    bool
	done                bool
	oldValue            func(context.Context) (*EvaluationInstance, error)
	predicates          []predicate.EvaluationInstance
}

var _ ent.Mutation = (*EvaluationInstanceMutation)(nil)

// evaluationinstanceOption allows management of the mutation configuration using functional options.
type evaluationinstanceOption func(*EvaluationInstanceMutation)

// newEvaluationInstanceMutation creates new mutation for the EvaluationInstance entity.
func newEvaluationInstanceMutation(c config, op Op, opts ...evaluationinstanceOption) *EvaluationInstanceMutation {
	m := &EvaluationInstanceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationInstance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationInstanceID sets the ID field of the mutation.
func withEvaluationInstanceID(id string) evaluationinstanceOption {
	return func(m *EvaluationInstanceMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationInstance
		)
		m.oldValue = func(ctx context.Context) (*EvaluationInstance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationInstance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationInstance sets the old EvaluationInstance of the mutation.
func withEvaluationInstance(node *EvaluationInstance) evaluationinstanceOption {
	return func(m *EvaluationInstanceMutation) {
		m.oldValue = func(context.Context) (*EvaluationInstance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationInstanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationInstanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationInstance entities.
func (m *EvaluationInstanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationInstanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationInstanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationInstance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *EvaluationInstanceMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EvaluationInstanceMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EvaluationInstanceMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetApplicationID sets the "application_id" field.
func (m *EvaluationInstanceMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *EvaluationInstanceMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldApplicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *EvaluationInstanceMutation) ResetApplicationID() {
	m.application_id = nil
}

// SetStageID sets the "stage_id" field.
func (m *EvaluationInstanceMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *EvaluationInstanceMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ClearStageID clears the value of the "stage_id" field.
func (m *EvaluationInstanceMutation) ClearStageID() {
	m.stage_id = nil
	m.clearedFields[evaluationinstance.FieldStageID] = struct{}{}
}

// StageIDCleared returns if the "stage_id" field was cleared in this mutation.
func (m *EvaluationInstanceMutation) StageIDCleared() bool {
	_, ok := m.clearedFields[evaluationinstance.FieldStageID]
	return ok
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *EvaluationInstanceMutation) ResetStageID() {
	m.stage_id = nil
	delete(m.clearedFields, evaluationinstance.FieldStageID)
}

// SetTemplateID sets the "template_id" field.
func (m *EvaluationInstanceMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *EvaluationInstanceMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *EvaluationInstanceMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetTemplateVersion sets the "template_version" field.
func (m *EvaluationInstanceMutation) SetTemplateVersion(i int) {
	m.template_version = &i
	m.addtemplate_version = nil
}

// TemplateVersion returns the value of the "template_version" field in the mutation.
func (m *EvaluationInstanceMutation) TemplateVersion() (r int, exists bool) {
	v := m.template_version
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateVersion returns the old "template_version" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldTemplateVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateVersion: %w", err)
	}
	return oldValue.TemplateVersion, nil
}

// AddTemplateVersion adds i to the "template_version" field.
func (m *EvaluationInstanceMutation) AddTemplateVersion(i int) {
	if m.addtemplate_version != nil {
		*m.addtemplate_version += i
	} else {
		m.addtemplate_version = &i
	}
}

// AddedTemplateVersion returns the value that was added to the "template_version" field in this mutation.
func (m *EvaluationInstanceMutation) AddedTemplateVersion() (r int, exists bool) {
	v := m.addtemplate_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemplateVersion resets all changes to the "template_version" field.
func (m *EvaluationInstanceMutation) ResetTemplateVersion() {
	m.template_version = nil
	m.addtemplate_version = nil
}

// SetStatus sets the "status" field.
func (m *EvaluationInstanceMutation) SetStatus(ms models.EvaluationStatus) {
	m.status = &ms
}

// Status returns the value of the "status" field in the mutation.
func (m *EvaluationInstanceMutation) Status() (r models.EvaluationStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldStatus(ctx context.Context) (v models.EvaluationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EvaluationInstanceMutation) ResetStatus() {
	m.status = nil
}

// SetForceCompleted sets the "force_completed" field.
func (m *EvaluationInstanceMutation) SetForceCompleted(b bool) {
	m.force_completed = &b
}

// ForceCompleted returns the value of the "force_completed" field in the mutation.
func (m *EvaluationInstanceMutation) ForceCompleted() (r bool, exists bool) {
	v := m.force_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldForceCompleted returns the old "force_completed" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldForceCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForceCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForceCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForceCompleted: %w", err)
	}
	return oldValue.ForceCompleted, nil
}

// ResetForceCompleted resets all changes to the "force_completed" field.
func (m *EvaluationInstanceMutation) ResetForceCompleted() {
	m.force_completed = nil
}

// SetForceNote sets the "force_note" field.
func (m *EvaluationInstanceMutation) SetForceNote(s string) {
	m.force_note = &s
}

// ForceNote returns the value of the "force_note" field in the mutation.
func (m *EvaluationInstanceMutation) ForceNote() (r string, exists bool) {
	v := m.force_note
	if v == nil {
		return
	}
	return *v, true
}

// OldForceNote returns the old "force_note" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldForceNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForceNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForceNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForceNote: %w", err)
	}
	return oldValue.ForceNote, nil
}

// ClearForceNote clears the value of the "force_note" field.
func (m *EvaluationInstanceMutation) ClearForceNote() {
	m.force_note = nil
	m.clearedFields[evaluationinstance.FieldForceNote] = struct{}{}
}

// ForceNoteCleared returns if the "force_note" field was cleared in this mutation.
func (m *EvaluationInstanceMutation) ForceNoteCleared() bool {
	_, ok := m.clearedFields[evaluationinstance.FieldForceNote]
	return ok
}

// ResetForceNote resets all changes to the "force_note" field.
func (m *EvaluationInstanceMutation) ResetForceNote() {
	m.force_note = nil
	delete(m.clearedFields, evaluationinstance.FieldForceNote)
}

// SetCompletedBy sets the "completed_by" field.
func (m *EvaluationInstanceMutation) SetCompletedBy(s string) {
	m.completed_by = &s
}

// CompletedBy returns the value of the "completed_by" field in the mutation.
func (m *EvaluationInstanceMutation) CompletedBy() (r string, exists bool) {
	v := m.completed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedBy returns the old "completed_by" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldCompletedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedBy: %w", err)
	}
	return oldValue.CompletedBy, nil
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (m *EvaluationInstanceMutation) ClearCompletedBy() {
	m.completed_by = nil
	m.clearedFields[evaluationinstance.FieldCompletedBy] = struct{}{}
}

// CompletedByCleared returns if the "completed_by" field was cleared in this mutation.
func (m *EvaluationInstanceMutation) CompletedByCleared() bool {
	_, ok := m.clearedFields[evaluationinstance.FieldCompletedBy]
	return ok
}

// ResetCompletedBy resets all changes to the "completed_by" field.
func (m *EvaluationInstanceMutation) ResetCompletedBy() {
	m.completed_by = nil
	delete(m.clearedFields, evaluationinstance.FieldCompletedBy)
}

// SetCreatedBy sets the "created_by" field.
func (m *EvaluationInstanceMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *EvaluationInstanceMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *EvaluationInstanceMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[evaluationinstance.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *EvaluationInstanceMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[evaluationinstance.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *EvaluationInstanceMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, evaluationinstance.FieldCreatedBy)
}

// SetDueAt sets the "due_at" field.
func (m *EvaluationInstanceMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *EvaluationInstanceMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldDueAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ClearDueAt clears the value of the "due_at" field.
func (m *EvaluationInstanceMutation) ClearDueAt() {
	m.due_at = nil
	m.clearedFields[evaluationinstance.FieldDueAt] = struct{}{}
}

// DueAtCleared returns if the "due_at" field was cleared in this mutation.
func (m *EvaluationInstanceMutation) DueAtCleared() bool {
	_, ok := m.clearedFields[evaluationinstance.FieldDueAt]
	return ok
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *EvaluationInstanceMutation) ResetDueAt() {
	m.due_at = nil
	delete(m.clearedFields, evaluationinstance.FieldDueAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *EvaluationInstanceMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *EvaluationInstanceMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *EvaluationInstanceMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[evaluationinstance.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *EvaluationInstanceMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[evaluationinstance.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *EvaluationInstanceMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, evaluationinstance.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationInstanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationInstanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationInstanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EvaluationInstanceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EvaluationInstanceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EvaluationInstance entity.
// If the EvaluationInstance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationInstanceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EvaluationInstanceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddParticipantIDs adds the "participants" edge to the EvaluationParticipant entity by ids.
func (m *EvaluationInstanceMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the EvaluationParticipant entity.
func (m *EvaluationInstanceMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the EvaluationParticipant entity was cleared.
func (m *EvaluationInstanceMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the EvaluationParticipant entity by IDs.
func (m *EvaluationInstanceMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the EvaluationParticipant entity.
func (m *EvaluationInstanceMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *EvaluationInstanceMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *EvaluationInstanceMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddResponseIDs adds the "responses" edge to the EvaluationResponse entity by ids.
func (m *EvaluationInstanceMutation) AddResponseIDs(ids ...string) {
	if m.responses == nil {
		m.responses = make(map[string]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the EvaluationResponse entity.
func (m *EvaluationInstanceMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the EvaluationResponse entity was cleared.
func (m *EvaluationInstanceMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the EvaluationResponse entity by IDs.
func (m *EvaluationInstanceMutation) RemoveResponseIDs(ids ...string) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the EvaluationResponse entity.
func (m *EvaluationInstanceMutation) RemovedResponsesIDs() (ids []string) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *EvaluationInstanceMutation) ResponsesIDs() (ids []string) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *EvaluationInstanceMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// Where appends a list predicates to the EvaluationInstanceMutation builder.
func (m *EvaluationInstanceMutation) Where(ps ...predicate.EvaluationInstance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationInstanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationInstanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationInstance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationInstanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationInstanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationInstance).
func (m *EvaluationInstanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationInstanceMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, evaluationinstance.FieldTenantID)
	}
	if m.application_id != nil {
		fields = append(fields, evaluationinstance.FieldApplicationID)
	}
	if m.stage_id != nil {
		fields = append(fields, evaluationinstance.FieldStageID)
	}
	if m.template_id != nil {
		fields = append(fields, evaluationinstance.FieldTemplateID)
	}
	if m.template_version != nil {
		fields = append(fields, evaluationinstance.FieldTemplateVersion)
	}
	if m.status != nil {
		fields = append(fields, evaluationinstance.FieldStatus)
	}
	if m.force_completed != nil {
		fields = append(fields, evaluationinstance.FieldForceCompleted)
	}
	if m.force_note != nil {
		fields = append(fields, evaluationinstance.FieldForceNote)
	}
	if m.completed_by != nil {
		fields = append(fields, evaluationinstance.FieldCompletedBy)
	}
	if m.created_by != nil {
		fields = append(fields, evaluationinstance.FieldCreatedBy)
	}
	if m.due_at != nil {
		fields = append(fields, evaluationinstance.FieldDueAt)
	}
	if m.completed_at != nil {
		fields = append(fields, evaluationinstance.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, evaluationinstance.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, evaluationinstance.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationInstanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationinstance.FieldTenantID:
		return m.TenantID()
	case evaluationinstance.FieldApplicationID:
		return m.ApplicationID()
	case evaluationinstance.FieldStageID:
		return m.StageID()
	case evaluationinstance.FieldTemplateID:
		return m.TemplateID()
	case evaluationinstance.FieldTemplateVersion:
		return m.TemplateVersion()
	case evaluationinstance.FieldStatus:
		return m.Status()
	case evaluationinstance.FieldForceCompleted:
		return m.ForceCompleted()
	case evaluationinstance.FieldForceNote:
		return m.ForceNote()
	case evaluationinstance.FieldCompletedBy:
		return m.CompletedBy()
	case evaluationinstance.FieldCreatedBy:
		return m.CreatedBy()
	case evaluationinstance.FieldDueAt:
		return m.DueAt()
	case evaluationinstance.FieldCompletedAt:
		return m.CompletedAt()
	case evaluationinstance.FieldCreatedAt:
		return m.CreatedAt()
	case evaluationinstance.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationInstanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationinstance.FieldTenantID:
		return m.OldTenantID(ctx)
	case evaluationinstance.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case evaluationinstance.FieldStageID:
		return m.OldStageID(ctx)
	case evaluationinstance.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case evaluationinstance.FieldTemplateVersion:
		return m.OldTemplateVersion(ctx)
	case evaluationinstance.FieldStatus:
		return m.OldStatus(ctx)
	case evaluationinstance.FieldForceCompleted:
		return m.OldForceCompleted(ctx)
	case evaluationinstance.FieldForceNote:
		return m.OldForceNote(ctx)
	case evaluationinstance.FieldCompletedBy:
		return m.OldCompletedBy(ctx)
	case evaluationinstance.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case evaluationinstance.FieldDueAt:
		return m.OldDueAt(ctx)
	case evaluationinstance.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case evaluationinstance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evaluationinstance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationInstance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationInstanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationinstance.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case evaluationinstance.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case evaluationinstance.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case evaluationinstance.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case evaluationinstance.FieldTemplateVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateVersion(v)
		return nil
	case evaluationinstance.FieldStatus:
		v, ok := value.(models.EvaluationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case evaluationinstance.FieldForceCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForceCompleted(v)
		return nil
	case evaluationinstance.FieldForceNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForceNote(v)
		return nil
	case evaluationinstance.FieldCompletedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedBy(v)
		return nil
	case evaluationinstance.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case evaluationinstance.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case evaluationinstance.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case evaluationinstance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evaluationinstance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationInstance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationInstanceMutation) AddedFields() []string {
	var fields []string
	if m.addtemplate_version != nil {
		fields = append(fields, evaluationinstance.FieldTemplateVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationInstanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationinstance.FieldTemplateVersion:
		return m.AddedTemplateVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationInstanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationinstance.FieldTemplateVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemplateVersion(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationInstance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationInstanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluationinstance.FieldStageID) {
		fields = append(fields, evaluationinstance.FieldStageID)
	}
	if m.FieldCleared(evaluationinstance.FieldForceNote) {
		fields = append(fields, evaluationinstance.FieldForceNote)
	}
	if m.FieldCleared(evaluationinstance.FieldCompletedBy) {
		fields = append(fields, evaluationinstance.FieldCompletedBy)
	}
	if m.FieldCleared(evaluationinstance.FieldCreatedBy) {
		fields = append(fields, evaluationinstance.FieldCreatedBy)
	}
	if m.FieldCleared(evaluationinstance.FieldDueAt) {
		fields = append(fields, evaluationinstance.FieldDueAt)
	}
	if m.FieldCleared(evaluationinstance.FieldCompletedAt) {
		fields = append(fields, evaluationinstance.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationInstanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationInstanceMutation) ClearField(name string) error {
	switch name {
	case evaluationinstance.FieldStageID:
		m.ClearStageID()
		return nil
	case evaluationinstance.FieldForceNote:
		m.ClearForceNote()
		return nil
	case evaluationinstance.FieldCompletedBy:
		m.ClearCompletedBy()
		return nil
	case evaluationinstance.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case evaluationinstance.FieldDueAt:
		m.ClearDueAt()
		return nil
	case evaluationinstance.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationInstance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationInstanceMutation) ResetField(name string) error {
	switch name {
	case evaluationinstance.FieldTenantID:
		m.ResetTenantID()
		return nil
	case evaluationinstance.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case evaluationinstance.FieldStageID:
		m.ResetStageID()
		return nil
	case evaluationinstance.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case evaluationinstance.FieldTemplateVersion:
		m.ResetTemplateVersion()
		return nil
	case evaluationinstance.FieldStatus:
		m.ResetStatus()
		return nil
	case evaluationinstance.FieldForceCompleted:
		m.ResetForceCompleted()
		return nil
	case evaluationinstance.FieldForceNote:
		m.ResetForceNote()
		return nil
	case evaluationinstance.FieldCompletedBy:
		m.ResetCompletedBy()
		return nil
	case evaluationinstance.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case evaluationinstance.FieldDueAt:
		m.ResetDueAt()
		return nil
	case evaluationinstance.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case evaluationinstance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evaluationinstance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationInstance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationInstanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.participants != nil {
		edges = append(edges, evaluationinstance.EdgeParticipants)
	}
	if m.responses != nil {
		edges = append(edges, evaluationinstance.EdgeResponses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationInstanceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationinstance.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case evaluationinstance.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationInstanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedparticipants != nil {
		edges = append(edges, evaluationinstance.EdgeParticipants)
	}
	if m.removedresponses != nil {
		edges = append(edges, evaluationinstance.EdgeResponses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationInstanceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case evaluationinstance.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case evaluationinstance.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationInstanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparticipants {
		edges = append(edges, evaluationinstance.EdgeParticipants)
	}
	if m.clearedresponses {
		edges = append(edges, evaluationinstance.EdgeResponses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationInstanceMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationinstance.EdgeParticipants:
		return m.clearedparticipants
	case evaluationinstance.EdgeResponses:
		return m.clearedresponses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationInstanceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown EvaluationInstance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationInstanceMutation) ResetEdge(name string) error {
	switch name {
	case evaluationinstance.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case evaluationinstance.EdgeResponses:
		m.ResetResponses()
		return nil
	}
	return fmt.Errorf("unknown EvaluationInstance edge %s", name)
}

// EvaluationParticipantMutation represents an operation that mutates the EvaluationParticipant nodes in the graph.
type EvaluationParticipantMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	status            *models.ParticipantStatus
	sequence          *int
	addsequence       *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	evaluation        *string
	clearedevaluation bool
	done              bool
	oldValue          func(context.Context) (*EvaluationParticipant, error)
	predicates        []predicate.EvaluationParticipant
}

var _ ent.Mutation = (*EvaluationParticipantMutation)(nil)

// evaluationparticipantOption allows management of the mutation configuration using functional options.
type evaluationparticipantOption func(*EvaluationParticipantMutation)

// newEvaluationParticipantMutation creates new mutation for the EvaluationParticipant entity.
func newEvaluationParticipantMutation(c config, op Op, opts ...evaluationparticipantOption) *EvaluationParticipantMutation {
	m := &EvaluationParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationParticipantID sets the ID field of the mutation.
func withEvaluationParticipantID(id string) evaluationparticipantOption {
	return func(m *EvaluationParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationParticipant
		)
		m.oldValue = func(ctx context.Context) (*EvaluationParticipant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationParticipant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationParticipant sets the old EvaluationParticipant of the mutation.
func withEvaluationParticipant(node *EvaluationParticipant) evaluationparticipantOption {
	return func(m *EvaluationParticipantMutation) {
		m.oldValue = func(context.Context) (*EvaluationParticipant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationParticipant entities.
func (m *EvaluationParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationParticipant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEvaluationID sets the "evaluation_id" field.
func (m *EvaluationParticipantMutation) SetEvaluationID(s string) {
	m.evaluation = &s
}

// EvaluationID returns the value of the "evaluation_id" field in the mutation.
func (m *EvaluationParticipantMutation) EvaluationID() (r string, exists bool) {
	v := m.evaluation
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationID returns the old "evaluation_id" field's value of the EvaluationParticipant entity.
// If the EvaluationParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationParticipantMutation) OldEvaluationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationID: %w", err)
	}
	return oldValue.EvaluationID, nil
}

// ResetEvaluationID resets all changes to the "evaluation_id" field.
func (m *EvaluationParticipantMutation) ResetEvaluationID() {
	m.evaluation = nil
}

// SetUserID sets the "user_id" field.
func (m *EvaluationParticipantMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EvaluationParticipantMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the EvaluationParticipant entity.
// If the EvaluationParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationParticipantMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EvaluationParticipantMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *EvaluationParticipantMutation) SetStatus(ms models.ParticipantStatus) {
	m.status = &ms
}

// Status returns the value of the "status" field in the mutation.
func (m *EvaluationParticipantMutation) Status() (r models.ParticipantStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EvaluationParticipant entity.
// If the EvaluationParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationParticipantMutation) OldStatus(ctx context.Context) (v models.ParticipantStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EvaluationParticipantMutation) ResetStatus() {
	m.status = nil
}

// SetSequence sets the "sequence" field.
func (m *EvaluationParticipantMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EvaluationParticipantMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the EvaluationParticipant entity.
// If the EvaluationParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationParticipantMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EvaluationParticipantMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EvaluationParticipantMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EvaluationParticipantMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvaluationParticipant entity.
// If the EvaluationParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EvaluationParticipantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EvaluationParticipantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EvaluationParticipant entity.
// If the EvaluationParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationParticipantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EvaluationParticipantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEvaluation clears the "evaluation" edge to the EvaluationInstance entity.
func (m *EvaluationParticipantMutation) ClearEvaluation() {
	m.clearedevaluation = true
	m.clearedFields[evaluationparticipant.FieldEvaluationID] = struct{}{}
}

// EvaluationCleared reports if the "evaluation" edge to the EvaluationInstance entity was cleared.
func (m *EvaluationParticipantMutation) EvaluationCleared() bool {
	return m.clearedevaluation
}

// EvaluationIDs returns the "evaluation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvaluationID instead. It exists only for internal usage by the builders.
func (m *EvaluationParticipantMutation) EvaluationIDs() (ids []string) {
	if id := m.evaluation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvaluation resets all changes to the "evaluation" edge.
func (m *EvaluationParticipantMutation) ResetEvaluation() {
	m.evaluation = nil
	m.clearedevaluation = false
}

// Where appends a list predicates to the EvaluationParticipantMutation builder.
func (m *EvaluationParticipantMutation) Where(ps ...predicate.EvaluationParticipant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationParticipant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationParticipant).
func (m *EvaluationParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationParticipantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.evaluation != nil {
		fields = append(fields, evaluationparticipant.FieldEvaluationID)
	}
	if m.user_id != nil {
		fields = append(fields, evaluationparticipant.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, evaluationparticipant.FieldStatus)
	}
	if m.sequence != nil {
		fields = append(fields, evaluationparticipant.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, evaluationparticipant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, evaluationparticipant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationparticipant.FieldEvaluationID:
		return m.EvaluationID()
	case evaluationparticipant.FieldUserID:
		return m.UserID()
	case evaluationparticipant.FieldStatus:
		return m.Status()
	case evaluationparticipant.FieldSequence:
		return m.Sequence()
	case evaluationparticipant.FieldCreatedAt:
		return m.CreatedAt()
	case evaluationparticipant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationparticipant.FieldEvaluationID:
		return m.OldEvaluationID(ctx)
	case evaluationparticipant.FieldUserID:
		return m.OldUserID(ctx)
	case evaluationparticipant.FieldStatus:
		return m.OldStatus(ctx)
	case evaluationparticipant.FieldSequence:
		return m.OldSequence(ctx)
	case evaluationparticipant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evaluationparticipant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationParticipant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationparticipant.FieldEvaluationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationID(v)
		return nil
	case evaluationparticipant.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case evaluationparticipant.FieldStatus:
		v, ok := value.(models.ParticipantStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case evaluationparticipant.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case evaluationparticipant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evaluationparticipant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationParticipant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationParticipantMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, evaluationparticipant.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationParticipantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationparticipant.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationparticipant.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationParticipant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationParticipantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationParticipantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvaluationParticipant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationParticipantMutation) ResetField(name string) error {
	switch name {
	case evaluationparticipant.FieldEvaluationID:
		m.ResetEvaluationID()
		return nil
	case evaluationparticipant.FieldUserID:
		m.ResetUserID()
		return nil
	case evaluationparticipant.FieldStatus:
		m.ResetStatus()
		return nil
	case evaluationparticipant.FieldSequence:
		m.ResetSequence()
		return nil
	case evaluationparticipant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evaluationparticipant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationParticipant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.evaluation != nil {
		edges = append(edges, evaluationparticipant.EdgeEvaluation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationparticipant.EdgeEvaluation:
		if id := m.evaluation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevaluation {
		edges = append(edges, evaluationparticipant.EdgeEvaluation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationparticipant.EdgeEvaluation:
		return m.clearedevaluation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationParticipantMutation) ClearEdge(name string) error {
	switch name {
	case evaluationparticipant.EdgeEvaluation:
		m.ClearEvaluation()
		return nil
	}
	return fmt.Errorf("unknown EvaluationParticipant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationParticipantMutation) ResetEdge(name string) error {
	switch name {
	case evaluationparticipant.EdgeEvaluation:
		m.ResetEvaluation()
		return nil
	}
	return fmt.Errorf("unknown EvaluationParticipant edge %s", name)
}

// EvaluationResponseMutation represents an operation that mutates the EvaluationResponse nodes in the graph.
type EvaluationResponseMutation struct {
	config
	op                Op
	typ               string
	id                *string
	participant_id    *string
	user_id           *string
	response_data     *map[string]interface{}
	submitted_at      *time.Time
	clearedFields     map[string]struct{}
	evaluation        *string
	clearedevaluation bool
	done              bool
	oldValue          func(context.Context) (*EvaluationResponse, error)
	predicates        []predicate.EvaluationResponse
}

var _ ent.Mutation = (*EvaluationResponseMutation)(nil)

// evaluationresponseOption allows management of the mutation configuration using functional options.
type evaluationresponseOption func(*EvaluationResponseMutation)

// newEvaluationResponseMutation creates new mutation for the EvaluationResponse entity.
func newEvaluationResponseMutation(c config, op Op, opts ...evaluationresponseOption) *EvaluationResponseMutation {
	m := &EvaluationResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationResponseID sets the ID field of the mutation.
func withEvaluationResponseID(id string) evaluationresponseOption {
	return func(m *EvaluationResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationResponse
		)
		m.oldValue = func(ctx context.Context) (*EvaluationResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationResponse sets the old EvaluationResponse of the mutation.
func withEvaluationResponse(node *EvaluationResponse) evaluationresponseOption {
	return func(m *EvaluationResponseMutation) {
		m.oldValue = func(context.Context) (*EvaluationResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationResponse entities.
func (m *EvaluationResponseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationResponseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationResponseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEvaluationID sets the "evaluation_id" field.
func (m *EvaluationResponseMutation) SetEvaluationID(s string) {
	m.evaluation = &s
}

// EvaluationID returns the value of the "evaluation_id" field in the mutation.
func (m *EvaluationResponseMutation) EvaluationID() (r string, exists bool) {
	v := m.evaluation
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationID returns the old "evaluation_id" field's value of the EvaluationResponse entity.
// If the EvaluationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResponseMutation) OldEvaluationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationID: %w", err)
	}
	return oldValue.EvaluationID, nil
}

// ResetEvaluationID resets all changes to the "evaluation_id" field.
func (m *EvaluationResponseMutation) ResetEvaluationID() {
	m.evaluation = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *EvaluationResponseMutation) SetParticipantID(s string) {
	m.participant_id = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *EvaluationResponseMutation) ParticipantID() (r string, exists bool) {
	v := m.participant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the EvaluationResponse entity.
// If the EvaluationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResponseMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *EvaluationResponseMutation) ResetParticipantID() {
	m.participant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *EvaluationResponseMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EvaluationResponseMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the EvaluationResponse entity.
// If the EvaluationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResponseMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EvaluationResponseMutation) ResetUserID() {
	m.user_id = nil
}

// SetResponseData sets the "response_data" field.
func (m *EvaluationResponseMutation) SetResponseData(value map[string]interface{}) {
	m.response_data = &value
}

// ResponseData returns the value of the "response_data" field in the mutation.
func (m *EvaluationResponseMutation) ResponseData() (r map[string]interface{}, exists bool) {
	v := m.response_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseData returns the old "response_data" field's value of the EvaluationResponse entity.
// If the EvaluationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResponseMutation) OldResponseData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseData: %w", err)
	}
	return oldValue.ResponseData, nil
}

// ResetResponseData resets all changes to the "response_data" field.
func (m *EvaluationResponseMutation) ResetResponseData() {
	m.response_data = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *EvaluationResponseMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *EvaluationResponseMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the EvaluationResponse entity.
// If the EvaluationResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationResponseMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *EvaluationResponseMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// ClearEvaluation clears the "evaluation" edge to the EvaluationInstance entity.
func (m *EvaluationResponseMutation) ClearEvaluation() {
	m.clearedevaluation = true
	m.clearedFields[evaluationresponse.FieldEvaluationID] = struct{}{}
}

// EvaluationCleared reports if the "evaluation" edge to the EvaluationInstance entity was cleared.
func (m *EvaluationResponseMutation) EvaluationCleared() bool {
	return m.clearedevaluation
}

// EvaluationIDs returns the "evaluation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvaluationID instead. It exists only for internal usage by the builders.
func (m *EvaluationResponseMutation) EvaluationIDs() (ids []string) {
	if id := m.evaluation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvaluation resets all changes to the "evaluation" edge.
func (m *EvaluationResponseMutation) ResetEvaluation() {
	m.evaluation = nil
	m.clearedevaluation = false
}

// Where appends a list predicates to the EvaluationResponseMutation builder.
func (m *EvaluationResponseMutation) Where(ps ...predicate.EvaluationResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationResponse).
func (m *EvaluationResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationResponseMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.evaluation != nil {
		fields = append(fields, evaluationresponse.FieldEvaluationID)
	}
	if m.participant_id != nil {
		fields = append(fields, evaluationresponse.FieldParticipantID)
	}
	if m.user_id != nil {
		fields = append(fields, evaluationresponse.FieldUserID)
	}
	if m.response_data != nil {
		fields = append(fields, evaluationresponse.FieldResponseData)
	}
	if m.submitted_at != nil {
		fields = append(fields, evaluationresponse.FieldSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationresponse.FieldEvaluationID:
		return m.EvaluationID()
	case evaluationresponse.FieldParticipantID:
		return m.ParticipantID()
	case evaluationresponse.FieldUserID:
		return m.UserID()
	case evaluationresponse.FieldResponseData:
		return m.ResponseData()
	case evaluationresponse.FieldSubmittedAt:
		return m.SubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationresponse.FieldEvaluationID:
		return m.OldEvaluationID(ctx)
	case evaluationresponse.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case evaluationresponse.FieldUserID:
		return m.OldUserID(ctx)
	case evaluationresponse.FieldResponseData:
		return m.OldResponseData(ctx)
	case evaluationresponse.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationresponse.FieldEvaluationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationID(v)
		return nil
	case evaluationresponse.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case evaluationresponse.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case evaluationresponse.FieldResponseData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseData(v)
		return nil
	case evaluationresponse.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationResponseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationResponseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EvaluationResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationResponseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationResponseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvaluationResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationResponseMutation) ResetField(name string) error {
	switch name {
	case evaluationresponse.FieldEvaluationID:
		m.ResetEvaluationID()
		return nil
	case evaluationresponse.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case evaluationresponse.FieldUserID:
		m.ResetUserID()
		return nil
	case evaluationresponse.FieldResponseData:
		m.ResetResponseData()
		return nil
	case evaluationresponse.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.evaluation != nil {
		edges = append(edges, evaluationresponse.EdgeEvaluation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationresponse.EdgeEvaluation:
		if id := m.evaluation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevaluation {
		edges = append(edges, evaluationresponse.EdgeEvaluation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationresponse.EdgeEvaluation:
		return m.clearedevaluation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationResponseMutation) ClearEdge(name string) error {
	switch name {
	case evaluationresponse.EdgeEvaluation:
		m.ClearEvaluation()
		return nil
	}
	return fmt.Errorf("unknown EvaluationResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationResponseMutation) ResetEdge(name string) error {
	switch name {
	case evaluationresponse.EdgeEvaluation:
		m.ResetEvaluation()
		return nil
	}
	return fmt.Errorf("unknown EvaluationResponse edge %s", name)
}

// EvaluationTemplateMutation represents an operation that mutates the EvaluationTemplate nodes in the graph.
type EvaluationTemplateMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	name                *string
	description         *string
	participant_type    *models.ParticipantType
	signal_schema       *[]models.SignalField
	appendsignal_schema []models.SignalField
	default_aggregation *models.Aggregation
	version             *int
	addversion          *int
	is_latest           *bool
	is_active           *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*EvaluationTemplate, error)
	predicates          []predicate.EvaluationTemplate
}

var _ ent.Mutation = (*EvaluationTemplateMutation)(nil)

// evaluationtemplateOption allows management of the mutation configuration using functional options.
type evaluationtemplateOption func(*EvaluationTemplateMutation)

// newEvaluationTemplateMutation creates new mutation for the EvaluationTemplate entity.
func newEvaluationTemplateMutation(c config, op Op, opts ...evaluationtemplateOption) *EvaluationTemplateMutation {
	m := &EvaluationTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationTemplateID sets the ID field of the mutation.
func withEvaluationTemplateID(id string) evaluationtemplateOption {
	return func(m *EvaluationTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationTemplate
		)
		m.oldValue = func(ctx context.Context) (*EvaluationTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationTemplate sets the old EvaluationTemplate of the mutation.
func withEvaluationTemplate(node *EvaluationTemplate) evaluationtemplateOption {
	return func(m *EvaluationTemplateMutation) {
		m.oldValue = func(context.Context) (*EvaluationTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationTemplate entities.
func (m *EvaluationTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *EvaluationTemplateMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EvaluationTemplateMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EvaluationTemplateMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *EvaluationTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EvaluationTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EvaluationTemplateMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *EvaluationTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EvaluationTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EvaluationTemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[evaluationtemplate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EvaluationTemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[evaluationtemplate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EvaluationTemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, evaluationtemplate.FieldDescription)
}

// SetParticipantType sets the "participant_type" field.
func (m *EvaluationTemplateMutation) SetParticipantType(mt models.ParticipantType) {
	m.participant_type = &mt
}

// ParticipantType returns the value of the "participant_type" field in the mutation.
func (m *EvaluationTemplateMutation) ParticipantType() (r models.ParticipantType, exists bool) {
	v := m.participant_type
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantType returns the old "participant_type" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldParticipantType(ctx context.Context) (v models.ParticipantType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantType: %w", err)
	}
	return oldValue.ParticipantType, nil
}

// ResetParticipantType resets all changes to the "participant_type" field.
func (m *EvaluationTemplateMutation) ResetParticipantType() {
	m.participant_type = nil
}

// SetSignalSchema sets the "signal_schema" field.
func (m *EvaluationTemplateMutation) SetSignalSchema(mf []models.SignalField) {
	m.signal_schema = &mf
	m.appendsignal_schema = nil
}

// SignalSchema returns the value of the "signal_schema" field in the mutation.
func (m *EvaluationTemplateMutation) SignalSchema() (r []models.SignalField, exists bool) {
	v := m.signal_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalSchema returns the old "signal_schema" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldSignalSchema(ctx context.Context) (v []models.SignalField, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalSchema: %w", err)
	}
	return oldValue.SignalSchema, nil
}

// AppendSignalSchema adds mf to the "signal_schema" field.
func (m *EvaluationTemplateMutation) AppendSignalSchema(mf []models.SignalField) {
	m.appendsignal_schema = append(m.appendsignal_schema, mf...)
}

// AppendedSignalSchema returns the list of values that were appended to the "signal_schema" field in this mutation.
func (m *EvaluationTemplateMutation) AppendedSignalSchema() ([]models.SignalField, bool) {
	if len(m.appendsignal_schema) == 0 {
		return nil, false
	}
	return m.appendsignal_schema, true
}

// ResetSignalSchema resets all changes to the "signal_schema" field.
func (m *EvaluationTemplateMutation) ResetSignalSchema() {
	m.signal_schema = nil
	m.appendsignal_schema = nil
}

// SetDefaultAggregation sets the "default_aggregation" field.
func (m *EvaluationTemplateMutation) SetDefaultAggregation(value models.Aggregation) {
	m.default_aggregation = &value
}

// DefaultAggregation returns the value of the "default_aggregation" field in the mutation.
func (m *EvaluationTemplateMutation) DefaultAggregation() (r models.Aggregation, exists bool) {
	v := m.default_aggregation
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultAggregation returns the old "default_aggregation" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldDefaultAggregation(ctx context.Context) (v *models.Aggregation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultAggregation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultAggregation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultAggregation: %w", err)
	}
	return oldValue.DefaultAggregation, nil
}

// ClearDefaultAggregation clears the value of the "default_aggregation" field.
func (m *EvaluationTemplateMutation) ClearDefaultAggregation() {
	m.default_aggregation = nil
	m.clearedFields[evaluationtemplate.FieldDefaultAggregation] = struct{}{}
}

// DefaultAggregationCleared returns if the "default_aggregation" field was cleared in this mutation.
func (m *EvaluationTemplateMutation) DefaultAggregationCleared() bool {
	_, ok := m.clearedFields[evaluationtemplate.FieldDefaultAggregation]
	return ok
}

// ResetDefaultAggregation resets all changes to the "default_aggregation" field.
func (m *EvaluationTemplateMutation) ResetDefaultAggregation() {
	m.default_aggregation = nil
	delete(m.clearedFields, evaluationtemplate.FieldDefaultAggregation)
}

// SetVersion sets the "version" field.
func (m *EvaluationTemplateMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *EvaluationTemplateMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *EvaluationTemplateMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *EvaluationTemplateMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *EvaluationTemplateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIsLatest sets the "is_latest" field.
func (m *EvaluationTemplateMutation) SetIsLatest(b bool) {
	m.is_latest = &b
}

// IsLatest returns the value of the "is_latest" field in the mutation.
func (m *EvaluationTemplateMutation) IsLatest() (r bool, exists bool) {
	v := m.is_latest
	if v == nil {
		return
	}
	return *v, true
}

// OldIsLatest returns the old "is_latest" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldIsLatest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsLatest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsLatest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsLatest: %w", err)
	}
	return oldValue.IsLatest, nil
}

// ResetIsLatest resets all changes to the "is_latest" field.
func (m *EvaluationTemplateMutation) ResetIsLatest() {
	m.is_latest = nil
}

// SetIsActive sets the "is_active" field.
func (m *EvaluationTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *EvaluationTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *EvaluationTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EvaluationTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EvaluationTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EvaluationTemplate entity.
// If the EvaluationTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EvaluationTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EvaluationTemplateMutation builder.
func (m *EvaluationTemplateMutation) Where(ps ...predicate.EvaluationTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationTemplate).
func (m *EvaluationTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationTemplateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, evaluationtemplate.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, evaluationtemplate.FieldName)
	}
	if m.description != nil {
		fields = append(fields, evaluationtemplate.FieldDescription)
	}
	if m.participant_type != nil {
		fields = append(fields, evaluationtemplate.FieldParticipantType)
	}
	if m.signal_schema != nil {
		fields = append(fields, evaluationtemplate.FieldSignalSchema)
	}
	if m.default_aggregation != nil {
		fields = append(fields, evaluationtemplate.FieldDefaultAggregation)
	}
	if m.version != nil {
		fields = append(fields, evaluationtemplate.FieldVersion)
	}
	if m.is_latest != nil {
		fields = append(fields, evaluationtemplate.FieldIsLatest)
	}
	if m.is_active != nil {
		fields = append(fields, evaluationtemplate.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, evaluationtemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, evaluationtemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationtemplate.FieldTenantID:
		return m.TenantID()
	case evaluationtemplate.FieldName:
		return m.Name()
	case evaluationtemplate.FieldDescription:
		return m.Description()
	case evaluationtemplate.FieldParticipantType:
		return m.ParticipantType()
	case evaluationtemplate.FieldSignalSchema:
		return m.SignalSchema()
	case evaluationtemplate.FieldDefaultAggregation:
		return m.DefaultAggregation()
	case evaluationtemplate.FieldVersion:
		return m.Version()
	case evaluationtemplate.FieldIsLatest:
		return m.IsLatest()
	case evaluationtemplate.FieldIsActive:
		return m.IsActive()
	case evaluationtemplate.FieldCreatedAt:
		return m.CreatedAt()
	case evaluationtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationtemplate.FieldTenantID:
		return m.OldTenantID(ctx)
	case evaluationtemplate.FieldName:
		return m.OldName(ctx)
	case evaluationtemplate.FieldDescription:
		return m.OldDescription(ctx)
	case evaluationtemplate.FieldParticipantType:
		return m.OldParticipantType(ctx)
	case evaluationtemplate.FieldSignalSchema:
		return m.OldSignalSchema(ctx)
	case evaluationtemplate.FieldDefaultAggregation:
		return m.OldDefaultAggregation(ctx)
	case evaluationtemplate.FieldVersion:
		return m.OldVersion(ctx)
	case evaluationtemplate.FieldIsLatest:
		return m.OldIsLatest(ctx)
	case evaluationtemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case evaluationtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evaluationtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationtemplate.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case evaluationtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case evaluationtemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case evaluationtemplate.FieldParticipantType:
		v, ok := value.(models.ParticipantType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantType(v)
		return nil
	case evaluationtemplate.FieldSignalSchema:
		v, ok := value.([]models.SignalField)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalSchema(v)
		return nil
	case evaluationtemplate.FieldDefaultAggregation:
		v, ok := value.(models.Aggregation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultAggregation(v)
		return nil
	case evaluationtemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case evaluationtemplate.FieldIsLatest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsLatest(v)
		return nil
	case evaluationtemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case evaluationtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evaluationtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, evaluationtemplate.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationtemplate.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationtemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluationtemplate.FieldDescription) {
		fields = append(fields, evaluationtemplate.FieldDescription)
	}
	if m.FieldCleared(evaluationtemplate.FieldDefaultAggregation) {
		fields = append(fields, evaluationtemplate.FieldDefaultAggregation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationTemplateMutation) ClearField(name string) error {
	switch name {
	case evaluationtemplate.FieldDescription:
		m.ClearDescription()
		return nil
	case evaluationtemplate.FieldDefaultAggregation:
		m.ClearDefaultAggregation()
		return nil
	}
	return fmt.Errorf("unknown EvaluationTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationTemplateMutation) ResetField(name string) error {
	switch name {
	case evaluationtemplate.FieldTenantID:
		m.ResetTenantID()
		return nil
	case evaluationtemplate.FieldName:
		m.ResetName()
		return nil
	case evaluationtemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case evaluationtemplate.FieldParticipantType:
		m.ResetParticipantType()
		return nil
	case evaluationtemplate.FieldSignalSchema:
		m.ResetSignalSchema()
		return nil
	case evaluationtemplate.FieldDefaultAggregation:
		m.ResetDefaultAggregation()
		return nil
	case evaluationtemplate.FieldVersion:
		m.ResetVersion()
		return nil
	case evaluationtemplate.FieldIsLatest:
		m.ResetIsLatest()
		return nil
	case evaluationtemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case evaluationtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evaluationtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvaluationTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvaluationTemplate edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	title         *string
	created_by    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Job, error)
	predicates    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *JobMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *JobMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *JobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetTitle sets the "title" field.
func (m *JobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobMutation) ResetTitle() {
	m.title = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *JobMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *JobMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *JobMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[job.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *JobMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[job.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *JobMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, job.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_id != nil {
		fields = append(fields, job.FieldTenantID)
	}
	if m.title != nil {
		fields = append(fields, job.FieldTitle)
	}
	if m.created_by != nil {
		fields = append(fields, job.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTenantID:
		return m.TenantID()
	case job.FieldTitle:
		return m.Title()
	case job.FieldCreatedBy:
		return m.CreatedBy()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTenantID:
		return m.OldTenantID(ctx)
	case job.FieldTitle:
		return m.OldTitle(ctx)
	case job.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case job.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case job.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldCreatedBy) {
		fields = append(fields, job.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTenantID:
		m.ResetTenantID()
		return nil
	case job.FieldTitle:
		m.ResetTitle()
		return nil
	case job.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// PipelineMutation represents an operation that mutates the Pipeline nodes in the graph.
type PipelineMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	name          *string
	is_active     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	stages        map[string]struct{}
	removedstages map[string]struct{}
	clearedstages bool
	done          bool
	oldValue      func(context.Context) (*Pipeline, error)
	predicates    []predicate.Pipeline
}

var _ ent.Mutation = (*PipelineMutation)(nil)

// pipelineOption allows management of the mutation configuration using functional options.
type pipelineOption func(*PipelineMutation)

// newPipelineMutation creates new mutation for the Pipeline entity.
func newPipelineMutation(c config, op Op, opts ...pipelineOption) *PipelineMutation {
	m := &PipelineMutation{
		config:        c,
		op:            op,
		typ:           TypePipeline,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineID sets the ID field of the mutation.
func withPipelineID(id string) pipelineOption {
	return func(m *PipelineMutation) {
		var (
			err   error
			once  sync.Once
			value *Pipeline
		)
		m.oldValue = func(ctx context.Context) (*Pipeline, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pipeline.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipeline sets the old Pipeline of the mutation.
func withPipeline(node *Pipeline) pipelineOption {
	return func(m *PipelineMutation) {
		m.oldValue = func(context.Context) (*Pipeline, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pipeline entities.
func (m *PipelineMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pipeline.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PipelineMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PipelineMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PipelineMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *PipelineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineMutation) ResetName() {
	m.name = nil
}

// SetIsActive sets the "is_active" field.
func (m *PipelineMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PipelineMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PipelineMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddStageIDs adds the "stages" edge to the PipelineStage entity by ids.
func (m *PipelineMutation) AddStageIDs(ids ...string) {
	if m.stages == nil {
		m.stages = make(map[string]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the PipelineStage entity.
func (m *PipelineMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the PipelineStage entity was cleared.
func (m *PipelineMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the PipelineStage entity by IDs.
func (m *PipelineMutation) RemoveStageIDs(ids ...string) {
	if m.removedstages == nil {
		m.removedstages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the PipelineStage entity.
func (m *PipelineMutation) RemovedStagesIDs() (ids []string) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *PipelineMutation) StagesIDs() (ids []string) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *PipelineMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// Where appends a list predicates to the PipelineMutation builder.
func (m *PipelineMutation) Where(ps ...predicate.Pipeline) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pipeline, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pipeline).
func (m *PipelineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_id != nil {
		fields = append(fields, pipeline.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, pipeline.FieldName)
	}
	if m.is_active != nil {
		fields = append(fields, pipeline.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, pipeline.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipeline.FieldTenantID:
		return m.TenantID()
	case pipeline.FieldName:
		return m.Name()
	case pipeline.FieldIsActive:
		return m.IsActive()
	case pipeline.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipeline.FieldTenantID:
		return m.OldTenantID(ctx)
	case pipeline.FieldName:
		return m.OldName(ctx)
	case pipeline.FieldIsActive:
		return m.OldIsActive(ctx)
	case pipeline.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pipeline field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipeline.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case pipeline.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipeline.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case pipeline.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pipeline field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Pipeline numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Pipeline nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineMutation) ResetField(name string) error {
	switch name {
	case pipeline.FieldTenantID:
		m.ResetTenantID()
		return nil
	case pipeline.FieldName:
		m.ResetName()
		return nil
	case pipeline.FieldIsActive:
		m.ResetIsActive()
		return nil
	case pipeline.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pipeline field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stages != nil {
		edges = append(edges, pipeline.EdgeStages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipeline.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstages != nil {
		edges = append(edges, pipeline.EdgeStages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipeline.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstages {
		edges = append(edges, pipeline.EdgeStages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineMutation) EdgeCleared(name string) bool {
	switch name {
	case pipeline.EdgeStages:
		return m.clearedstages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Pipeline unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineMutation) ResetEdge(name string) error {
	switch name {
	case pipeline.EdgeStages:
		m.ResetStages()
		return nil
	}
	return fmt.Errorf("unknown Pipeline edge %s", name)
}

// PipelineStageMutation represents an operation that mutates the PipelineStage nodes in the graph.
type PipelineStageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	stage_type      *models.StageType
	order_index     *int
	addorder_index  *int
	conducted_by    *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	pipeline        *string
	clearedpipeline bool
	done            bool
	oldValue        func(context.Context) (*PipelineStage, error)
	predicates      []predicate.PipelineStage
}

var _ ent.Mutation = (*PipelineStageMutation)(nil)

// pipelinestageOption allows management of the mutation configuration using functional options.
type pipelinestageOption func(*PipelineStageMutation)

// newPipelineStageMutation creates new mutation for the PipelineStage entity.
func newPipelineStageMutation(c config, op Op, opts ...pipelinestageOption) *PipelineStageMutation {
	m := &PipelineStageMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStageID sets the ID field of the mutation.
func withPipelineStageID(id string) pipelinestageOption {
	return func(m *PipelineStageMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineStage
		)
		m.oldValue = func(ctx context.Context) (*PipelineStage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineStage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineStage sets the old PipelineStage of the mutation.
func withPipelineStage(node *PipelineStage) pipelinestageOption {
	return func(m *PipelineStageMutation) {
		m.oldValue = func(context.Context) (*PipelineStage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineStage entities.
func (m *PipelineStageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineStage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPipelineID sets the "pipeline_id" field.
func (m *PipelineStageMutation) SetPipelineID(s string) {
	m.pipeline = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *PipelineStageMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldPipelineID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *PipelineStageMutation) ResetPipelineID() {
	m.pipeline = nil
}

// SetName sets the "name" field.
func (m *PipelineStageMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineStageMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineStageMutation) ResetName() {
	m.name = nil
}

// SetStageType sets the "stage_type" field.
func (m *PipelineStageMutation) SetStageType(mt models.StageType) {
	m.stage_type = &mt
}

// StageType returns the value of the "stage_type" field in the mutation.
func (m *PipelineStageMutation) StageType() (r models.StageType, exists bool) {
	v := m.stage_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStageType returns the old "stage_type" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldStageType(ctx context.Context) (v models.StageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageType: %w", err)
	}
	return oldValue.StageType, nil
}

// ResetStageType resets all changes to the "stage_type" field.
func (m *PipelineStageMutation) ResetStageType() {
	m.stage_type = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *PipelineStageMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *PipelineStageMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *PipelineStageMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *PipelineStageMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *PipelineStageMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetConductedBy sets the "conducted_by" field.
func (m *PipelineStageMutation) SetConductedBy(s string) {
	m.conducted_by = &s
}

// ConductedBy returns the value of the "conducted_by" field in the mutation.
func (m *PipelineStageMutation) ConductedBy() (r string, exists bool) {
	v := m.conducted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldConductedBy returns the old "conducted_by" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldConductedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConductedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConductedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConductedBy: %w", err)
	}
	return oldValue.ConductedBy, nil
}

// ClearConductedBy clears the value of the "conducted_by" field.
func (m *PipelineStageMutation) ClearConductedBy() {
	m.conducted_by = nil
	m.clearedFields[pipelinestage.FieldConductedBy] = struct{}{}
}

// ConductedByCleared returns if the "conducted_by" field was cleared in this mutation.
func (m *PipelineStageMutation) ConductedByCleared() bool {
	_, ok := m.clearedFields[pipelinestage.FieldConductedBy]
	return ok
}

// ResetConductedBy resets all changes to the "conducted_by" field.
func (m *PipelineStageMutation) ResetConductedBy() {
	m.conducted_by = nil
	delete(m.clearedFields, pipelinestage.FieldConductedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineStageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineStageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineStageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (m *PipelineStageMutation) ClearPipeline() {
	m.clearedpipeline = true
	m.clearedFields[pipelinestage.FieldPipelineID] = struct{}{}
}

// PipelineCleared reports if the "pipeline" edge to the Pipeline entity was cleared.
func (m *PipelineStageMutation) PipelineCleared() bool {
	return m.clearedpipeline
}

// PipelineIDs returns the "pipeline" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PipelineID instead. It exists only for internal usage by the builders.
func (m *PipelineStageMutation) PipelineIDs() (ids []string) {
	if id := m.pipeline; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPipeline resets all changes to the "pipeline" edge.
func (m *PipelineStageMutation) ResetPipeline() {
	m.pipeline = nil
	m.clearedpipeline = false
}

// Where appends a list predicates to the PipelineStageMutation builder.
func (m *PipelineStageMutation) Where(ps ...predicate.PipelineStage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineStage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineStage).
func (m *PipelineStageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.pipeline != nil {
		fields = append(fields, pipelinestage.FieldPipelineID)
	}
	if m.name != nil {
		fields = append(fields, pipelinestage.FieldName)
	}
	if m.stage_type != nil {
		fields = append(fields, pipelinestage.FieldStageType)
	}
	if m.order_index != nil {
		fields = append(fields, pipelinestage.FieldOrderIndex)
	}
	if m.conducted_by != nil {
		fields = append(fields, pipelinestage.FieldConductedBy)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinestage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinestage.FieldPipelineID:
		return m.PipelineID()
	case pipelinestage.FieldName:
		return m.Name()
	case pipelinestage.FieldStageType:
		return m.StageType()
	case pipelinestage.FieldOrderIndex:
		return m.OrderIndex()
	case pipelinestage.FieldConductedBy:
		return m.ConductedBy()
	case pipelinestage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinestage.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case pipelinestage.FieldName:
		return m.OldName(ctx)
	case pipelinestage.FieldStageType:
		return m.OldStageType(ctx)
	case pipelinestage.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case pipelinestage.FieldConductedBy:
		return m.OldConductedBy(ctx)
	case pipelinestage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineStage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinestage.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case pipelinestage.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipelinestage.FieldStageType:
		v, ok := value.(models.StageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageType(v)
		return nil
	case pipelinestage.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case pipelinestage.FieldConductedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConductedBy(v)
		return nil
	case pipelinestage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStageMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, pipelinestage.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinestage.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinestage.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinestage.FieldConductedBy) {
		fields = append(fields, pipelinestage.FieldConductedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStageMutation) ClearField(name string) error {
	switch name {
	case pipelinestage.FieldConductedBy:
		m.ClearConductedBy()
		return nil
	}
	return fmt.Errorf("unknown PipelineStage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStageMutation) ResetField(name string) error {
	switch name {
	case pipelinestage.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case pipelinestage.FieldName:
		m.ResetName()
		return nil
	case pipelinestage.FieldStageType:
		m.ResetStageType()
		return nil
	case pipelinestage.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case pipelinestage.FieldConductedBy:
		m.ResetConductedBy()
		return nil
	case pipelinestage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineStage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pipeline != nil {
		edges = append(edges, pipelinestage.EdgePipeline)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinestage.EdgePipeline:
		if id := m.pipeline; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpipeline {
		edges = append(edges, pipelinestage.EdgePipeline)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStageMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinestage.EdgePipeline:
		return m.clearedpipeline
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStageMutation) ClearEdge(name string) error {
	switch name {
	case pipelinestage.EdgePipeline:
		m.ClearPipeline()
		return nil
	}
	return fmt.Errorf("unknown PipelineStage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStageMutation) ResetEdge(name string) error {
	switch name {
	case pipelinestage.EdgePipeline:
		m.ResetPipeline()
		return nil
	}
	return fmt.Errorf("unknown PipelineStage edge %s", name)
}

// RoleCapabilityMutation represents an operation that mutates the RoleCapability nodes in the graph.
type RoleCapabilityMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	role          *models.Role
	capability    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RoleCapability, error)
	predicates    []predicate.RoleCapability
}

var _ ent.Mutation = (*RoleCapabilityMutation)(nil)

// rolecapabilityOption allows management of the mutation configuration using functional options.
type rolecapabilityOption func(*RoleCapabilityMutation)

// newRoleCapabilityMutation creates new mutation for the RoleCapability entity.
func newRoleCapabilityMutation(c config, op Op, opts ...rolecapabilityOption) *RoleCapabilityMutation {
	m := &RoleCapabilityMutation{
		config:        c,
		op:            op,
		typ:           TypeRoleCapability,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoleCapabilityID sets the ID field of the mutation.
func withRoleCapabilityID(id string) rolecapabilityOption {
	return func(m *RoleCapabilityMutation) {
		var (
			err   error
			once  sync.Once
			value *RoleCapability
		)
		m.oldValue = func(ctx context.Context) (*RoleCapability, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoleCapability.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoleCapability sets the old RoleCapability of the mutation.
func withRoleCapability(node *RoleCapability) rolecapabilityOption {
	return func(m *RoleCapabilityMutation) {
		m.oldValue = func(context.Context) (*RoleCapability, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoleCapabilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoleCapabilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoleCapability entities.
func (m *RoleCapabilityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoleCapabilityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoleCapabilityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoleCapability.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RoleCapabilityMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RoleCapabilityMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RoleCapability entity.
// If the RoleCapability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleCapabilityMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RoleCapabilityMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRole sets the "role" field.
func (m *RoleCapabilityMutation) SetRole(value models.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *RoleCapabilityMutation) Role() (r models.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the RoleCapability entity.
// If the RoleCapability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleCapabilityMutation) OldRole(ctx context.Context) (v models.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *RoleCapabilityMutation) ResetRole() {
	m.role = nil
}

// SetCapability sets the "capability" field.
func (m *RoleCapabilityMutation) SetCapability(s string) {
	m.capability = &s
}

// Capability returns the value of the "capability" field in the mutation.
func (m *RoleCapabilityMutation) Capability() (r string, exists bool) {
	v := m.capability
	if v == nil {
		return
	}
	return *v, true
}

// OldCapability returns the old "capability" field's value of the RoleCapability entity.
// If the RoleCapability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleCapabilityMutation) OldCapability(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapability: %w", err)
	}
	return oldValue.Capability, nil
}

// ResetCapability resets all changes to the "capability" field.
func (m *RoleCapabilityMutation) ResetCapability() {
	m.capability = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoleCapabilityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoleCapabilityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoleCapability entity.
// If the RoleCapability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleCapabilityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoleCapabilityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RoleCapabilityMutation builder.
func (m *RoleCapabilityMutation) Where(ps ...predicate.RoleCapability) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoleCapabilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoleCapabilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoleCapability, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoleCapabilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoleCapabilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoleCapability).
func (m *RoleCapabilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoleCapabilityMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_id != nil {
		fields = append(fields, rolecapability.FieldTenantID)
	}
	if m.role != nil {
		fields = append(fields, rolecapability.FieldRole)
	}
	if m.capability != nil {
		fields = append(fields, rolecapability.FieldCapability)
	}
	if m.created_at != nil {
		fields = append(fields, rolecapability.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoleCapabilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rolecapability.FieldTenantID:
		return m.TenantID()
	case rolecapability.FieldRole:
		return m.Role()
	case rolecapability.FieldCapability:
		return m.Capability()
	case rolecapability.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoleCapabilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rolecapability.FieldTenantID:
		return m.OldTenantID(ctx)
	case rolecapability.FieldRole:
		return m.OldRole(ctx)
	case rolecapability.FieldCapability:
		return m.OldCapability(ctx)
	case rolecapability.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoleCapability field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleCapabilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rolecapability.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case rolecapability.FieldRole:
		v, ok := value.(models.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case rolecapability.FieldCapability:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapability(v)
		return nil
	case rolecapability.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoleCapability field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoleCapabilityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoleCapabilityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleCapabilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RoleCapability numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoleCapabilityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoleCapabilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoleCapabilityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RoleCapability nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoleCapabilityMutation) ResetField(name string) error {
	switch name {
	case rolecapability.FieldTenantID:
		m.ResetTenantID()
		return nil
	case rolecapability.FieldRole:
		m.ResetRole()
		return nil
	case rolecapability.FieldCapability:
		m.ResetCapability()
		return nil
	case rolecapability.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoleCapability field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoleCapabilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoleCapabilityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoleCapabilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoleCapabilityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoleCapabilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoleCapabilityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoleCapabilityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoleCapability unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoleCapabilityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoleCapability edge %s", name)
}

// StageEvaluationMutation represents an operation that mutates the StageEvaluation nodes in the graph.
type StageEvaluationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	stage_id      *string
	template_id   *string
	auto_create   *bool
	is_active     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StageEvaluation, error)
	predicates    []predicate.StageEvaluation
}

var _ ent.Mutation = (*StageEvaluationMutation)(nil)

// stageevaluationOption allows management of the mutation configuration using functional options.
type stageevaluationOption func(*StageEvaluationMutation)

// newStageEvaluationMutation creates new mutation for the StageEvaluation entity.
func newStageEvaluationMutation(c config, op Op, opts ...stageevaluationOption) *StageEvaluationMutation {
	m := &StageEvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeStageEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageEvaluationID sets the ID field of the mutation.
func withStageEvaluationID(id string) stageevaluationOption {
	return func(m *StageEvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *StageEvaluation
		)
		m.oldValue = func(ctx context.Context) (*StageEvaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageEvaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageEvaluation sets the old StageEvaluation of the mutation.
func withStageEvaluation(node *StageEvaluation) stageevaluationOption {
	return func(m *StageEvaluationMutation) {
		m.oldValue = func(context.Context) (*StageEvaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageEvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageEvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageEvaluation entities.
func (m *StageEvaluationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageEvaluationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageEvaluationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageEvaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *StageEvaluationMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *StageEvaluationMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the StageEvaluation entity.
// If the StageEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEvaluationMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *StageEvaluationMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStageID sets the "stage_id" field.
func (m *StageEvaluationMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *StageEvaluationMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the StageEvaluation entity.
// If the StageEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEvaluationMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *StageEvaluationMutation) ResetStageID() {
	m.stage_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *StageEvaluationMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *StageEvaluationMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the StageEvaluation entity.
// If the StageEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEvaluationMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *StageEvaluationMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetAutoCreate sets the "auto_create" field.
func (m *StageEvaluationMutation) SetAutoCreate(b bool) {
	m.auto_create = &b
}

// AutoCreate returns the value of the "auto_create" field in the mutation.
func (m *StageEvaluationMutation) AutoCreate() (r bool, exists bool) {
	v := m.auto_create
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoCreate returns the old "auto_create" field's value of the StageEvaluation entity.
// If the StageEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEvaluationMutation) OldAutoCreate(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoCreate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoCreate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoCreate: %w", err)
	}
	return oldValue.AutoCreate, nil
}

// ResetAutoCreate resets all changes to the "auto_create" field.
func (m *StageEvaluationMutation) ResetAutoCreate() {
	m.auto_create = nil
}

// SetIsActive sets the "is_active" field.
func (m *StageEvaluationMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *StageEvaluationMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the StageEvaluation entity.
// If the StageEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEvaluationMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *StageEvaluationMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StageEvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageEvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageEvaluation entity.
// If the StageEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageEvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StageEvaluationMutation builder.
func (m *StageEvaluationMutation) Where(ps ...predicate.StageEvaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageEvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageEvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageEvaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageEvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageEvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageEvaluation).
func (m *StageEvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageEvaluationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, stageevaluation.FieldTenantID)
	}
	if m.stage_id != nil {
		fields = append(fields, stageevaluation.FieldStageID)
	}
	if m.template_id != nil {
		fields = append(fields, stageevaluation.FieldTemplateID)
	}
	if m.auto_create != nil {
		fields = append(fields, stageevaluation.FieldAutoCreate)
	}
	if m.is_active != nil {
		fields = append(fields, stageevaluation.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, stageevaluation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageEvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageevaluation.FieldTenantID:
		return m.TenantID()
	case stageevaluation.FieldStageID:
		return m.StageID()
	case stageevaluation.FieldTemplateID:
		return m.TemplateID()
	case stageevaluation.FieldAutoCreate:
		return m.AutoCreate()
	case stageevaluation.FieldIsActive:
		return m.IsActive()
	case stageevaluation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageEvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageevaluation.FieldTenantID:
		return m.OldTenantID(ctx)
	case stageevaluation.FieldStageID:
		return m.OldStageID(ctx)
	case stageevaluation.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case stageevaluation.FieldAutoCreate:
		return m.OldAutoCreate(ctx)
	case stageevaluation.FieldIsActive:
		return m.OldIsActive(ctx)
	case stageevaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageEvaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageEvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageevaluation.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case stageevaluation.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case stageevaluation.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case stageevaluation.FieldAutoCreate:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoCreate(v)
		return nil
	case stageevaluation.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case stageevaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageEvaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageEvaluationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageEvaluationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageEvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StageEvaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageEvaluationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageEvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageEvaluationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StageEvaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageEvaluationMutation) ResetField(name string) error {
	switch name {
	case stageevaluation.FieldTenantID:
		m.ResetTenantID()
		return nil
	case stageevaluation.FieldStageID:
		m.ResetStageID()
		return nil
	case stageevaluation.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case stageevaluation.FieldAutoCreate:
		m.ResetAutoCreate()
		return nil
	case stageevaluation.FieldIsActive:
		m.ResetIsActive()
		return nil
	case stageevaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageEvaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageEvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageEvaluationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageEvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageEvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageEvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageEvaluationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageEvaluationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StageEvaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageEvaluationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StageEvaluation edge %s", name)
}

// StageFeedbackMutation represents an operation that mutates the StageFeedback nodes in the graph.
type StageFeedbackMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	application_id *string
	stage_id       *string
	user_id        *string
	comments       *string
	rating         *int
	addrating      *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StageFeedback, error)
	predicates     []predicate.StageFeedback
}

var _ ent.Mutation = (*StageFeedbackMutation)(nil)

// stagefeedbackOption allows management of the mutation configuration using functional options.
type stagefeedbackOption func(*StageFeedbackMutation)

// newStageFeedbackMutation creates new mutation for the StageFeedback entity.
func newStageFeedbackMutation(c config, op Op, opts ...stagefeedbackOption) *StageFeedbackMutation {
	m := &StageFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeStageFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageFeedbackID sets the ID field of the mutation.
func withStageFeedbackID(id string) stagefeedbackOption {
	return func(m *StageFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *StageFeedback
		)
		m.oldValue = func(ctx context.Context) (*StageFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageFeedback sets the old StageFeedback of the mutation.
func withStageFeedback(node *StageFeedback) stagefeedbackOption {
	return func(m *StageFeedbackMutation) {
		m.oldValue = func(context.Context) (*StageFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageFeedback entities.
func (m *StageFeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageFeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageFeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *StageFeedbackMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *StageFeedbackMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the StageFeedback entity.
// If the StageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageFeedbackMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *StageFeedbackMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetApplicationID sets the "application_id" field.
func (m *StageFeedbackMutation) SetApplicationID(s string) {
	m.application_id = &s
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *StageFeedbackMutation) ApplicationID() (r string, exists bool) {
	v := m.application_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the StageFeedback entity.
// If the StageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageFeedbackMutation) OldApplicationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *StageFeedbackMutation) ResetApplicationID() {
	m.application_id = nil
}

// SetStageID sets the "stage_id" field.
func (m *StageFeedbackMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *StageFeedbackMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the StageFeedback entity.
// If the StageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageFeedbackMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *StageFeedbackMutation) ResetStageID() {
	m.stage_id = nil
}

// SetUserID sets the "user_id" field.
func (m *StageFeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StageFeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StageFeedback entity.
// If the StageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageFeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StageFeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetComments sets the "comments" field.
func (m *StageFeedbackMutation) SetComments(s string) {
	m.comments = &s
}

// Comments returns the value of the "comments" field in the mutation.
func (m *StageFeedbackMutation) Comments() (r string, exists bool) {
	v := m.comments
	if v == nil {
		return
	}
	return *v, true
}

// OldComments returns the old "comments" field's value of the StageFeedback entity.
// If the StageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageFeedbackMutation) OldComments(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComments: %w", err)
	}
	return oldValue.Comments, nil
}

// ResetComments resets all changes to the "comments" field.
func (m *StageFeedbackMutation) ResetComments() {
	m.comments = nil
}

// SetRating sets the "rating" field.
func (m *StageFeedbackMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *StageFeedbackMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the StageFeedback entity.
// If the StageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageFeedbackMutation) OldRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *StageFeedbackMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *StageFeedbackMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ClearRating clears the value of the "rating" field.
func (m *StageFeedbackMutation) ClearRating() {
	m.rating = nil
	m.addrating = nil
	m.clearedFields[stagefeedback.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *StageFeedbackMutation) RatingCleared() bool {
	_, ok := m.clearedFields[stagefeedback.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *StageFeedbackMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
	delete(m.clearedFields, stagefeedback.FieldRating)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageFeedback entity.
// If the StageFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StageFeedbackMutation builder.
func (m *StageFeedbackMutation) Where(ps ...predicate.StageFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageFeedback).
func (m *StageFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, stagefeedback.FieldTenantID)
	}
	if m.application_id != nil {
		fields = append(fields, stagefeedback.FieldApplicationID)
	}
	if m.stage_id != nil {
		fields = append(fields, stagefeedback.FieldStageID)
	}
	if m.user_id != nil {
		fields = append(fields, stagefeedback.FieldUserID)
	}
	if m.comments != nil {
		fields = append(fields, stagefeedback.FieldComments)
	}
	if m.rating != nil {
		fields = append(fields, stagefeedback.FieldRating)
	}
	if m.created_at != nil {
		fields = append(fields, stagefeedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagefeedback.FieldTenantID:
		return m.TenantID()
	case stagefeedback.FieldApplicationID:
		return m.ApplicationID()
	case stagefeedback.FieldStageID:
		return m.StageID()
	case stagefeedback.FieldUserID:
		return m.UserID()
	case stagefeedback.FieldComments:
		return m.Comments()
	case stagefeedback.FieldRating:
		return m.Rating()
	case stagefeedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagefeedback.FieldTenantID:
		return m.OldTenantID(ctx)
	case stagefeedback.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case stagefeedback.FieldStageID:
		return m.OldStageID(ctx)
	case stagefeedback.FieldUserID:
		return m.OldUserID(ctx)
	case stagefeedback.FieldComments:
		return m.OldComments(ctx)
	case stagefeedback.FieldRating:
		return m.OldRating(ctx)
	case stagefeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagefeedback.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case stagefeedback.FieldApplicationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case stagefeedback.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case stagefeedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case stagefeedback.FieldComments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComments(v)
		return nil
	case stagefeedback.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case stagefeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageFeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, stagefeedback.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stagefeedback.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stagefeedback.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown StageFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagefeedback.FieldRating) {
		fields = append(fields, stagefeedback.FieldRating)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageFeedbackMutation) ClearField(name string) error {
	switch name {
	case stagefeedback.FieldRating:
		m.ClearRating()
		return nil
	}
	return fmt.Errorf("unknown StageFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageFeedbackMutation) ResetField(name string) error {
	switch name {
	case stagefeedback.FieldTenantID:
		m.ResetTenantID()
		return nil
	case stagefeedback.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case stagefeedback.FieldStageID:
		m.ResetStageID()
		return nil
	case stagefeedback.FieldUserID:
		m.ResetUserID()
		return nil
	case stagefeedback.FieldComments:
		m.ResetComments()
		return nil
	case stagefeedback.FieldRating:
		m.ResetRating()
		return nil
	case stagefeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StageFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StageFeedback edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	owner_user_id *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Tenant, error)
	predicates    []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *TenantMutation) SetOwnerUserID(s string) {
	m.owner_user_id = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *TenantMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldOwnerUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (m *TenantMutation) ClearOwnerUserID() {
	m.owner_user_id = nil
	m.clearedFields[tenant.FieldOwnerUserID] = struct{}{}
}

// OwnerUserIDCleared returns if the "owner_user_id" field was cleared in this mutation.
func (m *TenantMutation) OwnerUserIDCleared() bool {
	_, ok := m.clearedFields[tenant.FieldOwnerUserID]
	return ok
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *TenantMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
	delete(m.clearedFields, tenant.FieldOwnerUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.owner_user_id != nil {
		fields = append(fields, tenant.FieldOwnerUserID)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldOwnerUserID:
		return m.OwnerUserID()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenant.FieldOwnerUserID) {
		fields = append(fields, tenant.FieldOwnerUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	switch name {
	case tenant.FieldOwnerUserID:
		m.ClearOwnerUserID()
		return nil
	}
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// TenantApplicationStatusMutation represents an operation that mutates the TenantApplicationStatus nodes in the graph.
type TenantApplicationStatusMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	status_code   *string
	display_name  *string
	outcome_type  *models.OutcomeType
	is_terminal   *bool
	is_active     *bool
	sort_order    *int
	addsort_order *int
	action_code   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TenantApplicationStatus, error)
	predicates    []predicate.TenantApplicationStatus
}

var _ ent.Mutation = (*TenantApplicationStatusMutation)(nil)

// tenantapplicationstatusOption allows management of the mutation configuration using functional options.
type tenantapplicationstatusOption func(*TenantApplicationStatusMutation)

// newTenantApplicationStatusMutation creates new mutation for the TenantApplicationStatus entity.
func newTenantApplicationStatusMutation(c config, op Op, opts ...tenantapplicationstatusOption) *TenantApplicationStatusMutation {
	m := &TenantApplicationStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantApplicationStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantApplicationStatusID sets the ID field of the mutation.
func withTenantApplicationStatusID(id string) tenantapplicationstatusOption {
	return func(m *TenantApplicationStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantApplicationStatus
		)
		m.oldValue = func(ctx context.Context) (*TenantApplicationStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantApplicationStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantApplicationStatus sets the old TenantApplicationStatus of the mutation.
func withTenantApplicationStatus(node *TenantApplicationStatus) tenantapplicationstatusOption {
	return func(m *TenantApplicationStatusMutation) {
		m.oldValue = func(context.Context) (*TenantApplicationStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantApplicationStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantApplicationStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantApplicationStatus entities.
func (m *TenantApplicationStatusMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantApplicationStatusMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantApplicationStatusMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantApplicationStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TenantApplicationStatusMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TenantApplicationStatusMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TenantApplicationStatusMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatusCode sets the "status_code" field.
func (m *TenantApplicationStatusMutation) SetStatusCode(s string) {
	m.status_code = &s
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *TenantApplicationStatusMutation) StatusCode() (r string, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldStatusCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *TenantApplicationStatusMutation) ResetStatusCode() {
	m.status_code = nil
}

// SetDisplayName sets the "display_name" field.
func (m *TenantApplicationStatusMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *TenantApplicationStatusMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *TenantApplicationStatusMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetOutcomeType sets the "outcome_type" field.
func (m *TenantApplicationStatusMutation) SetOutcomeType(mt models.OutcomeType) {
	m.outcome_type = &mt
}

// OutcomeType returns the value of the "outcome_type" field in the mutation.
func (m *TenantApplicationStatusMutation) OutcomeType() (r models.OutcomeType, exists bool) {
	v := m.outcome_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeType returns the old "outcome_type" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldOutcomeType(ctx context.Context) (v models.OutcomeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeType: %w", err)
	}
	return oldValue.OutcomeType, nil
}

// ResetOutcomeType resets all changes to the "outcome_type" field.
func (m *TenantApplicationStatusMutation) ResetOutcomeType() {
	m.outcome_type = nil
}

// SetIsTerminal sets the "is_terminal" field.
func (m *TenantApplicationStatusMutation) SetIsTerminal(b bool) {
	m.is_terminal = &b
}

// IsTerminal returns the value of the "is_terminal" field in the mutation.
func (m *TenantApplicationStatusMutation) IsTerminal() (r bool, exists bool) {
	v := m.is_terminal
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTerminal returns the old "is_terminal" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldIsTerminal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTerminal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTerminal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTerminal: %w", err)
	}
	return oldValue.IsTerminal, nil
}

// ResetIsTerminal resets all changes to the "is_terminal" field.
func (m *TenantApplicationStatusMutation) ResetIsTerminal() {
	m.is_terminal = nil
}

// SetIsActive sets the "is_active" field.
func (m *TenantApplicationStatusMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TenantApplicationStatusMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TenantApplicationStatusMutation) ResetIsActive() {
	m.is_active = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *TenantApplicationStatusMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *TenantApplicationStatusMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *TenantApplicationStatusMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *TenantApplicationStatusMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *TenantApplicationStatusMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetActionCode sets the "action_code" field.
func (m *TenantApplicationStatusMutation) SetActionCode(s string) {
	m.action_code = &s
}

// ActionCode returns the value of the "action_code" field in the mutation.
func (m *TenantApplicationStatusMutation) ActionCode() (r string, exists bool) {
	v := m.action_code
	if v == nil {
		return
	}
	return *v, true
}

// OldActionCode returns the old "action_code" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldActionCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionCode: %w", err)
	}
	return oldValue.ActionCode, nil
}

// ClearActionCode clears the value of the "action_code" field.
func (m *TenantApplicationStatusMutation) ClearActionCode() {
	m.action_code = nil
	m.clearedFields[tenantapplicationstatus.FieldActionCode] = struct{}{}
}

// ActionCodeCleared returns if the "action_code" field was cleared in this mutation.
func (m *TenantApplicationStatusMutation) ActionCodeCleared() bool {
	_, ok := m.clearedFields[tenantapplicationstatus.FieldActionCode]
	return ok
}

// ResetActionCode resets all changes to the "action_code" field.
func (m *TenantApplicationStatusMutation) ResetActionCode() {
	m.action_code = nil
	delete(m.clearedFields, tenantapplicationstatus.FieldActionCode)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantApplicationStatusMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantApplicationStatusMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantApplicationStatusMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantApplicationStatusMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantApplicationStatusMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantApplicationStatus entity.
// If the TenantApplicationStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantApplicationStatusMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantApplicationStatusMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TenantApplicationStatusMutation builder.
func (m *TenantApplicationStatusMutation) Where(ps ...predicate.TenantApplicationStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantApplicationStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantApplicationStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantApplicationStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantApplicationStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantApplicationStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantApplicationStatus).
func (m *TenantApplicationStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantApplicationStatusMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, tenantapplicationstatus.FieldTenantID)
	}
	if m.status_code != nil {
		fields = append(fields, tenantapplicationstatus.FieldStatusCode)
	}
	if m.display_name != nil {
		fields = append(fields, tenantapplicationstatus.FieldDisplayName)
	}
	if m.outcome_type != nil {
		fields = append(fields, tenantapplicationstatus.FieldOutcomeType)
	}
	if m.is_terminal != nil {
		fields = append(fields, tenantapplicationstatus.FieldIsTerminal)
	}
	if m.is_active != nil {
		fields = append(fields, tenantapplicationstatus.FieldIsActive)
	}
	if m.sort_order != nil {
		fields = append(fields, tenantapplicationstatus.FieldSortOrder)
	}
	if m.action_code != nil {
		fields = append(fields, tenantapplicationstatus.FieldActionCode)
	}
	if m.created_at != nil {
		fields = append(fields, tenantapplicationstatus.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantapplicationstatus.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantApplicationStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantapplicationstatus.FieldTenantID:
		return m.TenantID()
	case tenantapplicationstatus.FieldStatusCode:
		return m.StatusCode()
	case tenantapplicationstatus.FieldDisplayName:
		return m.DisplayName()
	case tenantapplicationstatus.FieldOutcomeType:
		return m.OutcomeType()
	case tenantapplicationstatus.FieldIsTerminal:
		return m.IsTerminal()
	case tenantapplicationstatus.FieldIsActive:
		return m.IsActive()
	case tenantapplicationstatus.FieldSortOrder:
		return m.SortOrder()
	case tenantapplicationstatus.FieldActionCode:
		return m.ActionCode()
	case tenantapplicationstatus.FieldCreatedAt:
		return m.CreatedAt()
	case tenantapplicationstatus.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantApplicationStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantapplicationstatus.FieldTenantID:
		return m.OldTenantID(ctx)
	case tenantapplicationstatus.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case tenantapplicationstatus.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case tenantapplicationstatus.FieldOutcomeType:
		return m.OldOutcomeType(ctx)
	case tenantapplicationstatus.FieldIsTerminal:
		return m.OldIsTerminal(ctx)
	case tenantapplicationstatus.FieldIsActive:
		return m.OldIsActive(ctx)
	case tenantapplicationstatus.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case tenantapplicationstatus.FieldActionCode:
		return m.OldActionCode(ctx)
	case tenantapplicationstatus.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenantapplicationstatus.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantApplicationStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantApplicationStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantapplicationstatus.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case tenantapplicationstatus.FieldStatusCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case tenantapplicationstatus.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case tenantapplicationstatus.FieldOutcomeType:
		v, ok := value.(models.OutcomeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeType(v)
		return nil
	case tenantapplicationstatus.FieldIsTerminal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTerminal(v)
		return nil
	case tenantapplicationstatus.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case tenantapplicationstatus.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case tenantapplicationstatus.FieldActionCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionCode(v)
		return nil
	case tenantapplicationstatus.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenantapplicationstatus.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantApplicationStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantApplicationStatusMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, tenantapplicationstatus.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantApplicationStatusMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenantapplicationstatus.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantApplicationStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenantapplicationstatus.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown TenantApplicationStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantApplicationStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenantapplicationstatus.FieldActionCode) {
		fields = append(fields, tenantapplicationstatus.FieldActionCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantApplicationStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantApplicationStatusMutation) ClearField(name string) error {
	switch name {
	case tenantapplicationstatus.FieldActionCode:
		m.ClearActionCode()
		return nil
	}
	return fmt.Errorf("unknown TenantApplicationStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantApplicationStatusMutation) ResetField(name string) error {
	switch name {
	case tenantapplicationstatus.FieldTenantID:
		m.ResetTenantID()
		return nil
	case tenantapplicationstatus.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case tenantapplicationstatus.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case tenantapplicationstatus.FieldOutcomeType:
		m.ResetOutcomeType()
		return nil
	case tenantapplicationstatus.FieldIsTerminal:
		m.ResetIsTerminal()
		return nil
	case tenantapplicationstatus.FieldIsActive:
		m.ResetIsActive()
		return nil
	case tenantapplicationstatus.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case tenantapplicationstatus.FieldActionCode:
		m.ResetActionCode()
		return nil
	case tenantapplicationstatus.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenantapplicationstatus.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantApplicationStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantApplicationStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantApplicationStatusMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantApplicationStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantApplicationStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantApplicationStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantApplicationStatusMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantApplicationStatusMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TenantApplicationStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantApplicationStatusMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TenantApplicationStatus edge %s", name)
}

// TenantStageActionMutation represents an operation that mutates the TenantStageAction nodes in the graph.
type TenantStageActionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	stage_id            *string
	action_code         *string
	display_label       *string
	outcome_type        *models.OutcomeType
	moves_to_next_stage *bool
	is_terminal         *bool
	required_capability *string
	requires_feedback   *bool
	requires_notes      *bool
	signal_conditions   **models.SignalConditions
	is_active           *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*TenantStageAction, error)
	predicates          []predicate.TenantStageAction
}

var _ ent.Mutation = (*TenantStageActionMutation)(nil)

// tenantstageactionOption allows management of the mutation configuration using functional options.
type tenantstageactionOption func(*TenantStageActionMutation)

// newTenantStageActionMutation creates new mutation for the TenantStageAction entity.
func newTenantStageActionMutation(c config, op Op, opts ...tenantstageactionOption) *TenantStageActionMutation {
	m := &TenantStageActionMutation{
		config:        c,
		op:            op,
		typ:           TypeTenantStageAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantStageActionID sets the ID field of the mutation.
func withTenantStageActionID(id string) tenantstageactionOption {
	return func(m *TenantStageActionMutation) {
		var (
			err   error
			once  sync.Once
			value *TenantStageAction
		)
		m.oldValue = func(ctx context.Context) (*TenantStageAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TenantStageAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenantStageAction sets the old TenantStageAction of the mutation.
func withTenantStageAction(node *TenantStageAction) tenantstageactionOption {
	return func(m *TenantStageActionMutation) {
		m.oldValue = func(context.Context) (*TenantStageAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantStageActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantStageActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TenantStageAction entities.
func (m *TenantStageActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantStageActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantStageActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TenantStageAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TenantStageActionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TenantStageActionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TenantStageActionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStageID sets the "stage_id" field.
func (m *TenantStageActionMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *TenantStageActionMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *TenantStageActionMutation) ResetStageID() {
	m.stage_id = nil
}

// SetActionCode sets the "action_code" field.
func (m *TenantStageActionMutation) SetActionCode(s string) {
	m.action_code = &s
}

// ActionCode returns the value of the "action_code" field in the mutation.
func (m *TenantStageActionMutation) ActionCode() (r string, exists bool) {
	v := m.action_code
	if v == nil {
		return
	}
	return *v, true
}

// OldActionCode returns the old "action_code" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldActionCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionCode: %w", err)
	}
	return oldValue.ActionCode, nil
}

// ResetActionCode resets all changes to the "action_code" field.
func (m *TenantStageActionMutation) ResetActionCode() {
	m.action_code = nil
}

// SetDisplayLabel sets the "display_label" field.
func (m *TenantStageActionMutation) SetDisplayLabel(s string) {
	m.display_label = &s
}

// DisplayLabel returns the value of the "display_label" field in the mutation.
func (m *TenantStageActionMutation) DisplayLabel() (r string, exists bool) {
	v := m.display_label
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayLabel returns the old "display_label" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldDisplayLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayLabel: %w", err)
	}
	return oldValue.DisplayLabel, nil
}

// ClearDisplayLabel clears the value of the "display_label" field.
func (m *TenantStageActionMutation) ClearDisplayLabel() {
	m.display_label = nil
	m.clearedFields[tenantstageaction.FieldDisplayLabel] = struct{}{}
}

// DisplayLabelCleared returns if the "display_label" field was cleared in this mutation.
func (m *TenantStageActionMutation) DisplayLabelCleared() bool {
	_, ok := m.clearedFields[tenantstageaction.FieldDisplayLabel]
	return ok
}

// ResetDisplayLabel resets all changes to the "display_label" field.
func (m *TenantStageActionMutation) ResetDisplayLabel() {
	m.display_label = nil
	delete(m.clearedFields, tenantstageaction.FieldDisplayLabel)
}

// SetOutcomeType sets the "outcome_type" field.
func (m *TenantStageActionMutation) SetOutcomeType(mt models.OutcomeType) {
	m.outcome_type = &mt
}

// OutcomeType returns the value of the "outcome_type" field in the mutation.
func (m *TenantStageActionMutation) OutcomeType() (r models.OutcomeType, exists bool) {
	v := m.outcome_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeType returns the old "outcome_type" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldOutcomeType(ctx context.Context) (v *models.OutcomeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeType: %w", err)
	}
	return oldValue.OutcomeType, nil
}

// ClearOutcomeType clears the value of the "outcome_type" field.
func (m *TenantStageActionMutation) ClearOutcomeType() {
	m.outcome_type = nil
	m.clearedFields[tenantstageaction.FieldOutcomeType] = struct{}{}
}

// OutcomeTypeCleared returns if the "outcome_type" field was cleared in this mutation.
func (m *TenantStageActionMutation) OutcomeTypeCleared() bool {
	_, ok := m.clearedFields[tenantstageaction.FieldOutcomeType]
	return ok
}

// ResetOutcomeType resets all changes to the "outcome_type" field.
func (m *TenantStageActionMutation) ResetOutcomeType() {
	m.outcome_type = nil
	delete(m.clearedFields, tenantstageaction.FieldOutcomeType)
}

// SetMovesToNextStage sets the "moves_to_next_stage" field.
func (m *TenantStageActionMutation) SetMovesToNextStage(b bool) {
	m.moves_to_next_stage = &b
}

// MovesToNextStage returns the value of the "moves_to_next_stage" field in the mutation.
func (m *TenantStageActionMutation) MovesToNextStage() (r bool, exists bool) {
	v := m.moves_to_next_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldMovesToNextStage returns the old "moves_to_next_stage" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldMovesToNextStage(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMovesToNextStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMovesToNextStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMovesToNextStage: %w", err)
	}
	return oldValue.MovesToNextStage, nil
}

// ResetMovesToNextStage resets all changes to the "moves_to_next_stage" field.
func (m *TenantStageActionMutation) ResetMovesToNextStage() {
	m.moves_to_next_stage = nil
}

// SetIsTerminal sets the "is_terminal" field.
func (m *TenantStageActionMutation) SetIsTerminal(b bool) {
	m.is_terminal = &b
}

// IsTerminal returns the value of the "is_terminal" field in the mutation.
func (m *TenantStageActionMutation) IsTerminal() (r bool, exists bool) {
	v := m.is_terminal
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTerminal returns the old "is_terminal" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldIsTerminal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTerminal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTerminal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTerminal: %w", err)
	}
	return oldValue.IsTerminal, nil
}

// ResetIsTerminal resets all changes to the "is_terminal" field.
func (m *TenantStageActionMutation) ResetIsTerminal() {
	m.is_terminal = nil
}

// SetRequiredCapability sets the "required_capability" field.
func (m *TenantStageActionMutation) SetRequiredCapability(s string) {
	m.required_capability = &s
}

// RequiredCapability returns the value of the "required_capability" field in the mutation.
func (m *TenantStageActionMutation) RequiredCapability() (r string, exists bool) {
	v := m.required_capability
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCapability returns the old "required_capability" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldRequiredCapability(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCapability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCapability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCapability: %w", err)
	}
	return oldValue.RequiredCapability, nil
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (m *TenantStageActionMutation) ClearRequiredCapability() {
	m.required_capability = nil
	m.clearedFields[tenantstageaction.FieldRequiredCapability] = struct{}{}
}

// RequiredCapabilityCleared returns if the "required_capability" field was cleared in this mutation.
func (m *TenantStageActionMutation) RequiredCapabilityCleared() bool {
	_, ok := m.clearedFields[tenantstageaction.FieldRequiredCapability]
	return ok
}

// ResetRequiredCapability resets all changes to the "required_capability" field.
func (m *TenantStageActionMutation) ResetRequiredCapability() {
	m.required_capability = nil
	delete(m.clearedFields, tenantstageaction.FieldRequiredCapability)
}

// SetRequiresFeedback sets the "requires_feedback" field.
func (m *TenantStageActionMutation) SetRequiresFeedback(b bool) {
	m.requires_feedback = &b
}

// RequiresFeedback returns the value of the "requires_feedback" field in the mutation.
func (m *TenantStageActionMutation) RequiresFeedback() (r bool, exists bool) {
	v := m.requires_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresFeedback returns the old "requires_feedback" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldRequiresFeedback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresFeedback: %w", err)
	}
	return oldValue.RequiresFeedback, nil
}

// ResetRequiresFeedback resets all changes to the "requires_feedback" field.
func (m *TenantStageActionMutation) ResetRequiresFeedback() {
	m.requires_feedback = nil
}

// SetRequiresNotes sets the "requires_notes" field.
func (m *TenantStageActionMutation) SetRequiresNotes(b bool) {
	m.requires_notes = &b
}

// RequiresNotes returns the value of the "requires_notes" field in the mutation.
func (m *TenantStageActionMutation) RequiresNotes() (r bool, exists bool) {
	v := m.requires_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresNotes returns the old "requires_notes" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldRequiresNotes(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresNotes: %w", err)
	}
	return oldValue.RequiresNotes, nil
}

// ResetRequiresNotes resets all changes to the "requires_notes" field.
func (m *TenantStageActionMutation) ResetRequiresNotes() {
	m.requires_notes = nil
}

// SetSignalConditions sets the "signal_conditions" field.
func (m *TenantStageActionMutation) SetSignalConditions(mc *models.SignalConditions) {
	m.signal_conditions = &mc
}

// SignalConditions returns the value of the "signal_conditions" field in the mutation.
func (m *TenantStageActionMutation) SignalConditions() (r *models.SignalConditions, exists bool) {
	v := m.signal_conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalConditions returns the old "signal_conditions" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldSignalConditions(ctx context.Context) (v *models.SignalConditions, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalConditions: %w", err)
	}
	return oldValue.SignalConditions, nil
}

// ClearSignalConditions clears the value of the "signal_conditions" field.
func (m *TenantStageActionMutation) ClearSignalConditions() {
	m.signal_conditions = nil
	m.clearedFields[tenantstageaction.FieldSignalConditions] = struct{}{}
}

// SignalConditionsCleared returns if the "signal_conditions" field was cleared in this mutation.
func (m *TenantStageActionMutation) SignalConditionsCleared() bool {
	_, ok := m.clearedFields[tenantstageaction.FieldSignalConditions]
	return ok
}

// ResetSignalConditions resets all changes to the "signal_conditions" field.
func (m *TenantStageActionMutation) ResetSignalConditions() {
	m.signal_conditions = nil
	delete(m.clearedFields, tenantstageaction.FieldSignalConditions)
}

// SetIsActive sets the "is_active" field.
func (m *TenantStageActionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TenantStageActionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TenantStageActionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantStageActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantStageActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantStageActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantStageActionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantStageActionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TenantStageAction entity.
// If the TenantStageAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantStageActionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantStageActionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TenantStageActionMutation builder.
func (m *TenantStageActionMutation) Where(ps ...predicate.TenantStageAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantStageActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantStageActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TenantStageAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantStageActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantStageActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TenantStageAction).
func (m *TenantStageActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantStageActionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, tenantstageaction.FieldTenantID)
	}
	if m.stage_id != nil {
		fields = append(fields, tenantstageaction.FieldStageID)
	}
	if m.action_code != nil {
		fields = append(fields, tenantstageaction.FieldActionCode)
	}
	if m.display_label != nil {
		fields = append(fields, tenantstageaction.FieldDisplayLabel)
	}
	if m.outcome_type != nil {
		fields = append(fields, tenantstageaction.FieldOutcomeType)
	}
	if m.moves_to_next_stage != nil {
		fields = append(fields, tenantstageaction.FieldMovesToNextStage)
	}
	if m.is_terminal != nil {
		fields = append(fields, tenantstageaction.FieldIsTerminal)
	}
	if m.required_capability != nil {
		fields = append(fields, tenantstageaction.FieldRequiredCapability)
	}
	if m.requires_feedback != nil {
		fields = append(fields, tenantstageaction.FieldRequiresFeedback)
	}
	if m.requires_notes != nil {
		fields = append(fields, tenantstageaction.FieldRequiresNotes)
	}
	if m.signal_conditions != nil {
		fields = append(fields, tenantstageaction.FieldSignalConditions)
	}
	if m.is_active != nil {
		fields = append(fields, tenantstageaction.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, tenantstageaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenantstageaction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantStageActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenantstageaction.FieldTenantID:
		return m.TenantID()
	case tenantstageaction.FieldStageID:
		return m.StageID()
	case tenantstageaction.FieldActionCode:
		return m.ActionCode()
	case tenantstageaction.FieldDisplayLabel:
		return m.DisplayLabel()
	case tenantstageaction.FieldOutcomeType:
		return m.OutcomeType()
	case tenantstageaction.FieldMovesToNextStage:
		return m.MovesToNextStage()
	case tenantstageaction.FieldIsTerminal:
		return m.IsTerminal()
	case tenantstageaction.FieldRequiredCapability:
		return m.RequiredCapability()
	case tenantstageaction.FieldRequiresFeedback:
		return m.RequiresFeedback()
	case tenantstageaction.FieldRequiresNotes:
		return m.RequiresNotes()
	case tenantstageaction.FieldSignalConditions:
		return m.SignalConditions()
	case tenantstageaction.FieldIsActive:
		return m.IsActive()
	case tenantstageaction.FieldCreatedAt:
		return m.CreatedAt()
	case tenantstageaction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantStageActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenantstageaction.FieldTenantID:
		return m.OldTenantID(ctx)
	case tenantstageaction.FieldStageID:
		return m.OldStageID(ctx)
	case tenantstageaction.FieldActionCode:
		return m.OldActionCode(ctx)
	case tenantstageaction.FieldDisplayLabel:
		return m.OldDisplayLabel(ctx)
	case tenantstageaction.FieldOutcomeType:
		return m.OldOutcomeType(ctx)
	case tenantstageaction.FieldMovesToNextStage:
		return m.OldMovesToNextStage(ctx)
	case tenantstageaction.FieldIsTerminal:
		return m.OldIsTerminal(ctx)
	case tenantstageaction.FieldRequiredCapability:
		return m.OldRequiredCapability(ctx)
	case tenantstageaction.FieldRequiresFeedback:
		return m.OldRequiresFeedback(ctx)
	case tenantstageaction.FieldRequiresNotes:
		return m.OldRequiresNotes(ctx)
	case tenantstageaction.FieldSignalConditions:
		return m.OldSignalConditions(ctx)
	case tenantstageaction.FieldIsActive:
		return m.OldIsActive(ctx)
	case tenantstageaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenantstageaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TenantStageAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantStageActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenantstageaction.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case tenantstageaction.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case tenantstageaction.FieldActionCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionCode(v)
		return nil
	case tenantstageaction.FieldDisplayLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayLabel(v)
		return nil
	case tenantstageaction.FieldOutcomeType:
		v, ok := value.(models.OutcomeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeType(v)
		return nil
	case tenantstageaction.FieldMovesToNextStage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMovesToNextStage(v)
		return nil
	case tenantstageaction.FieldIsTerminal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTerminal(v)
		return nil
	case tenantstageaction.FieldRequiredCapability:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCapability(v)
		return nil
	case tenantstageaction.FieldRequiresFeedback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresFeedback(v)
		return nil
	case tenantstageaction.FieldRequiresNotes:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresNotes(v)
		return nil
	case tenantstageaction.FieldSignalConditions:
		v, ok := value.(*models.SignalConditions)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalConditions(v)
		return nil
	case tenantstageaction.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case tenantstageaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenantstageaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TenantStageAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantStageActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantStageActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantStageActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TenantStageAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantStageActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenantstageaction.FieldDisplayLabel) {
		fields = append(fields, tenantstageaction.FieldDisplayLabel)
	}
	if m.FieldCleared(tenantstageaction.FieldOutcomeType) {
		fields = append(fields, tenantstageaction.FieldOutcomeType)
	}
	if m.FieldCleared(tenantstageaction.FieldRequiredCapability) {
		fields = append(fields, tenantstageaction.FieldRequiredCapability)
	}
	if m.FieldCleared(tenantstageaction.FieldSignalConditions) {
		fields = append(fields, tenantstageaction.FieldSignalConditions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantStageActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantStageActionMutation) ClearField(name string) error {
	switch name {
	case tenantstageaction.FieldDisplayLabel:
		m.ClearDisplayLabel()
		return nil
	case tenantstageaction.FieldOutcomeType:
		m.ClearOutcomeType()
		return nil
	case tenantstageaction.FieldRequiredCapability:
		m.ClearRequiredCapability()
		return nil
	case tenantstageaction.FieldSignalConditions:
		m.ClearSignalConditions()
		return nil
	}
	return fmt.Errorf("unknown TenantStageAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantStageActionMutation) ResetField(name string) error {
	switch name {
	case tenantstageaction.FieldTenantID:
		m.ResetTenantID()
		return nil
	case tenantstageaction.FieldStageID:
		m.ResetStageID()
		return nil
	case tenantstageaction.FieldActionCode:
		m.ResetActionCode()
		return nil
	case tenantstageaction.FieldDisplayLabel:
		m.ResetDisplayLabel()
		return nil
	case tenantstageaction.FieldOutcomeType:
		m.ResetOutcomeType()
		return nil
	case tenantstageaction.FieldMovesToNextStage:
		m.ResetMovesToNextStage()
		return nil
	case tenantstageaction.FieldIsTerminal:
		m.ResetIsTerminal()
		return nil
	case tenantstageaction.FieldRequiredCapability:
		m.ResetRequiredCapability()
		return nil
	case tenantstageaction.FieldRequiresFeedback:
		m.ResetRequiresFeedback()
		return nil
	case tenantstageaction.FieldRequiresNotes:
		m.ResetRequiresNotes()
		return nil
	case tenantstageaction.FieldSignalConditions:
		m.ResetSignalConditions()
		return nil
	case tenantstageaction.FieldIsActive:
		m.ResetIsActive()
		return nil
	case tenantstageaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenantstageaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TenantStageAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantStageActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantStageActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantStageActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantStageActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantStageActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantStageActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantStageActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TenantStageAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantStageActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TenantStageAction edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	email         *string
	full_name     *string
	role          *models.Role
	is_active     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *UserMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *UserMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *UserMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetFullName sets the "full_name" field.
func (m *UserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *UserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *UserMutation) ResetFullName() {
	m.full_name = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(value models.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r models.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v models.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, user.FieldTenantID)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.full_name != nil {
		fields = append(fields, user.FieldFullName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldTenantID:
		return m.TenantID()
	case user.FieldEmail:
		return m.Email()
	case user.FieldFullName:
		return m.FullName()
	case user.FieldRole:
		return m.Role()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldTenantID:
		return m.OldTenantID(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldFullName:
		return m.OldFullName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(models.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldTenantID:
		m.ResetTenantID()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldFullName:
		m.ResetFullName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
