// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ameyzing09/rtr-api-sub000/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"github.com/ameyzing09/rtr-api-sub000/ent/rolecapability"
	"github.com/ameyzing09/rtr-api-sub000/ent/stageevaluation"
	"github.com/ameyzing09/rtr-api-sub000/ent/stagefeedback"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenant"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantstageaction"
	"github.com/ameyzing09/rtr-api-sub000/ent/user"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActionExecutionLog is the client for interacting with the ActionExecutionLog builders.
	ActionExecutionLog *ActionExecutionLogClient
	// ApplicationPipelineState is the client for interacting with the ApplicationPipelineState builders.
	ApplicationPipelineState *ApplicationPipelineStateClient
	// ApplicationSignal is the client for interacting with the ApplicationSignal builders.
	ApplicationSignal *ApplicationSignalClient
	// ApplicationStageHistory is the client for interacting with the ApplicationStageHistory builders.
	ApplicationStageHistory *ApplicationStageHistoryClient
	// EvaluationInstance is the client for interacting with the EvaluationInstance builders.
	EvaluationInstance *EvaluationInstanceClient
	// EvaluationParticipant is the client for interacting with the EvaluationParticipant builders.
	EvaluationParticipant *EvaluationParticipantClient
	// EvaluationResponse is the client for interacting with the EvaluationResponse builders.
	EvaluationResponse *EvaluationResponseClient
	// EvaluationTemplate is the client for interacting with the EvaluationTemplate builders.
	EvaluationTemplate *EvaluationTemplateClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// Pipeline is the client for interacting with the Pipeline builders.
	Pipeline *PipelineClient
	// PipelineStage is the client for interacting with the PipelineStage builders.
	PipelineStage *PipelineStageClient
	// RoleCapability is the client for interacting with the RoleCapability builders.
	RoleCapability *RoleCapabilityClient
	// StageEvaluation is the client for interacting with the StageEvaluation builders.
	StageEvaluation *StageEvaluationClient
	// StageFeedback is the client for interacting with the StageFeedback builders.
	StageFeedback *StageFeedbackClient
	// Tenant is the client for interacting with the Tenant builders.
	Tenant *TenantClient
	// TenantApplicationStatus is the client for interacting with the TenantApplicationStatus builders.
	TenantApplicationStatus *TenantApplicationStatusClient
	// TenantStageAction is the client for interacting with the TenantStageAction builders.
	TenantStageAction *TenantStageActionClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActionExecutionLog = NewActionExecutionLogClient(c.config)
	c.ApplicationPipelineState = NewApplicationPipelineStateClient(c.config)
	c.ApplicationSignal = NewApplicationSignalClient(c.config)
	c.ApplicationStageHistory = NewApplicationStageHistoryClient(c.config)
	c.EvaluationInstance = NewEvaluationInstanceClient(c.config)
	c.EvaluationParticipant = NewEvaluationParticipantClient(c.config)
	c.EvaluationResponse = NewEvaluationResponseClient(c.config)
	c.EvaluationTemplate = NewEvaluationTemplateClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Job = NewJobClient(c.config)
	c.Pipeline = NewPipelineClient(c.config)
	c.PipelineStage = NewPipelineStageClient(c.config)
	c.RoleCapability = NewRoleCapabilityClient(c.config)
	c.StageEvaluation = NewStageEvaluationClient(c.config)
	c.StageFeedback = NewStageFeedbackClient(c.config)
	c.Tenant = NewTenantClient(c.config)
	c.TenantApplicationStatus = NewTenantApplicationStatusClient(c.config)
	c.TenantStageAction = NewTenantStageActionClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                      ctx,
		config:                   cfg,
		ActionExecutionLog:       NewActionExecutionLogClient(cfg),
		ApplicationPipelineState: NewApplicationPipelineStateClient(cfg),
		ApplicationSignal:        NewApplicationSignalClient(cfg),
		ApplicationStageHistory:  NewApplicationStageHistoryClient(cfg),
		EvaluationInstance:       NewEvaluationInstanceClient(cfg),
		EvaluationParticipant:    NewEvaluationParticipantClient(cfg),
		EvaluationResponse:       NewEvaluationResponseClient(cfg),
		EvaluationTemplate:       NewEvaluationTemplateClient(cfg),
		Event:                    NewEventClient(cfg),
		Job:                      NewJobClient(cfg),
		Pipeline:                 NewPipelineClient(cfg),
		PipelineStage:            NewPipelineStageClient(cfg),
		RoleCapability:           NewRoleCapabilityClient(cfg),
		StageEvaluation:          NewStageEvaluationClient(cfg),
		StageFeedback:            NewStageFeedbackClient(cfg),
		Tenant:                   NewTenantClient(cfg),
		TenantApplicationStatus:  NewTenantApplicationStatusClient(cfg),
		TenantStageAction:        NewTenantStageActionClient(cfg),
		User:                     NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                      ctx,
		config:                   cfg,
		ActionExecutionLog:       NewActionExecutionLogClient(cfg),
		ApplicationPipelineState: NewApplicationPipelineStateClient(cfg),
		ApplicationSignal:        NewApplicationSignalClient(cfg),
		ApplicationStageHistory:  NewApplicationStageHistoryClient(cfg),
		EvaluationInstance:       NewEvaluationInstanceClient(cfg),
		EvaluationParticipant:    NewEvaluationParticipantClient(cfg),
		EvaluationResponse:       NewEvaluationResponseClient(cfg),
		EvaluationTemplate:       NewEvaluationTemplateClient(cfg),
		Event:                    NewEventClient(cfg),
		Job:                      NewJobClient(cfg),
		Pipeline:                 NewPipelineClient(cfg),
		PipelineStage:            NewPipelineStageClient(cfg),
		RoleCapability:           NewRoleCapabilityClient(cfg),
		StageEvaluation:          NewStageEvaluationClient(cfg),
		StageFeedback:            NewStageFeedbackClient(cfg),
		Tenant:                   NewTenantClient(cfg),
		TenantApplicationStatus:  NewTenantApplicationStatusClient(cfg),
		TenantStageAction:        NewTenantStageActionClient(cfg),
		User:                     NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActionExecutionLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ActionExecutionLog, c.ApplicationPipelineState, c.ApplicationSignal,
		c.ApplicationStageHistory, c.EvaluationInstance, c.EvaluationParticipant,
		c.EvaluationResponse, c.EvaluationTemplate, c.Event, c.Job, c.Pipeline,
		c.PipelineStage, c.RoleCapability, c.StageEvaluation, c.StageFeedback,
		c.Tenant, c.TenantApplicationStatus, c.TenantStageAction, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActionExecutionLog, c.ApplicationPipelineState, c.ApplicationSignal,
		c.ApplicationStageHistory, c.EvaluationInstance, c.EvaluationParticipant,
		c.EvaluationResponse, c.EvaluationTemplate, c.Event, c.Job, c.Pipeline,
		c.PipelineStage, c.RoleCapability, c.StageEvaluation, c.StageFeedback,
		c.Tenant, c.TenantApplicationStatus, c.TenantStageAction, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActionExecutionLogMutation:
		return c.ActionExecutionLog.mutate(ctx, m)
	case *ApplicationPipelineStateMutation:
		return c.ApplicationPipelineState.mutate(ctx, m)
	case *ApplicationSignalMutation:
		return c.ApplicationSignal.mutate(ctx, m)
	case *ApplicationStageHistoryMutation:
		return c.ApplicationStageHistory.mutate(ctx, m)
	case *EvaluationInstanceMutation:
		return c.EvaluationInstance.mutate(ctx, m)
	case *EvaluationParticipantMutation:
		return c.EvaluationParticipant.mutate(ctx, m)
	case *EvaluationResponseMutation:
		return c.EvaluationResponse.mutate(ctx, m)
	case *EvaluationTemplateMutation:
		return c.EvaluationTemplate.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *PipelineMutation:
		return c.Pipeline.mutate(ctx, m)
	case *PipelineStageMutation:
		return c.PipelineStage.mutate(ctx, m)
	case *RoleCapabilityMutation:
		return c.RoleCapability.mutate(ctx, m)
	case *StageEvaluationMutation:
		return c.StageEvaluation.mutate(ctx, m)
	case *StageFeedbackMutation:
		return c.StageFeedback.mutate(ctx, m)
	case *TenantMutation:
		return c.Tenant.mutate(ctx, m)
	case *TenantApplicationStatusMutation:
		return c.TenantApplicationStatus.mutate(ctx, m)
	case *TenantStageActionMutation:
		return c.TenantStageAction.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActionExecutionLogClient is a client for the ActionExecutionLog schema.
type ActionExecutionLogClient struct {
	config
}

// NewActionExecutionLogClient returns a client for the ActionExecutionLog from the given config.
func NewActionExecutionLogClient(c config) *ActionExecutionLogClient {
	return &ActionExecutionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionexecutionlog.Hooks(f(g(h())))`.
func (c *ActionExecutionLogClient) Use(hooks ...Hook) {
	c.hooks.ActionExecutionLog = append(c.hooks.ActionExecutionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionexecutionlog.Intercept(f(g(h())))`.
func (c *ActionExecutionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionExecutionLog = append(c.inters.ActionExecutionLog, interceptors...)
}

// Create returns a builder for creating a ActionExecutionLog entity.
func (c *ActionExecutionLogClient) Create() *ActionExecutionLogCreate {
	mutation := newActionExecutionLogMutation(c.config, OpCreate)
	return &ActionExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionExecutionLog entities.
func (c *ActionExecutionLogClient) CreateBulk(builders ...*ActionExecutionLogCreate) *ActionExecutionLogCreateBulk {
	return &ActionExecutionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionExecutionLogClient) MapCreateBulk(slice any, setFunc func(*ActionExecutionLogCreate, int)) *ActionExecutionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionExecutionLogCreateBulk{err: fmt.Errorf("calling to ActionExecutionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionExecutionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionExecutionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionExecutionLog.
func (c *ActionExecutionLogClient) Update() *ActionExecutionLogUpdate {
	mutation := newActionExecutionLogMutation(c.config, OpUpdate)
	return &ActionExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionExecutionLogClient) UpdateOne(_m *ActionExecutionLog) *ActionExecutionLogUpdateOne {
	mutation := newActionExecutionLogMutation(c.config, OpUpdateOne, withActionExecutionLog(_m))
	return &ActionExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionExecutionLogClient) UpdateOneID(id string) *ActionExecutionLogUpdateOne {
	mutation := newActionExecutionLogMutation(c.config, OpUpdateOne, withActionExecutionLogID(id))
	return &ActionExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionExecutionLog.
func (c *ActionExecutionLogClient) Delete() *ActionExecutionLogDelete {
	mutation := newActionExecutionLogMutation(c.config, OpDelete)
	return &ActionExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionExecutionLogClient) DeleteOne(_m *ActionExecutionLog) *ActionExecutionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionExecutionLogClient) DeleteOneID(id string) *ActionExecutionLogDeleteOne {
	builder := c.Delete().Where(actionexecutionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionExecutionLogDeleteOne{builder}
}

// Query returns a query builder for ActionExecutionLog.
func (c *ActionExecutionLogClient) Query() *ActionExecutionLogQuery {
	return &ActionExecutionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionExecutionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionExecutionLog entity by its id.
func (c *ActionExecutionLogClient) Get(ctx context.Context, id string) (*ActionExecutionLog, error) {
	return c.Query().Where(actionexecutionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionExecutionLogClient) GetX(ctx context.Context, id string) *ActionExecutionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActionExecutionLogClient) Hooks() []Hook {
	return c.hooks.ActionExecutionLog
}

// Interceptors returns the client interceptors.
func (c *ActionExecutionLogClient) Interceptors() []Interceptor {
	return c.inters.ActionExecutionLog
}

func (c *ActionExecutionLogClient) mutate(ctx context.Context, m *ActionExecutionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionExecutionLog mutation op: %q", m.Op())
	}
}

// ApplicationPipelineStateClient is a client for the ApplicationPipelineState schema.
type ApplicationPipelineStateClient struct {
	config
}

// NewApplicationPipelineStateClient returns a client for the ApplicationPipelineState from the given config.
func NewApplicationPipelineStateClient(c config) *ApplicationPipelineStateClient {
	return &ApplicationPipelineStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `applicationpipelinestate.Hooks(f(g(h())))`.
func (c *ApplicationPipelineStateClient) Use(hooks ...Hook) {
	c.hooks.ApplicationPipelineState = append(c.hooks.ApplicationPipelineState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `applicationpipelinestate.Intercept(f(g(h())))`.
func (c *ApplicationPipelineStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApplicationPipelineState = append(c.inters.ApplicationPipelineState, interceptors...)
}

// Create returns a builder for creating a ApplicationPipelineState entity.
func (c *ApplicationPipelineStateClient) Create() *ApplicationPipelineStateCreate {
	mutation := newApplicationPipelineStateMutation(c.config, OpCreate)
	return &ApplicationPipelineStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApplicationPipelineState entities.
func (c *ApplicationPipelineStateClient) CreateBulk(builders ...*ApplicationPipelineStateCreate) *ApplicationPipelineStateCreateBulk {
	return &ApplicationPipelineStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationPipelineStateClient) MapCreateBulk(slice any, setFunc func(*ApplicationPipelineStateCreate, int)) *ApplicationPipelineStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationPipelineStateCreateBulk{err: fmt.Errorf("calling to ApplicationPipelineStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationPipelineStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationPipelineStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApplicationPipelineState.
func (c *ApplicationPipelineStateClient) Update() *ApplicationPipelineStateUpdate {
	mutation := newApplicationPipelineStateMutation(c.config, OpUpdate)
	return &ApplicationPipelineStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationPipelineStateClient) UpdateOne(_m *ApplicationPipelineState) *ApplicationPipelineStateUpdateOne {
	mutation := newApplicationPipelineStateMutation(c.config, OpUpdateOne, withApplicationPipelineState(_m))
	return &ApplicationPipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationPipelineStateClient) UpdateOneID(id string) *ApplicationPipelineStateUpdateOne {
	mutation := newApplicationPipelineStateMutation(c.config, OpUpdateOne, withApplicationPipelineStateID(id))
	return &ApplicationPipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApplicationPipelineState.
func (c *ApplicationPipelineStateClient) Delete() *ApplicationPipelineStateDelete {
	mutation := newApplicationPipelineStateMutation(c.config, OpDelete)
	return &ApplicationPipelineStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationPipelineStateClient) DeleteOne(_m *ApplicationPipelineState) *ApplicationPipelineStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationPipelineStateClient) DeleteOneID(id string) *ApplicationPipelineStateDeleteOne {
	builder := c.Delete().Where(applicationpipelinestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationPipelineStateDeleteOne{builder}
}

// Query returns a query builder for ApplicationPipelineState.
func (c *ApplicationPipelineStateClient) Query() *ApplicationPipelineStateQuery {
	return &ApplicationPipelineStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplicationPipelineState},
		inters: c.Interceptors(),
	}
}

// Get returns a ApplicationPipelineState entity by its id.
func (c *ApplicationPipelineStateClient) Get(ctx context.Context, id string) (*ApplicationPipelineState, error) {
	return c.Query().Where(applicationpipelinestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationPipelineStateClient) GetX(ctx context.Context, id string) *ApplicationPipelineState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApplicationPipelineStateClient) Hooks() []Hook {
	return c.hooks.ApplicationPipelineState
}

// Interceptors returns the client interceptors.
func (c *ApplicationPipelineStateClient) Interceptors() []Interceptor {
	return c.inters.ApplicationPipelineState
}

func (c *ApplicationPipelineStateClient) mutate(ctx context.Context, m *ApplicationPipelineStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationPipelineStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationPipelineStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationPipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationPipelineStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApplicationPipelineState mutation op: %q", m.Op())
	}
}

// ApplicationSignalClient is a client for the ApplicationSignal schema.
type ApplicationSignalClient struct {
	config
}

// NewApplicationSignalClient returns a client for the ApplicationSignal from the given config.
func NewApplicationSignalClient(c config) *ApplicationSignalClient {
	return &ApplicationSignalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `applicationsignal.Hooks(f(g(h())))`.
func (c *ApplicationSignalClient) Use(hooks ...Hook) {
	c.hooks.ApplicationSignal = append(c.hooks.ApplicationSignal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `applicationsignal.Intercept(f(g(h())))`.
func (c *ApplicationSignalClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApplicationSignal = append(c.inters.ApplicationSignal, interceptors...)
}

// Create returns a builder for creating a ApplicationSignal entity.
func (c *ApplicationSignalClient) Create() *ApplicationSignalCreate {
	mutation := newApplicationSignalMutation(c.config, OpCreate)
	return &ApplicationSignalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApplicationSignal entities.
func (c *ApplicationSignalClient) CreateBulk(builders ...*ApplicationSignalCreate) *ApplicationSignalCreateBulk {
	return &ApplicationSignalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationSignalClient) MapCreateBulk(slice any, setFunc func(*ApplicationSignalCreate, int)) *ApplicationSignalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationSignalCreateBulk{err: fmt.Errorf("calling to ApplicationSignalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationSignalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationSignalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApplicationSignal.
func (c *ApplicationSignalClient) Update() *ApplicationSignalUpdate {
	mutation := newApplicationSignalMutation(c.config, OpUpdate)
	return &ApplicationSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationSignalClient) UpdateOne(_m *ApplicationSignal) *ApplicationSignalUpdateOne {
	mutation := newApplicationSignalMutation(c.config, OpUpdateOne, withApplicationSignal(_m))
	return &ApplicationSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationSignalClient) UpdateOneID(id string) *ApplicationSignalUpdateOne {
	mutation := newApplicationSignalMutation(c.config, OpUpdateOne, withApplicationSignalID(id))
	return &ApplicationSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApplicationSignal.
func (c *ApplicationSignalClient) Delete() *ApplicationSignalDelete {
	mutation := newApplicationSignalMutation(c.config, OpDelete)
	return &ApplicationSignalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationSignalClient) DeleteOne(_m *ApplicationSignal) *ApplicationSignalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationSignalClient) DeleteOneID(id string) *ApplicationSignalDeleteOne {
	builder := c.Delete().Where(applicationsignal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationSignalDeleteOne{builder}
}

// Query returns a query builder for ApplicationSignal.
func (c *ApplicationSignalClient) Query() *ApplicationSignalQuery {
	return &ApplicationSignalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplicationSignal},
		inters: c.Interceptors(),
	}
}

// Get returns a ApplicationSignal entity by its id.
func (c *ApplicationSignalClient) Get(ctx context.Context, id string) (*ApplicationSignal, error) {
	return c.Query().Where(applicationsignal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationSignalClient) GetX(ctx context.Context, id string) *ApplicationSignal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApplicationSignalClient) Hooks() []Hook {
	return c.hooks.ApplicationSignal
}

// Interceptors returns the client interceptors.
func (c *ApplicationSignalClient) Interceptors() []Interceptor {
	return c.inters.ApplicationSignal
}

func (c *ApplicationSignalClient) mutate(ctx context.Context, m *ApplicationSignalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationSignalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationSignalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationSignalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationSignalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApplicationSignal mutation op: %q", m.Op())
	}
}

// ApplicationStageHistoryClient is a client for the ApplicationStageHistory schema.
type ApplicationStageHistoryClient struct {
	config
}

// NewApplicationStageHistoryClient returns a client for the ApplicationStageHistory from the given config.
func NewApplicationStageHistoryClient(c config) *ApplicationStageHistoryClient {
	return &ApplicationStageHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `applicationstagehistory.Hooks(f(g(h())))`.
func (c *ApplicationStageHistoryClient) Use(hooks ...Hook) {
	c.hooks.ApplicationStageHistory = append(c.hooks.ApplicationStageHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `applicationstagehistory.Intercept(f(g(h())))`.
func (c *ApplicationStageHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApplicationStageHistory = append(c.inters.ApplicationStageHistory, interceptors...)
}

// Create returns a builder for creating a ApplicationStageHistory entity.
func (c *ApplicationStageHistoryClient) Create() *ApplicationStageHistoryCreate {
	mutation := newApplicationStageHistoryMutation(c.config, OpCreate)
	return &ApplicationStageHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApplicationStageHistory entities.
func (c *ApplicationStageHistoryClient) CreateBulk(builders ...*ApplicationStageHistoryCreate) *ApplicationStageHistoryCreateBulk {
	return &ApplicationStageHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationStageHistoryClient) MapCreateBulk(slice any, setFunc func(*ApplicationStageHistoryCreate, int)) *ApplicationStageHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationStageHistoryCreateBulk{err: fmt.Errorf("calling to ApplicationStageHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationStageHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationStageHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApplicationStageHistory.
func (c *ApplicationStageHistoryClient) Update() *ApplicationStageHistoryUpdate {
	mutation := newApplicationStageHistoryMutation(c.config, OpUpdate)
	return &ApplicationStageHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationStageHistoryClient) UpdateOne(_m *ApplicationStageHistory) *ApplicationStageHistoryUpdateOne {
	mutation := newApplicationStageHistoryMutation(c.config, OpUpdateOne, withApplicationStageHistory(_m))
	return &ApplicationStageHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationStageHistoryClient) UpdateOneID(id string) *ApplicationStageHistoryUpdateOne {
	mutation := newApplicationStageHistoryMutation(c.config, OpUpdateOne, withApplicationStageHistoryID(id))
	return &ApplicationStageHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApplicationStageHistory.
func (c *ApplicationStageHistoryClient) Delete() *ApplicationStageHistoryDelete {
	mutation := newApplicationStageHistoryMutation(c.config, OpDelete)
	return &ApplicationStageHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationStageHistoryClient) DeleteOne(_m *ApplicationStageHistory) *ApplicationStageHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationStageHistoryClient) DeleteOneID(id string) *ApplicationStageHistoryDeleteOne {
	builder := c.Delete().Where(applicationstagehistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationStageHistoryDeleteOne{builder}
}

// Query returns a query builder for ApplicationStageHistory.
func (c *ApplicationStageHistoryClient) Query() *ApplicationStageHistoryQuery {
	return &ApplicationStageHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplicationStageHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a ApplicationStageHistory entity by its id.
func (c *ApplicationStageHistoryClient) Get(ctx context.Context, id string) (*ApplicationStageHistory, error) {
	return c.Query().Where(applicationstagehistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationStageHistoryClient) GetX(ctx context.Context, id string) *ApplicationStageHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApplicationStageHistoryClient) Hooks() []Hook {
	return c.hooks.ApplicationStageHistory
}

// Interceptors returns the client interceptors.
func (c *ApplicationStageHistoryClient) Interceptors() []Interceptor {
	return c.inters.ApplicationStageHistory
}

func (c *ApplicationStageHistoryClient) mutate(ctx context.Context, m *ApplicationStageHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationStageHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationStageHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationStageHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationStageHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApplicationStageHistory mutation op: %q", m.Op())
	}
}

// EvaluationInstanceClient is a client for the EvaluationInstance schema.
type EvaluationInstanceClient struct {
	config
}

// NewEvaluationInstanceClient returns a client for the EvaluationInstance from the given config.
func NewEvaluationInstanceClient(c config) *EvaluationInstanceClient {
	return &EvaluationInstanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationinstance.Hooks(f(g(h())))`.
func (c *EvaluationInstanceClient) Use(hooks ...Hook) {
	c.hooks.EvaluationInstance = append(c.hooks.EvaluationInstance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationinstance.Intercept(f(g(h())))`.
func (c *EvaluationInstanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationInstance = append(c.inters.EvaluationInstance, interceptors...)
}

// Create returns a builder for creating a EvaluationInstance entity.
func (c *EvaluationInstanceClient) Create() *EvaluationInstanceCreate {
	mutation := newEvaluationInstanceMutation(c.config, OpCreate)
	return &EvaluationInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationInstance entities.
func (c *EvaluationInstanceClient) CreateBulk(builders ...*EvaluationInstanceCreate) *EvaluationInstanceCreateBulk {
	return &EvaluationInstanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationInstanceClient) MapCreateBulk(slice any, setFunc func(*EvaluationInstanceCreate, int)) *EvaluationInstanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationInstanceCreateBulk{err: fmt.Errorf("calling to EvaluationInstanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationInstanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationInstanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationInstance.
func (c *EvaluationInstanceClient) Update() *EvaluationInstanceUpdate {
	mutation := newEvaluationInstanceMutation(c.config, OpUpdate)
	return &EvaluationInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationInstanceClient) UpdateOne(_m *EvaluationInstance) *EvaluationInstanceUpdateOne {
	mutation := newEvaluationInstanceMutation(c.config, OpUpdateOne, withEvaluationInstance(_m))
	return &EvaluationInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationInstanceClient) UpdateOneID(id string) *EvaluationInstanceUpdateOne {
	mutation := newEvaluationInstanceMutation(c.config, OpUpdateOne, withEvaluationInstanceID(id))
	return &EvaluationInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationInstance.
func (c *EvaluationInstanceClient) Delete() *EvaluationInstanceDelete {
	mutation := newEvaluationInstanceMutation(c.config, OpDelete)
	return &EvaluationInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationInstanceClient) DeleteOne(_m *EvaluationInstance) *EvaluationInstanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationInstanceClient) DeleteOneID(id string) *EvaluationInstanceDeleteOne {
	builder := c.Delete().Where(evaluationinstance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationInstanceDeleteOne{builder}
}

// Query returns a query builder for EvaluationInstance.
func (c *EvaluationInstanceClient) Query() *EvaluationInstanceQuery {
	return &EvaluationInstanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationInstance},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationInstance entity by its id.
func (c *EvaluationInstanceClient) Get(ctx context.Context, id string) (*EvaluationInstance, error) {
	return c.Query().Where(evaluationinstance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationInstanceClient) GetX(ctx context.Context, id string) *EvaluationInstance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipants queries the participants edge of a EvaluationInstance.
func (c *EvaluationInstanceClient) QueryParticipants(_m *EvaluationInstance) *EvaluationParticipantQuery {
	query := (&EvaluationParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationinstance.Table, evaluationinstance.FieldID, id),
			sqlgraph.To(evaluationparticipant.Table, evaluationparticipant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evaluationinstance.ParticipantsTable, evaluationinstance.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponses queries the responses edge of a EvaluationInstance.
func (c *EvaluationInstanceClient) QueryResponses(_m *EvaluationInstance) *EvaluationResponseQuery {
	query := (&EvaluationResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationinstance.Table, evaluationinstance.FieldID, id),
			sqlgraph.To(evaluationresponse.Table, evaluationresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evaluationinstance.ResponsesTable, evaluationinstance.ResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationInstanceClient) Hooks() []Hook {
	return c.hooks.EvaluationInstance
}

// Interceptors returns the client interceptors.
func (c *EvaluationInstanceClient) Interceptors() []Interceptor {
	return c.inters.EvaluationInstance
}

func (c *EvaluationInstanceClient) mutate(ctx context.Context, m *EvaluationInstanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationInstanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationInstanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationInstanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationInstanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationInstance mutation op: %q", m.Op())
	}
}

// EvaluationParticipantClient is a client for the EvaluationParticipant schema.
type EvaluationParticipantClient struct {
	config
}

// NewEvaluationParticipantClient returns a client for the EvaluationParticipant from the given config.
func NewEvaluationParticipantClient(c config) *EvaluationParticipantClient {
	return &EvaluationParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationparticipant.Hooks(f(g(h())))`.
func (c *EvaluationParticipantClient) Use(hooks ...Hook) {
	c.hooks.EvaluationParticipant = append(c.hooks.EvaluationParticipant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationparticipant.Intercept(f(g(h())))`.
func (c *EvaluationParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationParticipant = append(c.inters.EvaluationParticipant, interceptors...)
}

// Create returns a builder for creating a EvaluationParticipant entity.
func (c *EvaluationParticipantClient) Create() *EvaluationParticipantCreate {
	mutation := newEvaluationParticipantMutation(c.config, OpCreate)
	return &EvaluationParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationParticipant entities.
func (c *EvaluationParticipantClient) CreateBulk(builders ...*EvaluationParticipantCreate) *EvaluationParticipantCreateBulk {
	return &EvaluationParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationParticipantClient) MapCreateBulk(slice any, setFunc func(*EvaluationParticipantCreate, int)) *EvaluationParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationParticipantCreateBulk{err: fmt.Errorf("calling to EvaluationParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationParticipant.
func (c *EvaluationParticipantClient) Update() *EvaluationParticipantUpdate {
	mutation := newEvaluationParticipantMutation(c.config, OpUpdate)
	return &EvaluationParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationParticipantClient) UpdateOne(_m *EvaluationParticipant) *EvaluationParticipantUpdateOne {
	mutation := newEvaluationParticipantMutation(c.config, OpUpdateOne, withEvaluationParticipant(_m))
	return &EvaluationParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationParticipantClient) UpdateOneID(id string) *EvaluationParticipantUpdateOne {
	mutation := newEvaluationParticipantMutation(c.config, OpUpdateOne, withEvaluationParticipantID(id))
	return &EvaluationParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationParticipant.
func (c *EvaluationParticipantClient) Delete() *EvaluationParticipantDelete {
	mutation := newEvaluationParticipantMutation(c.config, OpDelete)
	return &EvaluationParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationParticipantClient) DeleteOne(_m *EvaluationParticipant) *EvaluationParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationParticipantClient) DeleteOneID(id string) *EvaluationParticipantDeleteOne {
	builder := c.Delete().Where(evaluationparticipant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationParticipantDeleteOne{builder}
}

// Query returns a query builder for EvaluationParticipant.
func (c *EvaluationParticipantClient) Query() *EvaluationParticipantQuery {
	return &EvaluationParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationParticipant entity by its id.
func (c *EvaluationParticipantClient) Get(ctx context.Context, id string) (*EvaluationParticipant, error) {
	return c.Query().Where(evaluationparticipant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationParticipantClient) GetX(ctx context.Context, id string) *EvaluationParticipant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvaluation queries the evaluation edge of a EvaluationParticipant.
func (c *EvaluationParticipantClient) QueryEvaluation(_m *EvaluationParticipant) *EvaluationInstanceQuery {
	query := (&EvaluationInstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationparticipant.Table, evaluationparticipant.FieldID, id),
			sqlgraph.To(evaluationinstance.Table, evaluationinstance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluationparticipant.EvaluationTable, evaluationparticipant.EvaluationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationParticipantClient) Hooks() []Hook {
	return c.hooks.EvaluationParticipant
}

// Interceptors returns the client interceptors.
func (c *EvaluationParticipantClient) Interceptors() []Interceptor {
	return c.inters.EvaluationParticipant
}

func (c *EvaluationParticipantClient) mutate(ctx context.Context, m *EvaluationParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationParticipant mutation op: %q", m.Op())
	}
}

// EvaluationResponseClient is a client for the EvaluationResponse schema.
type EvaluationResponseClient struct {
	config
}

// NewEvaluationResponseClient returns a client for the EvaluationResponse from the given config.
func NewEvaluationResponseClient(c config) *EvaluationResponseClient {
	return &EvaluationResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationresponse.Hooks(f(g(h())))`.
func (c *EvaluationResponseClient) Use(hooks ...Hook) {
	c.hooks.EvaluationResponse = append(c.hooks.EvaluationResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationresponse.Intercept(f(g(h())))`.
func (c *EvaluationResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationResponse = append(c.inters.EvaluationResponse, interceptors...)
}

// Create returns a builder for creating a EvaluationResponse entity.
func (c *EvaluationResponseClient) Create() *EvaluationResponseCreate {
	mutation := newEvaluationResponseMutation(c.config, OpCreate)
	return &EvaluationResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationResponse entities.
func (c *EvaluationResponseClient) CreateBulk(builders ...*EvaluationResponseCreate) *EvaluationResponseCreateBulk {
	return &EvaluationResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationResponseClient) MapCreateBulk(slice any, setFunc func(*EvaluationResponseCreate, int)) *EvaluationResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationResponseCreateBulk{err: fmt.Errorf("calling to EvaluationResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationResponse.
func (c *EvaluationResponseClient) Update() *EvaluationResponseUpdate {
	mutation := newEvaluationResponseMutation(c.config, OpUpdate)
	return &EvaluationResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationResponseClient) UpdateOne(_m *EvaluationResponse) *EvaluationResponseUpdateOne {
	mutation := newEvaluationResponseMutation(c.config, OpUpdateOne, withEvaluationResponse(_m))
	return &EvaluationResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationResponseClient) UpdateOneID(id string) *EvaluationResponseUpdateOne {
	mutation := newEvaluationResponseMutation(c.config, OpUpdateOne, withEvaluationResponseID(id))
	return &EvaluationResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationResponse.
func (c *EvaluationResponseClient) Delete() *EvaluationResponseDelete {
	mutation := newEvaluationResponseMutation(c.config, OpDelete)
	return &EvaluationResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationResponseClient) DeleteOne(_m *EvaluationResponse) *EvaluationResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationResponseClient) DeleteOneID(id string) *EvaluationResponseDeleteOne {
	builder := c.Delete().Where(evaluationresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationResponseDeleteOne{builder}
}

// Query returns a query builder for EvaluationResponse.
func (c *EvaluationResponseClient) Query() *EvaluationResponseQuery {
	return &EvaluationResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationResponse entity by its id.
func (c *EvaluationResponseClient) Get(ctx context.Context, id string) (*EvaluationResponse, error) {
	return c.Query().Where(evaluationresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationResponseClient) GetX(ctx context.Context, id string) *EvaluationResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvaluation queries the evaluation edge of a EvaluationResponse.
func (c *EvaluationResponseClient) QueryEvaluation(_m *EvaluationResponse) *EvaluationInstanceQuery {
	query := (&EvaluationInstanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationresponse.Table, evaluationresponse.FieldID, id),
			sqlgraph.To(evaluationinstance.Table, evaluationinstance.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluationresponse.EvaluationTable, evaluationresponse.EvaluationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationResponseClient) Hooks() []Hook {
	return c.hooks.EvaluationResponse
}

// Interceptors returns the client interceptors.
func (c *EvaluationResponseClient) Interceptors() []Interceptor {
	return c.inters.EvaluationResponse
}

func (c *EvaluationResponseClient) mutate(ctx context.Context, m *EvaluationResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationResponse mutation op: %q", m.Op())
	}
}

// EvaluationTemplateClient is a client for the EvaluationTemplate schema.
type EvaluationTemplateClient struct {
	config
}

// NewEvaluationTemplateClient returns a client for the EvaluationTemplate from the given config.
func NewEvaluationTemplateClient(c config) *EvaluationTemplateClient {
	return &EvaluationTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationtemplate.Hooks(f(g(h())))`.
func (c *EvaluationTemplateClient) Use(hooks ...Hook) {
	c.hooks.EvaluationTemplate = append(c.hooks.EvaluationTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationtemplate.Intercept(f(g(h())))`.
func (c *EvaluationTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationTemplate = append(c.inters.EvaluationTemplate, interceptors...)
}

// Create returns a builder for creating a EvaluationTemplate entity.
func (c *EvaluationTemplateClient) Create() *EvaluationTemplateCreate {
	mutation := newEvaluationTemplateMutation(c.config, OpCreate)
	return &EvaluationTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationTemplate entities.
func (c *EvaluationTemplateClient) CreateBulk(builders ...*EvaluationTemplateCreate) *EvaluationTemplateCreateBulk {
	return &EvaluationTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationTemplateClient) MapCreateBulk(slice any, setFunc func(*EvaluationTemplateCreate, int)) *EvaluationTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationTemplateCreateBulk{err: fmt.Errorf("calling to EvaluationTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationTemplate.
func (c *EvaluationTemplateClient) Update() *EvaluationTemplateUpdate {
	mutation := newEvaluationTemplateMutation(c.config, OpUpdate)
	return &EvaluationTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationTemplateClient) UpdateOne(_m *EvaluationTemplate) *EvaluationTemplateUpdateOne {
	mutation := newEvaluationTemplateMutation(c.config, OpUpdateOne, withEvaluationTemplate(_m))
	return &EvaluationTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationTemplateClient) UpdateOneID(id string) *EvaluationTemplateUpdateOne {
	mutation := newEvaluationTemplateMutation(c.config, OpUpdateOne, withEvaluationTemplateID(id))
	return &EvaluationTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationTemplate.
func (c *EvaluationTemplateClient) Delete() *EvaluationTemplateDelete {
	mutation := newEvaluationTemplateMutation(c.config, OpDelete)
	return &EvaluationTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationTemplateClient) DeleteOne(_m *EvaluationTemplate) *EvaluationTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationTemplateClient) DeleteOneID(id string) *EvaluationTemplateDeleteOne {
	builder := c.Delete().Where(evaluationtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationTemplateDeleteOne{builder}
}

// Query returns a query builder for EvaluationTemplate.
func (c *EvaluationTemplateClient) Query() *EvaluationTemplateQuery {
	return &EvaluationTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationTemplate entity by its id.
func (c *EvaluationTemplateClient) Get(ctx context.Context, id string) (*EvaluationTemplate, error) {
	return c.Query().Where(evaluationtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationTemplateClient) GetX(ctx context.Context, id string) *EvaluationTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvaluationTemplateClient) Hooks() []Hook {
	return c.hooks.EvaluationTemplate
}

// Interceptors returns the client interceptors.
func (c *EvaluationTemplateClient) Interceptors() []Interceptor {
	return c.inters.EvaluationTemplate
}

func (c *EvaluationTemplateClient) mutate(ctx context.Context, m *EvaluationTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationTemplate mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// PipelineClient is a client for the Pipeline schema.
type PipelineClient struct {
	config
}

// NewPipelineClient returns a client for the Pipeline from the given config.
func NewPipelineClient(c config) *PipelineClient {
	return &PipelineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipeline.Hooks(f(g(h())))`.
func (c *PipelineClient) Use(hooks ...Hook) {
	c.hooks.Pipeline = append(c.hooks.Pipeline, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipeline.Intercept(f(g(h())))`.
func (c *PipelineClient) Intercept(interceptors ...Interceptor) {
	c.inters.Pipeline = append(c.inters.Pipeline, interceptors...)
}

// Create returns a builder for creating a Pipeline entity.
func (c *PipelineClient) Create() *PipelineCreate {
	mutation := newPipelineMutation(c.config, OpCreate)
	return &PipelineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Pipeline entities.
func (c *PipelineClient) CreateBulk(builders ...*PipelineCreate) *PipelineCreateBulk {
	return &PipelineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineClient) MapCreateBulk(slice any, setFunc func(*PipelineCreate, int)) *PipelineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineCreateBulk{err: fmt.Errorf("calling to PipelineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Pipeline.
func (c *PipelineClient) Update() *PipelineUpdate {
	mutation := newPipelineMutation(c.config, OpUpdate)
	return &PipelineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineClient) UpdateOne(_m *Pipeline) *PipelineUpdateOne {
	mutation := newPipelineMutation(c.config, OpUpdateOne, withPipeline(_m))
	return &PipelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineClient) UpdateOneID(id string) *PipelineUpdateOne {
	mutation := newPipelineMutation(c.config, OpUpdateOne, withPipelineID(id))
	return &PipelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Pipeline.
func (c *PipelineClient) Delete() *PipelineDelete {
	mutation := newPipelineMutation(c.config, OpDelete)
	return &PipelineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineClient) DeleteOne(_m *Pipeline) *PipelineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineClient) DeleteOneID(id string) *PipelineDeleteOne {
	builder := c.Delete().Where(pipeline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineDeleteOne{builder}
}

// Query returns a query builder for Pipeline.
func (c *PipelineClient) Query() *PipelineQuery {
	return &PipelineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipeline},
		inters: c.Interceptors(),
	}
}

// Get returns a Pipeline entity by its id.
func (c *PipelineClient) Get(ctx context.Context, id string) (*Pipeline, error) {
	return c.Query().Where(pipeline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineClient) GetX(ctx context.Context, id string) *Pipeline {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStages queries the stages edge of a Pipeline.
func (c *PipelineClient) QueryStages(_m *Pipeline) *PipelineStageQuery {
	query := (&PipelineStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipeline.Table, pipeline.FieldID, id),
			sqlgraph.To(pipelinestage.Table, pipelinestage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipeline.StagesTable, pipeline.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineClient) Hooks() []Hook {
	return c.hooks.Pipeline
}

// Interceptors returns the client interceptors.
func (c *PipelineClient) Interceptors() []Interceptor {
	return c.inters.Pipeline
}

func (c *PipelineClient) mutate(ctx context.Context, m *PipelineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Pipeline mutation op: %q", m.Op())
	}
}

// PipelineStageClient is a client for the PipelineStage schema.
type PipelineStageClient struct {
	config
}

// NewPipelineStageClient returns a client for the PipelineStage from the given config.
func NewPipelineStageClient(c config) *PipelineStageClient {
	return &PipelineStageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinestage.Hooks(f(g(h())))`.
func (c *PipelineStageClient) Use(hooks ...Hook) {
	c.hooks.PipelineStage = append(c.hooks.PipelineStage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinestage.Intercept(f(g(h())))`.
func (c *PipelineStageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineStage = append(c.inters.PipelineStage, interceptors...)
}

// Create returns a builder for creating a PipelineStage entity.
func (c *PipelineStageClient) Create() *PipelineStageCreate {
	mutation := newPipelineStageMutation(c.config, OpCreate)
	return &PipelineStageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineStage entities.
func (c *PipelineStageClient) CreateBulk(builders ...*PipelineStageCreate) *PipelineStageCreateBulk {
	return &PipelineStageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStageClient) MapCreateBulk(slice any, setFunc func(*PipelineStageCreate, int)) *PipelineStageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStageCreateBulk{err: fmt.Errorf("calling to PipelineStageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineStage.
func (c *PipelineStageClient) Update() *PipelineStageUpdate {
	mutation := newPipelineStageMutation(c.config, OpUpdate)
	return &PipelineStageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStageClient) UpdateOne(_m *PipelineStage) *PipelineStageUpdateOne {
	mutation := newPipelineStageMutation(c.config, OpUpdateOne, withPipelineStage(_m))
	return &PipelineStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStageClient) UpdateOneID(id string) *PipelineStageUpdateOne {
	mutation := newPipelineStageMutation(c.config, OpUpdateOne, withPipelineStageID(id))
	return &PipelineStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineStage.
func (c *PipelineStageClient) Delete() *PipelineStageDelete {
	mutation := newPipelineStageMutation(c.config, OpDelete)
	return &PipelineStageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStageClient) DeleteOne(_m *PipelineStage) *PipelineStageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStageClient) DeleteOneID(id string) *PipelineStageDeleteOne {
	builder := c.Delete().Where(pipelinestage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStageDeleteOne{builder}
}

// Query returns a query builder for PipelineStage.
func (c *PipelineStageClient) Query() *PipelineStageQuery {
	return &PipelineStageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineStage},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineStage entity by its id.
func (c *PipelineStageClient) Get(ctx context.Context, id string) (*PipelineStage, error) {
	return c.Query().Where(pipelinestage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStageClient) GetX(ctx context.Context, id string) *PipelineStage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPipeline queries the pipeline edge of a PipelineStage.
func (c *PipelineStageClient) QueryPipeline(_m *PipelineStage) *PipelineQuery {
	query := (&PipelineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinestage.Table, pipelinestage.FieldID, id),
			sqlgraph.To(pipeline.Table, pipeline.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinestage.PipelineTable, pipelinestage.PipelineColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineStageClient) Hooks() []Hook {
	return c.hooks.PipelineStage
}

// Interceptors returns the client interceptors.
func (c *PipelineStageClient) Interceptors() []Interceptor {
	return c.inters.PipelineStage
}

func (c *PipelineStageClient) mutate(ctx context.Context, m *PipelineStageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineStage mutation op: %q", m.Op())
	}
}

// RoleCapabilityClient is a client for the RoleCapability schema.
type RoleCapabilityClient struct {
	config
}

// NewRoleCapabilityClient returns a client for the RoleCapability from the given config.
func NewRoleCapabilityClient(c config) *RoleCapabilityClient {
	return &RoleCapabilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rolecapability.Hooks(f(g(h())))`.
func (c *RoleCapabilityClient) Use(hooks ...Hook) {
	c.hooks.RoleCapability = append(c.hooks.RoleCapability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rolecapability.Intercept(f(g(h())))`.
func (c *RoleCapabilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoleCapability = append(c.inters.RoleCapability, interceptors...)
}

// Create returns a builder for creating a RoleCapability entity.
func (c *RoleCapabilityClient) Create() *RoleCapabilityCreate {
	mutation := newRoleCapabilityMutation(c.config, OpCreate)
	return &RoleCapabilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoleCapability entities.
func (c *RoleCapabilityClient) CreateBulk(builders ...*RoleCapabilityCreate) *RoleCapabilityCreateBulk {
	return &RoleCapabilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoleCapabilityClient) MapCreateBulk(slice any, setFunc func(*RoleCapabilityCreate, int)) *RoleCapabilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoleCapabilityCreateBulk{err: fmt.Errorf("calling to RoleCapabilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoleCapabilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoleCapabilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoleCapability.
func (c *RoleCapabilityClient) Update() *RoleCapabilityUpdate {
	mutation := newRoleCapabilityMutation(c.config, OpUpdate)
	return &RoleCapabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoleCapabilityClient) UpdateOne(_m *RoleCapability) *RoleCapabilityUpdateOne {
	mutation := newRoleCapabilityMutation(c.config, OpUpdateOne, withRoleCapability(_m))
	return &RoleCapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoleCapabilityClient) UpdateOneID(id string) *RoleCapabilityUpdateOne {
	mutation := newRoleCapabilityMutation(c.config, OpUpdateOne, withRoleCapabilityID(id))
	return &RoleCapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoleCapability.
func (c *RoleCapabilityClient) Delete() *RoleCapabilityDelete {
	mutation := newRoleCapabilityMutation(c.config, OpDelete)
	return &RoleCapabilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoleCapabilityClient) DeleteOne(_m *RoleCapability) *RoleCapabilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoleCapabilityClient) DeleteOneID(id string) *RoleCapabilityDeleteOne {
	builder := c.Delete().Where(rolecapability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoleCapabilityDeleteOne{builder}
}

// Query returns a query builder for RoleCapability.
func (c *RoleCapabilityClient) Query() *RoleCapabilityQuery {
	return &RoleCapabilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoleCapability},
		inters: c.Interceptors(),
	}
}

// Get returns a RoleCapability entity by its id.
func (c *RoleCapabilityClient) Get(ctx context.Context, id string) (*RoleCapability, error) {
	return c.Query().Where(rolecapability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoleCapabilityClient) GetX(ctx context.Context, id string) *RoleCapability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoleCapabilityClient) Hooks() []Hook {
	return c.hooks.RoleCapability
}

// Interceptors returns the client interceptors.
func (c *RoleCapabilityClient) Interceptors() []Interceptor {
	return c.inters.RoleCapability
}

func (c *RoleCapabilityClient) mutate(ctx context.Context, m *RoleCapabilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoleCapabilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoleCapabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoleCapabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoleCapabilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoleCapability mutation op: %q", m.Op())
	}
}

// StageEvaluationClient is a client for the StageEvaluation schema.
type StageEvaluationClient struct {
	config
}

// NewStageEvaluationClient returns a client for the StageEvaluation from the given config.
func NewStageEvaluationClient(c config) *StageEvaluationClient {
	return &StageEvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stageevaluation.Hooks(f(g(h())))`.
func (c *StageEvaluationClient) Use(hooks ...Hook) {
	c.hooks.StageEvaluation = append(c.hooks.StageEvaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stageevaluation.Intercept(f(g(h())))`.
func (c *StageEvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageEvaluation = append(c.inters.StageEvaluation, interceptors...)
}

// Create returns a builder for creating a StageEvaluation entity.
func (c *StageEvaluationClient) Create() *StageEvaluationCreate {
	mutation := newStageEvaluationMutation(c.config, OpCreate)
	return &StageEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageEvaluation entities.
func (c *StageEvaluationClient) CreateBulk(builders ...*StageEvaluationCreate) *StageEvaluationCreateBulk {
	return &StageEvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageEvaluationClient) MapCreateBulk(slice any, setFunc func(*StageEvaluationCreate, int)) *StageEvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageEvaluationCreateBulk{err: fmt.Errorf("calling to StageEvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageEvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageEvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageEvaluation.
func (c *StageEvaluationClient) Update() *StageEvaluationUpdate {
	mutation := newStageEvaluationMutation(c.config, OpUpdate)
	return &StageEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageEvaluationClient) UpdateOne(_m *StageEvaluation) *StageEvaluationUpdateOne {
	mutation := newStageEvaluationMutation(c.config, OpUpdateOne, withStageEvaluation(_m))
	return &StageEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageEvaluationClient) UpdateOneID(id string) *StageEvaluationUpdateOne {
	mutation := newStageEvaluationMutation(c.config, OpUpdateOne, withStageEvaluationID(id))
	return &StageEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageEvaluation.
func (c *StageEvaluationClient) Delete() *StageEvaluationDelete {
	mutation := newStageEvaluationMutation(c.config, OpDelete)
	return &StageEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageEvaluationClient) DeleteOne(_m *StageEvaluation) *StageEvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageEvaluationClient) DeleteOneID(id string) *StageEvaluationDeleteOne {
	builder := c.Delete().Where(stageevaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageEvaluationDeleteOne{builder}
}

// Query returns a query builder for StageEvaluation.
func (c *StageEvaluationClient) Query() *StageEvaluationQuery {
	return &StageEvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a StageEvaluation entity by its id.
func (c *StageEvaluationClient) Get(ctx context.Context, id string) (*StageEvaluation, error) {
	return c.Query().Where(stageevaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageEvaluationClient) GetX(ctx context.Context, id string) *StageEvaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StageEvaluationClient) Hooks() []Hook {
	return c.hooks.StageEvaluation
}

// Interceptors returns the client interceptors.
func (c *StageEvaluationClient) Interceptors() []Interceptor {
	return c.inters.StageEvaluation
}

func (c *StageEvaluationClient) mutate(ctx context.Context, m *StageEvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageEvaluation mutation op: %q", m.Op())
	}
}

// StageFeedbackClient is a client for the StageFeedback schema.
type StageFeedbackClient struct {
	config
}

// NewStageFeedbackClient returns a client for the StageFeedback from the given config.
func NewStageFeedbackClient(c config) *StageFeedbackClient {
	return &StageFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagefeedback.Hooks(f(g(h())))`.
func (c *StageFeedbackClient) Use(hooks ...Hook) {
	c.hooks.StageFeedback = append(c.hooks.StageFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagefeedback.Intercept(f(g(h())))`.
func (c *StageFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageFeedback = append(c.inters.StageFeedback, interceptors...)
}

// Create returns a builder for creating a StageFeedback entity.
func (c *StageFeedbackClient) Create() *StageFeedbackCreate {
	mutation := newStageFeedbackMutation(c.config, OpCreate)
	return &StageFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageFeedback entities.
func (c *StageFeedbackClient) CreateBulk(builders ...*StageFeedbackCreate) *StageFeedbackCreateBulk {
	return &StageFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageFeedbackClient) MapCreateBulk(slice any, setFunc func(*StageFeedbackCreate, int)) *StageFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageFeedbackCreateBulk{err: fmt.Errorf("calling to StageFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageFeedback.
func (c *StageFeedbackClient) Update() *StageFeedbackUpdate {
	mutation := newStageFeedbackMutation(c.config, OpUpdate)
	return &StageFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageFeedbackClient) UpdateOne(_m *StageFeedback) *StageFeedbackUpdateOne {
	mutation := newStageFeedbackMutation(c.config, OpUpdateOne, withStageFeedback(_m))
	return &StageFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageFeedbackClient) UpdateOneID(id string) *StageFeedbackUpdateOne {
	mutation := newStageFeedbackMutation(c.config, OpUpdateOne, withStageFeedbackID(id))
	return &StageFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageFeedback.
func (c *StageFeedbackClient) Delete() *StageFeedbackDelete {
	mutation := newStageFeedbackMutation(c.config, OpDelete)
	return &StageFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageFeedbackClient) DeleteOne(_m *StageFeedback) *StageFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageFeedbackClient) DeleteOneID(id string) *StageFeedbackDeleteOne {
	builder := c.Delete().Where(stagefeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageFeedbackDeleteOne{builder}
}

// Query returns a query builder for StageFeedback.
func (c *StageFeedbackClient) Query() *StageFeedbackQuery {
	return &StageFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a StageFeedback entity by its id.
func (c *StageFeedbackClient) Get(ctx context.Context, id string) (*StageFeedback, error) {
	return c.Query().Where(stagefeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageFeedbackClient) GetX(ctx context.Context, id string) *StageFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StageFeedbackClient) Hooks() []Hook {
	return c.hooks.StageFeedback
}

// Interceptors returns the client interceptors.
func (c *StageFeedbackClient) Interceptors() []Interceptor {
	return c.inters.StageFeedback
}

func (c *StageFeedbackClient) mutate(ctx context.Context, m *StageFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageFeedback mutation op: %q", m.Op())
	}
}

// TenantClient is a client for the Tenant schema.
type TenantClient struct {
	config
}

// NewTenantClient returns a client for the Tenant from the given config.
func NewTenantClient(c config) *TenantClient {
	return &TenantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenant.Hooks(f(g(h())))`.
func (c *TenantClient) Use(hooks ...Hook) {
	c.hooks.Tenant = append(c.hooks.Tenant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenant.Intercept(f(g(h())))`.
func (c *TenantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tenant = append(c.inters.Tenant, interceptors...)
}

// Create returns a builder for creating a Tenant entity.
func (c *TenantClient) Create() *TenantCreate {
	mutation := newTenantMutation(c.config, OpCreate)
	return &TenantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tenant entities.
func (c *TenantClient) CreateBulk(builders ...*TenantCreate) *TenantCreateBulk {
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantClient) MapCreateBulk(slice any, setFunc func(*TenantCreate, int)) *TenantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCreateBulk{err: fmt.Errorf("calling to TenantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tenant.
func (c *TenantClient) Update() *TenantUpdate {
	mutation := newTenantMutation(c.config, OpUpdate)
	return &TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantClient) UpdateOne(_m *Tenant) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenant(_m))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantClient) UpdateOneID(id string) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenantID(id))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tenant.
func (c *TenantClient) Delete() *TenantDelete {
	mutation := newTenantMutation(c.config, OpDelete)
	return &TenantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantClient) DeleteOne(_m *Tenant) *TenantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantClient) DeleteOneID(id string) *TenantDeleteOne {
	builder := c.Delete().Where(tenant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantDeleteOne{builder}
}

// Query returns a query builder for Tenant.
func (c *TenantClient) Query() *TenantQuery {
	return &TenantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenant},
		inters: c.Interceptors(),
	}
}

// Get returns a Tenant entity by its id.
func (c *TenantClient) Get(ctx context.Context, id string) (*Tenant, error) {
	return c.Query().Where(tenant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantClient) GetX(ctx context.Context, id string) *Tenant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantClient) Hooks() []Hook {
	return c.hooks.Tenant
}

// Interceptors returns the client interceptors.
func (c *TenantClient) Interceptors() []Interceptor {
	return c.inters.Tenant
}

func (c *TenantClient) mutate(ctx context.Context, m *TenantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tenant mutation op: %q", m.Op())
	}
}

// TenantApplicationStatusClient is a client for the TenantApplicationStatus schema.
type TenantApplicationStatusClient struct {
	config
}

// NewTenantApplicationStatusClient returns a client for the TenantApplicationStatus from the given config.
func NewTenantApplicationStatusClient(c config) *TenantApplicationStatusClient {
	return &TenantApplicationStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenantapplicationstatus.Hooks(f(g(h())))`.
func (c *TenantApplicationStatusClient) Use(hooks ...Hook) {
	c.hooks.TenantApplicationStatus = append(c.hooks.TenantApplicationStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenantapplicationstatus.Intercept(f(g(h())))`.
func (c *TenantApplicationStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.TenantApplicationStatus = append(c.inters.TenantApplicationStatus, interceptors...)
}

// Create returns a builder for creating a TenantApplicationStatus entity.
func (c *TenantApplicationStatusClient) Create() *TenantApplicationStatusCreate {
	mutation := newTenantApplicationStatusMutation(c.config, OpCreate)
	return &TenantApplicationStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TenantApplicationStatus entities.
func (c *TenantApplicationStatusClient) CreateBulk(builders ...*TenantApplicationStatusCreate) *TenantApplicationStatusCreateBulk {
	return &TenantApplicationStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantApplicationStatusClient) MapCreateBulk(slice any, setFunc func(*TenantApplicationStatusCreate, int)) *TenantApplicationStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantApplicationStatusCreateBulk{err: fmt.Errorf("calling to TenantApplicationStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantApplicationStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantApplicationStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TenantApplicationStatus.
func (c *TenantApplicationStatusClient) Update() *TenantApplicationStatusUpdate {
	mutation := newTenantApplicationStatusMutation(c.config, OpUpdate)
	return &TenantApplicationStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantApplicationStatusClient) UpdateOne(_m *TenantApplicationStatus) *TenantApplicationStatusUpdateOne {
	mutation := newTenantApplicationStatusMutation(c.config, OpUpdateOne, withTenantApplicationStatus(_m))
	return &TenantApplicationStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantApplicationStatusClient) UpdateOneID(id string) *TenantApplicationStatusUpdateOne {
	mutation := newTenantApplicationStatusMutation(c.config, OpUpdateOne, withTenantApplicationStatusID(id))
	return &TenantApplicationStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TenantApplicationStatus.
func (c *TenantApplicationStatusClient) Delete() *TenantApplicationStatusDelete {
	mutation := newTenantApplicationStatusMutation(c.config, OpDelete)
	return &TenantApplicationStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantApplicationStatusClient) DeleteOne(_m *TenantApplicationStatus) *TenantApplicationStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantApplicationStatusClient) DeleteOneID(id string) *TenantApplicationStatusDeleteOne {
	builder := c.Delete().Where(tenantapplicationstatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantApplicationStatusDeleteOne{builder}
}

// Query returns a query builder for TenantApplicationStatus.
func (c *TenantApplicationStatusClient) Query() *TenantApplicationStatusQuery {
	return &TenantApplicationStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenantApplicationStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a TenantApplicationStatus entity by its id.
func (c *TenantApplicationStatusClient) Get(ctx context.Context, id string) (*TenantApplicationStatus, error) {
	return c.Query().Where(tenantapplicationstatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantApplicationStatusClient) GetX(ctx context.Context, id string) *TenantApplicationStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantApplicationStatusClient) Hooks() []Hook {
	return c.hooks.TenantApplicationStatus
}

// Interceptors returns the client interceptors.
func (c *TenantApplicationStatusClient) Interceptors() []Interceptor {
	return c.inters.TenantApplicationStatus
}

func (c *TenantApplicationStatusClient) mutate(ctx context.Context, m *TenantApplicationStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantApplicationStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantApplicationStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantApplicationStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantApplicationStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TenantApplicationStatus mutation op: %q", m.Op())
	}
}

// TenantStageActionClient is a client for the TenantStageAction schema.
type TenantStageActionClient struct {
	config
}

// NewTenantStageActionClient returns a client for the TenantStageAction from the given config.
func NewTenantStageActionClient(c config) *TenantStageActionClient {
	return &TenantStageActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenantstageaction.Hooks(f(g(h())))`.
func (c *TenantStageActionClient) Use(hooks ...Hook) {
	c.hooks.TenantStageAction = append(c.hooks.TenantStageAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenantstageaction.Intercept(f(g(h())))`.
func (c *TenantStageActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TenantStageAction = append(c.inters.TenantStageAction, interceptors...)
}

// Create returns a builder for creating a TenantStageAction entity.
func (c *TenantStageActionClient) Create() *TenantStageActionCreate {
	mutation := newTenantStageActionMutation(c.config, OpCreate)
	return &TenantStageActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TenantStageAction entities.
func (c *TenantStageActionClient) CreateBulk(builders ...*TenantStageActionCreate) *TenantStageActionCreateBulk {
	return &TenantStageActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantStageActionClient) MapCreateBulk(slice any, setFunc func(*TenantStageActionCreate, int)) *TenantStageActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantStageActionCreateBulk{err: fmt.Errorf("calling to TenantStageActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantStageActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantStageActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TenantStageAction.
func (c *TenantStageActionClient) Update() *TenantStageActionUpdate {
	mutation := newTenantStageActionMutation(c.config, OpUpdate)
	return &TenantStageActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantStageActionClient) UpdateOne(_m *TenantStageAction) *TenantStageActionUpdateOne {
	mutation := newTenantStageActionMutation(c.config, OpUpdateOne, withTenantStageAction(_m))
	return &TenantStageActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantStageActionClient) UpdateOneID(id string) *TenantStageActionUpdateOne {
	mutation := newTenantStageActionMutation(c.config, OpUpdateOne, withTenantStageActionID(id))
	return &TenantStageActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TenantStageAction.
func (c *TenantStageActionClient) Delete() *TenantStageActionDelete {
	mutation := newTenantStageActionMutation(c.config, OpDelete)
	return &TenantStageActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantStageActionClient) DeleteOne(_m *TenantStageAction) *TenantStageActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantStageActionClient) DeleteOneID(id string) *TenantStageActionDeleteOne {
	builder := c.Delete().Where(tenantstageaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantStageActionDeleteOne{builder}
}

// Query returns a query builder for TenantStageAction.
func (c *TenantStageActionClient) Query() *TenantStageActionQuery {
	return &TenantStageActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenantStageAction},
		inters: c.Interceptors(),
	}
}

// Get returns a TenantStageAction entity by its id.
func (c *TenantStageActionClient) Get(ctx context.Context, id string) (*TenantStageAction, error) {
	return c.Query().Where(tenantstageaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantStageActionClient) GetX(ctx context.Context, id string) *TenantStageAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantStageActionClient) Hooks() []Hook {
	return c.hooks.TenantStageAction
}

// Interceptors returns the client interceptors.
func (c *TenantStageActionClient) Interceptors() []Interceptor {
	return c.inters.TenantStageAction
}

func (c *TenantStageActionClient) mutate(ctx context.Context, m *TenantStageActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantStageActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantStageActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantStageActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantStageActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TenantStageAction mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActionExecutionLog, ApplicationPipelineState, ApplicationSignal,
		ApplicationStageHistory, EvaluationInstance, EvaluationParticipant,
		EvaluationResponse, EvaluationTemplate, Event, Job, Pipeline, PipelineStage,
		RoleCapability, StageEvaluation, StageFeedback, Tenant,
		TenantApplicationStatus, TenantStageAction, User []ent.Hook
	}
	inters struct {
		ActionExecutionLog, ApplicationPipelineState, ApplicationSignal,
		ApplicationStageHistory, EvaluationInstance, EvaluationParticipant,
		EvaluationResponse, EvaluationTemplate, Event, Job, Pipeline, PipelineStage,
		RoleCapability, StageEvaluation, StageFeedback, Tenant,
		TenantApplicationStatus, TenantStageAction, User []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
