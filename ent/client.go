// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/incidentflow/triaged/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/incidentflow/triaged/ent/alertsession"
	"github.com/incidentflow/triaged/ent/llminteraction"
	"github.com/incidentflow/triaged/ent/mcpinteraction"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AlertSession is the client for interacting with the AlertSession builders.
	AlertSession *AlertSessionClient
	// LLMInteraction is the client for interacting with the LLMInteraction builders.
	LLMInteraction *LLMInteractionClient
	// MCPInteraction is the client for interacting with the MCPInteraction builders.
	MCPInteraction *MCPInteractionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AlertSession = NewAlertSessionClient(c.config)
	c.LLMInteraction = NewLLMInteractionClient(c.config)
	c.MCPInteraction = NewMCPInteractionClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AlertSession:   NewAlertSessionClient(cfg),
		LLMInteraction: NewLLMInteractionClient(cfg),
		MCPInteraction: NewMCPInteractionClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AlertSession:   NewAlertSessionClient(cfg),
		LLMInteraction: NewLLMInteractionClient(cfg),
		MCPInteraction: NewMCPInteractionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AlertSession.
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
	c.AlertSession.Use(hooks...)
	c.LLMInteraction.Use(hooks...)
	c.MCPInteraction.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AlertSession.Intercept(interceptors...)
	c.LLMInteraction.Intercept(interceptors...)
	c.MCPInteraction.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertSessionMutation:
		return c.AlertSession.mutate(ctx, m)
	case *LLMInteractionMutation:
		return c.LLMInteraction.mutate(ctx, m)
	case *MCPInteractionMutation:
		return c.MCPInteraction.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertSessionClient is a client for the AlertSession schema.
type AlertSessionClient struct {
	config
}

// NewAlertSessionClient returns a client for the AlertSession from the given config.
func NewAlertSessionClient(c config) *AlertSessionClient {
	return &AlertSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertsession.Hooks(f(g(h())))`.
func (c *AlertSessionClient) Use(hooks ...Hook) {
	c.hooks.AlertSession = append(c.hooks.AlertSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertsession.Intercept(f(g(h())))`.
func (c *AlertSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertSession = append(c.inters.AlertSession, interceptors...)
}

// Create returns a builder for creating a AlertSession entity.
func (c *AlertSessionClient) Create() *AlertSessionCreate {
	mutation := newAlertSessionMutation(c.config, OpCreate)
	return &AlertSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertSession entities.
func (c *AlertSessionClient) CreateBulk(builders ...*AlertSessionCreate) *AlertSessionCreateBulk {
	return &AlertSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertSessionClient) MapCreateBulk(slice any, setFunc func(*AlertSessionCreate, int)) *AlertSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertSessionCreateBulk{err: fmt.Errorf("calling to AlertSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertSession.
func (c *AlertSessionClient) Update() *AlertSessionUpdate {
	mutation := newAlertSessionMutation(c.config, OpUpdate)
	return &AlertSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertSessionClient) UpdateOne(_m *AlertSession) *AlertSessionUpdateOne {
	mutation := newAlertSessionMutation(c.config, OpUpdateOne, withAlertSession(_m))
	return &AlertSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertSessionClient) UpdateOneID(id string) *AlertSessionUpdateOne {
	mutation := newAlertSessionMutation(c.config, OpUpdateOne, withAlertSessionID(id))
	return &AlertSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertSession.
func (c *AlertSessionClient) Delete() *AlertSessionDelete {
	mutation := newAlertSessionMutation(c.config, OpDelete)
	return &AlertSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertSessionClient) DeleteOne(_m *AlertSession) *AlertSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertSessionClient) DeleteOneID(id string) *AlertSessionDeleteOne {
	builder := c.Delete().Where(alertsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertSessionDeleteOne{builder}
}

// Query returns a query builder for AlertSession.
func (c *AlertSessionClient) Query() *AlertSessionQuery {
	return &AlertSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertSession entity by its id.
func (c *AlertSessionClient) Get(ctx context.Context, id string) (*AlertSession, error) {
	return c.Query().Where(alertsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertSessionClient) GetX(ctx context.Context, id string) *AlertSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLlmInteractions queries the llm_interactions edge of a AlertSession.
func (c *AlertSessionClient) QueryLlmInteractions(_m *AlertSession) *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.LlmInteractionsTable, alertsession.LlmInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMcpInteractions queries the mcp_interactions edge of a AlertSession.
func (c *AlertSessionClient) QueryMcpInteractions(_m *AlertSession) *MCPInteractionQuery {
	query := (&MCPInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(mcpinteraction.Table, mcpinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.McpInteractionsTable, alertsession.McpInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertSessionClient) Hooks() []Hook {
	return c.hooks.AlertSession
}

// Interceptors returns the client interceptors.
func (c *AlertSessionClient) Interceptors() []Interceptor {
	return c.inters.AlertSession
}

func (c *AlertSessionClient) mutate(ctx context.Context, m *AlertSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertSession mutation op: %q", m.Op())
	}
}

// LLMInteractionClient is a client for the LLMInteraction schema.
type LLMInteractionClient struct {
	config
}

// NewLLMInteractionClient returns a client for the LLMInteraction from the given config.
func NewLLMInteractionClient(c config) *LLMInteractionClient {
	return &LLMInteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llminteraction.Hooks(f(g(h())))`.
func (c *LLMInteractionClient) Use(hooks ...Hook) {
	c.hooks.LLMInteraction = append(c.hooks.LLMInteraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llminteraction.Intercept(f(g(h())))`.
func (c *LLMInteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMInteraction = append(c.inters.LLMInteraction, interceptors...)
}

// Create returns a builder for creating a LLMInteraction entity.
func (c *LLMInteractionClient) Create() *LLMInteractionCreate {
	mutation := newLLMInteractionMutation(c.config, OpCreate)
	return &LLMInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMInteraction entities.
func (c *LLMInteractionClient) CreateBulk(builders ...*LLMInteractionCreate) *LLMInteractionCreateBulk {
	return &LLMInteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMInteractionClient) MapCreateBulk(slice any, setFunc func(*LLMInteractionCreate, int)) *LLMInteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMInteractionCreateBulk{err: fmt.Errorf("calling to LLMInteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMInteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMInteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMInteraction.
func (c *LLMInteractionClient) Update() *LLMInteractionUpdate {
	mutation := newLLMInteractionMutation(c.config, OpUpdate)
	return &LLMInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMInteractionClient) UpdateOne(_m *LLMInteraction) *LLMInteractionUpdateOne {
	mutation := newLLMInteractionMutation(c.config, OpUpdateOne, withLLMInteraction(_m))
	return &LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMInteractionClient) UpdateOneID(id string) *LLMInteractionUpdateOne {
	mutation := newLLMInteractionMutation(c.config, OpUpdateOne, withLLMInteractionID(id))
	return &LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMInteraction.
func (c *LLMInteractionClient) Delete() *LLMInteractionDelete {
	mutation := newLLMInteractionMutation(c.config, OpDelete)
	return &LLMInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMInteractionClient) DeleteOne(_m *LLMInteraction) *LLMInteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMInteractionClient) DeleteOneID(id string) *LLMInteractionDeleteOne {
	builder := c.Delete().Where(llminteraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMInteractionDeleteOne{builder}
}

// Query returns a query builder for LLMInteraction.
func (c *LLMInteractionClient) Query() *LLMInteractionQuery {
	return &LLMInteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMInteraction entity by its id.
func (c *LLMInteractionClient) Get(ctx context.Context, id string) (*LLMInteraction, error) {
	return c.Query().Where(llminteraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMInteractionClient) GetX(ctx context.Context, id string) *LLMInteraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a LLMInteraction.
func (c *LLMInteractionClient) QuerySession(_m *LLMInteraction) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.SessionTable, llminteraction.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LLMInteractionClient) Hooks() []Hook {
	return c.hooks.LLMInteraction
}

// Interceptors returns the client interceptors.
func (c *LLMInteractionClient) Interceptors() []Interceptor {
	return c.inters.LLMInteraction
}

func (c *LLMInteractionClient) mutate(ctx context.Context, m *LLMInteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMInteraction mutation op: %q", m.Op())
	}
}

// MCPInteractionClient is a client for the MCPInteraction schema.
type MCPInteractionClient struct {
	config
}

// NewMCPInteractionClient returns a client for the MCPInteraction from the given config.
func NewMCPInteractionClient(c config) *MCPInteractionClient {
	return &MCPInteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mcpinteraction.Hooks(f(g(h())))`.
func (c *MCPInteractionClient) Use(hooks ...Hook) {
	c.hooks.MCPInteraction = append(c.hooks.MCPInteraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mcpinteraction.Intercept(f(g(h())))`.
func (c *MCPInteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.MCPInteraction = append(c.inters.MCPInteraction, interceptors...)
}

// Create returns a builder for creating a MCPInteraction entity.
func (c *MCPInteractionClient) Create() *MCPInteractionCreate {
	mutation := newMCPInteractionMutation(c.config, OpCreate)
	return &MCPInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MCPInteraction entities.
func (c *MCPInteractionClient) CreateBulk(builders ...*MCPInteractionCreate) *MCPInteractionCreateBulk {
	return &MCPInteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MCPInteractionClient) MapCreateBulk(slice any, setFunc func(*MCPInteractionCreate, int)) *MCPInteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MCPInteractionCreateBulk{err: fmt.Errorf("calling to MCPInteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MCPInteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MCPInteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MCPInteraction.
func (c *MCPInteractionClient) Update() *MCPInteractionUpdate {
	mutation := newMCPInteractionMutation(c.config, OpUpdate)
	return &MCPInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MCPInteractionClient) UpdateOne(_m *MCPInteraction) *MCPInteractionUpdateOne {
	mutation := newMCPInteractionMutation(c.config, OpUpdateOne, withMCPInteraction(_m))
	return &MCPInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MCPInteractionClient) UpdateOneID(id string) *MCPInteractionUpdateOne {
	mutation := newMCPInteractionMutation(c.config, OpUpdateOne, withMCPInteractionID(id))
	return &MCPInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MCPInteraction.
func (c *MCPInteractionClient) Delete() *MCPInteractionDelete {
	mutation := newMCPInteractionMutation(c.config, OpDelete)
	return &MCPInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MCPInteractionClient) DeleteOne(_m *MCPInteraction) *MCPInteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MCPInteractionClient) DeleteOneID(id string) *MCPInteractionDeleteOne {
	builder := c.Delete().Where(mcpinteraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MCPInteractionDeleteOne{builder}
}

// Query returns a query builder for MCPInteraction.
func (c *MCPInteractionClient) Query() *MCPInteractionQuery {
	return &MCPInteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMCPInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a MCPInteraction entity by its id.
func (c *MCPInteractionClient) Get(ctx context.Context, id string) (*MCPInteraction, error) {
	return c.Query().Where(mcpinteraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MCPInteractionClient) GetX(ctx context.Context, id string) *MCPInteraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a MCPInteraction.
func (c *MCPInteractionClient) QuerySession(_m *MCPInteraction) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mcpinteraction.Table, mcpinteraction.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mcpinteraction.SessionTable, mcpinteraction.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MCPInteractionClient) Hooks() []Hook {
	return c.hooks.MCPInteraction
}

// Interceptors returns the client interceptors.
func (c *MCPInteractionClient) Interceptors() []Interceptor {
	return c.inters.MCPInteraction
}

func (c *MCPInteractionClient) mutate(ctx context.Context, m *MCPInteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MCPInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MCPInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MCPInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MCPInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MCPInteraction mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AlertSession, LLMInteraction, MCPInteraction []ent.Hook
	}
	inters struct {
		AlertSession, LLMInteraction, MCPInteraction []ent.Interceptor
	}
)
