// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentflow/triaged/ent/alertsession"
	"github.com/incidentflow/triaged/ent/llminteraction"
	"github.com/incidentflow/triaged/ent/mcpinteraction"
)

// AlertSessionCreate is the builder for creating a AlertSession entity.
type AlertSessionCreate struct {
	config
	mutation *AlertSessionMutation
	hooks    []Hook
}

// SetAlertID sets the "alert_id" field.
func (_c *AlertSessionCreate) SetAlertID(v string) *AlertSessionCreate {
	_c.mutation.SetAlertID(v)
	return _c
}

// SetAlertData sets the "alert_data" field.
func (_c *AlertSessionCreate) SetAlertData(v map[string]interface{}) *AlertSessionCreate {
	_c.mutation.SetAlertData(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *AlertSessionCreate) SetAgentType(v string) *AlertSessionCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetAlertType sets the "alert_type" field.
func (_c *AlertSessionCreate) SetAlertType(v string) *AlertSessionCreate {
	_c.mutation.SetAlertType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertSessionCreate) SetStatus(v alertsession.Status) *AlertSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableStatus(v *alertsession.Status) *AlertSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAtUs sets the "started_at_us" field.
func (_c *AlertSessionCreate) SetStartedAtUs(v int64) *AlertSessionCreate {
	_c.mutation.SetStartedAtUs(v)
	return _c
}

// SetCompletedAtUs sets the "completed_at_us" field.
func (_c *AlertSessionCreate) SetCompletedAtUs(v int64) *AlertSessionCreate {
	_c.mutation.SetCompletedAtUs(v)
	return _c
}

// SetNillableCompletedAtUs sets the "completed_at_us" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableCompletedAtUs(v *int64) *AlertSessionCreate {
	if v != nil {
		_c.SetCompletedAtUs(*v)
	}
	return _c
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_c *AlertSessionCreate) SetFinalAnalysis(v string) *AlertSessionCreate {
	_c.mutation.SetFinalAnalysis(v)
	return _c
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableFinalAnalysis(v *string) *AlertSessionCreate {
	if v != nil {
		_c.SetFinalAnalysis(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AlertSessionCreate) SetErrorMessage(v string) *AlertSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableErrorMessage(v *string) *AlertSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSessionMetadata sets the "session_metadata" field.
func (_c *AlertSessionCreate) SetSessionMetadata(v map[string]interface{}) *AlertSessionCreate {
	_c.mutation.SetSessionMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AlertSessionCreate) SetID(v string) *AlertSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_c *AlertSessionCreate) AddLlmInteractionIDs(ids ...string) *AlertSessionCreate {
	_c.mutation.AddLlmInteractionIDs(ids...)
	return _c
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_c *AlertSessionCreate) AddLlmInteractions(v ...*LLMInteraction) *AlertSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_c *AlertSessionCreate) AddMcpInteractionIDs(ids ...string) *AlertSessionCreate {
	_c.mutation.AddMcpInteractionIDs(ids...)
	return _c
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_c *AlertSessionCreate) AddMcpInteractions(v ...*MCPInteraction) *AlertSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMcpInteractionIDs(ids...)
}

// Mutation returns the AlertSessionMutation object of the builder.
func (_c *AlertSessionCreate) Mutation() *AlertSessionMutation {
	return _c.mutation
}

// Save creates the AlertSession in the database.
func (_c *AlertSessionCreate) Save(ctx context.Context) (*AlertSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertSessionCreate) SaveX(ctx context.Context) *AlertSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := alertsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertSessionCreate) check() error {
	if _, ok := _c.mutation.AlertID(); !ok {
		return &ValidationError{Name: "alert_id", err: errors.New(`ent: missing required field "AlertSession.alert_id"`)}
	}
	if _, ok := _c.mutation.AlertData(); !ok {
		return &ValidationError{Name: "alert_data", err: errors.New(`ent: missing required field "AlertSession.alert_data"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "AlertSession.agent_type"`)}
	}
	if _, ok := _c.mutation.AlertType(); !ok {
		return &ValidationError{Name: "alert_type", err: errors.New(`ent: missing required field "AlertSession.alert_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AlertSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := alertsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAtUs(); !ok {
		return &ValidationError{Name: "started_at_us", err: errors.New(`ent: missing required field "AlertSession.started_at_us"`)}
	}
	return nil
}

func (_c *AlertSessionCreate) sqlSave(ctx context.Context) (*AlertSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AlertSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertSessionCreate) createSpec() (*AlertSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertsession.Table, sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AlertID(); ok {
		_spec.SetField(alertsession.FieldAlertID, field.TypeString, value)
		_node.AlertID = value
	}
	if value, ok := _c.mutation.AlertData(); ok {
		_spec.SetField(alertsession.FieldAlertData, field.TypeJSON, value)
		_node.AlertData = value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(alertsession.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.AlertType(); ok {
		_spec.SetField(alertsession.FieldAlertType, field.TypeString, value)
		_node.AlertType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alertsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAtUs(); ok {
		_spec.SetField(alertsession.FieldStartedAtUs, field.TypeInt64, value)
		_node.StartedAtUs = value
	}
	if value, ok := _c.mutation.CompletedAtUs(); ok {
		_spec.SetField(alertsession.FieldCompletedAtUs, field.TypeInt64, value)
		_node.CompletedAtUs = &value
	}
	if value, ok := _c.mutation.FinalAnalysis(); ok {
		_spec.SetField(alertsession.FieldFinalAnalysis, field.TypeString, value)
		_node.FinalAnalysis = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(alertsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.SessionMetadata(); ok {
		_spec.SetField(alertsession.FieldSessionMetadata, field.TypeJSON, value)
		_node.SessionMetadata = value
	}
	if nodes := _c.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.McpInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AlertSessionCreateBulk is the builder for creating many AlertSession entities in bulk.
type AlertSessionCreateBulk struct {
	config
	err      error
	builders []*AlertSessionCreate
}

// Save creates the AlertSession entities in the database.
func (_c *AlertSessionCreateBulk) Save(ctx context.Context) ([]*AlertSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AlertSessionCreateBulk) SaveX(ctx context.Context) []*AlertSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
