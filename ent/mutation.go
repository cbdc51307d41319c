// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incidentflow/triaged/ent/alertsession"
	"github.com/incidentflow/triaged/ent/llminteraction"
	"github.com/incidentflow/triaged/ent/mcpinteraction"
	"github.com/incidentflow/triaged/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlertSession   = "AlertSession"
	TypeLLMInteraction = "LLMInteraction"
	TypeMCPInteraction = "MCPInteraction"
)

// AlertSessionMutation represents an operation that mutates the AlertSession nodes in the graph.
type AlertSessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	alert_id                *string
	alert_data              *map[string]interface{}
	agent_type              *string
	alert_type              *string
	status                  *alertsession.Status
	started_at_us           *int64
	addstarted_at_us        *int64
	completed_at_us         *int64
	addcompleted_at_us      *int64
	final_analysis          *string
	error_message           *string
	session_metadata        *map[string]interface{}
	clearedFields           map[string]struct{}
	llm_interactions        map[string]struct{}
	removedllm_interactions map[string]struct{}
	clearedllm_interactions bool
	mcp_interactions        map[string]struct{}
	removedmcp_interactions map[string]struct{}
	clearedmcp_interactions bool
	done                    bool
	oldValue                func(context.Context) (*AlertSession, error)
	predicates              []predicate.AlertSession
}

var _ ent.Mutation = (*AlertSessionMutation)(nil)

// alertsessionOption allows management of the mutation configuration using functional options.
type alertsessionOption func(*AlertSessionMutation)

// newAlertSessionMutation creates new mutation for the AlertSession entity.
func newAlertSessionMutation(c config, op Op, opts ...alertsessionOption) *AlertSessionMutation {
	m := &AlertSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertSessionID sets the ID field of the mutation.
func withAlertSessionID(id string) alertsessionOption {
	return func(m *AlertSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertSession
		)
		m.oldValue = func(ctx context.Context) (*AlertSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertSession sets the old AlertSession of the mutation.
func withAlertSession(node *AlertSession) alertsessionOption {
	return func(m *AlertSessionMutation) {
		m.oldValue = func(context.Context) (*AlertSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertSession entities.
func (m *AlertSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAlertID sets the "alert_id" field.
func (m *AlertSessionMutation) SetAlertID(s string) {
	m.alert_id = &s
}

// AlertID returns the value of the "alert_id" field in the mutation.
func (m *AlertSessionMutation) AlertID() (r string, exists bool) {
	v := m.alert_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertID returns the old "alert_id" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldAlertID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertID: %w", err)
	}
	return oldValue.AlertID, nil
}

// ResetAlertID resets all changes to the "alert_id" field.
func (m *AlertSessionMutation) ResetAlertID() {
	m.alert_id = nil
}

// SetAlertData sets the "alert_data" field.
func (m *AlertSessionMutation) SetAlertData(value map[string]interface{}) {
	m.alert_data = &value
}

// AlertData returns the value of the "alert_data" field in the mutation.
func (m *AlertSessionMutation) AlertData() (r map[string]interface{}, exists bool) {
	v := m.alert_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertData returns the old "alert_data" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldAlertData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertData: %w", err)
	}
	return oldValue.AlertData, nil
}

// ResetAlertData resets all changes to the "alert_data" field.
func (m *AlertSessionMutation) ResetAlertData() {
	m.alert_data = nil
}

// SetAgentType sets the "agent_type" field.
func (m *AlertSessionMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AlertSessionMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AlertSessionMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetAlertType sets the "alert_type" field.
func (m *AlertSessionMutation) SetAlertType(s string) {
	m.alert_type = &s
}

// AlertType returns the value of the "alert_type" field in the mutation.
func (m *AlertSessionMutation) AlertType() (r string, exists bool) {
	v := m.alert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertType returns the old "alert_type" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldAlertType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertType: %w", err)
	}
	return oldValue.AlertType, nil
}

// ResetAlertType resets all changes to the "alert_type" field.
func (m *AlertSessionMutation) ResetAlertType() {
	m.alert_type = nil
}

// SetStatus sets the "status" field.
func (m *AlertSessionMutation) SetStatus(a alertsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertSessionMutation) Status() (r alertsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldStatus(ctx context.Context) (v alertsession.Status, err error) {
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
func (m *AlertSessionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAtUs sets the "started_at_us" field.
func (m *AlertSessionMutation) SetStartedAtUs(i int64) {
	m.started_at_us = &i
	m.addstarted_at_us = nil
}

// StartedAtUs returns the value of the "started_at_us" field in the mutation.
func (m *AlertSessionMutation) StartedAtUs() (r int64, exists bool) {
	v := m.started_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAtUs returns the old "started_at_us" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldStartedAtUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAtUs: %w", err)
	}
	return oldValue.StartedAtUs, nil
}

// AddStartedAtUs adds i to the "started_at_us" field.
func (m *AlertSessionMutation) AddStartedAtUs(i int64) {
	if m.addstarted_at_us != nil {
		*m.addstarted_at_us += i
	} else {
		m.addstarted_at_us = &i
	}
}

// AddedStartedAtUs returns the value that was added to the "started_at_us" field in this mutation.
func (m *AlertSessionMutation) AddedStartedAtUs() (r int64, exists bool) {
	v := m.addstarted_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartedAtUs resets all changes to the "started_at_us" field.
func (m *AlertSessionMutation) ResetStartedAtUs() {
	m.started_at_us = nil
	m.addstarted_at_us = nil
}

// SetCompletedAtUs sets the "completed_at_us" field.
func (m *AlertSessionMutation) SetCompletedAtUs(i int64) {
	m.completed_at_us = &i
	m.addcompleted_at_us = nil
}

// CompletedAtUs returns the value of the "completed_at_us" field in the mutation.
func (m *AlertSessionMutation) CompletedAtUs() (r int64, exists bool) {
	v := m.completed_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAtUs returns the old "completed_at_us" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldCompletedAtUs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAtUs: %w", err)
	}
	return oldValue.CompletedAtUs, nil
}

// AddCompletedAtUs adds i to the "completed_at_us" field.
func (m *AlertSessionMutation) AddCompletedAtUs(i int64) {
	if m.addcompleted_at_us != nil {
		*m.addcompleted_at_us += i
	} else {
		m.addcompleted_at_us = &i
	}
}

// AddedCompletedAtUs returns the value that was added to the "completed_at_us" field in this mutation.
func (m *AlertSessionMutation) AddedCompletedAtUs() (r int64, exists bool) {
	v := m.addcompleted_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAtUs clears the value of the "completed_at_us" field.
func (m *AlertSessionMutation) ClearCompletedAtUs() {
	m.completed_at_us = nil
	m.addcompleted_at_us = nil
	m.clearedFields[alertsession.FieldCompletedAtUs] = struct{}{}
}

// CompletedAtUsCleared returns if the "completed_at_us" field was cleared in this mutation.
func (m *AlertSessionMutation) CompletedAtUsCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldCompletedAtUs]
	return ok
}

// ResetCompletedAtUs resets all changes to the "completed_at_us" field.
func (m *AlertSessionMutation) ResetCompletedAtUs() {
	m.completed_at_us = nil
	m.addcompleted_at_us = nil
	delete(m.clearedFields, alertsession.FieldCompletedAtUs)
}

// SetFinalAnalysis sets the "final_analysis" field.
func (m *AlertSessionMutation) SetFinalAnalysis(s string) {
	m.final_analysis = &s
}

// FinalAnalysis returns the value of the "final_analysis" field in the mutation.
func (m *AlertSessionMutation) FinalAnalysis() (r string, exists bool) {
	v := m.final_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnalysis returns the old "final_analysis" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldFinalAnalysis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnalysis: %w", err)
	}
	return oldValue.FinalAnalysis, nil
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (m *AlertSessionMutation) ClearFinalAnalysis() {
	m.final_analysis = nil
	m.clearedFields[alertsession.FieldFinalAnalysis] = struct{}{}
}

// FinalAnalysisCleared returns if the "final_analysis" field was cleared in this mutation.
func (m *AlertSessionMutation) FinalAnalysisCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldFinalAnalysis]
	return ok
}

// ResetFinalAnalysis resets all changes to the "final_analysis" field.
func (m *AlertSessionMutation) ResetFinalAnalysis() {
	m.final_analysis = nil
	delete(m.clearedFields, alertsession.FieldFinalAnalysis)
}

// SetErrorMessage sets the "error_message" field.
func (m *AlertSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AlertSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AlertSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[alertsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AlertSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AlertSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, alertsession.FieldErrorMessage)
}

// SetSessionMetadata sets the "session_metadata" field.
func (m *AlertSessionMutation) SetSessionMetadata(value map[string]interface{}) {
	m.session_metadata = &value
}

// SessionMetadata returns the value of the "session_metadata" field in the mutation.
func (m *AlertSessionMutation) SessionMetadata() (r map[string]interface{}, exists bool) {
	v := m.session_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMetadata returns the old "session_metadata" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldSessionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMetadata: %w", err)
	}
	return oldValue.SessionMetadata, nil
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (m *AlertSessionMutation) ClearSessionMetadata() {
	m.session_metadata = nil
	m.clearedFields[alertsession.FieldSessionMetadata] = struct{}{}
}

// SessionMetadataCleared returns if the "session_metadata" field was cleared in this mutation.
func (m *AlertSessionMutation) SessionMetadataCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldSessionMetadata]
	return ok
}

// ResetSessionMetadata resets all changes to the "session_metadata" field.
func (m *AlertSessionMutation) ResetSessionMetadata() {
	m.session_metadata = nil
	delete(m.clearedFields, alertsession.FieldSessionMetadata)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by ids.
func (m *AlertSessionMutation) AddLlmInteractionIDs(ids ...string) {
	if m.llm_interactions == nil {
		m.llm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_interactions[ids[i]] = struct{}{}
	}
}

// ClearLlmInteractions clears the "llm_interactions" edge to the LLMInteraction entity.
func (m *AlertSessionMutation) ClearLlmInteractions() {
	m.clearedllm_interactions = true
}

// LlmInteractionsCleared reports if the "llm_interactions" edge to the LLMInteraction entity was cleared.
func (m *AlertSessionMutation) LlmInteractionsCleared() bool {
	return m.clearedllm_interactions
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (m *AlertSessionMutation) RemoveLlmInteractionIDs(ids ...string) {
	if m.removedllm_interactions == nil {
		m.removedllm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_interactions, ids[i])
		m.removedllm_interactions[ids[i]] = struct{}{}
	}
}

// RemovedLlmInteractions returns the removed IDs of the "llm_interactions" edge to the LLMInteraction entity.
func (m *AlertSessionMutation) RemovedLlmInteractionsIDs() (ids []string) {
	for id := range m.removedllm_interactions {
		ids = append(ids, id)
	}
	return
}

// LlmInteractionsIDs returns the "llm_interactions" edge IDs in the mutation.
func (m *AlertSessionMutation) LlmInteractionsIDs() (ids []string) {
	for id := range m.llm_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetLlmInteractions resets all changes to the "llm_interactions" edge.
func (m *AlertSessionMutation) ResetLlmInteractions() {
	m.llm_interactions = nil
	m.clearedllm_interactions = false
	m.removedllm_interactions = nil
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by ids.
func (m *AlertSessionMutation) AddMcpInteractionIDs(ids ...string) {
	if m.mcp_interactions == nil {
		m.mcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.mcp_interactions[ids[i]] = struct{}{}
	}
}

// ClearMcpInteractions clears the "mcp_interactions" edge to the MCPInteraction entity.
func (m *AlertSessionMutation) ClearMcpInteractions() {
	m.clearedmcp_interactions = true
}

// McpInteractionsCleared reports if the "mcp_interactions" edge to the MCPInteraction entity was cleared.
func (m *AlertSessionMutation) McpInteractionsCleared() bool {
	return m.clearedmcp_interactions
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (m *AlertSessionMutation) RemoveMcpInteractionIDs(ids ...string) {
	if m.removedmcp_interactions == nil {
		m.removedmcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mcp_interactions, ids[i])
		m.removedmcp_interactions[ids[i]] = struct{}{}
	}
}

// RemovedMcpInteractions returns the removed IDs of the "mcp_interactions" edge to the MCPInteraction entity.
func (m *AlertSessionMutation) RemovedMcpInteractionsIDs() (ids []string) {
	for id := range m.removedmcp_interactions {
		ids = append(ids, id)
	}
	return
}

// McpInteractionsIDs returns the "mcp_interactions" edge IDs in the mutation.
func (m *AlertSessionMutation) McpInteractionsIDs() (ids []string) {
	for id := range m.mcp_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetMcpInteractions resets all changes to the "mcp_interactions" edge.
func (m *AlertSessionMutation) ResetMcpInteractions() {
	m.mcp_interactions = nil
	m.clearedmcp_interactions = false
	m.removedmcp_interactions = nil
}

// Where appends a list predicates to the AlertSessionMutation builder.
func (m *AlertSessionMutation) Where(ps ...predicate.AlertSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertSession).
func (m *AlertSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.alert_id != nil {
		fields = append(fields, alertsession.FieldAlertID)
	}
	if m.alert_data != nil {
		fields = append(fields, alertsession.FieldAlertData)
	}
	if m.agent_type != nil {
		fields = append(fields, alertsession.FieldAgentType)
	}
	if m.alert_type != nil {
		fields = append(fields, alertsession.FieldAlertType)
	}
	if m.status != nil {
		fields = append(fields, alertsession.FieldStatus)
	}
	if m.started_at_us != nil {
		fields = append(fields, alertsession.FieldStartedAtUs)
	}
	if m.completed_at_us != nil {
		fields = append(fields, alertsession.FieldCompletedAtUs)
	}
	if m.final_analysis != nil {
		fields = append(fields, alertsession.FieldFinalAnalysis)
	}
	if m.error_message != nil {
		fields = append(fields, alertsession.FieldErrorMessage)
	}
	if m.session_metadata != nil {
		fields = append(fields, alertsession.FieldSessionMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertsession.FieldAlertID:
		return m.AlertID()
	case alertsession.FieldAlertData:
		return m.AlertData()
	case alertsession.FieldAgentType:
		return m.AgentType()
	case alertsession.FieldAlertType:
		return m.AlertType()
	case alertsession.FieldStatus:
		return m.Status()
	case alertsession.FieldStartedAtUs:
		return m.StartedAtUs()
	case alertsession.FieldCompletedAtUs:
		return m.CompletedAtUs()
	case alertsession.FieldFinalAnalysis:
		return m.FinalAnalysis()
	case alertsession.FieldErrorMessage:
		return m.ErrorMessage()
	case alertsession.FieldSessionMetadata:
		return m.SessionMetadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertsession.FieldAlertID:
		return m.OldAlertID(ctx)
	case alertsession.FieldAlertData:
		return m.OldAlertData(ctx)
	case alertsession.FieldAgentType:
		return m.OldAgentType(ctx)
	case alertsession.FieldAlertType:
		return m.OldAlertType(ctx)
	case alertsession.FieldStatus:
		return m.OldStatus(ctx)
	case alertsession.FieldStartedAtUs:
		return m.OldStartedAtUs(ctx)
	case alertsession.FieldCompletedAtUs:
		return m.OldCompletedAtUs(ctx)
	case alertsession.FieldFinalAnalysis:
		return m.OldFinalAnalysis(ctx)
	case alertsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case alertsession.FieldSessionMetadata:
		return m.OldSessionMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown AlertSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertsession.FieldAlertID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertID(v)
		return nil
	case alertsession.FieldAlertData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertData(v)
		return nil
	case alertsession.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case alertsession.FieldAlertType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertType(v)
		return nil
	case alertsession.FieldStatus:
		v, ok := value.(alertsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alertsession.FieldStartedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAtUs(v)
		return nil
	case alertsession.FieldCompletedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAtUs(v)
		return nil
	case alertsession.FieldFinalAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnalysis(v)
		return nil
	case alertsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case alertsession.FieldSessionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown AlertSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertSessionMutation) AddedFields() []string {
	var fields []string
	if m.addstarted_at_us != nil {
		fields = append(fields, alertsession.FieldStartedAtUs)
	}
	if m.addcompleted_at_us != nil {
		fields = append(fields, alertsession.FieldCompletedAtUs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alertsession.FieldStartedAtUs:
		return m.AddedStartedAtUs()
	case alertsession.FieldCompletedAtUs:
		return m.AddedCompletedAtUs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alertsession.FieldStartedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartedAtUs(v)
		return nil
	case alertsession.FieldCompletedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAtUs(v)
		return nil
	}
	return fmt.Errorf("unknown AlertSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alertsession.FieldCompletedAtUs) {
		fields = append(fields, alertsession.FieldCompletedAtUs)
	}
	if m.FieldCleared(alertsession.FieldFinalAnalysis) {
		fields = append(fields, alertsession.FieldFinalAnalysis)
	}
	if m.FieldCleared(alertsession.FieldErrorMessage) {
		fields = append(fields, alertsession.FieldErrorMessage)
	}
	if m.FieldCleared(alertsession.FieldSessionMetadata) {
		fields = append(fields, alertsession.FieldSessionMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertSessionMutation) ClearField(name string) error {
	switch name {
	case alertsession.FieldCompletedAtUs:
		m.ClearCompletedAtUs()
		return nil
	case alertsession.FieldFinalAnalysis:
		m.ClearFinalAnalysis()
		return nil
	case alertsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case alertsession.FieldSessionMetadata:
		m.ClearSessionMetadata()
		return nil
	}
	return fmt.Errorf("unknown AlertSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertSessionMutation) ResetField(name string) error {
	switch name {
	case alertsession.FieldAlertID:
		m.ResetAlertID()
		return nil
	case alertsession.FieldAlertData:
		m.ResetAlertData()
		return nil
	case alertsession.FieldAgentType:
		m.ResetAgentType()
		return nil
	case alertsession.FieldAlertType:
		m.ResetAlertType()
		return nil
	case alertsession.FieldStatus:
		m.ResetStatus()
		return nil
	case alertsession.FieldStartedAtUs:
		m.ResetStartedAtUs()
		return nil
	case alertsession.FieldCompletedAtUs:
		m.ResetCompletedAtUs()
		return nil
	case alertsession.FieldFinalAnalysis:
		m.ResetFinalAnalysis()
		return nil
	case alertsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case alertsession.FieldSessionMetadata:
		m.ResetSessionMetadata()
		return nil
	}
	return fmt.Errorf("unknown AlertSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.llm_interactions != nil {
		edges = append(edges, alertsession.EdgeLlmInteractions)
	}
	if m.mcp_interactions != nil {
		edges = append(edges, alertsession.EdgeMcpInteractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alertsession.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.llm_interactions))
		for id := range m.llm_interactions {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.mcp_interactions))
		for id := range m.mcp_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedllm_interactions != nil {
		edges = append(edges, alertsession.EdgeLlmInteractions)
	}
	if m.removedmcp_interactions != nil {
		edges = append(edges, alertsession.EdgeMcpInteractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case alertsession.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.removedllm_interactions))
		for id := range m.removedllm_interactions {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.removedmcp_interactions))
		for id := range m.removedmcp_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedllm_interactions {
		edges = append(edges, alertsession.EdgeLlmInteractions)
	}
	if m.clearedmcp_interactions {
		edges = append(edges, alertsession.EdgeMcpInteractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case alertsession.EdgeLlmInteractions:
		return m.clearedllm_interactions
	case alertsession.EdgeMcpInteractions:
		return m.clearedmcp_interactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AlertSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertSessionMutation) ResetEdge(name string) error {
	switch name {
	case alertsession.EdgeLlmInteractions:
		m.ResetLlmInteractions()
		return nil
	case alertsession.EdgeMcpInteractions:
		m.ResetMcpInteractions()
		return nil
	}
	return fmt.Errorf("unknown AlertSession edge %s", name)
}

// LLMInteractionMutation represents an operation that mutates the LLMInteraction nodes in the graph.
type LLMInteractionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	timestamp_us     *int64
	addtimestamp_us  *int64
	step_description *string
	prompt           *string
	response         *string
	model_name       *string
	duration_ms      *int64
	addduration_ms   *int64
	error_message    *string
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*LLMInteraction, error)
	predicates       []predicate.LLMInteraction
}

var _ ent.Mutation = (*LLMInteractionMutation)(nil)

// llminteractionOption allows management of the mutation configuration using functional options.
type llminteractionOption func(*LLMInteractionMutation)

// newLLMInteractionMutation creates new mutation for the LLMInteraction entity.
func newLLMInteractionMutation(c config, op Op, opts ...llminteractionOption) *LLMInteractionMutation {
	m := &LLMInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMInteractionID sets the ID field of the mutation.
func withLLMInteractionID(id string) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMInteraction
		)
		m.oldValue = func(ctx context.Context) (*LLMInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMInteraction sets the old LLMInteraction of the mutation.
func withLLMInteraction(node *LLMInteraction) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		m.oldValue = func(context.Context) (*LLMInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMInteraction entities.
func (m *LLMInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LLMInteractionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LLMInteractionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LLMInteractionMutation) ResetSessionID() {
	m.session = nil
}

// SetTimestampUs sets the "timestamp_us" field.
func (m *LLMInteractionMutation) SetTimestampUs(i int64) {
	m.timestamp_us = &i
	m.addtimestamp_us = nil
}

// TimestampUs returns the value of the "timestamp_us" field in the mutation.
func (m *LLMInteractionMutation) TimestampUs() (r int64, exists bool) {
	v := m.timestamp_us
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampUs returns the old "timestamp_us" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldTimestampUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampUs: %w", err)
	}
	return oldValue.TimestampUs, nil
}

// AddTimestampUs adds i to the "timestamp_us" field.
func (m *LLMInteractionMutation) AddTimestampUs(i int64) {
	if m.addtimestamp_us != nil {
		*m.addtimestamp_us += i
	} else {
		m.addtimestamp_us = &i
	}
}

// AddedTimestampUs returns the value that was added to the "timestamp_us" field in this mutation.
func (m *LLMInteractionMutation) AddedTimestampUs() (r int64, exists bool) {
	v := m.addtimestamp_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestampUs resets all changes to the "timestamp_us" field.
func (m *LLMInteractionMutation) ResetTimestampUs() {
	m.timestamp_us = nil
	m.addtimestamp_us = nil
}

// SetStepDescription sets the "step_description" field.
func (m *LLMInteractionMutation) SetStepDescription(s string) {
	m.step_description = &s
}

// StepDescription returns the value of the "step_description" field in the mutation.
func (m *LLMInteractionMutation) StepDescription() (r string, exists bool) {
	v := m.step_description
	if v == nil {
		return
	}
	return *v, true
}

// OldStepDescription returns the old "step_description" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldStepDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepDescription: %w", err)
	}
	return oldValue.StepDescription, nil
}

// ResetStepDescription resets all changes to the "step_description" field.
func (m *LLMInteractionMutation) ResetStepDescription() {
	m.step_description = nil
}

// SetPrompt sets the "prompt" field.
func (m *LLMInteractionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *LLMInteractionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *LLMInteractionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetResponse sets the "response" field.
func (m *LLMInteractionMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *LLMInteractionMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *LLMInteractionMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[llminteraction.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *LLMInteractionMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *LLMInteractionMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, llminteraction.FieldResponse)
}

// SetModelName sets the "model_name" field.
func (m *LLMInteractionMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *LLMInteractionMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *LLMInteractionMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[llminteraction.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *LLMInteractionMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *LLMInteractionMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, llminteraction.FieldModelName)
}

// SetDurationMs sets the "duration_ms" field.
func (m *LLMInteractionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LLMInteractionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LLMInteractionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LLMInteractionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LLMInteractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llminteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llminteraction.FieldErrorMessage)
}

// ClearSession clears the "session" edge to the AlertSession entity.
func (m *LLMInteractionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[llminteraction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AlertSession entity was cleared.
func (m *LLMInteractionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *LLMInteractionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *LLMInteractionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the LLMInteractionMutation builder.
func (m *LLMInteractionMutation) Where(ps ...predicate.LLMInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMInteraction).
func (m *LLMInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMInteractionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, llminteraction.FieldSessionID)
	}
	if m.timestamp_us != nil {
		fields = append(fields, llminteraction.FieldTimestampUs)
	}
	if m.step_description != nil {
		fields = append(fields, llminteraction.FieldStepDescription)
	}
	if m.prompt != nil {
		fields = append(fields, llminteraction.FieldPrompt)
	}
	if m.response != nil {
		fields = append(fields, llminteraction.FieldResponse)
	}
	if m.model_name != nil {
		fields = append(fields, llminteraction.FieldModelName)
	}
	if m.duration_ms != nil {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldSessionID:
		return m.SessionID()
	case llminteraction.FieldTimestampUs:
		return m.TimestampUs()
	case llminteraction.FieldStepDescription:
		return m.StepDescription()
	case llminteraction.FieldPrompt:
		return m.Prompt()
	case llminteraction.FieldResponse:
		return m.Response()
	case llminteraction.FieldModelName:
		return m.ModelName()
	case llminteraction.FieldDurationMs:
		return m.DurationMs()
	case llminteraction.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llminteraction.FieldSessionID:
		return m.OldSessionID(ctx)
	case llminteraction.FieldTimestampUs:
		return m.OldTimestampUs(ctx)
	case llminteraction.FieldStepDescription:
		return m.OldStepDescription(ctx)
	case llminteraction.FieldPrompt:
		return m.OldPrompt(ctx)
	case llminteraction.FieldResponse:
		return m.OldResponse(ctx)
	case llminteraction.FieldModelName:
		return m.OldModelName(ctx)
	case llminteraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case llminteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case llminteraction.FieldTimestampUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampUs(v)
		return nil
	case llminteraction.FieldStepDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepDescription(v)
		return nil
	case llminteraction.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case llminteraction.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case llminteraction.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case llminteraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case llminteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMInteractionMutation) AddedFields() []string {
	var fields []string
	if m.addtimestamp_us != nil {
		fields = append(fields, llminteraction.FieldTimestampUs)
	}
	if m.addduration_ms != nil {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldTimestampUs:
		return m.AddedTimestampUs()
	case llminteraction.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldTimestampUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestampUs(v)
		return nil
	case llminteraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llminteraction.FieldResponse) {
		fields = append(fields, llminteraction.FieldResponse)
	}
	if m.FieldCleared(llminteraction.FieldModelName) {
		fields = append(fields, llminteraction.FieldModelName)
	}
	if m.FieldCleared(llminteraction.FieldErrorMessage) {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ClearField(name string) error {
	switch name {
	case llminteraction.FieldResponse:
		m.ClearResponse()
		return nil
	case llminteraction.FieldModelName:
		m.ClearModelName()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ResetField(name string) error {
	switch name {
	case llminteraction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case llminteraction.FieldTimestampUs:
		m.ResetTimestampUs()
		return nil
	case llminteraction.FieldStepDescription:
		m.ResetStepDescription()
		return nil
	case llminteraction.FieldPrompt:
		m.ResetPrompt()
		return nil
	case llminteraction.FieldResponse:
		m.ResetResponse()
		return nil
	case llminteraction.FieldModelName:
		m.ResetModelName()
		return nil
	case llminteraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, llminteraction.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case llminteraction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, llminteraction.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case llminteraction.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMInteractionMutation) ClearEdge(name string) error {
	switch name {
	case llminteraction.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMInteractionMutation) ResetEdge(name string) error {
	switch name {
	case llminteraction.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction edge %s", name)
}

// MCPInteractionMutation represents an operation that mutates the MCPInteraction nodes in the graph.
type MCPInteractionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	timestamp_us    *int64
	addtimestamp_us *int64
	server_name     *string
	tool_name       *string
	tool_arguments  *map[string]interface{}
	tool_result     *map[string]interface{}
	duration_ms     *int64
	addduration_ms  *int64
	error_message   *string
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*MCPInteraction, error)
	predicates      []predicate.MCPInteraction
}

var _ ent.Mutation = (*MCPInteractionMutation)(nil)

// mcpinteractionOption allows management of the mutation configuration using functional options.
type mcpinteractionOption func(*MCPInteractionMutation)

// newMCPInteractionMutation creates new mutation for the MCPInteraction entity.
func newMCPInteractionMutation(c config, op Op, opts ...mcpinteractionOption) *MCPInteractionMutation {
	m := &MCPInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeMCPInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMCPInteractionID sets the ID field of the mutation.
func withMCPInteractionID(id string) mcpinteractionOption {
	return func(m *MCPInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *MCPInteraction
		)
		m.oldValue = func(ctx context.Context) (*MCPInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MCPInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMCPInteraction sets the old MCPInteraction of the mutation.
func withMCPInteraction(node *MCPInteraction) mcpinteractionOption {
	return func(m *MCPInteractionMutation) {
		m.oldValue = func(context.Context) (*MCPInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MCPInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MCPInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MCPInteraction entities.
func (m *MCPInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MCPInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MCPInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MCPInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MCPInteractionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MCPInteractionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MCPInteractionMutation) ResetSessionID() {
	m.session = nil
}

// SetTimestampUs sets the "timestamp_us" field.
func (m *MCPInteractionMutation) SetTimestampUs(i int64) {
	m.timestamp_us = &i
	m.addtimestamp_us = nil
}

// TimestampUs returns the value of the "timestamp_us" field in the mutation.
func (m *MCPInteractionMutation) TimestampUs() (r int64, exists bool) {
	v := m.timestamp_us
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampUs returns the old "timestamp_us" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldTimestampUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampUs: %w", err)
	}
	return oldValue.TimestampUs, nil
}

// AddTimestampUs adds i to the "timestamp_us" field.
func (m *MCPInteractionMutation) AddTimestampUs(i int64) {
	if m.addtimestamp_us != nil {
		*m.addtimestamp_us += i
	} else {
		m.addtimestamp_us = &i
	}
}

// AddedTimestampUs returns the value that was added to the "timestamp_us" field in this mutation.
func (m *MCPInteractionMutation) AddedTimestampUs() (r int64, exists bool) {
	v := m.addtimestamp_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestampUs resets all changes to the "timestamp_us" field.
func (m *MCPInteractionMutation) ResetTimestampUs() {
	m.timestamp_us = nil
	m.addtimestamp_us = nil
}

// SetServerName sets the "server_name" field.
func (m *MCPInteractionMutation) SetServerName(s string) {
	m.server_name = &s
}

// ServerName returns the value of the "server_name" field in the mutation.
func (m *MCPInteractionMutation) ServerName() (r string, exists bool) {
	v := m.server_name
	if v == nil {
		return
	}
	return *v, true
}

// OldServerName returns the old "server_name" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldServerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerName: %w", err)
	}
	return oldValue.ServerName, nil
}

// ResetServerName resets all changes to the "server_name" field.
func (m *MCPInteractionMutation) ResetServerName() {
	m.server_name = nil
}

// SetToolName sets the "tool_name" field.
func (m *MCPInteractionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *MCPInteractionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *MCPInteractionMutation) ResetToolName() {
	m.tool_name = nil
}

// SetToolArguments sets the "tool_arguments" field.
func (m *MCPInteractionMutation) SetToolArguments(value map[string]interface{}) {
	m.tool_arguments = &value
}

// ToolArguments returns the value of the "tool_arguments" field in the mutation.
func (m *MCPInteractionMutation) ToolArguments() (r map[string]interface{}, exists bool) {
	v := m.tool_arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldToolArguments returns the old "tool_arguments" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolArguments: %w", err)
	}
	return oldValue.ToolArguments, nil
}

// ClearToolArguments clears the value of the "tool_arguments" field.
func (m *MCPInteractionMutation) ClearToolArguments() {
	m.tool_arguments = nil
	m.clearedFields[mcpinteraction.FieldToolArguments] = struct{}{}
}

// ToolArgumentsCleared returns if the "tool_arguments" field was cleared in this mutation.
func (m *MCPInteractionMutation) ToolArgumentsCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldToolArguments]
	return ok
}

// ResetToolArguments resets all changes to the "tool_arguments" field.
func (m *MCPInteractionMutation) ResetToolArguments() {
	m.tool_arguments = nil
	delete(m.clearedFields, mcpinteraction.FieldToolArguments)
}

// SetToolResult sets the "tool_result" field.
func (m *MCPInteractionMutation) SetToolResult(value map[string]interface{}) {
	m.tool_result = &value
}

// ToolResult returns the value of the "tool_result" field in the mutation.
func (m *MCPInteractionMutation) ToolResult() (r map[string]interface{}, exists bool) {
	v := m.tool_result
	if v == nil {
		return
	}
	return *v, true
}

// OldToolResult returns the old "tool_result" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolResult: %w", err)
	}
	return oldValue.ToolResult, nil
}

// ClearToolResult clears the value of the "tool_result" field.
func (m *MCPInteractionMutation) ClearToolResult() {
	m.tool_result = nil
	m.clearedFields[mcpinteraction.FieldToolResult] = struct{}{}
}

// ToolResultCleared returns if the "tool_result" field was cleared in this mutation.
func (m *MCPInteractionMutation) ToolResultCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldToolResult]
	return ok
}

// ResetToolResult resets all changes to the "tool_result" field.
func (m *MCPInteractionMutation) ResetToolResult() {
	m.tool_result = nil
	delete(m.clearedFields, mcpinteraction.FieldToolResult)
}

// SetDurationMs sets the "duration_ms" field.
func (m *MCPInteractionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *MCPInteractionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *MCPInteractionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *MCPInteractionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *MCPInteractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *MCPInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MCPInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MCPInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[mcpinteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MCPInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MCPInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, mcpinteraction.FieldErrorMessage)
}

// ClearSession clears the "session" edge to the AlertSession entity.
func (m *MCPInteractionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[mcpinteraction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AlertSession entity was cleared.
func (m *MCPInteractionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *MCPInteractionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *MCPInteractionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the MCPInteractionMutation builder.
func (m *MCPInteractionMutation) Where(ps ...predicate.MCPInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MCPInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MCPInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MCPInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MCPInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MCPInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MCPInteraction).
func (m *MCPInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MCPInteractionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, mcpinteraction.FieldSessionID)
	}
	if m.timestamp_us != nil {
		fields = append(fields, mcpinteraction.FieldTimestampUs)
	}
	if m.server_name != nil {
		fields = append(fields, mcpinteraction.FieldServerName)
	}
	if m.tool_name != nil {
		fields = append(fields, mcpinteraction.FieldToolName)
	}
	if m.tool_arguments != nil {
		fields = append(fields, mcpinteraction.FieldToolArguments)
	}
	if m.tool_result != nil {
		fields = append(fields, mcpinteraction.FieldToolResult)
	}
	if m.duration_ms != nil {
		fields = append(fields, mcpinteraction.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, mcpinteraction.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MCPInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mcpinteraction.FieldSessionID:
		return m.SessionID()
	case mcpinteraction.FieldTimestampUs:
		return m.TimestampUs()
	case mcpinteraction.FieldServerName:
		return m.ServerName()
	case mcpinteraction.FieldToolName:
		return m.ToolName()
	case mcpinteraction.FieldToolArguments:
		return m.ToolArguments()
	case mcpinteraction.FieldToolResult:
		return m.ToolResult()
	case mcpinteraction.FieldDurationMs:
		return m.DurationMs()
	case mcpinteraction.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MCPInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mcpinteraction.FieldSessionID:
		return m.OldSessionID(ctx)
	case mcpinteraction.FieldTimestampUs:
		return m.OldTimestampUs(ctx)
	case mcpinteraction.FieldServerName:
		return m.OldServerName(ctx)
	case mcpinteraction.FieldToolName:
		return m.OldToolName(ctx)
	case mcpinteraction.FieldToolArguments:
		return m.OldToolArguments(ctx)
	case mcpinteraction.FieldToolResult:
		return m.OldToolResult(ctx)
	case mcpinteraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case mcpinteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown MCPInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCPInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mcpinteraction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case mcpinteraction.FieldTimestampUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampUs(v)
		return nil
	case mcpinteraction.FieldServerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerName(v)
		return nil
	case mcpinteraction.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case mcpinteraction.FieldToolArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolArguments(v)
		return nil
	case mcpinteraction.FieldToolResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolResult(v)
		return nil
	case mcpinteraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case mcpinteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MCPInteractionMutation) AddedFields() []string {
	var fields []string
	if m.addtimestamp_us != nil {
		fields = append(fields, mcpinteraction.FieldTimestampUs)
	}
	if m.addduration_ms != nil {
		fields = append(fields, mcpinteraction.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MCPInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mcpinteraction.FieldTimestampUs:
		return m.AddedTimestampUs()
	case mcpinteraction.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCPInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mcpinteraction.FieldTimestampUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestampUs(v)
		return nil
	case mcpinteraction.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MCPInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mcpinteraction.FieldToolArguments) {
		fields = append(fields, mcpinteraction.FieldToolArguments)
	}
	if m.FieldCleared(mcpinteraction.FieldToolResult) {
		fields = append(fields, mcpinteraction.FieldToolResult)
	}
	if m.FieldCleared(mcpinteraction.FieldErrorMessage) {
		fields = append(fields, mcpinteraction.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MCPInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MCPInteractionMutation) ClearField(name string) error {
	switch name {
	case mcpinteraction.FieldToolArguments:
		m.ClearToolArguments()
		return nil
	case mcpinteraction.FieldToolResult:
		m.ClearToolResult()
		return nil
	case mcpinteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MCPInteractionMutation) ResetField(name string) error {
	switch name {
	case mcpinteraction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case mcpinteraction.FieldTimestampUs:
		m.ResetTimestampUs()
		return nil
	case mcpinteraction.FieldServerName:
		m.ResetServerName()
		return nil
	case mcpinteraction.FieldToolName:
		m.ResetToolName()
		return nil
	case mcpinteraction.FieldToolArguments:
		m.ResetToolArguments()
		return nil
	case mcpinteraction.FieldToolResult:
		m.ResetToolResult()
		return nil
	case mcpinteraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case mcpinteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MCPInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, mcpinteraction.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MCPInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mcpinteraction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MCPInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MCPInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MCPInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, mcpinteraction.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MCPInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case mcpinteraction.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MCPInteractionMutation) ClearEdge(name string) error {
	switch name {
	case mcpinteraction.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MCPInteractionMutation) ResetEdge(name string) error {
	switch name {
	case mcpinteraction.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction edge %s", name)
}
