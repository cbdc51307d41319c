// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incidentflow/triaged/ent/alertsession"
)

// AlertSession is the model entity for the AlertSession schema.
type AlertSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// External alert identifier from the alert system
	AlertID string `json:"alert_id,omitempty"`
	// Original alert payload and context data
	AlertData map[string]interface{} `json:"alert_data,omitempty"`
	// Agent handling the session (e.g. 'KubernetesAgent')
	AgentType string `json:"agent_type,omitempty"`
	// Alert classification used for agent selection
	AlertType string `json:"alert_type,omitempty"`
	// Status holds the value of the "status" field.
	Status alertsession.Status `json:"status,omitempty"`
	// Session start, microseconds since epoch UTC
	StartedAtUs int64 `json:"started_at_us,omitempty"`
	// Set exactly once, at the first terminal transition
	CompletedAtUs *int64 `json:"completed_at_us,omitempty"`
	// FinalAnalysis holds the value of the "final_analysis" field.
	FinalAnalysis *string `json:"final_analysis,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// SessionMetadata holds the value of the "session_metadata" field.
	SessionMetadata map[string]interface{} `json:"session_metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertSessionQuery when eager-loading is set.
	Edges        AlertSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertSessionEdges holds the relations/edges for other nodes in the graph.
type AlertSessionEdges struct {
	// LlmInteractions holds the value of the llm_interactions edge.
	LlmInteractions []*LLMInteraction `json:"llm_interactions,omitempty"`
	// McpInteractions holds the value of the mcp_interactions edge.
	McpInteractions []*MCPInteraction `json:"mcp_interactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LlmInteractionsOrErr returns the LlmInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) LlmInteractionsOrErr() ([]*LLMInteraction, error) {
	if e.loadedTypes[0] {
		return e.LlmInteractions, nil
	}
	return nil, &NotLoadedError{edge: "llm_interactions"}
}

// McpInteractionsOrErr returns the McpInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) McpInteractionsOrErr() ([]*MCPInteraction, error) {
	if e.loadedTypes[1] {
		return e.McpInteractions, nil
	}
	return nil, &NotLoadedError{edge: "mcp_interactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alertsession.FieldAlertData, alertsession.FieldSessionMetadata:
			values[i] = new([]byte)
		case alertsession.FieldStartedAtUs, alertsession.FieldCompletedAtUs:
			values[i] = new(sql.NullInt64)
		case alertsession.FieldID, alertsession.FieldAlertID, alertsession.FieldAgentType, alertsession.FieldAlertType, alertsession.FieldStatus, alertsession.FieldFinalAnalysis, alertsession.FieldErrorMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertSession fields.
func (_m *AlertSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alertsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alertsession.FieldAlertID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_id", values[i])
			} else if value.Valid {
				_m.AlertID = value.String
			}
		case alertsession.FieldAlertData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alert_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AlertData); err != nil {
					return fmt.Errorf("unmarshal field alert_data: %w", err)
				}
			}
		case alertsession.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = value.String
			}
		case alertsession.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = value.String
			}
		case alertsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = alertsession.Status(value.String)
			}
		case alertsession.FieldStartedAtUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field started_at_us", values[i])
			} else if value.Valid {
				_m.StartedAtUs = value.Int64
			}
		case alertsession.FieldCompletedAtUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at_us", values[i])
			} else if value.Valid {
				_m.CompletedAtUs = new(int64)
				*_m.CompletedAtUs = value.Int64
			}
		case alertsession.FieldFinalAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_analysis", values[i])
			} else if value.Valid {
				_m.FinalAnalysis = new(string)
				*_m.FinalAnalysis = value.String
			}
		case alertsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case alertsession.FieldSessionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionMetadata); err != nil {
					return fmt.Errorf("unmarshal field session_metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlertSession.
// This includes values selected through modifiers, order, etc.
func (_m *AlertSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLlmInteractions queries the "llm_interactions" edge of the AlertSession entity.
func (_m *AlertSession) QueryLlmInteractions() *LLMInteractionQuery {
	return NewAlertSessionClient(_m.config).QueryLlmInteractions(_m)
}

// QueryMcpInteractions queries the "mcp_interactions" edge of the AlertSession entity.
func (_m *AlertSession) QueryMcpInteractions() *MCPInteractionQuery {
	return NewAlertSessionClient(_m.config).QueryMcpInteractions(_m)
}

// Update returns a builder for updating this AlertSession.
// Note that you need to call AlertSession.Unwrap() before calling this method if this AlertSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertSession) Update() *AlertSessionUpdateOne {
	return NewAlertSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertSession) Unwrap() *AlertSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertSession) String() string {
	var builder strings.Builder
	builder.WriteString("AlertSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("alert_id=")
	builder.WriteString(_m.AlertID)
	builder.WriteString(", ")
	builder.WriteString("alert_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertData))
	builder.WriteString(", ")
	builder.WriteString("agent_type=")
	builder.WriteString(_m.AgentType)
	builder.WriteString(", ")
	builder.WriteString("alert_type=")
	builder.WriteString(_m.AlertType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at_us=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartedAtUs))
	builder.WriteString(", ")
	if v := _m.CompletedAtUs; v != nil {
		builder.WriteString("completed_at_us=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FinalAnalysis; v != nil {
		builder.WriteString("final_analysis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("session_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionMetadata))
	builder.WriteByte(')')
	return builder.String()
}

// AlertSessions is a parsable slice of AlertSession.
type AlertSessions []*AlertSession
