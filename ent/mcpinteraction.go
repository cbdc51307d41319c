// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incidentflow/triaged/ent/alertsession"
	"github.com/incidentflow/triaged/ent/mcpinteraction"
)

// MCPInteraction is the model entity for the MCPInteraction schema.
type MCPInteraction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Call start, microseconds since epoch UTC
	TimestampUs int64 `json:"timestamp_us,omitempty"`
	// e.g. 'kubernetes-server'
	ServerName string `json:"server_name,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// ToolArguments holds the value of the "tool_arguments" field.
	ToolArguments map[string]interface{} `json:"tool_arguments,omitempty"`
	// Structured result payload (absent on failure)
	ToolResult map[string]interface{} `json:"tool_result,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// null = success, not-null = failed
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MCPInteractionQuery when eager-loading is set.
	Edges        MCPInteractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MCPInteractionEdges holds the relations/edges for other nodes in the graph.
type MCPInteractionEdges struct {
	// Session holds the value of the session edge.
	Session *AlertSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MCPInteractionEdges) SessionOrErr() (*AlertSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alertsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MCPInteraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mcpinteraction.FieldToolArguments, mcpinteraction.FieldToolResult:
			values[i] = new([]byte)
		case mcpinteraction.FieldTimestampUs, mcpinteraction.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case mcpinteraction.FieldID, mcpinteraction.FieldSessionID, mcpinteraction.FieldServerName, mcpinteraction.FieldToolName, mcpinteraction.FieldErrorMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MCPInteraction fields.
func (_m *MCPInteraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mcpinteraction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mcpinteraction.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case mcpinteraction.FieldTimestampUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp_us", values[i])
			} else if value.Valid {
				_m.TimestampUs = value.Int64
			}
		case mcpinteraction.FieldServerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_name", values[i])
			} else if value.Valid {
				_m.ServerName = value.String
			}
		case mcpinteraction.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case mcpinteraction.FieldToolArguments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_arguments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolArguments); err != nil {
					return fmt.Errorf("unmarshal field tool_arguments: %w", err)
				}
			}
		case mcpinteraction.FieldToolResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolResult); err != nil {
					return fmt.Errorf("unmarshal field tool_result: %w", err)
				}
			}
		case mcpinteraction.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case mcpinteraction.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MCPInteraction.
// This includes values selected through modifiers, order, etc.
func (_m *MCPInteraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the MCPInteraction entity.
func (_m *MCPInteraction) QuerySession() *AlertSessionQuery {
	return NewMCPInteractionClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this MCPInteraction.
// Note that you need to call MCPInteraction.Unwrap() before calling this method if this MCPInteraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MCPInteraction) Update() *MCPInteractionUpdateOne {
	return NewMCPInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MCPInteraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MCPInteraction) Unwrap() *MCPInteraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MCPInteraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MCPInteraction) String() string {
	var builder strings.Builder
	builder.WriteString("MCPInteraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp_us=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimestampUs))
	builder.WriteString(", ")
	builder.WriteString("server_name=")
	builder.WriteString(_m.ServerName)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("tool_arguments=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolArguments))
	builder.WriteString(", ")
	builder.WriteString("tool_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolResult))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// MCPInteractions is a parsable slice of MCPInteraction.
type MCPInteractions []*MCPInteraction
