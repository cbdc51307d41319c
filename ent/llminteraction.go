// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incidentflow/triaged/ent/alertsession"
	"github.com/incidentflow/triaged/ent/llminteraction"
)

// LLMInteraction is the model entity for the LLMInteraction schema.
type LLMInteraction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Exchange start, microseconds since epoch UTC
	TimestampUs int64 `json:"timestamp_us,omitempty"`
	// Human-readable step (e.g. 'initial tool selection')
	StepDescription string `json:"step_description,omitempty"`
	// Full request text sent to the provider
	Prompt string `json:"prompt,omitempty"`
	// Provider response text (empty on failure)
	Response string `json:"response,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// null = success, not-null = failed
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LLMInteractionQuery when eager-loading is set.
	Edges        LLMInteractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LLMInteractionEdges holds the relations/edges for other nodes in the graph.
type LLMInteractionEdges struct {
	// Session holds the value of the session edge.
	Session *AlertSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMInteractionEdges) SessionOrErr() (*AlertSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alertsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMInteraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llminteraction.FieldTimestampUs, llminteraction.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case llminteraction.FieldID, llminteraction.FieldSessionID, llminteraction.FieldStepDescription, llminteraction.FieldPrompt, llminteraction.FieldResponse, llminteraction.FieldModelName, llminteraction.FieldErrorMessage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMInteraction fields.
func (_m *LLMInteraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llminteraction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llminteraction.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case llminteraction.FieldTimestampUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp_us", values[i])
			} else if value.Valid {
				_m.TimestampUs = value.Int64
			}
		case llminteraction.FieldStepDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_description", values[i])
			} else if value.Valid {
				_m.StepDescription = value.String
			}
		case llminteraction.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case llminteraction.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = value.String
			}
		case llminteraction.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case llminteraction.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case llminteraction.FieldErrorMessage:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LLMInteraction.
// This includes values selected through modifiers, order, etc.
func (_m *LLMInteraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the LLMInteraction entity.
func (_m *LLMInteraction) QuerySession() *AlertSessionQuery {
	return NewLLMInteractionClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this LLMInteraction.
// Note that you need to call LLMInteraction.Unwrap() before calling this method if this LLMInteraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMInteraction) Update() *LLMInteractionUpdateOne {
	return NewLLMInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMInteraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMInteraction) Unwrap() *LLMInteraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMInteraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMInteraction) String() string {
	var builder strings.Builder
	builder.WriteString("LLMInteraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp_us=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimestampUs))
	builder.WriteString(", ")
	builder.WriteString("step_description=")
	builder.WriteString(_m.StepDescription)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(_m.Response)
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
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

// LLMInteractions is a parsable slice of LLMInteraction.
type LLMInteractions []*LLMInteraction
