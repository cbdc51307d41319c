// Code generated by ent, DO NOT EDIT.

package mcpinteraction

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mcpinteraction type in the database.
	Label = "mcp_interaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "interaction_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestampUs holds the string denoting the timestamp_us field in the database.
	FieldTimestampUs = "timestamp_us"
	// FieldServerName holds the string denoting the server_name field in the database.
	FieldServerName = "server_name"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldToolArguments holds the string denoting the tool_arguments field in the database.
	FieldToolArguments = "tool_arguments"
	// FieldToolResult holds the string denoting the tool_result field in the database.
	FieldToolResult = "tool_result"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// AlertSessionFieldID holds the string denoting the ID field of the AlertSession.
	AlertSessionFieldID = "session_id"
	// Table holds the table name of the mcpinteraction in the database.
	Table = "mcp_interactions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "mcp_interactions"
	// SessionInverseTable is the table name for the AlertSession entity.
	// It exists in this package in order to avoid circular dependency with the "alertsession" package.
	SessionInverseTable = "alert_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for mcpinteraction fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestampUs,
	FieldServerName,
	FieldToolName,
	FieldToolArguments,
	FieldToolResult,
	FieldDurationMs,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the MCPInteraction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTimestampUs orders the results by the timestamp_us field.
func ByTimestampUs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestampUs, opts...).ToFunc()
}

// ByServerName orders the results by the server_name field.
func ByServerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerName, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, AlertSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
