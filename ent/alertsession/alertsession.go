// Code generated by ent, DO NOT EDIT.

package alertsession

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the alertsession type in the database.
	Label = "alert_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldAlertID holds the string denoting the alert_id field in the database.
	FieldAlertID = "alert_id"
	// FieldAlertData holds the string denoting the alert_data field in the database.
	FieldAlertData = "alert_data"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldAlertType holds the string denoting the alert_type field in the database.
	FieldAlertType = "alert_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAtUs holds the string denoting the started_at_us field in the database.
	FieldStartedAtUs = "started_at_us"
	// FieldCompletedAtUs holds the string denoting the completed_at_us field in the database.
	FieldCompletedAtUs = "completed_at_us"
	// FieldFinalAnalysis holds the string denoting the final_analysis field in the database.
	FieldFinalAnalysis = "final_analysis"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldSessionMetadata holds the string denoting the session_metadata field in the database.
	FieldSessionMetadata = "session_metadata"
	// EdgeLlmInteractions holds the string denoting the llm_interactions edge name in mutations.
	EdgeLlmInteractions = "llm_interactions"
	// EdgeMcpInteractions holds the string denoting the mcp_interactions edge name in mutations.
	EdgeMcpInteractions = "mcp_interactions"
	// LLMInteractionFieldID holds the string denoting the ID field of the LLMInteraction.
	LLMInteractionFieldID = "interaction_id"
	// MCPInteractionFieldID holds the string denoting the ID field of the MCPInteraction.
	MCPInteractionFieldID = "interaction_id"
	// Table holds the table name of the alertsession in the database.
	Table = "alert_sessions"
	// LlmInteractionsTable is the table that holds the llm_interactions relation/edge.
	LlmInteractionsTable = "llm_interactions"
	// LlmInteractionsInverseTable is the table name for the LLMInteraction entity.
	// It exists in this package in order to avoid circular dependency with the "llminteraction" package.
	LlmInteractionsInverseTable = "llm_interactions"
	// LlmInteractionsColumn is the table column denoting the llm_interactions relation/edge.
	LlmInteractionsColumn = "session_id"
	// McpInteractionsTable is the table that holds the mcp_interactions relation/edge.
	McpInteractionsTable = "mcp_interactions"
	// McpInteractionsInverseTable is the table name for the MCPInteraction entity.
	// It exists in this package in order to avoid circular dependency with the "mcpinteraction" package.
	McpInteractionsInverseTable = "mcp_interactions"
	// McpInteractionsColumn is the table column denoting the mcp_interactions relation/edge.
	McpInteractionsColumn = "session_id"
)

// Columns holds all SQL columns for alertsession fields.
var Columns = []string{
	FieldID,
	FieldAlertID,
	FieldAlertData,
	FieldAgentType,
	FieldAlertType,
	FieldStatus,
	FieldStartedAtUs,
	FieldCompletedAtUs,
	FieldFinalAnalysis,
	FieldErrorMessage,
	FieldSessionMetadata,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("alertsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AlertSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAlertID orders the results by the alert_id field.
func ByAlertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByAlertType orders the results by the alert_type field.
func ByAlertType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAtUs orders the results by the started_at_us field.
func ByStartedAtUs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAtUs, opts...).ToFunc()
}

// ByCompletedAtUs orders the results by the completed_at_us field.
func ByCompletedAtUs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAtUs, opts...).ToFunc()
}

// ByFinalAnalysis orders the results by the final_analysis field.
func ByFinalAnalysis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalAnalysis, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByLlmInteractionsCount orders the results by llm_interactions count.
func ByLlmInteractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLlmInteractionsStep(), opts...)
	}
}

// ByLlmInteractions orders the results by llm_interactions terms.
func ByLlmInteractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLlmInteractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMcpInteractionsCount orders the results by mcp_interactions count.
func ByMcpInteractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMcpInteractionsStep(), opts...)
	}
}

// ByMcpInteractions orders the results by mcp_interactions terms.
func ByMcpInteractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMcpInteractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLlmInteractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LlmInteractionsInverseTable, LLMInteractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
	)
}
func newMcpInteractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(McpInteractionsInverseTable, MCPInteractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, McpInteractionsTable, McpInteractionsColumn),
	)
}
