// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertSessionsColumns holds the columns for the "alert_sessions" table.
	AlertSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "alert_data", Type: field.TypeJSON},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "alert_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "started_at_us", Type: field.TypeInt64},
		{Name: "completed_at_us", Type: field.TypeInt64, Nullable: true},
		{Name: "final_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
	}
	// AlertSessionsTable holds the schema information for the "alert_sessions" table.
	AlertSessionsTable = &schema.Table{
		Name:       "alert_sessions",
		Columns:    AlertSessionsColumns,
		PrimaryKey: []*schema.Column{AlertSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alertsession_status",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[5]},
			},
			{
				Name:    "alertsession_agent_type",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[3]},
			},
			{
				Name:    "alertsession_alert_type",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4]},
			},
			{
				Name:    "alertsession_status_started_at_us",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[5], AlertSessionsColumns[6]},
			},
		},
	}
	// LlmInteractionsColumns holds the columns for the "llm_interactions" table.
	LlmInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp_us", Type: field.TypeInt64},
		{Name: "step_description", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// LlmInteractionsTable holds the schema information for the "llm_interactions" table.
	LlmInteractionsTable = &schema.Table{
		Name:       "llm_interactions",
		Columns:    LlmInteractionsColumns,
		PrimaryKey: []*schema.Column{LlmInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_interactions_alert_sessions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[8]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llminteraction_session_id_timestamp_us",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[8], LlmInteractionsColumns[1]},
			},
		},
	}
	// McpInteractionsColumns holds the columns for the "mcp_interactions" table.
	McpInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp_us", Type: field.TypeInt64},
		{Name: "server_name", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_result", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// McpInteractionsTable holds the schema information for the "mcp_interactions" table.
	McpInteractionsTable = &schema.Table{
		Name:       "mcp_interactions",
		Columns:    McpInteractionsColumns,
		PrimaryKey: []*schema.Column{McpInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mcp_interactions_alert_sessions_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[8]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mcpinteraction_session_id_timestamp_us",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[8], McpInteractionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertSessionsTable,
		LlmInteractionsTable,
		McpInteractionsTable,
	}
)

func init() {
	LlmInteractionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	McpInteractionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
}
