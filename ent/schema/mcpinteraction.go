package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MCPInteraction holds one tool call (arguments, result, timing) for the
// session audit trail.
type MCPInteraction struct {
	ent.Schema
}

// Fields of the MCPInteraction.
func (MCPInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int64("timestamp_us").
			Immutable().
			Comment("Call start, microseconds since epoch UTC"),
		field.String("server_name").
			Comment("e.g. 'kubernetes-server'"),
		field.String("tool_name"),
		field.JSON("tool_arguments", map[string]interface{}{}).
			Optional(),
		field.JSON("tool_result", map[string]interface{}{}).
			Optional().
			Comment("Structured result payload (absent on failure)"),
		field.Int64("duration_ms"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("null = success, not-null = failed"),
	}
}

// Edges of the MCPInteraction.
func (MCPInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("mcp_interactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MCPInteraction.
func (MCPInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp_us"),
	}
}
