package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertSession holds the schema definition for the AlertSession entity:
// one record per alert-processing attempt.
type AlertSession struct {
	ent.Schema
}

// Fields of the AlertSession.
func (AlertSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("alert_id").
			Unique().
			Immutable().
			Comment("External alert identifier from the alert system"),
		field.JSON("alert_data", map[string]interface{}{}).
			Comment("Original alert payload and context data"),
		field.String("agent_type").
			Comment("Agent handling the session (e.g. 'KubernetesAgent')"),
		field.String("alert_type").
			Comment("Alert classification used for agent selection"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Int64("started_at_us").
			Immutable().
			Comment("Session start, microseconds since epoch UTC"),
		field.Int64("completed_at_us").
			Optional().
			Nillable().
			Comment("Set exactly once, at the first terminal transition"),
		field.Text("final_analysis").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("session_metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the AlertSession.
func (AlertSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mcp_interactions", MCPInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AlertSession.
func (AlertSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_type"),
		index.Fields("alert_type"),
		index.Fields("status", "started_at_us"),
	}
}
