package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMInteraction holds one LLM exchange (request, response, timing) for
// the session audit trail.
type LLMInteraction struct {
	ent.Schema
}

// Fields of the LLMInteraction.
func (LLMInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int64("timestamp_us").
			Immutable().
			Comment("Exchange start, microseconds since epoch UTC"),
		field.String("step_description").
			Comment("Human-readable step (e.g. 'initial tool selection')"),
		field.Text("prompt").
			Comment("Full request text sent to the provider"),
		field.Text("response").
			Optional().
			Comment("Provider response text (empty on failure)"),
		field.String("model_name").
			Optional(),
		field.Int64("duration_ms"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("null = success, not-null = failed"),
	}
}

// Edges of the LLMInteraction.
func (LLMInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("llm_interactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LLMInteraction.
func (LLMInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp_us"),
	}
}
