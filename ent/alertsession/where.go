// Code generated by ent, DO NOT EDIT.

package alertsession

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/incidentflow/triaged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldID, id))
}

// AlertID applies equality check predicate on the "alert_id" field. It's identical to AlertIDEQ.
func AlertID(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAlertID, v))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAgentType, v))
}

// AlertType applies equality check predicate on the "alert_type" field. It's identical to AlertTypeEQ.
func AlertType(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAlertType, v))
}

// StartedAtUs applies equality check predicate on the "started_at_us" field. It's identical to StartedAtUsEQ.
func StartedAtUs(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldStartedAtUs, v))
}

// CompletedAtUs applies equality check predicate on the "completed_at_us" field. It's identical to CompletedAtUsEQ.
func CompletedAtUs(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCompletedAtUs, v))
}

// FinalAnalysis applies equality check predicate on the "final_analysis" field. It's identical to FinalAnalysisEQ.
func FinalAnalysis(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldFinalAnalysis, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldErrorMessage, v))
}

// AlertIDEQ applies the EQ predicate on the "alert_id" field.
func AlertIDEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAlertID, v))
}

// AlertIDNEQ applies the NEQ predicate on the "alert_id" field.
func AlertIDNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldAlertID, v))
}

// AlertIDIn applies the In predicate on the "alert_id" field.
func AlertIDIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldAlertID, vs...))
}

// AlertIDNotIn applies the NotIn predicate on the "alert_id" field.
func AlertIDNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldAlertID, vs...))
}

// AlertIDGT applies the GT predicate on the "alert_id" field.
func AlertIDGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldAlertID, v))
}

// AlertIDGTE applies the GTE predicate on the "alert_id" field.
func AlertIDGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldAlertID, v))
}

// AlertIDLT applies the LT predicate on the "alert_id" field.
func AlertIDLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldAlertID, v))
}

// AlertIDLTE applies the LTE predicate on the "alert_id" field.
func AlertIDLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldAlertID, v))
}

// AlertIDContains applies the Contains predicate on the "alert_id" field.
func AlertIDContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldAlertID, v))
}

// AlertIDHasPrefix applies the HasPrefix predicate on the "alert_id" field.
func AlertIDHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldAlertID, v))
}

// AlertIDHasSuffix applies the HasSuffix predicate on the "alert_id" field.
func AlertIDHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldAlertID, v))
}

// AlertIDEqualFold applies the EqualFold predicate on the "alert_id" field.
func AlertIDEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldAlertID, v))
}

// AlertIDContainsFold applies the ContainsFold predicate on the "alert_id" field.
func AlertIDContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldAlertID, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldAgentType, v))
}

// AlertTypeEQ applies the EQ predicate on the "alert_type" field.
func AlertTypeEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldAlertType, v))
}

// AlertTypeNEQ applies the NEQ predicate on the "alert_type" field.
func AlertTypeNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldAlertType, v))
}

// AlertTypeIn applies the In predicate on the "alert_type" field.
func AlertTypeIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldAlertType, vs...))
}

// AlertTypeNotIn applies the NotIn predicate on the "alert_type" field.
func AlertTypeNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldAlertType, vs...))
}

// AlertTypeGT applies the GT predicate on the "alert_type" field.
func AlertTypeGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldAlertType, v))
}

// AlertTypeGTE applies the GTE predicate on the "alert_type" field.
func AlertTypeGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldAlertType, v))
}

// AlertTypeLT applies the LT predicate on the "alert_type" field.
func AlertTypeLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldAlertType, v))
}

// AlertTypeLTE applies the LTE predicate on the "alert_type" field.
func AlertTypeLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldAlertType, v))
}

// AlertTypeContains applies the Contains predicate on the "alert_type" field.
func AlertTypeContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldAlertType, v))
}

// AlertTypeHasPrefix applies the HasPrefix predicate on the "alert_type" field.
func AlertTypeHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldAlertType, v))
}

// AlertTypeHasSuffix applies the HasSuffix predicate on the "alert_type" field.
func AlertTypeHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldAlertType, v))
}

// AlertTypeEqualFold applies the EqualFold predicate on the "alert_type" field.
func AlertTypeEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldAlertType, v))
}

// AlertTypeContainsFold applies the ContainsFold predicate on the "alert_type" field.
func AlertTypeContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldAlertType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtUsEQ applies the EQ predicate on the "started_at_us" field.
func StartedAtUsEQ(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldStartedAtUs, v))
}

// StartedAtUsNEQ applies the NEQ predicate on the "started_at_us" field.
func StartedAtUsNEQ(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldStartedAtUs, v))
}

// StartedAtUsIn applies the In predicate on the "started_at_us" field.
func StartedAtUsIn(vs ...int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldStartedAtUs, vs...))
}

// StartedAtUsNotIn applies the NotIn predicate on the "started_at_us" field.
func StartedAtUsNotIn(vs ...int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldStartedAtUs, vs...))
}

// StartedAtUsGT applies the GT predicate on the "started_at_us" field.
func StartedAtUsGT(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldStartedAtUs, v))
}

// StartedAtUsGTE applies the GTE predicate on the "started_at_us" field.
func StartedAtUsGTE(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldStartedAtUs, v))
}

// StartedAtUsLT applies the LT predicate on the "started_at_us" field.
func StartedAtUsLT(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldStartedAtUs, v))
}

// StartedAtUsLTE applies the LTE predicate on the "started_at_us" field.
func StartedAtUsLTE(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldStartedAtUs, v))
}

// CompletedAtUsEQ applies the EQ predicate on the "completed_at_us" field.
func CompletedAtUsEQ(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldCompletedAtUs, v))
}

// CompletedAtUsNEQ applies the NEQ predicate on the "completed_at_us" field.
func CompletedAtUsNEQ(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldCompletedAtUs, v))
}

// CompletedAtUsIn applies the In predicate on the "completed_at_us" field.
func CompletedAtUsIn(vs ...int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldCompletedAtUs, vs...))
}

// CompletedAtUsNotIn applies the NotIn predicate on the "completed_at_us" field.
func CompletedAtUsNotIn(vs ...int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldCompletedAtUs, vs...))
}

// CompletedAtUsGT applies the GT predicate on the "completed_at_us" field.
func CompletedAtUsGT(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldCompletedAtUs, v))
}

// CompletedAtUsGTE applies the GTE predicate on the "completed_at_us" field.
func CompletedAtUsGTE(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldCompletedAtUs, v))
}

// CompletedAtUsLT applies the LT predicate on the "completed_at_us" field.
func CompletedAtUsLT(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldCompletedAtUs, v))
}

// CompletedAtUsLTE applies the LTE predicate on the "completed_at_us" field.
func CompletedAtUsLTE(v int64) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldCompletedAtUs, v))
}

// CompletedAtUsIsNil applies the IsNil predicate on the "completed_at_us" field.
func CompletedAtUsIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldCompletedAtUs))
}

// CompletedAtUsNotNil applies the NotNil predicate on the "completed_at_us" field.
func CompletedAtUsNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldCompletedAtUs))
}

// FinalAnalysisEQ applies the EQ predicate on the "final_analysis" field.
func FinalAnalysisEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldFinalAnalysis, v))
}

// FinalAnalysisNEQ applies the NEQ predicate on the "final_analysis" field.
func FinalAnalysisNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldFinalAnalysis, v))
}

// FinalAnalysisIn applies the In predicate on the "final_analysis" field.
func FinalAnalysisIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldFinalAnalysis, vs...))
}

// FinalAnalysisNotIn applies the NotIn predicate on the "final_analysis" field.
func FinalAnalysisNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldFinalAnalysis, vs...))
}

// FinalAnalysisGT applies the GT predicate on the "final_analysis" field.
func FinalAnalysisGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldFinalAnalysis, v))
}

// FinalAnalysisGTE applies the GTE predicate on the "final_analysis" field.
func FinalAnalysisGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldFinalAnalysis, v))
}

// FinalAnalysisLT applies the LT predicate on the "final_analysis" field.
func FinalAnalysisLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldFinalAnalysis, v))
}

// FinalAnalysisLTE applies the LTE predicate on the "final_analysis" field.
func FinalAnalysisLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldFinalAnalysis, v))
}

// FinalAnalysisContains applies the Contains predicate on the "final_analysis" field.
func FinalAnalysisContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldFinalAnalysis, v))
}

// FinalAnalysisHasPrefix applies the HasPrefix predicate on the "final_analysis" field.
func FinalAnalysisHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldFinalAnalysis, v))
}

// FinalAnalysisHasSuffix applies the HasSuffix predicate on the "final_analysis" field.
func FinalAnalysisHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldFinalAnalysis, v))
}

// FinalAnalysisIsNil applies the IsNil predicate on the "final_analysis" field.
func FinalAnalysisIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldFinalAnalysis))
}

// FinalAnalysisNotNil applies the NotNil predicate on the "final_analysis" field.
func FinalAnalysisNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldFinalAnalysis))
}

// FinalAnalysisEqualFold applies the EqualFold predicate on the "final_analysis" field.
func FinalAnalysisEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldFinalAnalysis, v))
}

// FinalAnalysisContainsFold applies the ContainsFold predicate on the "final_analysis" field.
func FinalAnalysisContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldFinalAnalysis, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AlertSession {
	return predicate.AlertSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SessionMetadataIsNil applies the IsNil predicate on the "session_metadata" field.
func SessionMetadataIsNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldIsNull(FieldSessionMetadata))
}

// SessionMetadataNotNil applies the NotNil predicate on the "session_metadata" field.
func SessionMetadataNotNil() predicate.AlertSession {
	return predicate.AlertSession(sql.FieldNotNull(FieldSessionMetadata))
}

// HasLlmInteractions applies the HasEdge predicate on the "llm_interactions" edge.
func HasLlmInteractions() predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmInteractionsWith applies the HasEdge predicate on the "llm_interactions" edge with a given conditions (other predicates).
func HasLlmInteractionsWith(preds ...predicate.LLMInteraction) predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := newLlmInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMcpInteractions applies the HasEdge predicate on the "mcp_interactions" edge.
func HasMcpInteractions() predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, McpInteractionsTable, McpInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMcpInteractionsWith applies the HasEdge predicate on the "mcp_interactions" edge with a given conditions (other predicates).
func HasMcpInteractionsWith(preds ...predicate.MCPInteraction) predicate.AlertSession {
	return predicate.AlertSession(func(s *sql.Selector) {
		step := newMcpInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertSession) predicate.AlertSession {
	return predicate.AlertSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertSession) predicate.AlertSession {
	return predicate.AlertSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertSession) predicate.AlertSession {
	return predicate.AlertSession(sql.NotPredicates(p))
}
