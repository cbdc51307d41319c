// Code generated by ent, DO NOT EDIT.

package llminteraction

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/incidentflow/triaged/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldSessionID, v))
}

// TimestampUs applies equality check predicate on the "timestamp_us" field. It's identical to TimestampUsEQ.
func TimestampUs(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldTimestampUs, v))
}

// StepDescription applies equality check predicate on the "step_description" field. It's identical to StepDescriptionEQ.
func StepDescription(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldStepDescription, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldPrompt, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldResponse, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldModelName, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldErrorMessage, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampUsEQ applies the EQ predicate on the "timestamp_us" field.
func TimestampUsEQ(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldTimestampUs, v))
}

// TimestampUsNEQ applies the NEQ predicate on the "timestamp_us" field.
func TimestampUsNEQ(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldTimestampUs, v))
}

// TimestampUsIn applies the In predicate on the "timestamp_us" field.
func TimestampUsIn(vs ...int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldTimestampUs, vs...))
}

// TimestampUsNotIn applies the NotIn predicate on the "timestamp_us" field.
func TimestampUsNotIn(vs ...int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldTimestampUs, vs...))
}

// TimestampUsGT applies the GT predicate on the "timestamp_us" field.
func TimestampUsGT(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldTimestampUs, v))
}

// TimestampUsGTE applies the GTE predicate on the "timestamp_us" field.
func TimestampUsGTE(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldTimestampUs, v))
}

// TimestampUsLT applies the LT predicate on the "timestamp_us" field.
func TimestampUsLT(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldTimestampUs, v))
}

// TimestampUsLTE applies the LTE predicate on the "timestamp_us" field.
func TimestampUsLTE(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldTimestampUs, v))
}

// StepDescriptionEQ applies the EQ predicate on the "step_description" field.
func StepDescriptionEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldStepDescription, v))
}

// StepDescriptionNEQ applies the NEQ predicate on the "step_description" field.
func StepDescriptionNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldStepDescription, v))
}

// StepDescriptionIn applies the In predicate on the "step_description" field.
func StepDescriptionIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldStepDescription, vs...))
}

// StepDescriptionNotIn applies the NotIn predicate on the "step_description" field.
func StepDescriptionNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldStepDescription, vs...))
}

// StepDescriptionGT applies the GT predicate on the "step_description" field.
func StepDescriptionGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldStepDescription, v))
}

// StepDescriptionGTE applies the GTE predicate on the "step_description" field.
func StepDescriptionGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldStepDescription, v))
}

// StepDescriptionLT applies the LT predicate on the "step_description" field.
func StepDescriptionLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldStepDescription, v))
}

// StepDescriptionLTE applies the LTE predicate on the "step_description" field.
func StepDescriptionLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldStepDescription, v))
}

// StepDescriptionContains applies the Contains predicate on the "step_description" field.
func StepDescriptionContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldStepDescription, v))
}

// StepDescriptionHasPrefix applies the HasPrefix predicate on the "step_description" field.
func StepDescriptionHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldStepDescription, v))
}

// StepDescriptionHasSuffix applies the HasSuffix predicate on the "step_description" field.
func StepDescriptionHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldStepDescription, v))
}

// StepDescriptionEqualFold applies the EqualFold predicate on the "step_description" field.
func StepDescriptionEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldStepDescription, v))
}

// StepDescriptionContainsFold applies the ContainsFold predicate on the "step_description" field.
func StepDescriptionContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldStepDescription, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldPrompt, v))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldResponse))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldResponse, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldModelName, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldDurationMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AlertSession) predicate.LLMInteraction {
	return predicate.LLMInteraction(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMInteraction) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMInteraction) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMInteraction) predicate.LLMInteraction {
	return predicate.LLMInteraction(sql.NotPredicates(p))
}
