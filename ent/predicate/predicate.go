// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AlertSession is the predicate function for alertsession builders.
type AlertSession func(*sql.Selector)

// LLMInteraction is the predicate function for llminteraction builders.
type LLMInteraction func(*sql.Selector)

// MCPInteraction is the predicate function for mcpinteraction builders.
type MCPInteraction func(*sql.Selector)
