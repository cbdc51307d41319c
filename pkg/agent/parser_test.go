package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolSelection(t *testing.T) {
	t.Run("parses bare JSON array", func(t *testing.T) {
		calls, err := ParseToolSelection(`[
			{"server": "kubernetes", "tool": "get_pods", "parameters": {"namespace": "prod"}, "reason": "check pod status"},
			{"server": "prometheus", "tool": "query", "parameters": {"expr": "up"}, "reason": "check targets"}
		]`)
		require.NoError(t, err)
		require.Len(t, calls, 2)
		assert.Equal(t, "kubernetes", calls[0].Server)
		assert.Equal(t, "get_pods", calls[0].Tool)
		assert.Equal(t, map[string]any{"namespace": "prod"}, calls[0].Parameters)
		assert.Equal(t, "check pod status", calls[0].Reason)
	})

	t.Run("parses fenced code block with surrounding prose", func(t *testing.T) {
		response := "Based on the alert I will inspect the deployment.\n\n" +
			"```json\n" +
			`[{"server": "kubernetes", "tool": "describe_deployment", "parameters": {}, "reason": "inspect"}]` +
			"\n```\n\nThis should reveal the rollout state."
		calls, err := ParseToolSelection(response)
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, "describe_deployment", calls[0].Tool)
	})

	t.Run("empty array means no tools needed", func(t *testing.T) {
		calls, err := ParseToolSelection("No data required.\n\n[]")
		require.NoError(t, err)
		assert.Empty(t, calls)
	})

	t.Run("null parameters become an empty map", func(t *testing.T) {
		calls, err := ParseToolSelection(`[{"server": "s", "tool": "t", "parameters": null, "reason": "r"}]`)
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.NotNil(t, calls[0].Parameters)
		assert.Empty(t, calls[0].Parameters)
	})

	t.Run("one incomplete object fails the whole parse", func(t *testing.T) {
		tests := []struct {
			name    string
			payload string
		}{
			{"missing server", `[{"tool": "t", "parameters": {}, "reason": "r"}]`},
			{"missing tool", `[{"server": "s", "parameters": {}, "reason": "r"}]`},
			{"missing parameters", `[{"server": "s", "tool": "t", "reason": "r"}]`},
			{"missing reason", `[{"server": "s", "tool": "t", "parameters": {}}]`},
			{"empty server", `[{"server": "", "tool": "t", "parameters": {}, "reason": "r"}]`},
			{"second object incomplete", `[{"server": "s", "tool": "t", "parameters": {}, "reason": "r"}, {"server": "s2"}]`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseToolSelection(tt.payload)
				assert.Error(t, err)
			})
		}
	})

	t.Run("no array in response", func(t *testing.T) {
		_, err := ParseToolSelection("I could not decide on any tools.")
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ParseToolSelection(`[{"server": "s", "tool":`)
		assert.Error(t, err)
	})
}

func TestParseContinueDecision(t *testing.T) {
	t.Run("continue with more tools", func(t *testing.T) {
		decision, err := ParseContinueDecision(`{
			"continue": true,
			"reasoning": "need pod logs",
			"tools": [{"server": "kubernetes", "tool": "get_logs", "parameters": {"pod": "api-0"}, "reason": "inspect crash"}]
		}`)
		require.NoError(t, err)
		require.NotNil(t, decision.Continue)
		assert.True(t, *decision.Continue)
		assert.Equal(t, "need pod logs", decision.Reasoning)
		require.Len(t, decision.Tools, 1)
		assert.Equal(t, "get_logs", decision.Tools[0].Tool)
	})

	t.Run("stop decision", func(t *testing.T) {
		decision, err := ParseContinueDecision(`{"continue": false, "reasoning": "enough data"}`)
		require.NoError(t, err)
		require.NotNil(t, decision.Continue)
		assert.False(t, *decision.Continue)
		assert.Empty(t, decision.Tools)
	})

	t.Run("missing continue key yields nil pointer", func(t *testing.T) {
		decision, err := ParseContinueDecision(`{"reasoning": "forgot the flag"}`)
		require.NoError(t, err)
		assert.Nil(t, decision.Continue)
	})

	t.Run("continue true with empty tool list is valid", func(t *testing.T) {
		decision, err := ParseContinueDecision(`{"continue": true, "tools": []}`)
		require.NoError(t, err)
		require.NotNil(t, decision.Continue)
		assert.True(t, *decision.Continue)
		assert.Empty(t, decision.Tools)
	})

	t.Run("fenced object", func(t *testing.T) {
		decision, err := ParseContinueDecision("```json\n{\"continue\": false}\n```")
		require.NoError(t, err)
		require.NotNil(t, decision.Continue)
		assert.False(t, *decision.Continue)
	})

	t.Run("incomplete tool object fails the parse", func(t *testing.T) {
		_, err := ParseContinueDecision(`{"continue": true, "tools": [{"server": "s"}]}`)
		assert.Error(t, err)
	})

	t.Run("no object in response", func(t *testing.T) {
		_, err := ParseContinueDecision("Let me think about this some more.")
		assert.Error(t, err)
	})
}
