package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/incidentflow/triaged/pkg/models"
)

// ParseToolSelection parses the LLM's answer to a tool selection prompt:
// a JSON array of {server, tool, parameters, reason} objects, optionally
// wrapped in a fenced code block. An object missing any of the four keys
// fails the whole parse; the controller degrades instead of aborting.
func ParseToolSelection(response string) ([]models.ToolCallRequest, error) {
	payload := extractJSON(response, '[')
	if payload == "" {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("malformed tool selection JSON: %w", err)
	}

	calls := make([]models.ToolCallRequest, 0, len(raw))
	for i, obj := range raw {
		call, err := toolCallFromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("tool call %d: %w", i, err)
		}
		calls = append(calls, call)
	}
	return calls, nil
}

// ParseContinueDecision parses the LLM's answer to a continuation prompt:
// a JSON object {continue, reasoning?, tools?}. A missing continue key is
// reported via a nil Continue pointer, which the controller treats as
// stop-and-finalize.
func ParseContinueDecision(response string) (*models.ContinueDecision, error) {
	payload := extractJSON(response, '{')
	if payload == "" {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var probe struct {
		Continue  *bool             `json:"continue"`
		Reasoning string            `json:"reasoning"`
		Tools     []json.RawMessage `json:"tools"`
	}
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		return nil, fmt.Errorf("malformed continuation JSON: %w", err)
	}

	decision := &models.ContinueDecision{
		Continue:  probe.Continue,
		Reasoning: probe.Reasoning,
	}
	for i, rawTool := range probe.Tools {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(rawTool, &obj); err != nil {
			return nil, fmt.Errorf("tool call %d: %w", i, err)
		}
		call, err := toolCallFromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("tool call %d: %w", i, err)
		}
		decision.Tools = append(decision.Tools, call)
	}
	return decision, nil
}

func toolCallFromObject(obj map[string]json.RawMessage) (models.ToolCallRequest, error) {
	var call models.ToolCallRequest

	for _, key := range []string{"server", "tool", "parameters", "reason"} {
		if _, ok := obj[key]; !ok {
			return call, fmt.Errorf("missing required key %q", key)
		}
	}

	if err := json.Unmarshal(obj["server"], &call.Server); err != nil {
		return call, fmt.Errorf("invalid server: %w", err)
	}
	if err := json.Unmarshal(obj["tool"], &call.Tool); err != nil {
		return call, fmt.Errorf("invalid tool: %w", err)
	}
	if err := json.Unmarshal(obj["parameters"], &call.Parameters); err != nil {
		return call, fmt.Errorf("invalid parameters: %w", err)
	}
	if err := json.Unmarshal(obj["reason"], &call.Reason); err != nil {
		return call, fmt.Errorf("invalid reason: %w", err)
	}
	if call.Server == "" || call.Tool == "" {
		return call, fmt.Errorf("server and tool must be non-empty")
	}
	if call.Parameters == nil {
		call.Parameters = map[string]any{}
	}
	return call, nil
}

// extractJSON pulls the JSON payload out of an LLM response. A fenced
// ```json block wins; otherwise the substring from the first opening
// bracket of the wanted kind to its matching last closer is used.
func extractJSON(response string, open byte) string {
	if fenced := extractFenced(response); fenced != "" {
		response = fenced
	}

	closeBracket := byte(']')
	if open == '{' {
		closeBracket = '}'
	}
	start := strings.IndexByte(response, open)
	end := strings.LastIndexByte(response, closeBracket)
	if start < 0 || end < start {
		return ""
	}
	return response[start : end+1]
}

func extractFenced(response string) string {
	for _, marker := range []string{"```json", "```"} {
		start := strings.Index(response, marker)
		if start < 0 {
			continue
		}
		rest := response[start+len(marker):]
		end := strings.Index(rest, "```")
		if end < 0 {
			continue
		}
		return strings.TrimSpace(rest[:end])
	}
	return ""
}
