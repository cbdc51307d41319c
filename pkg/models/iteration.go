package models

// ToolCallRequest is one tool call selected by the LLM.
// All four fields are required; an object missing any of them is rejected
// by the controller's parser.
type ToolCallRequest struct {
	Server     string         `json:"server"`
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters"`
	Reason     string         `json:"reason"`
}

// ToolResult is the outcome of a single tool invocation: either a structured
// result payload or an error string, never both. Always tagged with the
// originating server and tool.
type ToolResult struct {
	Server     string         `json:"server"`
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Result     any            `json:"result,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// IsError reports whether this result carries an error instead of a payload.
func (r *ToolResult) IsError() bool { return r.Error != "" }

// MCPData maps server name to the ordered list of tool results collected
// from that server. Per-server order is append-order across rounds.
type MCPData map[string][]ToolResult

// Merge appends other's per-server result lists onto d, preserving order.
// A server present in both accumulates both lists (append, not replace).
func (d MCPData) Merge(other MCPData) {
	for server, results := range other {
		d[server] = append(d[server], results...)
	}
}

// TotalResults returns the number of results across all servers.
func (d MCPData) TotalResults() int {
	n := 0
	for _, results := range d {
		n += len(results)
	}
	return n
}

// IterationRecord is the per-round snapshot appended to the iteration
// history. Every later round's prompt sees the full history.
type IterationRecord struct {
	Iteration   int               `json:"iteration"`
	Reasoning   string            `json:"reasoning,omitempty"`
	ToolsCalled []ToolCallRequest `json:"tools_called"`
	MCPData     MCPData           `json:"mcp_data"`
}

// ContinueDecision is the LLM's answer to "should we keep iterating".
// Continue is a pointer so the parser can distinguish a missing key
// (parse failure, treated as stop) from an explicit false.
type ContinueDecision struct {
	Continue  *bool             `json:"continue"`
	Reasoning string            `json:"reasoning,omitempty"`
	Tools     []ToolCallRequest `json:"tools,omitempty"`
}
