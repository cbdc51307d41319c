package models

// ToolDescriptor describes one callable tool as advertised by an MCP
// server, in the shape the prompt builder embeds into tool listings.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	InputSchema string `json:"input_schema,omitempty"`
}
