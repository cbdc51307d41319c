package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/incidentflow/triaged/pkg/models"
)

// FormatAlertSection builds the alert details section.
func FormatAlertSection(alert models.Alert) string {
	var sb strings.Builder
	sb.WriteString("## Alert Details\n\n")
	sb.WriteString("**Alert Type:** ")
	sb.WriteString(orUnknown(alert.AlertType))
	sb.WriteString("\n**Severity:** ")
	sb.WriteString(orUnknown(alert.Severity))
	sb.WriteString("\n**Environment:** ")
	sb.WriteString(orUnknown(alert.Environment))
	sb.WriteString("\n\n### Alert Data\n")

	if len(alert.Data) == 0 {
		sb.WriteString("No additional alert data provided.\n")
		return sb.String()
	}
	sb.WriteString("```json\n")
	sb.WriteString(formatJSON(alert.Data))
	sb.WriteString("\n```\n")
	return sb.String()
}

// FormatRunbookSection builds the runbook section.
func FormatRunbookSection(runbookContent string) string {
	if runbookContent == "" {
		return "## Runbook Content\nNo runbook available.\n"
	}

	var sb strings.Builder
	sb.WriteString("## Runbook Content\n")
	sb.WriteString("```markdown\n")
	sb.WriteString("<!-- RUNBOOK START -->\n")
	sb.WriteString(runbookContent)
	sb.WriteString("\n<!-- RUNBOOK END -->\n")
	sb.WriteString("```\n")
	return sb.String()
}

// FormatToolListing builds the available-tools section, grouped by server
// in stable order.
func FormatToolListing(tools map[string][]models.ToolDescriptor) string {
	if len(tools) == 0 {
		return "## Available Tools\nNo tools are currently available.\n"
	}

	servers := make([]string, 0, len(tools))
	for server := range tools {
		servers = append(servers, server)
	}
	sort.Strings(servers)

	var sb strings.Builder
	sb.WriteString("## Available Tools\n\n")
	for _, server := range servers {
		fmt.Fprintf(&sb, "### Server: %s\n", server)
		for _, tool := range tools[server] {
			fmt.Fprintf(&sb, "- **%s**", tool.Name)
			if tool.Description != "" {
				sb.WriteString(": ")
				sb.WriteString(tool.Description)
			}
			sb.WriteString("\n")
			if tool.InputSchema != "" {
				fmt.Fprintf(&sb, "  Parameters schema: `%s`\n", tool.InputSchema)
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// FormatMCPData builds the aggregated system-data section from every
// round's tool results, grouped by server in stable order.
func FormatMCPData(data models.MCPData) string {
	if data.TotalResults() == 0 {
		return "## System Data\nNo system data was collected.\n"
	}

	servers := make([]string, 0, len(data))
	for server := range data {
		servers = append(servers, server)
	}
	sort.Strings(servers)

	var sb strings.Builder
	sb.WriteString("## System Data\n\n")
	for _, server := range servers {
		fmt.Fprintf(&sb, "### %s (%d results)\n\n", server, len(data[server]))
		for _, result := range data[server] {
			if result.IsError() {
				fmt.Fprintf(&sb, "- **%s** (error): %s\n", result.Tool, result.Error)
				continue
			}
			fmt.Fprintf(&sb, "- **%s**:\n```json\n%s\n```\n", result.Tool, formatJSON(result.Result))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// FormatIterationHistory summarizes the completed rounds so later prompts
// can see what was already asked and learned.
func FormatIterationHistory(history []models.IterationRecord) string {
	if len(history) == 0 {
		return "## Iteration History\nNo iterations completed yet.\n"
	}

	var sb strings.Builder
	sb.WriteString("## Iteration History\n\n")
	for _, record := range history {
		fmt.Fprintf(&sb, "### Iteration %d\n", record.Iteration)
		if record.Reasoning != "" {
			fmt.Fprintf(&sb, "**Reasoning:** %s\n", record.Reasoning)
		}
		if len(record.ToolsCalled) == 0 {
			sb.WriteString("No tools were called this iteration.\n\n")
			continue
		}
		for _, call := range record.ToolsCalled {
			fmt.Fprintf(&sb, "- %s.%s: %s\n", call.Server, call.Tool, call.Reason)
		}
		sb.WriteString("\nResults:\n")
		sb.WriteString(indent(FormatMCPData(record.MCPData)))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func formatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
