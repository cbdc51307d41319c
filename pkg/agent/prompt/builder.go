// Package prompt builds all prompt text for the iteration controller.
package prompt

import (
	"fmt"
	"strings"

	"github.com/incidentflow/triaged/pkg/config"
	"github.com/incidentflow/triaged/pkg/models"
)

// Builder composes system and user prompts for a triage run. Stateless
// apart from registry access; thread-safe.
type Builder struct {
	mcpRegistry *config.MCPServerRegistry
}

// NewBuilder creates a Builder with access to MCP server configs.
// Panics if mcpRegistry is nil.
func NewBuilder(mcpRegistry *config.MCPServerRegistry) *Builder {
	if mcpRegistry == nil {
		panic("prompt.NewBuilder: mcpRegistry must not be nil")
	}
	return &Builder{mcpRegistry: mcpRegistry}
}

// SystemPrompt composes the system message: base SRE instructions,
// per-server guidance for the agent's allowed servers, and the agent's
// custom instructions.
func (b *Builder) SystemPrompt(serverIDs []string, customInstructions string) string {
	var sb strings.Builder
	sb.WriteString(generalInstructions)

	for _, serverID := range serverIDs {
		serverCfg, err := b.mcpRegistry.Get(serverID)
		if err != nil || serverCfg.Instructions == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n\n## %s guidance\n%s", serverID, serverCfg.Instructions)
	}

	if customInstructions != "" {
		sb.WriteString("\n\n## Agent Instructions\n")
		sb.WriteString(customInstructions)
	}
	return sb.String()
}

// BuildToolSelectionPrompt builds the first-round prompt asking which
// tools to call, given the alert, its runbook, and the tool listing.
func (b *Builder) BuildToolSelectionPrompt(
	alert models.Alert,
	runbookContent string,
	tools map[string][]models.ToolDescriptor,
) string {
	var sb strings.Builder
	sb.WriteString("# Tool Selection Request\n\n")
	sb.WriteString("Based on the following alert and runbook, determine which tools should be called to gather diagnostic information.\n\n")
	sb.WriteString(FormatAlertSection(alert))
	sb.WriteString("\n")
	sb.WriteString(FormatRunbookSection(runbookContent))
	sb.WriteString("\n")
	sb.WriteString(FormatToolListing(tools))
	sb.WriteString("\n")
	sb.WriteString(toolSelectionInstructions)
	return sb.String()
}

// BuildContinuationPrompt builds the between-rounds prompt asking whether
// to keep iterating, embedding the full iteration history.
func (b *Builder) BuildContinuationPrompt(
	alert models.Alert,
	runbookContent string,
	tools map[string][]models.ToolDescriptor,
	history []models.IterationRecord,
	iteration, maxIterations int,
) string {
	var sb strings.Builder
	sb.WriteString("# Continuation Decision Request\n\n")
	fmt.Fprintf(&sb, "You have completed iteration %d of at most %d.\n\n", iteration, maxIterations)
	sb.WriteString(FormatAlertSection(alert))
	sb.WriteString("\n")
	sb.WriteString(FormatRunbookSection(runbookContent))
	sb.WriteString("\n")
	sb.WriteString(FormatIterationHistory(history))
	sb.WriteString("\n")
	sb.WriteString(FormatToolListing(tools))
	sb.WriteString("\n")
	sb.WriteString(continuationInstructions)
	return sb.String()
}

// BuildFinalAnalysisPrompt builds the synthesis prompt over the alert,
// runbook, and complete aggregated data.
func (b *Builder) BuildFinalAnalysisPrompt(
	alert models.Alert,
	runbookContent string,
	mcpData models.MCPData,
	iterations int,
) string {
	var sb strings.Builder
	sb.WriteString("# Alert Analysis Request\n\n")
	fmt.Fprintf(&sb, "The investigation ran %d iteration(s) and gathered the data below. Provide the final analysis of this incident.\n\n", iterations)
	sb.WriteString(FormatAlertSection(alert))
	sb.WriteString("\n")
	sb.WriteString(FormatRunbookSection(runbookContent))
	sb.WriteString("\n")
	sb.WriteString(FormatMCPData(mcpData))
	sb.WriteString("\n")
	sb.WriteString(finalAnalysisInstructions)
	return sb.String()
}
