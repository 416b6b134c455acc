package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coderelay/coderelay/ent"
	"github.com/coderelay/coderelay/pkg/tools"
)

// Truncation budgets per prompt kind. Selector prompts stay small to keep
// the fast model fast; the synthesizer sees more history.
const (
	initialHistoryMessages  = 5
	initialMessageChars     = 200
	followUpHistoryMessages = 5
	followUpMessageChars    = 150
	finalHistoryMessages    = 10
	finalMessageChars       = 500
	toolDataChars           = 5000
)

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// lastMessages renders the trailing n messages as "role: content" lines,
// each truncated to maxChars.
func lastMessages(msgs []*ent.Message, n, maxChars int) string {
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, truncate(m.Content, maxChars)))
	}
	if len(lines) == 0 {
		return "(no prior messages)"
	}
	return strings.Join(lines, "\n")
}

// buildInitialPrompt is the first selector prompt of a turn: full tool
// catalog with descriptions and parameter schemas, repository binding, and
// recent history.
func buildInitialPrompt(registry *tools.Registry, repoURL, userMessage string, history []*ent.Message) string {
	var b strings.Builder
	b.WriteString("You are a code assistant that answers questions about a repository by calling tools.\n\n")
	b.WriteString("Available tools:\n")
	for _, tool := range registry.All() {
		fmt.Fprintf(&b, "- %s: %s\n", tool.Name(), tool.Description())
		if schema, err := json.Marshal(tool.ParameterSchema()); err == nil {
			fmt.Fprintf(&b, "  parameters: %s\n", schema)
		}
	}

	repo := repoURL
	if repo == "" {
		repo = "none"
	}
	fmt.Fprintf(&b, "\nRepository: %s\n", repo)
	fmt.Fprintf(&b, "\nConversation so far:\n%s\n", lastMessages(history, initialHistoryMessages, initialMessageChars))
	fmt.Fprintf(&b, "\nUser message: %s\n", userMessage)
	b.WriteString("\nRespond with a JSON object {\"tool\": \"<name>\", \"parameters\": {...}} to call a tool, " +
		"or {} when you have enough information to answer.\n")
	return b.String()
}

// buildFollowUpPrompt is the selector prompt after a tool ran: catalog names
// only, trimmed history, and the last tool's outcome.
func buildFollowUpPrompt(registry *tools.Registry, history []*ent.Message, toolName string, result tools.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Available tools: %s\n", strings.Join(registry.Names(), ", "))
	fmt.Fprintf(&b, "\nConversation so far:\n%s\n", lastMessages(history, followUpHistoryMessages, followUpMessageChars))

	fmt.Fprintf(&b, "\nLast tool called: %s\n", toolName)
	if result.Success {
		b.WriteString("Outcome: success\n")
		fmt.Fprintf(&b, "Data: %s\n", truncate(renderData(result), toolDataChars))
	} else {
		b.WriteString("Outcome: failed\n")
		fmt.Fprintf(&b, "Error: %s\n", result.HumanMessage)
	}
	if len(result.SuggestedNextTools) > 0 {
		fmt.Fprintf(&b, "Suggested next tools: %s\n", strings.Join(result.SuggestedNextTools, ", "))
	}

	b.WriteString("\nRespond with a JSON object {\"tool\": \"<name>\", \"parameters\": {...}} to call another tool, " +
		"or {} when you have enough information to answer.\n")
	return b.String()
}

// buildFinalPrompt is the synthesizer prompt: generous history, the
// repository, and everything the tools produced this turn.
func buildFinalPrompt(repoURL string, history []*ent.Message, toolsUsed []string, findings []string) string {
	var b strings.Builder
	b.WriteString("You are a code assistant. Write the final answer for the user based on the conversation and tool findings below.\n")

	repo := repoURL
	if repo == "" {
		repo = "none"
	}
	fmt.Fprintf(&b, "\nRepository: %s\n", repo)
	fmt.Fprintf(&b, "\nConversation:\n%s\n", lastMessages(history, finalHistoryMessages, finalMessageChars))

	if len(toolsUsed) > 0 {
		fmt.Fprintf(&b, "\nTools used: %s\n", strings.Join(toolsUsed, ", "))
	}
	if len(findings) > 0 {
		fmt.Fprintf(&b, "\nTool findings:\n%s\n", truncate(strings.Join(findings, "\n\n"), toolDataChars))
	}

	b.WriteString("\nAnswer the user's question directly and concretely. Plain text or markdown.\n")
	return b.String()
}
