package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coderelay/coderelay/pkg/tools"
)

const alternativesSeparator = "--- ALTERNATIVE PERSPECTIVES ---"

// executeTool runs a tool through the registry and, when the user has
// signalled dissatisfaction and this tool already ran earlier in the
// conversation, augments the result with its alternative tools. Alternatives
// run directly against the registry, so they never recurse into further
// augmentation.
func (l *Loop) executeTool(ctx context.Context, tc *tools.Context, name string, params map[string]any) tools.Result {
	repeated := tc.ExecutionCount(name) > 0
	result := l.registry.Execute(ctx, tc, name, params)

	if !repeated || !tc.HasNegativeFeedback() {
		return result
	}

	alternatives := l.registry.Alternatives(name)
	if len(alternatives) == 0 {
		return result
	}

	l.logger.Info("Augmenting repeated tool with alternatives",
		"conversation_id", tc.ConversationID, "tool", name, "alternatives", len(alternatives))

	var sections []string
	for _, alt := range alternatives {
		altResult := l.registry.Execute(ctx, tc, alt.Name(), params)
		if !altResult.Success {
			l.logger.Warn("Alternative tool failed during augmentation",
				"tool", alt.Name(), "error", altResult.HumanMessage)
			continue
		}
		body := altResult.HumanMessage
		if body == "" {
			body = renderData(altResult)
		}
		sections = append(sections,
			fmt.Sprintf("### From %s:\n%s", alt.Name(), body))
	}
	if len(sections) == 0 {
		return result
	}

	result.HumanMessage = result.HumanMessage + "\n\n" +
		alternativesSeparator + "\n\n" +
		strings.Join(sections, "\n\n")
	return result
}

// renderData flattens a result's data for prompt embedding. The human
// message stands in when data does not serialize.
func renderData(result tools.Result) string {
	if result.Data == nil {
		return result.HumanMessage
	}
	if s, ok := result.Data.(string); ok {
		return s
	}
	encoded, err := json.Marshal(result.Data)
	if err != nil {
		return result.HumanMessage
	}
	return string(encoded)
}
