package agent

import (
	"encoding/json"
	"strings"
)

// ToolCall is the selector's decision to run a tool.
type ToolCall struct {
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters"`
	Reasoning  string         `json:"reasoning,omitempty"`
}

// ExtractToolCall pulls a tool call out of a selector response. Models wrap
// JSON in prose and code fences, so the candidate is everything from the
// first '{' to the last '}'. Anything that does not parse to a named tool
// means no tool call, which sends the loop to synthesis.
func ExtractToolCall(response string) (*ToolCall, bool) {
	start := strings.IndexByte(response, '{')
	end := strings.LastIndexByte(response, '}')
	if start < 0 || end <= start {
		return nil, false
	}

	var call ToolCall
	if err := json.Unmarshal([]byte(response[start:end+1]), &call); err != nil {
		return nil, false
	}
	if call.Tool == "" {
		return nil, false
	}
	if call.Parameters == nil {
		call.Parameters = make(map[string]any)
	}
	return &call, true
}
