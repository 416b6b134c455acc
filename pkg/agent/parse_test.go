package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToolCall(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantTool string
		wantOK   bool
	}{
		{
			name:     "bare JSON",
			response: `{"tool": "search_code", "parameters": {"query": "payment"}}`,
			wantTool: "search_code",
			wantOK:   true,
		},
		{
			name:     "JSON wrapped in prose",
			response: "I should search the codebase.\n```json\n{\"tool\": \"search_code\", \"parameters\": {\"query\": \"auth\"}}\n```\nThat will help.",
			wantTool: "search_code",
			wantOK:   true,
		},
		{
			name:     "empty object means no tool call",
			response: `{}`,
			wantOK:   false,
		},
		{
			name:     "no braces at all",
			response: "I have enough information to answer now.",
			wantOK:   false,
		},
		{
			name:     "malformed JSON means no tool call",
			response: `{"tool": "search_code", "parameters": {`,
			wantOK:   false,
		},
		{
			name:     "missing parameters defaults to empty map",
			response: `{"tool": "discover_project"}`,
			wantTool: "discover_project",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, ok := ExtractToolCall(tt.response)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, call)
				assert.Equal(t, tt.wantTool, call.Tool)
				assert.NotNil(t, call.Parameters)
			}
		})
	}
}

func TestExtractResponse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "plain text passes through",
			raw:      "The payment validation lives in pkg/billing.",
			expected: "The payment validation lives in pkg/billing.",
		},
		{
			name:     "response field unwrapped",
			raw:      `{"response": "Validation happens in PaymentValidator."}`,
			expected: "Validation happens in PaymentValidator.",
		},
		{
			name:     "JSON without response field falls back to raw",
			raw:      `{"answer": "nope"}`,
			expected: `{"answer": "nope"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "  The answer.  \n",
			expected: "The answer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractResponse(tt.raw))
		})
	}
}
