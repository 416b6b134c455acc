package tools

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_HistoryBounded(t *testing.T) {
	tc := newTestContext()
	for i := 0; i < maxHistoryEntries+10; i++ {
		tc.RecordExecution("search_code", map[string]any{"i": i}, Successf(nil, "run %d", i))
	}

	history := tc.History()
	require.Len(t, history, maxHistoryEntries)
	// Oldest entries fell off the front.
	assert.Equal(t, 10, history[0].Params["i"])
}

func TestContext_ExecutionCountAndLastResult(t *testing.T) {
	tc := newTestContext()
	tc.RecordExecution("search_code", nil, Successf(nil, "first"))
	tc.RecordExecution("discover_project", nil, Successf(nil, "other"))
	tc.RecordExecution("search_code", nil, Failuref("second"))

	assert.Equal(t, 2, tc.ExecutionCount("search_code"))
	assert.Equal(t, 1, tc.ExecutionCount("discover_project"))
	assert.Equal(t, 0, tc.ExecutionCount("graph_query"))

	last, ok := tc.LastResult("search_code")
	require.True(t, ok)
	assert.False(t, last.Success)
	assert.Equal(t, "second", last.HumanMessage)

	_, ok = tc.LastResult("graph_query")
	assert.False(t, ok)
}

func TestContext_HasNegativeFeedback(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		expected bool
	}{
		{
			name:     "no messages",
			messages: nil,
			expected: false,
		},
		{
			name:     "neutral messages",
			messages: []string{"what does the auth package do?", "show me the login flow"},
			expected: false,
		},
		{
			name:     "explicit phrase",
			messages: []string{"can you give me more detail on that?"},
			expected: true,
		},
		{
			name:     "case insensitive",
			messages: []string{"That needs to be MORE DETAIL please"},
			expected: true,
		},
		{
			name:     "phrase outside the window is ignored",
			messages: []string{"make it better", "ok", "thanks", "what about caching?"},
			expected: false,
		},
		{
			name:     "phrase at window edge counts",
			messages: []string{"ignored old message", "make it better", "ok", "thanks"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestContext()
			tc.SetRecentUserInputs(tt.messages)
			assert.Equal(t, tt.expected, tc.HasNegativeFeedback())
		})
	}
}

func TestContext_AllFeedbackPhrasesDetected(t *testing.T) {
	for _, phrase := range negativeFeedbackPhrases {
		tc := newTestContext()
		tc.SetRecentUserInputs([]string{fmt.Sprintf("please make this %s", phrase)})
		assert.True(t, tc.HasNegativeFeedback(), "phrase %q should trigger feedback detection", phrase)
	}
}

func TestContext_RepositoryBinding(t *testing.T) {
	tc := newTestContext()
	assert.Empty(t, tc.RepositoryID())
	assert.Empty(t, tc.WorkspacePath())

	tc.BindRepository("repo-42", "/tmp/ai-orchestrator-workspace/widget")
	assert.Equal(t, "repo-42", tc.RepositoryID())
	assert.Equal(t, "/tmp/ai-orchestrator-workspace/widget", tc.WorkspacePath())

	// A new turn drops the binding but keeps the history.
	tc.RecordExecution("search_code", nil, Successf(nil, "ok"))
	tc.ClearRepositoryBinding()
	assert.Empty(t, tc.RepositoryID())
	assert.Empty(t, tc.WorkspacePath())
	assert.Equal(t, 1, tc.ExecutionCount("search_code"))
}

func TestContext_Vars(t *testing.T) {
	tc := newTestContext()
	_, ok := tc.Var("focus")
	assert.False(t, ok)

	tc.SetVar("focus", "auth")
	v, ok := tc.Var("focus")
	require.True(t, ok)
	assert.Equal(t, "auth", v)
}
