package tools

import (
	"strings"
	"sync"
	"time"
)

// Tool history is bounded; older executions fall off the front.
const maxHistoryEntries = 50

// Phrases in recent user messages that signal dissatisfaction with earlier
// answers. Matching is case-insensitive substring over the last few user
// messages.
var negativeFeedbackPhrases = []string{
	"better",
	"more detail",
	"improve",
	"different",
	"expand",
	"deeper",
	"comprehensive",
	"thorough",
	"enhanced",
	"refined",
}

// Number of trailing user messages scanned for negative feedback.
const feedbackWindow = 3

// Execution records one completed tool run.
type Execution struct {
	ToolName   string
	Params     map[string]any
	Result     Result
	ExecutedAt time.Time
}

// Context carries per-conversation state across tool executions within the
// agent loop: repository binding, scratch variables, and a bounded
// execution history. Safe for concurrent use.
type Context struct {
	ConversationID string
	UserID         string

	// RepoURL is the normalized repository URL; Branch the resolved branch.
	RepoURL string
	Branch  string
	Mode    string

	mu sync.RWMutex

	// RepositoryID and WorkspacePath are bound by the repository lifecycle
	// gate once the repository is known to be indexed.
	repositoryID  string
	workspacePath string

	vars             map[string]any
	history          []Execution
	recentUserInputs []string
}

// NewContext creates the tool context for a conversation. The context lives
// as long as the conversation does; execution history and counts accumulate
// across turns.
func NewContext(conversationID, userID, repoURL, branch, mode string) *Context {
	return &Context{
		ConversationID: conversationID,
		UserID:         userID,
		RepoURL:        repoURL,
		Branch:         branch,
		Mode:           mode,
		vars:           make(map[string]any),
	}
}

// BindRepository records the indexed repository's id and checkout path.
func (c *Context) BindRepository(repositoryID, workspacePath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repositoryID = repositoryID
	c.workspacePath = workspacePath
}

// ClearRepositoryBinding drops the bound repository so the next tool
// execution re-checks index freshness. The loop calls this at the start of
// every turn; the binding is only valid within one user-message invocation.
func (c *Context) ClearRepositoryBinding() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repositoryID = ""
	c.workspacePath = ""
}

// RepositoryID returns the bound repository id, empty until the lifecycle
// gate has run.
func (c *Context) RepositoryID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.repositoryID
}

// WorkspacePath returns the local checkout path, empty until bound.
func (c *Context) WorkspacePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.workspacePath
}

// SetVar stores a scratch variable shared between tools in one loop.
func (c *Context) SetVar(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vars[key] = value
}

// Var reads a scratch variable.
func (c *Context) Var(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.vars[key]
	return v, ok
}

// RecordExecution appends a completed run to the history, evicting the
// oldest entry past the cap.
func (c *Context) RecordExecution(toolName string, params map[string]any, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, Execution{
		ToolName:   toolName,
		Params:     params,
		Result:     result,
		ExecutedAt: time.Now(),
	})
	if len(c.history) > maxHistoryEntries {
		c.history = c.history[len(c.history)-maxHistoryEntries:]
	}
}

// ExecutionCount returns how many times toolName has run in this
// conversation's recorded history.
func (c *Context) ExecutionCount(toolName string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for _, e := range c.history {
		if e.ToolName == toolName {
			count++
		}
	}
	return count
}

// LastResult returns the most recent result of toolName, if any.
func (c *Context) LastResult(toolName string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := len(c.history) - 1; i >= 0; i-- {
		if c.history[i].ToolName == toolName {
			return c.history[i].Result, true
		}
	}
	return Result{}, false
}

// History returns a copy of the recorded executions, oldest first.
func (c *Context) History() []Execution {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Execution, len(c.history))
	copy(out, c.history)
	return out
}

// SetRecentUserInputs replaces the trailing user messages used for feedback
// detection.
func (c *Context) SetRecentUserInputs(messages []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recentUserInputs = append([]string(nil), messages...)
}

// HasNegativeFeedback reports whether any of the last few user messages
// contains a dissatisfaction phrase.
func (c *Context) HasNegativeFeedback() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	inputs := c.recentUserInputs
	if len(inputs) > feedbackWindow {
		inputs = inputs[len(inputs)-feedbackWindow:]
	}
	for _, msg := range inputs {
		lower := strings.ToLower(msg)
		for _, phrase := range negativeFeedbackPhrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	return false
}
