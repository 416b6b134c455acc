// Package agent implements the conversational controller: a bounded
// selection-execution cycle driven by a fast selector model, followed by a
// single synthesizer call that writes the user-visible answer.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coderelay/coderelay/ent"
	"github.com/coderelay/coderelay/ent/message"
	"github.com/coderelay/coderelay/pkg/events"
	"github.com/coderelay/coderelay/pkg/llm"
	"github.com/coderelay/coderelay/pkg/metrics"
	"github.com/coderelay/coderelay/pkg/tools"
)

// ConversationStore is the slice of the conversation service the loop needs.
type ConversationStore interface {
	GetWithMessages(ctx context.Context, conversationID string) (*ent.Conversation, error)
	RecentUserMessages(ctx context.Context, conversationID string, n int) ([]string, error)
	Append(ctx context.Context, conversationID string, role message.Role, content string) (*ent.Message, error)
}

// Loop orchestrates one conversation turn at a time. Instances are shared
// across workers; tool contexts are kept per conversation so execution
// history and counts carry across turns.
type Loop struct {
	registry      *tools.Registry
	selector      llm.Provider
	synthesizer   llm.Provider
	conversations ConversationStore
	hub           *events.Hub
	maxIterations int
	logger        *slog.Logger

	mu       sync.Mutex
	contexts map[string]*tools.Context
}

// NewLoop wires the agent loop.
func NewLoop(
	registry *tools.Registry,
	selector llm.Provider,
	synthesizer llm.Provider,
	conversations ConversationStore,
	hub *events.Hub,
	maxIterations int,
	logger *slog.Logger,
) *Loop {
	return &Loop{
		registry:      registry,
		selector:      selector,
		synthesizer:   synthesizer,
		conversations: conversations,
		hub:           hub,
		maxIterations: maxIterations,
		logger:        logger.With("component", "agent"),
		contexts:      make(map[string]*tools.Context),
	}
}

// contextFor returns the conversation's tool context, creating it on the
// first turn. The pool runs at most one worker per conversation, so turns
// never race on the same context.
func (l *Loop) contextFor(conv *ent.Conversation) *tools.Context {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tc, ok := l.contexts[conv.ID]; ok {
		return tc
	}
	tc := tools.NewContext(conv.ID, conv.UserID, conv.RepoURL, conv.Branch, string(conv.Mode))
	l.contexts[conv.ID] = tc
	return tc
}

// Run processes one user message to completion. Failures become a terminal
// "Error: ..." assistant message and an error event; the conversation
// itself stays usable.
func (l *Loop) Run(ctx context.Context, conversationID, userMessage string) string {
	start := time.Now()
	answer, err := l.run(ctx, conversationID, userMessage)
	metrics.TurnDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Turns.WithLabelValues("error").Inc()
		l.logger.Error("Turn failed",
			"conversation_id", conversationID, "error", err)
		text := "Error: " + err.Error()
		if _, appendErr := l.conversations.Append(ctx, conversationID, message.RoleAssistant, text); appendErr != nil {
			l.logger.Error("Failed to record error message",
				"conversation_id", conversationID, "error", appendErr)
		}
		l.hub.SendError(conversationID, err.Error())
		return text
	}
	metrics.Turns.WithLabelValues("success").Inc()
	return answer
}

func (l *Loop) run(ctx context.Context, conversationID, userMessage string) (string, error) {
	if _, err := l.conversations.Append(ctx, conversationID, message.RoleUser, userMessage); err != nil {
		return "", err
	}
	l.hub.SendThinking(conversationID, "Analyzing your request...")

	conv, err := l.conversations.GetWithMessages(ctx, conversationID)
	if err != nil {
		return "", err
	}
	history := conv.Edges.Messages

	tc := l.contextFor(conv)
	// The repository binding is only valid within one invocation; dropping
	// it forces the lifecycle gate to re-check index freshness this turn.
	tc.ClearRepositoryBinding()
	recent, err := l.conversations.RecentUserMessages(ctx, conversationID, 3)
	if err != nil {
		return "", err
	}
	tc.SetRecentUserInputs(recent)

	var toolsUsed []string
	var findings []string
	prompt := buildInitialPrompt(l.registry, conv.RepoURL, userMessage, history)

	for i := 0; i < l.maxIterations; i++ {
		l.hub.SendThinking(conversationID, "Processing...")

		response, err := l.selector.Chat(ctx, prompt, "selector", conversationID)
		if err != nil {
			return "", fmt.Errorf("tool selection failed: %w", err)
		}

		call, ok := ExtractToolCall(response)
		if !ok {
			l.logger.Debug("Selector chose to answer",
				"conversation_id", conversationID, "iteration", i)
			break
		}

		toolsUsed = append(toolsUsed, call.Tool)
		l.hub.SendTool(conversationID, call.Tool, "Executing...")

		result := l.executeTool(ctx, tc, call.Tool, call.Parameters)
		if result.Success {
			l.hub.SendTool(conversationID, call.Tool, "Completed")
			findings = append(findings,
				fmt.Sprintf("[%s] %s\n%s", call.Tool, result.HumanMessage, renderData(result)))
		} else {
			l.hub.SendTool(conversationID, call.Tool, "Failed")
			findings = append(findings,
				fmt.Sprintf("[%s] Error: %s", call.Tool, result.HumanMessage))
		}

		prompt = buildFollowUpPrompt(l.registry, history, call.Tool, result)
	}

	l.hub.SendThinking(conversationID, "Generating final response...")

	finalPrompt := buildFinalPrompt(conv.RepoURL, history, toolsUsed, findings)
	raw, err := l.synthesizer.Chat(ctx, finalPrompt, "synthesizer", conversationID)
	if err != nil {
		return "", fmt.Errorf("synthesis failed: %w", err)
	}
	answer := extractResponse(raw)

	if _, err := l.conversations.Append(ctx, conversationID, message.RoleAssistant, answer); err != nil {
		return "", err
	}
	l.hub.SendComplete(conversationID, answer)

	l.logger.Info("Turn completed",
		"conversation_id", conversationID,
		"tools_used", strings.Join(toolsUsed, ","),
		"response_chars", len(answer))
	return answer, nil
}

// extractResponse unwraps synthesizer output: a JSON object with a
// "response" field wins, otherwise the raw text is the answer.
func extractResponse(raw string) string {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return strings.TrimSpace(raw)
	}

	var wrapped struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &wrapped); err != nil || wrapped.Response == "" {
		return strings.TrimSpace(raw)
	}
	return wrapped.Response
}
