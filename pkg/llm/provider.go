// Package llm provides chat-completion providers for the agent loop. The
// selector provider picks tools; the synthesizer provider writes user-facing
// prose. Both speak the OpenAI chat API, which local inference servers also
// expose.
package llm

import "context"

// Provider produces a single completion for a prompt. Implementations are
// safe for concurrent use.
type Provider interface {
	// Chat sends prompt and returns the model's text response. label names
	// the call site for logging (selector, synthesizer); conversationID
	// correlates log lines with a conversation.
	Chat(ctx context.Context, prompt, label, conversationID string) (string, error)

	// Model returns the configured model identifier.
	Model() string
}
