package models

import "time"

// ChatEventType discriminates the chat event union.
type ChatEventType string

// Chat event types pushed over the per-conversation stream.
const (
	EventConnected ChatEventType = "connected"
	EventThinking  ChatEventType = "thinking"
	EventTool      ChatEventType = "tool"
	EventPartial   ChatEventType = "partial"
	EventComplete  ChatEventType = "complete"
	EventError     ChatEventType = "error"
)

// ChatEvent is a single event on a conversation stream. Events are advisory:
// definitive state lives in the conversation rows. Which fields are set
// depends on Type: ToolName/ToolStatus for tool events, Content for
// thinking/partial/complete, Message for errors.
type ChatEvent struct {
	Type           ChatEventType `json:"type"`
	ConversationID string        `json:"conversation_id"`
	Content        string        `json:"content,omitempty"`
	ToolName       string        `json:"tool_name,omitempty"`
	ToolStatus     string        `json:"tool_status,omitempty"`
	Message        string        `json:"message,omitempty"`
	Timestamp      time.Time     `json:"timestamp"`
}
