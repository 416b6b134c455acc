// Package events fans agent progress out to per-conversation SSE streams.
// Each conversation has at most one subscriber; a new subscription replaces
// the previous one.
package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/coderelay/coderelay/pkg/models"
)

// Per-subscriber buffer. Events are dropped, never blocked on: the agent
// loop must not stall because a client reads slowly.
const subscriberBuffer = 64

type subscription struct {
	ch chan models.ChatEvent
}

// Hub routes chat events to conversation subscribers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*subscription
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]*subscription),
		logger: logger.With("component", "events"),
	}
}

// Subscribe registers the caller as the conversation's stream consumer and
// returns the event channel plus an unsubscribe func. An existing subscriber
// for the same conversation is closed first.
func (h *Hub) Subscribe(conversationID string) (<-chan models.ChatEvent, func()) {
	h.mu.Lock()
	if prev, ok := h.subs[conversationID]; ok {
		close(prev.ch)
	}
	sub := &subscription{ch: make(chan models.ChatEvent, subscriberBuffer)}
	h.subs[conversationID] = sub
	h.mu.Unlock()

	h.logger.Debug("Stream subscribed", "conversation_id", conversationID)

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		// Only remove if this subscription is still the active one; a
		// replacement subscriber must not be torn down by the old
		// client's deferred cleanup.
		if current, ok := h.subs[conversationID]; ok && current == sub {
			delete(h.subs, conversationID)
			close(sub.ch)
		}
	}
	return sub.ch, unsubscribe
}

// HasActiveStream reports whether a subscriber is attached.
func (h *Hub) HasActiveStream(conversationID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.subs[conversationID]
	return ok
}

// Publish delivers an event to the conversation's subscriber. Events for
// conversations without a subscriber are dropped; so are events that do not
// fit the subscriber's buffer.
func (h *Hub) Publish(event models.ChatEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// The send stays under the read lock so a concurrent Subscribe or
	// unsubscribe cannot close the channel mid-send. The send itself never
	// blocks.
	h.mu.RLock()
	defer h.mu.RUnlock()

	sub, ok := h.subs[event.ConversationID]
	if !ok {
		return
	}

	select {
	case sub.ch <- event:
	default:
		h.logger.Warn("Dropping event for slow subscriber",
			"conversation_id", event.ConversationID, "type", event.Type)
	}
}

// SendThinking publishes a progress message.
func (h *Hub) SendThinking(conversationID, content string) {
	h.Publish(models.ChatEvent{
		Type:           models.EventThinking,
		ConversationID: conversationID,
		Content:        content,
	})
}

// SendTool publishes a tool lifecycle update.
func (h *Hub) SendTool(conversationID, toolName, status string) {
	h.Publish(models.ChatEvent{
		Type:           models.EventTool,
		ConversationID: conversationID,
		ToolName:       toolName,
		ToolStatus:     status,
	})
}

// SendComplete publishes the final response and ends the logical turn.
func (h *Hub) SendComplete(conversationID, content string) {
	h.Publish(models.ChatEvent{
		Type:           models.EventComplete,
		ConversationID: conversationID,
		Content:        content,
	})
}

// SendError publishes a terminal error for the turn.
func (h *Hub) SendError(conversationID, message string) {
	h.Publish(models.ChatEvent{
		Type:           models.EventError,
		ConversationID: conversationID,
		Message:        message,
	})
}

// Close tears down all subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sub := range h.subs {
		close(sub.ch)
		delete(h.subs, id)
	}
}
