package events

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay/coderelay/pkg/models"
)

func newTestHub() *Hub {
	return NewHub(slog.Default())
}

func TestHub_PublishToSubscriber(t *testing.T) {
	h := newTestHub()
	ch, unsubscribe := h.Subscribe("conv-1")
	defer unsubscribe()

	h.SendThinking("conv-1", "Analyzing your request...")

	event := <-ch
	assert.Equal(t, models.EventThinking, event.Type)
	assert.Equal(t, "conv-1", event.ConversationID)
	assert.Equal(t, "Analyzing your request...", event.Content)
	assert.False(t, event.Timestamp.IsZero())
}

func TestHub_NoSubscriberDropsEvent(t *testing.T) {
	h := newTestHub()
	// Must not block or panic.
	h.SendComplete("conv-1", "done")
	assert.False(t, h.HasActiveStream("conv-1"))
}

func TestHub_NewSubscriberReplacesPrevious(t *testing.T) {
	h := newTestHub()
	first, _ := h.Subscribe("conv-1")
	second, unsubscribe := h.Subscribe("conv-1")
	defer unsubscribe()

	// The first channel is closed by the replacement.
	_, open := <-first
	assert.False(t, open)

	h.SendTool("conv-1", "search_code", "started")
	event := <-second
	assert.Equal(t, models.EventTool, event.Type)
	assert.Equal(t, "search_code", event.ToolName)
	assert.Equal(t, "started", event.ToolStatus)
}

func TestHub_StaleUnsubscribeDoesNotTearDownReplacement(t *testing.T) {
	h := newTestHub()
	_, oldUnsubscribe := h.Subscribe("conv-1")
	ch, unsubscribe := h.Subscribe("conv-1")
	defer unsubscribe()

	// The first client's deferred cleanup fires after the replacement
	// attached; the new stream must stay live.
	oldUnsubscribe()
	require.True(t, h.HasActiveStream("conv-1"))

	h.SendError("conv-1", "boom")
	event := <-ch
	assert.Equal(t, models.EventError, event.Type)
	assert.Equal(t, "boom", event.Message)
}

func TestHub_SlowSubscriberDropsExcess(t *testing.T) {
	h := newTestHub()
	ch, unsubscribe := h.Subscribe("conv-1")
	defer unsubscribe()

	for i := 0; i < subscriberBuffer+10; i++ {
		h.SendThinking("conv-1", "Processing...")
	}

	// Buffer holds exactly subscriberBuffer events; the rest were dropped
	// without blocking the publisher.
	assert.Len(t, ch, subscriberBuffer)
}

func TestHub_UnsubscribeRemovesStream(t *testing.T) {
	h := newTestHub()
	_, unsubscribe := h.Subscribe("conv-1")
	require.True(t, h.HasActiveStream("conv-1"))

	unsubscribe()
	assert.False(t, h.HasActiveStream("conv-1"))

	// Idempotent.
	unsubscribe()
	assert.False(t, h.HasActiveStream("conv-1"))
}
