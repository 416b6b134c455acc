package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coderelay/coderelay/pkg/models"
)

// StreamEvents attaches the caller to a conversation's event stream as a
// server-sent event response. A new subscriber replaces any existing one.
func (s *Server) StreamEvents(c *gin.Context) {
	conversationID := c.Param("id")
	if _, err := s.conversations.Get(c.Request.Context(), conversationID); err != nil {
		respondError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	events, unsubscribe := s.hub.Subscribe(conversationID)
	defer unsubscribe()

	writeSSE(c, models.ChatEvent{
		Type:           models.EventConnected,
		ConversationID: conversationID,
		Timestamp:      time.Now(),
	})
	flusher.Flush()

	// Periodic comments keep proxies from timing out idle streams.
	keepalive := time.NewTicker(15 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case event, open := <-events:
			if !open {
				// Replaced by a newer subscriber.
				return
			}
			writeSSE(c, event)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(c.Writer, ": keepalive\n\n")
			flusher.Flush()
		}
	}
}

// writeSSE emits one event in wire format: an event line, a data line with
// the JSON payload, and a blank line.
func writeSSE(c *gin.Context, event models.ChatEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event.Type, payload)
}
