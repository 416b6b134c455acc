package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay/coderelay/pkg/models"
)

// PostChat accepts a user message. A new conversation is created
// synchronously when no conversation_id is given; the turn itself runs on
// the worker pool and its outcome arrives on the event stream.
func (s *Server) PostChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		if req.RepoURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "repo_url is required for a new conversation"})
			return
		}
		userID := req.UserID
		if userID == "" {
			userID = "anonymous"
		}
		conv, err := s.conversations.Create(c.Request.Context(), models.CreateConversationRequest{
			UserID:  userID,
			RepoURL: req.RepoURL,
			Branch:  req.Branch,
			Mode:    req.Mode,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		conversationID = conv.ID
	} else {
		if _, err := s.conversations.Get(c.Request.Context(), conversationID); err != nil {
			respondError(c, err)
			return
		}
	}

	message := req.Message
	id := conversationID
	if err := s.pool.Submit(func(ctx context.Context) {
		s.runner.Run(ctx, id, message)
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, models.ChatResponse{
		Success:        true,
		ConversationID: conversationID,
		Response:       "Processing...",
	})
}

// GetHistory returns a conversation's messages in order.
func (s *Server) GetHistory(c *gin.Context) {
	conv, err := s.conversations.GetWithMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	messages := make([]models.MessageView, 0, len(conv.Edges.Messages))
	for _, m := range conv.Edges.Messages {
		messages = append(messages, models.MessageView{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		ConversationID: conv.ID,
		Messages:       messages,
	})
}

// GetStatus reports conversation state and stream presence.
func (s *Server) GetStatus(c *gin.Context) {
	conv, err := s.conversations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	status := "ACTIVE"
	if !conv.Active {
		status = "CLOSED"
	}

	c.JSON(http.StatusOK, models.StatusResponse{
		ConversationID:  conv.ID,
		Status:          status,
		Mode:            string(conv.Mode),
		RepoURL:         conv.RepoURL,
		RepoName:        conv.RepoName,
		HasActiveStream: s.hub.HasActiveStream(conv.ID),
	})
}

// DeleteConversation closes a conversation.
func (s *Server) DeleteConversation(c *gin.Context) {
	if err := s.conversations.Close(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListConversations returns a user's open conversations.
func (s *Server) ListConversations(c *gin.Context) {
	userID := c.Query("user_id")
	convs, err := s.conversations.ListActive(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]models.ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		summaries = append(summaries, models.SummaryFromConversation(conv))
	}
	c.JSON(http.StatusOK, gin.H{"conversations": summaries})
}
