// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/coderelay/coderelay/ent"
)

// ChatRequest is the body of POST /api/v1/chat.
// ConversationID is empty for a new conversation, in which case RepoURL is
// required.
type ChatRequest struct {
	Message        string         `json:"message"`
	ConversationID string         `json:"conversation_id,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	RepoURL        string         `json:"repo_url,omitempty"`
	Branch         string         `json:"branch,omitempty"`
	Mode           string         `json:"mode,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// ChatResponse acknowledges an accepted chat request. Processing is
// asynchronous; the answer arrives on the event stream and in history.
type ChatResponse struct {
	Success        bool   `json:"success"`
	ConversationID string `json:"conversation_id"`
	Response       string `json:"response"`
}

// MessageView is one message in a history response.
type MessageView struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse is the body of GET /api/v1/chat/{id}/history.
type HistoryResponse struct {
	ConversationID string        `json:"conversation_id"`
	Messages       []MessageView `json:"messages"`
}

// StatusResponse is the body of GET /api/v1/chat/{id}/status.
type StatusResponse struct {
	ConversationID  string `json:"conversation_id"`
	Status          string `json:"status"` // ACTIVE or CLOSED
	Mode            string `json:"mode"`
	RepoURL         string `json:"repo_url"`
	RepoName        string `json:"repo_name"`
	HasActiveStream bool   `json:"has_active_stream"`
}

// ConversationSummary is one entry in the conversations listing.
type ConversationSummary struct {
	ConversationID string    `json:"conversation_id"`
	RepoURL        string    `json:"repo_url"`
	RepoName       string    `json:"repo_name"`
	Mode           string    `json:"mode"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// CreateConversationRequest contains fields for creating a conversation.
type CreateConversationRequest struct {
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	RepoURL        string `json:"repo_url"`
	RepoName       string `json:"repo_name"`
	Branch         string `json:"branch"`
	Mode           string `json:"mode,omitempty"`
}

// SearchRequest is the body of POST /api/v1/search.
type SearchRequest struct {
	Query      string   `json:"query"`
	RepoIDs    []string `json:"repo_ids,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
}

// GraphQueryRequest is the body of POST /api/v1/search/graph.
type GraphQueryRequest struct {
	Query      string         `json:"query"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// IndexRepoRequest is the body of POST /api/v1/index/repo.
type IndexRepoRequest struct {
	RepoURL  string `json:"repo_url"`
	Branch   string `json:"branch,omitempty"`
	Language string `json:"language,omitempty"`
}

// SummaryFromConversation builds a listing entry from a conversation row.
func SummaryFromConversation(c *ent.Conversation) ConversationSummary {
	return ConversationSummary{
		ConversationID: c.ID,
		RepoURL:        c.RepoURL,
		RepoName:       c.RepoName,
		Mode:           string(c.Mode),
		LastActivityAt: c.LastActivityAt,
	}
}
