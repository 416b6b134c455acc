// Package services contains the persistence-facing business logic:
// conversation lifecycle, message history, and repository index state.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coderelay/coderelay/ent"
	"github.com/coderelay/coderelay/ent/conversation"
	"github.com/coderelay/coderelay/ent/message"
	"github.com/coderelay/coderelay/pkg/database"
	"github.com/coderelay/coderelay/pkg/gitops"
	"github.com/coderelay/coderelay/pkg/models"
)

const dbTimeout = 5 * time.Second

// ConversationService manages conversations and their message history.
type ConversationService struct {
	db     *database.Client
	logger *slog.Logger

	// Appends to the same conversation are serialized so sequence numbers
	// stay gapless under concurrent turns.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewConversationService creates a conversation service.
func NewConversationService(db *database.Client, logger *slog.Logger) *ConversationService {
	return &ConversationService{
		db:     db,
		logger: logger.With("service", "conversation"),
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *ConversationService) lockFor(conversationID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[conversationID] = lock
	}
	return lock
}

// Create starts a new conversation bound to a repository. The repository URL
// is validated and normalized; a branch embedded in the URL wins over the
// request's branch field.
func (s *ConversationService) Create(ctx context.Context, req models.CreateConversationRequest) (*ent.Conversation, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "must not be empty")
	}
	if err := gitops.ValidateRepoURL(req.RepoURL); err != nil {
		return nil, NewValidationError("repo_url", err.Error())
	}

	branch := gitops.ExtractBranch(req.RepoURL, req.Branch)
	if err := gitops.ValidateBranch(branch); err != nil {
		return nil, NewValidationError("branch", err.Error())
	}

	mode := conversation.ModeEXPLORE
	if req.Mode != "" {
		mode = conversation.Mode(req.Mode)
		if err := conversation.ModeValidator(mode); err != nil {
			return nil, NewValidationError("mode", err.Error())
		}
	}

	normalizedURL := gitops.NormalizeURL(req.RepoURL)

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	conv, err := s.db.Conversation.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetRepoURL(normalizedURL).
		SetRepoName(gitops.ExtractRepoName(normalizedURL)).
		SetBranch(branch).
		SetMode(mode).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	s.logger.Info("Conversation created",
		"conversation_id", conv.ID, "user_id", conv.UserID,
		"repo_url", conv.RepoURL, "branch", conv.Branch, "mode", conv.Mode)
	return conv, nil
}

// Get returns a conversation by id.
func (s *ConversationService) Get(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	conv, err := s.db.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// GetWithMessages returns a conversation with its messages ordered by
// sequence number.
func (s *ConversationService) GetWithMessages(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	conv, err := s.db.Conversation.Query().
		Where(conversation.ID(conversationID)).
		WithMessages(func(q *ent.MessageQuery) {
			q.Order(ent.Asc(message.FieldSequenceNumber))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation with messages: %w", err)
	}
	return conv, nil
}

// RecentUserMessages returns the content of the last n user messages, oldest
// first. Used for feedback detection in the agent loop.
func (s *ConversationService) RecentUserMessages(ctx context.Context, conversationID string, n int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	msgs, err := s.db.Message.Query().
		Where(
			message.ConversationID(conversationID),
			message.RoleEQ(message.RoleUser),
		).
		Order(ent.Desc(message.FieldSequenceNumber)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent user messages: %w", err)
	}

	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[len(msgs)-1-i] = m.Content
	}
	return out, nil
}

// Append adds a message to a conversation, assigning the next sequence
// number and bumping last_activity_at. Appends to closed conversations are
// rejected.
func (s *ConversationService) Append(ctx context.Context, conversationID string, role message.Role, content string) (*ent.Message, error) {
	if content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}

	lock := s.lockFor(conversationID)
	lock.Lock()
	defer lock.Unlock()

	conv, err := s.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Active {
		return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrConversationClosed)
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	seq := 1
	last, err := s.db.Message.Query().
		Where(message.ConversationID(conversationID)).
		Order(ent.Desc(message.FieldSequenceNumber)).
		First(ctx)
	switch {
	case err == nil:
		seq = last.SequenceNumber + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to determine next sequence number: %w", err)
	}

	msg, err := s.db.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetRole(role).
		SetContent(content).
		SetSequenceNumber(seq).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	if err := s.db.Conversation.UpdateOneID(conversationID).
		SetLastActivityAt(time.Now()).
		Exec(ctx); err != nil {
		s.logger.Warn("Failed to bump conversation activity",
			"conversation_id", conversationID, "error", err)
	}

	return msg, nil
}

// ListActive returns a user's open conversations, most recently active
// first.
func (s *ConversationService) ListActive(ctx context.Context, userID string) ([]*ent.Conversation, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	convs, err := s.db.Conversation.Query().
		Where(
			conversation.UserID(userID),
			conversation.Active(true),
		).
		Order(ent.Desc(conversation.FieldLastActivityAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

// Close marks a conversation inactive. Closing an already-closed
// conversation is a no-op.
func (s *ConversationService) Close(ctx context.Context, conversationID string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	err := s.db.Conversation.UpdateOneID(conversationID).
		SetActive(false).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return fmt.Errorf("failed to close conversation: %w", err)
	}

	s.logger.Info("Conversation closed", "conversation_id", conversationID)
	return nil
}
