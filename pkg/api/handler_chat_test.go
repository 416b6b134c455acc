package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay/coderelay/ent/message"
	"github.com/coderelay/coderelay/pkg/events"
	"github.com/coderelay/coderelay/pkg/models"
	"github.com/coderelay/coderelay/pkg/queue"
	"github.com/coderelay/coderelay/pkg/services"
	testdb "github.com/coderelay/coderelay/test/database"
)

type recordingRunner struct {
	mu    sync.Mutex
	turns []string
}

func (r *recordingRunner) Run(ctx context.Context, conversationID, userMessage string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns = append(r.turns, conversationID+":"+userMessage)
	return "ok"
}

type chatFixture struct {
	server        *Server
	handler       http.Handler
	conversations *services.ConversationService
	runner        *recordingRunner
	pool          *queue.Pool
}

func newChatFixture(t *testing.T) *chatFixture {
	logger := slog.Default()
	db := testdb.NewTestClient(t)

	conversations := services.NewConversationService(db, logger)
	repos := services.NewRepositoryService(db, logger)
	hub := events.NewHub(logger)
	pool := queue.NewPool(queue.Config{
		CoreWorkers:   2,
		MaxWorkers:    4,
		QueueCapacity: 10,
		ShutdownGrace: 2 * time.Second,
	}, logger)
	t.Cleanup(pool.Stop)

	runner := &recordingRunner{}
	server := NewServer(db, conversations, repos, hub, pool, runner, nil, nil, nil, logger)
	return &chatFixture{
		server:        server,
		handler:       server.Handler(),
		conversations: conversations,
		runner:        runner,
		pool:          pool,
	}
}

func (f *chatFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestPostChat_MissingMessage(t *testing.T) {
	f := newChatFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/chat", models.ChatRequest{
		RepoURL: "https://github.com/acme/widget",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestPostChat_NewConversationRequiresRepoURL(t *testing.T) {
	f := newChatFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/chat", models.ChatRequest{
		Message: "where is payment validated?",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "repo_url")
}

func TestPostChat_NewConversationAccepted(t *testing.T) {
	f := newChatFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/chat", models.ChatRequest{
		Message: "where is payment validated?",
		RepoURL: "https://github.com/acme/widget",
		UserID:  "user-1",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ConversationID)
	assert.Equal(t, "Processing...", resp.Response)

	// The turn lands on the pool.
	require.Eventually(t, func() bool {
		f.runner.mu.Lock()
		defer f.runner.mu.Unlock()
		return len(f.runner.turns) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPostChat_UnknownConversation(t *testing.T) {
	f := newChatFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/chat", models.ChatRequest{
		Message:        "follow up",
		ConversationID: "no-such-id",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHistory(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	conv, err := f.conversations.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)
	_, err = f.conversations.Append(ctx, conv.ID, message.RoleUser, "question")
	require.NoError(t, err)
	_, err = f.conversations.Append(ctx, conv.ID, message.RoleAssistant, "answer")
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/chat/"+conv.ID+"/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "user", resp.Messages[0].Role)
	assert.Equal(t, "question", resp.Messages[0].Content)
	assert.Equal(t, "assistant", resp.Messages[1].Role)
}

func TestGetStatus(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	conv, err := f.conversations.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/chat/"+conv.ID+"/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, "widget", resp.RepoName)
	assert.False(t, resp.HasActiveStream)
}

func TestDeleteConversation(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	conv, err := f.conversations.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodDelete, "/api/v1/chat/"+conv.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	statusRec := f.do(t, http.MethodGet, "/api/v1/chat/"+conv.ID+"/status", nil)
	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(statusRec.Body.Bytes(), &resp))
	assert.Equal(t, "CLOSED", resp.Status)

	missing := f.do(t, http.MethodDelete, "/api/v1/chat/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestListConversations(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	_, err := f.conversations.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/chat/conversations?user_id=user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Conversations []models.ConversationSummary `json:"conversations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Conversations, 1)
	assert.Equal(t, "widget", resp.Conversations[0].RepoName)
}
