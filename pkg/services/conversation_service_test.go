package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay/coderelay/ent/message"
	"github.com/coderelay/coderelay/pkg/models"
	"github.com/coderelay/coderelay/pkg/services"
	testdb "github.com/coderelay/coderelay/test/database"
)

func newConversationService(t *testing.T) *services.ConversationService {
	client := testdb.NewTestClient(t)
	return services.NewConversationService(client, slog.Default())
}

func TestConversationService_CreateNormalizesURL(t *testing.T) {
	svc := newConversationService(t)
	ctx := context.Background()

	conv, err := svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget/tree/develop",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/acme/widget", conv.RepoURL)
	assert.Equal(t, "widget", conv.RepoName)
	assert.Equal(t, "develop", conv.Branch, "branch embedded in the URL wins")
	assert.True(t, conv.Active)
	assert.Equal(t, "EXPLORE", string(conv.Mode))
}

func TestConversationService_CreateValidation(t *testing.T) {
	svc := newConversationService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "",
		RepoURL: "https://github.com/acme/widget",
	})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "file:///etc/passwd",
	})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
		Mode:    "NOT_A_MODE",
	})
	assert.True(t, services.IsValidationError(err))
}

func TestConversationService_GetUnknownReturnsNotFound(t *testing.T) {
	svc := newConversationService(t)

	_, err := svc.Get(context.Background(), "no-such-conversation")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestConversationService_AppendAssignsSequenceNumbers(t *testing.T) {
	svc := newConversationService(t)
	ctx := context.Background()

	conv, err := svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)

	m1, err := svc.Append(ctx, conv.ID, message.RoleUser, "where is payment validated?")
	require.NoError(t, err)
	m2, err := svc.Append(ctx, conv.ID, message.RoleAssistant, "In pkg/billing.")
	require.NoError(t, err)
	m3, err := svc.Append(ctx, conv.ID, message.RoleUser, "show me more detail")
	require.NoError(t, err)

	assert.Equal(t, 1, m1.SequenceNumber)
	assert.Equal(t, 2, m2.SequenceNumber)
	assert.Equal(t, 3, m3.SequenceNumber)

	loaded, err := svc.GetWithMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Edges.Messages, 3)
	assert.Equal(t, "where is payment validated?", loaded.Edges.Messages[0].Content)
	assert.True(t, loaded.LastActivityAt.After(conv.LastActivityAt) ||
		loaded.LastActivityAt.Equal(conv.LastActivityAt))
}

func TestConversationService_AppendToClosedRejected(t *testing.T) {
	svc := newConversationService(t)
	ctx := context.Background()

	conv, err := svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Close(ctx, conv.ID))

	_, err = svc.Append(ctx, conv.ID, message.RoleUser, "hello?")
	assert.ErrorIs(t, err, services.ErrConversationClosed)
}

func TestConversationService_RecentUserMessages(t *testing.T) {
	svc := newConversationService(t)
	ctx := context.Background()

	conv, err := svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third", "fourth"} {
		_, err := svc.Append(ctx, conv.ID, message.RoleUser, content)
		require.NoError(t, err)
		_, err = svc.Append(ctx, conv.ID, message.RoleAssistant, "reply to "+content)
		require.NoError(t, err)
	}

	recent, err := svc.RecentUserMessages(ctx, conv.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "third", "fourth"}, recent)
}

func TestConversationService_ListActiveExcludesClosed(t *testing.T) {
	svc := newConversationService(t)
	ctx := context.Background()

	open, err := svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)

	closed, err := svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-1",
		RepoURL: "https://github.com/acme/gadget",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Close(ctx, closed.ID))

	// Another user's conversation must not leak in.
	_, err = svc.Create(ctx, models.CreateConversationRequest{
		UserID:  "user-2",
		RepoURL: "https://github.com/acme/widget",
	})
	require.NoError(t, err)

	convs, err := svc.ListActive(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, open.ID, convs[0].ID)
}
