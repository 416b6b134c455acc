package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay/coderelay/pkg/services"
	testdb "github.com/coderelay/coderelay/test/database"
)

func newRepositoryService(t *testing.T) *services.RepositoryService {
	client := testdb.NewTestClient(t)
	return services.NewRepositoryService(client, slog.Default())
}

func TestRepositoryService_EnsureCreatesOnce(t *testing.T) {
	svc := newRepositoryService(t)
	ctx := context.Background()

	first, err := svc.Ensure(ctx, "https://github.com/acme/widget", "main", "go")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widget", first.URL)
	assert.Equal(t, "widget", first.Name)

	// URL variants collapse onto the same row.
	second, err := svc.Ensure(ctx, "https://github.com/acme/widget/tree/main", "", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestRepositoryService_GetByURLNormalizes(t *testing.T) {
	svc := newRepositoryService(t)
	ctx := context.Background()

	created, err := svc.Ensure(ctx, "https://gitlab.com/acme/widget", "main", "")
	require.NoError(t, err)

	found, err := svc.GetByURL(ctx, "https://gitlab.com/acme/widget/-/tree/main?ref_type=heads")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestRepositoryService_GetByURLUnknown(t *testing.T) {
	svc := newRepositoryService(t)

	_, err := svc.GetByURL(context.Background(), "https://github.com/acme/missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRepositoryService_MarkIndexed(t *testing.T) {
	svc := newRepositoryService(t)
	ctx := context.Background()

	repo, err := svc.Ensure(ctx, "https://github.com/acme/widget", "main", "")
	require.NoError(t, err)
	assert.Empty(t, repo.LastIndexedCommit)

	commit := "0123456789abcdef0123456789abcdef01234567"
	require.NoError(t, svc.MarkIndexed(ctx, repo.ID, commit))

	updated, err := svc.Get(ctx, repo.ID)
	require.NoError(t, err)
	assert.Equal(t, commit, updated.LastIndexedCommit)
	require.NotNil(t, updated.LastIndexedAt)
}

func TestRepositoryService_EnsureRejectsBadInput(t *testing.T) {
	svc := newRepositoryService(t)
	ctx := context.Background()

	_, err := svc.Ensure(ctx, "http://github.com/acme/widget", "main", "")
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Ensure(ctx, "https://github.com/acme/widget2", "bad branch", "")
	assert.True(t, services.IsValidationError(err))
}
