package repoindex

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay/coderelay/pkg/events"
	"github.com/coderelay/coderelay/pkg/indexing"
	"github.com/coderelay/coderelay/pkg/models"
)

// fakeIndexer completes its run after the third status poll, stepping
// through two distinct progress states along the way.
type fakeIndexer struct {
	mu    sync.Mutex
	polls int
	done  chan indexing.Result
}

func (f *fakeIndexer) IndexAsync(ctx context.Context, req indexing.Request) <-chan indexing.Result {
	f.done = make(chan indexing.Result, 1)
	return f.done
}

func (f *fakeIndexer) Status(ctx context.Context, repositoryID string) (*indexing.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	switch f.polls {
	case 1:
		return &indexing.Status{RepositoryID: repositoryID, CurrentStep: "parsing sources", Percent: 40}, nil
	case 2:
		return &indexing.Status{RepositoryID: repositoryID, CurrentStep: "writing entities", Percent: 80}, nil
	default:
		select {
		case f.done <- indexing.Result{Success: true, RepositoryID: repositoryID, EntitiesCreated: 12}:
		default:
		}
		return &indexing.Status{RepositoryID: repositoryID, CurrentStep: "writing entities", Percent: 95}, nil
	}
}

func TestRunIndex_RelaysStepChangesAsThinking(t *testing.T) {
	hub := events.NewHub(slog.Default())
	t.Cleanup(hub.Close)

	g := &Gate{
		indexer:      &fakeIndexer{},
		hub:          hub,
		pollInterval: 5 * time.Millisecond,
		logger:       slog.Default(),
	}

	ch, unsub := hub.Subscribe("conv-1")
	defer unsub()

	result, err := g.runIndex(context.Background(), "conv-1",
		"https://github.com/acme/widget", "main",
		Decision{RepositoryID: "repo-1", CurrentCommit: "abc1234", WorkspacePath: "/tmp/w"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 12, result.EntitiesCreated)

	var thinking []string
	for drained := false; !drained; {
		select {
		case e := <-ch:
			if e.Type == models.EventThinking {
				thinking = append(thinking, e.Content)
			}
		default:
			drained = true
		}
	}

	require.Len(t, thinking, 2, "only step changes are relayed")
	assert.Equal(t, "Indexing repository: parsing sources (40%)", thinking[0])
	assert.Equal(t, "Indexing repository: writing entities (80%)", thinking[1])
}

func TestRunIndex_CancelledContext(t *testing.T) {
	hub := events.NewHub(slog.Default())
	t.Cleanup(hub.Close)

	g := &Gate{
		indexer:      &fakeIndexer{},
		hub:          hub,
		pollInterval: time.Minute,
		logger:       slog.Default(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.runIndex(ctx, "conv-1", "https://github.com/acme/widget", "main",
		Decision{RepositoryID: "repo-1"})
	assert.ErrorIs(t, err, context.Canceled)
}
