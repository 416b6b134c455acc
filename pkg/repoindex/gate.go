package repoindex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/coderelay/coderelay/ent"
	"github.com/coderelay/coderelay/pkg/events"
	"github.com/coderelay/coderelay/pkg/gitops"
	"github.com/coderelay/coderelay/pkg/indexing"
	"github.com/coderelay/coderelay/pkg/metrics"
	"github.com/coderelay/coderelay/pkg/services"
	"github.com/coderelay/coderelay/pkg/tools"
)

// entityDeleter clears a repository's entities from the graph before a
// re-index. Satisfied by *graph.Store.
type entityDeleter interface {
	DeleteRepositoryEntities(ctx context.Context, repositoryID string) (int, error)
}

// Gate is the tool interceptor that guarantees an up-to-date index before
// any graph-backed tool runs. Concurrent turns against the same repository
// share one indexing run via singleflight.
type Gate struct {
	repos        *services.RepositoryService
	runner       workspaceProber
	graph        entityDeleter
	indexer      indexing.Service
	hub          *events.Hub
	pollInterval time.Duration
	logger       *slog.Logger

	group singleflight.Group
}

// NewGate wires the lifecycle gate.
func NewGate(
	repos *services.RepositoryService,
	runner workspaceProber,
	graph entityDeleter,
	indexer indexing.Service,
	hub *events.Hub,
	pollInterval time.Duration,
	logger *slog.Logger,
) *Gate {
	return &Gate{
		repos:        repos,
		runner:       runner,
		graph:        graph,
		indexer:      indexer,
		hub:          hub,
		pollInterval: pollInterval,
		logger:       logger.With("component", "repoindex"),
	}
}

func (g *Gate) Name() string { return "repository_lifecycle_gate" }

// AppliesTo limits the gate to tools that read the code graph.
func (g *Gate) AppliesTo(tool tools.Tool) bool {
	return tool.RequiresIndexedRepo()
}

// Before ensures the conversation's repository is indexed at its current
// commit and binds the repository id into the tool context. A failed
// indexing run vetoes the tool execution.
func (g *Gate) Before(ctx context.Context, tc *tools.Context, tool tools.Tool, params map[string]any) error {
	// Already bound earlier in this loop; tools within one turn share the
	// binding.
	if tc.RepositoryID() != "" {
		return nil
	}

	normalizedURL := gitops.NormalizeURL(tc.RepoURL)

	// One indexing run per repository URL, no matter how many turns hit
	// the gate at once.
	v, err, _ := g.group.Do(normalizedURL, func() (any, error) {
		return g.ensureIndexed(ctx, tc.ConversationID, normalizedURL, tc.Branch)
	})
	if err != nil {
		return err
	}

	bound := v.(Decision)
	tc.BindRepository(bound.RepositoryID, bound.WorkspacePath)
	return nil
}

// After is a no-op; the gate only guards the front of an execution.
func (g *Gate) After(ctx context.Context, tc *tools.Context, tool tools.Tool, result tools.Result) error {
	return nil
}

func (g *Gate) ensureIndexed(ctx context.Context, conversationID, normalizedURL, branch string) (Decision, error) {
	var repo *ent.Repository
	existing, err := g.repos.GetByURL(ctx, normalizedURL)
	switch {
	case err == nil:
		repo = existing
	case errors.Is(err, services.ErrNotFound):
		repo = nil
	default:
		return Decision{}, fmt.Errorf("failed to look up repository: %w", err)
	}

	decision := checkStaleness(ctx, g.runner, repo, normalizedURL, branch)
	if !decision.NeedsIndexing {
		g.logger.Debug("Repository index is current",
			"repository_id", decision.RepositoryID,
			"commit", shortCommit(decision.CurrentCommit))
		return decision, nil
	}

	g.logger.Info("Repository needs indexing",
		"url", normalizedURL, "reason", decision.Reason)
	g.hub.SendThinking(conversationID, "Indexing repository...")

	// A fresh repository row, or a repository we could not probe earlier,
	// needs a checkout before indexing can run.
	if decision.WorkspacePath == "" {
		path, commit, err := g.runner.Sync(ctx, normalizedURL, branch)
		if err != nil {
			return Decision{}, fmt.Errorf("failed to prepare checkout: %w", err)
		}
		decision.WorkspacePath = path
		decision.CurrentCommit = commit
	}

	if repo == nil {
		repo, err = g.repos.Ensure(ctx, normalizedURL, branch, "")
		if err != nil {
			return Decision{}, fmt.Errorf("failed to register repository: %w", err)
		}
		decision.RepositoryID = repo.ID
	}

	// Stale entities from the previous commit are removed up front so a
	// successful run leaves no mixed-commit graph. Deletion failure is not
	// fatal; the indexer overwrites by id.
	if _, err := g.graph.DeleteRepositoryEntities(ctx, decision.RepositoryID); err != nil {
		g.logger.Warn("Failed to clear previous entities before re-index",
			"repository_id", decision.RepositoryID, "error", err)
	}

	result, err := g.runIndex(ctx, conversationID, normalizedURL, branch, decision)
	if err != nil {
		metrics.IndexRuns.WithLabelValues("error").Inc()
		return Decision{}, err
	}
	if !result.Success {
		metrics.IndexRuns.WithLabelValues("failure").Inc()
		return Decision{}, fmt.Errorf("indexing failed: %s", firstError(result.Errors))
	}
	metrics.IndexRuns.WithLabelValues("success").Inc()

	if err := g.repos.MarkIndexed(ctx, decision.RepositoryID, decision.CurrentCommit); err != nil {
		return Decision{}, err
	}

	g.hub.SendThinking(conversationID, "Repository indexed and ready")
	return decision, nil
}

// runIndex starts the async run and relays progress as thinking events,
// polling status until the run completes. Only step changes are relayed.
func (g *Gate) runIndex(ctx context.Context, conversationID, repoURL, branch string, decision Decision) (indexing.Result, error) {
	done := g.indexer.IndexAsync(ctx, indexing.Request{
		RepositoryID: decision.RepositoryID,
		RepoURL:      repoURL,
		Branch:       branch,
		LocalPath:    decision.WorkspacePath,
		CommitHash:   decision.CurrentCommit,
	})

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	lastStep := ""
	for {
		select {
		case <-ctx.Done():
			return indexing.Result{}, ctx.Err()
		case result := <-done:
			return result, nil
		case <-ticker.C:
			status, err := g.indexer.Status(ctx, decision.RepositoryID)
			if err != nil {
				g.logger.Debug("Status poll failed", "error", err)
				continue
			}
			if status.CurrentStep != "" && status.CurrentStep != lastStep {
				lastStep = status.CurrentStep
				g.hub.SendThinking(conversationID,
					fmt.Sprintf("Indexing repository: %s (%d%%)", status.CurrentStep, status.Percent))
			}
		}
	}
}

func firstError(errs []string) string {
	if len(errs) == 0 {
		return "unknown error"
	}
	return errs[0]
}
