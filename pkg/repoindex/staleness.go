// Package repoindex keeps the code graph in sync with repositories. Its
// gate interceptor runs before every tool that needs an indexed repository,
// re-indexing when the checkout's head moved past the indexed commit.
package repoindex

import (
	"context"
	"fmt"

	"github.com/coderelay/coderelay/ent"
)

// Decision is the outcome of a staleness check.
type Decision struct {
	NeedsIndexing bool
	Reason        string

	// RepositoryID is set when a repository row exists, whether or not it
	// is stale.
	RepositoryID string

	// CurrentCommit is the probed HEAD, empty when the probe failed.
	CurrentCommit string

	// WorkspacePath is the local checkout, empty when the probe failed.
	WorkspacePath string
}

// workspaceProber syncs a checkout and reports its head commit.
type workspaceProber interface {
	Sync(ctx context.Context, repoURL, branch string) (path string, commit string, err error)
}

// checkStaleness decides whether a repository must be (re-)indexed. repo is
// nil when no repository row exists yet.
func checkStaleness(ctx context.Context, prober workspaceProber, repo *ent.Repository, repoURL, branch string) Decision {
	if repo == nil {
		return Decision{
			NeedsIndexing: true,
			Reason:        "Repository has never been indexed",
		}
	}

	path, commit, err := prober.Sync(ctx, repoURL, branch)
	if err != nil {
		// Cannot tell whether the index is current; re-index to be safe
		// but keep the known repository id.
		return Decision{
			NeedsIndexing: true,
			Reason:        fmt.Sprintf("Cannot determine current commit: %v", err),
			RepositoryID:  repo.ID,
		}
	}

	if repo.LastIndexedCommit == "" {
		return Decision{
			NeedsIndexing: true,
			Reason:        "Repository has never been indexed",
			RepositoryID:  repo.ID,
			CurrentCommit: commit,
			WorkspacePath: path,
		}
	}

	if repo.LastIndexedCommit != commit {
		return Decision{
			NeedsIndexing: true,
			Reason: fmt.Sprintf("Commit changed (stored: %s, current: %s)",
				shortCommit(repo.LastIndexedCommit), shortCommit(commit)),
			RepositoryID:  repo.ID,
			CurrentCommit: commit,
			WorkspacePath: path,
		}
	}

	return Decision{
		RepositoryID:  repo.ID,
		CurrentCommit: commit,
		WorkspacePath: path,
	}
}

func shortCommit(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
