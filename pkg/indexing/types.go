// Package indexing integrates the external code-indexing service that
// parses a checkout and writes entities into the graph store.
package indexing

import "context"

// Request describes one indexing run over a local checkout.
type Request struct {
	RepositoryID string `json:"repository_id"`
	RepoURL      string `json:"repo_url"`
	Branch       string `json:"branch"`
	LocalPath    string `json:"local_path"`
	CommitHash   string `json:"commit_hash"`
}

// Status is a point-in-time progress snapshot of a running index job.
type Status struct {
	RepositoryID string `json:"repository_id"`
	CurrentStep  string `json:"current_step"`
	Percent      int    `json:"percent"`
}

// Result is the terminal outcome of an indexing run.
type Result struct {
	Success         bool     `json:"success"`
	RepositoryID    string   `json:"repository_id"`
	EntitiesCreated int      `json:"entities_created"`
	DurationMs      int64    `json:"duration_ms"`
	Errors          []string `json:"errors,omitempty"`
}

// Service starts index jobs and reports their progress.
type Service interface {
	// IndexAsync starts an indexing run and returns a channel that yields
	// exactly one Result when the run finishes.
	IndexAsync(ctx context.Context, req Request) <-chan Result

	// Status returns the current progress of the job for a repository.
	Status(ctx context.Context, repositoryID string) (*Status, error)
}
