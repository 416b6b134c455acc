package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coderelay/coderelay/ent"
	"github.com/coderelay/coderelay/ent/repository"
	"github.com/coderelay/coderelay/pkg/database"
	"github.com/coderelay/coderelay/pkg/gitops"
)

// RepositoryService tracks known repositories and their index state. The
// stored URL is always the normalized form, so lookups by any URL variant
// hit the same row.
type RepositoryService struct {
	db     *database.Client
	logger *slog.Logger
}

// NewRepositoryService creates a repository service.
func NewRepositoryService(db *database.Client, logger *slog.Logger) *RepositoryService {
	return &RepositoryService{
		db:     db,
		logger: logger.With("service", "repository"),
	}
}

// GetByURL returns the repository row for a URL, normalizing first.
func (s *RepositoryService) GetByURL(ctx context.Context, repoURL string) (*ent.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	repo, err := s.db.Repository.Query().
		Where(repository.URL(gitops.NormalizeURL(repoURL))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("repository %s: %w", gitops.NormalizeURL(repoURL), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}
	return repo, nil
}

// Get returns a repository by id.
func (s *RepositoryService) Get(ctx context.Context, repositoryID string) (*ent.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	repo, err := s.db.Repository.Get(ctx, repositoryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("repository %s: %w", repositoryID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}
	return repo, nil
}

// Ensure returns the repository row for a URL, creating it if absent.
func (s *RepositoryService) Ensure(ctx context.Context, repoURL, branch, language string) (*ent.Repository, error) {
	if err := gitops.ValidateRepoURL(repoURL); err != nil {
		return nil, NewValidationError("repo_url", err.Error())
	}
	normalizedURL := gitops.NormalizeURL(repoURL)

	existing, err := s.GetByURL(ctx, normalizedURL)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if branch == "" {
		branch = gitops.ExtractBranch(repoURL, "")
	}
	if err := gitops.ValidateBranch(branch); err != nil {
		return nil, NewValidationError("branch", err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	repo, err := s.db.Repository.Create().
		SetID(uuid.New().String()).
		SetURL(normalizedURL).
		SetName(gitops.ExtractRepoName(normalizedURL)).
		SetBranch(branch).
		SetLanguage(language).
		Save(ctx)
	if err != nil {
		// A concurrent Ensure may have won the unique-URL race.
		if ent.IsConstraintError(err) {
			return s.GetByURL(ctx, normalizedURL)
		}
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	s.logger.Info("Repository registered",
		"repository_id", repo.ID, "url", repo.URL, "branch", repo.Branch)
	return repo, nil
}

// MarkIndexed records the commit a successful index run covered.
func (s *RepositoryService) MarkIndexed(ctx context.Context, repositoryID, commitHash string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	err := s.db.Repository.UpdateOneID(repositoryID).
		SetLastIndexedCommit(commitHash).
		SetLastIndexedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("repository %s: %w", repositoryID, ErrNotFound)
		}
		return fmt.Errorf("failed to mark repository indexed: %w", err)
	}

	s.logger.Info("Repository marked indexed",
		"repository_id", repositoryID, "commit", shortCommit(commitHash))
	return nil
}

func shortCommit(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
