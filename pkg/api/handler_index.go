package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay/coderelay/pkg/indexing"
	"github.com/coderelay/coderelay/pkg/models"
)

// IndexRepo triggers a manual indexing run for a repository, outside any
// conversation. The checkout and index run happen on the worker pool.
func (s *Server) IndexRepo(c *gin.Context) {
	var req models.IndexRepoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.RepoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "repo_url must not be empty"})
		return
	}

	repo, err := s.repos.Ensure(c.Request.Context(), req.RepoURL, req.Branch, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}

	repoID, repoURL, branch := repo.ID, repo.URL, repo.Branch
	if err := s.pool.Submit(func(ctx context.Context) {
		s.runManualIndex(ctx, repoID, repoURL, branch)
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success":       true,
		"repository_id": repo.ID,
		"status":        "indexing",
	})
}

func (s *Server) runManualIndex(ctx context.Context, repoID, repoURL, branch string) {
	path, commit, err := s.git.Sync(ctx, repoURL, branch)
	if err != nil {
		s.logger.Error("Manual index checkout failed",
			"repository_id", repoID, "error", err)
		return
	}

	if _, err := s.graph.DeleteRepositoryEntities(ctx, repoID); err != nil {
		s.logger.Warn("Failed to clear entities before manual re-index",
			"repository_id", repoID, "error", err)
	}

	result := <-s.indexer.IndexAsync(ctx, indexing.Request{
		RepositoryID: repoID,
		RepoURL:      repoURL,
		Branch:       branch,
		LocalPath:    path,
		CommitHash:   commit,
	})
	if !result.Success {
		s.logger.Error("Manual index run failed",
			"repository_id", repoID, "errors", result.Errors)
		return
	}

	if err := s.repos.MarkIndexed(ctx, repoID, commit); err != nil {
		s.logger.Error("Failed to record index completion",
			"repository_id", repoID, "error", err)
	}
}

// IndexStatus reports progress of an indexing run plus the stored index
// state.
func (s *Server) IndexStatus(c *gin.Context) {
	repoID := c.Param("repo_id")

	repo, err := s.repos.Get(c.Request.Context(), repoID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"repository_id":       repo.ID,
		"url":                 repo.URL,
		"last_indexed_commit": repo.LastIndexedCommit,
		"last_indexed_at":     repo.LastIndexedAt,
	}
	if status, err := s.indexer.Status(c.Request.Context(), repoID); err == nil {
		resp["current_step"] = status.CurrentStep
		resp["percent"] = status.Percent
	}

	c.JSON(http.StatusOK, resp)
}
