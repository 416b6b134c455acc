package gitops

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	cloneTimeout   = 5 * time.Minute
	defaultTimeout = 60 * time.Second
)

// Runner executes git operations inside a workspace directory. Each
// repository gets its own subdirectory keyed by repository name.
type Runner struct {
	workspaceDir string
	logger       *slog.Logger
}

// NewRunner creates a runner rooted at workspaceDir, creating the directory
// if needed.
func NewRunner(workspaceDir string, logger *slog.Logger) (*Runner, error) {
	if err := os.MkdirAll(workspaceDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace directory: %w", err)
	}
	return &Runner{
		workspaceDir: workspaceDir,
		logger:       logger.With("component", "gitops"),
	}, nil
}

// RepoPath returns the workspace path a repository URL maps to.
func (r *Runner) RepoPath(repoURL string) string {
	return filepath.Join(r.workspaceDir, ExtractRepoName(repoURL))
}

// IsValidRepo reports whether path contains a usable git repository.
func (r *Runner) IsValidRepo(ctx context.Context, path string) bool {
	if info, err := os.Stat(filepath.Join(path, ".git")); err != nil || !info.IsDir() {
		return false
	}
	_, err := r.git(ctx, defaultTimeout, path, "rev-parse", "--git-dir")
	return err == nil
}

// Clone clones repoURL at branch into the workspace and returns the checkout
// path. Any existing directory at the target path is removed first.
func (r *Runner) Clone(ctx context.Context, repoURL, branch string) (string, error) {
	if err := ValidateRepoURL(repoURL); err != nil {
		return "", err
	}
	if err := ValidateBranch(branch); err != nil {
		return "", err
	}

	path := r.RepoPath(repoURL)
	if err := os.RemoveAll(path); err != nil {
		return "", fmt.Errorf("failed to clear checkout path: %w", err)
	}

	r.logger.Info("Cloning repository", "url", NormalizeURL(repoURL), "branch", branch, "path", path)

	_, err := r.git(ctx, cloneTimeout, r.workspaceDir,
		"clone", "--branch", branch, "--single-branch", repoURL, path)
	if err != nil {
		return "", fmt.Errorf("failed to clone repository: %w", err)
	}
	return path, nil
}

// Pull fast-forwards the checkout at path to the remote head.
func (r *Runner) Pull(ctx context.Context, path string) error {
	r.logger.Debug("Pulling repository", "path", path)
	if _, err := r.git(ctx, cloneTimeout, path, "pull", "--ff-only"); err != nil {
		return fmt.Errorf("failed to pull repository: %w", err)
	}
	return nil
}

// CurrentCommit returns the full HEAD commit hash of the checkout at path.
func (r *Runner) CurrentCommit(ctx context.Context, path string) (string, error) {
	out, err := r.git(ctx, defaultTimeout, path, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Sync ensures a current checkout of repoURL at branch exists in the
// workspace and returns its path and HEAD commit. An existing valid checkout
// is pulled; anything else is cloned fresh.
func (r *Runner) Sync(ctx context.Context, repoURL, branch string) (string, string, error) {
	path := r.RepoPath(repoURL)

	if r.IsValidRepo(ctx, path) {
		if err := r.Pull(ctx, path); err != nil {
			r.logger.Warn("Pull failed, falling back to fresh clone", "path", path, "error", err)
			if path, err = r.Clone(ctx, repoURL, branch); err != nil {
				return "", "", err
			}
		}
	} else {
		var err error
		if path, err = r.Clone(ctx, repoURL, branch); err != nil {
			return "", "", err
		}
	}

	commit, err := r.CurrentCommit(ctx, path)
	if err != nil {
		return "", "", err
	}
	return path, commit, nil
}

func (r *Runner) git(ctx context.Context, timeout time.Duration, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	// Never prompt for credentials; fail fast instead of hanging.
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
