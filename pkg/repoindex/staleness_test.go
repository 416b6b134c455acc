package repoindex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderelay/coderelay/ent"
)

type fakeProber struct {
	path   string
	commit string
	err    error
}

func (f *fakeProber) Sync(ctx context.Context, repoURL, branch string) (string, string, error) {
	return f.path, f.commit, f.err
}

func TestCheckStaleness_UnknownRepository(t *testing.T) {
	d := checkStaleness(context.Background(), &fakeProber{}, nil, "https://github.com/acme/widget", "main")

	assert.True(t, d.NeedsIndexing)
	assert.Equal(t, "Repository has never been indexed", d.Reason)
	assert.Empty(t, d.RepositoryID)
}

func TestCheckStaleness_ProbeFailureKeepsID(t *testing.T) {
	prober := &fakeProber{err: errors.New("network unreachable")}
	repo := &ent.Repository{ID: "repo-1", LastIndexedCommit: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}

	d := checkStaleness(context.Background(), prober, repo, "https://github.com/acme/widget", "main")

	assert.True(t, d.NeedsIndexing)
	assert.Equal(t, "repo-1", d.RepositoryID)
	assert.Contains(t, d.Reason, "Cannot determine current commit")
}

func TestCheckStaleness_NeverIndexedRow(t *testing.T) {
	prober := &fakeProber{path: "/ws/widget", commit: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}
	repo := &ent.Repository{ID: "repo-1"}

	d := checkStaleness(context.Background(), prober, repo, "https://github.com/acme/widget", "main")

	assert.True(t, d.NeedsIndexing)
	assert.Equal(t, "Repository has never been indexed", d.Reason)
	assert.Equal(t, "repo-1", d.RepositoryID)
	assert.Equal(t, "/ws/widget", d.WorkspacePath)
}

func TestCheckStaleness_CommitChanged(t *testing.T) {
	prober := &fakeProber{path: "/ws/widget", commit: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}
	repo := &ent.Repository{ID: "repo-1", LastIndexedCommit: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}

	d := checkStaleness(context.Background(), prober, repo, "https://github.com/acme/widget", "main")

	assert.True(t, d.NeedsIndexing)
	assert.Equal(t, "Commit changed (stored: aaaaaaa, current: bbbbbbb)", d.Reason)
	assert.Equal(t, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", d.CurrentCommit)
}

func TestCheckStaleness_UpToDate(t *testing.T) {
	prober := &fakeProber{path: "/ws/widget", commit: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}
	repo := &ent.Repository{ID: "repo-1", LastIndexedCommit: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}

	d := checkStaleness(context.Background(), prober, repo, "https://github.com/acme/widget", "main")

	assert.False(t, d.NeedsIndexing)
	assert.Equal(t, "repo-1", d.RepositoryID)
	assert.Equal(t, "/ws/widget", d.WorkspacePath)
}
