package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DefaultsOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Agent.MaxToolIterations)
	assert.Equal(t, 5, cfg.Agent.Executor.CorePool)
	assert.Equal(t, 10, cfg.Agent.Executor.MaxPool)
	assert.Equal(t, 100, cfg.Agent.Executor.Queue)
	assert.Equal(t, 500, cfg.Indexing.PollIntervalMs)
	assert.Equal(t, float32(0), cfg.Selector.Temperature)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
workspace_dir: /var/lib/coderelay
agent:
  max_tool_iterations: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coderelay.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/coderelay", cfg.WorkspaceDir)
	assert.Equal(t, 4, cfg.Agent.MaxToolIterations)
	// Untouched sections keep their defaults.
	assert.Equal(t, 5, cfg.Agent.Executor.CorePool)
}

func TestInitialize_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	yaml := `
agent:
  max_tool_iterations: -1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coderelay.yaml"), []byte(yaml), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tool_iterations")
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("CODERELAY_TEST_MODEL", "llama3.3:70b")

	out := ExpandEnv([]byte("model: {{.CODERELAY_TEST_MODEL}}"))
	assert.Equal(t, "model: llama3.3:70b", string(out))

	// Missing variables expand to empty, not an error.
	out = ExpandEnv([]byte("key: {{.CODERELAY_TEST_UNSET_VAR}}"))
	assert.Equal(t, "key: ", string(out))
}
