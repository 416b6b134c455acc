// Package config loads and validates the coderelay.yaml configuration.
package config

import (
	"fmt"
	"time"
)

// Config is the umbrella configuration object returned by Initialize and
// passed into constructors throughout the application.
type Config struct {
	configDir string

	// WorkspaceDir is the filesystem root for repository clones.
	WorkspaceDir string `yaml:"workspace_dir"`

	Agent       *AgentConfig    `yaml:"agent"`
	Indexing    *IndexingConfig `yaml:"indexing"`
	Selector    *ProviderConfig `yaml:"selector"`
	Synthesizer *ProviderConfig `yaml:"synthesizer"`
	Graph       *GraphConfig    `yaml:"graph"`
	Git         *GitConfig      `yaml:"git"`
}

// AgentConfig controls the agent loop and its background executor.
type AgentConfig struct {
	// MaxToolIterations is the hard cap of the selection-execution cycle.
	MaxToolIterations int `yaml:"max_tool_iterations"`

	Executor *ExecutorConfig `yaml:"executor"`
}

// ExecutorConfig sizes the background worker pool.
// CorePool workers run permanently; when the submission queue is full,
// surge workers are spawned up to MaxPool and retire once the queue drains.
type ExecutorConfig struct {
	CorePool int `yaml:"core_pool"`
	MaxPool  int `yaml:"max_pool"`
	Queue    int `yaml:"queue"`

	// ShutdownGrace is the max time to wait for in-flight conversations
	// during shutdown.
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// IndexingConfig points at the external indexing service.
type IndexingConfig struct {
	ServiceURL     string `yaml:"service_url"`
	PollIntervalMs int    `yaml:"poll_interval_ms"`
}

// PollInterval returns the status polling granularity as a duration.
func (c *IndexingConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ProviderConfig describes one model endpoint (Selector or Synthesizer).
// APIKeyEnv names the environment variable holding the key so secrets never
// live in YAML.
type ProviderConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	Temperature float32       `yaml:"temperature"`
	MaxRetries  int           `yaml:"max_retries"`
	Timeout     time.Duration `yaml:"timeout"`
}

// GraphConfig points at the graph store.
type GraphConfig struct {
	URI         string `yaml:"uri"`
	Username    string `yaml:"username"`
	PasswordEnv string `yaml:"password_env"`
	Database    string `yaml:"database"`
}

// GitConfig carries per-provider URL conventions.
type GitConfig struct {
	Providers map[string]GitProviderConfig `yaml:"providers"`
}

// GitProviderConfig describes one hosting provider's URL layout.
type GitProviderConfig struct {
	URLPattern      string `yaml:"url_pattern"`
	BranchSeparator string `yaml:"branch_separator"`
	DefaultBranch   string `yaml:"default_branch"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// validate performs basic sanity checks after defaults are applied.
func (c *Config) validate() error {
	if c.WorkspaceDir == "" {
		return fmt.Errorf("workspace_dir must not be empty")
	}
	if c.Agent.MaxToolIterations < 1 {
		return fmt.Errorf("agent.max_tool_iterations must be >= 1, got %d", c.Agent.MaxToolIterations)
	}
	ex := c.Agent.Executor
	if ex.CorePool < 1 || ex.MaxPool < ex.CorePool {
		return fmt.Errorf("executor pool sizing invalid: core=%d max=%d", ex.CorePool, ex.MaxPool)
	}
	if ex.Queue < 1 {
		return fmt.Errorf("agent.executor.queue must be >= 1, got %d", ex.Queue)
	}
	if c.Indexing.PollIntervalMs < 50 {
		return fmt.Errorf("indexing.poll_interval_ms must be >= 50, got %d", c.Indexing.PollIntervalMs)
	}
	if c.Selector.Temperature < 0 {
		return fmt.Errorf("selector.temperature must be >= 0")
	}
	return nil
}
