package config

import "time"

// DefaultConfig returns the built-in defaults. User YAML values are merged
// on top; anything unset keeps these values.
func DefaultConfig() *Config {
	return &Config{
		WorkspaceDir: "/tmp/ai-orchestrator-workspace",
		Agent: &AgentConfig{
			MaxToolIterations: 10,
			Executor: &ExecutorConfig{
				CorePool:      5,
				MaxPool:       10,
				Queue:         100,
				ShutdownGrace: 60 * time.Second,
			},
		},
		Indexing: &IndexingConfig{
			ServiceURL:     "http://localhost:8090",
			PollIntervalMs: 500,
		},
		Selector: &ProviderConfig{
			BaseURL:     "http://localhost:11434/v1",
			Model:       "qwen2.5-coder:7b",
			APIKeyEnv:   "SELECTOR_API_KEY",
			Temperature: 0.0,
			MaxRetries:  3,
			Timeout:     60 * time.Second,
		},
		Synthesizer: &ProviderConfig{
			BaseURL:     "http://localhost:11434/v1",
			Model:       "llama3.3:70b",
			APIKeyEnv:   "SYNTHESIZER_API_KEY",
			Temperature: 0.4,
			MaxRetries:  3,
			Timeout:     5 * time.Minute,
		},
		Graph: &GraphConfig{
			URI:         "bolt://localhost:7687",
			Username:    "neo4j",
			PasswordEnv: "GRAPH_DB_PASSWORD",
			Database:    "neo4j",
		},
		Git: &GitConfig{
			Providers: map[string]GitProviderConfig{
				"github": {
					URLPattern:      `^https://github\.com/`,
					BranchSeparator: "/tree/",
					DefaultBranch:   "main",
				},
				"gitlab": {
					URLPattern:      `^https://gitlab\.com/`,
					BranchSeparator: "/-/tree/",
					DefaultBranch:   "main",
				},
			},
		},
	}
}
