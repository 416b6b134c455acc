package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Load coderelay.yaml from configDir (optional, defaults-only is valid)
//  3. Expand environment variables ({{.VAR}} template syntax)
//  4. Merge user values over defaults
//  5. Validate
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := DefaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, "coderelay.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Info("No coderelay.yaml found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		user := &Config{}
		if err := yaml.Unmarshal(ExpandEnv(data), user); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		// Non-zero user values override defaults; unset sections keep defaults.
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"workspace_dir", cfg.WorkspaceDir,
		"max_tool_iterations", cfg.Agent.MaxToolIterations,
		"executor_core", cfg.Agent.Executor.CorePool,
		"executor_max", cfg.Agent.Executor.MaxPool)

	return cfg, nil
}
