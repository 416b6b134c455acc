// coderelay server: HTTP API, per-conversation agent workers, and
// repository index lifecycle.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/coderelay/coderelay/pkg/agent"
	"github.com/coderelay/coderelay/pkg/api"
	"github.com/coderelay/coderelay/pkg/config"
	"github.com/coderelay/coderelay/pkg/database"
	"github.com/coderelay/coderelay/pkg/events"
	"github.com/coderelay/coderelay/pkg/gitops"
	"github.com/coderelay/coderelay/pkg/graph"
	"github.com/coderelay/coderelay/pkg/indexing"
	"github.com/coderelay/coderelay/pkg/llm"
	"github.com/coderelay/coderelay/pkg/queue"
	"github.com/coderelay/coderelay/pkg/repoindex"
	"github.com/coderelay/coderelay/pkg/services"
	"github.com/coderelay/coderelay/pkg/tools"
	"github.com/coderelay/coderelay/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting coderelay",
		"version", version.Full(), "http_port", httpPort, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	providerRules := make(map[string]gitops.ProviderRule, len(cfg.Git.Providers))
	for name, p := range cfg.Git.Providers {
		providerRules[name] = gitops.ProviderRule{
			URLPattern:      p.URLPattern,
			BranchSeparator: p.BranchSeparator,
			DefaultBranch:   p.DefaultBranch,
		}
	}
	if err := gitops.SetProviders(providerRules); err != nil {
		slog.Error("Invalid git provider configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Graph store
	graphStore, err := graph.NewStore(ctx, graph.Config{
		URI:         cfg.Graph.URI,
		Username:    cfg.Graph.Username,
		PasswordEnv: cfg.Graph.PasswordEnv,
		Database:    cfg.Graph.Database,
	}, logger)
	if err != nil {
		slog.Error("Failed to connect to graph store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphStore.Close(ctx); err != nil {
			slog.Error("Error closing graph store", "error", err)
		}
	}()

	// 4. Git workspace
	gitRunner, err := gitops.NewRunner(cfg.WorkspaceDir, logger)
	if err != nil {
		slog.Error("Failed to prepare workspace", "error", err)
		os.Exit(1)
	}

	// 5. Domain services and event hub
	conversationService := services.NewConversationService(dbClient, logger)
	repositoryService := services.NewRepositoryService(dbClient, logger)
	hub := events.NewHub(logger)
	slog.Info("Services initialized")

	// 6. Model providers
	selector := llm.NewOpenAIProvider(llm.Config{
		BaseURL:     cfg.Selector.BaseURL,
		Model:       cfg.Selector.Model,
		APIKeyEnv:   cfg.Selector.APIKeyEnv,
		Temperature: cfg.Selector.Temperature,
		MaxRetries:  cfg.Selector.MaxRetries,
		Timeout:     cfg.Selector.Timeout,
	}, logger)
	synthesizer := llm.NewOpenAIProvider(llm.Config{
		BaseURL:     cfg.Synthesizer.BaseURL,
		Model:       cfg.Synthesizer.Model,
		APIKeyEnv:   cfg.Synthesizer.APIKeyEnv,
		Temperature: cfg.Synthesizer.Temperature,
		MaxRetries:  cfg.Synthesizer.MaxRetries,
		Timeout:     cfg.Synthesizer.Timeout,
	}, logger)
	slog.Info("Model providers initialized",
		"selector", selector.Model(), "synthesizer", synthesizer.Model())

	// 7. Tools, lifecycle gate, agent loop
	indexer := indexing.NewHTTPClient(cfg.Indexing.ServiceURL, logger)

	registry := tools.NewRegistry(logger)
	registry.Register(tools.NewDiscoverProjectTool(graphStore))
	registry.Register(tools.NewSearchCodeTool(graphStore))
	registry.Register(tools.NewSemanticSearchTool(graphStore))
	registry.Register(tools.NewDependencyAnalysisTool(graphStore))
	registry.Register(tools.NewGraphQueryTool(graphStore))
	registry.Use(repoindex.NewGate(
		repositoryService, gitRunner, graphStore, indexer, hub,
		cfg.Indexing.PollInterval(), logger))

	loop := agent.NewLoop(
		registry, selector, synthesizer, conversationService, hub,
		cfg.Agent.MaxToolIterations, logger)

	// 8. Worker pool
	pool := queue.NewPool(queue.Config{
		CoreWorkers:   cfg.Agent.Executor.CorePool,
		MaxWorkers:    cfg.Agent.Executor.MaxPool,
		QueueCapacity: cfg.Agent.Executor.Queue,
		ShutdownGrace: cfg.Agent.Executor.ShutdownGrace,
	}, logger)

	// 9. HTTP server
	server := api.NewServer(
		dbClient, conversationService, repositoryService, hub, pool,
		loop, gitRunner, graphStore, indexer, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(":" + httpPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("coderelay started",
		"core_workers", cfg.Agent.Executor.CorePool,
		"max_workers", cfg.Agent.Executor.MaxPool)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop taking requests first, then drain
	// workers within their grace period, then tear down the stream hub.
	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	pool.Stop()
	hub.Close()

	slog.Info("Shutdown complete")
}
