// Package graph provides the code-graph store backed by Neo4j. Indexed
// repositories materialize as Type, Method, Field, Package, and Annotation
// nodes keyed by repository id.
package graph

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Entity labels written by the indexer. Entity replacement iterates these
// explicitly instead of matching all nodes.
var entityLabels = []string{"Type", "Method", "Field", "Package", "Annotation"}

// Config holds Neo4j connection settings.
type Config struct {
	URI         string
	Username    string
	PasswordEnv string
	Database    string
}

// Store wraps the Neo4j driver with read/write helpers scoped to a single
// database.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *slog.Logger
}

// NewStore connects to Neo4j and verifies connectivity.
func NewStore(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	password := os.Getenv(cfg.PasswordEnv)

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to connect to neo4j at %s: %w", cfg.URI, err)
	}

	logger.Info("Connected to graph store", "uri", cfg.URI, "database", cfg.Database)
	return &Store{
		driver:   driver,
		database: cfg.Database,
		logger:   logger.With("component", "graph"),
	}, nil
}

// Close releases the underlying driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Read runs a read-only Cypher query and returns one map per record.
func (s *Store) Read(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	rows, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) ([]map[string]any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]any, 0, len(records))
		for _, record := range records {
			rows = append(rows, record.AsMap())
		}
		return rows, nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph read failed: %w", err)
	}
	return rows, nil
}

// Write runs a mutating Cypher query and returns the number of affected
// nodes (created plus deleted).
func (s *Store) Write(ctx context.Context, query string, params map[string]any) (int, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer session.Close(ctx)

	affected, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (int, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return 0, err
		}
		summary, err := result.Consume(ctx)
		if err != nil {
			return 0, err
		}
		counters := summary.Counters()
		return counters.NodesCreated() + counters.NodesDeleted(), nil
	})
	if err != nil {
		return 0, fmt.Errorf("graph write failed: %w", err)
	}
	return affected, nil
}

// DeleteRepositoryEntities removes all indexed entities for a repository.
// Each label is deleted in its own statement so a partial failure leaves a
// clear log trail. Returns the total number of deleted nodes.
func (s *Store) DeleteRepositoryEntities(ctx context.Context, repositoryID string) (int, error) {
	total := 0
	for _, label := range entityLabels {
		query := fmt.Sprintf("MATCH (n:%s {repository_id: $repository_id}) DETACH DELETE n", label)
		deleted, err := s.Write(ctx, query, map[string]any{"repository_id": repositoryID})
		if err != nil {
			return total, fmt.Errorf("failed to delete %s entities: %w", label, err)
		}
		total += deleted
	}
	s.logger.Info("Deleted repository entities", "repository_id", repositoryID, "count", total)
	return total, nil
}
