package tools

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GraphReader is the read surface the graph-backed tools need. Satisfied by
// *graph.Store.
type GraphReader interface {
	Read(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}

type discoverParams struct {
	Focus string `json:"focus,omitempty" jsonschema:"description=Optional package or area to focus on"`
}

// DiscoverProjectTool summarizes an indexed repository: entity counts per
// kind and the package inventory. Usually the first tool the selector picks
// on a fresh conversation.
type DiscoverProjectTool struct {
	graph GraphReader
}

func NewDiscoverProjectTool(graph GraphReader) *DiscoverProjectTool {
	return &DiscoverProjectTool{graph: graph}
}

func (t *DiscoverProjectTool) Name() string       { return "discover_project" }
func (t *DiscoverProjectTool) Category() Category { return CategoryDiscovery }
func (t *DiscoverProjectTool) Description() string {
	return "Get a structural overview of the repository: packages, entity counts, and main types. Use this first when the user asks broad questions about the project."
}
func (t *DiscoverProjectTool) ParameterSchema() *jsonschema.Schema { return SchemaFor(discoverParams{}) }
func (t *DiscoverProjectTool) RequiresIndexedRepo() bool           { return true }

func (t *DiscoverProjectTool) Execute(ctx context.Context, tc *Context, params map[string]any) Result {
	repoID := tc.RepositoryID()

	counts, err := t.graph.Read(ctx, `
		MATCH (n {repository_id: $repository_id})
		RETURN labels(n)[0] AS kind, count(n) AS total
		ORDER BY total DESC`,
		map[string]any{"repository_id": repoID})
	if err != nil {
		return Failuref("Failed to read project structure: %v", err)
	}
	if len(counts) == 0 {
		return Failuref("No indexed entities found for this repository")
	}

	packages, err := t.graph.Read(ctx, `
		MATCH (p:Package {repository_id: $repository_id})
		RETURN p.name AS name
		ORDER BY name`,
		map[string]any{"repository_id": repoID})
	if err != nil {
		return Failuref("Failed to list packages: %v", err)
	}

	totalEntities := 0
	for _, row := range counts {
		if n, ok := row["total"].(int64); ok {
			totalEntities += int(n)
		}
	}

	data := map[string]any{
		"entity_counts": counts,
		"packages":      packages,
	}
	return Successf(data,
		"Found %d indexed entities across %d packages", totalEntities, len(packages)).
		WithSuggestions("search_code", "dependency_analysis").
		WithMetadata("package_count", fmt.Sprintf("%d", len(packages)))
}
