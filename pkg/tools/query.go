package tools

import (
	"context"

	"github.com/invopop/jsonschema"

	"github.com/coderelay/coderelay/pkg/graph"
)

type graphQueryParams struct {
	Cypher string `json:"cypher" jsonschema:"required,description=Read-only Cypher query. Write clauses are rejected."`
}

// GraphQueryTool runs a read-only Cypher query supplied by the selector.
// The escape hatch for questions the structured tools cannot answer.
type GraphQueryTool struct {
	graph GraphReader
}

func NewGraphQueryTool(g GraphReader) *GraphQueryTool {
	return &GraphQueryTool{graph: g}
}

func (t *GraphQueryTool) Name() string       { return "graph_query" }
func (t *GraphQueryTool) Category() Category { return CategoryQuery }
func (t *GraphQueryTool) Description() string {
	return "Run a custom read-only Cypher query against the code graph. Entities carry a repository_id property; always filter on $repository_id. Use only when no structured tool fits."
}
func (t *GraphQueryTool) ParameterSchema() *jsonschema.Schema { return SchemaFor(graphQueryParams{}) }
func (t *GraphQueryTool) RequiresIndexedRepo() bool           { return true }

func (t *GraphQueryTool) Execute(ctx context.Context, tc *Context, params map[string]any) Result {
	cypher, ok := StringParam(params, "cypher")
	if !ok {
		return Failuref("graph_query requires a non-empty 'cypher' parameter")
	}
	if err := graph.ValidateReadOnly(cypher); err != nil {
		return Failuref("Query rejected: %v", err)
	}

	rows, err := t.graph.Read(ctx, cypher, map[string]any{
		"repository_id": tc.RepositoryID(),
	})
	if err != nil {
		return Failuref("Graph query failed: %v", err)
	}

	return Successf(rows, "Query returned %d rows", len(rows))
}
