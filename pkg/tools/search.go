package tools

import (
	"context"

	"github.com/invopop/jsonschema"
)

type searchParams struct {
	Query string `json:"query" jsonschema:"required,description=Name or name fragment to search for"`
	Kind  string `json:"kind,omitempty" jsonschema:"description=Restrict to one entity kind: Type Method Field Package or Annotation"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum number of results (default 20)"`
}

// SearchCodeTool finds entities by name fragment across the code graph.
type SearchCodeTool struct {
	graph GraphReader
}

func NewSearchCodeTool(graph GraphReader) *SearchCodeTool {
	return &SearchCodeTool{graph: graph}
}

func (t *SearchCodeTool) Name() string       { return "search_code" }
func (t *SearchCodeTool) Category() Category { return CategorySearch }
func (t *SearchCodeTool) Description() string {
	return "Search the code graph for types, methods, fields, packages, or annotations whose name matches a fragment. Use when the user names a specific symbol."
}
func (t *SearchCodeTool) ParameterSchema() *jsonschema.Schema { return SchemaFor(searchParams{}) }
func (t *SearchCodeTool) RequiresIndexedRepo() bool           { return true }

func (t *SearchCodeTool) Execute(ctx context.Context, tc *Context, params map[string]any) Result {
	query, ok := StringParam(params, "query")
	if !ok {
		return Failuref("search_code requires a non-empty 'query' parameter")
	}
	limit := IntParam(params, "limit", 20)

	cypher := `
		MATCH (n {repository_id: $repository_id})
		WHERE toLower(n.name) CONTAINS toLower($query)
		RETURN labels(n)[0] AS kind, n.name AS name, n.file_path AS file_path, n.signature AS signature
		ORDER BY size(n.name)
		LIMIT $limit`
	if kind, ok := StringParam(params, "kind"); ok {
		switch kind {
		case "Type", "Method", "Field", "Package", "Annotation":
			cypher = `
				MATCH (n:` + kind + ` {repository_id: $repository_id})
				WHERE toLower(n.name) CONTAINS toLower($query)
				RETURN labels(n)[0] AS kind, n.name AS name, n.file_path AS file_path, n.signature AS signature
				ORDER BY size(n.name)
				LIMIT $limit`
		default:
			return Failuref("Unknown entity kind %q. Valid kinds: Type, Method, Field, Package, Annotation", kind)
		}
	}

	rows, err := t.graph.Read(ctx, cypher, map[string]any{
		"repository_id": tc.RepositoryID(),
		"query":         query,
		"limit":         limit,
	})
	if err != nil {
		return Failuref("Code search failed: %v", err)
	}
	if len(rows) == 0 {
		return Successf(rows, "No entities matching %q", query).
			WithSuggestions("semantic_search")
	}

	return Successf(rows, "Found %d entities matching %q", len(rows), query).
		WithSuggestions("dependency_analysis", "graph_query")
}
