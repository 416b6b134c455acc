package tools

import (
	"context"

	"github.com/invopop/jsonschema"
)

type dependencyParams struct {
	Target    string `json:"target" jsonschema:"required,description=Type or package name to analyze"`
	Direction string `json:"direction,omitempty" jsonschema:"description=outgoing for what the target depends on (default) or incoming for what depends on the target"`
}

// DependencyAnalysisTool walks DEPENDS_ON and CALLS edges around a type or
// package.
type DependencyAnalysisTool struct {
	graph GraphReader
}

func NewDependencyAnalysisTool(graph GraphReader) *DependencyAnalysisTool {
	return &DependencyAnalysisTool{graph: graph}
}

func (t *DependencyAnalysisTool) Name() string       { return "dependency_analysis" }
func (t *DependencyAnalysisTool) Category() Category { return CategoryAnalysis }
func (t *DependencyAnalysisTool) Description() string {
	return "Analyze what a type or package depends on, or what depends on it. Use for impact and coupling questions."
}
func (t *DependencyAnalysisTool) ParameterSchema() *jsonschema.Schema {
	return SchemaFor(dependencyParams{})
}
func (t *DependencyAnalysisTool) RequiresIndexedRepo() bool { return true }

func (t *DependencyAnalysisTool) Execute(ctx context.Context, tc *Context, params map[string]any) Result {
	target, ok := StringParam(params, "target")
	if !ok {
		return Failuref("dependency_analysis requires a non-empty 'target' parameter")
	}

	direction, _ := StringParam(params, "direction")
	cypher := `
		MATCH (src {repository_id: $repository_id})-[r:DEPENDS_ON|CALLS]->(dst)
		WHERE src.name = $target
		RETURN type(r) AS relation, labels(dst)[0] AS kind, dst.name AS name, dst.file_path AS file_path
		ORDER BY relation, name`
	if direction == "incoming" {
		cypher = `
			MATCH (src)-[r:DEPENDS_ON|CALLS]->(dst {repository_id: $repository_id})
			WHERE dst.name = $target
			RETURN type(r) AS relation, labels(src)[0] AS kind, src.name AS name, src.file_path AS file_path
			ORDER BY relation, name`
	}

	rows, err := t.graph.Read(ctx, cypher, map[string]any{
		"repository_id": tc.RepositoryID(),
		"target":        target,
	})
	if err != nil {
		return Failuref("Dependency analysis failed: %v", err)
	}
	if len(rows) == 0 {
		return Successf(rows, "No dependencies recorded for %q. The name may be misspelled; try search_code first.", target).
			WithSuggestions("search_code")
	}

	word := "depends on"
	if direction == "incoming" {
		word = "is depended on by"
	}
	return Successf(rows, "%q %s %d entities", target, word, len(rows)).
		WithSuggestions("graph_query")
}
