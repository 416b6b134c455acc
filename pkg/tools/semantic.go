package tools

import (
	"context"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

type semanticParams struct {
	Query string `json:"query" jsonschema:"required,description=Natural-language description of what to find"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum number of results (default 10)"`
}

// SemanticSearchTool matches entities against a natural-language query by
// scoring term overlap across name, signature, and documentation. A cheap
// stand-in for embedding search that still works when the user describes
// behavior instead of naming a symbol.
type SemanticSearchTool struct {
	graph GraphReader
}

func NewSemanticSearchTool(graph GraphReader) *SemanticSearchTool {
	return &SemanticSearchTool{graph: graph}
}

func (t *SemanticSearchTool) Name() string       { return "semantic_search" }
func (t *SemanticSearchTool) Category() Category { return CategorySearch }
func (t *SemanticSearchTool) Description() string {
	return "Find code entities matching a natural-language description, scored by term overlap with names, signatures, and documentation. Use when the user describes behavior rather than naming a symbol."
}
func (t *SemanticSearchTool) ParameterSchema() *jsonschema.Schema { return SchemaFor(semanticParams{}) }
func (t *SemanticSearchTool) RequiresIndexedRepo() bool           { return true }

func (t *SemanticSearchTool) Execute(ctx context.Context, tc *Context, params map[string]any) Result {
	query, ok := StringParam(params, "query")
	if !ok {
		return Failuref("semantic_search requires a non-empty 'query' parameter")
	}
	limit := IntParam(params, "limit", 10)

	terms := queryTerms(query)
	if len(terms) == 0 {
		return Failuref("Query %q contains no searchable terms", query)
	}

	rows, err := t.graph.Read(ctx, `
		MATCH (n {repository_id: $repository_id})
		WHERE any(term IN $terms WHERE
			toLower(n.name) CONTAINS term
			OR toLower(coalesce(n.signature, '')) CONTAINS term
			OR toLower(coalesce(n.doc, '')) CONTAINS term)
		RETURN labels(n)[0] AS kind, n.name AS name, n.file_path AS file_path,
		       n.signature AS signature, n.doc AS doc`,
		map[string]any{
			"repository_id": tc.RepositoryID(),
			"terms":         terms,
		})
	if err != nil {
		return Failuref("Semantic search failed: %v", err)
	}

	scored := scoreRows(rows, terms)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	if len(scored) == 0 {
		return Successf(scored, "Nothing in the codebase matches %q", query).
			WithSuggestions("discover_project")
	}

	return Successf(scored, "Found %d entities related to %q", len(scored), query).
		WithSuggestions("search_code", "dependency_analysis")
}

// Stopwords excluded from term matching; they match everything and drown the
// signal.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "in": true, "on": true,
	"for": true, "to": true, "and": true, "or": true, "is": true, "are": true,
	"how": true, "what": true, "where": true, "does": true, "do": true,
	"code": true, "that": true, "this": true, "with": true,
}

func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()")
		if len(f) < 3 || stopwords[f] {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

func scoreRows(rows []map[string]any, terms []string) []map[string]any {
	type scored struct {
		row   map[string]any
		score int
	}
	ranked := make([]scored, 0, len(rows))
	for _, row := range rows {
		haystack := strings.ToLower(
			asString(row["name"]) + " " + asString(row["signature"]) + " " + asString(row["doc"]))
		score := 0
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				score++
			}
		}
		if score > 0 {
			row["score"] = score
			ranked = append(ranked, scored{row: row, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]map[string]any, len(ranked))
	for i, s := range ranked {
		out[i] = s.row
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
