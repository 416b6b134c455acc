// Package tools defines the agent's tool abstraction: the Tool interface,
// execution results, per-conversation tool context, the registry, and the
// interceptor chain that runs around every execution.
package tools

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Category groups tools for prompt construction.
type Category string

const (
	CategoryDiscovery Category = "discovery"
	CategorySearch    Category = "search"
	CategoryAnalysis  Category = "analysis"
	CategoryQuery     Category = "query"
)

// Tool is one capability the agent can select. Implementations must be
// stateless; all per-conversation state lives in *Context.
type Tool interface {
	Name() string
	Description() string
	Category() Category

	// ParameterSchema returns the JSON schema of the tool's parameters,
	// embedded into the selector prompt.
	ParameterSchema() *jsonschema.Schema

	// RequiresIndexedRepo reports whether the tool needs an up-to-date
	// code graph. The repository lifecycle gate only runs for tools that
	// return true.
	RequiresIndexedRepo() bool

	Execute(ctx context.Context, tc *Context, params map[string]any) Result
}

// Result is the outcome of one tool execution. Tools never return Go
// errors to the loop; failures are Results with Success=false so the
// agent can keep iterating.
type Result struct {
	Success            bool           `json:"success"`
	Data               any            `json:"data,omitempty"`
	HumanMessage       string         `json:"human_message"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	SuggestedNextTools []string       `json:"suggested_next_tools,omitempty"`
}

// Successf builds a successful result with a formatted human message.
func Successf(data any, format string, args ...any) Result {
	return Result{
		Success:      true,
		Data:         data,
		HumanMessage: fmt.Sprintf(format, args...),
	}
}

// Failuref builds a failed result with a formatted human message.
func Failuref(format string, args ...any) Result {
	return Result{
		Success:      false,
		HumanMessage: fmt.Sprintf(format, args...),
	}
}

// WithSuggestions attaches suggested follow-up tool names to a result.
func (r Result) WithSuggestions(names ...string) Result {
	r.SuggestedNextTools = names
	return r
}

// WithMetadata attaches one metadata entry to a result.
func (r Result) WithMetadata(key string, value any) Result {
	if r.Metadata == nil {
		r.Metadata = make(map[string]any)
	}
	r.Metadata[key] = value
	return r
}

// reflector configured for inline schemas: the selector prompt needs
// self-contained parameter schemas, not $ref trees.
var reflector = jsonschema.Reflector{
	DoNotReference: true,
	ExpandedStruct: true,
}

// SchemaFor reflects a parameter struct into an inline JSON schema.
func SchemaFor(params any) *jsonschema.Schema {
	return reflector.Reflect(params)
}

// StringParam reads a string parameter, with ok=false when absent or of the
// wrong type.
func StringParam(params map[string]any, key string) (string, bool) {
	v, ok := params[key].(string)
	return v, ok && v != ""
}

// IntParam reads an integer parameter, accepting JSON's float64 decoding.
func IntParam(params map[string]any, key string, fallback int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}
