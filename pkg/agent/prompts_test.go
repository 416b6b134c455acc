package agent

import (
	"log/slog"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"

	"github.com/coderelay/coderelay/pkg/tools"
)

type searchParams struct {
	Query string `json:"query" jsonschema:"description=Name fragment to search for"`
}

type schemaTool struct{ stubTool }

func (s *schemaTool) ParameterSchema() *jsonschema.Schema {
	return tools.SchemaFor(searchParams{})
}

func TestBuildInitialPrompt_EmbedsParameterSchemas(t *testing.T) {
	registry := tools.NewRegistry(slog.Default())
	registry.Register(&schemaTool{stubTool{name: "search_code"}})

	prompt := buildInitialPrompt(registry, "https://github.com/acme/widget", "find auth", nil)

	assert.Contains(t, prompt, "- search_code:")
	assert.Contains(t, prompt, "parameters:")
	assert.Contains(t, prompt, `"query"`)
	assert.Contains(t, prompt, "Name fragment to search for")
}
