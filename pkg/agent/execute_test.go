package agent

import (
	"context"
	"log/slog"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"

	"github.com/coderelay/coderelay/pkg/tools"
)

type stubParams struct{}

type stubTool struct {
	name   string
	result tools.Result
	calls  int
}

func (s *stubTool) Name() string                        { return s.name }
func (s *stubTool) Description() string                 { return "stub" }
func (s *stubTool) Category() tools.Category            { return tools.CategorySearch }
func (s *stubTool) ParameterSchema() *jsonschema.Schema { return tools.SchemaFor(stubParams{}) }
func (s *stubTool) RequiresIndexedRepo() bool           { return false }
func (s *stubTool) Execute(ctx context.Context, tc *tools.Context, params map[string]any) tools.Result {
	s.calls++
	return s.result
}

func newAugmentationFixture(primary, alt1, alt2 *stubTool) (*Loop, *tools.Context) {
	registry := tools.NewRegistry(slog.Default())
	registry.Register(primary)
	registry.Register(alt1)
	registry.Register(alt2)

	loop := &Loop{
		registry: registry,
		logger:   slog.Default(),
	}
	tc := tools.NewContext("conv-1", "user-1", "https://github.com/acme/widget", "main", "EXPLORE")
	return loop, tc
}

func TestExecuteTool_FirstInvocationNotAugmented(t *testing.T) {
	primary := &stubTool{name: "discover_project", result: tools.Successf("primary data", "primary")}
	alt1 := &stubTool{name: "search_code", result: tools.Successf("alt data", "alt")}
	alt2 := &stubTool{name: "dependency_analysis", result: tools.Successf("alt data", "alt")}
	loop, tc := newAugmentationFixture(primary, alt1, alt2)

	tc.SetRecentUserInputs([]string{"can you do better than that?"})

	result := loop.executeTool(context.Background(), tc, "discover_project", nil)

	assert.True(t, result.Success)
	assert.NotContains(t, result.HumanMessage, alternativesSeparator)
	assert.Equal(t, 0, alt1.calls, "alternatives must not run on the first invocation")
}

func TestExecuteTool_NoNegativeFeedbackNotAugmented(t *testing.T) {
	primary := &stubTool{name: "discover_project", result: tools.Successf("primary data", "primary")}
	alt1 := &stubTool{name: "search_code", result: tools.Successf("alt data", "alt")}
	alt2 := &stubTool{name: "dependency_analysis", result: tools.Successf("alt data", "alt")}
	loop, tc := newAugmentationFixture(primary, alt1, alt2)

	tc.SetRecentUserInputs([]string{"what about the login flow?"})
	loop.executeTool(context.Background(), tc, "discover_project", nil)
	result := loop.executeTool(context.Background(), tc, "discover_project", nil)

	assert.NotContains(t, result.HumanMessage, alternativesSeparator)
	assert.Equal(t, 0, alt1.calls)
}

func TestExecuteTool_RepeatedWithFeedbackAugments(t *testing.T) {
	primary := &stubTool{name: "discover_project", result: tools.Successf("primary data", "primary overview")}
	alt1 := &stubTool{name: "search_code", result: tools.Successf("matches for auth", "found matches")}
	alt2 := &stubTool{name: "dependency_analysis", result: tools.Failuref("graph unavailable")}
	loop, tc := newAugmentationFixture(primary, alt1, alt2)

	tc.SetRecentUserInputs([]string{"please give me more detail"})
	loop.executeTool(context.Background(), tc, "discover_project", nil)
	result := loop.executeTool(context.Background(), tc, "discover_project", nil)

	assert.True(t, result.Success)
	assert.Contains(t, result.HumanMessage, alternativesSeparator)
	assert.Contains(t, result.HumanMessage, "### From search_code:")
	// Sections carry the alternative's message, not its raw data.
	assert.Contains(t, result.HumanMessage, "found matches")
	assert.NotContains(t, result.HumanMessage, "matches for auth")
	// Failed alternatives are skipped, not surfaced.
	assert.NotContains(t, result.HumanMessage, "### From dependency_analysis:")
	assert.Equal(t, 1, alt1.calls)
	assert.Equal(t, 1, alt2.calls)
}

func TestExecuteTool_AllAlternativesFailLeavesResultUntouched(t *testing.T) {
	primary := &stubTool{name: "discover_project", result: tools.Successf("primary data", "primary overview")}
	alt1 := &stubTool{name: "search_code", result: tools.Failuref("down")}
	alt2 := &stubTool{name: "dependency_analysis", result: tools.Failuref("down")}
	loop, tc := newAugmentationFixture(primary, alt1, alt2)

	tc.SetRecentUserInputs([]string{"expand on this"})
	loop.executeTool(context.Background(), tc, "discover_project", nil)
	result := loop.executeTool(context.Background(), tc, "discover_project", nil)

	assert.Equal(t, "primary overview", result.HumanMessage)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "0123456789...", truncate("0123456789abcdef", 10))
}
