package tools

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTool struct {
	name     string
	requires bool
	execute  func(ctx context.Context, tc *Context, params map[string]any) Result
}

func (f *fakeTool) Name() string                       { return f.name }
func (f *fakeTool) Description() string                { return "fake tool for tests" }
func (f *fakeTool) Category() Category                 { return CategorySearch }
func (f *fakeTool) ParameterSchema() *jsonschema.Schema { return SchemaFor(struct{}{}) }
func (f *fakeTool) RequiresIndexedRepo() bool          { return f.requires }
func (f *fakeTool) Execute(ctx context.Context, tc *Context, params map[string]any) Result {
	if f.execute != nil {
		return f.execute(ctx, tc, params)
	}
	return Successf(nil, "ok")
}

type fakeInterceptor struct {
	name      string
	applies   bool
	beforeErr error
	afterErr  error

	beforeCalls int
	afterCalls  int
}

func (f *fakeInterceptor) Name() string           { return f.name }
func (f *fakeInterceptor) AppliesTo(t Tool) bool  { return f.applies }
func (f *fakeInterceptor) Before(ctx context.Context, tc *Context, tool Tool, params map[string]any) error {
	f.beforeCalls++
	return f.beforeErr
}
func (f *fakeInterceptor) After(ctx context.Context, tc *Context, tool Tool, result Result) error {
	f.afterCalls++
	return f.afterErr
}

func newTestRegistry(tools ...Tool) *Registry {
	r := NewRegistry(slog.Default())
	for _, tool := range tools {
		r.Register(tool)
	}
	return r
}

func newTestContext() *Context {
	return NewContext("conv-1", "user-1", "https://github.com/acme/widget", "main", "EXPLORE")
}

func TestRegistry_ExecuteUnknownTool(t *testing.T) {
	r := newTestRegistry(&fakeTool{name: "search_code"}, &fakeTool{name: "discover_project"})
	tc := newTestContext()

	result := r.Execute(context.Background(), tc, "no_such_tool", nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.HumanMessage, `Unknown tool "no_such_tool"`)
	assert.Contains(t, result.HumanMessage, "discover_project, search_code")

	// Unknown invocations still count toward history.
	assert.Equal(t, 1, tc.ExecutionCount("no_such_tool"))
}

func TestRegistry_BeforeVetoAbortsExecution(t *testing.T) {
	executed := false
	tool := &fakeTool{name: "search_code", execute: func(context.Context, *Context, map[string]any) Result {
		executed = true
		return Successf(nil, "ok")
	}}
	veto := &fakeInterceptor{name: "gate", applies: true, beforeErr: errors.New("repository not ready")}

	r := newTestRegistry(tool)
	r.Use(veto)

	result := r.Execute(context.Background(), newTestContext(), "search_code", nil)

	assert.False(t, result.Success)
	assert.Equal(t, "Tool execution failed: repository not ready", result.HumanMessage)
	assert.False(t, executed, "tool must not run after a before veto")
	assert.Equal(t, 0, veto.afterCalls)
}

func TestRegistry_AfterErrorDoesNotChangeResult(t *testing.T) {
	tool := &fakeTool{name: "search_code"}
	ic := &fakeInterceptor{name: "observer", applies: true, afterErr: errors.New("flaky hook")}

	r := newTestRegistry(tool)
	r.Use(ic)

	result := r.Execute(context.Background(), newTestContext(), "search_code", nil)

	assert.True(t, result.Success)
	assert.Equal(t, 1, ic.afterCalls)
}

func TestRegistry_NonApplicableInterceptorSkipped(t *testing.T) {
	tool := &fakeTool{name: "search_code"}
	ic := &fakeInterceptor{name: "gate", applies: false, beforeErr: errors.New("should never fire")}

	r := newTestRegistry(tool)
	r.Use(ic)

	result := r.Execute(context.Background(), newTestContext(), "search_code", nil)

	assert.True(t, result.Success)
	assert.Equal(t, 0, ic.beforeCalls)
}

func TestRegistry_Alternatives(t *testing.T) {
	r := newTestRegistry(
		&fakeTool{name: "discover_project"},
		&fakeTool{name: "search_code"},
		&fakeTool{name: "dependency_analysis"},
	)

	alts := r.Alternatives("discover_project")
	require.Len(t, alts, 2)
	assert.Equal(t, "search_code", alts[0].Name())
	assert.Equal(t, "dependency_analysis", alts[1].Name())

	// semantic_search is not registered, so search_code only has one
	// registered alternative left.
	r2 := newTestRegistry(&fakeTool{name: "search_code"}, &fakeTool{name: "graph_query"})
	alts2 := r2.Alternatives("search_code")
	require.Len(t, alts2, 1)
	assert.Equal(t, "graph_query", alts2[0].Name())

	assert.Empty(t, r.Alternatives("graph_query"))
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	r := newTestRegistry(&fakeTool{name: "search_code"})
	assert.Panics(t, func() {
		r.Register(&fakeTool{name: "search_code"})
	})
}
