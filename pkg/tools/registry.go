package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/coderelay/coderelay/pkg/metrics"
)

// Alternatives maps a tool to others that approach the same question from a
// different angle. Used for response augmentation on repeated invocations.
var defaultAlternatives = map[string][]string{
	"discover_project": {"search_code", "dependency_analysis"},
	"search_code":      {"semantic_search", "graph_query"},
}

// Registry holds the available tools and the interceptor chain, and runs
// executions through both.
type Registry struct {
	mu           sync.RWMutex
	tools        map[string]Tool
	interceptors []Interceptor
	alternatives map[string][]string
	logger       *slog.Logger
}

// NewRegistry creates an empty registry with the default alternatives map.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		tools:        make(map[string]Tool),
		alternatives: defaultAlternatives,
		logger:       logger.With("component", "tools"),
	}
}

// Register adds a tool. Registering a duplicate name panics; tool sets are
// assembled once at startup.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[tool.Name()]; exists {
		panic(fmt.Sprintf("tool %q registered twice", tool.Name()))
	}
	r.tools[tool.Name()] = tool
}

// Use appends an interceptor to the chain. Interceptors run in registration
// order.
func (r *Registry) Use(interceptor Interceptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interceptors = append(r.interceptors, interceptor)
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered tools sorted by name, for prompt construction.
func (r *Registry) All() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Alternatives returns the alternative tools registered for name. Only
// alternatives that are actually registered are returned.
func (r *Registry) Alternatives(name string) []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Tool
	for _, alt := range r.alternatives[name] {
		if tool, ok := r.tools[alt]; ok {
			out = append(out, tool)
		}
	}
	return out
}

// Execute runs the named tool through the interceptor chain and records the
// outcome in the tool context. An unknown name produces a failed Result
// listing the valid tools, so the selector can correct itself on the next
// iteration.
func (r *Registry) Execute(ctx context.Context, tc *Context, name string, params map[string]any) Result {
	tool, ok := r.Get(name)
	if !ok {
		result := Failuref("Unknown tool %q. Valid tools: %s", name, strings.Join(r.Names(), ", "))
		tc.RecordExecution(name, params, result)
		return result
	}

	result := r.run(ctx, tc, tool, params)
	tc.RecordExecution(name, params, result)

	outcome := "success"
	if !result.Success {
		outcome = "failure"
	}
	metrics.ToolExecutions.WithLabelValues(name, outcome).Inc()
	return result
}

func (r *Registry) run(ctx context.Context, tc *Context, tool Tool, params map[string]any) Result {
	r.mu.RLock()
	chain := append([]Interceptor(nil), r.interceptors...)
	r.mu.RUnlock()

	for _, ic := range chain {
		if !ic.AppliesTo(tool) {
			continue
		}
		if err := ic.Before(ctx, tc, tool, params); err != nil {
			r.logger.Warn("Interceptor vetoed tool execution",
				"interceptor", ic.Name(), "tool", tool.Name(), "error", err)
			return Failuref("Tool execution failed: %v", err)
		}
	}

	result := tool.Execute(ctx, tc, params)

	// After hooks observe the result but cannot change the outcome.
	for _, ic := range chain {
		if !ic.AppliesTo(tool) {
			continue
		}
		if err := ic.After(ctx, tc, tool, result); err != nil {
			r.logger.Warn("Interceptor after-hook failed",
				"interceptor", ic.Name(), "tool", tool.Name(), "error", err)
		}
	}

	return result
}
