package tools

import "context"

// Interceptor hooks tool executions. Before runs ahead of the tool and may
// veto the run by returning an error; After runs on the produced result and
// its errors are logged, never propagated.
type Interceptor interface {
	Name() string

	// AppliesTo reports whether this interceptor participates in the
	// execution of the given tool.
	AppliesTo(tool Tool) bool

	Before(ctx context.Context, tc *Context, tool Tool, params map[string]any) error
	After(ctx context.Context, tc *Context, tool Tool, result Result) error
}
