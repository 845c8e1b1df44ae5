package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rotisserie/eris"
)

// Handler executes one tool invocation. Implementations never panic and never
// return a Go error across this boundary; every failure mode is folded into
// the error variant of Result.
type Handler func(ctx context.Context, args map[string]any) Result

// Tool pairs a declared MCP schema with its handler.
type Tool struct {
	Def    mcp.Tool
	Handle Handler
}

// Registry maps tool names to their definitions and handlers.
type Registry struct {
	tools map[string]Tool
	order []string // registration order for deterministic listing
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(t Tool) {
	name := t.Def.Name
	r.tools[name] = t
	r.order = append(r.order, name)
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return Tool{}, eris.Errorf("tools: unknown tool %q", name)
	}
	return t, nil
}

// All returns all tools in registration order.
func (r *Registry) All() []Tool {
	result := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.tools[name])
	}
	return result
}

// Names returns all registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Dispatch looks up a tool by name and invokes it. An unknown name is
// reported through the usual error variant so a caller sees one uniform
// result shape.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) Result {
	t, err := r.Get(name)
	if err != nil {
		return Error(err.Error())
	}
	return t.Handle(ctx, args)
}
