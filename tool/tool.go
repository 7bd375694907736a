// Package tool implements the capability subsystem that lets the agent
// invoke structured actions (file I/O, shell, network fetch, git) with
// schema described arguments and uniform result handling.
package tool

import (
	"context"
	"sort"
	"sync"

	"github.com/agentloop/agentloop/core"
	"github.com/agentloop/agentloop/model"
	"github.com/mitchellh/mapstructure"
)

// Tool defines the interface for extending the agent with external
// capabilities.
//
// Implementations must:
//   - Provide clear, descriptive names (snake_case) and descriptions
//   - Define a proper JSON schema for parameters
//   - Never let an internal failure escape Invoke as an error or panic;
//     any fault is captured in the returned ToolResult instead
//   - Be safe for concurrent use; the registry is shared across conversations
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool
	// does. It is provided to the model to help it decide when to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected arguments.
	Parameters() map[string]any

	// Invoke executes the tool with structured arguments.
	Invoke(ctx context.Context, args map[string]any) core.ToolResult
}

// Registry maps tool names to invocable capabilities. It is built explicitly
// at startup (no runtime type scanning) and treated as a read-mostly shared
// singleton afterwards; registration and lookup are guarded for the rare
// case of late additions.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry constructs a registry pre-populated with the given tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.tools[t.Name()] = t
	}
	return r
}

// Register adds or replaces a tool by name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
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

// Definitions returns model-facing descriptions for every registered tool,
// in name order so prompts stay deterministic.
func (r *Registry) Definitions() []model.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	defs := make([]model.ToolDefinition, 0, len(names))
	for _, name := range names {
		t := r.tools[name]
		defs = append(defs, model.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return defs
}

// decodeArgs decodes a raw argument map into a typed request struct.
// Weak typing tolerates JSON's float64 numbers for integer fields.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}
