package model

import (
	"context"

	"github.com/agentloop/agentloop/core"
)

// ToolDefinition declaratively exposes a callable tool to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset).
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Info contains metadata about a provider implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "echo", ...
	SupportsTools bool   `json:"supports_tools"`
}

// Provider is the minimal interface the engine needs to drive generation.
//
// Chat returns the complete assistant text for the given history. Stream
// returns a finite, non-restartable sequence of text fragments whose
// concatenation equals what Chat would have returned; the fragment channel
// is closed on completion and the error channel (buffered size 1) carries at
// most one terminal error. Generation parameters (temperature, max output
// tokens) are provider construction options, not per-call arguments.
type Provider interface {
	Chat(ctx context.Context, history []core.Message, tools []ToolDefinition) (string, error)
	Stream(ctx context.Context, history []core.Message, tools []ToolDefinition) (<-chan string, <-chan error)

	// Info returns information about the provider implementation.
	Info() Info
}
