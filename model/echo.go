package model

import (
	"context"
	"sync"

	"github.com/agentloop/agentloop/core"
)

// EchoProvider is a trivial provider used for tests and wiring. It echoes
// the last user message back, prefixed "Echo: ".
type EchoProvider struct{}

// NewEchoProvider creates a new EchoProvider.
func NewEchoProvider() *EchoProvider { return &EchoProvider{} }

// Chat implements Provider.
func (p *EchoProvider) Chat(_ context.Context, history []core.Message, _ []ToolDefinition) (string, error) {
	return "Echo: " + lastUser(history), nil
}

// Stream implements Provider; the echo text is emitted rune by rune.
func (p *EchoProvider) Stream(ctx context.Context, history []core.Message, tools []ToolDefinition) (<-chan string, <-chan error) {
	full, _ := p.Chat(ctx, history, tools)
	return streamText(ctx, full)
}

// Info implements Provider.
func (p *EchoProvider) Info() Info {
	return Info{Name: "echo", Provider: "echo", SupportsTools: false}
}

func lastUser(history []core.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == core.RoleUser {
			return history[i].Content
		}
	}
	return ""
}

// ScriptedProvider replays a fixed sequence of completions, one per call.
// After the script is exhausted every further call returns the final entry.
// Safe for concurrent use; handy for driving the engine through multi-step
// scenarios in tests and examples.
type ScriptedProvider struct {
	mu        sync.Mutex
	responses []string
	next      int
}

// NewScriptedProvider creates a provider replaying the given responses in order.
func NewScriptedProvider(responses ...string) *ScriptedProvider {
	return &ScriptedProvider{responses: responses}
}

// Chat implements Provider.
func (p *ScriptedProvider) Chat(context.Context, []core.Message, []ToolDefinition) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.responses) == 0 {
		return "", nil
	}
	resp := p.responses[p.next]
	if p.next < len(p.responses)-1 {
		p.next++
	}
	return resp, nil
}

// Stream implements Provider; the scripted completion is emitted rune by rune.
func (p *ScriptedProvider) Stream(ctx context.Context, history []core.Message, tools []ToolDefinition) (<-chan string, <-chan error) {
	full, _ := p.Chat(ctx, history, tools)
	return streamText(ctx, full)
}

// Info implements Provider.
func (p *ScriptedProvider) Info() Info {
	return Info{Name: "scripted", Provider: "scripted", SupportsTools: true}
}

// streamText fans a completed text out as per-rune fragments, honoring
// context cancellation between sends.
func streamText(ctx context.Context, full string) (<-chan string, <-chan error) {
	out := make(chan string, 16)
	errCh := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errCh)
		for _, r := range full {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case out <- string(r):
			}
		}
	}()
	return out, errCh
}
