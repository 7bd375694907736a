// Package anthropic provides a model.Provider wrapper for the Anthropic
// Claude Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agentloop/agentloop/core"
	"github.com/agentloop/agentloop/model"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Options configures the Anthropic provider (model id, temperature, max
// tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Provider wraps the Anthropic Messages API behind the generic
// model.Provider interface. Because agentloop speaks its own JSON action
// protocol in plain text, tool definitions are rendered into an additional
// system block rather than mapped to native tool_use declarations.
type Provider struct {
	client *anthropic.Client
	opts   Options
}

// New creates a new Anthropic provider using the official client.
func New(optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.2,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Provider{client: &client, opts: opts}
}

// NewFromClient creates a new Anthropic provider from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.2,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Provider{client: client, opts: opts}
}

// Chat implements model.Provider.
func (p *Provider) Chat(ctx context.Context, history []core.Message, tools []model.ToolDefinition) (string, error) {
	params := p.buildParams(history, tools)

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}
	return text, nil
}

// Stream implements model.Provider using the Messages streaming API. Only
// text deltas are forwarded; the concatenation of fragments equals what Chat
// would have returned.
func (p *Provider) Stream(ctx context.Context, history []core.Message, tools []model.ToolDefinition) (<-chan string, <-chan error) {
	out := make(chan string, 32)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		stream := p.client.Messages.NewStreaming(ctx, p.buildParams(history, tools))
		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case anthropic.ContentBlockDeltaEvent:
				switch delta := ev.Delta.AsAny().(type) {
				case anthropic.TextDelta:
					if delta.Text == "" {
						continue
					}
					select {
					case <-ctx.Done():
						errCh <- ctx.Err()
						return
					case out <- delta.Text:
					}
				}
			}
		}
		if err := stream.Err(); err != nil {
			errCh <- fmt.Errorf("anthropic streaming error: %w", err)
		}
	}()

	return out, errCh
}

// Info returns metadata describing this Anthropic provider.
func (p *Provider) Info() model.Info {
	return model.Info{
		Name:          string(p.opts.Model),
		Provider:      "anthropic",
		SupportsTools: true,
	}
}

// buildParams converts agentloop history into Anthropic message parameters.
// System messages become system blocks; tool messages are surfaced to the
// model as user turns since our protocol carries tool output as plain text.
func (p *Provider) buildParams(history []core.Message, tools []model.ToolDefinition) anthropic.MessageNewParams {
	var system []anthropic.TextBlockParam
	var messages []anthropic.MessageParam

	for _, m := range history {
		if m.Content == "" {
			continue
		}
		switch m.Role {
		case core.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		case core.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	if block := toolsBlock(tools); block != "" {
		system = append(system, anthropic.TextBlockParam{Text: block})
	}

	params := anthropic.MessageNewParams{
		Model:       p.opts.Model,
		Messages:    messages,
		MaxTokens:   p.opts.MaxTokens,
		Temperature: anthropic.Float(p.opts.Temperature),
	}
	if len(system) > 0 {
		params.System = system
	}
	return params
}

// toolsBlock renders tool definitions as a JSON listing for the system prompt.
func toolsBlock(tools []model.ToolDefinition) string {
	if len(tools) == 0 {
		return ""
	}
	data, err := json.Marshal(tools)
	if err != nil {
		return ""
	}
	return "Available tools:\n" + string(data)
}
