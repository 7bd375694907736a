// Package openai provides a model.Provider implementation backed by the
// OpenAI Chat Completions API (including streaming). It adapts agentloop's
// message history into the SDK's message format and back.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agentloop/agentloop/core"
	"github.com/agentloop/agentloop/model"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Options configure the OpenAI provider. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	APIKey              string
}

// Provider wraps the OpenAI Chat Completions API behind the generic
// model.Provider interface. Tool definitions are rendered into an extra
// system message: agentloop's action protocol is plain text, so native
// function calling is deliberately not used.
type Provider struct {
	client *openai.Client
	opts   Options
}

// New creates a new OpenAI provider using the official client (API key from
// the environment).
func New(optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.2,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := openai.NewClient(clientOpts...)

	return &Provider{client: &client, opts: opts}
}

// NewFromClient creates a new OpenAI provider from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.2,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Provider{client: client, opts: opts}
}

// Chat implements model.Provider.
func (p *Provider) Chat(ctx context.Context, history []core.Message, tools []model.ToolDefinition) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, p.buildParams(history, tools))
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api error: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream implements model.Provider; text deltas are forwarded as they arrive.
func (p *Provider) Stream(ctx context.Context, history []core.Message, tools []model.ToolDefinition) (<-chan string, <-chan error) {
	out := make(chan string, 32)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		stream := p.client.Chat.Completions.NewStreaming(ctx, p.buildParams(history, tools))
		for stream.Next() {
			ck := stream.Current()
			for _, ch := range ck.Choices {
				if ch.Delta.Content == "" {
					continue
				}
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case out <- ch.Delta.Content:
				}
			}
		}
		if err := stream.Err(); err != nil {
			errCh <- fmt.Errorf("openai streaming error: %w", err)
		}
	}()

	return out, errCh
}

// Info returns metadata describing this OpenAI provider.
func (p *Provider) Info() model.Info {
	return model.Info{
		Name:          p.opts.Model,
		Provider:      "openai",
		SupportsTools: true,
	}
}

// buildParams assembles the completion request from history and tool
// definitions. Tool messages are surfaced as user turns since our protocol
// carries tool output as plain text.
func (p *Provider) buildParams(history []core.Message, tools []model.ToolDefinition) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion

	for _, m := range history {
		if m.Content == "" {
			continue
		}
		switch m.Role {
		case core.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case core.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	if block := toolsBlock(tools); block != "" {
		messages = append(messages, openai.SystemMessage(block))
	}

	return openai.ChatCompletionNewParams{
		Model:               p.opts.Model,
		Messages:            messages,
		Temperature:         openai.Float(p.opts.Temperature),
		MaxCompletionTokens: openai.Int(p.opts.MaxCompletionTokens),
	}
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
