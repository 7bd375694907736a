// Package agentloop provides a high-level façade over the agent engine and
// its collaborators (model providers, tools, memory, task runner). Most
// applications interact with this package by:
//  1. Loading or constructing a config.Config
//  2. Creating an AgentLoop via New()
//  3. Calling Turn/TurnStream for conversation or RunTask for autonomous work
//
// The façade wires a provider, the builtin tool set, a memory store and a
// logger into one engine per AgentLoop instance. All defaults are safe for
// local use; swap collaborators through Options for anything else.
package agentloop

import (
	"context"
	"fmt"

	"github.com/agentloop/agentloop/agent"
	"github.com/agentloop/agentloop/config"
	"github.com/agentloop/agentloop/core"
	"github.com/agentloop/agentloop/logging"
	"github.com/agentloop/agentloop/memory"
	"github.com/agentloop/agentloop/memory/sqlite"
	"github.com/agentloop/agentloop/model"
	"github.com/agentloop/agentloop/model/anthropic"
	"github.com/agentloop/agentloop/model/openai"
	"github.com/agentloop/agentloop/runner"
	"github.com/agentloop/agentloop/tool"
	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
)

// Options configures an AgentLoop instance beyond what config.Config covers.
type Options struct {
	// Provider overrides the provider selected by the config.
	Provider model.Provider

	// Memory overrides the store selected by the config's memory_path.
	Memory core.MemoryStore

	// Registry overrides the builtin tool set.
	Registry *tool.Registry

	// Logger (defaults to a slog text logger at the configured level).
	Logger logging.Logger
}

// AgentLoop aggregates a configured engine and its task runner.
type AgentLoop struct {
	cfg      config.Config
	engine   *agent.Engine
	runner   *runner.Runner
	registry *tool.Registry
	memory   core.MemoryStore
	closers  []func() error
}

// New creates an AgentLoop from the given config. Unset collaborators are
// built from the config: the provider from cfg.Provider, the builtin tools
// from the workspace and permission flags, and the memory store from
// cfg.MemoryPath.
func New(cfg config.Config, optFns ...func(o *Options)) (*AgentLoop, error) {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, nil)
	}

	l := &AgentLoop{cfg: cfg}

	if opts.Provider == nil {
		p, err := buildProvider(cfg)
		if err != nil {
			return nil, err
		}
		opts.Provider = p
	}

	if opts.Memory == nil {
		if cfg.MemoryPath == "" {
			opts.Memory = memory.NewInMemoryStore()
		} else {
			store, err := sqlite.Open(cfg.MemoryPath)
			if err != nil {
				return nil, fmt.Errorf("open memory store: %w", err)
			}
			opts.Memory = store
			l.closers = append(l.closers, store.Close)
		}
	}

	if opts.Registry == nil {
		opts.Registry = BuiltinRegistry(cfg)
	}

	l.memory = opts.Memory
	l.registry = opts.Registry
	l.engine = agent.New(opts.Provider, func(o *agent.Options) {
		o.Memory = opts.Memory
		o.Registry = opts.Registry
		o.Logger = opts.Logger
		o.ApproveTools = cfg.ApproveTools
	})
	l.runner = runner.New(l.engine, func(o *runner.Options) {
		o.MaxSteps = cfg.MaxSteps
		o.Logger = opts.Logger
	})
	return l, nil
}

// BuiltinRegistry constructs the standard tool set for a config: file tools
// jailed to the workspace, shell and fetch gated by the permission flags,
// and git operations.
func BuiltinRegistry(cfg config.Config) *tool.Registry {
	return tool.NewRegistry(
		tool.NewReadFile(cfg.Workspace),
		tool.NewWriteFile(cfg.Workspace),
		tool.NewListFiles(cfg.Workspace),
		tool.NewShellRun(cfg.AllowShell),
		tool.NewWebFetch(cfg.AllowedDomains),
		tool.NewGitOps(cfg.Workspace),
	)
}

func buildProvider(cfg config.Config) (model.Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return anthropic.New(func(o *anthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
			o.Temperature = cfg.Temperature
			o.MaxTokens = int64(cfg.MaxTokens)
			o.APIKey = cfg.APIKey
		}), nil
	case "openai":
		return openai.New(func(o *openai.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
			o.Temperature = cfg.Temperature
			o.MaxCompletionTokens = int64(cfg.MaxTokens)
			o.APIKey = cfg.APIKey
		}), nil
	case "echo":
		return model.NewEchoProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// Engine exposes the underlying per-conversation engine.
func (l *AgentLoop) Engine() *agent.Engine { return l.engine }

// Registry exposes the tool registry in use.
func (l *AgentLoop) Registry() *tool.Registry { return l.registry }

// Turn runs one conversational turn.
func (l *AgentLoop) Turn(ctx context.Context, text string) (agent.Result, error) {
	return l.engine.Turn(ctx, text)
}

// TurnStream runs one conversational turn, streaming model output.
func (l *AgentLoop) TurnStream(ctx context.Context, text string) (<-chan agent.StreamEvent, <-chan error) {
	return l.engine.TurnStream(ctx, text)
}

// Resolve settles a pending tool approval.
func (l *AgentLoop) Resolve(ctx context.Context, approve bool) (agent.Result, error) {
	return l.engine.Resolve(ctx, approve)
}

// RunTask drives the engine autonomously until the task completes or the
// configured step ceiling is reached.
func (l *AgentLoop) RunTask(ctx context.Context, description string) ([]runner.StepResult, error) {
	return l.runner.RunTask(ctx, description)
}

// Close releases resources held by collaborators (the memory store).
func (l *AgentLoop) Close() error {
	var first error
	for _, fn := range l.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
