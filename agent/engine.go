package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agentloop/agentloop/action"
	"github.com/agentloop/agentloop/core"
	"github.com/agentloop/agentloop/internal/util"
	"github.com/agentloop/agentloop/logging"
	"github.com/agentloop/agentloop/memory"
	"github.com/agentloop/agentloop/model"
	"github.com/agentloop/agentloop/tool"
)

// DefaultSystemPrompt instructs the model to answer with the structured
// action protocol the parser understands.
const DefaultSystemPrompt = "You are a local coding and automation assistant. " +
	"When a tool is needed, respond ONLY with a single-line JSON object: " +
	`{"type":"tool", "name":<tool_name>, "args":{...}}. ` +
	`Otherwise respond with {"type":"reply", "content":<message>}.`

// Options configures an Engine instance.
//
// Use functional options with New to override defaults.
type Options struct {
	// Memory is the store queried before each turn and written to as a side
	// effect of notable events. Defaults to a volatile in-memory store.
	Memory core.MemoryStore

	// Registry holds the tools the model may invoke. Defaults to an empty
	// registry.
	Registry *tool.Registry

	// Logger for engine diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger

	// ApproveTools gates every tool invocation behind an explicit Resolve
	// call when true.
	ApproveTools bool

	// SystemPrompt seeds the conversation. Defaults to DefaultSystemPrompt.
	SystemPrompt string

	// MemoryLimit bounds how many memory hits are surfaced per turn.
	MemoryLimit int

	// NoteLimit is the maximum user-text length persisted as a memory note.
	NoteLimit int
}

// Result is the outcome of one conversational turn.
type Result struct {
	// Output is the text to show the caller: a final reply, a tool result
	// prefixed "OK:"/"ERR:", an approval prompt, or a diagnostic.
	Output string

	// UsedTool names the tool executed or proposed this turn; empty for a
	// plain reply.
	UsedTool string
}

// Engine is the per-conversation state machine. It holds the conversation
// history and at most one pending tool action awaiting approval.
type Engine struct {
	id           string
	provider     model.Provider
	memory       core.MemoryStore
	registry     *tool.Registry
	logger       logging.Logger
	approveTools bool
	memoryLimit  int
	noteLimit    int

	history []core.Message
	pending *action.Action
}

// New creates an Engine for a single conversation.
//
// The engine is initialized with:
//   - DefaultSystemPrompt as the first history message
//   - A volatile in-memory store when none is supplied
//   - An empty tool registry when none is supplied
//   - Approval mode off
func New(provider model.Provider, optFns ...func(o *Options)) *Engine {
	opts := Options{
		SystemPrompt: DefaultSystemPrompt,
		MemoryLimit:  3,
		NoteLimit:    400,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Memory == nil {
		opts.Memory = memory.NewInMemoryStore()
	}
	if opts.Registry == nil {
		opts.Registry = tool.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Engine{
		id:           util.NewID(),
		provider:     provider,
		memory:       opts.Memory,
		registry:     opts.Registry,
		logger:       opts.Logger,
		approveTools: opts.ApproveTools,
		memoryLimit:  opts.MemoryLimit,
		noteLimit:    opts.NoteLimit,
		history:      []core.Message{{Role: core.RoleSystem, Content: opts.SystemPrompt}},
	}
}

// ID returns the conversation identifier assigned at construction.
func (e *Engine) ID() string { return e.id }

// History returns a copy of the conversation so far.
func (e *Engine) History() []core.Message {
	out := make([]core.Message, len(e.history))
	copy(out, e.history)
	return out
}

// HasPending reports whether a tool action is parked awaiting approval.
func (e *Engine) HasPending() bool { return e.pending != nil }

func (e *Engine) append(role, content string) {
	e.history = append(e.history, core.Message{Role: role, Content: content})
}

// Turn runs one conversational turn: memory lookup, model call, then action
// dispatch. A provider failure is the only error; every other outcome is a
// reply-shaped Result.
func (e *Engine) Turn(ctx context.Context, userText string) (Result, error) {
	e.prologue(userText)

	raw, err := e.provider.Chat(ctx, e.history, e.registry.Definitions())
	if err != nil {
		return Result{}, fmt.Errorf("provider chat: %w", err)
	}
	return e.dispatch(ctx, userText, raw), nil
}

// Resolve settles a pending tool action. When approval mode is active and a
// tool call is parked, approve=true executes it and approve=false discards
// it with a denial message. Without a pending action the decision is relayed
// to the model as a normal turn.
func (e *Engine) Resolve(ctx context.Context, approve bool) (Result, error) {
	if e.pending == nil || !e.approveTools {
		text := "(deny)"
		if approve {
			text = "(approve)"
		}
		return e.Turn(ctx, text)
	}

	act := e.pending
	e.pending = nil
	if !approve {
		e.logger.Info("tool denied", "conversation", e.id, "tool", act.Name)
		return Result{Output: "Tool execution denied by user."}, nil
	}
	return e.execute(ctx, act), nil
}

// prologue surfaces relevant memory ahead of the user message and appends
// the user message itself. Shared by Turn and TurnStream.
func (e *Engine) prologue(userText string) {
	hits, err := e.memory.Search(userText, e.memoryLimit)
	if err != nil {
		e.logger.Warn("memory search failed", "conversation", e.id, "error", err)
	}
	if len(hits) > 0 {
		mem := "Relevant memory:"
		for _, h := range hits {
			mem += fmt.Sprintf("\n- [%s] %s", h.Kind, h.Text)
		}
		e.append(core.RoleSystem, mem)
	}
	e.append(core.RoleUser, userText)
}

// dispatch records the model's raw reply verbatim, then interprets it as a
// tool call or a final answer. Shared by Turn and the streaming commit.
func (e *Engine) dispatch(ctx context.Context, userText, raw string) Result {
	e.append(core.RoleAssistant, raw)

	act := action.ParseStrict(raw)
	if act == nil {
		act = action.Parse(raw)
	}
	if act == nil || act.Type != action.TypeTool {
		if len(userText) < e.noteLimit {
			if _, err := e.memory.Add([]core.MemoryItem{{Kind: "note", Text: userText}}); err != nil {
				e.logger.Warn("memory add failed", "conversation", e.id, "error", err)
			}
		}
		if act != nil && act.Type == action.TypeReply {
			return Result{Output: act.Content}
		}
		return Result{Output: raw}
	}

	if _, ok := e.registry.Get(act.Name); !ok {
		return Result{Output: "Unknown tool: " + act.Name}
	}
	if e.approveTools {
		e.pending = act
		e.logger.Info("tool pending approval", "conversation", e.id, "tool", act.Name)
		return Result{
			Output:   fmt.Sprintf("Tool requested: %s %s. Approve? (y/n)", act.Name, renderArgs(act.Args)),
			UsedTool: act.Name,
		}
	}
	return e.execute(ctx, act)
}

// execute invokes a tool, records its output in history, and applies the
// file-write memory heuristic.
func (e *Engine) execute(ctx context.Context, act *action.Action) Result {
	t, ok := e.registry.Get(act.Name)
	if !ok {
		return Result{Output: "Unknown tool: " + act.Name}
	}

	e.logger.Debug("invoking tool", "conversation", e.id, "tool", act.Name)
	res := t.Invoke(ctx, act.Args)
	e.append(core.RoleTool, fmt.Sprintf("%s: %s", act.Name, res.Content))

	if res.OK && act.Name == "write_file" {
		if _, err := e.memory.Add([]core.MemoryItem{{Kind: "file_write", Text: renderArgs(act.Args)}}); err != nil {
			e.logger.Warn("memory add failed", "conversation", e.id, "error", err)
		}
	}

	prefix := "OK: "
	if !res.OK {
		prefix = "ERR: "
	}
	return Result{Output: prefix + res.Content, UsedTool: act.Name}
}

// renderArgs produces a stable textual form of tool arguments; JSON object
// keys come out sorted, so approval prompts are deterministic.
func renderArgs(args map[string]any) string {
	b, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(b)
}
