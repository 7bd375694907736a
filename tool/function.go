package tool

import (
	"context"

	"github.com/agentloop/agentloop/core"
	"github.com/agentloop/agentloop/internal/util"
)

// FunctionTool is a generic adapter that exposes a plain Go function as an
// agentloop tool.
//
// Responsibilities:
//   - Holds a lightweight JSON-Schema-like parameter specification
//   - Validates model supplied arguments against that schema before execution
//   - Normalizes failures so callers always receive a core.ToolResult:
//     validation and execution errors become failed results, never errors
//
// A FunctionTool has no internal mutable state after construction and is
// safe for concurrent use by multiple goroutines.
type FunctionTool struct {
	name        string
	description string
	parameters  map[string]any
	fn          func(ctx context.Context, args map[string]any) (string, error)
}

// NewFunctionTool constructs a FunctionTool from explicit schema and function.
//
// Example:
//
//	wordCount := NewFunctionTool(
//	  "word_count",
//	  "Count the words in a text",
//	  map[string]any{
//	    "type": "object",
//	    "properties": map[string]any{
//	      "text": map[string]any{"type": "string"},
//	    },
//	    "required": []string{"text"},
//	  },
//	  func(_ context.Context, args map[string]any) (string, error) {
//	    text, _ := args["text"].(string)
//	    return strconv.Itoa(len(strings.Fields(text))), nil
//	  },
//	)
func NewFunctionTool(
	name, description string,
	parameters map[string]any,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

// NewFunctionToolFromStruct derives the parameter schema from a struct using
// reflection; a convenience for simple argument containers.
func NewFunctionToolFromStruct(
	name, description string,
	structType any,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *FunctionTool {
	return NewFunctionTool(name, description, util.CreateSchema(structType), fn)
}

// Name returns the unique tool name.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the description exposed to models.
func (t *FunctionTool) Description() string { return t.description }

// Parameters returns the JSON schema describing expected arguments.
func (t *FunctionTool) Parameters() map[string]any { return t.parameters }

// Invoke validates the provided args against the declared schema, then runs
// the wrapped function. Both validation and execution failures are reported
// as failed results.
func (t *FunctionTool) Invoke(ctx context.Context, args map[string]any) core.ToolResult {
	if err := util.ValidateParameters(args, t.parameters); err != nil {
		return core.Errf("parameter validation failed: %v", err)
	}
	out, err := t.fn(ctx, args)
	if err != nil {
		return core.Errf("%v", err)
	}
	return core.OK(out)
}
