// Package agent implements the per-conversation engine that turns model
// output into tool invocations or final replies.
//
// The engine owns the conversation history and a single pending-action slot.
// One call to Turn runs a complete conversational turn: relevant memory is
// retrieved and surfaced to the model, the model is asked what to do, and the
// structured action extracted from its reply is either executed, parked for
// human approval, or passed through as the final answer. TurnStream is the
// incremental variant; it forwards model fragments as they arrive and commits
// state only once the full reply is known.
//
// An Engine is scoped to one conversation and is not safe for concurrent use
// by multiple callers. Give each conversation its own instance, or serialize
// access externally.
package agent
