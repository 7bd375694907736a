// Package action extracts a structured action (tool call or final reply)
// from raw model output. Models are instructed to answer with a single JSON
// object, but real completions wrap it in prose or markdown fencing; the
// parser tolerates both and never fails hard; anything unparseable is
// simply "no action", which callers treat as a plain reply.
package action

import (
	"encoding/json"
	"strings"
)

// Action types recognized on the wire.
const (
	TypeTool  = "tool"
	TypeReply = "reply"
)

// Action is the tagged union produced by parsing assistant output.
// For TypeTool the Name and Args fields are set; for TypeReply, Content.
// Actions are transient and never persisted.
type Action struct {
	Type    string         `json:"type"`
	Name    string         `json:"name,omitempty"`
	Args    map[string]any `json:"args,omitempty"`
	Content string         `json:"content,omitempty"`
}

// Parse extracts an action from raw model text, first match wins:
//
//  1. A ```json fenced block containing an object with a recognized type.
//  2. The substring between the first "{" and the last "}" of the text,
//     accepted only when it declares type "tool". A bare reply object
//     embedded in prose is deliberately NOT detected this way, so prose
//     that merely contains braces is never mis-read as structured output.
//
// Returns nil when no valid action is found; malformed JSON-ish fragments
// are swallowed, not surfaced as errors. The first/last-brace scan is a
// known approximation: braces inside string values can defeat it.
func Parse(text string) *Action {
	if payload, ok := fencedPayload(text); ok {
		if a := decode(payload); a != nil {
			return a
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}
	if a := decode(text[start : end+1]); a != nil && a.Type == TypeTool {
		return a
	}
	return nil
}

// ParseStrict accepts only an entire trimmed text that is exactly one JSON
// object declaring type "tool" or "reply". The engine tries this first and
// falls back to Parse, so a bare reply object yields its content while a
// reply buried in prose stays prose.
func ParseStrict(text string) *Action {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil
	}
	return decode(s)
}

// fencedPayload returns the contents of the first ```json block, if any.
func fencedPayload(text string) (string, bool) {
	const tag = "```json"
	i := strings.Index(text, tag)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(tag):]
	j := strings.Index(rest, "```")
	if j < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:j]), true
}

// decode unmarshals a candidate object and normalizes it. Unknown or missing
// type fields yield nil; a tool action always carries a non-nil args map so
// dispatch never needs a nil check. A missing tool name is left for dispatch
// to report as "unknown tool"; that is not a parse error.
func decode(s string) *Action {
	var a Action
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return nil
	}
	switch a.Type {
	case TypeTool:
		if a.Args == nil {
			a.Args = map[string]any{}
		}
		return &a
	case TypeReply:
		return &a
	default:
		return nil
	}
}
