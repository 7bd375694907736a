package core

import "fmt"

// ToolResult is the outcome of a tool invocation. A tool either fully
// succeeds (Content is the legitimate result) or fully fails (Content is a
// human-readable diagnostic); there is no partial-success state. Tool
// implementations must never let an internal fault cross the invoke boundary
// as an error or panic; failures are captured here instead.
type ToolResult struct {
	OK      bool   `json:"ok"`
	Content string `json:"content"`
}

// OK builds a successful ToolResult.
func OK(content string) ToolResult {
	return ToolResult{OK: true, Content: content}
}

// Errf builds a failed ToolResult with a formatted diagnostic.
func Errf(format string, args ...any) ToolResult {
	return ToolResult{Content: fmt.Sprintf(format, args...)}
}
