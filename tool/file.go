package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentloop/agentloop/core"
)

// jail resolves a workspace-relative path and rejects anything that escapes
// the workspace root.
func jail(workspace, rel string) (string, error) {
	root, err := filepath.Abs(workspace)
	if err != nil {
		return "", err
	}
	p := filepath.Join(root, rel)
	if p != root && !strings.HasPrefix(p, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes workspace jail")
	}
	return p, nil
}

// ReadFile reads a UTF-8 text file within the workspace, optionally
// restricted to a 1-based inclusive line range.
type ReadFile struct {
	workspace string
}

// NewReadFile creates a ReadFile tool rooted at workspace.
func NewReadFile(workspace string) *ReadFile {
	return &ReadFile{workspace: workspace}
}

// Name implements Tool.
func (t *ReadFile) Name() string { return "read_file" }

// Description implements Tool.
func (t *ReadFile) Description() string {
	return "Read a UTF-8 text file within the workspace"
}

// Parameters implements Tool.
func (t *ReadFile) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path":  map[string]any{"type": "string", "description": "Relative path"},
			"start": map[string]any{"type": "integer", "description": "1-based start line", "default": 1},
			"end":   map[string]any{"type": "integer", "description": "inclusive end line", "default": 10000},
		},
		"required": []string{"path"},
	}
}

// Invoke implements Tool.
func (t *ReadFile) Invoke(_ context.Context, args map[string]any) core.ToolResult {
	var req struct {
		Path  string `mapstructure:"path"`
		Start int    `mapstructure:"start"`
		End   int    `mapstructure:"end"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return core.Errf("invalid arguments: %v", err)
	}
	if req.Start < 1 {
		req.Start = 1
	}
	if req.End < 1 {
		req.End = 10000
	}

	path, err := jail(t.workspace, req.Path)
	if err != nil {
		return core.Errf("Error reading file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Errf("Error reading file: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if req.Start > len(lines) {
		return core.OK("")
	}
	end := req.End
	if end > len(lines) {
		end = len(lines)
	}
	// An inverted range (start past end) is an empty window, not a fault.
	if end < req.Start {
		return core.OK("")
	}
	return core.OK(strings.Join(lines[req.Start-1:end], "\n"))
}

// WriteFile writes UTF-8 text to a file within the workspace, creating
// parent directories as needed. Successful writes are what the engine's
// file_write memory heuristic keys on.
type WriteFile struct {
	workspace string
}

// NewWriteFile creates a WriteFile tool rooted at workspace.
func NewWriteFile(workspace string) *WriteFile {
	return &WriteFile{workspace: workspace}
}

// Name implements Tool.
func (t *WriteFile) Name() string { return "write_file" }

// Description implements Tool.
func (t *WriteFile) Description() string {
	return "Write UTF-8 text to a file within the workspace (creates dirs)"
}

// Parameters implements Tool.
func (t *WriteFile) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path":    map[string]any{"type": "string"},
			"content": map[string]any{"type": "string"},
		},
		"required": []string{"path", "content"},
	}
}

// Invoke implements Tool.
func (t *WriteFile) Invoke(_ context.Context, args map[string]any) core.ToolResult {
	var req struct {
		Path    string `mapstructure:"path"`
		Content string `mapstructure:"content"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return core.Errf("invalid arguments: %v", err)
	}
	if req.Path == "" {
		return core.Errf("Error writing file: path is required")
	}

	path, err := jail(t.workspace, req.Path)
	if err != nil {
		return core.Errf("Error writing file: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return core.Errf("Error writing file: %v", err)
	}
	if err := os.WriteFile(path, []byte(req.Content), 0o644); err != nil {
		return core.Errf("Error writing file: %v", err)
	}
	return core.OK("Wrote " + filepath.ToSlash(req.Path))
}

// ListFiles lists files and directories under a workspace-relative path.
type ListFiles struct {
	workspace string
}

// NewListFiles creates a ListFiles tool rooted at workspace.
func NewListFiles(workspace string) *ListFiles {
	return &ListFiles{workspace: workspace}
}

// Name implements Tool.
func (t *ListFiles) Name() string { return "list_files" }

// Description implements Tool.
func (t *ListFiles) Description() string {
	return "List files and dirs under a workspace-relative path"
}

// Parameters implements Tool.
func (t *ListFiles) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{"type": "string", "default": "."},
		},
	}
}

// Invoke implements Tool.
func (t *ListFiles) Invoke(_ context.Context, args map[string]any) core.ToolResult {
	var req struct {
		Path string `mapstructure:"path"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return core.Errf("invalid arguments: %v", err)
	}
	if req.Path == "" {
		req.Path = "."
	}

	path, err := jail(t.workspace, req.Path)
	if err != nil {
		return core.Errf("Error listing files: %v", err)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return core.Errf("Error listing files: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var b strings.Builder
	for i, e := range entries {
		kind := "file"
		if e.IsDir() {
			kind = "dir"
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\t%s", kind, filepath.ToSlash(filepath.Join(req.Path, e.Name())))
	}
	return core.OK(b.String())
}
