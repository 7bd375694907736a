package tool

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/agentloop/agentloop/core"
)

// ShellRun executes a command line in the system shell. The tool is inert
// unless explicitly enabled at construction; the model can always see it,
// but invocations fail with a clear diagnostic when disallowed.
type ShellRun struct {
	allow bool
}

// NewShellRun creates a ShellRun tool. Pass allow=false to keep the tool
// registered but disabled.
func NewShellRun(allow bool) *ShellRun {
	return &ShellRun{allow: allow}
}

// Name implements Tool.
func (t *ShellRun) Name() string { return "shell_run" }

// Description implements Tool.
func (t *ShellRun) Description() string {
	return "Run a command in the system shell (disabled unless allowed)"
}

// Parameters implements Tool.
func (t *ShellRun) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cmd":     map[string]any{"type": "string", "description": "Command line"},
			"timeout": map[string]any{"type": "integer", "default": 30},
		},
		"required": []string{"cmd"},
	}
}

// Invoke implements Tool. The command runs under a per-call timeout layered
// on top of the caller's context.
func (t *ShellRun) Invoke(ctx context.Context, args map[string]any) core.ToolResult {
	if !t.allow {
		return core.Errf("Shell tool disabled. Enable allow_shell to use it.")
	}

	var req struct {
		Cmd     string `mapstructure:"cmd"`
		Timeout int    `mapstructure:"timeout"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return core.Errf("invalid arguments: %v", err)
	}
	if req.Cmd == "" {
		return core.Errf("Shell error: cmd is required")
	}
	if req.Timeout <= 0 {
		req.Timeout = 30
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(req.Timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", req.Cmd)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return core.Errf("Shell error: command timed out after %ds", req.Timeout)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return core.Errf("%s", msg)
			}
			return core.Errf("Non-zero exit (%d)", exitErr.ExitCode())
		}
		return core.Errf("Shell error: %v", err)
	}
	return core.OK(strings.TrimSpace(stdout.String()))
}
