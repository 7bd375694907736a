package tool

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunDisabled(t *testing.T) {
	res := NewShellRun(false).Invoke(context.Background(), map[string]any{"cmd": "echo hi"})
	assert.False(t, res.OK)
	assert.Equal(t, "Shell tool disabled. Enable allow_shell to use it.", res.Content)
}

func TestShellRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	sh := NewShellRun(true)

	res := sh.Invoke(context.Background(), map[string]any{"cmd": "echo hello"})
	require.True(t, res.OK)
	assert.Equal(t, "hello", res.Content)

	res = sh.Invoke(context.Background(), map[string]any{"cmd": "exit 3"})
	assert.False(t, res.OK)
	assert.Equal(t, "Non-zero exit (3)", res.Content)

	res = sh.Invoke(context.Background(), map[string]any{"cmd": ""})
	assert.False(t, res.OK)
}

func TestShellRunTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	res := NewShellRun(true).Invoke(context.Background(), map[string]any{
		"cmd":     "sleep 5",
		"timeout": 1,
	})
	assert.False(t, res.OK)
	assert.Equal(t, "Shell error: command timed out after 1s", res.Content)
}
