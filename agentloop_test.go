package agentloop

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/agentloop/agentloop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithEchoProvider(t *testing.T) {
	cfg := config.Config{
		Provider:  "echo",
		Workspace: t.TempDir(),
		MaxSteps:  5,
	}
	l, err := New(cfg)
	require.NoError(t, err)
	defer l.Close()

	res, err := l.Turn(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, "Echo: hello there", res.Output)
	assert.Empty(t, res.UsedTool)
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(config.Config{Provider: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestNewWithSQLiteMemory(t *testing.T) {
	cfg := config.Config{
		Provider:   "echo",
		Workspace:  t.TempDir(),
		MemoryPath: filepath.Join(t.TempDir(), "mem.db"),
		MaxSteps:   5,
	}
	l, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, l.Close())
}

func TestBuiltinRegistry(t *testing.T) {
	r := BuiltinRegistry(config.Config{Workspace: "."})
	assert.Equal(t, []string{
		"git_ops", "list_files", "read_file", "shell_run", "web_fetch", "write_file",
	}, r.Names())
}
