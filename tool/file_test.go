package tool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadFile(t *testing.T) {
	ws := t.TempDir()

	res := NewWriteFile(ws).Invoke(context.Background(), map[string]any{
		"path":    "notes/hello.txt",
		"content": "line one\nline two\nline three",
	})
	require.True(t, res.OK)
	assert.Equal(t, "Wrote notes/hello.txt", res.Content)

	read := NewReadFile(ws)

	res = read.Invoke(context.Background(), map[string]any{"path": "notes/hello.txt"})
	require.True(t, res.OK)
	assert.Equal(t, "line one\nline two\nline three", res.Content)

	// Line numbers are 1-based and inclusive.
	res = read.Invoke(context.Background(), map[string]any{
		"path":  "notes/hello.txt",
		"start": 2,
		"end":   2,
	})
	require.True(t, res.OK)
	assert.Equal(t, "line two", res.Content)

	res = read.Invoke(context.Background(), map[string]any{
		"path":  "notes/hello.txt",
		"start": 10,
	})
	require.True(t, res.OK)
	assert.Equal(t, "", res.Content)
}

func TestReadFileInvertedRange(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ws, "a.txt"),
		[]byte("1\n2\n3\n4\n5\n6\n7\n8\n9\n10"), 0o644))

	// start inside the file but past end: an empty window, never a panic.
	res := NewReadFile(ws).Invoke(context.Background(), map[string]any{
		"path":  "a.txt",
		"start": 5,
		"end":   2,
	})
	require.True(t, res.OK)
	assert.Equal(t, "", res.Content)
}

func TestReadFileMissing(t *testing.T) {
	res := NewReadFile(t.TempDir()).Invoke(context.Background(), map[string]any{"path": "nope.txt"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Content, "Error reading file")
}

func TestWorkspaceJail(t *testing.T) {
	ws := t.TempDir()

	res := NewReadFile(ws).Invoke(context.Background(), map[string]any{"path": "../../etc/passwd"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Content, "escapes workspace jail")

	res = NewWriteFile(ws).Invoke(context.Background(), map[string]any{
		"path":    "../outside.txt",
		"content": "x",
	})
	assert.False(t, res.OK)

	_, err := os.Stat(filepath.Join(ws, "..", "outside.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestListFiles(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ws, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ws, "a.txt"), []byte("a"), 0o644))

	res := NewListFiles(ws).Invoke(context.Background(), map[string]any{})
	require.True(t, res.OK)
	assert.Equal(t, "file\ta.txt\nfile\tb.txt\ndir\tsub", res.Content)
}
