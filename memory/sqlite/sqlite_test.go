package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/agentloop/agentloop/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "mem.db"))
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Add([]core.MemoryItem{
		{Kind: "note", Text: "deploy target is staging"},
		{Kind: "file_write", Text: "Wrote notes/plan.md"},
		{Kind: "note", Text: "staging credentials live in vault"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	hits, err := store.Search("staging", 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "staging credentials live in vault", hits[0].Text)
	assert.Equal(t, "deploy target is staging", hits[1].Text)
	assert.Greater(t, hits[0].ID, hits[1].ID)

	hits, err = store.Search("staging", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	hits, err = store.Search("no such text", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "mem.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.Add([]core.MemoryItem{{Kind: "note", Text: "persists across opens"}})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	hits, err := store.Search("persists", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "note", hits[0].Kind)
}
