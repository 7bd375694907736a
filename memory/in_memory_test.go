package memory

import (
	"testing"

	"github.com/agentloop/agentloop/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	store := NewInMemoryStore()

	n, err := store.Add([]core.MemoryItem{
		{Kind: "note", Text: "the deploy target is staging"},
		{Kind: "file_write", Text: "Wrote notes/plan.md"},
		{Kind: "note", Text: "prefer staging over prod for tests"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, store.Len())

	hits, err := store.Search("staging", 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	// Newest first.
	assert.Equal(t, "prefer staging over prod for tests", hits[0].Text)
	assert.Equal(t, "the deploy target is staging", hits[1].Text)
	assert.Greater(t, hits[0].ID, hits[1].ID)

	hits, err = store.Search("STAGING", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "prefer staging over prod for tests", hits[0].Text)

	hits, err = store.Search("nothing matches this", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestInMemoryStoreEmptyQuery(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Add([]core.MemoryItem{
		{Kind: "note", Text: "alpha"},
		{Kind: "note", Text: "beta"},
	})
	require.NoError(t, err)

	hits, err := store.Search("", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "beta", hits[0].Text)
}
