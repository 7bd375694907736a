package core

// MemoryItem is a single note written to a MemoryStore. Kind is a short tag
// ("note", "file_write", ...) used when rendering retrieved context.
type MemoryItem struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// MemoryHit is one retrieval result. Hits are returned most-relevant first.
type MemoryHit struct {
	ID   int64  `json:"id"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// MemoryStore defines persistence + retrieval for conversational memory
// snippets. Implementations can back Search with keywords, embeddings or any
// heuristic; the engine only relies on the ordering contract. Backends must
// support concurrent Add and Search; the engine is single-conversation but
// several conversations may share one store.
type MemoryStore interface {
	Search(query string, limit int) ([]MemoryHit, error)
	Add(items []MemoryItem) (int, error)
}
