package core

// Conversation roles. History entries only ever carry one of these values.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is a single entry of a conversation history. Histories are
// append-only for the lifetime of an engine instance; entries are never
// reordered or deleted, so the history is a faithful audit trail of what was
// asked and what the model produced.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
