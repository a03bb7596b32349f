package domain

import (
	"encoding/json"
	"time"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single role-tagged entry in a conversation. Immutable once
// created.
type Message struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// Document is one record returned by the vector store. It is read-only,
// sourced externally, and never mutated by this program.
type Document map[string]any

// textFields are probed in order when extracting a document's content.
var textFields = []string{"text", "content", "texto", "conteudo"}

// Text returns the textual representation of the document: the first known
// content field if present, otherwise the whole document as compact JSON.
func (d Document) Text() string {
	for _, field := range textFields {
		if v, ok := d[field].(string); ok && v != "" {
			return v
		}
	}
	data, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	return string(data)
}
