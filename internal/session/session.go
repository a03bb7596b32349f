// Package session holds the append-only conversation log for one user's
// interaction. Messages are never reordered or pruned; a session lives for
// the duration of the interactive process.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"personachat/internal/domain"
)

// Session is an ordered, append-only sequence of messages. Each session is
// owned by a single conversation; the mutex only protects against sharing
// mistakes, the orchestrator appends from one goroutine at a time.
type Session struct {
	id string

	mu       sync.RWMutex
	messages []domain.Message
}

// New creates an empty session.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Append adds a message to the end of the log.
func (s *Session) Append(m domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// Messages returns a copy of the log in insertion order.
func (s *Session) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len reports how many messages the session holds.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// NewMessage builds an immutable message with a fresh id and timestamp.
func NewMessage(role domain.Role, content string) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
