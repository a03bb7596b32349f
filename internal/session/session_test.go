package session

import (
	"testing"

	"personachat/internal/domain"
)

func TestSession_AppendKeepsInsertionOrder(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatalf("new session should be empty, got %d", s.Len())
	}

	s.Append(NewMessage(domain.RoleUser, "primeira"))
	s.Append(NewMessage(domain.RoleAssistant, "segunda"))
	s.Append(NewMessage(domain.RoleUser, "terceira"))

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	want := []string{"primeira", "segunda", "terceira"}
	for i, m := range msgs {
		if m.Content != want[i] {
			t.Errorf("message %d content %q, want %q", i, m.Content, want[i])
		}
	}
}

func TestSession_MessagesReturnsCopy(t *testing.T) {
	s := New()
	s.Append(NewMessage(domain.RoleUser, "original"))

	msgs := s.Messages()
	msgs[0].Content = "mutated"

	if s.Messages()[0].Content != "original" {
		t.Error("mutating the returned slice must not affect the session")
	}
}

func TestSession_IDsAreUnique(t *testing.T) {
	if New().ID() == New().ID() {
		t.Error("sessions should get distinct ids")
	}
}

func TestNewMessage_Fields(t *testing.T) {
	m := NewMessage(domain.RoleAssistant, "conteúdo")
	if m.ID == "" {
		t.Error("message id should be set")
	}
	if m.Role != domain.RoleAssistant || m.Content != "conteúdo" {
		t.Errorf("unexpected message %+v", m)
	}
	if m.CreatedAt.IsZero() {
		t.Error("message timestamp should be set")
	}
}
