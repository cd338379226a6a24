package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat entry.
type Role string

const (
	RoleUser      Role = "USER"
	RoleAssistant Role = "ASSISTANT"
)

// ParseRole accepts a role name in any letter case.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAssistant:
		return RoleAssistant, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Chat stores metadata about a conversation. Entries are loaded explicitly
// through the store, never through the chat itself.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry stores a single message in a chat.
type Entry struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewChat builds a chat with a fresh id and creation time.
func NewChat(title string) *Chat {
	return &Chat{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
}

// NewEntry builds an entry with a fresh id and creation time.
func NewEntry(chatID string, role Role, content string) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// FullChat includes the chat metadata and all its entries.
type FullChat struct {
	Chat
	Entries []Entry `json:"entries"`
}

// StreamChunk is the envelope sent to clients for every server-sent event.
type StreamChunk struct {
	Text    string `json:"text,omitempty"`
	Done    bool   `json:"done,omitempty"`
	EntryID string `json:"entry_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TurnState tracks a single prompt/response exchange.
type TurnState string

const (
	TurnAwaitingResponse TurnState = "awaiting-response"
	TurnCompleted        TurnState = "completed"
	// TurnSkipped marks a turn whose prompt was blank.
	TurnSkipped TurnState = "skipped"
)

// Turn is the outcome of a prompt/response exchange.
type Turn struct {
	ChatID         string    `json:"chat_id"`
	State          TurnState `json:"state"`
	UserEntry      *Entry    `json:"user_entry,omitempty"`
	AssistantEntry *Entry    `json:"assistant_entry,omitempty"`
}
