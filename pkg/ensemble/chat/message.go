// Package chat defines the normalized conversation types shared by every
// provider adapter.
package chat

import "strings"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SystemPrompt is prepended to every outbound conversation.
const SystemPrompt = "You are a helpful assistant. Answer clearly and " +
	"concisely, in plain language, with concrete examples when they help."

// Message is a single role-tagged conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Valid reports whether the message has a known role and non-empty content.
func (m Message) Valid() bool {
	switch m.Role {
	case RoleSystem, RoleUser, RoleAssistant:
		return m.Content != ""
	default:
		return false
	}
}

// BuildMessages turns a conversation history plus a new query into the
// message sequence sent to providers. The fixed system prompt always comes
// first, malformed history entries are dropped silently, and the query is
// appended as a final user turn only when non-blank. Pure and deterministic.
func BuildMessages(history []Message, query string) []Message {
	out := make([]Message, 0, len(history)+2)
	out = append(out, Message{Role: RoleSystem, Content: SystemPrompt})
	for _, m := range history {
		if m.Valid() {
			out = append(out, m)
		}
	}
	if q := strings.TrimSpace(query); q != "" {
		out = append(out, Message{Role: RoleUser, Content: q})
	}
	return out
}

// Tail returns the last n valid user/assistant turns of history, preserving
// their relative order. System turns are excluded.
func Tail(history []Message, n int) []Message {
	kept := make([]Message, 0, len(history))
	for _, m := range history {
		if m.Valid() && m.Role != RoleSystem {
			kept = append(kept, m)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return kept
}
