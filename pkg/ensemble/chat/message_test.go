package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessages(t *testing.T) {
	tests := []struct {
		name    string
		history []Message
		query   string
		want    []Message
	}{
		{
			name:  "no history",
			query: "hello",
			want: []Message{
				{Role: RoleSystem, Content: SystemPrompt},
				{Role: RoleUser, Content: "hello"},
			},
		},
		{
			name: "preserves turn order",
			history: []Message{
				{Role: RoleUser, Content: "first"},
				{Role: RoleAssistant, Content: "second"},
				{Role: RoleUser, Content: "third"},
			},
			query: "fourth",
			want: []Message{
				{Role: RoleSystem, Content: SystemPrompt},
				{Role: RoleUser, Content: "first"},
				{Role: RoleAssistant, Content: "second"},
				{Role: RoleUser, Content: "third"},
				{Role: RoleUser, Content: "fourth"},
			},
		},
		{
			name: "drops malformed entries",
			history: []Message{
				{Role: RoleUser, Content: ""},
				{Role: "moderator", Content: "not a real role"},
				{Content: "missing role"},
				{Role: RoleAssistant, Content: "kept"},
			},
			query: "q",
			want: []Message{
				{Role: RoleSystem, Content: SystemPrompt},
				{Role: RoleAssistant, Content: "kept"},
				{Role: RoleUser, Content: "q"},
			},
		},
		{
			name:  "blank query appends nothing",
			query: "   \t\n",
			want: []Message{
				{Role: RoleSystem, Content: SystemPrompt},
			},
		},
		{
			name:  "query is trimmed",
			query: "  spaced out  ",
			want: []Message{
				{Role: RoleSystem, Content: SystemPrompt},
				{Role: RoleUser, Content: "spaced out"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildMessages(tt.history, tt.query)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, RoleSystem, got[0].Role, "system message must come first")
		})
	}
}

func TestBuildMessagesIsPure(t *testing.T) {
	history := []Message{{Role: RoleUser, Content: "hi"}}
	first := BuildMessages(history, "query")
	second := BuildMessages(history, "query")
	assert.Equal(t, first, second)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hi"}}, history, "input must not be mutated")
}

func TestTail(t *testing.T) {
	history := []Message{
		{Role: RoleSystem, Content: "ignored"},
		{Role: RoleUser, Content: "u1"},
		{Role: RoleAssistant, Content: "a1"},
		{Role: RoleUser, Content: "u2"},
		{Role: RoleAssistant, Content: "a2"},
		{Role: RoleUser, Content: "u3"},
		{Role: RoleAssistant, Content: "a3"},
		{Role: RoleUser, Content: "u4"},
	}

	got := Tail(history, 6)
	assert.Len(t, got, 6)
	assert.Equal(t, "a1", got[0].Content)
	assert.Equal(t, "u4", got[5].Content)
	for _, m := range got {
		assert.NotEqual(t, RoleSystem, m.Role)
	}

	short := Tail(history[:3], 6)
	assert.Len(t, short, 2)
}

func TestMessageValid(t *testing.T) {
	assert.True(t, Message{Role: RoleUser, Content: "x"}.Valid())
	assert.True(t, Message{Role: RoleSystem, Content: "x"}.Valid())
	assert.False(t, Message{Role: RoleUser}.Valid())
	assert.False(t, Message{Role: "tool", Content: "x"}.Valid())
	assert.False(t, Message{Content: "x"}.Valid())
}
