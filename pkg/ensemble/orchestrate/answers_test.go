package orchestrate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triadhq/triad/pkg/ensemble/provider"
)

func TestAnswerSetOrder(t *testing.T) {
	s := NewAnswerSet()
	s.Add(provider.Gemini, "g")
	s.Add(provider.OpenAI, "o")

	assert.Equal(t, []provider.Identity{provider.Gemini, provider.OpenAI}, s.Identities())
	assert.Equal(t, 2, s.Len())

	// Overwriting keeps the original position.
	s.Add(provider.Gemini, "g2")
	assert.Equal(t, []provider.Identity{provider.Gemini, provider.OpenAI}, s.Identities())
	got, ok := s.Get(provider.Gemini)
	assert.True(t, ok)
	assert.Equal(t, "g2", got)
}

func TestAnswerSetConcatenate(t *testing.T) {
	s := NewAnswerSet()
	s.Add(provider.OpenAI, "X")
	s.Add(provider.DeepSeek, "Y")

	assert.Equal(t, "OPENAI: X\n\nDEEPSEEK: Y", s.Concatenate())
}

func TestAnswerSetConcatenateEmpty(t *testing.T) {
	assert.Equal(t, "", NewAnswerSet().Concatenate())
}

func TestResultMarshalJSON(t *testing.T) {
	s := NewAnswerSet()
	s.Add(provider.OpenAI, "alpha")
	s.Add(provider.Gemini, "gamma")
	r := &Result{Answers: s, Combined: "merged"}

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	assert.Equal(t, `{"openai":"alpha","gemini":"gamma","combined":"merged"}`, string(raw),
		"provider keys in insertion order, combined last")

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "merged", decoded["combined"])
}

func TestResultMarshalJSONEmptyAnswers(t *testing.T) {
	r := &Result{Answers: NewAnswerSet(), Combined: ""}

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"combined":""}`, string(raw))
}
