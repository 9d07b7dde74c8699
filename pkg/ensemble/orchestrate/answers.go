// Package orchestrate owns the execution strategies that fan one query out
// to the provider adapters and merge their answers into a single response.
package orchestrate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/triadhq/triad/pkg/ensemble/provider"
)

// AnswerSet records one text answer (or error text) per contributing
// provider. Insertion order is the order providers were selected for the
// run, which follows the fixed enumeration order.
type AnswerSet struct {
	order   []provider.Identity
	answers map[provider.Identity]string
}

// NewAnswerSet creates an empty answer set.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{answers: make(map[provider.Identity]string)}
}

// Add records a provider's answer text. Re-adding an identity overwrites
// the text but keeps its original position.
func (s *AnswerSet) Add(id provider.Identity, text string) {
	if _, exists := s.answers[id]; !exists {
		s.order = append(s.order, id)
	}
	s.answers[id] = text
}

// Get returns the answer recorded for an identity.
func (s *AnswerSet) Get(id provider.Identity) (string, bool) {
	text, ok := s.answers[id]
	return text, ok
}

// Identities returns the contributing identities in insertion order.
func (s *AnswerSet) Identities() []provider.Identity {
	return append([]provider.Identity(nil), s.order...)
}

// Len returns the number of contributing providers.
func (s *AnswerSet) Len() int {
	return len(s.order)
}

// Concatenate renders the deterministic "PROVIDER: answer" fallback used
// when the synthesis call fails. Keys are upper-cased, blocks are joined by
// blank lines in insertion order. An empty set yields an empty string.
func (s *AnswerSet) Concatenate() string {
	blocks := make([]string, 0, len(s.order))
	for _, id := range s.order {
		blocks = append(blocks, strings.ToUpper(string(id))+": "+s.answers[id])
	}
	return strings.Join(blocks, "\n\n")
}

// Result is the sole return value of one orchestration run: the per-provider
// answers plus the synthesized combined answer. It is constructed once and
// handed back; orchestration never fails outright.
type Result struct {
	Answers  *AnswerSet
	Combined string
}

// MarshalJSON emits one key per contributing provider, in insertion order,
// followed by "combined".
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, id := range r.Answers.order {
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.Answers.answers[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
		buf.WriteByte(',')
	}
	combined, err := json.Marshal(r.Combined)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"combined":`)
	buf.Write(combined)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
