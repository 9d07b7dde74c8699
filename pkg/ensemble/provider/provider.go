// Package provider normalizes heterogeneous LLM vendor APIs behind one
// uniform adapter interface selected from a registry.
package provider

import (
	"context"
	"strings"

	"github.com/triadhq/triad/pkg/ensemble/chat"
)

//go:generate mockgen -destination=./mocks/mock_provider.go -package=mocks github.com/triadhq/triad/pkg/ensemble/provider Provider

// Identity names one of the fixed set of supported vendors.
type Identity string

const (
	OpenAI   Identity = "openai"
	DeepSeek Identity = "deepseek"
	Gemini   Identity = "gemini"
)

// Enumeration is the fixed priority order providers are registered,
// invoked and reported in. Adding a vendor is a data change here plus one
// entry in the vendor table.
var Enumeration = []Identity{OpenAI, DeepSeek, Gemini}

// Result is the uniform outcome of one adapter call. Exactly one field is
// set. Failures are represented as data; nothing propagates past the
// adapter boundary.
type Result struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Failed reports whether the call produced an error instead of content.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Text returns the content on success or the error text on failure.
func (r Result) Text() string {
	if r.Failed() {
		return r.Error
	}
	return r.Content
}

// Provider is one vendor adapter.
type Provider interface {
	// Identity returns the provider's enumeration identity.
	Identity() Identity

	// Model returns the model used when no override is given.
	Model() string

	// Configured reports whether a credential is present.
	Configured() bool

	// Ask sends the message sequence and returns the normalized result.
	// Exactly one outbound call per invocation; no retries, no caching.
	Ask(ctx context.Context, messages []chat.Message, modelOverride string) Result
}

// Parse resolves a provider name case-insensitively against the
// enumeration.
func Parse(name string) (Identity, bool) {
	id := Identity(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Enumeration {
		if id == known {
			return id, true
		}
	}
	return "", false
}

// Resolve filters the requested names against the enumeration, preserving
// enumeration order and ignoring unknown names. An empty request falls back
// to the full set; a request that matches nothing resolves to nothing.
func Resolve(names []string) []Identity {
	if len(names) == 0 {
		return append([]Identity(nil), Enumeration...)
	}

	want := make(map[Identity]bool, len(names))
	for _, name := range names {
		if id, ok := Parse(name); ok {
			want[id] = true
		}
	}

	out := make([]Identity, 0, len(want))
	for _, id := range Enumeration {
		if want[id] {
			out = append(out, id)
		}
	}
	return out
}
