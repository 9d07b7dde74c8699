package provider

import (
	"fmt"
	"sync"

	"github.com/triadhq/triad/pkg/ensemble/config"
)

// Registry maps provider identities to adapters, preserving registration
// order. It is populated once at startup and read-only afterwards.
type Registry struct {
	mu        sync.RWMutex
	order     []Identity
	providers map[Identity]Provider
	fallback  Identity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[Identity]Provider),
	}
}

// NewDefaultRegistry builds the full vendor set from configuration, in
// enumeration order, and applies the configured default summarizer.
func NewDefaultRegistry(cfg config.Config) *Registry {
	r := NewRegistry()
	for _, id := range Enumeration {
		// Registration of the fixed set cannot collide.
		_ = r.Register(newOpenAICompat(vendors[id], cfg.Credentials(string(id)), cfg.Temperature, cfg.Timeout))
	}
	if id, ok := Parse(cfg.Summarizer); ok {
		_ = r.SetDefault(id)
	}
	return r
}

// Register adds a provider to the registry. The first registered provider
// becomes the default until SetDefault is called.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := p.Identity()
	if id == "" {
		return fmt.Errorf("provider identity cannot be empty")
	}
	if _, exists := r.providers[id]; exists {
		return fmt.Errorf("provider %q already registered", id)
	}

	r.providers[id] = p
	r.order = append(r.order, id)

	if r.fallback == "" {
		r.fallback = id
	}
	return nil
}

// SetDefault sets the provider used when no summarizer choice is given.
func (r *Registry) SetDefault(id Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[id]; !exists {
		return fmt.Errorf("provider %q not registered", id)
	}
	r.fallback = id
	return nil
}

// Default returns the default summarizer identity.
func (r *Registry) Default() Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Get returns the adapter for an identity.
func (r *Registry) Get(id Identity) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	return p, ok
}

// Identities returns the registered identities in registration order.
func (r *Registry) Identities() []Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Identity(nil), r.order...)
}

// Info describes one registered provider for the HTTP listing.
type Info struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
	IsDefault  bool   `json:"is_default"`
}

// AllInfo returns information about every registered provider in
// registration order.
func (r *Registry) AllInfo() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		p := r.providers[id]
		result = append(result, Info{
			Name:       string(id),
			Model:      p.Model(),
			Configured: p.Configured(),
			IsDefault:  id == r.fallback,
		})
	}
	return result
}
