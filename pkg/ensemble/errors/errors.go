// Package errors provides domain-specific error types for the ensemble core.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a provider failure.
type Kind int

const (
	// KindConfig is a missing credential, detected before any network I/O.
	KindConfig Kind = iota
	// KindUpstream is a non-success HTTP status from the vendor.
	KindUpstream
	// KindTransport is a network or response-parsing failure.
	KindTransport
)

// ErrMissingAPIKey matches configuration errors via errors.Is.
var ErrMissingAPIKey = errors.New("api key not set")

// ProviderError wraps provider-related failures with context. Adapters never
// let it escape: it is rendered to text with Message and recorded as data.
type ProviderError struct {
	// Provider is the vendor display name (e.g. "OpenAI")
	Provider string

	// Op is the operation being performed (e.g. "ask")
	Op string

	// Kind classifies the failure
	Kind Kind

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing text recorded as the provider's answer.
func (e *ProviderError) Message() string {
	switch e.Kind {
	case KindUpstream:
		return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
	case KindTransport:
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	default:
		return e.Err.Error()
	}
}

// Is enables matching configuration errors against ErrMissingAPIKey.
func (e *ProviderError) Is(target error) bool {
	if target == ErrMissingAPIKey {
		return e.Kind == KindConfig
	}
	return errors.Is(e.Err, target)
}

// MissingKey reports an absent credential for the given environment key.
func MissingKey(provider, op, envKey string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Op:       op,
		Kind:     KindConfig,
		Err:      fmt.Errorf("%s is not set", envKey),
	}
}

// Upstream reports a non-success HTTP status from the vendor.
func Upstream(provider, op string, status int, body string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Op:       op,
		Kind:     KindUpstream,
		Err:      fmt.Errorf("%d %s", status, body),
	}
}

// Transport reports a network or parsing failure.
func Transport(provider, op string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Op:       op,
		Kind:     KindTransport,
		Err:      err,
	}
}

// IsKind reports whether err is a ProviderError of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Kind == kind
}
