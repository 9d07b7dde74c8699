// Package config provides explicit configuration for the ensemble service.
// It is constructed once at startup and handed to the provider registry and
// orchestrator; adapters never read the environment themselves.
package config

import (
	"os"
	"strings"
	"time"
)

// Credentials holds the per-vendor settings resolved at startup.
type Credentials struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Config is the explicit configuration value for one service process.
type Config struct {
	// Providers maps a provider name to its credentials. Missing entries
	// leave the provider registered but unconfigured.
	Providers map[string]Credentials

	// Summarizer names the default provider used for answer synthesis.
	Summarizer string

	// Temperature biases providers toward reproducible answers.
	Temperature float64

	// Timeout bounds each outbound provider call.
	Timeout time.Duration

	// ListenAddr is the HTTP listen address.
	ListenAddr string

	// StaticDir optionally serves a bundled web UI when non-empty.
	StaticDir string
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithProvider sets the credentials for one provider name.
func WithProvider(name string, creds Credentials) Option {
	return func(c *Config) {
		c.Providers[strings.ToLower(name)] = creds
	}
}

// WithSummarizer sets the default summarizer provider.
func WithSummarizer(name string) Option {
	return func(c *Config) {
		c.Summarizer = name
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithListenAddr sets the HTTP listen address.
func WithListenAddr(addr string) Option {
	return func(c *Config) {
		c.ListenAddr = addr
	}
}

// WithStaticDir sets the directory served at the HTTP root.
func WithStaticDir(dir string) Option {
	return func(c *Config) {
		c.StaticDir = dir
	}
}

// New creates a configuration with defaults applied.
func New(options ...Option) Config {
	config := Config{
		Providers:   make(map[string]Credentials),
		Summarizer:  "openai",
		Temperature: 0.3,
		Timeout:     60 * time.Second,
		ListenAddr:  ":8080",
	}

	for _, option := range options {
		option(&config)
	}

	return config
}

// Credentials returns the settings for a provider name, or the zero value
// when none were configured.
func (c Config) Credentials(name string) Credentials {
	return c.Providers[strings.ToLower(name)]
}

// FromEnvironment loads per-provider settings from environment variables of
// the form <NAME>_API_KEY, <NAME>_MODEL and <NAME>_BASE_URL.
func FromEnvironment(names ...string) Config {
	options := make([]Option, 0, len(names))
	for _, name := range names {
		prefix := strings.ToUpper(name) + "_"
		options = append(options, WithProvider(name, Credentials{
			APIKey:  os.Getenv(prefix + "API_KEY"),
			Model:   os.Getenv(prefix + "MODEL"),
			BaseURL: os.Getenv(prefix + "BASE_URL"),
		}))
	}
	return New(options...)
}
