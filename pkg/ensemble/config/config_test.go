package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "openai", cfg.Summarizer)
	assert.Equal(t, 0.3, cfg.Temperature)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Empty(t, cfg.StaticDir)
	assert.NotNil(t, cfg.Providers)
}

func TestOptions(t *testing.T) {
	cfg := New(
		WithProvider("OpenAI", Credentials{APIKey: "sk-test", Model: "gpt-4o"}),
		WithSummarizer("deepseek"),
		WithTemperature(0.5),
		WithTimeout(10*time.Second),
		WithListenAddr(":9999"),
		WithStaticDir("./public"),
	)

	assert.Equal(t, "sk-test", cfg.Credentials("openai").APIKey)
	assert.Equal(t, "gpt-4o", cfg.Credentials("OPENAI").Model)
	assert.Equal(t, "deepseek", cfg.Summarizer)
	assert.Equal(t, 0.5, cfg.Temperature)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "./public", cfg.StaticDir)
}

func TestCredentialsMissingProvider(t *testing.T) {
	cfg := New()
	assert.Equal(t, Credentials{}, cfg.Credentials("nope"))
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("DEEPSEEK_API_KEY", "sk-deepseek")
	t.Setenv("DEEPSEEK_BASE_URL", "http://localhost:1234")

	cfg := FromEnvironment("openai", "deepseek", "gemini")

	assert.Equal(t, "sk-openai", cfg.Credentials("openai").APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Credentials("openai").Model)
	assert.Equal(t, "sk-deepseek", cfg.Credentials("deepseek").APIKey)
	assert.Equal(t, "http://localhost:1234", cfg.Credentials("deepseek").BaseURL)
	assert.Empty(t, cfg.Credentials("gemini").APIKey)
}
