package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/triadhq/triad/pkg/ensemble/chat"
	"github.com/triadhq/triad/pkg/ensemble/config"
	aierrors "github.com/triadhq/triad/pkg/ensemble/errors"
)

// vendorSpec is the static mapping from an identity to its endpoint,
// credential key and default model.
type vendorSpec struct {
	id      Identity
	display string
	envKey  string
	baseURL string
	model   string
}

// vendors is the fixed vendor table. Every vendor speaks the
// chat-completions wire; Gemini is reached through its OpenAI-compatible
// endpoint.
var vendors = map[Identity]vendorSpec{
	OpenAI: {
		id:      OpenAI,
		display: "OpenAI",
		envKey:  "OPENAI_API_KEY",
		baseURL: "https://api.openai.com/v1/chat/completions",
		model:   "gpt-4o-mini",
	},
	DeepSeek: {
		id:      DeepSeek,
		display: "DeepSeek",
		envKey:  "DEEPSEEK_API_KEY",
		baseURL: "https://api.deepseek.com/chat/completions",
		model:   "deepseek-chat",
	},
	Gemini: {
		id:      Gemini,
		display: "Gemini",
		envKey:  "GEMINI_API_KEY",
		baseURL: "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions",
		model:   "gemini-2.0-flash",
	},
}

// openaiCompat is the adapter for any vendor speaking the chat-completions
// wire shape: one POST with {model, messages, temperature}, bearer auth,
// text extracted from choices[0].message.content.
type openaiCompat struct {
	spec        vendorSpec
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	httpc       *http.Client
}

func newOpenAICompat(spec vendorSpec, creds config.Credentials, temperature float64, timeout time.Duration) *openaiCompat {
	model := creds.Model
	if model == "" {
		model = spec.model
	}
	baseURL := creds.BaseURL
	if baseURL == "" {
		baseURL = spec.baseURL
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &openaiCompat{
		spec:        spec,
		apiKey:      creds.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: temperature,
		httpc:       &http.Client{Timeout: timeout},
	}
}

// Identity returns the provider's enumeration identity.
func (p *openaiCompat) Identity() Identity {
	return p.spec.id
}

// Model returns the model used when no override is given.
func (p *openaiCompat) Model() string {
	return p.model
}

// Configured reports whether a credential is present.
func (p *openaiCompat) Configured() bool {
	return p.apiKey != ""
}

type wireRequest struct {
	Model       string         `json:"model"`
	Messages    []chat.Message `json:"messages"`
	Temperature float64        `json:"temperature"`
}

type wireResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ask issues one outbound call and normalizes the outcome. A missing
// credential fails fast without network I/O.
func (p *openaiCompat) Ask(ctx context.Context, messages []chat.Message, modelOverride string) Result {
	const op = "ask"

	if p.apiKey == "" {
		return Result{Error: aierrors.MissingKey(p.spec.display, op, p.spec.envKey).Message()}
	}

	model := p.model
	if modelOverride != "" {
		model = modelOverride
	}

	body, err := json.Marshal(wireRequest{
		Model:       model,
		Messages:    messages,
		Temperature: p.temperature,
	})
	if err != nil {
		return Result{Error: aierrors.Transport(p.spec.display, op, err).Message()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return Result{Error: aierrors.Transport(p.spec.display, op, err).Message()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpc.Do(req)
	if err != nil {
		return Result{Error: aierrors.Transport(p.spec.display, op, err).Message()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Error: aierrors.Transport(p.spec.display, op, err).Message()}
	}

	if resp.StatusCode != http.StatusOK {
		return Result{Error: aierrors.Upstream(p.spec.display, op, resp.StatusCode, string(raw)).Message()}
	}

	var parsed wireResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{Error: aierrors.Transport(p.spec.display, op, err).Message()}
	}

	// An empty completion is a valid answer, not an error.
	if len(parsed.Choices) == 0 {
		return Result{Content: ""}
	}
	return Result{Content: strings.TrimSpace(parsed.Choices[0].Message.Content)}
}
