package adapter

import (
	"context"
	"fmt"
	"strings"

	anyllmlib "github.com/mozilla-ai/any-llm-go"
	"github.com/mozilla-ai/any-llm-go/providers/anthropic"
	"github.com/mozilla-ai/any-llm-go/providers/deepseek"
	"github.com/mozilla-ai/any-llm-go/providers/gemini"
	"github.com/mozilla-ai/any-llm-go/providers/groq"
	"github.com/mozilla-ai/any-llm-go/providers/llamacpp"
	"github.com/mozilla-ai/any-llm-go/providers/llamafile"
	"github.com/mozilla-ai/any-llm-go/providers/mistral"
	"github.com/mozilla-ai/any-llm-go/providers/ollama"
	anyllmoai "github.com/mozilla-ai/any-llm-go/providers/openai"
)

// AnyLLMProviders lists the provider names accepted by NewAnyLLMAdapter.
var AnyLLMProviders = []string{
	"anthropic", "deepseek", "gemini", "groq", "llamacpp",
	"llamafile", "mistral", "ollama", "openai",
}

// AnyLLMAdapter routes generation through github.com/mozilla-ai/any-llm-go,
// which covers most hosted and local providers behind one API.
type AnyLLMAdapter struct {
	backend  anyllmlib.Provider
	provider string
	model    string
}

// NewAnyLLMAdapter creates an adapter for providerName/model. With an
// empty apiKey the provider falls back to its usual environment variable
// (ANTHROPIC_API_KEY, GEMINI_API_KEY, ...).
func NewAnyLLMAdapter(providerName, model, apiKey string) (*AnyLLMAdapter, error) {
	if providerName == "" {
		return nil, fmt.Errorf("anyllm: provider must not be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("anyllm: model must not be empty")
	}

	var opts []anyllmlib.Option
	if apiKey != "" {
		opts = append(opts, anyllmlib.WithAPIKey(apiKey))
	}

	name := strings.ToLower(providerName)
	backend, err := newAnyLLMBackend(name, opts...)
	if err != nil {
		return nil, fmt.Errorf("anyllm: create %q backend: %w", providerName, err)
	}

	return &AnyLLMAdapter{
		backend:  backend,
		provider: name,
		model:    model,
	}, nil
}

func newAnyLLMBackend(name string, opts ...anyllmlib.Option) (anyllmlib.Provider, error) {
	switch name {
	case "anthropic":
		return anthropic.New(opts...)
	case "deepseek":
		return deepseek.New(opts...)
	case "gemini":
		return gemini.New(opts...)
	case "groq":
		return groq.New(opts...)
	case "llamacpp":
		return llamacpp.New(opts...)
	case "llamafile":
		return llamafile.New(opts...)
	case "mistral":
		return mistral.New(opts...)
	case "ollama":
		return ollama.New(opts...)
	case "openai":
		return anyllmoai.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported provider %q; supported: %s", name, strings.Join(AnyLLMProviders, ", "))
	}
}

func (a *AnyLLMAdapter) Name() string {
	return fmt.Sprintf("%s (%s)", a.provider, a.model)
}

// Provider returns the lower-cased backend name.
func (a *AnyLLMAdapter) Provider() string { return a.provider }

func (a *AnyLLMAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.backend.Completion(ctx, anyllmlib.CompletionParams{
		Model: a.model,
		Messages: []anyllmlib.Message{
			{Role: anyllmlib.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("anyllm: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("anyllm: empty choices in response")
	}

	return resp.Choices[0].Message.ContentString(), nil
}

// Available is true once the backend was constructed. any-llm-go rejects
// hosted providers without credentials at construction time.
func (a *AnyLLMAdapter) Available(ctx context.Context) bool {
	return a.backend != nil
}
