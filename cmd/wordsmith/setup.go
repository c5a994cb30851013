package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mlorentedev/wordsmith/internal/adapter"
	"github.com/mlorentedev/wordsmith/internal/config"
)

func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}

// buildAdapters returns the configured adapters keyed by model ID, the model
// list with the default first, and the default model ID.
func buildAdapters(cfg config.Config, useMock bool) (map[string]adapter.LLMAdapter, []adapter.ModelInfo, string, error) {
	adapters := make(map[string]adapter.LLMAdapter)
	var models []adapter.ModelInfo

	if useMock {
		adapters["mock"] = &adapter.MockAdapter{Delay: 500 * time.Millisecond}
		models = append(models, adapter.ModelInfo{ID: "mock", Name: "Mock (dev)", Provider: "mock"})
		slog.Info("mode: mock adapter enabled")
		return adapters, models, "mock", nil
	}

	client := &http.Client{Timeout: cfg.UpstreamTimeout}

	// 1. Gemini (default backend)
	if cfg.GeminiAPIKey != "" {
		g := &adapter.GeminiAdapter{
			BaseURL: cfg.GeminiBaseURL,
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Client:  client,
		}
		adapters["gemini"] = g
		models = append(models, adapter.ModelInfo{ID: "gemini", Name: g.Name(), Provider: "gemini"})
		slog.Info("mode: gemini enabled", "model", cfg.GeminiModel)
	}

	// 2. OpenAI-compatible (hosted or self-hosted)
	if cfg.OpenAIAPIKey != "" || cfg.OpenAIBaseURL != "" {
		o, err := adapter.NewOpenAIAdapter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, client)
		if err != nil {
			return nil, nil, "", err
		}
		adapters["openai"] = o
		models = append(models, adapter.ModelInfo{ID: "openai", Name: o.Name(), Provider: "openai"})
		slog.Info("mode: openai-compatible enabled", "model", cfg.OpenAIModel, "base_url", cfg.OpenAIBaseURL)
	}

	// 3. any-llm-go provider
	if cfg.AnyLLMProvider != "" {
		a, err := adapter.NewAnyLLMAdapter(cfg.AnyLLMProvider, cfg.AnyLLMModel, cfg.AnyLLMAPIKey)
		if err != nil {
			return nil, nil, "", err
		}
		adapters["anyllm"] = a
		models = append(models, adapter.ModelInfo{ID: "anyllm", Name: a.Name(), Provider: a.Provider()})
		slog.Info("mode: any-llm enabled", "provider", a.Provider(), "model", cfg.AnyLLMModel)
	}

	if len(models) == 0 {
		return nil, nil, "", fmt.Errorf("no backend configured: set GEMINI_API_KEY, an OpenAI endpoint, an any-llm provider, or run with -mock")
	}

	defaultModel := cfg.DefaultModel
	if defaultModel == "" {
		defaultModel = models[0].ID
	}
	if _, ok := adapters[defaultModel]; !ok {
		return nil, nil, "", fmt.Errorf("default_model %q is not configured", defaultModel)
	}

	return adapters, defaultFirst(models, defaultModel), defaultModel, nil
}

func defaultFirst(models []adapter.ModelInfo, id string) []adapter.ModelInfo {
	out := make([]adapter.ModelInfo, 0, len(models))
	for _, m := range models {
		if m.ID == id {
			out = append(out, m)
		}
	}
	for _, m := range models {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
