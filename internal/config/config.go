// Package config loads wordsmith configuration from defaults, an optional
// YAML file and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port int `yaml:"port"`

	GeminiAPIKey  string `yaml:"gemini_api_key"`
	GeminiModel   string `yaml:"gemini_model"`
	GeminiBaseURL string `yaml:"gemini_base_url"`

	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
	OpenAIModel   string `yaml:"openai_model"`

	AnyLLMProvider string `yaml:"anyllm_provider"`
	AnyLLMModel    string `yaml:"anyllm_model"`
	AnyLLMAPIKey   string `yaml:"anyllm_api_key"`

	DefaultModel    string        `yaml:"default_model"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Tracing   bool   `yaml:"tracing"`
}

func defaults() Config {
	return Config{
		Port:            8090,
		GeminiModel:     "gemini-2.0-flash",
		OpenAIModel:     "gpt-4o-mini",
		UpstreamTimeout: 60 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone and a missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load loads configuration from a YAML file (if path is non-empty),
// then applies environment variable overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("WORDSMITH_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid WORDSMITH_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	// The bare variable is what the hosted deployment exports; the
	// prefixed one wins when both are set.
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}

	strs := []struct {
		env string
		dst *string
	}{
		{"WORDSMITH_GEMINI_API_KEY", &cfg.GeminiAPIKey},
		{"WORDSMITH_GEMINI_MODEL", &cfg.GeminiModel},
		{"WORDSMITH_GEMINI_BASE_URL", &cfg.GeminiBaseURL},
		{"WORDSMITH_OPENAI_API_KEY", &cfg.OpenAIAPIKey},
		{"WORDSMITH_OPENAI_BASE_URL", &cfg.OpenAIBaseURL},
		{"WORDSMITH_OPENAI_MODEL", &cfg.OpenAIModel},
		{"WORDSMITH_ANYLLM_PROVIDER", &cfg.AnyLLMProvider},
		{"WORDSMITH_ANYLLM_MODEL", &cfg.AnyLLMModel},
		{"WORDSMITH_ANYLLM_API_KEY", &cfg.AnyLLMAPIKey},
		{"WORDSMITH_DEFAULT_MODEL", &cfg.DefaultModel},
		{"WORDSMITH_LOG_LEVEL", &cfg.LogLevel},
		{"WORDSMITH_LOG_FORMAT", &cfg.LogFormat},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}

	if v := os.Getenv("WORDSMITH_UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid WORDSMITH_UPSTREAM_TIMEOUT %q: %w", v, err)
		}
		cfg.UpstreamTimeout = d
	}
	if v := os.Getenv("WORDSMITH_TRACING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid WORDSMITH_TRACING %q: %w", v, err)
		}
		cfg.Tracing = b
	}

	return nil
}
