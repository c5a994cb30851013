package adapter

import "context"

// LLMAdapter defines the contract for text-generation backends.
type LLMAdapter interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
	Available(ctx context.Context) bool
}

// ModelInfo is exposed via GET /api/models.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
