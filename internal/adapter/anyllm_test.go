package adapter

import (
	"strings"
	"testing"
)

func TestNewAnyLLMAdapterValidation(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		model    string
		wantErr  string
	}{
		{"empty provider", "", "m", "provider must not be empty"},
		{"empty model", "ollama", "", "model must not be empty"},
		{"unsupported provider", "watson", "m", `unsupported provider "watson"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnyLLMAdapter(tt.provider, tt.model, "")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestAnyLLMAdapterName(t *testing.T) {
	a := &AnyLLMAdapter{provider: "groq", model: "llama-3.3-70b"}
	if a.Name() != "groq (llama-3.3-70b)" {
		t.Errorf("got %q, want %q", a.Name(), "groq (llama-3.3-70b)")
	}
	if a.Provider() != "groq" {
		t.Errorf("provider: got %q, want %q", a.Provider(), "groq")
	}
}
