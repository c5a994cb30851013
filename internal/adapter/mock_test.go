package adapter

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestMockAdapterGenerateFix(t *testing.T) {
	m := &MockAdapter{}

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"capitalizes and terminates", `Correct this text: "hello world"`, `"Hello world."`},
		{"keeps punctuation", `Correct this text: "Is it ready?"`, `"Is it ready?"`},
		{"trims whitespace", `Correct this text: "  hi there  "`, `"Hi there."`},
		{"empty text", `Correct this text: ""`, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Generate(context.Background(), tt.prompt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockAdapterGenerateList(t *testing.T) {
	m := &MockAdapter{}

	got, err := m.Generate(context.Background(), `Rephrase this text in 3-5 different ways: "see you soon!"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "Here are 3 rephrased versions:\n1. In other words, see you soon.") {
		t.Errorf("unexpected rephrase output: %q", got)
	}

	got, err = m.Generate(context.Background(), "Generate 3-5 flirtatious replies to this message.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines := strings.Split(got, "\n"); len(lines) != 4 {
		t.Errorf("flirt lines: got %d, want 4", len(lines))
	}
}

func TestMockAdapterContextCancel(t *testing.T) {
	m := &MockAdapter{Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, "Correct this")
	if err == nil {
		t.Error("expected error on cancelled context, got nil")
	}
}

func TestMockAdapterAvailable(t *testing.T) {
	m := &MockAdapter{}
	if !m.Available(context.Background()) {
		t.Error("mock adapter should always be available")
	}
}

func TestMockAdapterName(t *testing.T) {
	m := &MockAdapter{}
	if m.Name() != "Mock" {
		t.Errorf("got %q, want %q", m.Name(), "Mock")
	}
}
