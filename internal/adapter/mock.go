package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockAdapter returns canned, deterministic output with a configurable
// delay. Used for development and testing without a real backend. Its
// output deliberately carries the artefacts real models produce (quotes,
// lead-ins, emoji, numbering).
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	switch {
	case strings.HasPrefix(prompt, "Correct"):
		return `"` + sentence(quoted(prompt, `: "`)) + `"`, nil
	case strings.HasPrefix(prompt, "Rephrase"):
		text := strings.TrimRight(quoted(prompt, `: "`), ".!? ")
		return "Here are 3 rephrased versions:\n" +
			"1. In other words, " + text + ".\n" +
			"2. Put simply, " + text + ".\n" +
			"3. To say it another way, " + text + ".", nil
	default:
		return "Here are 3 flirtatious replies:\n" +
			"1. \"Funny you should ask, I was just thinking about you\" 😉\n" +
			"2. Not much, but my day just got a lot better\n" +
			"3. Lowkey waiting for you to ask me out 🔥", nil
	}
}

func (m *MockAdapter) Available(ctx context.Context) bool { return true }

// quoted returns the text between the first marker and the final quote.
func quoted(prompt, marker string) string {
	i := strings.Index(prompt, marker)
	if i < 0 {
		return strings.TrimSpace(prompt)
	}
	text := prompt[i+len(marker):]
	return strings.TrimSpace(strings.TrimSuffix(text, `"`))
}

// sentence capitalizes the first letter and ensures terminal punctuation.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		s = strings.ToUpper(s[:1]) + s[1:]
	}
	if !strings.ContainsAny(s[len(s)-1:], ".!?") {
		s += "."
	}
	return s
}
