package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"
	GeminiDefaultModel   = "gemini-2.0-flash"
)

// ErrNoResponseText is returned when a Gemini response carries neither a
// text field nor a candidate with text parts.
var ErrNoResponseText = errors.New("no response text found from Gemini")

// GeminiAdapter calls the Gemini generateContent REST endpoint.
type GeminiAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

// geminiResponse accepts both the raw REST shape (candidates) and the
// flattened shape some proxies return (text).
type geminiResponse struct {
	Text       string            `json:"text"`
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GeminiAdapter) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.model())
}

func (g *GeminiAdapter) model() string {
	if g.Model == "" {
		return GeminiDefaultModel
	}
	return g.Model
}

func (g *GeminiAdapter) baseURL() string {
	if g.BaseURL == "" {
		return geminiDefaultBaseURL
	}
	return strings.TrimRight(g.BaseURL, "/")
}

func (g *GeminiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL(), url.PathEscape(g.model()))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error.Message == "" {
			return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("gemini: API error: %s", errResp.Error.Message)
	}

	var genResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}

	return extractText(genResp)
}

// extractText prefers the flattened text field and otherwise joins the
// text parts of the first candidate.
func extractText(r geminiResponse) (string, error) {
	if r.Text != "" {
		return r.Text, nil
	}
	if len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return "", ErrNoResponseText
	}

	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	if b.Len() == 0 {
		return "", ErrNoResponseText
	}
	return b.String(), nil
}

// Available reports whether an API key is configured. The endpoint itself
// is not probed.
func (g *GeminiAdapter) Available(ctx context.Context) bool {
	return g.APIKey != ""
}
