package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type modelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

type suggestRequest struct {
	Mode    string `json:"mode"`
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
	Style   string `json:"style,omitempty"`
	ModelID string `json:"model_id,omitempty"`
}

type suggestResponse struct {
	Result []string `json:"result"`
}

type result struct {
	Sample      string   `json:"sample"`
	Mode        string   `json:"mode"`
	Chars       int      `json:"chars"`
	Run         int      `json:"run"`
	WallMs      int64    `json:"wall_ms"`
	Suggestions []string `json:"suggestions,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// discoverModel returns the first model the server lists, which is its
// default.
func (c *apiClient) discoverModel(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/models", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("models endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var models []modelInfo
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return "", fmt.Errorf("decode models: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("no models available")
	}
	return models[0].ID, nil
}

func (c *apiClient) suggest(ctx context.Context, modelID string, sample Sample, run int) result {
	r := result{Sample: sample.Name, Mode: sample.Mode, Chars: len([]rune(sample.Text)), Run: run}

	payload, err := json.Marshal(suggestRequest{
		Mode:    sample.Mode,
		Text:    sample.Text,
		Context: sample.Context,
		Style:   sample.Style,
		ModelID: modelID,
	})
	if err != nil {
		r.Error = err.Error()
		return r
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/suggest", bytes.NewReader(payload))
	if err != nil {
		r.Error = err.Error()
		return r
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	r.WallMs = time.Since(start).Milliseconds()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	defer resp.Body.Close()

	var sr suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		r.Error = fmt.Sprintf("HTTP %d: decode: %v", resp.StatusCode, err)
		return r
	}
	if resp.StatusCode != http.StatusOK {
		r.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.Join(sr.Result, "; "))
		return r
	}

	r.Suggestions = sr.Result
	return r
}
