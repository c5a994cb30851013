package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIAdapter talks to any OpenAI-compatible /v1/chat/completions
// endpoint: OpenAI itself, llama-server, vLLM and friends.
type OpenAIAdapter struct {
	client  oai.Client
	baseURL string
	model   string
	hasKey  bool
	probe   *http.Client
}

// NewOpenAIAdapter builds an adapter for model. An empty baseURL targets
// api.openai.com; an empty apiKey is allowed for local servers.
func NewOpenAIAdapter(apiKey, baseURL, model string, httpClient *http.Client) (*OpenAIAdapter, error) {
	if model == "" {
		return nil, fmt.Errorf("openai: model must not be empty")
	}
	if apiKey == "" && baseURL == "" {
		return nil, fmt.Errorf("openai: api key required for the hosted API")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	opts := []option.RequestOption{
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else {
		// The SDK refuses to send requests without a key.
		opts = append(opts, option.WithAPIKey("none"))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(baseURL, "/")+"/"))
	}

	return &OpenAIAdapter{
		client:  oai.NewClient(opts...),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		hasKey:  apiKey != "",
		probe:   &http.Client{Timeout: 2 * time.Second},
	}, nil
}

func (o *OpenAIAdapter) Name() string {
	return fmt.Sprintf("OpenAI-compatible (%s)", o.model)
}

func (o *OpenAIAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Available reports a configured key for the hosted API, and a healthy
// /health endpoint for self-hosted servers.
func (o *OpenAIAdapter) Available(ctx context.Context) bool {
	if o.baseURL == "" {
		return o.hasKey
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	root := strings.TrimSuffix(o.baseURL, "/v1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, root+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := o.probe.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
