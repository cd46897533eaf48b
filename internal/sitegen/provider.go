package sitegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

var (
	// ErrUnsupportedProvider is returned for a provider name the generator does not know.
	ErrUnsupportedProvider = errors.New("unsupported provider")
	// ErrEmptyResponse is returned when a provider answers without any content.
	ErrEmptyResponse = errors.New("provider returned an empty response")
)

// Provider turns a prompt into page HTML using the caller's API key.
type Provider interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// OpenAIProvider calls the chat completions API.
type OpenAIProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOpenAIProvider builds an OpenAI provider. Empty values use the library defaults.
func NewOpenAIProvider(baseURL, model string, timeout time.Duration) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4o
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIProvider{baseURL: baseURL, model: model, httpClient: &http.Client{Timeout: timeout}}
}

// Complete sends prompt as a single user turn.
func (p *OpenAIProvider) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	cfg := openai.DefaultConfig(apiKey)
	if p.baseURL != "" {
		cfg.BaseURL = p.baseURL
	}
	cfg.HTTPClient = p.httpClient
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// GeminiProvider calls generateContent, trying each configured model in order.
type GeminiProvider struct {
	endpoint string
	models   []string
	timeout  time.Duration
}

// NewGeminiProvider builds a Gemini provider for the given model fallback list.
func NewGeminiProvider(endpoint string, models []string, timeout time.Duration) *GeminiProvider {
	if len(models) == 0 {
		models = []string{"gemini-1.5-flash", "gemini-pro"}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiProvider{endpoint: endpoint, models: models, timeout: timeout}
}

// Complete returns the first successful model answer, or the last model error.
func (p *GeminiProvider) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: p.timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: p.endpoint},
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	var lastErr error
	for _, model := range p.models {
		text, err := p.generate(ctx, client, model, prompt)
		if err != nil {
			lastErr = fmt.Errorf("gemini %s: %w", model, err)
			continue
		}
		return text, nil
	}
	return "", lastErr
}

func (p *GeminiProvider) generate(ctx context.Context, client *genai.Client, model, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
