package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerationClient is the outbound boundary for all text-model calls. The
// model id and API key come from the cached admin settings, so they are passed
// per call rather than baked into the client.
type TextGenerationClient interface {
	// GenerateJSON runs one structured-output call with high-diversity
	// sampling (temperature 1.3, top-p 0.95) and a JSON response MIME type.
	GenerateJSON(ctx context.Context, model, apiKey, prompt string) (string, error)

	// GenerateText runs one plain-text call with default sampling.
	GenerateText(ctx context.Context, model, apiKey, prompt string) (string, error)
}

// GeminiTextClient implements TextGenerationClient on the Gemini API.
type GeminiTextClient struct {
	timeout time.Duration
}

func NewGeminiTextClient() *GeminiTextClient {
	return &GeminiTextClient{timeout: 60 * time.Second}
}

func (c *GeminiTextClient) GenerateJSON(ctx context.Context, model, apiKey, prompt string) (string, error) {
	return c.generate(ctx, model, apiKey, prompt, func(m *genai.GenerativeModel) {
		m.ResponseMIMEType = "application/json"
		m.SetTemperature(1.3)
		m.SetTopP(0.95)
	})
}

func (c *GeminiTextClient) GenerateText(ctx context.Context, model, apiKey, prompt string) (string, error) {
	return c.generate(ctx, model, apiKey, prompt, nil)
}

func (c *GeminiTextClient) generate(ctx context.Context, model, apiKey, prompt string, configure func(*genai.GenerativeModel)) (string, error) {
	if model == "" || apiKey == "" {
		return "", fmt.Errorf("%w: model or api key missing", ErrSettingsUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(model)
	if configure != nil {
		configure(m)
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return content, nil
}
