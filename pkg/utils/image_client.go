package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// GeneratedMedia is the usable result of an image-generation call: either a
// remote URL or a base64 data URI.
type GeneratedMedia struct {
	URL string
}

// ImageGenerationClient is the outbound boundary for image generation. Callers
// treat every error as recoverable and substitute a placeholder image.
type ImageGenerationClient interface {
	GenerateImage(ctx context.Context, model, apiKey, prompt string) (*GeneratedMedia, error)
}

const defaultGenerativeLanguageBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiImageClient talks to the generativelanguage REST API directly. The
// image-capable Gemini models require requesting both TEXT and IMAGE response
// modalities, which the pinned SDK version does not expose, so this client
// builds the request body itself. The base URL is injectable for tests.
type GeminiImageClient struct {
	baseURL string
	http    *http.Client
}

func NewGeminiImageClient(baseURL string) *GeminiImageClient {
	if baseURL == "" {
		baseURL = defaultGenerativeLanguageBaseURL
	}
	return &GeminiImageClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 90 * time.Second},
	}
}

type generateContentRequest struct {
	Contents         []restContent        `json:"contents"`
	GenerationConfig restGenerationConfig `json:"generationConfig"`
}

type restContent struct {
	Parts []restPart `json:"parts"`
}

type restPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *restInlineData `json:"inlineData,omitempty"`
	FileData   *restFileData   `json:"fileData,omitempty"`
}

type restInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type restFileData struct {
	MIMEType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

type restGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content restContent `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiImageClient) GenerateImage(ctx context.Context, model, apiKey, prompt string) (*GeneratedMedia, error) {
	if model == "" || apiKey == "" {
		return nil, fmt.Errorf("image model or api key missing")
	}

	body := generateContentRequest{
		Contents: []restContent{{Parts: []restPart{{Text: prompt}}}},
		GenerationConfig: restGenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(model), url.QueryEscape(apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image generation returned status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("image generation response decode: %w", err)
	}

	for _, cand := range parsed.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return &GeneratedMedia{URL: fmt.Sprintf("data:%s;base64,%s", mime, part.InlineData.Data)}, nil
			}
			if part.FileData != nil && part.FileData.FileURI != "" {
				return &GeneratedMedia{URL: part.FileData.FileURI}, nil
			}
		}
	}

	return nil, fmt.Errorf("image generation response contains no media")
}
