// internal/genai/client.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"

	completionTimeout = 90 * time.Second
	maxResponseBytes  = 4 << 20
)

// Client calls the Gemini generateContent endpoint. The service is treated as
// an opaque prompt-in/text-out function; structured output is requested
// opportunistically via responseMimeType but never assumed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a completion client. Empty model or baseURL fall back to
// the defaults.
func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: completionTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type contentPayload struct {
	Parts []partPayload `json:"parts"`
}

type partPayload struct {
	Text string `json:"text"`
}

type generateContentRequest struct {
	Contents          []contentPayload  `json:"contents"`
	SystemInstruction *contentPayload   `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []partPayload `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Complete issues exactly one generateContent request and blocks until the
// response arrives or the transport fails. It returns the first candidate's
// text, joining multi-part content with newlines.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := generateContentRequest{
		Contents:          []contentPayload{{Parts: []partPayload{{Text: userPrompt}}}},
		SystemInstruction: &contentPayload{Parts: []partPayload{{Text: systemPrompt}}},
		GenerationConfig:  &generationConfig{ResponseMIMEType: "application/json"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call completion service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned status %d", resp.StatusCode)
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(decoded.Candidates) == 0 {
		return "", fmt.Errorf("completion response has no candidates")
	}

	var texts []string
	for _, part := range decoded.Candidates[0].Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	if len(texts) == 0 {
		return "", fmt.Errorf("completion response has no text parts")
	}
	return strings.Join(texts, "\n"), nil
}
