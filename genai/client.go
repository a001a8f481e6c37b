// Package genai is a thin client for the Gemini text-generation API.
// It exposes exactly one capability: prompt in, text out.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash-lite"

// summaryTemplate frames content for the weekly report's summary
// section.
const summaryTemplate = "You do not need to mention average wake-up time and average sleep quality, and I want to summarize it in one paragraph and you to tell me what I should focus on next. Please follow the scrapbox format using 「>」 in every line and write in English. The content is below:\n\n"

// questionTemplate frames content for English practice questions.
const questionTemplate = "Please create 3 questions in English that make sentences based on the following content. The content is below:\n\n"

// ClientConfig holds optional client settings.
type ClientConfig struct {
	// BaseURL overrides the API root, mainly for tests.
	BaseURL string
	// Model overrides the generation model.
	Model string
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a generation client. config may be nil for
// defaults.
func NewClient(apiKey string, config *ClientConfig) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   DefaultModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	if config != nil {
		if config.BaseURL != "" {
			c.baseURL = config.BaseURL
		}
		if config.Model != "" {
			c.model = config.Model
		}
		if config.HTTPClient != nil {
			c.httpClient = config.HTTPClient
		}
	}
	return c
}

// generateRequest is the generateContent request body.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the response we consume.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt as-is and returns the first candidate's
// text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation returned status %d", resp.StatusCode)
	}

	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation returned no candidates")
	}
	return data.Candidates[0].Content.Parts[0].Text, nil
}

// Summarize generates a weekly-report summary of the given content.
func (c *Client) Summarize(ctx context.Context, content string) (string, error) {
	return c.Generate(ctx, summaryTemplate+content)
}

// Question generates English practice questions from the given
// content.
func (c *Client) Question(ctx context.Context, content string) (string, error) {
	return c.Generate(ctx, questionTemplate+content)
}
