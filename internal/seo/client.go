package seo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/johns/seomark/internal/config"
)

// ErrNoAPIKey is returned before any network use when no API key resolves
// from the config. Callers surface it as a configuration notice.
var ErrNoAPIKey = errors.New("no API key configured")

// Generate calls the LLM with the document text and returns the raw
// completion content. Interpretation of that content is the caller's job.
func Generate(ctx context.Context, cfg config.Config, docText string) (string, error) {
	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return "", ErrNoAPIKey
	}

	reqBody := chatRequest{
		Model:       cfg.Model,
		Messages:    buildMessages(docText),
		Temperature: 0.7,
		MaxTokens:   500,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", statusError(resp.StatusCode, respBody)
	}

	return extractContent(respBody)
}

// statusError builds an error naming the HTTP status and any error message
// embedded in the response body.
func statusError(status int, body []byte) error {
	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != nil && resp.Error.Message != "" {
		return fmt.Errorf("API error (status %d): %s", status, resp.Error.Message)
	}
	return fmt.Errorf("API error (status %d): %s", status, strings.TrimSpace(string(body)))
}

func extractContent(body []byte) (string, error) {
	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.Error != nil {
		return "", fmt.Errorf("API error: %s", resp.Error.Message)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty choices in response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty completion content")
	}

	return content, nil
}
