// Package ai talks to a chat-completions endpoint that rewrites a freeform
// utterance plus the current order lines into a revised structured item list.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/zengzengppp/Voice-order-generator/internal/order"
)

var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrMalformedResponse = errors.New("model reply does not contain an items list")
)

// UpstreamError reports a non-2xx answer from the completion endpoint. It is
// surfaced to the caller as-is and never retried here.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("completion endpoint returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("completion endpoint returned HTTP %d: %s", e.Status, e.Message)
}

type Client struct {
	HTTP   *http.Client
	URL    string
	APIKey string
	Model  string
}

func NewClient(url, apiKey, model string) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: 30 * time.Second},
		URL:    url,
		APIKey: apiKey,
		Model:  model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type upstreamErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Normalize sends the current items and the utterance to the model and
// returns the item list it replies with, verbatim. Filtering of unusable
// items is the caller's job. Low temperature and JSON mode keep the model on
// conservative, machine-parseable corrections.
func (c *Client) Normalize(ctx context.Context, current []order.Item, text string) ([]order.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	if current == nil {
		current = []order.Item{}
	}
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}

	payload := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(string(currentJSON), text)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
		Temperature:    0.3,
		MaxTokens:      1000,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var eb upstreamErrorBody
		_ = json.NewDecoder(res.Body).Decode(&eb)
		return nil, &UpstreamError{Status: res.StatusCode, Message: eb.Error.Message}
	}

	var cr chatResponse
	if err := json.NewDecoder(res.Body).Decode(&cr); err != nil {
		return nil, ErrMalformedResponse
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return nil, ErrMalformedResponse
	}

	// The message content is itself a JSON document holding {"items":[...]}.
	var reply struct {
		Items *[]order.Item `json:"items"`
	}
	if err := json.Unmarshal([]byte(cr.Choices[0].Message.Content), &reply); err != nil {
		return nil, ErrMalformedResponse
	}
	if reply.Items == nil {
		return nil, ErrMalformedResponse
	}
	return *reply.Items, nil
}
