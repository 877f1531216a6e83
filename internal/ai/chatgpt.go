package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/questlog/pkg/models"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

const systemPrompt = "You are a life coach and programming tutor who designs fun, easy challenges. " +
	"Keep quests simple and encouraging, and mix programming practice with healthy daily habits. " +
	"Reply with valid JSON only."

const questPrompt = `Create 7 fun quests for beginner students. Include a mix of:
- Programming study quests (JavaScript, PHP, CSS)
- General life/productivity quests (exercise, reading, organizing, creativity, self care)

Quests must be:
- Simple and doable in 15-30 minutes
- Motivating and encouraging
- A mix of different categories
- Of varied difficulty, but mostly easy

Reply with a JSON object holding an array of quests. Every quest must have:
- title: short catchy title (max 50 characters)
- description: clear description of what to do (max 150 characters)
- points: point reward (10-50 depending on difficulty)
- difficulty: "easy", "medium" or "hard" (mostly easy)
- category: "javascript", "php", "css" or "general" (use "general" for non-programming quests)

Include at least 3 general quests and 4 programming quests.

Format: { "quests": [...] }`

// Config holds the connection settings for an OpenAI compatible API
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ChatGPT represents a client for the OpenAI chat completions API
type ChatGPT struct {
	apiKey    string
	apiURL    string
	model     string
	maxTokens int
	client    *http.Client
}

// New creates a new ChatGPT client
func New(cfg Config) (*ChatGPT, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is not configured")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ChatGPT{
		apiKey:    cfg.APIKey,
		apiURL:    strings.TrimRight(baseURL, "/") + "/chat/completions",
		model:     model,
		maxTokens: 2048,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Message represents a message in the ChatGPT conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat asks the model for a specific output encoding
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatRequest represents a request to the ChatGPT API
type ChatRequest struct {
	Model               string          `json:"model"`
	Messages            []Message       `json:"messages"`
	ResponseFormat      *ResponseFormat `json:"response_format,omitempty"`
	MaxCompletionTokens int             `json:"max_completion_tokens,omitempty"`
}

// ChatResponse represents a response from the ChatGPT API
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateQuests asks the model for today's quests. The drafts are returned
// unvalidated; a response without a quests array is an error.
func (c *ChatGPT) GenerateQuests(ctx context.Context) ([]models.QuestDraft, error) {
	content, err := c.complete(ctx, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: questPrompt},
	})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Quests *json.RawMessage `json:"quests"`
	}
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse quests: %w", err)
	}
	if envelope.Quests == nil {
		return nil, fmt.Errorf("response has no quests field")
	}

	var drafts []models.QuestDraft
	if err := json.Unmarshal(*envelope.Quests, &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse quests: %w", err)
	}
	return drafts, nil
}

func (c *ChatGPT) complete(ctx context.Context, messages []Message) (string, error) {
	request := ChatRequest{
		Model:               c.model,
		Messages:            messages,
		ResponseFormat:      &ResponseFormat{Type: "json_object"},
		MaxCompletionTokens: c.maxTokens,
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var response ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return content, nil
}
