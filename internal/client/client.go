package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/questlog/pkg/models"
)

// Client talks to the questlog server
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the server at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type resourcesResponse struct {
	Resources []models.LearningResource `json:"resources"`
}

// DailyQuests fetches the quests of the day
func (c *Client) DailyQuests(ctx context.Context) ([]models.Quest, error) {
	var resp models.DailyQuestsResponse
	if err := c.do(ctx, http.MethodGet, "/api/quests/daily", &resp); err != nil {
		return nil, err
	}
	return resp.Quests, nil
}

// RegenerateQuests asks the server for a new quest list
func (c *Client) RegenerateQuests(ctx context.Context) ([]models.Quest, error) {
	var resp models.DailyQuestsResponse
	if err := c.do(ctx, http.MethodPost, "/api/quests/generate", &resp); err != nil {
		return nil, err
	}
	return resp.Quests, nil
}

// Resources fetches the learning resource catalog
func (c *Client) Resources(ctx context.Context) ([]models.LearningResource, error) {
	var resp resourcesResponse
	if err := c.do(ctx, http.MethodGet, "/api/resources", &resp); err != nil {
		return nil, err
	}
	return resp.Resources, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, e.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
