package workersai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrEmptyResult is returned when the API reports success without a result.
var ErrEmptyResult = errors.New("workersai: empty result")

// Client implements IWorkersAI over the REST API
type Client struct {
	accountID  string
	apiToken   string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a new Workers AI client
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		accountID:  cfg.AccountID,
		apiToken:   cfg.APIToken,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}

// Model returns the model id
func (c *Client) Model() string {
	return c.model
}

// Run invokes the configured model
func (c *Client) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("workersai: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/%s/ai/run/%s", c.baseURL, c.accountID, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("workersai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("workersai: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("workersai: failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("workersai: API error %d: %s", resp.StatusCode, string(raw))
		}
		return nil, fmt.Errorf("workersai: failed to parse response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		return nil, fmt.Errorf("workersai: API error %d: %s", resp.StatusCode, joinErrors(env.Errors))
	}
	if env.Result == nil {
		return nil, ErrEmptyResult
	}

	return env.Result, nil
}

func joinErrors(msgs []apiMessage) string {
	if len(msgs) == 0 {
		return "unknown error"
	}
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, fmt.Sprintf("%d %s", m.Code, m.Message))
	}
	return strings.Join(parts, "; ")
}
