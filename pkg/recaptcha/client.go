package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client implements IRecaptcha
type Client struct {
	secret    string
	minScore  float64
	verifyURL string
	client    *http.Client
}

// New creates a new reCAPTCHA client
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		secret:    cfg.Secret,
		minScore:  cfg.MinScore,
		verifyURL: cfg.VerifyURL,
		client:    cfg.HTTPClient,
	}, nil
}

// Verify posts the token to siteverify. A token passes when Google reports
// success and the score is strictly above the minimum.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	res, err := c.siteVerify(ctx, token, remoteIP)
	if err != nil {
		return false, err
	}
	return res.Success && res.Score > c.minScore, nil
}

func (c *Client) siteVerify(ctx context.Context, token, remoteIP string) (*VerifyResponse, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("recaptcha: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("recaptcha: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("recaptcha: failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recaptcha: API error %d", resp.StatusCode)
	}

	var result VerifyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("recaptcha: failed to parse response: %w", err)
	}
	return &result, nil
}
