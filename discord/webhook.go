package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultSendTimeout = 30 * time.Second

// Client posts messages to a Discord-compatible webhook URL.
type Client struct {
	URL        string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient creates a webhook client with a bounded request timeout.
func NewClient(webhookURL string) *Client {
	return &Client{
		URL:        webhookURL,
		UserAgent:  "sheetwatch/dev",
		HTTPClient: &http.Client{Timeout: defaultSendTimeout},
	}
}

// Send delivers one message. Any non-2xx response is an error carrying the
// status and a snippet of the response body.
func (c *Client) Send(msg WebhookMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequest("POST", c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if ua := strings.TrimSpace(c.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("webhook returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}
