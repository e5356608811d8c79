package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds the configuration for the inference service client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Model      string
	RetryCount int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:8090",
		Timeout:    30 * time.Second,
		Model:      "gemini-2.0-flash",
		RetryCount: 2,
	}
}

// Client is the HTTP client for the hosted inference service.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a new inference service client.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// maxBackoff caps the retry backoff duration.
const maxBackoff = 10 * time.Second

// calculateBackoff returns 500ms, 1s, 2s, 4s... for successive attempts.
func calculateBackoff(attempt int) time.Duration {
	if attempt <= 0 {
		return 500 * time.Millisecond
	}
	d := 500 * time.Millisecond
	for i := 0; i < attempt && d < maxBackoff; i++ {
		d *= 2
	}
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// doRequestWithRetry executes an HTTP request with retry on transient errors.
// Client errors (4xx) are never retried.
func (c *Client) doRequestWithRetry(ctx context.Context, path string, body interface{}, result interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= c.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(calculateBackoff(attempt - 1)):
			}
		}

		lastErr = c.doRequest(ctx, path, body, result)
		if lastErr == nil {
			return nil
		}

		var se *statusError
		if errors.As(lastErr, &se) && se.code >= 400 && se.code < 500 {
			return lastErr
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}

	return fmt.Errorf("request to %s failed after %d attempts: %w", path, c.config.RetryCount+1, lastErr)
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("inference service returned %d: %s", e.code, e.body)
}

func (c *Client) doRequest(ctx context.Context, path string, body interface{}, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.Model != "" {
		req.Header.Set("X-Model", c.config.Model)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode, body: truncate(string(raw), 256)}
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
