package escalation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const webhookTimeout = 10 * time.Second

// WebhookDialer places calls through a telephony provider's webhook.
type WebhookDialer struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookDialer creates a dialer posting to the given telephony URL. An
// empty URL yields a dialer that only logs, for development setups without a
// telephony account.
func NewWebhookDialer(url string, logger *slog.Logger) *WebhookDialer {
	return &WebhookDialer{
		url:        url,
		httpClient: &http.Client{Timeout: webhookTimeout},
		logger:     logger,
	}
}

func (d *WebhookDialer) Dial(ctx context.Context, number, reason string) error {
	if d.url == "" {
		d.logger.Info("telephony not configured, skipping emergency call",
			slog.String("number", number),
			slog.String("reason", reason),
		)
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"to":     number,
		"reason": reason,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("telephony webhook returned %d", resp.StatusCode)
	}
	return nil
}

// WebhookSiren toggles a networked siren through its control endpoint.
type WebhookSiren struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookSiren creates a siren control for the given URL. An empty URL
// yields a log-only siren.
func NewWebhookSiren(url string, logger *slog.Logger) *WebhookSiren {
	return &WebhookSiren{
		url:        url,
		httpClient: &http.Client{Timeout: webhookTimeout},
		logger:     logger,
	}
}

func (s *WebhookSiren) Start(ctx context.Context) error {
	return s.send(ctx, "on")
}

func (s *WebhookSiren) Stop(ctx context.Context) error {
	return s.send(ctx, "off")
}

func (s *WebhookSiren) send(ctx context.Context, state string) error {
	if s.url == "" {
		s.logger.Info("siren not configured", slog.String("state", state))
		return nil
	}

	payload, err := json.Marshal(map[string]string{"state": state})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("siren webhook returned %d", resp.StatusCode)
	}
	return nil
}

var (
	_ Dialer = (*WebhookDialer)(nil)
	_ Siren  = (*WebhookSiren)(nil)
)
