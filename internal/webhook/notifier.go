// Package webhook delivers funding events to a configured HTTP endpoint with
// HMAC-SHA256 signed payloads, so clients can verify payload integrity and
// deduplicate by event ID.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ufund-io/ufund-v2/internal/events"
)

// Header names carried on every delivery
const (
	HeaderSignature = "X-Ufund-Signature"
	HeaderTimestamp = "X-Ufund-Timestamp"
	HeaderEventID   = "X-Ufund-Event-Id"
)

// maxResponseBody caps how much of an error response body is kept
const maxResponseBody = 4 << 10

// Config holds webhook delivery configuration
type Config struct {
	// URL is the endpoint events are delivered to
	URL string
	// Secret is the shared HMAC secret used to sign payloads
	Secret string
	// Timeout bounds each delivery attempt
	Timeout time.Duration
}

// Notifier delivers events to a single webhook endpoint. It implements
// events.Publisher so it can be fanned out alongside the message broker.
type Notifier struct {
	config Config
	client *http.Client
}

// NewNotifier creates a webhook notifier
func NewNotifier(cfg Config) *Notifier {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Notifier{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// PublishEvent delivers a single event. A non-2xx response is an error so the
// caller can log the failed delivery.
func (n *Notifier) PublishEvent(ctx context.Context, event *events.Event) error {
	payload, signature, timestamp, err := GenerateSignedPayload(n.config.Secret, event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.config.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSignature, signature)
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(timestamp, 10))
	req.Header.Set(HeaderEventID, event.ID)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		return fmt.Errorf("webhook endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// Close implements events.Publisher. The notifier holds no connections.
func (n *Notifier) Close() {}
