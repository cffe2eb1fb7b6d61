package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/httpclient"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// Delivery headers.
const (
	HeaderEventType  = "X-Event-Type"
	HeaderDeliveryID = "X-Delivery-ID"
	HeaderSignature  = "X-Signature-256"
)

// Compile-time interface checks.
var (
	_ ports.ValidationNotifier = (*Notifier)(nil)
	_ ports.HealthChecker      = (*Notifier)(nil)
)

// Notifier POSTs status-change events to a single URL. When a secret is set,
// each body is signed with HMAC-SHA256 and the hex digest sent as
// "sha256=<digest>" in HeaderSignature.
type Notifier struct {
	client *httpclient.Client
	url    string
	secret []byte
	logger *slog.Logger
}

// NewNotifier creates a Notifier that delivers through client.
func NewNotifier(client *httpclient.Client, url, secret string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Notifier{
		client: client,
		url:    url,
		secret: []byte(secret),
		logger: logger,
	}
}

// NotifyStatusChanged delivers ev. Any 2xx answer counts as delivered.
func (n *Notifier) NotifyStatusChanged(ctx context.Context, ev validation.StatusChanged) error {
	body, err := json.Marshal(toPayload(ev))
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventType, EventStatusChanged)
	req.Header.Set(HeaderDeliveryID, ev.RunID)
	if len(n.secret) > 0 {
		req.Header.Set(HeaderSignature, "sha256="+Sign(n.secret, body))
	}

	resp, err := n.client.Do(ctx, req)
	if resp != nil {
		defer n.closeBody(ctx, resp)
	}
	if err != nil {
		// Retries exhausted on a retryable status still leave a response.
		if resp != nil {
			return translateHTTPError(resp)
		}
		return fmt.Errorf("delivering %s for %s:%s: %w", EventStatusChanged, ev.EntityType, ev.EntityID, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		n.logger.WarnContext(ctx, "webhook rejected delivery",
			slog.String("operation", "webhook.NotifyStatusChanged"),
			slog.Int("status", resp.StatusCode),
			slog.String("run_id", ev.RunID),
		)
		return translateHTTPError(resp)
	}

	return nil
}

// Name implements ports.HealthChecker.
func (n *Notifier) Name() string {
	return n.client.Name()
}

// HealthCheck reports the delivery path's health from the client's circuit
// breaker; no request is sent.
func (n *Notifier) HealthCheck(ctx context.Context) error {
	return n.client.HealthCheck(ctx)
}

func (n *Notifier) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		n.logger.WarnContext(ctx, "failed to close response body",
			slog.String("operation", "NotifyStatusChanged"),
			slog.Any("error", err),
		)
	}
}

// Sign returns the hex HMAC-SHA256 of body under secret. Receivers recompute
// it to authenticate deliveries.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
