package adapters

import (
	"bytes"
	"context"
	"net/http"

	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/features/custody/domain"

	"go.uber.org/zap"
)

// WebhookEventPublisher POSTs every event as JSON to a subscriber URL.
type WebhookEventPublisher struct {
	client *http.Client
	url    string
	logger *zap.Logger
}

// NewWebhookEventPublisher creates a new WebhookEventPublisher.
func NewWebhookEventPublisher(client *http.Client, url string) *WebhookEventPublisher {
	return &WebhookEventPublisher{
		client: client,
		url:    url,
		logger: logger.Get(),
	}
}

// Emit delivers event once. Non-2xx answers and transport errors are logged, not retried.
func (p *WebhookEventPublisher) Emit(ctx context.Context, event domain.Event) {
	env, data, err := encodeEvent(event)
	if err != nil {
		p.logger.Error("Failed to encode event", zap.String("type", event.EventType()), zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(data))
	if err != nil {
		p.logger.Error("Failed to create webhook request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", env.Type)
	req.Header.Set("X-Event-ID", env.ID)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Webhook delivery failed",
			zap.String("event_id", env.ID),
			zap.String("type", env.Type),
			zap.Error(err),
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Warn("Webhook rejected event",
			zap.String("event_id", env.ID),
			zap.String("type", env.Type),
			zap.Int("status_code", resp.StatusCode),
		)
	}
}
