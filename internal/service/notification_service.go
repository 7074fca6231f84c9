package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/incident-dashboard/internal/config"
	"github.com/spec-kit/incident-dashboard/internal/events"
)

// NotificationService handles emitting notifications for domain events. The
// original dashboard surfaces a priority alert banner whenever open P1/P2
// incidents exist; server-side that becomes a webhook call plus a log line.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
	client     *http.Client
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventDatasetLoaded, n.handleDatasetLoaded)
	n.dispatcher.Subscribe(events.EventCriticalBacklog, n.handleCriticalBacklog)
}

func (n *NotificationService) handleDatasetLoaded(ctx context.Context, event events.Event) error {
	n.logger.Info("DatasetLoaded", zap.String("dataset_id", event.DatasetID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleCriticalBacklog(ctx context.Context, event events.Event) error {
	n.logger.Warn("CriticalBacklog", zap.String("dataset_id", event.DatasetID), zap.Any("payload", event.Payload))
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhook(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("webhook payload marshal failed", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		n.logger.Warn("webhook request build failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("webhook delivery failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Warn("webhook rejected", zap.Int("status", resp.StatusCode))
	}
}
