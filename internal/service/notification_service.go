package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/config"
	"github.com/spec-kit/bistro-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventPaymentSettled, n.handlePaymentSettled)
	n.dispatcher.Subscribe(events.EventUserPromoted, n.handleUserPromoted)
	n.dispatcher.Subscribe(events.EventMenuChanged, n.handleMenuChanged)
}

func (n *NotificationService) handlePaymentSettled(ctx context.Context, event events.Event) error {
	n.logger.Info("PaymentSettled", zap.String("payment_id", event.ID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleUserPromoted(ctx context.Context, event events.Event) error {
	n.logger.Info("UserPromoted", zap.String("user_id", event.ID))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleMenuChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("MenuChanged", zap.String("menu_item_id", event.ID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
