package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bonos-estetica/voucher-service/internal/events"
)

// NotificationService logs voucher lifecycle events as they are published.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventVoucherIssued, n.handleVoucherIssued)
	n.dispatcher.Subscribe(events.EventVoucherApplied, n.handleVoucherApplied)
	n.dispatcher.Subscribe(events.EventVoucherReverted, n.handleVoucherReverted)
}

func (n *NotificationService) handleVoucherIssued(_ context.Context, event events.Event) error {
	n.logger.Info("VoucherIssued",
		zap.Int64("bono_id", event.VoucherID),
		zap.Int64("usuario_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleVoucherApplied(_ context.Context, event events.Event) error {
	n.logger.Info("VoucherApplied",
		zap.Int64("bono_id", event.VoucherID),
		zap.Int64("usuario_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleVoucherReverted(_ context.Context, event events.Event) error {
	n.logger.Info("VoucherReverted",
		zap.Int64("bono_id", event.VoucherID),
		zap.Int64("usuario_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}
