package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/record-shop/internal/events"
	"github.com/spec-kit/record-shop/internal/notify"
)

// NotificationService bridges domain events to the real-time broadcaster and
// to subscriber mail.
type NotificationService struct {
	dispatcher  events.Dispatcher
	broadcaster *notify.Broadcaster
	subscribers *SubscriberService
	records     *RecordService
	logger      *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, broadcaster *notify.Broadcaster, subscribers *SubscriberService, records *RecordService, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		subscribers: subscribers,
		records:     records,
		logger:      logger,
	}
}

// RegisterHandlers subscribes to domain events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRecordCreated, n.handleRecordCreated)
	n.dispatcher.Subscribe(events.EventInventoryChanged, n.handleInventoryChanged)
	n.dispatcher.Subscribe(events.EventOrderPlaced, n.handleOrderPlaced)
}

func (n *NotificationService) handleRecordCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RecordCreatedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("RecordCreated", zap.Int64("record_id", payload.RecordID), zap.String("title", payload.Title))

	n.broadcaster.Publish(notify.TopicInventory, notify.Message{
		Message: fmt.Sprintf("New release: %s by %s", payload.Title, payload.Artist),
		Type:    notify.TypeInfo,
	})

	record, err := n.records.GetRecord(ctx, payload.RecordID)
	if err != nil {
		n.logger.Warn("record lookup for new release mail failed", zap.Int64("record_id", payload.RecordID), zap.Error(err))
		return nil
	}
	n.subscribers.NotifyNewRelease(ctx, record)
	return nil
}

func (n *NotificationService) handleInventoryChanged(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InventoryChangedPayload)
	if !ok {
		return nil
	}
	n.broadcaster.Publish(notify.TopicInventory, notify.Message{
		Message: fmt.Sprintf("Stock update: %s now %d", payload.Update.Title, payload.Update.Quantity),
		Type:    notify.TypeInfo,
	})
	return nil
}

func (n *NotificationService) handleOrderPlaced(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderPlacedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("OrderPlaced",
		zap.Int64("user_id", payload.UserID),
		zap.String("order_ref", payload.OrderRef),
		zap.Float64("total", payload.Total))
	return nil
}
