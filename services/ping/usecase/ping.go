package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/ping"
)

const (
	// deliverySound and deliveryHaptics direct the device feedback for an
	// order-ready notification.
	deliverySound = "order_ready"
)

var deliveryHaptics = []string{"notification_success"}

// PingChannelUC implements the ping notification channel
type PingChannelUC struct {
	cfg      *models.Config
	repo     ping.PingRepo
	gw       ping.PingGW
	delivery ping.NotificationDelivery
	registry *subscriptionRegistry
}

// NewPingUC creates the ping channel use case
func NewPingUC(
	cfg *models.Config,
	repo ping.PingRepo,
	gw ping.PingGW,
	delivery ping.NotificationDelivery,
) ping.PingUC {
	return &PingChannelUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		delivery: delivery,
		registry: newSubscriptionRegistry(),
	}
}

// Publish stores an order-ready ping and fans it out. A prior ping for
// the same recipient and order is overwritten, never duplicated.
func (uc *PingChannelUC) Publish(ctx context.Context, orderID, fromUserID, toUserID, message string) (*models.Ping, error) {
	if orderID == "" || toUserID == "" {
		return nil, fmt.Errorf("order id and recipient are required")
	}

	now := models.Now()
	record := &models.Ping{
		OrderID:    orderID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
		CreatedAt:  now,
		ExpiresAt:  now.Add(uc.ttl()),
		IsActive:   true,
	}

	if err := uc.repo.StorePing(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store ping: %w", err)
	}

	if err := uc.gw.PublishPingCreated(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to fan out ping: %w", err)
	}

	logger.InfoCtx(ctx, "Ping published",
		logger.String("order_id", orderID),
		logger.String("to_user_id", toUserID))
	return record, nil
}

// Clear removes a ping before its TTL elapses and notifies the device
func (uc *PingChannelUC) Clear(ctx context.Context, toUserID, orderID string) error {
	if err := uc.repo.DeletePing(ctx, toUserID, orderID); err != nil {
		return fmt.Errorf("failed to delete ping: %w", err)
	}

	if err := uc.gw.PublishPingCleared(ctx, toUserID, orderID); err != nil {
		return fmt.Errorf("failed to fan out ping clear: %w", err)
	}

	logger.InfoCtx(ctx, "Ping cleared",
		logger.String("order_id", orderID),
		logger.String("to_user_id", toUserID))
	return nil
}

// Subscribe installs the recipient's single listening slot and replays a
// stored, still-unexpired ping so a subscriber who arrived after the
// publish still gets notified.
func (uc *PingChannelUC) Subscribe(ctx context.Context, toUserID, orderID string) error {
	if toUserID == "" || orderID == "" {
		return fmt.Errorf("recipient and order id are required")
	}

	uc.registry.replace(toUserID, orderID)

	record, err := uc.repo.GetPing(ctx, toUserID, orderID)
	if err != nil {
		// Nothing stored for this order yet; the subscription stays armed.
		return nil
	}

	uc.deliver(ctx, record)
	return nil
}

// Unsubscribe releases the recipient's listening slot
func (uc *PingChannelUC) Unsubscribe(ctx context.Context, toUserID string) error {
	uc.registry.remove(toUserID)
	return nil
}

// HandlePingCreated delivers a fanned-out ping to a locally subscribed
// recipient. Unsubscribed recipients are skipped silently; the stored
// record still awaits them if they subscribe within the TTL.
func (uc *PingChannelUC) HandlePingCreated(ctx context.Context, record *models.Ping) error {
	if !uc.registry.listening(record.ToUserID, record.OrderID) {
		return nil
	}
	uc.deliver(ctx, record)
	return nil
}

// HandlePingCleared forwards a clear to the recipient's device
func (uc *PingChannelUC) HandlePingCleared(ctx context.Context, toUserID, orderID string) error {
	uc.delivery.DeliverCleared(ctx, toUserID, orderID)
	return nil
}

// deliver invokes notification delivery once for a received record,
// dropping records already past their TTL. Expiry here is the defensive
// receiver-side check; the publisher-side TTL is enforced by storage.
func (uc *PingChannelUC) deliver(ctx context.Context, record *models.Ping) {
	if record.Expired(models.Now()) {
		logger.Debug("Dropping expired ping",
			logger.String("order_id", record.OrderID),
			logger.String("to_user_id", record.ToUserID))
		return
	}

	delivered := uc.delivery.Deliver(ctx, &models.PingDelivery{
		Ping:    *record,
		Sound:   deliverySound,
		Haptics: deliveryHaptics,
	})
	if !delivered {
		logger.Debug("Ping not delivered, no device connected",
			logger.String("to_user_id", record.ToUserID))
	}
}

func (uc *PingChannelUC) ttl() time.Duration {
	return time.Duration(uc.cfg.Ping.TTLSec) * time.Second
}
