package ping

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_delivery.go -package=mocks github.com/guestnav/guestnav/services/ping NotificationDelivery

// NotificationDelivery pushes the order-ready notification to the
// recipient's device with audible and haptic feedback. Invoked exactly
// once per received, non-expired ping.
type NotificationDelivery interface {
	// Deliver returns false when the recipient has no connected device.
	Deliver(ctx context.Context, delivery *models.PingDelivery) bool
	// DeliverCleared tells the device a previously delivered ping is gone.
	DeliverCleared(ctx context.Context, toUserID, orderID string) bool
}
