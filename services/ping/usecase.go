package ping

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/guestnav/guestnav/services/ping PingUC

// PingUC is the order-ready notification channel: one-shot, addressed,
// time-bounded pings from an order fulfiller to a waiting customer.
type PingUC interface {
	// Publish stores an order-ready ping for the recipient, replacing any
	// prior ping for the same order, and fans it out for delivery.
	Publish(ctx context.Context, orderID, fromUserID, toUserID, message string) (*models.Ping, error)
	// Clear removes a ping before its TTL elapses.
	Clear(ctx context.Context, toUserID, orderID string) error

	// Subscribe registers the recipient's single listening slot for an
	// order and replays a still-unexpired stored ping immediately.
	Subscribe(ctx context.Context, toUserID, orderID string) error
	// Unsubscribe releases the recipient's listening slot.
	Unsubscribe(ctx context.Context, toUserID string) error

	// HandlePingCreated reacts to a fanned-out ping: if the recipient is
	// subscribed to its order and the ping is unexpired, it is delivered.
	HandlePingCreated(ctx context.Context, ping *models.Ping) error
	// HandlePingCleared tells the recipient's device the ping is gone.
	HandlePingCleared(ctx context.Context, toUserID, orderID string) error
}
