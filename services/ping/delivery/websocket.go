package delivery

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/models"
	wspkg "github.com/guestnav/guestnav/internal/pkg/websocket"
	"github.com/guestnav/guestnav/services/ping"
)

type websocketDelivery struct {
	wsManager *wspkg.Manager
}

// NewWebSocketDelivery creates the device-channel notification delivery.
// The sound and haptic directives ride in the payload; the device decides
// how to render them.
func NewWebSocketDelivery(wsManager *wspkg.Manager) ping.NotificationDelivery {
	return &websocketDelivery{
		wsManager: wsManager,
	}
}

// Deliver pushes the order-ready notification to the recipient's device
func (d *websocketDelivery) Deliver(ctx context.Context, payload *models.PingDelivery) bool {
	return d.wsManager.NotifyClient(payload.Ping.ToUserID, constants.EventOrderReady, payload)
}

// DeliverCleared tells the device a ping was removed
func (d *websocketDelivery) DeliverCleared(ctx context.Context, toUserID, orderID string) bool {
	return d.wsManager.NotifyClient(toUserID, constants.EventPingCleared, map[string]string{
		"order_id": orderID,
	})
}
