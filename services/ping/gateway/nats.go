package gateway

import (
	"context"
	"fmt"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/ping"
)

// ClearedEvent is the fan-out payload for a ping removal
type ClearedEvent struct {
	ToUserID string `json:"to_user_id"`
	OrderID  string `json:"order_id"`
}

type pingGW struct {
	producer *natspkg.Producer
}

// NewPingGW creates the NATS gateway for ping lifecycle events
func NewPingGW(client *natspkg.Client) ping.PingGW {
	return &pingGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishPingCreated fans a new ping out to every service instance so the
// one holding the recipient's connection can deliver it
func (g *pingGW) PublishPingCreated(ctx context.Context, record *models.Ping) error {
	if err := g.producer.Publish(constants.SubjectPingCreated, record); err != nil {
		return fmt.Errorf("failed to publish ping created: %w", err)
	}
	return nil
}

// PublishPingCleared fans out a ping removal
func (g *pingGW) PublishPingCleared(ctx context.Context, toUserID, orderID string) error {
	event := ClearedEvent{ToUserID: toUserID, OrderID: orderID}
	if err := g.producer.Publish(constants.SubjectPingCleared, event); err != nil {
		return fmt.Errorf("failed to publish ping cleared: %w", err)
	}
	return nil
}
