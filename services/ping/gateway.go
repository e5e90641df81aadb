package ping

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/guestnav/guestnav/services/ping PingGW

// PingGW fans ping lifecycle events out over NATS
type PingGW interface {
	PublishPingCreated(ctx context.Context, ping *models.Ping) error
	PublishPingCleared(ctx context.Context, toUserID, orderID string) error
}
