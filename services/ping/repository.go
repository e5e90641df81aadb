package ping

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/guestnav/guestnav/services/ping PingRepo

// PingRepo stores ping records keyed by recipient and order. Storage TTL
// mirrors the logical TTL so expired records vanish on their own.
type PingRepo interface {
	StorePing(ctx context.Context, ping *models.Ping) error
	GetPing(ctx context.Context, toUserID, orderID string) (*models.Ping, error)
	DeletePing(ctx context.Context, toUserID, orderID string) error
}
