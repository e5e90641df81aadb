package position

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/guestnav/guestnav/services/position PositionGW

// PositionGW publishes position events to NATS for downstream services
type PositionGW interface {
	PublishSample(ctx context.Context, sample *models.PositionSample) error
	PublishNoFix(ctx context.Context, event *models.NoFixEvent) error
}
