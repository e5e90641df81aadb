package gateway

import (
	"context"
	"fmt"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/position"
)

type positionGW struct {
	producer *natspkg.Producer
}

// NewPositionGW creates the NATS gateway for position events
func NewPositionGW(client *natspkg.Client) position.PositionGW {
	return &positionGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishSample publishes a normalized sample for downstream consumers
func (g *positionGW) PublishSample(ctx context.Context, sample *models.PositionSample) error {
	if err := g.producer.Publish(constants.SubjectPositionSample, sample); err != nil {
		return fmt.Errorf("failed to publish position sample: %w", err)
	}
	return nil
}

// PublishNoFix publishes a position-unknown event
func (g *positionGW) PublishNoFix(ctx context.Context, event *models.NoFixEvent) error {
	if err := g.producer.Publish(constants.SubjectPositionNoFix, event); err != nil {
		return fmt.Errorf("failed to publish no-fix event: %w", err)
	}
	return nil
}
