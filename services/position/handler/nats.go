package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	"github.com/guestnav/guestnav/services/position"
)

// NATSHandler consumes the venue indoor positioning feed
type NATSHandler struct {
	positionUC position.PositionUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNATSHandler creates a new position NATS handler
func NewNATSHandler(positionUC position.PositionUC, client *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		positionUC: positionUC,
		natsClient: client,
	}
}

// InitConsumers subscribes to the venue positioning feed. The queue group
// spreads readings across position service instances.
func (h *NATSHandler) InitConsumers() error {
	consumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectIPSReading, constants.QueuePosition, h.handleIPSReading)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectIPSReading, err)
	}
	h.consumers = append(h.consumers, consumer)

	logger.Info("Position NATS consumers initialized",
		logger.String("subject", constants.SubjectIPSReading))
	return nil
}

// Stop unsubscribes all consumers
func (h *NATSHandler) Stop() {
	for _, consumer := range h.consumers {
		if err := consumer.Stop(); err != nil {
			logger.Warn("Failed to stop NATS consumer", logger.Err(err))
		}
	}
}

// handleIPSReading processes one indoor positioning reading
func (h *NATSHandler) handleIPSReading(msg []byte) error {
	var reading models.ProviderReading
	if err := json.Unmarshal(msg, &reading); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to unmarshal indoor reading", logger.Err(err))
		return err
	}

	if err := h.positionUC.SubmitIndoorReading(context.Background(), &reading); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to process indoor reading",
			logger.String("courier_id", reading.CourierID),
			logger.Err(err))
		return err
	}

	return nil
}
