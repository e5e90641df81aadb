package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	"github.com/guestnav/guestnav/services/ping"
	"github.com/guestnav/guestnav/services/ping/gateway"
)

// NATSHandler consumes fanned-out ping events. Subscriptions are plain
// (no queue group): every instance must see every event, because only the
// instance holding the recipient's device connection can deliver.
type NATSHandler struct {
	pingUC     ping.PingUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNATSHandler creates a new ping NATS handler
func NewNATSHandler(pingUC ping.PingUC, client *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		pingUC:     pingUC,
		natsClient: client,
	}
}

// InitConsumers subscribes to the ping lifecycle subjects
func (h *NATSHandler) InitConsumers() error {
	subjects := []struct {
		subject string
		handler natspkg.MessageHandler
	}{
		{constants.SubjectPingCreated, h.handlePingCreated},
		{constants.SubjectPingCleared, h.handlePingCleared},
	}

	for _, s := range subjects {
		consumer, err := natspkg.NewConsumer(h.natsClient, s.subject, "", s.handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", s.subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}

	logger.Info("Ping NATS consumers initialized")
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

func (h *NATSHandler) handlePingCreated(msg []byte) error {
	var record models.Ping
	if err := json.Unmarshal(msg, &record); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to unmarshal ping", logger.Err(err))
		return err
	}

	if err := h.pingUC.HandlePingCreated(context.Background(), &record); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to handle ping",
			logger.String("order_id", record.OrderID),
			logger.Err(err))
		return err
	}
	return nil
}

func (h *NATSHandler) handlePingCleared(msg []byte) error {
	var event gateway.ClearedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to unmarshal ping clear", logger.Err(err))
		return err
	}

	if err := h.pingUC.HandlePingCleared(context.Background(), event.ToUserID, event.OrderID); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to handle ping clear",
			logger.String("order_id", event.OrderID),
			logger.Err(err))
		return err
	}
	return nil
}
