package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	"github.com/guestnav/guestnav/services/guidance"
)

// NATSHandler consumes position events and feeds them to the orchestrator.
// Subscriptions are plain (no queue group): frames go out over the
// instance-local WebSocket manager, so every instance must see every
// sample and the one holding the courier's connection delivers.
type NATSHandler struct {
	guidanceUC guidance.GuidanceUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

type subscription struct {
	subject    string
	queueGroup string
	handler    natspkg.MessageHandler
}

// NewNATSHandler creates a new guidance NATS handler
func NewNATSHandler(guidanceUC guidance.GuidanceUC, client *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		guidanceUC: guidanceUC,
		natsClient: client,
	}
}

func (h *NATSHandler) subscriptions() []subscription {
	return []subscription{
		{constants.SubjectPositionSample, "", h.handlePositionSample},
		{constants.SubjectPositionNoFix, "", h.handleNoFix},
	}
}

// InitConsumers subscribes to the position sample and no-fix subjects
func (h *NATSHandler) InitConsumers() error {
	for _, s := range h.subscriptions() {
		consumer, err := natspkg.NewConsumer(h.natsClient, s.subject, s.queueGroup, s.handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", s.subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}

	logger.Info("Guidance NATS consumers initialized")
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

func (h *NATSHandler) handlePositionSample(msg []byte) error {
	var sample models.PositionSample
	if err := json.Unmarshal(msg, &sample); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to unmarshal position sample", logger.Err(err))
		return err
	}

	if err := h.guidanceUC.HandleSample(context.Background(), &sample); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to handle position sample",
			logger.String("courier_id", sample.CourierID),
			logger.Err(err))
		return err
	}
	return nil
}

func (h *NATSHandler) handleNoFix(msg []byte) error {
	var event models.NoFixEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to unmarshal no-fix event", logger.Err(err))
		return err
	}

	if err := h.guidanceUC.HandleNoFix(context.Background(), &event); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to handle no-fix event",
			logger.String("courier_id", event.CourierID),
			logger.Err(err))
		return err
	}
	return nil
}
