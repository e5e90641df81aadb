package nats

import (
	"fmt"

	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// MessageHandler processes the payload of a NATS message
type MessageHandler func(message []byte) error

// Consumer wraps a subscription whose handler failures are logged, not fatal
type Consumer struct {
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject, optionally within a queue group
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	msgHandler := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = client.QueueSubscribe(subject, queueGroup, msgHandler)
	} else {
		sub, err = client.Subscribe(subject, msgHandler)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	return &Consumer{subscription: sub}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
