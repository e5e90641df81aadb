package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Producer handles publishing JSON messages to NATS subjects
type Producer struct {
	conn *nats.Conn
}

// NewProducer creates a producer over an existing client connection
func NewProducer(client *Client) *Producer {
	return &Producer{conn: client.GetConn()}
}

// Publish marshals the message and sends it to the subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.conn.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
