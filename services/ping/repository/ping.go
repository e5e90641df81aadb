package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/database"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/ping"
)

// ErrPingNotFound is returned when no record exists at the topic key
var ErrPingNotFound = errors.New("ping not found")

type pingRepo struct {
	redisClient *database.RedisClient
}

// NewPingRepository creates a Redis-backed ping store. The storage TTL is
// derived per record from its expiry so physical and logical expiry agree.
func NewPingRepository(redisClient *database.RedisClient) ping.PingRepo {
	return &pingRepo{
		redisClient: redisClient,
	}
}

// StorePing writes the record, overwriting any prior record for the same
// recipient and order
func (r *pingRepo) StorePing(ctx context.Context, record *models.Ping) error {
	key := fmt.Sprintf(constants.KeyOrderPing, record.ToUserID, record.OrderID)

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal ping: %w", err)
	}

	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("ping already expired")
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store ping: %w", err)
	}
	return nil
}

// GetPing reads the record for a recipient and order
func (r *pingRepo) GetPing(ctx context.Context, toUserID, orderID string) (*models.Ping, error) {
	key := fmt.Sprintf(constants.KeyOrderPing, toUserID, orderID)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPingNotFound
		}
		return nil, fmt.Errorf("failed to get ping: %w", err)
	}

	var record models.Ping
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ping: %w", err)
	}
	return &record, nil
}

// DeletePing removes the record for a recipient and order
func (r *pingRepo) DeletePing(ctx context.Context, toUserID, orderID string) error {
	key := fmt.Sprintf(constants.KeyOrderPing, toUserID, orderID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete ping: %w", err)
	}
	return nil
}
