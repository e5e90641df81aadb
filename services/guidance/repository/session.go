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
	"github.com/guestnav/guestnav/services/guidance"
)

type sessionRepo struct {
	redisClient *database.RedisClient
	sessionTTL  time.Duration
}

// NewSessionRepository creates a Redis-backed session store. The TTL is a
// safety net against sessions orphaned by crashed devices; live sessions
// refresh it on every store.
func NewSessionRepository(redisClient *database.RedisClient, sessionTTL time.Duration) guidance.SessionRepo {
	return &sessionRepo{
		redisClient: redisClient,
		sessionTTL:  sessionTTL,
	}
}

// StoreSession writes the session, replacing any previous one for the courier
func (r *sessionRepo) StoreSession(ctx context.Context, session *models.NavigationSession) error {
	key := fmt.Sprintf(constants.KeyNavSession, session.CourierID)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, data, r.sessionTTL); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession reads the courier's active session
func (r *sessionRepo) GetSession(ctx context.Context, courierID string) (*models.NavigationSession, error) {
	key := fmt.Sprintf(constants.KeyNavSession, courierID)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, guidance.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.NavigationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes the courier's active session
func (r *sessionRepo) DeleteSession(ctx context.Context, courierID string) error {
	key := fmt.Sprintf(constants.KeyNavSession, courierID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
