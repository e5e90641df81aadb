package gateway

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/models"
	wspkg "github.com/guestnav/guestnav/internal/pkg/websocket"
	"github.com/guestnav/guestnav/services/guidance"
)

type guidanceGW struct {
	wsManager *wspkg.Manager
}

// NewGuidanceGW creates the WebSocket gateway pushing frames to devices
func NewGuidanceGW(wsManager *wspkg.Manager) guidance.GuidanceGW {
	return &guidanceGW{
		wsManager: wsManager,
	}
}

// PushFrame delivers a guidance frame to the courier's device
func (g *guidanceGW) PushFrame(ctx context.Context, courierID string, frame *models.GuidanceFrame) bool {
	return g.wsManager.NotifyClient(courierID, constants.EventGuidanceFrame, frame)
}

// PushPositionUnknown tells the device to blank its directions
func (g *guidanceGW) PushPositionUnknown(ctx context.Context, courierID string, frame *models.GuidanceFrame) bool {
	return g.wsManager.NotifyClient(courierID, constants.EventPositionUnknown, frame)
}

// PushSessionStopped tells the device the session ended
func (g *guidanceGW) PushSessionStopped(ctx context.Context, courierID, sessionID string) bool {
	return g.wsManager.NotifyClient(courierID, constants.EventSessionStopped, map[string]string{
		"session_id": sessionID,
	})
}
