package guidance

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/guestnav/guestnav/services/guidance GuidanceGW

// GuidanceGW pushes guidance events to the courier's device channel
type GuidanceGW interface {
	// PushFrame delivers a guidance frame. Returns false when the courier
	// has no connected device; that is not an error.
	PushFrame(ctx context.Context, courierID string, frame *models.GuidanceFrame) bool
	// PushPositionUnknown tells the device to stop rendering directions.
	PushPositionUnknown(ctx context.Context, courierID string, frame *models.GuidanceFrame) bool
	// PushSessionStopped tells the device the session ended.
	PushSessionStopped(ctx context.Context, courierID, sessionID string) bool
}
