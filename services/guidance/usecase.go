package guidance

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/guestnav/guestnav/services/guidance GuidanceUC

// GuidanceUC drives navigation sessions: it reacts to position samples by
// pushing recomputed guidance frames to the courier's device.
type GuidanceUC interface {
	// StartSession begins guiding a courier to an order target. An
	// existing session for the courier is replaced.
	StartSession(ctx context.Context, courierID, orderID string, target models.Target) (*models.NavigationSession, error)
	// StopSession ends the courier's active session.
	StopSession(ctx context.Context, courierID string) error
	// GetSession returns the courier's active session.
	GetSession(ctx context.Context, courierID string) (*models.NavigationSession, error)
	// GetRegion returns the initial map viewport for the courier's active
	// session, before any position sample has arrived.
	GetRegion(ctx context.Context, courierID string) (*models.MapRegion, error)

	// HandleSample recomputes and pushes guidance for a new sample.
	HandleSample(ctx context.Context, sample *models.PositionSample) error
	// HandleNoFix pushes a position-unknown frame to the courier.
	HandleNoFix(ctx context.Context, event *models.NoFixEvent) error
}
