package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/guidance"
)

// GuidanceOrchestratorUC reacts to position events for couriers with an
// active navigation session and pushes recomputed frames to their device.
type GuidanceOrchestratorUC struct {
	cfg   *models.Config
	venue *models.VenueProfile
	repo  guidance.SessionRepo
	gw    guidance.GuidanceGW
}

// NewGuidanceUC creates the guidance orchestrator. The venue profile is
// required for viewport fallbacks, so a missing one is fatal.
func NewGuidanceUC(
	cfg *models.Config,
	repo guidance.SessionRepo,
	venueRepo guidance.VenueRepo,
	gw guidance.GuidanceGW,
) (guidance.GuidanceUC, error) {
	venue, err := venueRepo.GetVenueProfile(context.Background(), cfg.Venue.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue profile %s: %w", cfg.Venue.ID, err)
	}

	return &GuidanceOrchestratorUC{
		cfg:   cfg,
		venue: venue,
		repo:  repo,
		gw:    gw,
	}, nil
}

// StartSession begins guiding a courier toward an order target. Any
// previous session for the courier is replaced, never merged.
func (uc *GuidanceOrchestratorUC) StartSession(ctx context.Context, courierID, orderID string, target models.Target) (*models.NavigationSession, error) {
	if courierID == "" || orderID == "" {
		return nil, fmt.Errorf("courier id and order id are required")
	}

	session := &models.NavigationSession{
		SessionID: uuid.NewString(),
		CourierID: courierID,
		OrderID:   orderID,
		Target:    target,
		CreatedAt: models.Now(),
	}

	if err := uc.repo.StoreSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	logger.InfoCtx(ctx, "Navigation session started",
		logger.String("session_id", session.SessionID),
		logger.String("courier_id", courierID),
		logger.String("order_id", orderID))
	return session, nil
}

// StopSession ends the courier's active session
func (uc *GuidanceOrchestratorUC) StopSession(ctx context.Context, courierID string) error {
	session, err := uc.repo.GetSession(ctx, courierID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteSession(ctx, courierID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	uc.gw.PushSessionStopped(ctx, courierID, session.SessionID)

	logger.InfoCtx(ctx, "Navigation session stopped",
		logger.String("session_id", session.SessionID),
		logger.String("courier_id", courierID))
	return nil
}

// GetSession returns the courier's active session
func (uc *GuidanceOrchestratorUC) GetSession(ctx context.Context, courierID string) (*models.NavigationSession, error) {
	return uc.repo.GetSession(ctx, courierID)
}

// GetRegion returns the initial viewport for a courier's session, fitted
// around the target alone. Once samples flow, frames carry regions
// covering both endpoints.
func (uc *GuidanceOrchestratorUC) GetRegion(ctx context.Context, courierID string) (*models.MapRegion, error) {
	session, err := uc.repo.GetSession(ctx, courierID)
	if err != nil {
		return nil, err
	}

	region := FitRegion(
		[]models.Point{{Latitude: session.Target.Latitude, Longitude: session.Target.Longitude}},
		uc.venue.Anchor(),
		uc.venue.DefaultSpanDegrees,
	)
	return &region, nil
}

// HandleSample recomputes guidance for a fresh sample and pushes the
// frame. Couriers without a session are ignored. Arrival is terminal:
// the final frame is pushed and the session removed.
func (uc *GuidanceOrchestratorUC) HandleSample(ctx context.Context, sample *models.PositionSample) error {
	session, err := uc.repo.GetSession(ctx, sample.CourierID)
	if err != nil {
		if errors.Is(err, guidance.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	state := Calculate(sample, session.Target)
	frame := uc.buildFrame(session, state, Phase(state))
	frame.Region = FitRegion(
		[]models.Point{
			{Latitude: sample.Latitude, Longitude: sample.Longitude},
			{Latitude: session.Target.Latitude, Longitude: session.Target.Longitude},
		},
		uc.venue.Anchor(),
		uc.venue.DefaultSpanDegrees,
	)

	delivered := uc.gw.PushFrame(ctx, session.CourierID, frame)
	if !delivered {
		logger.Debug("Guidance frame not delivered, no device connected",
			logger.String("courier_id", session.CourierID))
	}

	if state.IsArrived {
		if err := uc.repo.DeleteSession(ctx, session.CourierID); err != nil {
			return fmt.Errorf("failed to end arrived session: %w", err)
		}
		logger.InfoCtx(ctx, "Courier arrived at target",
			logger.String("session_id", session.SessionID),
			logger.String("courier_id", session.CourierID),
			logger.Float64("distance_meters", state.DistanceMeters))
	}

	return nil
}

// HandleNoFix pushes a position-unknown frame. The device must blank its
// directions rather than keep rendering the last known state.
func (uc *GuidanceOrchestratorUC) HandleNoFix(ctx context.Context, event *models.NoFixEvent) error {
	session, err := uc.repo.GetSession(ctx, event.CourierID)
	if err != nil {
		if errors.Is(err, guidance.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	frame := uc.buildFrame(session, models.GuidanceState{}, models.PhasePositionUnknown)
	frame.Region = FitRegion(
		[]models.Point{{Latitude: session.Target.Latitude, Longitude: session.Target.Longitude}},
		uc.venue.Anchor(),
		uc.venue.DefaultSpanDegrees,
	)

	uc.gw.PushPositionUnknown(ctx, session.CourierID, frame)
	return nil
}

func (uc *GuidanceOrchestratorUC) buildFrame(session *models.NavigationSession, state models.GuidanceState, phase models.GuidancePhase) *models.GuidanceFrame {
	return &models.GuidanceFrame{
		SessionID: session.SessionID,
		CourierID: session.CourierID,
		OrderID:   session.OrderID,
		Label:     session.Target.Label,
		State:     state,
		Phase:     phase,
		Timestamp: models.Now(),
	}
}
