package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/internal/utils"
	"github.com/guestnav/guestnav/services/guidance"
)

// SessionHandler handles HTTP requests for navigation sessions
type SessionHandler struct {
	guidanceUC guidance.GuidanceUC
}

// NewSessionHandler creates a new session HTTP handler
func NewSessionHandler(guidanceUC guidance.GuidanceUC) *SessionHandler {
	return &SessionHandler{
		guidanceUC: guidanceUC,
	}
}

type startSessionRequest struct {
	CourierID string        `json:"courier_id"`
	OrderID   string        `json:"order_id"`
	Target    models.Target `json:"target"`
}

// StartSession creates a navigation session for a courier
func (h *SessionHandler) StartSession(c echo.Context) error {
	var req startSessionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind session request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.CourierID == "" || req.OrderID == "" {
		return utils.BadRequestResponse(c, "courier_id and order_id are required")
	}

	session, err := h.guidanceUC.StartSession(c.Request().Context(), req.CourierID, req.OrderID, req.Target)
	if err != nil {
		logger.Error("Failed to start session",
			logger.String("courier_id", req.CourierID),
			logger.String("order_id", req.OrderID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to start session")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Session started", session)
}

// GetSession returns the courier's active session
func (h *SessionHandler) GetSession(c echo.Context) error {
	courierID := c.Param("courier_id")
	if courierID == "" {
		return utils.BadRequestResponse(c, "courier_id is required")
	}

	session, err := h.guidanceUC.GetSession(c.Request().Context(), courierID)
	if err != nil {
		if errors.Is(err, guidance.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "no active session for courier")
		}
		logger.Error("Failed to get session",
			logger.String("courier_id", courierID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved", session)
}

// GetRegion returns the initial map viewport for the courier's session
func (h *SessionHandler) GetRegion(c echo.Context) error {
	courierID := c.Param("courier_id")
	if courierID == "" {
		return utils.BadRequestResponse(c, "courier_id is required")
	}

	region, err := h.guidanceUC.GetRegion(c.Request().Context(), courierID)
	if err != nil {
		if errors.Is(err, guidance.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "no active session for courier")
		}
		logger.Error("Failed to compute region",
			logger.String("courier_id", courierID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to compute region")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Region computed", region)
}

// StopSession ends the courier's active session
func (h *SessionHandler) StopSession(c echo.Context) error {
	courierID := c.Param("courier_id")
	if courierID == "" {
		return utils.BadRequestResponse(c, "courier_id is required")
	}

	err := h.guidanceUC.StopSession(c.Request().Context(), courierID)
	if err != nil {
		if errors.Is(err, guidance.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "no active session for courier")
		}
		logger.Error("Failed to stop session",
			logger.String("courier_id", courierID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to stop session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session stopped", map[string]string{"courier_id": courierID})
}
