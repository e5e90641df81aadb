package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/internal/utils"
	"github.com/guestnav/guestnav/services/position"
	"github.com/guestnav/guestnav/services/position/provider"
	"github.com/guestnav/guestnav/services/position/usecase"
)

// PositionHandler handles HTTP requests for position operations
type PositionHandler struct {
	positionUC position.PositionUC
}

// NewPositionHandler creates a new position HTTP handler
func NewPositionHandler(positionUC position.PositionUC) *PositionHandler {
	return &PositionHandler{
		positionUC: positionUC,
	}
}

// StartTracking begins sample emission for a courier
func (h *PositionHandler) StartTracking(c echo.Context) error {
	courierID := c.Param("id")
	if courierID == "" {
		return utils.BadRequestResponse(c, "courier_id is required")
	}

	if err := h.positionUC.StartTracking(c.Request().Context(), courierID); err != nil {
		logger.Error("Failed to start tracking",
			logger.String("courier_id", courierID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to start tracking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking started", map[string]string{"courier_id": courierID})
}

// StopTracking halts sample emission for a courier
func (h *PositionHandler) StopTracking(c echo.Context) error {
	courierID := c.Param("id")
	if courierID == "" {
		return utils.BadRequestResponse(c, "courier_id is required")
	}

	if err := h.positionUC.StopTracking(c.Request().Context(), courierID); err != nil {
		logger.Error("Failed to stop tracking",
			logger.String("courier_id", courierID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to stop tracking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking stopped", map[string]string{"courier_id": courierID})
}

// SubmitGPSReport accepts a device GPS report for a tracked courier
func (h *PositionHandler) SubmitGPSReport(c echo.Context) error {
	courierID := c.Param("id")
	if courierID == "" {
		return utils.BadRequestResponse(c, "courier_id is required")
	}

	var reading models.ProviderReading
	if err := c.Bind(&reading); err != nil {
		logger.Error("Failed to bind GPS report", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	reading.CourierID = courierID
	if reading.Timestamp.IsZero() {
		reading.Timestamp = models.Now()
	}

	err := h.positionUC.SubmitGPSReport(c.Request().Context(), &reading)
	switch {
	case errors.Is(err, usecase.ErrCourierNotTracked):
		return utils.ConflictResponse(c, "courier is not being tracked")
	case errors.Is(err, provider.ErrInvalidReading):
		return utils.BadRequestResponse(c, err.Error())
	case err != nil:
		logger.Error("Failed to submit GPS report",
			logger.String("courier_id", courierID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to submit GPS report")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Report accepted", nil)
}

// GetLastSample returns the latest normalized sample for a courier
func (h *PositionHandler) GetLastSample(c echo.Context) error {
	courierID := c.Param("id")
	if courierID == "" {
		return utils.BadRequestResponse(c, "courier_id is required")
	}

	sample, err := h.positionUC.GetLastSample(c.Request().Context(), courierID)
	if err != nil {
		return utils.NotFoundResponse(c, "no position available for courier")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position retrieved", sample)
}

// FindNearbyCouriers returns courier IDs near a point
func (h *PositionHandler) FindNearbyCouriers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}
	radius, err := strconv.ParseFloat(c.QueryParam("radius_meters"), 64)
	if err != nil || radius <= 0 {
		return utils.BadRequestResponse(c, "invalid radius_meters")
	}

	courierIDs, err := h.positionUC.GetNearbyCouriers(c.Request().Context(), lat, lng, radius)
	if err != nil {
		logger.Error("Failed to query nearby couriers", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to query nearby couriers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby couriers retrieved", map[string]interface{}{
		"courier_ids": courierIDs,
	})
}
