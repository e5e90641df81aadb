package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/internal/utils"
	"github.com/guestnav/guestnav/services/position/usecase"
)

// ListVenues returns every stored venue profile
func (h *PositionHandler) ListVenues(c echo.Context) error {
	profiles, err := h.positionUC.ListVenueProfiles(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list venue profiles", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list venue profiles")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Venue profiles retrieved", profiles)
}

// UpsertVenue creates or replaces a venue profile
func (h *PositionHandler) UpsertVenue(c echo.Context) error {
	venueID := c.Param("id")
	if venueID == "" {
		return utils.BadRequestResponse(c, "venue_id is required")
	}

	var profile models.VenueProfile
	if err := c.Bind(&profile); err != nil {
		logger.Error("Failed to bind venue profile", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	profile.ID = venueID

	err := h.positionUC.UpsertVenueProfile(c.Request().Context(), &profile)
	switch {
	case errors.Is(err, usecase.ErrInvalidVenueProfile):
		return utils.BadRequestResponse(c, err.Error())
	case err != nil:
		logger.Error("Failed to upsert venue profile",
			logger.String("venue_id", venueID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to save venue profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Venue profile saved", profile)
}
