package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/pkg/models"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	"github.com/guestnav/guestnav/services/position"
	httpHandler "github.com/guestnav/guestnav/services/position/handler/http"
)

// Handler combines the HTTP and NATS handlers for the position service
type Handler struct {
	positionHTTP *httpHandler.PositionHandler
	positionNATS *NATSHandler
	cfg          *models.Config
}

// NewHandler creates the combined position service handler
func NewHandler(positionUC position.PositionUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		positionHTTP: httpHandler.NewPositionHandler(positionUC),
		positionNATS: NewNATSHandler(positionUC, natsClient),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	couriers := e.Group("/couriers")
	couriers.POST("/:id/track", h.positionHTTP.StartTracking)
	couriers.DELETE("/:id/track", h.positionHTTP.StopTracking)
	couriers.POST("/:id/gps", h.positionHTTP.SubmitGPSReport)
	couriers.GET("/:id/position", h.positionHTTP.GetLastSample)
	couriers.GET("/nearby", h.positionHTTP.FindNearbyCouriers)

	venues := e.Group("/venues")
	venues.GET("", h.positionHTTP.ListVenues)
	venues.PUT("/:id", h.positionHTTP.UpsertVenue)
}

// InitNATSConsumers starts the venue feed consumers
func (h *Handler) InitNATSConsumers() error {
	return h.positionNATS.InitConsumers()
}

// Stop shuts down NATS consumers
func (h *Handler) Stop() {
	h.positionNATS.Stop()
}
