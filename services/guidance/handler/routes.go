package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/pkg/models"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	wspkg "github.com/guestnav/guestnav/internal/pkg/websocket"
	"github.com/guestnav/guestnav/services/guidance"
	httpHandler "github.com/guestnav/guestnav/services/guidance/handler/http"
)

// Handler combines the HTTP, WebSocket and NATS handlers for the
// guidance service
type Handler struct {
	sessionHTTP  *httpHandler.SessionHandler
	guidanceNATS *NATSHandler
	guidanceWS   *WebSocketHandler
	cfg          *models.Config
}

// NewHandler creates the combined guidance service handler
func NewHandler(
	guidanceUC guidance.GuidanceUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		sessionHTTP:  httpHandler.NewSessionHandler(guidanceUC),
		guidanceNATS: NewNATSHandler(guidanceUC, natsClient),
		guidanceWS:   NewWebSocketHandler(wsManager),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	sessions := e.Group("/sessions")
	sessions.POST("", h.sessionHTTP.StartSession)
	sessions.GET("/:courier_id", h.sessionHTTP.GetSession)
	sessions.GET("/:courier_id/region", h.sessionHTTP.GetRegion)
	sessions.DELETE("/:courier_id", h.sessionHTTP.StopSession)

	e.GET("/ws", h.guidanceWS.HandleConnection)
}

// InitNATSConsumers starts the position event consumers
func (h *Handler) InitNATSConsumers() error {
	return h.guidanceNATS.InitConsumers()
}

// Stop shuts down NATS consumers
func (h *Handler) Stop() {
	h.guidanceNATS.Stop()
}
