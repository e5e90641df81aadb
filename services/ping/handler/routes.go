package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/pkg/models"
	natspkg "github.com/guestnav/guestnav/internal/pkg/nats"
	wspkg "github.com/guestnav/guestnav/internal/pkg/websocket"
	"github.com/guestnav/guestnav/services/ping"
	httpHandler "github.com/guestnav/guestnav/services/ping/handler/http"
)

// Handler combines the HTTP, WebSocket and NATS handlers for the ping
// service
type Handler struct {
	pingHTTP *httpHandler.PingHandler
	pingNATS *NATSHandler
	pingWS   *WebSocketHandler
	cfg      *models.Config
}

// NewHandler creates the combined ping service handler
func NewHandler(
	pingUC ping.PingUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		pingHTTP: httpHandler.NewPingHandler(pingUC),
		pingNATS: NewNATSHandler(pingUC, natsClient),
		pingWS:   NewWebSocketHandler(pingUC, wsManager),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	pings := e.Group("/pings")
	pings.POST("", h.pingHTTP.Publish)
	pings.DELETE("/:to_user_id/:order_id", h.pingHTTP.Clear)

	e.GET("/ws", h.pingWS.HandleConnection)
}

// InitNATSConsumers starts the ping event consumers
func (h *Handler) InitNATSConsumers() error {
	return h.pingNATS.InitConsumers()
}

// Stop shuts down NATS consumers
func (h *Handler) Stop() {
	h.pingNATS.Stop()
}
