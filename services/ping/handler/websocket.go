package handler

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	wspkg "github.com/guestnav/guestnav/internal/pkg/websocket"
	"github.com/guestnav/guestnav/services/ping"
)

// WebSocketHandler owns the device channel for order-ready notifications
type WebSocketHandler struct {
	pingUC  ping.PingUC
	manager *wspkg.Manager
}

// NewWebSocketHandler creates the ping WebSocket handler
func NewWebSocketHandler(pingUC ping.PingUC, manager *wspkg.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		pingUC:  pingUC,
		manager: manager,
	}
}

// HandleConnection upgrades and serves one device connection
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

type subscribeRequest struct {
	OrderID string `json:"order_id"`
}

func (h *WebSocketHandler) serveClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer func() {
		h.manager.RemoveClient(client.UserID, conn)
		// Drop the slot so pings for a closed channel are not handled here.
		if err := h.pingUC.Unsubscribe(context.Background(), client.UserID); err != nil {
			logger.Warn("Failed to unsubscribe on disconnect",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}()

	logger.Info("Device connected to ping channel",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Info("Device disconnected from ping channel",
				logger.String("user_id", client.UserID))
			return nil
		}

		switch msg.Event {
		case constants.EventSubscribe:
			h.handleSubscribe(client, conn, msg.Data)
		case constants.EventUnsubscribe:
			if err := h.pingUC.Unsubscribe(context.Background(), client.UserID); err != nil {
				logger.Warn("Failed to unsubscribe", logger.Err(err))
			}
		case constants.EventPing:
			if err := h.manager.SendMessage(conn, constants.EventPong, nil); err != nil {
				return nil
			}
		default:
			_ = h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "unsupported event")
		}
	}
}

func (h *WebSocketHandler) handleSubscribe(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) {
	var req subscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.OrderID == "" {
		_ = h.manager.SendErrorMessage(conn, constants.ErrorValidationFailed, "order_id is required")
		return
	}

	// Subscribe may replay a stored ping synchronously, so acknowledge
	// first to keep event order sane on the client side.
	if err := h.manager.SendMessage(conn, constants.EventSubscribed, req); err != nil {
		return
	}

	if err := h.pingUC.Subscribe(context.Background(), client.UserID, req.OrderID); err != nil {
		logger.ErrorCtx(context.Background(), "Failed to subscribe to ping channel",
			logger.String("user_id", client.UserID),
			logger.String("order_id", req.OrderID),
			logger.Err(err))
		_ = h.manager.SendErrorMessage(conn, constants.ErrorInternalError, "subscription failed")
	}
}
