package handler

import (
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	wspkg "github.com/guestnav/guestnav/internal/pkg/websocket"
)

// WebSocketHandler owns the device channel for guidance frames
type WebSocketHandler struct {
	manager *wspkg.Manager
}

// NewWebSocketHandler creates the guidance WebSocket handler
func NewWebSocketHandler(manager *wspkg.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

// HandleConnection upgrades and serves one device connection. The
// connection stays registered until the device disconnects; frames are
// pushed from the NATS side, the read loop only services keepalives.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

func (h *WebSocketHandler) serveClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID, conn)

	logger.Info("Device connected to guidance channel",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			logger.Info("Device disconnected from guidance channel",
				logger.String("user_id", client.UserID))
			return nil
		}

		switch msg.Event {
		case constants.EventPing:
			if err := h.manager.SendMessage(conn, constants.EventPong, nil); err != nil {
				return nil
			}
		default:
			_ = h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "unsupported event")
		}
	}
}
