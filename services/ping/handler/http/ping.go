package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guestnav/guestnav/internal/utils"
	"github.com/guestnav/guestnav/services/ping"
)

// PingHandler exposes publish and clear over HTTP for staff tooling
type PingHandler struct {
	pingUC ping.PingUC
}

// NewPingHandler creates a new ping HTTP handler
func NewPingHandler(pingUC ping.PingUC) *PingHandler {
	return &PingHandler{pingUC: pingUC}
}

type publishRequest struct {
	OrderID    string `json:"order_id"`
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	Message    string `json:"message"`
}

// Publish handles POST /pings
func (h *PingHandler) Publish(c echo.Context) error {
	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	record, err := h.pingUC.Publish(c.Request().Context(), req.OrderID, req.FromUserID, req.ToUserID, req.Message)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ping published", record)
}

// Clear handles DELETE /pings/:to_user_id/:order_id. Clearing is
// idempotent; clearing an already expired or absent ping succeeds.
func (h *PingHandler) Clear(c echo.Context) error {
	toUserID := c.Param("to_user_id")
	orderID := c.Param("order_id")

	if err := h.pingUC.Clear(c.Request().Context(), toUserID, orderID); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to clear ping")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ping cleared", map[string]string{
		"order_id":   orderID,
		"to_user_id": toUserID,
	})
}
