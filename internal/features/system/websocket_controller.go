package system

import (
	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type WebSocketController struct {
	Hub    *Hub
	Logger *zap.Logger
}

func NewWebSocketController(hub *Hub, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{Hub: hub, Logger: logger}
}

// HandleWebSocket keeps the connection registered for broadcasts until the
// client goes away. Inbound messages are ignored; the channel is push-only.
func (h *WebSocketController) HandleWebSocket(c *websocket.Conn) {
	h.Hub.register(c)
	defer func() {
		h.Hub.unregister(c)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
