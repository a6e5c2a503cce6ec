package system

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub fans events out to every connected page shell so open tabs can refresh
// their menus and dashboards when server-side state changes.
type Hub struct {
	mu     sync.Mutex
	conns  map[*websocket.Conn]bool
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		conns:  make(map[*websocket.Conn]bool),
		logger: logger,
	}
}

func (h *Hub) register(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = true
}

func (h *Hub) unregister(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// Broadcast sends {event, payload} to every client. Dead connections are
// dropped on write failure.
func (h *Hub) Broadcast(event string, payload interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"payload": payload,
	})
	if err != nil {
		h.logger.Warn("broadcast marshal failed", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(h.conns, c)
		}
	}
}
