package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient wraps one dashboard connection. gorilla/websocket allows only one
// concurrent writer per connection, so every write goes through the mutex:
// broadcasts from request goroutines and the keepalive ping never interleave.
type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// Ping sends a keepalive frame, serialized against broadcasts.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// RealtimeHub fans dashboard events (new weight records, logged workouts,
// alerts) out to the owning user's connected clients.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.write(websocket.TextMessage, msg)
	}
}
