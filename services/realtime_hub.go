package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID string // plan-store user id, not the auth account id
	Conn   *websocket.Conn
}

// AdaptationHub fans successful plan adaptations out to the user's open
// websocket connections.
type AdaptationHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewAdaptationHub() *AdaptationHub {
	return &AdaptationHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *AdaptationHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *AdaptationHub) Unregister(c *WSClient) {
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

func (h *AdaptationHub) BroadcastAdaptation(userID string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
