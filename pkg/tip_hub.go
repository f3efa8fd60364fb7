package pkg

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vistara-apps/tipspark-818f-17568736/models"
)

// TipHub broadcasts recorded tips to the websocket sessions watching
// each creator (overlay widgets, dashboards).
type TipHub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool // creatorID -> set of conns
}

func NewTipHub() *TipHub {
	return &TipHub{
		conns: make(map[string]map[*websocket.Conn]bool),
	}
}

// Register adds a connection to a creator's listener set
func (h *TipHub) Register(creatorID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[creatorID] == nil {
		h.conns[creatorID] = make(map[*websocket.Conn]bool)
	}
	h.conns[creatorID][conn] = true
}

// Unregister removes and closes a connection
func (h *TipHub) Unregister(creatorID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(creatorID, conn)
}

// BroadcastTip sends the tip to every session watching its creator.
// Connections that fail to write are dropped.
func (h *TipHub) BroadcastTip(tip *models.Tip) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns[tip.CreatorID] {
		if err := conn.WriteJSON(tip); err != nil {
			log.Printf("WS write error for creator %s: %v", tip.CreatorID, err)
			h.drop(tip.CreatorID, conn)
		}
	}
}

// drop must be called with mu held
func (h *TipHub) drop(creatorID string, conn *websocket.Conn) {
	if set, ok := h.conns[creatorID]; ok {
		if set[conn] {
			delete(set, conn)
			conn.Close()
		}
		if len(set) == 0 {
			delete(h.conns, creatorID)
		}
	}
}
