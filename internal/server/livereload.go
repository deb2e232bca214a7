package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadHub pushes reload notifications to connected browsers. The
// embedded page script opens /ws/reload and reloads on any message.
type ReloadHub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		upgrader: websocket.Upgrader{
			// Local dev only; the hub is never mounted in production.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the connection and parks it until the client goes
// away or a reload is broadcast.
func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload upgrade: %v", err)
		return
	}
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Drain control frames; an error means the browser is gone.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

// Broadcast tells every connected browser to reload.
func (h *ReloadHub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *ReloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	delete(h.clients, conn)
}
