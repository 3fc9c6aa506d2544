package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub is run by the host: it accepts websocket peers on /ws, feeds their
// frames to OnMessage and relays broadcasts. Writes are serialized; the
// websocket library allows only one concurrent writer per connection.
type Hub struct {
	upgrader websocket.Upgrader
	conns    map[*websocket.Conn]bool
	mu       sync.Mutex

	// OnMessage is called from the reading goroutine of the peer that
	// sent the frame.
	OnMessage func(msg Message, from *websocket.Conn)
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]bool),
	}
}

// ListenAndServe blocks serving the share endpoint on the given port.
func (h *Hub) ListenAndServe(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("[hub] listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("share server: %w", err)
	}
	return nil
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[hub] upgrade failed: %v", err)
		return
	}
	h.add(conn)
	go h.readLoop(conn)
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	log.Printf("[hub] peer connected: %s", conn.RemoteAddr())
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	log.Printf("[hub] peer removed: %s", conn.RemoteAddr())
}

func (h *Hub) readLoop(conn *websocket.Conn) {
	defer conn.Close()
	defer h.remove(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("[hub] peer %s disconnected: %v", conn.RemoteAddr(), err)
			return
		}
		if h.OnMessage != nil {
			h.OnMessage(msg, conn)
		}
	}
}

// Broadcast sends msg to every connected peer except exclude (nil sends
// to everyone). Send errors only drop the one peer's frame; the read
// loop notices the dead connection.
func (h *Hub) Broadcast(msg Message, exclude *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if conn == exclude {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("[hub] send to %s failed: %v", conn.RemoteAddr(), err)
		}
	}
}
