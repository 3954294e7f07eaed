// Package notify pushes reservation notices to connected clients over
// websockets. Delivery is best-effort: a user with no open socket simply
// sees the state change on their next fetch.
package notify

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 32
)

// Notice is the payload pushed to the affected user.
type Notice struct {
	Type             string `json:"type"`
	ReservationID    uint   `json:"reservation_id"`
	ServerID         uint   `json:"server_id"`
	Status           string `json:"status"`
	AIJudgmentReason string `json:"ai_judgment_reason,omitempty"`
}

// Notifier is the boundary the reservation service depends on.
type Notifier interface {
	Notify(userID uint, notice Notice)
}

// client owns one websocket connection. All writes go through send, drained
// by a single writer goroutine; the websocket write side permits only one
// concurrent writer.
type client struct {
	conn *websocket.Conn
	send chan Notice
}

type Hub struct {
	mu      sync.Mutex
	clients map[uint][]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint][]*client)}
}

func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	cl := &client{conn: conn, send: make(chan Notice, sendBuffer)}
	h.mu.Lock()
	h.clients[userID] = append(h.clients[userID], cl)
	h.mu.Unlock()
	go cl.writeLoop(h, userID)
}

func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(userID, conn)
}

// removeLocked drops the client for conn and closes its send channel, which
// ends the writer goroutine. Callers hold h.mu, so no Notify can race the
// close.
func (h *Hub) removeLocked(userID uint, conn *websocket.Conn) {
	clients := h.clients[userID]
	remaining := clients[:0]
	for _, cl := range clients {
		if cl.conn == conn {
			close(cl.send)
			continue
		}
		remaining = append(remaining, cl)
	}
	if len(remaining) == 0 {
		delete(h.clients, userID)
	} else {
		h.clients[userID] = remaining
	}
}

// Notify queues the notice for every open connection of the user. A client
// whose buffer is full is skipped rather than blocking the caller.
func (h *Hub) Notify(userID uint, notice Notice) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, cl := range h.clients[userID] {
		select {
		case cl.send <- notice:
		default:
			log.Printf("notify: dropping notice for slow client of user %d", userID)
		}
	}
}

func (cl *client) writeLoop(h *Hub, userID uint) {
	for notice := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteJSON(notice); err != nil {
			log.Printf("notify: push to user %d failed: %v", userID, err)
			h.Unregister(userID, cl.conn)
			cl.conn.Close()
			for range cl.send {
			}
			return
		}
	}
	cl.conn.Close()
}

// NoopNotifier is used in tests.
type NoopNotifier struct{}

func (NoopNotifier) Notify(userID uint, notice Notice) {}
