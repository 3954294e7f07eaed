package notify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, hub *Hub, userID uint) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(userID, ws)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Registration happens in the server handler after the handshake.
	for i := 0; i < 100; i++ {
		hub.mu.Lock()
		n := len(hub.clients[userID])
		hub.mu.Unlock()
		if n > 0 {
			return conn
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("connection never registered")
	return nil
}

// Two displacements on different servers can notify the same user from
// parallel request goroutines; all writes must funnel through the single
// writer loop.
func TestNotifyConcurrent(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, 7)

	// Stays under the send buffer so no notice is dropped even if the writer
	// goroutine never gets scheduled during the burst.
	const senders = 16
	var wg sync.WaitGroup
	wg.Add(senders)
	for i := 0; i < senders; i++ {
		go func(i int) {
			defer wg.Done()
			hub.Notify(7, Notice{
				Type:          "reservation.pending_rejection",
				ReservationID: uint(i + 1),
				Status:        "pending_rejection",
			})
		}(i)
	}
	wg.Wait()

	received := 0
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for received < senders {
		var n Notice
		if err := conn.ReadJSON(&n); err != nil {
			break
		}
		if n.ReservationID == 0 {
			t.Fatalf("malformed notice: %+v", n)
		}
		received++
	}
	if received != senders {
		t.Fatalf("delivered %d of %d notices", received, senders)
	}

	// The hub keeps working after the burst.
	hub.Notify(7, Notice{Type: "reservation.cancelled", ReservationID: 999})
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var n Notice
		if err := conn.ReadJSON(&n); err != nil {
			t.Fatalf("follow-up notice not delivered: %v", err)
		}
		if n.ReservationID == 999 {
			break
		}
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, 3)

	hub.Notify(3, Notice{Type: "reservation.pending_rejection", ReservationID: 1})
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var n Notice
	if err := conn.ReadJSON(&n); err != nil {
		t.Fatalf("notice not delivered: %v", err)
	}

	hub.mu.Lock()
	serverConn := hub.clients[3][0].conn
	hub.mu.Unlock()
	hub.Unregister(3, serverConn)

	hub.mu.Lock()
	remaining := len(hub.clients[3])
	hub.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("client still registered after Unregister")
	}

	// Notifying a user with no connections is a no-op, not a panic.
	hub.Notify(3, Notice{Type: "reservation.cancelled", ReservationID: 2})
}
