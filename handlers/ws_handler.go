package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/gpu-reserve-go/middleware"
	"github.com/linskybing/gpu-reserve-go/notify"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *notify.Hub
}

func NewWSHandler(hub *notify.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Notifications upgrades the connection and keeps it registered for
// pending-rejection pushes until the client disconnects. The token travels
// as a query parameter because browsers cannot set websocket headers.
func (h *WSHandler) Notifications(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}

	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade websocket:", err)
		return
	}

	h.hub.Register(claims.UserID, ws)
	defer func() {
		h.hub.Unregister(claims.UserID, ws)
		ws.Close()
	}()

	// Drain control frames; the server only pushes.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
