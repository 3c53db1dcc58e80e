package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs handles websocket requests from the peer.
func ServeWs(hub *Hub, c *websocket.Conn, userID uint, onMessage MessageHandler) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		UserID:    userID,
		Send:      make(chan []byte, 256),
		OnMessage: onMessage,
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
