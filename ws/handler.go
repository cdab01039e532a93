package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // halaman player publik, tanpa auth
	},
}

func sendJSON(conn *websocket.Conn, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Println("Gagal kirim message:", err)
	}
}

// HandlePlayerWebSocket dipakai halaman player untuk menerima notifikasi
// pergantian recording aktif.
func HandlePlayerWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade gagal:", err)
		return
	}

	H.Register(conn)
	sendJSON(conn, gin.H{"type": "connected", "message": "Terhubung ke player updates"})
}
