package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"go-restaurant-ordering/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

// Message is one websocket event pushed to admin clients.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client goes away. The server never reads application data from clients.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

// notifyNewOrder pushes a "newOrder" event when checkout persists an order.
func notifyNewOrder(order models.Order) {
	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(Message{Event: "newOrder", Payload: order})
}

// notifyOrderStatus pushes an "orderStatus" event on status changes.
func notifyOrderStatus(order models.Order) {
	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(Message{Event: "orderStatus", Payload: order})
}

// sendMessageToAllClients broadcasts message; callers hold mu.
func sendMessageToAllClients(message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("marshaling websocket message failed:", err)
		return
	}
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}
