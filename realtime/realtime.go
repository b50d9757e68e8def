package realtime

import (
	"sync"

	"conspiracy/metrics"
	"conspiracy/utils/logger"

	"github.com/gorilla/websocket"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected leaderboard clients
	broadcast = make(chan ScoreUpdate)         // Broadcast channel for updates
	mutex     sync.Mutex                       // Mutex to protect clients map
)

// ScoreUpdate is pushed to every connected leaderboard client whenever a
// submission is accepted.
type ScoreUpdate struct {
	UserID        int64  `json:"user_id"`
	ChallengeName string `json:"challenge_name"`
	PointsAwarded int    `json:"points_awarded"`
	TotalPoints   int    `json:"total_points"`
}

// RegisterClient adds a WebSocket client to the live leaderboard feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	clients[conn] = true
	metrics.WebsocketClients.Set(float64(len(clients)))
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the live leaderboard feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(clients, conn)
	metrics.WebsocketClients.Set(float64(len(clients)))
	mutex.Unlock()
}

// BroadcastScoreUpdate sends the update to all connected clients
func BroadcastScoreUpdate(update ScoreUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range clients {
			if err := client.WriteJSON(update); err != nil {
				logger.Errorf("WebSocket write error: %v", err)
				client.Close()
				delete(clients, client)
			}
		}
		metrics.WebsocketClients.Set(float64(len(clients)))
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
