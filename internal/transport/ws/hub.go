package ws

import (
	"encoding/json"
	"log"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgLeaderboardUpdate MessageType = "leaderboard_update"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans leaderboard updates out to every connected subscriber. The
// feed is public, like the leaderboard endpoints themselves.
type Hub struct {
	conns map[*Connection]bool

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
}

// Connection represents one WebSocket subscriber
type Connection struct {
	Send chan []byte
}

// NewHub creates a hub and starts its dispatch loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.conns[conn] = true
			log.Printf("Leaderboard subscriber connected (%d active)", len(h.conns))

		case conn := <-h.unregister:
			if _, ok := h.conns[conn]; ok {
				delete(h.conns, conn)
				close(conn.Send)
				log.Printf("Leaderboard subscriber disconnected (%d active)", len(h.conns))
			}

		case data := <-h.broadcast:
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastLeaderboard pushes the refreshed top entries to all
// subscribers (implements service.Broadcaster).
func (h *Hub) BroadcastLeaderboard(entries []model.LeaderboardEntry) {
	payload, err := json.Marshal(map[string]interface{}{"leaderboard": entries})
	if err != nil {
		return
	}
	data, err := json.Marshal(&Message{
		Type:    MsgLeaderboardUpdate,
		Payload: payload,
	})
	if err != nil {
		return
	}
	h.broadcast <- data
}
