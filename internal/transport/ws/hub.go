package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgProgressUpdate    MessageType = "progress_update"
	MsgDomainCelebration MessageType = "domain_celebration"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages one WebSocket connection per participant
type Hub struct {
	conns map[string]*Connection // userID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *userMessage
}

// Connection represents a participant's WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

type userMessage struct {
	UserID  string
	Message *Message
}

// NewHub creates a new WebSocket hub and starts its event loop
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *userMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if existing, ok := h.conns[conn.UserID]; ok {
				// A reconnect replaces the old connection
				close(existing.Send)
			}
			h.conns[conn.UserID] = conn
			h.mu.Unlock()
			log.Printf("ws: user %s connected", conn.UserID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.conns[conn.UserID]; ok && existing == conn {
				delete(h.conns, conn.UserID)
				close(conn.Send)
				log.Printf("ws: user %s disconnected", conn.UserID)
			}
			h.mu.Unlock()

		case um := <-h.broadcast:
			h.mu.RLock()
			conn, ok := h.conns[um.UserID]
			h.mu.RUnlock()
			if !ok {
				continue
			}

			data, err := json.Marshal(um.Message)
			if err != nil {
				log.Printf("ws: marshal failed: %v", err)
				continue
			}
			select {
			case conn.Send <- data:
			default:
				// Slow consumer; drop the event rather than block the hub
			}
		}
	}
}

// Register adds a connection to the hub
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection from the hub
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToUser sends an event to a single connected user. Implements
// assessment.Broadcaster. Events to disconnected users are dropped silently;
// these are transient UI signals, not durable state.
func (h *Hub) BroadcastToUser(userID, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws: payload marshal failed for %s: %v", event, err)
		return
	}
	h.broadcast <- &userMessage{
		UserID: userID,
		Message: &Message{
			Type:    MessageType(event),
			Payload: data,
		},
	}
}
