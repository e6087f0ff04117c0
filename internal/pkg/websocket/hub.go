package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event is a notification sent to every connected staff client
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub maintains the set of connected staff clients and fans events out to them
type Hub struct {
	// Registered clients, only touched by Run
	clients map[*Client]bool

	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client

	// closed when Run returns
	done chan struct{}

	// count mirrors len(clients) for readers outside Run
	mu    sync.RWMutex
	count int

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until ctx is done, then
// closes every client connection
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.removeClient(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.setCount(len(h.clients))
			h.logger.Info().
				Str("userID", client.userID).
				Str("addr", client.conn.RemoteAddr().String()).
				Msg("Client registered")

		case client := <-h.unregister:
			if h.clients[client] {
				h.removeClient(client)
				h.logger.Info().Str("userID", client.userID).Msg("Client unregistered")
			}

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// add registers a client, reporting false once the hub has stopped
func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) removeClient(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.setCount(len(h.clients))
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

// broadcastEvent sends an event to all clients. Clients whose send buffer is
// full are dropped.
func (h *Hub) broadcastEvent(event *Event) {
	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal event for broadcast")
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn().Str("userID", client.userID).Msg("Dropping slow client")
			h.removeClient(client)
		}
	}

	h.logger.Debug().Str("type", event.Type).Int("clientCount", len(h.clients)).Msg("Event broadcasted")
}

// Publish queues an event for broadcast. It never blocks the caller: when
// the queue is full the event is dropped.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &Event{Type: eventType, Data: data, Timestamp: time.Now().UTC()}
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().Str("type", eventType).Msg("Event queue full, dropping event")
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}
