// Package watch streams live game snapshots to spectators over WebSocket.
package watch

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
)

// Message is the envelope of everything sent to a viewer.
type Message struct {
	Type     string `json:"type"` // "hello" or "snapshot"
	ClientID string `json:"client_id,omitempty"`
	Game     string `json:"game,omitempty"`
	Data     any    `json:"data,omitempty"`
}

// Hub maintains the set of active viewers and broadcasts snapshots to them.
type Hub struct {
	game       string
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	logger     *log.Logger
}

// NewHub creates a hub for the given game ID.
func NewHub(game string, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		game:       game,
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registration and broadcasts until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Debug("watch hub stopped")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("viewer connected", "client", client.id, "remote", client.remote)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("viewer disconnected", "client", client.id)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Viewer too slow, drop it
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("dropping slow viewer", "client", client.id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues a snapshot for every viewer. It never blocks the caller:
// when the queue is full the frame is skipped. Callers must pass a value
// they no longer mutate.
func (h *Hub) Publish(snapshot any) {
	payload, err := json.Marshal(Message{Type: "snapshot", Game: h.game, Data: snapshot})
	if err != nil {
		h.logger.Error("cannot encode snapshot", "error", err)
		return
	}
	select {
	case h.broadcast <- payload:
	default:
	}
}
