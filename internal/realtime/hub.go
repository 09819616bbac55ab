package realtime

import (
	"sync"

	"github.com/google/uuid"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/types"
)

type EventType string

const EventNewQuotation EventType = "NEW_QUOTATION"

type Message struct {
	Type      EventType               `json:"type"`
	Quotation *types.QuotationRequest `json:"quotation,omitempty"`
}

type Client struct {
	ID       uuid.UUID
	Outbound chan Message
	done     chan struct{}
}

// Hub is the process-wide registry of connected listeners. Registration,
// removal and broadcast can run on different goroutines, so the registry is
// mutex-guarded.
type Hub struct {
	mu      sync.RWMutex
	log     *logger.Logger
	clients map[*Client]bool
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:     log.With("component", "Hub"),
		clients: make(map[*Client]bool),
	}
}

func (h *Hub) Register() *Client {
	client := &Client{
		ID:       uuid.New(),
		Outbound: make(chan Message, 10),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	h.log.Debug("Realtime client connected", "clientID", client.ID)
	return client
}

// Unregister removes the client and closes its channels. Safe to call once
// per client, from either the read or the write side's failure path.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	_, registered := h.clients[client]
	if registered {
		delete(h.clients, client)
		// Closed under the write lock so Broadcast can never send on a
		// closed channel.
		close(client.done)
		close(client.Outbound)
	}
	h.mu.Unlock()

	if registered {
		h.log.Debug("Realtime client disconnected", "clientID", client.ID)
	}
}

// Broadcast pushes msg to every connected client, fire-and-forget. A client
// whose outbound buffer is full misses this message; delivery to the others
// proceeds and no error reaches the caller.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Outbound <- msg:
		default:
			h.log.Warn("Dropping realtime message; outbound buffer full", "clientID", client.ID)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
