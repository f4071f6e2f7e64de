package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks connected clients per user so swap events can be delivered
// to exactly the sender and receiver of a request.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	deliver    chan delivery
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	logger     *log.Logger
}

type delivery struct {
	userID  uuid.UUID
	message []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		deliver:    make(chan delivery, 1024),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			conns := h.clients[client.userID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.userID] = conns
			}
			conns[client] = true
			total := h.totalLocked()
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)

		case d := <-h.deliver:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients[d.userID]))
			for c := range h.clients[d.userID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- d.message:
				default:
					// Slow consumer. Drop it directly instead of going
					// back through the unregister channel the loop itself
					// drains.
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	if conns, ok := h.clients[client.userID]; ok {
		if _, ok := conns[client]; ok {
			delete(conns, client)
			close(client.send)
		}
		if len(conns) == 0 {
			delete(h.clients, client.userID)
		}
	}
	total := h.totalLocked()
	h.mutex.Unlock()
	if h.logger != nil {
		h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
	}
}

// Stop shuts the run loop down and closes every client send channel.
func (h *Hub) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// SendToUser queues a message for every connection the user holds. When
// the buffer is full the message is dropped rather than blocking callers.
func (h *Hub) SendToUser(userID uuid.UUID, message []byte) {
	if h == nil || userID == uuid.Nil {
		return
	}
	select {
	case h.deliver <- delivery{userID: userID, message: message}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS delivery dropped | user=%s reason=buffer_full", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.totalLocked()
}

func (h *Hub) totalLocked() int {
	total := 0
	for _, conns := range h.clients {
		total += len(conns)
	}
	return total
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for userID, conns := range h.clients {
		for client := range conns {
			close(client.send)
		}
		delete(h.clients, userID)
	}
}
