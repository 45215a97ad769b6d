// Package ws pushes dashboard events to a company's open websocket
// connections. Events are routed by company id; a company with no open
// sockets simply misses the event.
package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type event struct {
	companyID uuid.UUID
	payload   []byte
}

type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	broadcast  chan event
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		broadcast:  make(chan event, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			group := h.clients[client.companyID]
			if group == nil {
				group = make(map[*Client]bool)
				h.clients[client.companyID] = group
			}
			group[client] = true
			total := len(group)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | company=%s clients=%d", client.companyID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if group, ok := h.clients[client.companyID]; ok {
				if _, ok := group[client]; ok {
					delete(group, client)
					close(client.send)
				}
				if len(group) == 0 {
					delete(h.clients, client.companyID)
				}
			}
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | company=%s", client.companyID)
			}

		case evt := <-h.broadcast:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients[evt.companyID]))
			for c := range h.clients[evt.companyID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- evt.payload:
				default:
					h.unregister <- client
				}
			}

			if h.logger != nil {
				h.logger.Printf("WS broadcast | company=%s clients=%d", evt.companyID, len(snapshot))
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Broadcast queues an event for every open connection of one company. The
// event is dropped when the queue is full.
func (h *Hub) Broadcast(companyID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- event{companyID: companyID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS broadcast dropped | reason=buffer_full")
		}
	}
}

func (h *Hub) ClientCount(companyID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[companyID])
}
