// Package ws pushes dashboard state changes to connected operator consoles
// over a websocket. Every connected console receives every event; the
// dashboard is a single shared operations view.
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/drishti-ops/drishti/internal/store"
)

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run drives the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case event := <-h.broadcast:
			h.broadcastAll(event)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *Hub) broadcastAll(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	message, err := json.Marshal(event)
	if err != nil {
		return
	}

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

// Broadcast queues an event for every connected console. Drops the event if
// the queue is full rather than blocking the caller.
func (h *Hub) Broadcast(eventType EventType, data interface{}) {
	event := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- event:
	default:
	}
}

// ConnectedClients returns the number of consoles currently attached.
func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// StoreListener bridges store mutations onto the websocket feed.
func (h *Hub) StoreListener() store.Listener {
	return func(e store.Event) {
		switch e.Type {
		case store.EventZoneStatus:
			h.Broadcast(EventZoneStatus, e.Data)
		case store.EventAlertCreated:
			h.Broadcast(EventAlertCreated, e.Data)
		case store.EventDensityAppended:
			h.Broadcast(EventDensityAppended, e.Data)
		}
	}
}

// BroadcastAlarmState pushes the alarm toggle so every console's silence
// button stays in sync.
func (h *Hub) BroadcastAlarmState(active bool) {
	h.Broadcast(EventAlarmState, map[string]bool{"active": active})
}
