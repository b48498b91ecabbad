package tracking

import (
	"sync"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
)

// DefaultBufferSize is the per-connection event buffer used by NewHub when no
// explicit size is given.
const DefaultBufferSize = 16

// Event is a single drone position sample published to order subscribers.
type Event struct {
	OrderID   kernel.UUID
	Location  kernel.GeoLocation
	Timestamp time.Time
}

// connection is a single realtime consumer. Events are delivered in FIFO
// order through a buffered channel owned by the hub.
type connection struct {
	id     string
	events chan Event
	// topics holds the order IDs this connection is subscribed to,
	// so Disconnect can drop all memberships.
	topics map[kernel.UUID]struct{}
}

// Hub routes drone position events to the connections subscribed to an order.
//
// Delivery is best-effort: a publish never blocks, and a subscriber whose
// buffer is full simply misses the sample. Position updates supersede each
// other, so a dropped sample is overwritten by the next one anyway.
//
// The hub is process-scoped state and is safe for concurrent use. It is
// constructed once in the composition root and injected where needed.
type Hub struct {
	mu          sync.Mutex
	connections map[string]*connection
	subscribers map[kernel.UUID]map[string]*connection
	bufferSize  int
}

// NewHub creates a hub whose connections buffer up to bufferSize events.
// A non-positive bufferSize falls back to DefaultBufferSize.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &Hub{
		connections: make(map[string]*connection),
		subscribers: make(map[kernel.UUID]map[string]*connection),
		bufferSize:  bufferSize,
	}
}

// Subscribe adds the connection to the order's subscriber set and returns the
// connection's event channel. The connection is registered on first use;
// subscribing an existing connection to another order reuses its channel.
// Subscribing twice to the same order is a no-op.
//
// The returned channel is closed by Disconnect.
func (h *Hub) Subscribe(connID string, orderID kernel.UUID) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.connections[connID]
	if !ok {
		conn = &connection{
			id:     connID,
			events: make(chan Event, h.bufferSize),
			topics: make(map[kernel.UUID]struct{}),
		}
		h.connections[connID] = conn
	}

	if _, ok := h.subscribers[orderID]; !ok {
		h.subscribers[orderID] = make(map[string]*connection)
	}
	h.subscribers[orderID][connID] = conn
	conn.topics[orderID] = struct{}{}

	return conn.events
}

// Unsubscribe removes the connection from the order's subscriber set.
// Unknown connections and non-member orders are a no-op. The connection
// itself stays registered until Disconnect.
func (h *Hub) Unsubscribe(connID string, orderID kernel.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.connections[connID]
	if !ok {
		return
	}

	delete(conn.topics, orderID)
	h.removeSubscriber(connID, orderID)
}

// Publish delivers a position sample to every connection subscribed to the
// order. With no subscribers the event is dropped. Enqueueing never blocks:
// a full subscriber buffer drops the event for that subscriber only.
//
// Returns the number of connections the event was enqueued to.
func (h *Hub) Publish(orderID kernel.UUID, location kernel.GeoLocation, timestamp time.Time) int {
	event := Event{
		OrderID:   orderID,
		Location:  location,
		Timestamp: timestamp,
	}

	// Sends stay under the lock so a concurrent Disconnect cannot close a
	// channel mid-send. All sends are non-blocking, so the critical section
	// stays short.
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for _, conn := range h.subscribers[orderID] {
		select {
		case conn.events <- event:
			delivered++
		default:
		}
	}

	return delivered
}

// Disconnect removes the connection from every subscriber set and closes its
// event channel. Disconnecting an unknown connection is a no-op.
func (h *Hub) Disconnect(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.connections[connID]
	if !ok {
		return
	}

	for orderID := range conn.topics {
		h.removeSubscriber(connID, orderID)
	}

	delete(h.connections, connID)
	close(conn.events)
}

// ActiveConnections returns the number of registered connections.
// Feeds the realtime connection gauge.
func (h *Hub) ActiveConnections() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.connections)
}

// removeSubscriber drops the connection from one order's subscriber set and
// prunes the set when it empties. Caller must hold h.mu.
func (h *Hub) removeSubscriber(connID string, orderID kernel.UUID) {
	subs, ok := h.subscribers[orderID]
	if !ok {
		return
	}

	delete(subs, connID)
	if len(subs) == 0 {
		delete(h.subscribers, orderID)
	}
}
