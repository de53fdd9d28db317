// Package events fans load-board changes out to websocket viewers.
package events

import (
	"encoding/json"
	"sync"
	"time"
)

const (
	LoadPosted   = "load_posted"
	LoadBooked   = "load_booked"
	LoadReleased = "load_released"
	LoadRemoved  = "load_removed"
)

// Event is one board change, serialized as-is to every subscriber.
type Event struct {
	Type      string      `json:"type"`
	LoadID    uint        `json:"load_id"`
	Reference string      `json:"reference"`
	At        time.Time   `json:"at"`
	Payload   interface{} `json:"payload,omitempty"`
}

type Hub struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

// Board is the process-wide hub the API publishes to.
var Board = NewHub()

func NewHub() *Hub {
	return &Hub{subs: make(map[chan []byte]struct{})}
}

// Subscribe registers a buffered channel for board events. The caller
// must drain it and call Unsubscribe when done.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 32)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish serializes the event and delivers it to every subscriber.
// Slow subscribers with a full buffer miss the event rather than block
// the publisher.
func (h *Hub) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	msg, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}
