// Package notify broadcasts table-level change signals to subscribers.
// The signal carries no row data: listeners are expected to re-issue
// their last query verbatim when it fires.
package notify

import "sync"

type Hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[chan struct{}]struct{}{}}
}

// Subscribe returns a buffered channel that receives one signal per
// broadcast. Callers must Unsubscribe when done listening.
func (h *Hub) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// EventsChanged signals every subscriber without blocking. A subscriber
// with a pending signal is not signalled again; one refetch covers both.
func (h *Hub) EventsChanged() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}
