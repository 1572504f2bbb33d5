package broadcast

import (
	"sync"

	"go.uber.org/zap"
)

// viewerBuffer bounds how far a slow viewer may lag before it starts
// missing events.
const viewerBuffer = 16

// Hub delivers events to in-process viewers (the kitchen and admin
// displays connected over the events endpoint). Publishing never blocks:
// a viewer whose buffer is full drops the event.
type Hub struct {
	mu      sync.Mutex
	viewers map[chan Message]struct{}
	zaplog  *zap.Logger
}

func NewHub(zaplog *zap.Logger) *Hub {
	return &Hub{
		viewers: make(map[chan Message]struct{}),
		zaplog:  zaplog,
	}
}

// Subscribe registers a viewer and returns its event channel together with
// an unsubscribe function. The channel is closed on unsubscribe.
func (h *Hub) Subscribe() (<-chan Message, func()) {
	ch := make(chan Message, viewerBuffer)

	h.mu.Lock()
	h.viewers[ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.viewers[ch]; ok {
			delete(h.viewers, ch)
			close(ch)
		}
	}
	return ch, unsubscribe
}

// Publish pushes the event to every connected viewer. Sends happen under
// the hub lock, so each viewer sees events in publish order.
func (h *Hub) Publish(event string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := Message{Event: event, Payload: payload}
	for ch := range h.viewers {
		select {
		case ch <- msg:
		default:
			h.zaplog.Debug("viewer buffer full, event dropped",
				zap.String("event", event))
		}
	}
}

// ViewerCount reports how many viewers are currently connected.
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}
