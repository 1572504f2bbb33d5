package broadcast

// Event names pushed to connected viewers.
const (
	EventMenuUpdated        = "menu-updated"
	EventOrderCreated       = "order-created"
	EventOrderStatusChanged = "order-status-changed"
)

// Message is one broadcast event with its payload.
type Message struct {
	Event   string
	Payload any
}

// Publisher fans an event out to every currently connected viewer.
// Delivery is at-most-once, best-effort: a viewer that cannot take the
// event right now misses it, and nothing is retried.
type Publisher interface {
	Publish(event string, payload any)
}

// Multi publishes the same event to several channels in order.
type Multi []Publisher

func (m Multi) Publish(event string, payload any) {
	for _, p := range m {
		p.Publish(event, payload)
	}
}
