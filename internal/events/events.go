package events

import "context"

const (
	TypeCartChanged      = "cart.changed"
	TypeCartCleared      = "cart.cleared"
	TypeFavoritesChanged = "favorites.changed"
	TypeOrderPlaced      = "order.placed"
)

// Event is a domain notification. Payload is already JSON.
type Event struct {
	Type    string
	Key     string
	Payload []byte
}

// Publisher fans events out to whoever listens. Publish failures must never
// block or fail the mutation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
