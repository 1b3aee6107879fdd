package events

import (
	"context"
	"time"
)

// Event types published by the funding service
const (
	// TypeNeedFulfilled is emitted once per checkout line that committed
	TypeNeedFulfilled = "need.fulfilled"
	// TypeCheckoutCompleted is emitted when a whole checkout committed and
	// the basket was cleared
	TypeCheckoutCompleted = "checkout.completed"
)

// Event is a funding domain event published to the message broker
type Event struct {
	// ID is a unique identifier for this event
	ID string `json:"id"`
	// Type is one of the Type* constants
	Type string `json:"type"`
	// AttemptID is the checkout attempt the event belongs to
	AttemptID string `json:"attempt_id"`
	// UserName is the helper who checked out
	UserName string `json:"user_name"`
	// BasketID is the basket that was checked out
	BasketID int64 `json:"basket_id"`
	// NeedID is the fulfilled need, set for need.fulfilled events
	NeedID int64 `json:"need_id,omitempty"`
	// Quantity is the fulfilled quantity, set for need.fulfilled events
	Quantity int64 `json:"quantity,omitempty"`
	// Timestamp records when the event was created
	Timestamp time.Time `json:"timestamp"`
}

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a funding event to the message broker
	PublishEvent(ctx context.Context, event *Event) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event. Used when no
// message broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(_ context.Context, _ *Event) error { return nil }

func (noopPublisher) Close() {}

type multiPublisher struct {
	publishers []Publisher
}

// NewMultiPublisher fans every event out to all given publishers. Each
// publisher sees every event; the first error is returned after all have been
// attempted.
func NewMultiPublisher(publishers ...Publisher) Publisher {
	return &multiPublisher{publishers: publishers}
}

func (m *multiPublisher) PublishEvent(ctx context.Context, event *Event) error {
	var firstErr error
	for _, p := range m.publishers {
		if err := p.PublishEvent(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multiPublisher) Close() {
	for _, p := range m.publishers {
		p.Close()
	}
}
