package rollup

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
)

// Event types that trigger a rollup recompute. Both sale and return
// mutations publish one; the worker coalesces a batch of events into a
// single full recompute.
const (
	EventSaleWritten   = "SaleWritten"
	EventReturnWritten = "ReturnWritten"
)

// Event is a domain event pushed through the transactional outbox.
type Event struct {
	// AggregateType names the entity kind, e.g. "Sale" or "Return".
	AggregateType string
	// AggregateID is the mutated entity.
	AggregateID id.ID
	// EventType is one of the Event* constants.
	EventType string
	// Payload carries event-specific data (JSON-serializable).
	Payload any
}

// Publisher records events for asynchronous consumption. The postgres
// outbox implements it; publishing must happen inside the same
// transaction as the mutation it announces.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
