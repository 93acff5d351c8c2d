package events

import "context"

// Event names published on order mutations. Dishes have no lifecycle and
// emit nothing.
const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

type Event struct {
	Event   string `json:"event"`
	OrderID string `json:"order_id"`
	Status  string `json:"status,omitempty"`
}

// Publisher delivers order lifecycle events to interested consumers.
// Failures are the caller's problem to log; they never fail the request.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Noop drops every event. Wired when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
