package ports

import "context"

// Event describes one completed lifecycle transition for downstream fan-out.
type Event struct {
	PedidoID string
	Action   string
	Actor    string
}

// Notifier is the boundary to the notification collaborator. Handlers publish
// after the transaction commits; delivery semantics beyond that point are the
// collaborator's problem, so Publish does not return an error.
type Notifier interface {
	Publish(ctx context.Context, event Event)
}
