// Package notify provides the in-process implementation of the notification
// boundary. Real fan-out (mail, messaging) lives outside this service; this
// adapter records each published event in the structured log so the hook
// stays observable.
package notify

import (
	"context"
	"log/slog"

	"fleetrent/internal/core/ports"
)

// SlogNotifier logs lifecycle events through slog.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that writes events to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Publish records the event. Called after the owning transaction commits, so
// an event always describes persisted state.
func (n *SlogNotifier) Publish(ctx context.Context, event ports.Event) {
	n.logger.InfoContext(ctx, "pedido event",
		"pedido", event.PedidoID,
		"action", event.Action,
		"actor", event.Actor,
	)
}
