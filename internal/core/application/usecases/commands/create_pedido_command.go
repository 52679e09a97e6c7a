package commands

import (
	"errors"

	"fleetrent/internal/pkg/errs"
	"fleetrent/internal/pkg/guard"
)

var ErrCreatePedidoCommandIsNotConstructed = errors.New(
	"CreatePedidoCommand must be created via NewCreatePedidoCommand constructor",
)

// CreatePedidoCommand represents a request submission: who is asking, for
// which service, and how many machines of each type.
//
// Example:
//
//	cmd, err := NewCreatePedidoCommand("sup1", "Store A", map[string]int{"MOTOGUADAÑA": 2}, "")
//	if err != nil {
//	    return fmt.Errorf("invalid pedido data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreatePedidoCommand struct { //nolint:recvcheck //using for validation
	requester string
	service   string
	items     map[string]int
	note      string

	guard guard.ConstructorGuard
}

// NewCreatePedidoCommand creates a command to submit a new pedido.
// Requester and service are required; quantity rules are enforced by the
// aggregate.
func NewCreatePedidoCommand(
	requester string,
	service string,
	items map[string]int,
	note string,
) (CreatePedidoCommand, error) {
	cmd := CreatePedidoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setService(service),
		cmd.setItems(items),
	); err != nil {
		return CreatePedidoCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePedidoCommand) Validate() error {
	return c.guard.Validate(ErrCreatePedidoCommandIsNotConstructed)
}

// Requester returns the submitting username.
func (c CreatePedidoCommand) Requester() string { return c.requester }

// Service returns the destination service label.
func (c CreatePedidoCommand) Service() string { return c.service }

// Items returns the requested type-to-quantity map.
func (c CreatePedidoCommand) Items() map[string]int { return c.items }

// Note returns the optional free-text note.
func (c CreatePedidoCommand) Note() string { return c.note }

func (c *CreatePedidoCommand) setRequester(requester string) error {
	if requester == "" {
		return errs.NewValueIsRequiredError("requesterUsername")
	}
	c.requester = requester
	return nil
}

func (c *CreatePedidoCommand) setService(service string) error {
	if service == "" {
		return errs.NewValueIsRequiredError("servicio")
	}
	c.service = service
	return nil
}

func (c *CreatePedidoCommand) setItems(items map[string]int) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("itemsSolicitados")
	}
	c.items = items
	return nil
}
