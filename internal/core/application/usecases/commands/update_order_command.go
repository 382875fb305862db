package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace an order's item list and
// notes. The delivery fee and discount of the original order are kept; only
// the items and the total change.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []ItemRequest
	notes   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to replace an order's content.
func NewUpdateOrderCommand(orderID kernel.UUID, items []ItemRequest, notes string) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
		orderCommand.setNotes(notes),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement order lines.
func (c UpdateOrderCommand) Items() []ItemRequest {
	items := make([]ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

// Notes returns the replacement free-text notes.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []ItemRequest) error {
	if err := validateItemRequests(items); err != nil {
		return err
	}

	c.items = make([]ItemRequest, len(items))
	copy(c.items, items)
	return nil
}

func (c *UpdateOrderCommand) setNotes(notes string) error {
	if len(notes) > order.MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, order.MaxNotesLength)
	}

	c.notes = notes
	return nil
}
