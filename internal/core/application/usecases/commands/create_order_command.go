package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order: a client, a
// restaurant, the requested items, an optional discount, and optional notes.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	items := []ItemRequest{{ProductID: productID, Quantity: 2}}
//	cmd, err := NewCreateOrderCommand(orderID, clientID, restaurantID, items, discount, "no onions")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, freightCalculator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	clientID     kernel.UUID
	restaurantID kernel.UUID
	items        []ItemRequest
	discount     kernel.Money
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the identifiers, requires at least one item with a positive
// quantity, and bounds the notes length. A zero Money discount means none.
func NewCreateOrderCommand(
	orderID, clientID, restaurantID kernel.UUID,
	items []ItemRequest,
	discount kernel.Money,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		discount: discount,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setItems(items),
		orderCommand.setNotes(notes),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the ordering client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// RestaurantID returns the restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemRequest {
	items := make([]ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

// Discount returns the discount to apply, zero when none was given.
func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

// Notes returns the free-text notes for the order.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if err := validateItemRequests(items); err != nil {
		return err
	}

	c.items = make([]ItemRequest, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setNotes(notes string) error {
	if len(notes) > order.MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, order.MaxNotesLength)
	}

	c.notes = notes
	return nil
}
