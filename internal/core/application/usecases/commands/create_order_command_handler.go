package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Checks both parties, reserves stock for every requested item, prices the
// order (items + delivery fee − discount), and persists it in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewFreightCalculator())
//	cmd, _ := NewCreateOrderCommand(orderID, clientID, restaurantID, items, discount, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory        CheckoutUoWFactory
	freightCalculator services.FreightCalculator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CheckoutUoWFactory for transactional persistence and a
// FreightCalculator for delivery pricing.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	freightCalculator services.FreightCalculator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:        uowFactory,
		freightCalculator: freightCalculator,
	}
}

// Handle processes the order placement command.
// The whole workflow runs in one transaction: a failed reservation or an
// inactive party rolls back every stock decrement already made.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	client, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}
	if !client.IsActive() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("client %s is not active", client.ID()),
		)
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.IsActive() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("restaurant %s is not active", restaurant.ID()),
		)
	}
	if !restaurant.IsOpenAt(time.Now().UTC()) {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("restaurant %s is closed", restaurant.ID()),
		)
	}

	items, err := reserveItems(ctx, uow.ProductRepository(), restaurant.ID(), cmd.Items())
	if err != nil {
		return err
	}

	deliveryFee, err := h.freightCalculator.CalculateFee(restaurant.Location(), client.Location())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), client.ID(), restaurant.ID(),
		items, deliveryFee, cmd.Discount(), cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
