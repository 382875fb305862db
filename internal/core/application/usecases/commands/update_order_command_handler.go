package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles the business logic for replacing an
// order's content. The previous reservation is undone in full (every old
// item's quantity goes back to its product) before the new list is reserved
// at current prices, all in one transaction.
type UpdateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order content updates.
func NewUpdateOrderCommandHandler(uowFactory CheckoutUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Fails with ObjectNotFound when the order does not exist and with a
// business-rule violation when its status forbids content edits.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureEditable(); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	if err = restockItems(ctx, productRepo, aggregate.Items()); err != nil {
		return err
	}

	items, err := reserveItems(ctx, productRepo, aggregate.RestaurantID(), cmd.Items())
	if err != nil {
		return err
	}

	if err = aggregate.ReplaceItems(items, cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
