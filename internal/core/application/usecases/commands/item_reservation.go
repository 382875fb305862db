package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ErrItemsAreRequired is returned when an order command carries no items.
var ErrItemsAreRequired = errors.New("at least one item is required")

// ItemRequest is one requested order line: a product and a quantity.
// Quantities must be positive; the unit price is never supplied by the
// caller, it is snapshotted from the product at reservation time.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

func validateItemRequests(items []ItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].quantity", i), item.Quantity, 1, int(^uint(0)>>1),
			)
		}
	}

	return nil
}

// reserveItems turns item requests into order items, decrementing product
// stock as it goes. Products are loaded with row locks and written back with
// a version check; any failure aborts the whole reservation, the enclosing
// transaction rolls back, and no decrement survives.
//
// Checks per request, in order: product exists, product belongs to the
// order's restaurant, product is available, stock covers the quantity.
func reserveItems(
	ctx context.Context,
	productRepo ports.ProductRepository,
	restaurantID kernel.UUID,
	requests []ItemRequest,
) ([]order.Item, error) {
	items := make([]order.Item, 0, len(requests))

	for _, request := range requests {
		aggregate, err := productRepo.GetForUpdate(ctx, request.ProductID)
		if err != nil {
			return nil, err
		}

		if !aggregate.BelongsTo(restaurantID) {
			return nil, errs.NewConflictError(
				fmt.Sprintf("product %s does not belong to restaurant %s",
					aggregate.ID(), restaurantID),
			)
		}

		if err = aggregate.Reserve(request.Quantity); err != nil {
			return nil, err
		}

		if err = productRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}

		item, err := order.NewItem(kernel.NewUUID(), aggregate.ID(), request.Quantity, aggregate.Price())
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// restockItems returns previously reserved quantities to their products.
// Used when an order's item list is replaced: the old reservation is undone
// in full before the new one is made.
func restockItems(ctx context.Context, productRepo ports.ProductRepository, items []order.Item) error {
	for _, item := range items {
		aggregate, err := productRepo.GetForUpdate(ctx, item.ProductID())
		if err != nil {
			return err
		}

		if err = aggregate.Restock(item.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}
