// Package product contains the Product aggregate: the stock and price record
// that order items are reserved against.
package product

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the aggregate a reservation decrements stock on. Availability is
// derived from stock and recomputed on every mutation; the version field
// backs the optimistic-concurrency check in the repository, so two
// transactions cannot both consume the same units.
//
// Invariants:
//   - stock is never negative
//   - available == (stock > 0) after every mutation
//   - price is a non-negative fixed-point amount
type Product struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Money
	stock        int
	available    bool
	version      int

	isConstructed bool
}

// NewProduct creates a product with the given initial stock at version zero.
func NewProduct(id, restaurantID kernel.UUID, name, description string, price kernel.Money, stock int) (*Product, error) {
	return RestoreProduct(id, restaurantID, name, description, price, stock, 0)
}

// RestoreProduct reconstructs a product from persistence. Availability is
// rederived from stock rather than trusted from storage.
func RestoreProduct(
	id, restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	stock int,
	version int,
) (*Product, error) {
	p := &Product{
		description:   description,
		price:         price,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRestaurantID(restaurantID),
		p.setName(name),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// RestaurantID returns the owning restaurant's identifier.
func (p *Product) RestaurantID() kernel.UUID {
	return p.restaurantID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price. Order items snapshot this value at
// reservation time.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the units currently available for reservation.
func (p *Product) Stock() int {
	return p.stock
}

// IsAvailable reports whether the product can be ordered. Derived from stock.
func (p *Product) IsAvailable() bool {
	return p.available
}

// Version returns the optimistic-concurrency version. The repository bumps it
// on every successful update.
func (p *Product) Version() int {
	return p.version
}

// BelongsTo reports whether this product is owned by the given restaurant.
func (p *Product) BelongsTo(restaurantID kernel.UUID) bool {
	return p.restaurantID.IsEqual(restaurantID)
}

// Reserve decrements stock by quantity for an order item.
// Fails with a conflict when the product is unavailable or when stock is
// insufficient; on failure stock is left untouched.
func (p *Product) Reserve(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, p.stock)
	}
	if !p.available {
		return errs.NewConflictError(fmt.Sprintf("product %q is not available", p.name))
	}
	if p.stock < quantity {
		return errs.NewConflictErrorWithCause(
			fmt.Sprintf("insufficient stock for product %q", p.name),
			fmt.Errorf("%d units requested, %d in stock", quantity, p.stock),
		)
	}

	p.stock -= quantity
	p.available = p.stock > 0
	return nil
}

// Restock returns quantity units to stock, e.g. when an order edit releases a
// previous reservation.
func (p *Product) Restock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, quantity)
	}

	p.stock += quantity
	p.available = p.stock > 0
	return nil
}

// ChangePrice replaces the unit price. Existing order items keep their
// snapshotted prices.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.restaurantID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	p.available = stock > 0
	return nil
}
