package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// MaxNotesLength bounds the free-text notes field.
const MaxNotesLength = 255

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a checkout transaction: one client, one
// restaurant, one or more line items, a delivery fee, an optional discount,
// and a guarded status lifecycle.
//
// Invariants:
//   - total == max(0, sum of item subtotals + delivery fee - discount)
//   - at least one item
//   - status transitions follow the Status state machine
//   - content edits are only allowed while the status permits them
//
// The total is computed once per content change and persisted; it is never
// implicitly recomputed, since item unit prices are snapshots.
type Order struct {
	id           kernel.UUID
	clientID     kernel.UUID
	restaurantID kernel.UUID
	items        []Item
	createdAt    time.Time
	status       Status
	deliveryFee  kernel.Money
	discount     kernel.Money
	total        kernel.Money
	notes        string

	isConstructed bool
}

// NewOrder creates a Pending order from reserved items, a computed delivery
// fee, and an optional discount (zero Money for none). The total is computed
// from these parts and clamped at zero.
func NewOrder(
	id, clientID, restaurantID kernel.UUID,
	items []Item,
	deliveryFee kernel.Money,
	discount kernel.Money,
	notes string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		deliveryFee:   deliveryFee,
		discount:      discount,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}

	o.recalculateTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its status
// and timestamps. The persisted total is kept as-is: totals are computed at
// mutation time, not on load.
func RestoreOrder(
	id, clientID, restaurantID kernel.UUID,
	items []Item,
	createdAt time.Time,
	status Status,
	deliveryFee, discount, total kernel.Money,
	notes string,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		deliveryFee:   deliveryFee,
		discount:      discount,
		total:         total,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setNotes(notes),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the owning client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryFee returns the freight fee computed at creation time.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Discount returns the discount applied to the order.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Total returns the persisted order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Notes returns the free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// ItemsTotal returns the sum of all item subtotals.
func (o *Order) ItemsTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ChangeStatus applies a guarded transition to the given status.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled. Cancelling an already cancelled
// order fails with a dedicated business-rule message.
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return errs.NewBusinessRuleViolationError("order is already cancelled")
	}
	return o.ChangeStatus(Cancelled)
}

// EnsureEditable fails when the current status forbids content edits.
func (o *Order) EnsureEditable() error {
	if !o.status.AllowsContentEdit() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("order in status %s cannot be edited", o.status),
		)
	}
	return nil
}

// ReplaceItems swaps the order's line items and notes, then recomputes the
// total with the existing delivery fee and discount. Only allowed while the
// status permits content edits.
func (o *Order) ReplaceItems(items []Item, notes string) error {
	if err := o.EnsureEditable(); err != nil {
		return err
	}

	if err := errors.Join(o.setItems(items), o.setNotes(notes)); err != nil {
		return err
	}

	o.recalculateTotal()
	return nil
}

// recalculateTotal applies the pricing rule:
// total = max(0, items + delivery fee - discount). Money subtraction clamps
// at zero.
func (o *Order) recalculateTotal() {
	o.total = o.ItemsTotal().Add(o.deliveryFee).Sub(o.discount)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.clientID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewBusinessRuleViolationError("order must contain at least one item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setNotes(notes string) error {
	if len(notes) > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, MaxNotesLength)
	}
	o.notes = notes
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
