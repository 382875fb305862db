package account

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// minutesPerDay bounds opening-hour offsets.
const minutesPerDay = 24 * 60

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a restaurant account: identity, active flag, origin
// coordinates for freight calculation, daily opening hours, and the rating
// aggregate derived from its reviews.
//
// Client and Restaurant are deliberately separate types rather than variants
// of a shared user base: the order core only ever needs one concrete kind at a
// time, and each carries its own fields.
type Restaurant struct {
	id       kernel.UUID
	name     string
	active   bool
	location kernel.GeoPoint

	// opensAt and closesAt are minutes from midnight, local time.
	// opensAt == closesAt means the restaurant is always open.
	opensAt  int
	closesAt int

	// rating is the mean review score, nil when the restaurant has no reviews.
	rating *float64

	isConstructed bool
}

// NewRestaurant creates an active restaurant with no reviews. opensAt and
// closesAt are minutes from midnight; pass equal values for an always-open
// restaurant.
func NewRestaurant(id kernel.UUID, name string, location kernel.GeoPoint, opensAt, closesAt int) (*Restaurant, error) {
	return RestoreRestaurant(id, name, true, location, opensAt, closesAt, nil)
}

// RestoreRestaurant reconstructs a restaurant from persistence, including its
// active flag and rating aggregate.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	active bool,
	location kernel.GeoPoint,
	opensAt, closesAt int,
	rating *float64,
) (*Restaurant, error) {
	restaurant := &Restaurant{
		active:        active,
		rating:        rating,
		isConstructed: true,
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setLocation(location),
		restaurant.setHours(opensAt, closesAt),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// IsActive reports whether the restaurant may receive orders.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// Location returns the restaurant's coordinates, the origin for freight
// calculation.
func (r *Restaurant) Location() kernel.GeoPoint {
	return r.location
}

// OpensAt returns the opening time as minutes from midnight.
func (r *Restaurant) OpensAt() int {
	return r.opensAt
}

// ClosesAt returns the closing time as minutes from midnight.
func (r *Restaurant) ClosesAt() int {
	return r.closesAt
}

// Rating returns the mean review score, or nil when the restaurant has no
// reviews.
func (r *Restaurant) Rating() *float64 {
	return r.rating
}

// IsOpenAt reports whether the restaurant accepts orders at the given time.
// Hours spanning midnight (closesAt < opensAt) are handled.
func (r *Restaurant) IsOpenAt(t time.Time) bool {
	if r.opensAt == r.closesAt {
		return true
	}

	minute := t.Hour()*60 + t.Minute()
	if r.opensAt < r.closesAt {
		return minute >= r.opensAt && minute < r.closesAt
	}
	return minute >= r.opensAt || minute < r.closesAt
}

// SetRating replaces the rating aggregate. Pass nil when the restaurant has
// no reviews left.
func (r *Restaurant) SetRating(rating *float64) {
	r.rating = rating
}

// Deactivate marks the restaurant inactive. Inactive restaurants cannot
// receive orders.
func (r *Restaurant) Deactivate() {
	r.active = false
}

// Activate marks the restaurant active.
func (r *Restaurant) Activate() {
	r.active = true
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *Restaurant) setHours(opensAt, closesAt int) error {
	if opensAt < 0 || opensAt >= minutesPerDay {
		return errs.NewValueIsOutOfRangeError("opensAt", opensAt, 0, minutesPerDay-1)
	}
	if closesAt < 0 || closesAt >= minutesPerDay {
		return errs.NewValueIsOutOfRangeError("closesAt", closesAt, 0, minutesPerDay-1)
	}

	r.opensAt = opensAt
	r.closesAt = closesAt
	return nil
}
