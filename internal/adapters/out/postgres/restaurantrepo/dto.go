// Package restaurantrepo provides data transfer objects and mapping functions for restaurant persistence.
package restaurantrepo

import (
	"github.com/google/uuid"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
// Rating is nullable: a restaurant without reviews has no rating at all.
type RestaurantDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"size:255"`
	Active   bool
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	OpensAt  int
	ClosesAt int
	Rating   *float64
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// LocationDTO represents the embedded coordinates within the restaurant table.
type LocationDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *account.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Active: aggregate.IsActive(),
		Location: LocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		OpensAt:  aggregate.OpensAt(),
		ClosesAt: aggregate.ClosesAt(),
		Rating:   aggregate.Rating(),
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*account.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return account.RestoreRestaurant(
		id, dto.Name, dto.Active, location,
		dto.OpensAt, dto.ClosesAt, dto.Rating,
	)
}
