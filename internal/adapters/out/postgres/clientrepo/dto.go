// Package clientrepo provides data transfer objects and mapping functions for client persistence.
package clientrepo

import (
	"github.com/google/uuid"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"size:255"`
	Active   bool
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// LocationDTO represents the embedded delivery coordinates within the client table.
type LocationDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a client domain aggregate to its database representation.
func fromDomain(aggregate *account.Client) ClientDTO {
	return ClientDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Active: aggregate.IsActive(),
		Location: LocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
	}
}

// toDomain converts a database DTO to a client domain aggregate.
func toDomain(dto ClientDTO) (*account.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return account.RestoreClient(id, dto.Name, dto.Active, location)
}
