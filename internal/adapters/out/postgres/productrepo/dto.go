// Package productrepo provides data transfer objects and mapping functions for product persistence.
// Stock writes are guarded by an optimistic version column so that concurrent
// reservations cannot oversell a product.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"size:255"`
	Description  string
	Price        decimal.Decimal `gorm:"type:decimal(12,2)"`
	Stock        int
	Available    bool
	Version      int
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		Price:        aggregate.Price().Decimal(),
		Stock:        aggregate.Stock(),
		Available:    aggregate.IsAvailable(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, restaurantID, dto.Name, dto.Description, price, dto.Stock, dto.Version)
}
