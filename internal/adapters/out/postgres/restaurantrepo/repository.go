package restaurantrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *account.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing restaurant, including its derived rating. The
// rating column is written explicitly so it can be set back to NULL.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *account.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":               dto.Name,
			"active":             dto.Active,
			"location_latitude":  dto.Location.Latitude,
			"location_longitude": dto.Location.Longitude,
			"opens_at":           dto.OpensAt,
			"closes_at":          dto.ClosesAt,
			"rating":             dto.Rating,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*account.Restaurant, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a restaurant by ID and locks its row for the rest
// of the transaction, serializing concurrent rating recomputations.
func (r *GormRestaurantRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*account.Restaurant, error) {
	return r.get(ctx, id, true)
}

func (r *GormRestaurantRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*account.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RestaurantDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every restaurant, ordered by name.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*account.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*account.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		restaurant, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}
