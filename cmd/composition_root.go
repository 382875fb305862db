package cmd

import (
	"gorm.io/gorm"

	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
)

// CompositionRoot wires the application use cases to their infrastructure
// dependencies.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewFreightCalculator())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	return commands.NewCreateReviewCommandHandler(c.reviewUoWFactory(), services.NewRatingAggregator())
}

func (c *CompositionRoot) CreateEditReviewCommandHandler() commands.EditReviewCommandHandler {
	return commands.NewEditReviewCommandHandler(c.reviewUoWFactory(), services.NewRatingAggregator())
}

func (c *CompositionRoot) CreateRespondReviewCommandHandler() commands.RespondReviewCommandHandler {
	return commands.NewRespondReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateDeleteReviewCommandHandler() commands.DeleteReviewCommandHandler {
	return commands.NewDeleteReviewCommandHandler(c.reviewUoWFactory(), services.NewRatingAggregator())
}

func (c *CompositionRoot) CreateReconcileRatingsCommandHandler() commands.ReconcileRatingsCommandHandler {
	return commands.NewReconcileRatingsCommandHandler(c.reviewUoWFactory(), services.NewRatingAggregator())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByClientQueryHandler() queries.GetOrdersByClientQueryHandler {
	return queries.NewGetOrdersByClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByRestaurantQueryHandler() queries.GetOrdersByRestaurantQueryHandler {
	return queries.NewGetOrdersByRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantRatingQueryHandler() queries.GetRestaurantRatingQueryHandler {
	return queries.NewGetRestaurantRatingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewsByRestaurantQueryHandler() queries.GetReviewsByRestaurantQueryHandler {
	return queries.NewGetReviewsByRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
