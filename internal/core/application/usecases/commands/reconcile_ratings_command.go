package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrReconcileRatingsCommandIsNotConstructed = errors.New(
	"ReconcileRatingsCommand must be created via NewReconcileRatingsCommand constructor",
)

// ReconcileRatingsCommand triggers a full recomputation of every restaurant's
// rating from its stored reviews. Ratings are normally maintained
// incrementally with each review mutation; this command repairs any drift.
//
// Example:
//
//	cmd := NewReconcileRatingsCommand()
//	handler := NewReconcileRatingsCommandHandler(uowFactory, aggregator)
//	err := handler.Handle(ctx, cmd)
type ReconcileRatingsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRatingsCommand creates a new command to trigger rating reconciliation.
func NewReconcileRatingsCommand() ReconcileRatingsCommand {
	return ReconcileRatingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileRatingsCommand) Validate() error {
	return c.guard.Validate(
		ErrReconcileRatingsCommandIsNotConstructed,
	)
}
