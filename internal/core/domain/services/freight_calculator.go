package services

import (
	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Freight tier boundaries and rates, in kilometres and currency units per
// kilometre. The base fee covers everything up to the first boundary; each
// further kilometre is billed at the rate of the tier it falls into.
var (
	freightBaseFee = decimal.NewFromFloat(5.00)

	midTierLimitKm = decimal.NewFromFloat(5.0)
	midTierStartKm = decimal.NewFromFloat(2.0)
	midTierRate    = decimal.NewFromFloat(1.50)

	farTierRate = decimal.NewFromFloat(2.50)
)

// FreightCalculator is a domain service that prices the delivery leg of an
// order from the distance between the restaurant and the client.
//
// Pricing is tiered:
//   - up to 2 km: flat base fee
//   - 2 km to 5 km: base fee plus a per-kilometre rate for the distance
//     beyond 2 km
//   - beyond 5 km: the full mid tier plus a higher per-kilometre rate for
//     the distance beyond 5 km
//
// The fee is computed on the raw great-circle distance and rounded to
// currency precision once, at the end.
//
// Example usage:
//
//	calculator := NewFreightCalculator()
//	fee, err := calculator.CalculateFee(restaurant.Location(), client.Location())
//	if err != nil {
//	    // Handle invalid locations
//	    return
//	}
//	// fee is the delivery charge for the order
type FreightCalculator struct{}

// NewFreightCalculator creates a new FreightCalculator instance.
func NewFreightCalculator() FreightCalculator {
	return FreightCalculator{}
}

// CalculateFee prices the delivery between an origin and a destination.
//
// Parameters:
//   - origin: The restaurant's location
//   - destination: The client's delivery location
//
// Returns:
//   - kernel.Money: The delivery fee at currency precision
//   - error: Validation errors when either location was not constructed
func (f FreightCalculator) CalculateFee(origin, destination kernel.GeoPoint) (kernel.Money, error) {
	if err := origin.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := destination.Validate(); err != nil {
		return kernel.Money{}, err
	}

	distanceKm, err := origin.DistanceKm(destination)
	if err != nil {
		return kernel.Money{}, err
	}

	return f.FeeForDistance(distanceKm)
}

// FeeForDistance prices a delivery leg of the given length in kilometres.
func (f FreightCalculator) FeeForDistance(distanceKm float64) (kernel.Money, error) {
	distance := decimal.NewFromFloat(distanceKm)

	fee := freightBaseFee
	if distance.GreaterThan(midTierStartKm) {
		billable := decimal.Min(distance, midTierLimitKm).Sub(midTierStartKm)
		fee = fee.Add(billable.Mul(midTierRate))
	}
	if distance.GreaterThan(midTierLimitKm) {
		fee = fee.Add(distance.Sub(midTierLimitKm).Mul(farTierRate))
	}

	return kernel.NewMoney(fee)
}
