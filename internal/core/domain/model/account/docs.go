// Package account holds the Client and Restaurant aggregates as the order
// core sees them: identity, active state, coordinates, opening hours, and the
// restaurant rating aggregate. Account management itself (registration,
// credentials, addresses, phones) is an external concern.
package account
