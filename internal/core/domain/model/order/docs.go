// Package order contains the Order aggregate root: line items with
// snapshotted unit prices, fixed-point pricing (items + delivery fee -
// discount, clamped at zero), and the guarded status state machine governing
// the order lifecycle.
package order
