// Package purchaserequest provides the PurchaseRequest aggregate: a buyer's
// order for an approved product, tracked from confirmation to delivery.
//
// The package includes:
//   - PurchaseRequest: the aggregate root with the buyer contact and amount snapshot
//   - Status: a forward-only state machine with cancellation from any open state
//
// Key business rules:
//   - The amount is taken from the product price at creation and is immutable
//   - Pending -> Confirmed -> Shipped -> Delivered; skipping a step is refused
//   - Delivering a purchase sells the product in the same unit of work
package purchaserequest
