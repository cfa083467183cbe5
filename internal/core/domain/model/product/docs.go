// Package product provides the Product aggregate: a listing offered by its owner
// for sale or exchange.
//
// The package includes:
//   - Product: the aggregate root holding identity, owner, price and review outcome
//   - Status: the listing state machine (Pending -> Approved -> Sold, Pending -> Rejected)
//
// Key business rules:
//   - Only administrators review listings; the review itself is enforced by the
//     transition validator, the status rules are enforced here
//   - Only Approved listings accept new exchange or purchase requests
//   - Sold is reached only when a purchase of the listing is delivered
package product
