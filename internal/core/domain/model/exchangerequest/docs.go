// Package exchangerequest provides the ExchangeRequest aggregate: an offer to
// swap an item for an approved product listing.
//
// Key business rules:
//   - The requester never owns the targeted product
//   - Only Pending requests can be decided or withdrawn
//   - An offer carries between MinImages and MaxImages pictures
package exchangerequest
