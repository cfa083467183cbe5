// Package donaterequest provides the DonateRequest aggregate.
//
// Key business rules:
//   - A request references exactly one donate item and one requester
//   - Only one Pending or Approved request may exist per (item, requester) pair
//   - Requests are decided once; the requester may withdraw while Pending
package donaterequest
