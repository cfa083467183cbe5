// Package services provides domain services for the marketplace status workflow.
// They hold the rules that span more than one aggregate and never touch storage.
//
// The package includes:
//   - TransitionValidator: decides whether an actor may perform an action on an entity
//   - CascadeResolver: maps a transition to the mutations it requires on linked entities
//
// Both services are stateless and safe for concurrent use. Callers load the
// aggregates under lock, ask the validator, mutate, then ask the resolver.
package services
