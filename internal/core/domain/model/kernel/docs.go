// Package kernel provides the shared identity primitive of the careshare domain.
//
// The package includes:
//   - UUID: an opaque, time-ordered identifier used for every entity and actor
//
// UUID values are immutable and safe for concurrent use.
package kernel
