// Package errs holds the errors the workflow engine reports. Callers branch on
// the sentinels with errors.Is; the struct types carry the details that end up
// in log lines and HTTP problem bodies.
//
// Field errors come from constructors and value objects. ValueIsRequiredError,
// ValueIsInvalidError and ValueIsOutOfRangeError name the offending field.
//
// Workflow denials leave the store untouched:
//   - ForbiddenError: the actor lacks the role an action needs, such as an
//     administrator for moderation or the owner of the target for a decision.
//   - InvalidStateError: the current status has no edge for the requested
//     action, for example shipping a purchase that was never confirmed.
//   - DuplicateRequestError: the requester already holds an active request for
//     the same item.
//   - TargetUnavailableError: the listing or item a request points at is no
//     longer approved. A cascade that hits it rolls the primary change back.
//   - ObjectNotFoundError: the entity is missing, or hidden from the actor.
//
// StoreConflictError means another transaction won a lock or a serialization
// check. It is the only error the command handlers retry; once retries run
// out it reaches the caller as-is. NotifierFailureError is logged and never
// fails a committed transition.
package errs
