package ports

import (
	"context"

	"careshare/internal/core/domain/model/workflow"
)

// Notifier accepts transition events for delivery to their recipients.
//
// Notify must not block on the transport. An error means the event was not
// accepted (queue full, notifier stopped) and is only ever logged by callers;
// it never fails or reverts the transition that produced the event.
type Notifier interface {
	Notify(ctx context.Context, event workflow.Event) error
}
