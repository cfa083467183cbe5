// Package notifier delivers workflow events to interested users outside the
// request path. AsyncNotifier queues events and hands them to a Sink from a
// small pool of workers; sinks publish to NATS or to the structured log.
package notifier

import (
	"context"
	"strings"
	"time"

	"careshare/internal/core/domain/model/workflow"
)

// Sink delivers one message. Implementations must honour ctx cancellation.
type Sink interface {
	Deliver(ctx context.Context, msg Message) error
}

// Message is the wire form of a workflow event.
type Message struct {
	Kind       string    `json:"kind"`
	EntityID   string    `json:"entity_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	Override   bool      `json:"override,omitempty"`
	ActorID    string    `json:"actor_id"`
	Recipients []string  `json:"recipients"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewMessage(event workflow.Event) Message {
	recipients := make([]string, 0, len(event.Recipients))
	for _, r := range event.Recipients {
		recipients = append(recipients, r.String())
	}

	return Message{
		Kind:       event.Transition.Kind.String(),
		EntityID:   event.Transition.EntityID.String(),
		OldStatus:  event.Transition.From,
		NewStatus:  event.Transition.To,
		Override:   event.Transition.Override,
		ActorID:    event.ActorID.String(),
		Recipients: recipients,
		OccurredAt: event.OccurredAt,
	}
}

// Subject returns "<prefix>.<kind>.<new status>", e.g. "careshare.donate_request.approved".
func (m Message) Subject(prefix string) string {
	parts := []string{m.Kind, strings.ToLower(m.NewStatus)}
	if prefix = strings.Trim(prefix, "."); prefix != "" {
		parts = append([]string{prefix}, parts...)
	}
	return strings.Join(parts, ".")
}
