package notifier

import (
	"context"
	"log/slog"
)

// LogSink writes each message to the structured log. It is used when no
// message broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "notification_log")}
}

func (s *LogSink) Deliver(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "Workflow notification",
		"kind", msg.Kind,
		"entity_id", msg.EntityID,
		"old_status", msg.OldStatus,
		"new_status", msg.NewStatus,
		"override", msg.Override,
		"actor_id", msg.ActorID,
		"recipients", msg.Recipients,
	)
	return nil
}
