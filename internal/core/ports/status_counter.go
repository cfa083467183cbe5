package ports

import (
	"context"

	"careshare/internal/core/domain/model/workflow"
)

// StatusCounter counts persisted entities of one kind.
type StatusCounter interface {
	// CountByStatus returns the number of entities of kind in status, or of
	// all entities of kind when status is nil. The figure is a snapshot and may
	// be stale by the time the caller reads it.
	CountByStatus(ctx context.Context, kind workflow.Kind, status *string) (int64, error)
}
