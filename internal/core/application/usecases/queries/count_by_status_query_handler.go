package queries

import (
	"context"

	"careshare/internal/core/ports"
)

// CountByStatusQueryHandler answers CountByStatusQuery from the store.
type CountByStatusQueryHandler struct {
	counter ports.StatusCounter
}

func NewCountByStatusQueryHandler(counter ports.StatusCounter) CountByStatusQueryHandler {
	return CountByStatusQueryHandler{counter: counter}
}

func (h CountByStatusQueryHandler) Handle(ctx context.Context, query CountByStatusQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.counter.CountByStatus(ctx, query.Kind(), query.Status())
}
