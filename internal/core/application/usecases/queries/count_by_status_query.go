package queries

import (
	"errors"

	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/guard"
)

var ErrCountByStatusQueryIsNotConstructed = errors.New(
	"CountByStatusQuery must be created via NewCountByStatusQuery constructor",
)

// CountByStatusQuery counts entities of one kind, optionally narrowed to one status.
//
// Example:
//
//	pending := "pending"
//	query, err := NewCountByStatusQuery(workflow.Product, &pending)
//	count, err := handler.Handle(ctx, query)
type CountByStatusQuery struct {
	kind   workflow.Kind
	status *string

	guard guard.ConstructorGuard
}

// NewCountByStatusQuery validates status against the closed set of kind. A nil
// status counts every entity of kind.
func NewCountByStatusQuery(kind workflow.Kind, status *string) (CountByStatusQuery, error) {
	if err := kind.Validate(); err != nil {
		return CountByStatusQuery{}, err
	}

	query := CountByStatusQuery{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}
	if status != nil {
		normalized, err := normalizeStatus(kind, *status)
		if err != nil {
			return CountByStatusQuery{}, err
		}
		query.status = &normalized
	}

	return query, nil
}

func (q CountByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountByStatusQueryIsNotConstructed)
}

func (q CountByStatusQuery) Kind() workflow.Kind {
	return q.kind
}

// Status returns the normalized status filter, or nil.
func (q CountByStatusQuery) Status() *string {
	return q.status
}
