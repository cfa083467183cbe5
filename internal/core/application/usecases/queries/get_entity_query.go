package queries

import (
	"errors"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/guard"
)

var ErrGetEntityQueryIsNotConstructed = errors.New(
	"GetEntityQuery must be created via NewGetEntityQuery constructor",
)

// GetEntityQuery looks up one entity on behalf of actor.
//
// Example:
//
//	query, err := NewGetEntityQuery(workflow.ExchangeRequest, id, actor)
//	view, err := handler.Handle(ctx, query)
type GetEntityQuery struct {
	kind  workflow.Kind
	id    kernel.UUID
	actor workflow.Actor

	guard guard.ConstructorGuard
}

func NewGetEntityQuery(kind workflow.Kind, id kernel.UUID, actor workflow.Actor) (GetEntityQuery, error) {
	if err := errors.Join(kind.Validate(), id.Validate(), actor.Validate()); err != nil {
		return GetEntityQuery{}, err
	}
	return GetEntityQuery{
		kind:  kind,
		id:    id,
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetEntityQuery) Validate() error {
	return q.guard.Validate(ErrGetEntityQueryIsNotConstructed)
}

func (q GetEntityQuery) Kind() workflow.Kind   { return q.kind }
func (q GetEntityQuery) ID() kernel.UUID       { return q.id }
func (q GetEntityQuery) Actor() workflow.Actor { return q.actor }
