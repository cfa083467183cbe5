package queries

import (
	"errors"
	"fmt"
	"strings"

	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/errs"
	"careshare/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListEntitiesQueryIsNotConstructed = errors.New(
	"ListEntitiesQuery must be created via NewListEntitiesQuery constructor",
)

// Scope selects whose entities a listing covers.
type Scope int

const (
	// ScopeAll is the public catalog for listings and donate items, and the
	// administrator queue for every kind.
	ScopeAll Scope = iota
	// ScopeMine covers what the actor created: their listings, items, requests
	// and purchases.
	ScopeMine
	// ScopeReceived covers requests against the actor's listings or items,
	// which includes their sales.
	ScopeReceived
)

// ParseScope accepts "all", "mine" and "received". Empty means ScopeAll.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ScopeAll, nil
	case "mine":
		return ScopeMine, nil
	case "received":
		return ScopeReceived, nil
	default:
		return ScopeAll, errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("%q is not a scope", s))
	}
}

func (s Scope) String() string {
	switch s {
	case ScopeMine:
		return "mine"
	case ScopeReceived:
		return "received"
	default:
		return "all"
	}
}

// ListEntitiesQuery pages through entities of one kind, newest first.
//
// Example:
//
//	pending := "PENDING"
//	query, err := NewListEntitiesQuery(workflow.DonateRequest, admin, ScopeAll, &pending, 0, 0)
//	page, err := handler.Handle(ctx, query)
type ListEntitiesQuery struct {
	kind   workflow.Kind
	actor  workflow.Actor
	scope  Scope
	status *string
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListEntitiesQuery validates the shape of the listing. A zero limit means
// DefaultListLimit. Whether the actor may run it is decided by the handler.
func NewListEntitiesQuery(
	kind workflow.Kind,
	actor workflow.Actor,
	scope Scope,
	status *string,
	limit int,
	offset int,
) (ListEntitiesQuery, error) {
	if err := errors.Join(kind.Validate(), actor.Validate()); err != nil {
		return ListEntitiesQuery{}, err
	}
	if scope == ScopeReceived && isCatalog(kind) {
		return ListEntitiesQuery{}, errs.NewValueIsInvalidErrorWithCause("scope",
			fmt.Errorf("%s has no received %s", kind.Label(), scope))
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		return ListEntitiesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}
	if offset < 0 {
		return ListEntitiesQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	query := ListEntitiesQuery{
		kind:   kind,
		actor:  actor,
		scope:  scope,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}
	if status != nil {
		normalized, err := normalizeStatus(kind, *status)
		if err != nil {
			return ListEntitiesQuery{}, err
		}
		query.status = &normalized
	}
	return query, nil
}

func (q ListEntitiesQuery) Validate() error {
	return q.guard.Validate(ErrListEntitiesQueryIsNotConstructed)
}

func (q ListEntitiesQuery) Kind() workflow.Kind   { return q.kind }
func (q ListEntitiesQuery) Actor() workflow.Actor { return q.actor }
func (q ListEntitiesQuery) Scope() Scope          { return q.scope }
func (q ListEntitiesQuery) Status() *string       { return q.status }
func (q ListEntitiesQuery) Limit() int            { return q.limit }
func (q ListEntitiesQuery) Offset() int           { return q.offset }

// ListEntitiesQueryResponse is one page of a listing.
type ListEntitiesQueryResponse struct {
	Items  []EntityView `json:"items"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}
