package ports

import (
	"context"

	"careshare/internal/core/domain/model/workflow"
)

// IdentityProvider resolves the acting principal behind a bearer token.
type IdentityProvider interface {
	ResolveActor(ctx context.Context, bearerToken string) (workflow.Actor, error)
}
