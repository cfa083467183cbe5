package http

import (
	"errors"
	"net/http"
	"strings"

	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "careshare.actor"

var errMissingToken = errors.New("authorization is missing")

// Authenticate resolves the bearer token of every request through identity
// and stores the actor on the echo context.
func Authenticate(identity ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return writeError(ctx, errMissingToken)
			}
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "expected 'Bearer <token>'",
				})
			}

			actor, err := identity.ResolveActor(ctx.Request().Context(), token)
			if err != nil {
				if !errors.Is(err, ErrInvalidToken) {
					err = errors.Join(ErrInvalidToken, err)
				}
				return writeError(ctx, err)
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// RequireAdmin rejects non administrators. It must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, err := actorFrom(ctx)
			if err != nil {
				return writeError(ctx, err)
			}
			if !actor.IsAdmin() {
				return writeError(ctx, errs.NewForbiddenError(ctx.Path(), actor.Role().String()))
			}
			return next(ctx)
		}
	}
}

func actorFrom(ctx echo.Context) (workflow.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(workflow.Actor)
	if !ok {
		return workflow.Actor{}, errMissingToken
	}
	return actor, nil
}
