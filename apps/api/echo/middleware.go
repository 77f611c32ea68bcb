package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
)

// allow gates a route on the policy table: the caller's role must be in the
// allow-set for resource × action. Ownership rules run later, in the
// services, once the row is loaded.
func allow(res authz.Resource, act authz.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, err := getContextActor(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context actor")
			}
			if err := authz.Authorize(actor, res, act); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}

// intParam parses a numeric path parameter; ok is false for anything that is
// not an id.
func intParam(ctx echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}
