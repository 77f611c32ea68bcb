package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/user"
)

type userApi struct {
	svc *user.Service
}

func registerUserAPI(app *echo.Echo, jwt echo.MiddlewareFunc, svc *user.Service) {
	api := userApi{svc: svc}

	g := app.Group("/users", jwt)
	g.GET("", api.query, allow(authz.ResourceUser, authz.ActionList))
	g.GET("/:id", api.retrieve, allow(authz.ResourceUser, authz.ActionRead))
}

func (api *userApi) query(ctx echo.Context) error {
	users, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	summaries := make([]user.Summary, 0, len(users))
	for _, usr := range users {
		summaries = append(summaries, usr.Summary())
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *userApi) retrieve(ctx echo.Context) error {
	id, ok := intParam(ctx, "id")
	if !ok {
		return user.ErrNotFound
	}
	usr, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr.Summary())
}
