package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/assignment"
	"github.com/motebang/tlaleho/core/authz"
)

type assignmentApi struct {
	svc      *assignment.Service
	validate *validator.Validate
}

func registerAssignmentAPI(app *echo.Echo, jwt echo.MiddlewareFunc, svc *assignment.Service, validate *validator.Validate) {
	api := assignmentApi{svc: svc, validate: validate}

	g := app.Group("/lecturer-assignments", jwt)
	g.GET("", api.query, allow(authz.ResourceAssignment, authz.ActionList))
	g.POST("", api.create, allow(authz.ResourceAssignment, authz.ActionCreate))
}

func (api *assignmentApi) query(ctx echo.Context) error {
	var filter assignment.Filter
	if raw := ctx.QueryParam("lecturer_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err == nil {
			filter.LecturerID = &id
		}
	}
	rows, err := api.svc.Query(filter)
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	if rows == nil {
		rows = []assignment.Assignment{}
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "id": a.ID})
}
