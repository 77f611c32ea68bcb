package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/lecture"
)

type lectureApi struct {
	svc      *lecture.Service
	validate *validator.Validate
}

func registerLectureAPI(app *echo.Echo, jwt echo.MiddlewareFunc, svc *lecture.Service, validate *validator.Validate) {
	api := lectureApi{svc: svc, validate: validate}

	g := app.Group("/lectures", jwt)
	g.GET("", api.query, allow(authz.ResourceLecture, authz.ActionList))
	g.POST("", api.create, allow(authz.ResourceLecture, authz.ActionCreate))
	g.GET("/:id", api.retrieve)
	g.PUT("/:id", api.update)
	g.DELETE("/:id", api.destroy)
}

func (api *lectureApi) query(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	lectures, err := api.svc.Query(actor)
	if err != nil {
		return errors.Wrap(err, "querying lectures")
	}
	if lectures == nil {
		lectures = []lecture.Lecture{}
	}
	return ctx.JSON(http.StatusOK, lectures)
}

func (api *lectureApi) retrieve(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "id")
	if !ok {
		return lecture.ErrNotFound
	}
	lec, err := api.svc.GetByID(actor, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lec)
}

func (api *lectureApi) create(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data lecture.NewLecture
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLecture")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	lec, err := api.svc.Create(actor, data)
	if err != nil {
		return errors.Wrap(err, "creating lecture")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "id": lec.ID})
}

func (api *lectureApi) update(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "id")
	if !ok {
		return lecture.ErrNotFound
	}
	var data lecture.NewLecture
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLecture")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Update(actor, id, data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Lecture updated successfully"})
}

func (api *lectureApi) destroy(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "id")
	if !ok {
		return lecture.ErrNotFound
	}
	if err := api.svc.Delete(actor, id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Lecture deleted successfully"})
}
