package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/class"
	"github.com/motebang/tlaleho/core/lecture"
)

type classApi struct {
	svc        *class.Service
	lectureSvc *lecture.Service
	validate   *validator.Validate
}

func registerClassAPI(
	app *echo.Echo,
	jwt echo.MiddlewareFunc,
	svc *class.Service,
	lectureSvc *lecture.Service,
	validate *validator.Validate,
) {
	api := classApi{svc: svc, lectureSvc: lectureSvc, validate: validate}

	// unscoped pick-list for the lecture form
	app.GET("/all-classes", api.queryAll, jwt, allow(authz.ResourceClass, authz.ActionListAll))

	// read-only reference data
	app.GET("/faculties", api.queryFaculties, jwt, allow(authz.ResourceFaculty, authz.ActionList))
	app.GET("/faculties/:id", api.retrieveFaculty, jwt, allow(authz.ResourceFaculty, authz.ActionRead))

	g := app.Group("/classes", jwt)
	g.GET("", api.query, allow(authz.ResourceClass, authz.ActionList))
	g.POST("", api.create, allow(authz.ResourceClass, authz.ActionCreate))
	g.GET("/:id", api.retrieve, allow(authz.ResourceClass, authz.ActionRead))
	g.PUT("/:id", api.update, allow(authz.ResourceClass, authz.ActionUpdate))
	g.DELETE("/:id", api.destroy, allow(authz.ResourceClass, authz.ActionDelete))
	g.GET("/:id/lectures", api.queryLectures, allow(authz.ResourceClass, authz.ActionListByClass))
}

func (api *classApi) query(ctx echo.Context) error {
	classes, err := api.svc.Query()
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	if classes == nil {
		classes = []class.Class{}
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *classApi) queryAll(ctx echo.Context) error {
	return api.query(ctx)
}

func (api *classApi) retrieve(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "id")
	if !ok {
		return class.ErrNotFound
	}
	cls, err := api.svc.GetByID(actor, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) create(ctx echo.Context) error {
	var data class.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cls, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "class": cls})
}

func (api *classApi) update(ctx echo.Context) error {
	id, ok := intParam(ctx, "id")
	if !ok {
		return class.ErrNotFound
	}
	var data class.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cls, err := api.svc.Update(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "class": cls})
}

func (api *classApi) destroy(ctx echo.Context) error {
	id, ok := intParam(ctx, "id")
	if !ok {
		return class.ErrNotFound
	}
	if err := api.svc.Delete(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Class deleted successfully"})
}

func (api *classApi) queryLectures(ctx echo.Context) error {
	id, ok := intParam(ctx, "id")
	if !ok {
		return class.ErrNotFound
	}
	lectures, err := api.lectureSvc.QueryByClass(id)
	if err != nil {
		return errors.Wrap(err, "querying lectures by class")
	}
	if lectures == nil {
		lectures = []lecture.Lecture{}
	}
	return ctx.JSON(http.StatusOK, lectures)
}

func (api *classApi) queryFaculties(ctx echo.Context) error {
	faculties, err := api.svc.QueryFaculties()
	if err != nil {
		return errors.Wrap(err, "querying faculties")
	}
	if faculties == nil {
		faculties = []class.Faculty{}
	}
	return ctx.JSON(http.StatusOK, faculties)
}

func (api *classApi) retrieveFaculty(ctx echo.Context) error {
	id, ok := intParam(ctx, "id")
	if !ok {
		return class.ErrFacultyNotFound
	}
	fac, err := api.svc.GetFacultyByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fac)
}
