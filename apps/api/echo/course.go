package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/course"
	"github.com/motebang/tlaleho/core/lecture"
)

type courseApi struct {
	svc        *course.Service
	lectureSvc *lecture.Service
	validate   *validator.Validate
}

func registerCourseAPI(
	app *echo.Echo,
	jwt echo.MiddlewareFunc,
	svc *course.Service,
	lectureSvc *lecture.Service,
	validate *validator.Validate,
) {
	api := courseApi{svc: svc, lectureSvc: lectureSvc, validate: validate}

	// unscoped pick-list for the lecture form
	app.GET("/all-courses", api.queryAll, jwt, allow(authz.ResourceCourse, authz.ActionListAll))

	g := app.Group("/courses", jwt)
	g.GET("", api.query, allow(authz.ResourceCourse, authz.ActionList))
	g.POST("", api.create, allow(authz.ResourceCourse, authz.ActionCreate))
	g.GET("/:id", api.retrieve)
	g.PUT("/:id", api.update)
	g.DELETE("/:id", api.destroy)
	g.GET("/:id/lectures", api.queryLectures, allow(authz.ResourceCourse, authz.ActionListByCourse))
}

func (api *courseApi) query(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	courses, err := api.svc.Query(actor)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) queryAll(ctx echo.Context) error {
	courses, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying all courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "id")
	if !ok {
		return course.ErrNotFound
	}
	crs, err := api.svc.GetByID(actor, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) create(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.svc.Create(actor, data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "course": crs})
}

func (api *courseApi) update(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "id")
	if !ok {
		return course.ErrNotFound
	}
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.svc.Update(actor, id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "course": crs})
}

func (api *courseApi) destroy(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "id")
	if !ok {
		return course.ErrNotFound
	}
	if err := api.svc.Delete(actor, id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Course deleted successfully"})
}

func (api *courseApi) queryLectures(ctx echo.Context) error {
	id, ok := intParam(ctx, "id")
	if !ok {
		return course.ErrNotFound
	}
	lectures, err := api.lectureSvc.QueryByCourse(id)
	if err != nil {
		return errors.Wrap(err, "querying lectures by course")
	}
	if lectures == nil {
		lectures = []lecture.Lecture{}
	}
	return ctx.JSON(http.StatusOK, lectures)
}
