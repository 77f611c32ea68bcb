package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/feedback"
	"github.com/motebang/tlaleho/core/lecture"
)

type feedbackApi struct {
	svc      *feedback.Service
	validate *validator.Validate
}

func registerFeedbackAPI(app *echo.Echo, jwt echo.MiddlewareFunc, svc *feedback.Service, validate *validator.Validate) {
	api := feedbackApi{svc: svc, validate: validate}

	g := app.Group("/feedback", jwt)
	g.POST("", api.create, allow(authz.ResourceFeedback, authz.ActionCreate))
	g.GET("/:lecture_id", api.queryByLecture, allow(authz.ResourceFeedback, authz.ActionList))
}

func (api *feedbackApi) create(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data feedback.NewFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeedback")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Create(actor, data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Feedback submitted successfully"})
}

func (api *feedbackApi) queryByLecture(ctx echo.Context) error {
	id, ok := intParam(ctx, "lecture_id")
	if !ok {
		return lecture.ErrNotFound
	}
	rows, err := api.svc.QueryByLecture(id)
	if err != nil {
		return errors.Wrap(err, "querying feedback")
	}
	if rows == nil {
		rows = []feedback.Feedback{}
	}
	return ctx.JSON(http.StatusOK, rows)
}
