package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/lecture"
	"github.com/motebang/tlaleho/core/rating"
)

type ratingApi struct {
	svc      *rating.Service
	validate *validator.Validate
}

func registerRatingAPI(app *echo.Echo, jwt echo.MiddlewareFunc, svc *rating.Service, validate *validator.Validate) {
	api := ratingApi{svc: svc, validate: validate}

	g := app.Group("/rating", jwt)
	g.POST("", api.submit, allow(authz.ResourceRating, authz.ActionCreate))
	g.GET("/:lecture_id", api.aggregate, allow(authz.ResourceRating, authz.ActionRead))
	g.GET("/:lecture_id/user", api.ownValue, allow(authz.ResourceRating, authz.ActionReadOwn))

	// student dashboard list
	app.GET("/user/ratings", api.queryOwn, jwt, allow(authz.ResourceRating, authz.ActionListOwn))
}

func (api *ratingApi) submit(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data rating.NewRating
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRating")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	created, err := api.svc.Submit(actor, data)
	if err != nil {
		return err
	}
	message := "Rating updated successfully"
	if created {
		message = "Rating submitted successfully"
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": message})
}

func (api *ratingApi) aggregate(ctx echo.Context) error {
	id, ok := intParam(ctx, "lecture_id")
	if !ok {
		return lecture.ErrNotFound
	}
	summary, err := api.svc.Aggregate(id)
	if err != nil {
		return errors.Wrap(err, "aggregating ratings")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *ratingApi) ownValue(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "lecture_id")
	if !ok {
		return lecture.ErrNotFound
	}
	val, err := api.svc.OwnValue(actor, id)
	if err != nil {
		return errors.Wrap(err, "getting own rating")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"user_rating": val})
}

func (api *ratingApi) queryOwn(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	rows, err := api.svc.QueryOwn(actor)
	if err != nil {
		return errors.Wrap(err, "querying own ratings")
	}
	if rows == nil {
		rows = []rating.Rating{}
	}
	return ctx.JSON(http.StatusOK, rows)
}
