package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/report"
)

type reportApi struct {
	svc      *report.Service
	validate *validator.Validate
}

func registerReportAPI(app *echo.Echo, jwt echo.MiddlewareFunc, svc *report.Service, validate *validator.Validate) {
	api := reportApi{svc: svc, validate: validate}

	g := app.Group("/program-reports", jwt)
	g.GET("/:programLeaderId", api.retrieve)
	g.POST("/generate", api.generate)
}

func (api *reportApi) retrieve(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	id, ok := intParam(ctx, "programLeaderId")
	if !ok {
		return authz.ErrForbidden
	}
	rep, err := api.svc.ProgramReport(actor, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rep)
}

func (api *reportApi) generate(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data report.GenerateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	reportID, message, err := api.svc.Generate(actor, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": message, "reportId": reportID})
}
