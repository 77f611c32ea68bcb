package echoapi

import (
	"net/http"
	"reflect"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core"
	"github.com/motebang/tlaleho/core/assignment"
	"github.com/motebang/tlaleho/core/authz"
	"github.com/motebang/tlaleho/core/class"
	"github.com/motebang/tlaleho/core/course"
	"github.com/motebang/tlaleho/core/lecture"
	"github.com/motebang/tlaleho/core/rating"
	"github.com/motebang/tlaleho/core/user"
)

var (
	errTokenRequired = "Access token required"
	errTokenInvalid  = "Invalid or expired token"

	// sentinelStatus maps the domain sentinel errors to HTTP statuses; the
	// response body carries the sentinel's own message.
	sentinelStatus = map[error]int{
		authz.ErrForbidden:            http.StatusForbidden,
		authz.ErrUnauthorized:         http.StatusUnauthorized,
		user.ErrNotFound:              http.StatusNotFound,
		course.ErrNotFound:            http.StatusNotFound,
		class.ErrNotFound:             http.StatusNotFound,
		class.ErrFacultyNotFound:      http.StatusNotFound,
		lecture.ErrNotFound:           http.StatusNotFound,
		rating.ErrNotFound:            http.StatusNotFound,
		user.ErrEmailExists:           http.StatusBadRequest,
		course.ErrCodeExists:          http.StatusBadRequest,
		assignment.ErrAlreadyAssigned: http.StatusBadRequest,
	}
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how
// to handle our errors. signalShutdown is called in order to gracefully
// shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		cause := errors.Cause(err)
		// Guard the map lookup: non-comparable error types (e.g. the
		// slice-typed validator.ValidationErrors) panic when used as a
		// map key; they are handled by the type switch below.
		var status int
		var isSentinel bool
		if t := reflect.TypeOf(cause); t == nil || t.Comparable() {
			status, isSentinel = sentinelStatus[cause]
		}
		if isSentinel {
			code = status
			message = cause.Error()
		} else {
			switch origErr := cause.(type) {
			case *echo.HTTPError:
				if origErr == middleware.ErrJWTMissing {
					code = http.StatusUnauthorized
					message = errTokenRequired
					break
				}
				if origErr.Code == http.StatusUnauthorized && origErr.Internal != nil {
					// the JWT middleware rejected the presented token
					code = http.StatusForbidden
					message = errTokenInvalid
					break
				}
				if origErr.Internal != nil {
					if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
						origErr = herr
					}
				}
				code = origErr.Code
				message = origErr.Message
			case validator.ValidationErrors:
				fldErrs := make(map[string]string, len(origErr))
				for _, vErr := range origErr {
					fldErrs[vErr.Field()] = vErr.Translate(translator)
				}
				code = http.StatusBadRequest
				message = fldErrs
			case *core.ValidationError:
				if origErr.Fields != nil {
					fldErrs := make(map[string]string, len(origErr.Fields))
					for _, fErr := range origErr.Fields {
						fldErrs[fErr.Field] = fErr.Error
					}
					message = fldErrs
				} else {
					message = origErr.Error()
				}
				code = http.StatusBadRequest
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg

				var usr user.User
				if claims, cErr := getContextClaims(ctx); cErr == nil {
					usr.Name = claims.Name
					usr.Email = claims.Email
					usr.Role = claims.Role
				}
				logger.Error(msg, errors.Wrap(err, msg), usr)

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		message = echo.Map{"error": message}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
