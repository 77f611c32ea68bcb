package echoapi

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/motebang/tlaleho/core"
	"github.com/motebang/tlaleho/core/assignment"
	"github.com/motebang/tlaleho/core/class"
	"github.com/motebang/tlaleho/core/course"
	"github.com/motebang/tlaleho/core/feedback"
	"github.com/motebang/tlaleho/core/lecture"
	"github.com/motebang/tlaleho/core/rating"
	"github.com/motebang/tlaleho/core/report"
	"github.com/motebang/tlaleho/core/user"
)

type (
	Options struct {
		Address        string
		Conf           *core.Config
		Logger         core.Logger
		DisableReqLogs bool

		// CheckDB pings the storage backend for /db-status; nil means
		// always healthy (in-memory setups).
		CheckDB func() error

		UserSvc       *user.Service
		CourseSvc     *course.Service
		ClassSvc      *class.Service
		LectureSvc    *lecture.Service
		FeedbackSvc   *feedback.Service
		RatingSvc     *rating.Service
		AssignmentSvc *assignment.Service
		ReportSvc     *report.Service

		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator, s.stop)
	s.app.HideBanner = true

	// un-authed endpoints
	s.app.GET("/", home)
	s.app.GET("/db-status", s.dbStatus)

	jwt := middleware.JWTWithConfig(newJWTConfig(conf))

	registerAuthAPI(s.app, conf, s.opts.UserSvc, s.opts.Validate)
	registerUserAPI(s.app, jwt, s.opts.UserSvc)
	registerCourseAPI(s.app, jwt, s.opts.CourseSvc, s.opts.LectureSvc, s.opts.Validate)
	registerClassAPI(s.app, jwt, s.opts.ClassSvc, s.opts.LectureSvc, s.opts.Validate)
	registerLectureAPI(s.app, jwt, s.opts.LectureSvc, s.opts.Validate)
	registerFeedbackAPI(s.app, jwt, s.opts.FeedbackSvc, s.opts.Validate)
	registerRatingAPI(s.app, jwt, s.opts.RatingSvc, s.opts.Validate)
	registerAssignmentAPI(s.app, jwt, s.opts.AssignmentSvc, s.opts.Validate)
	registerReportAPI(s.app, jwt, s.opts.ReportSvc, s.opts.Validate)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// stop is handed to the error handler as the shutdown signal for
// integrity errors.
func (s *server) stop() {
	_ = s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Tlaleho API!")
}

func (s *server) dbStatus(ctx echo.Context) error {
	if s.opts.CheckDB != nil {
		if err := s.opts.CheckDB(); err != nil {
			return ctx.JSON(http.StatusInternalServerError, echo.Map{
				"status": "Database not connected",
				"error":  err.Error(),
			})
		}
	}
	return ctx.JSON(http.StatusOK, echo.Map{"status": "Database connection successful!"})
}
