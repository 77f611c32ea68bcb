package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/motebang/tlaleho/apps/api/echo"
	"github.com/motebang/tlaleho/core"
	"github.com/motebang/tlaleho/core/assignment"
	"github.com/motebang/tlaleho/core/class"
	"github.com/motebang/tlaleho/core/course"
	"github.com/motebang/tlaleho/core/feedback"
	"github.com/motebang/tlaleho/core/lecture"
	"github.com/motebang/tlaleho/core/rating"
	"github.com/motebang/tlaleho/core/report"
	"github.com/motebang/tlaleho/core/user"
	emailsvc "github.com/motebang/tlaleho/services/email"
	logsvc "github.com/motebang/tlaleho/services/logger"
	"github.com/motebang/tlaleho/storage/database"
	mysqlrepos "github.com/motebang/tlaleho/storage/database/mysql"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %+v", err)
	}

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		rollbarLogger := logsvc.NewRollbarLogger(std, conf)
		rollbarLogger.Enable(true)
		logger = rollbarLogger
	}

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error(fmt.Sprintf("closing database: %v", err), err)
		}
	}()
	if err := database.EnsureSchema(db); err != nil {
		logger.Fatal(fmt.Sprintf("ensuring schema: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	usrSvc := user.NewService(conf, mysqlrepos.NewUserRepository(db), mailSvc)
	courseSvc := course.NewService(mysqlrepos.NewCourseRepository(db))
	assignmentSvc := assignment.NewService(mysqlrepos.NewAssignmentRepository(db))
	classSvc := class.NewService(mysqlrepos.NewClassRepository(db), assignmentSvc)
	lectureSvc := lecture.NewService(mysqlrepos.NewLectureRepository(db))
	feedbackSvc := feedback.NewService(mysqlrepos.NewFeedbackRepository(db), lectureSvc)
	ratingSvc := rating.NewService(mysqlrepos.NewRatingRepository(db), lectureSvc)
	reportSvc := report.NewService(mysqlrepos.NewReportRepository(db))

	validate, translator := core.NewValidator()
	user.RegisterValidators(validate, translator)

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("%s API starting on %s (env %s)", conf.AppName, conf.Server.Addr(), conf.Env))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(&echoapi.Options{
		Address:       conf.Server.Addr(),
		Conf:          conf,
		Logger:        logger,
		CheckDB:       func() error { return database.Ping(db) },
		UserSvc:       usrSvc,
		CourseSvc:     courseSvc,
		ClassSvc:      classSvc,
		LectureSvc:    lectureSvc,
		FeedbackSvc:   feedbackSvc,
		RatingSvc:     ratingSvc,
		AssignmentSvc: assignmentSvc,
		ReportSvc:     reportSvc,
		Validate:      validate,
		Translator:    translator,
	})

	go server.Start()

	// =========================================================================
	// Shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	sig := <-shutdown
	logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

	// give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Fatal(fmt.Sprintf("could not stop server gracefully: %v", err), err)
	}
}
