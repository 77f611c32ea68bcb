package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/motebang/tlaleho/core/authz"
)

type (
	Repository interface {
		ProgramStats(programLeaderID int) (Stats, error)
		CoursePerformance(programLeaderID int) ([]CoursePerformance, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ProgramReport builds the derived view for one program leader; leaders can
// only ever read their own.
func (svc *Service) ProgramReport(actor authz.Actor, programLeaderID int) (ProgramReport, error) {
	if err := authz.AuthorizeOwner(actor, authz.ResourceReport, authz.ActionRead, programLeaderID); err != nil {
		return ProgramReport{}, err
	}

	stats, err := svc.repo.ProgramStats(programLeaderID)
	if err != nil {
		return ProgramReport{}, err
	}
	perf, err := svc.repo.CoursePerformance(programLeaderID)
	if err != nil {
		return ProgramReport{}, err
	}
	if perf == nil {
		perf = []CoursePerformance{}
	}
	return ProgramReport{ProgramStats: stats, CoursePerformance: perf}, nil
}

// Generate acknowledges a report run with a fresh report id. Rendering and
// delivery happen out of band.
func (svc *Service) Generate(actor authz.Actor, req GenerateRequest) (reportID, message string, err error) {
	if err := authz.AuthorizeOwner(actor, authz.ResourceReport, authz.ActionCreate, req.ProgramLeaderID); err != nil {
		return "", "", err
	}
	reportID = uuid.New().String()
	message = fmt.Sprintf("Report type %q generated successfully!", req.ReportType)
	return reportID, message, nil
}
