package feedback

import (
	"time"

	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
)

type (
	Repository interface {
		CreateFeedback(fb Feedback) (Feedback, error)
		QueryFeedbackByLecture(lectureID int) ([]Feedback, error)
	}

	// LectureChecker verifies the target lecture exists before a row is
	// appended.
	LectureChecker interface {
		Exists(id int) error
	}

	Service struct {
		repo     Repository
		lectures LectureChecker
	}
)

func NewService(repo Repository, lectures LectureChecker) *Service {
	return &Service{repo: repo, lectures: lectures}
}

func (svc *Service) Create(actor authz.Actor, nf NewFeedback) (Feedback, error) {
	if err := svc.lectures.Exists(nf.LectureID); err != nil {
		return Feedback{}, err
	}
	fb := Feedback{
		LectureID:    nf.LectureID,
		UserID:       actor.ID,
		FeedbackText: nf.FeedbackText,
		CreatedAt:    time.Now().UTC(),
	}
	fb, err := svc.repo.CreateFeedback(fb)
	return fb, errors.Wrap(err, "creating feedback")
}

func (svc *Service) QueryByLecture(lectureID int) ([]Feedback, error) {
	return svc.repo.QueryFeedbackByLecture(lectureID)
}
