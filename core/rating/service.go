package rating

import (
	"time"

	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
)

var (
	// errors
	ErrNotFound = errors.New("Rating not found")
)

type (
	Repository interface {
		// UpsertRating atomically inserts the row or overwrites the existing
		// (lecture_id, user_id) value; created reports which happened.
		UpsertRating(r Rating) (created bool, err error)
		GetRatingValue(lectureID, userID int) (int, error)
		AggregateByLecture(lectureID int) (Summary, error)
		QueryRatingsByUser(userID int) ([]Rating, error)
	}

	// LectureChecker verifies the target lecture exists before a rating is
	// recorded.
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

// Submit records the student's score: insert on first submission, overwrite
// on re-rating (last write wins, no history).
func (svc *Service) Submit(actor authz.Actor, nr NewRating) (created bool, err error) {
	if err := svc.lectures.Exists(nr.LectureID); err != nil {
		return false, err
	}
	r := Rating{
		LectureID: nr.LectureID,
		UserID:    actor.ID,
		Rating:    nr.Rating,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.UpsertRating(r)
}

// Aggregate computes the per-lecture view by scanning matching rows; an
// empty set reports a null average rather than erroring.
func (svc *Service) Aggregate(lectureID int) (Summary, error) {
	return svc.repo.AggregateByLecture(lectureID)
}

// OwnValue returns the calling student's rating for the lecture, or nil if
// they have not rated it.
func (svc *Service) OwnValue(actor authz.Actor, lectureID int) (*int, error) {
	val, err := svc.repo.GetRatingValue(lectureID, actor.ID)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &val, nil
}

// QueryOwn lists the calling student's ratings for their dashboard.
func (svc *Service) QueryOwn(actor authz.Actor) ([]Rating, error) {
	return svc.repo.QueryRatingsByUser(actor.ID)
}
