package lecture

import (
	"time"

	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
)

var (
	// errors
	ErrNotFound = errors.New("Lecture not found")
)

type (
	// Filter narrows list queries at query-construction time.
	Filter struct {
		LecturerID *int
		ClassID    *int
		CourseID   *int
	}

	Repository interface {
		CreateLecture(lec Lecture) (Lecture, error)
		FilterLectures(filter Filter) ([]Lecture, error)
		GetLectureByID(id int) (Lecture, error)
		UpdateLecture(lec Lecture) (Lecture, error)
		DeleteLecture(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query lists lecture reports; lecturers only ever see their own rows.
func (svc *Service) Query(actor authz.Actor) ([]Lecture, error) {
	var filter Filter
	if ownerID, scoped := authz.ListScope(actor, authz.ResourceLecture); scoped {
		filter.LecturerID = &ownerID
	}
	return svc.repo.FilterLectures(filter)
}

func (svc *Service) QueryByClass(classID int) ([]Lecture, error) {
	return svc.repo.FilterLectures(Filter{ClassID: &classID})
}

func (svc *Service) QueryByCourse(courseID int) ([]Lecture, error) {
	return svc.repo.FilterLectures(Filter{CourseID: &courseID})
}

func (svc *Service) GetByID(actor authz.Actor, id int) (Lecture, error) {
	lec, err := svc.repo.GetLectureByID(id)
	if err != nil {
		return Lecture{}, err
	}
	if err := authz.AuthorizeOwner(actor, authz.ResourceLecture, authz.ActionRead, lec.OwnerID()); err != nil {
		return Lecture{}, err
	}
	return lec, nil
}

// Exists reports whether a lecture row is present; feedback and rating
// creation depend on it.
func (svc *Service) Exists(id int) error {
	_, err := svc.repo.GetLectureByID(id)
	return err
}

// Create inserts a report owned by the calling lecturer.
func (svc *Service) Create(actor authz.Actor, nl NewLecture) (Lecture, error) {
	lec := Lecture{
		ClassID:               nl.ClassID,
		CourseID:              nl.CourseID,
		LecturerID:            actor.ID,
		WeekOfReporting:       nl.WeekOfReporting,
		DateOfLecture:         nl.DateOfLecture,
		ActualStudentsPresent: nl.ActualStudentsPresent,
		TopicTaught:           nl.TopicTaught,
		LearningOutcomes:      nl.LearningOutcomes,
		Recommendations:       nl.Recommendations,
		CreatedAt:             time.Now().UTC(),
	}
	return svc.repo.CreateLecture(lec)
}

func (svc *Service) Update(actor authz.Actor, id int, nl NewLecture) (Lecture, error) {
	lec, err := svc.authorizeMutation(actor, id, authz.ActionUpdate)
	if err != nil {
		return Lecture{}, err
	}
	lec.ClassID = nl.ClassID
	lec.CourseID = nl.CourseID
	lec.WeekOfReporting = nl.WeekOfReporting
	lec.DateOfLecture = nl.DateOfLecture
	lec.ActualStudentsPresent = nl.ActualStudentsPresent
	lec.TopicTaught = nl.TopicTaught
	lec.LearningOutcomes = nl.LearningOutcomes
	lec.Recommendations = nl.Recommendations
	return svc.repo.UpdateLecture(lec)
}

func (svc *Service) Delete(actor authz.Actor, id int) error {
	if _, err := svc.authorizeMutation(actor, id, authz.ActionDelete); err != nil {
		return err
	}
	return svc.repo.DeleteLecture(id)
}

// authorizeMutation loads the row and applies the owner-or-admin rule before
// any write happens; a denied caller leaves the row untouched.
func (svc *Service) authorizeMutation(actor authz.Actor, id int, act authz.Action) (Lecture, error) {
	lec, err := svc.repo.GetLectureByID(id)
	if err != nil {
		return Lecture{}, err
	}
	if err := authz.AuthorizeOwner(actor, authz.ResourceLecture, act, lec.OwnerID()); err != nil {
		return Lecture{}, err
	}
	return lec, nil
}
