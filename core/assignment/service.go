package assignment

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrAlreadyAssigned = errors.New("Lecturer already assigned to this class and course")
)

type (
	// Filter narrows list queries; a nil LecturerID lists everything.
	Filter struct {
		LecturerID *int
	}

	Repository interface {
		CreateAssignment(a Assignment) (Assignment, error)
		FilterAssignments(filter Filter) ([]Assignment, error)
		LecturerAssignedToClass(lecturerID, classID int) (bool, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(filter Filter) ([]Assignment, error) {
	return svc.repo.FilterAssignments(filter)
}

// Create links the lecturer to the class+course pairing. Uniqueness on the
// triple is enforced by the storage constraint; the repository remaps the
// conflict to ErrAlreadyAssigned.
func (svc *Service) Create(na NewAssignment) (Assignment, error) {
	a := Assignment{
		LecturerID: na.LecturerID,
		ClassID:    na.ClassID,
		CourseID:   na.CourseID,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateAssignment(a)
}

// LecturerAssignedToClass satisfies class.AssignmentChecker.
func (svc *Service) LecturerAssignedToClass(lecturerID, classID int) (bool, error) {
	return svc.repo.LecturerAssignedToClass(lecturerID, classID)
}
