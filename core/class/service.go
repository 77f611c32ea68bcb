package class

import (
	"time"

	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
)

var (
	// errors
	ErrNotFound        = errors.New("Class not found")
	ErrFacultyNotFound = errors.New("Faculty not found")
)

type (
	Repository interface {
		CreateClass(cls Class) (Class, error)
		QueryAllClasses() ([]Class, error)
		GetClassByID(id int) (Class, error)
		UpdateClass(cls Class) (Class, error)
		DeleteClass(id int) error

		QueryAllFaculties() ([]Faculty, error)
		GetFacultyByID(id int) (Faculty, error)
	}

	// AssignmentChecker gates lecturer read access to a class: lecturers may
	// only open classes they hold an assignment row for.
	AssignmentChecker interface {
		LecturerAssignedToClass(lecturerID, classID int) (bool, error)
	}

	Service struct {
		repo        Repository
		assignments AssignmentChecker
	}
)

func NewService(repo Repository, assignments AssignmentChecker) *Service {
	return &Service{repo: repo, assignments: assignments}
}

func (svc *Service) Query() ([]Class, error) {
	return svc.repo.QueryAllClasses()
}

func (svc *Service) GetByID(actor authz.Actor, id int) (Class, error) {
	cls, err := svc.repo.GetClassByID(id)
	if err != nil {
		return Class{}, err
	}
	if actor.Role == authz.RoleLecturer {
		assigned, err := svc.assignments.LecturerAssignedToClass(actor.ID, id)
		if err != nil {
			return Class{}, errors.Wrap(err, "checking lecturer assignment")
		}
		if !assigned {
			return Class{}, authz.ErrForbidden
		}
	}
	return cls, nil
}

func (svc *Service) Create(nc NewClass) (Class, error) {
	cls := Class{
		ClassName:               nc.ClassName,
		FacultyID:               &nc.FacultyID,
		TotalRegisteredStudents: &nc.TotalRegisteredStudents,
		Venue:                   &nc.Venue,
		ScheduledTime:           &nc.ScheduledTime,
		CreatedAt:               time.Now().UTC(),
	}
	return svc.repo.CreateClass(cls)
}

func (svc *Service) Update(id int, nc NewClass) (Class, error) {
	cls, err := svc.repo.GetClassByID(id)
	if err != nil {
		return Class{}, err
	}
	cls.ClassName = nc.ClassName
	cls.FacultyID = &nc.FacultyID
	cls.TotalRegisteredStudents = &nc.TotalRegisteredStudents
	cls.Venue = &nc.Venue
	cls.ScheduledTime = &nc.ScheduledTime
	return svc.repo.UpdateClass(cls)
}

func (svc *Service) Delete(id int) error {
	if _, err := svc.repo.GetClassByID(id); err != nil {
		return err
	}
	return svc.repo.DeleteClass(id)
}

func (svc *Service) QueryFaculties() ([]Faculty, error) {
	return svc.repo.QueryAllFaculties()
}

func (svc *Service) GetFacultyByID(id int) (Faculty, error) {
	return svc.repo.GetFacultyByID(id)
}
