package course

import (
	"time"

	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/authz"
)

var (
	// errors
	ErrNotFound   = errors.New("Course not found")
	ErrCodeExists = errors.New("Course code already exists")
)

type (
	// Filter narrows list queries at query-construction time.
	Filter struct {
		ProgramLeaderID *int
	}

	Repository interface {
		CreateCourse(crs Course) (Course, error)
		FilterCourses(filter Filter) ([]Course, error)
		GetCourseByID(id int) (Course, error)
		UpdateCourse(crs Course) (Course, error)
		DeleteCourse(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query lists courses; program leaders only ever see their own rows.
func (svc *Service) Query(actor authz.Actor) ([]Course, error) {
	var filter Filter
	if ownerID, scoped := authz.ListScope(actor, authz.ResourceCourse); scoped {
		filter.ProgramLeaderID = &ownerID
	}
	return svc.repo.FilterCourses(filter)
}

// QueryAll lists every course without ownership scoping (pick-list for the
// lecture form; gated by its own allow-set).
func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.FilterCourses(Filter{})
}

func (svc *Service) GetByID(actor authz.Actor, id int) (Course, error) {
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound && !authz.NotFoundVisible(actor, authz.ResourceCourse) {
			return Course{}, authz.ErrForbidden
		}
		return Course{}, err
	}
	if err := authz.AuthorizeOwner(actor, authz.ResourceCourse, authz.ActionRead, crs.OwnerID()); err != nil {
		return Course{}, err
	}
	return crs, nil
}

// Create inserts a course owned by the calling program leader.
func (svc *Service) Create(actor authz.Actor, nc NewCourse) (Course, error) {
	crs := Course{
		CourseCode:      nc.CourseCode,
		CourseName:      nc.CourseName,
		ProgramLeaderID: &actor.ID,
		CreatedAt:       time.Now().UTC(),
	}
	return svc.repo.CreateCourse(crs)
}

func (svc *Service) Update(actor authz.Actor, id int, nc NewCourse) (Course, error) {
	crs, err := svc.authorizeMutation(actor, id, authz.ActionUpdate)
	if err != nil {
		return Course{}, err
	}
	crs.CourseCode = nc.CourseCode
	crs.CourseName = nc.CourseName
	return svc.repo.UpdateCourse(crs)
}

func (svc *Service) Delete(actor authz.Actor, id int) error {
	if _, err := svc.authorizeMutation(actor, id, authz.ActionDelete); err != nil {
		return err
	}
	return svc.repo.DeleteCourse(id)
}

// authorizeMutation loads the row and applies the owner-only rule before any
// write happens; a denied caller leaves the row untouched.
func (svc *Service) authorizeMutation(actor authz.Actor, id int, act authz.Action) (Course, error) {
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound && !authz.NotFoundVisible(actor, authz.ResourceCourse) {
			return Course{}, authz.ErrForbidden
		}
		return Course{}, err
	}
	if err := authz.AuthorizeOwner(actor, authz.ResourceCourse, act, crs.OwnerID()); err != nil {
		return Course{}, err
	}
	return crs, nil
}
