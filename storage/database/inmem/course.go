package inmemdb

import (
	"sort"

	"github.com/motebang/tlaleho/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db}
}

// withLeader fills the fields the SQL implementation joins in.
func (repo *courseRepository) withLeader(crs course.Course) course.Course {
	if crs.ProgramLeaderID != nil {
		if usr, ok := repo.db.users[*crs.ProgramLeaderID]; ok {
			crs.ProgramLeaderName = &usr.Name
			crs.ProgramLeaderEmail = &usr.Email
		}
	}
	return crs
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, c := range repo.db.courses {
		if c.CourseCode == crs.CourseCode {
			return course.Course{}, course.ErrCodeExists
		}
	}
	crs.ID = repo.db.nextID()
	repo.db.courses[crs.ID] = &crs
	return repo.withLeader(crs), nil
}

func (repo *courseRepository) FilterCourses(filter course.Filter) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.courses))
	for _, crs := range repo.db.courses {
		if filter.ProgramLeaderID != nil &&
			(crs.ProgramLeaderID == nil || *crs.ProgramLeaderID != *filter.ProgramLeaderID) {
			continue
		}
		courses = append(courses, repo.withLeader(*crs))
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID > courses[j].ID })
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.db.courses[id]; ok {
		return repo.withLeader(*crs), nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) UpdateCourse(crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.courses[crs.ID]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	for _, c := range repo.db.courses {
		if c.ID != crs.ID && c.CourseCode == crs.CourseCode {
			return course.Course{}, course.ErrCodeExists
		}
	}
	orig.CourseCode = crs.CourseCode
	orig.CourseName = crs.CourseName
	return repo.withLeader(*orig), nil
}

func (repo *courseRepository) DeleteCourse(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.courses, id)
	return nil
}
