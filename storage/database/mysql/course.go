package mysqlrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/course"
)

const courseSelect = `
	SELECT
		c.id,
		c.course_code,
		c.course_name,
		c.program_leader_id,
		c.created_at,
		u.name AS program_leader_name,
		u.email AS program_leader_email
	FROM courses c
	LEFT JOIN users u ON c.program_leader_id = u.id`

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *sqlx.DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	res, err := repo.db.Exec(
		`INSERT INTO courses (course_code, course_name, program_leader_id) VALUES (?, ?, ?)`,
		crs.CourseCode, crs.CourseName, crs.ProgramLeaderID,
	)
	if err != nil {
		if isDuplicate(err) {
			return course.Course{}, course.ErrCodeExists
		}
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return course.Course{}, errors.Wrap(err, "reading insert id")
	}
	return repo.GetCourseByID(int(id))
}

// FilterCourses narrows the WHERE clause per caller entitlement; scoping is
// part of the query, not a post-filter.
func (repo *courseRepository) FilterCourses(filter course.Filter) ([]course.Course, error) {
	query := courseSelect
	args := make([]interface{}, 0, 1)
	if filter.ProgramLeaderID != nil {
		query += ` WHERE c.program_leader_id = ?`
		args = append(args, *filter.ProgramLeaderID)
	}
	query += ` ORDER BY c.created_at DESC`

	var courses []course.Course
	err := repo.db.Select(&courses, query, args...)
	return courses, errors.Wrap(err, "querying courses")
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	var crs course.Course
	err := repo.db.Get(&crs, courseSelect+` WHERE c.id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrap(err, "getting course by id")
	}
	return crs, nil
}

func (repo *courseRepository) UpdateCourse(crs course.Course) (course.Course, error) {
	_, err := repo.db.Exec(
		`UPDATE courses SET course_code = ?, course_name = ? WHERE id = ?`,
		crs.CourseCode, crs.CourseName, crs.ID,
	)
	if err != nil {
		if isDuplicate(err) {
			return course.Course{}, course.ErrCodeExists
		}
		return course.Course{}, errors.Wrap(err, "updating course")
	}
	return repo.GetCourseByID(crs.ID)
}

func (repo *courseRepository) DeleteCourse(id int) error {
	_, err := repo.db.Exec(`DELETE FROM courses WHERE id = ?`, id)
	return errors.Wrap(err, "deleting course")
}
