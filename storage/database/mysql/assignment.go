package mysqlrepos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/assignment"
)

const assignmentSelect = `
	SELECT
		la.id,
		la.lecturer_id,
		la.class_id,
		la.course_id,
		la.created_at,
		c.class_name,
		c.total_registered_students,
		c.venue,
		c.scheduled_time,
		c.faculty_id,
		f.name AS faculty_name,
		u.name AS lecturer_name
	FROM lecturer_assignments la
	JOIN classes c ON la.class_id = c.id
	JOIN users u ON la.lecturer_id = u.id
	LEFT JOIN faculties f ON c.faculty_id = f.id`

type assignmentRepository struct {
	db *sqlx.DB
}

var _ assignment.Repository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db *sqlx.DB) *assignmentRepository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	res, err := repo.db.Exec(
		`INSERT INTO lecturer_assignments (lecturer_id, class_id, course_id) VALUES (?, ?, ?)`,
		a.LecturerID, a.ClassID, a.CourseID,
	)
	if err != nil {
		if isDuplicate(err) {
			return assignment.Assignment{}, assignment.ErrAlreadyAssigned
		}
		return assignment.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "reading insert id")
	}
	a.ID = int(id)
	return a, nil
}

func (repo *assignmentRepository) FilterAssignments(filter assignment.Filter) ([]assignment.Assignment, error) {
	query := assignmentSelect
	args := make([]interface{}, 0, 1)
	if filter.LecturerID != nil {
		query += ` WHERE la.lecturer_id = ?`
		args = append(args, *filter.LecturerID)
	}

	var rows []assignment.Assignment
	err := repo.db.Select(&rows, query, args...)
	return rows, errors.Wrap(err, "querying assignments")
}

func (repo *assignmentRepository) LecturerAssignedToClass(lecturerID, classID int) (bool, error) {
	var count int
	err := repo.db.Get(&count,
		`SELECT COUNT(*) FROM lecturer_assignments WHERE lecturer_id = ? AND class_id = ?`,
		lecturerID, classID,
	)
	if err != nil {
		return false, errors.Wrap(err, "checking assignment")
	}
	return count > 0, nil
}
