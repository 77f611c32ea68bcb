package mysqlrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/class"
)

const classSelect = `
	SELECT
		c.id,
		c.class_name,
		c.faculty_id,
		c.total_registered_students,
		c.venue,
		c.scheduled_time,
		c.created_at,
		f.name AS faculty_name
	FROM classes c
	LEFT JOIN faculties f ON c.faculty_id = f.id`

type classRepository struct {
	db *sqlx.DB
}

var _ class.Repository = (*classRepository)(nil)

func NewClassRepository(db *sqlx.DB) *classRepository {
	return &classRepository{db: db}
}

func (repo *classRepository) CreateClass(cls class.Class) (class.Class, error) {
	res, err := repo.db.Exec(
		`INSERT INTO classes (class_name, faculty_id, total_registered_students, venue, scheduled_time)
		 VALUES (?, ?, ?, ?, ?)`,
		cls.ClassName, cls.FacultyID, cls.TotalRegisteredStudents, cls.Venue, cls.ScheduledTime,
	)
	if err != nil {
		return class.Class{}, errors.Wrap(err, "inserting class")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return class.Class{}, errors.Wrap(err, "reading insert id")
	}
	return repo.GetClassByID(int(id))
}

func (repo *classRepository) QueryAllClasses() ([]class.Class, error) {
	var classes []class.Class
	err := repo.db.Select(&classes, classSelect+` ORDER BY c.created_at DESC`)
	return classes, errors.Wrap(err, "querying classes")
}

func (repo *classRepository) GetClassByID(id int) (class.Class, error) {
	var cls class.Class
	err := repo.db.Get(&cls, classSelect+` WHERE c.id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return class.Class{}, class.ErrNotFound
		}
		return class.Class{}, errors.Wrap(err, "getting class by id")
	}
	return cls, nil
}

func (repo *classRepository) UpdateClass(cls class.Class) (class.Class, error) {
	_, err := repo.db.Exec(
		`UPDATE classes
		 SET class_name = ?, faculty_id = ?, total_registered_students = ?, venue = ?, scheduled_time = ?
		 WHERE id = ?`,
		cls.ClassName, cls.FacultyID, cls.TotalRegisteredStudents, cls.Venue, cls.ScheduledTime, cls.ID,
	)
	if err != nil {
		return class.Class{}, errors.Wrap(err, "updating class")
	}
	return repo.GetClassByID(cls.ID)
}

func (repo *classRepository) DeleteClass(id int) error {
	_, err := repo.db.Exec(`DELETE FROM classes WHERE id = ?`, id)
	return errors.Wrap(err, "deleting class")
}

func (repo *classRepository) QueryAllFaculties() ([]class.Faculty, error) {
	var faculties []class.Faculty
	err := repo.db.Select(&faculties, `SELECT id, name FROM faculties`)
	return faculties, errors.Wrap(err, "querying faculties")
}

func (repo *classRepository) GetFacultyByID(id int) (class.Faculty, error) {
	var fac class.Faculty
	err := repo.db.Get(&fac, `SELECT id, name FROM faculties WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return class.Faculty{}, class.ErrFacultyNotFound
		}
		return class.Faculty{}, errors.Wrap(err, "getting faculty by id")
	}
	return fac, nil
}
