package mysqlrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/lecture"
)

const lectureSelect = `
	SELECT
		l.id,
		l.class_id,
		l.course_id,
		l.lecturer_id,
		l.week_of_reporting,
		DATE_FORMAT(l.date_of_lecture, '%Y-%m-%d') AS date_of_lecture,
		l.actual_students_present,
		l.topic_taught,
		l.learning_outcomes,
		l.recommendations,
		l.created_at,
		c.class_name,
		co.course_name,
		co.course_code,
		u.name AS lecturer_name,
		f.name AS faculty_name
	FROM lectures l
	JOIN classes c ON l.class_id = c.id
	JOIN courses co ON l.course_id = co.id
	JOIN users u ON l.lecturer_id = u.id
	LEFT JOIN faculties f ON c.faculty_id = f.id`

type lectureRepository struct {
	db *sqlx.DB
}

var _ lecture.Repository = (*lectureRepository)(nil)

func NewLectureRepository(db *sqlx.DB) *lectureRepository {
	return &lectureRepository{db: db}
}

func (repo *lectureRepository) CreateLecture(lec lecture.Lecture) (lecture.Lecture, error) {
	res, err := repo.db.Exec(
		`INSERT INTO lectures (class_id, course_id, lecturer_id, week_of_reporting, date_of_lecture,
			actual_students_present, topic_taught, learning_outcomes, recommendations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lec.ClassID, lec.CourseID, lec.LecturerID, lec.WeekOfReporting, lec.DateOfLecture,
		lec.ActualStudentsPresent, lec.TopicTaught, lec.LearningOutcomes, lec.Recommendations,
	)
	if err != nil {
		return lecture.Lecture{}, errors.Wrap(err, "inserting lecture")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return lecture.Lecture{}, errors.Wrap(err, "reading insert id")
	}
	return repo.GetLectureByID(int(id))
}

// FilterLectures narrows the WHERE clause per caller entitlement; scoping is
// part of the query, not a post-filter.
func (repo *lectureRepository) FilterLectures(filter lecture.Filter) ([]lecture.Lecture, error) {
	query := lectureSelect
	args := make([]interface{}, 0, 1)
	switch {
	case filter.LecturerID != nil:
		query += ` WHERE l.lecturer_id = ?`
		args = append(args, *filter.LecturerID)
	case filter.ClassID != nil:
		query += ` WHERE l.class_id = ?`
		args = append(args, *filter.ClassID)
	case filter.CourseID != nil:
		query += ` WHERE l.course_id = ?`
		args = append(args, *filter.CourseID)
	}
	query += ` ORDER BY l.created_at DESC`

	var lectures []lecture.Lecture
	err := repo.db.Select(&lectures, query, args...)
	return lectures, errors.Wrap(err, "querying lectures")
}

func (repo *lectureRepository) GetLectureByID(id int) (lecture.Lecture, error) {
	var lec lecture.Lecture
	err := repo.db.Get(&lec, lectureSelect+` WHERE l.id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return lecture.Lecture{}, lecture.ErrNotFound
		}
		return lecture.Lecture{}, errors.Wrap(err, "getting lecture by id")
	}
	return lec, nil
}

func (repo *lectureRepository) UpdateLecture(lec lecture.Lecture) (lecture.Lecture, error) {
	_, err := repo.db.Exec(
		`UPDATE lectures
		 SET class_id = ?, course_id = ?, week_of_reporting = ?, date_of_lecture = ?,
			actual_students_present = ?, topic_taught = ?, learning_outcomes = ?, recommendations = ?
		 WHERE id = ?`,
		lec.ClassID, lec.CourseID, lec.WeekOfReporting, lec.DateOfLecture,
		lec.ActualStudentsPresent, lec.TopicTaught, lec.LearningOutcomes, lec.Recommendations, lec.ID,
	)
	if err != nil {
		return lecture.Lecture{}, errors.Wrap(err, "updating lecture")
	}
	return repo.GetLectureByID(lec.ID)
}

func (repo *lectureRepository) DeleteLecture(id int) error {
	_, err := repo.db.Exec(`DELETE FROM lectures WHERE id = ?`, id)
	return errors.Wrap(err, "deleting lecture")
}
