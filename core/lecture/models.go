package lecture

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/motebang/tlaleho/core"
)

// Lecture is a lecturer's report for one delivered session. Owner =
// LecturerID; owner or admin may mutate.
type Lecture struct {
	ID                    int       `json:"id" db:"id"`
	ClassID               int       `json:"class_id" db:"class_id"`
	CourseID              int       `json:"course_id" db:"course_id"`
	LecturerID            int       `json:"lecturer_id" db:"lecturer_id"`
	WeekOfReporting       *string   `json:"week_of_reporting" db:"week_of_reporting"`
	DateOfLecture         string    `json:"date_of_lecture" db:"date_of_lecture"`
	ActualStudentsPresent *int      `json:"actual_students_present" db:"actual_students_present"`
	TopicTaught           *string   `json:"topic_taught" db:"topic_taught"`
	LearningOutcomes      *string   `json:"learning_outcomes" db:"learning_outcomes"`
	Recommendations       *string   `json:"recommendations" db:"recommendations"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`

	// joined for read endpoints
	ClassName    *string `json:"class_name,omitempty" db:"class_name"`
	CourseName   *string `json:"course_name,omitempty" db:"course_name"`
	CourseCode   *string `json:"course_code,omitempty" db:"course_code"`
	LecturerName *string `json:"lecturer_name,omitempty" db:"lecturer_name"`
	FacultyName  *string `json:"faculty_name,omitempty" db:"faculty_name"`
}

func (l Lecture) OwnerID() int { return l.LecturerID }

// NewLecture carries the writable fields; lecturer_id is implied from the
// caller's token, never from the body.
type NewLecture struct {
	ClassID               int     `json:"class_id" validate:"required"`
	CourseID              int     `json:"course_id" validate:"required"`
	WeekOfReporting       *string `json:"week_of_reporting"`
	DateOfLecture         string  `json:"date_of_lecture" validate:"required"`
	ActualStudentsPresent *int    `json:"actual_students_present"`
	TopicTaught           *string `json:"topic_taught"`
	LearningOutcomes      *string `json:"learning_outcomes"`
	Recommendations       *string `json:"recommendations"`
}

func (nl *NewLecture) Validate(validate *validator.Validate) error {
	nl.DateOfLecture = core.CleanString(nl.DateOfLecture)
	return validate.Struct(nl)
}
