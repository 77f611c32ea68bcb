package assignment

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Assignment links a lecturer to a class+course pairing; unique on the
// triple.
type Assignment struct {
	ID         int       `json:"id" db:"id"`
	LecturerID int       `json:"lecturer_id" db:"lecturer_id"`
	ClassID    int       `json:"class_id" db:"class_id"`
	CourseID   int       `json:"course_id" db:"course_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	// joined for read endpoints
	ClassName               *string `json:"class_name,omitempty" db:"class_name"`
	TotalRegisteredStudents *int    `json:"total_registered_students,omitempty" db:"total_registered_students"`
	Venue                   *string `json:"venue,omitempty" db:"venue"`
	ScheduledTime           *string `json:"scheduled_time,omitempty" db:"scheduled_time"`
	FacultyID               *int    `json:"faculty_id,omitempty" db:"faculty_id"`
	FacultyName             *string `json:"faculty_name,omitempty" db:"faculty_name"`
	LecturerName            *string `json:"lecturer_name,omitempty" db:"lecturer_name"`
}

type NewAssignment struct {
	LecturerID int `json:"lecturer_id" validate:"required"`
	ClassID    int `json:"class_id" validate:"required"`
	CourseID   int `json:"course_id" validate:"required"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	return validate.Struct(na)
}
