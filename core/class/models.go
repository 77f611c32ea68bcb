package class

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/motebang/tlaleho/core"
)

// Class carries no owner field; mutation rights derive purely from role.
type Class struct {
	ID                      int       `json:"id" db:"id"`
	ClassName               string    `json:"class_name" db:"class_name"`
	FacultyID               *int      `json:"faculty_id" db:"faculty_id"`
	TotalRegisteredStudents *int      `json:"total_registered_students" db:"total_registered_students"`
	Venue                   *string   `json:"venue" db:"venue"`
	ScheduledTime           *string   `json:"scheduled_time" db:"scheduled_time"`
	CreatedAt               time.Time `json:"created_at" db:"created_at"`

	// joined for read endpoints
	FacultyName *string `json:"faculty_name,omitempty" db:"faculty_name"`
}

// Faculty is read-only reference data.
type Faculty struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type NewClass struct {
	ClassName               string `json:"class_name" validate:"required"`
	FacultyID               int    `json:"faculty_id" validate:"required"`
	TotalRegisteredStudents int    `json:"total_registered_students" validate:"required"`
	Venue                   string `json:"venue" validate:"required"`
	ScheduledTime           string `json:"scheduled_time" validate:"required"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.ClassName = core.CleanString(nc.ClassName)
	nc.Venue = core.CleanString(nc.Venue)
	nc.ScheduledTime = core.CleanString(nc.ScheduledTime)
	return validate.Struct(nc)
}
