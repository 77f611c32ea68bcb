package course

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/motebang/tlaleho/core"
)

// Course is owned by the program leader it was created by; mutation rights
// derive from that owner field.
type Course struct {
	ID              int       `json:"id" db:"id"`
	CourseCode      string    `json:"course_code" db:"course_code"`
	CourseName      string    `json:"course_name" db:"course_name"`
	ProgramLeaderID *int      `json:"program_leader_id" db:"program_leader_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	// joined for read endpoints
	ProgramLeaderName  *string `json:"program_leader_name,omitempty" db:"program_leader_name"`
	ProgramLeaderEmail *string `json:"program_leader_email,omitempty" db:"program_leader_email"`
}

func (c Course) OwnerID() int {
	if c.ProgramLeaderID == nil {
		return 0
	}
	return *c.ProgramLeaderID
}

// NewCourse carries the writable fields; the owner is implied from the
// caller's token, never from the body.
type NewCourse struct {
	CourseCode string `json:"course_code" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.CourseCode = core.CleanString(nc.CourseCode)
	nc.CourseName = core.CleanString(nc.CourseName)
	return validate.Struct(nc)
}
