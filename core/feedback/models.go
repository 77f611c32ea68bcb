package feedback

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/motebang/tlaleho/core"
	"github.com/motebang/tlaleho/core/authz"
)

// Feedback is append-only; a lecture may collect rows from several authors.
type Feedback struct {
	ID           int       `json:"id" db:"id"`
	LectureID    int       `json:"lecture_id,omitempty" db:"lecture_id"`
	UserID       int       `json:"user_id,omitempty" db:"user_id"`
	FeedbackText string    `json:"feedback_text" db:"feedback_text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// joined for read endpoints
	UserName *string     `json:"user_name,omitempty" db:"user_name"`
	UserRole *authz.Role `json:"user_role,omitempty" db:"user_role"`
}

type NewFeedback struct {
	LectureID    int    `json:"lecture_id" validate:"required"`
	FeedbackText string `json:"feedback_text" validate:"required"`
}

func (nf *NewFeedback) Validate(validate *validator.Validate) error {
	nf.FeedbackText = core.CleanString(nf.FeedbackText)
	return validate.Struct(nf)
}
