package rating

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/motebang/tlaleho/core"
)

// Rating is a student's 1..5 score for a lecture; at most one row per
// (lecture, student), re-submission overwrites in place.
type Rating struct {
	ID        int       `json:"id,omitempty" db:"id"`
	LectureID int       `json:"lecture_id" db:"lecture_id"`
	UserID    int       `json:"user_id,omitempty" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// joined for the student dashboard list
	TopicTaught *string `json:"topic_taught,omitempty" db:"topic_taught"`
	CourseName  *string `json:"course_name,omitempty" db:"course_name"`
}

// Summary is the per-lecture aggregate view, recomputed on every request.
// AverageRating is rendered with one decimal; null when no ratings exist.
type Summary struct {
	AverageRating *string `json:"average_rating" db:"average_rating"`
	TotalRatings  int     `json:"total_ratings" db:"total_ratings"`
	UniqueRaters  int     `json:"unique_raters" db:"unique_raters"`
}

var errRatingRange = "Rating must be between 1 and 5"

type NewRating struct {
	LectureID int `json:"lecture_id" validate:"required"`
	Rating    int `json:"rating" validate:"required"`
}

// Validate rejects out-of-range values before any transition happens; a bad
// submission never reaches storage.
func (nr *NewRating) Validate(validate *validator.Validate) error {
	if err := validate.Struct(nr); err != nil {
		return err
	}
	if nr.Rating < 1 || nr.Rating > 5 {
		return core.NewValidationError(nil, core.FieldError{Field: "rating", Error: errRatingRange})
	}
	return nil
}
