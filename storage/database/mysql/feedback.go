package mysqlrepos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/feedback"
)

type feedbackRepository struct {
	db *sqlx.DB
}

var _ feedback.Repository = (*feedbackRepository)(nil)

func NewFeedbackRepository(db *sqlx.DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) CreateFeedback(fb feedback.Feedback) (feedback.Feedback, error) {
	res, err := repo.db.Exec(
		`INSERT INTO feedback (lecture_id, user_id, feedback_text) VALUES (?, ?, ?)`,
		fb.LectureID, fb.UserID, fb.FeedbackText,
	)
	if err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "inserting feedback")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "reading insert id")
	}
	fb.ID = int(id)
	return fb, nil
}

func (repo *feedbackRepository) QueryFeedbackByLecture(lectureID int) ([]feedback.Feedback, error) {
	var rows []feedback.Feedback
	err := repo.db.Select(&rows,
		`SELECT f.id, f.feedback_text, f.created_at, u.name AS user_name, u.role AS user_role
		 FROM feedback f
		 JOIN users u ON f.user_id = u.id
		 WHERE f.lecture_id = ?
		 ORDER BY f.created_at DESC`,
		lectureID,
	)
	return rows, errors.Wrap(err, "querying feedback")
}
