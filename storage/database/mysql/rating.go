package mysqlrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/motebang/tlaleho/core/rating"
)

type ratingRepository struct {
	db *sqlx.DB
}

var _ rating.Repository = (*ratingRepository)(nil)

func NewRatingRepository(db *sqlx.DB) *ratingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating is a single atomic statement keyed on the
// (lecture_id, user_id) unique index; concurrent submissions cannot race a
// check-then-act window. MySQL reports 1 affected row for an insert and 2
// for an overwrite.
func (repo *ratingRepository) UpsertRating(r rating.Rating) (bool, error) {
	res, err := repo.db.Exec(
		`INSERT INTO ratings (lecture_id, user_id, rating)
		 VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE rating = VALUES(rating), created_at = NOW()`,
		r.LectureID, r.UserID, r.Rating,
	)
	if err != nil {
		return false, errors.Wrap(err, "upserting rating")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "reading affected rows")
	}
	return affected == 1, nil
}

func (repo *ratingRepository) GetRatingValue(lectureID, userID int) (int, error) {
	var val int
	err := repo.db.Get(&val,
		`SELECT rating FROM ratings WHERE lecture_id = ? AND user_id = ?`,
		lectureID, userID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, rating.ErrNotFound
		}
		return 0, errors.Wrap(err, "getting rating value")
	}
	return val, nil
}

// AggregateByLecture recomputes the view by scanning matching rows; the
// average comes back formatted with one decimal, NULL when no rows match.
func (repo *ratingRepository) AggregateByLecture(lectureID int) (rating.Summary, error) {
	var summary rating.Summary
	err := repo.db.Get(&summary,
		`SELECT
			FORMAT(AVG(rating), 1) AS average_rating,
			COUNT(*) AS total_ratings,
			COUNT(DISTINCT user_id) AS unique_raters
		 FROM ratings
		 WHERE lecture_id = ?`,
		lectureID,
	)
	return summary, errors.Wrap(err, "aggregating ratings")
}

func (repo *ratingRepository) QueryRatingsByUser(userID int) ([]rating.Rating, error) {
	var rows []rating.Rating
	err := repo.db.Select(&rows,
		`SELECT r.lecture_id, r.rating, r.created_at, l.topic_taught, c.course_name
		 FROM ratings r
		 JOIN lectures l ON r.lecture_id = l.id
		 JOIN courses c ON l.course_id = c.id
		 WHERE r.user_id = ?
		 ORDER BY r.created_at DESC`,
		userID,
	)
	return rows, errors.Wrap(err, "querying user ratings")
}
