package inmemdb

import (
	"fmt"
	"sort"

	"github.com/motebang/tlaleho/core/rating"
)

type ratingRepository struct {
	db *DB
}

var _ rating.Repository = (*ratingRepository)(nil)

func NewRatingRepository(db *DB) *ratingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating mirrors the ON DUPLICATE KEY UPDATE semantics: one row per
// (lecture, user), re-submission overwrites value and timestamp in place.
func (repo *ratingRepository) UpsertRating(r rating.Rating) (created bool, err error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, existing := range repo.db.ratings {
		if existing.LectureID == r.LectureID && existing.UserID == r.UserID {
			existing.Rating = r.Rating
			existing.CreatedAt = r.CreatedAt
			return false, nil
		}
	}
	r.ID = repo.db.nextID()
	repo.db.ratings[r.ID] = &r
	return true, nil
}

func (repo *ratingRepository) GetRatingValue(lectureID, userID int) (int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, r := range repo.db.ratings {
		if r.LectureID == lectureID && r.UserID == userID {
			return r.Rating, nil
		}
	}
	return 0, rating.ErrNotFound
}

func (repo *ratingRepository) AggregateByLecture(lectureID int) (rating.Summary, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var sum, count int
	raters := make(map[int]struct{})
	for _, r := range repo.db.ratings {
		if r.LectureID != lectureID {
			continue
		}
		sum += r.Rating
		count++
		raters[r.UserID] = struct{}{}
	}

	summary := rating.Summary{TotalRatings: count, UniqueRaters: len(raters)}
	if count > 0 {
		avg := fmt.Sprintf("%.1f", float64(sum)/float64(count))
		summary.AverageRating = &avg
	}
	return summary, nil
}

func (repo *ratingRepository) QueryRatingsByUser(userID int) ([]rating.Rating, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]rating.Rating, 0)
	for _, r := range repo.db.ratings {
		if r.UserID != userID {
			continue
		}
		row := *r
		if lec, ok := repo.db.lectures[r.LectureID]; ok {
			row.TopicTaught = lec.TopicTaught
			if crs, ok := repo.db.courses[lec.CourseID]; ok {
				row.CourseName = &crs.CourseName
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return rows, nil
}
