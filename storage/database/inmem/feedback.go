package inmemdb

import (
	"sort"

	"github.com/motebang/tlaleho/core/feedback"
)

type feedbackRepository struct {
	db *DB
}

var _ feedback.Repository = (*feedbackRepository)(nil)

func NewFeedbackRepository(db *DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) withAuthor(fb feedback.Feedback) feedback.Feedback {
	if usr, ok := repo.db.users[fb.UserID]; ok {
		fb.UserName = &usr.Name
		role := usr.Role
		fb.UserRole = &role
	}
	return fb
}

func (repo *feedbackRepository) CreateFeedback(fb feedback.Feedback) (feedback.Feedback, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	fb.ID = repo.db.nextID()
	repo.db.feedback[fb.ID] = &fb
	return repo.withAuthor(fb), nil
}

func (repo *feedbackRepository) QueryFeedbackByLecture(lectureID int) ([]feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]feedback.Feedback, 0)
	for _, fb := range repo.db.feedback {
		if fb.LectureID != lectureID {
			continue
		}
		rows = append(rows, repo.withAuthor(*fb))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return rows, nil
}
