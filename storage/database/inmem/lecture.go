package inmemdb

import (
	"sort"

	"github.com/motebang/tlaleho/core/lecture"
)

type lectureRepository struct {
	db *DB
}

var _ lecture.Repository = (*lectureRepository)(nil)

func NewLectureRepository(db *DB) *lectureRepository {
	return &lectureRepository{db: db}
}

func (repo *lectureRepository) withJoins(lec lecture.Lecture) lecture.Lecture {
	if cls, ok := repo.db.classes[lec.ClassID]; ok {
		lec.ClassName = &cls.ClassName
		if cls.FacultyID != nil {
			if fac, ok := repo.db.faculties[*cls.FacultyID]; ok {
				lec.FacultyName = &fac.Name
			}
		}
	}
	if crs, ok := repo.db.courses[lec.CourseID]; ok {
		lec.CourseName = &crs.CourseName
		lec.CourseCode = &crs.CourseCode
	}
	if usr, ok := repo.db.users[lec.LecturerID]; ok {
		lec.LecturerName = &usr.Name
	}
	return lec
}

func (repo *lectureRepository) CreateLecture(lec lecture.Lecture) (lecture.Lecture, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	lec.ID = repo.db.nextID()
	repo.db.lectures[lec.ID] = &lec
	return repo.withJoins(lec), nil
}

func (repo *lectureRepository) FilterLectures(filter lecture.Filter) ([]lecture.Lecture, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	lectures := make([]lecture.Lecture, 0, len(repo.db.lectures))
	for _, lec := range repo.db.lectures {
		if filter.LecturerID != nil && lec.LecturerID != *filter.LecturerID {
			continue
		}
		if filter.ClassID != nil && lec.ClassID != *filter.ClassID {
			continue
		}
		if filter.CourseID != nil && lec.CourseID != *filter.CourseID {
			continue
		}
		lectures = append(lectures, repo.withJoins(*lec))
	}
	sort.Slice(lectures, func(i, j int) bool { return lectures[i].ID > lectures[j].ID })
	return lectures, nil
}

func (repo *lectureRepository) GetLectureByID(id int) (lecture.Lecture, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if lec, ok := repo.db.lectures[id]; ok {
		return repo.withJoins(*lec), nil
	}
	return lecture.Lecture{}, lecture.ErrNotFound
}

func (repo *lectureRepository) UpdateLecture(lec lecture.Lecture) (lecture.Lecture, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.lectures[lec.ID]
	if !ok {
		return lecture.Lecture{}, lecture.ErrNotFound
	}
	orig.ClassID = lec.ClassID
	orig.CourseID = lec.CourseID
	orig.WeekOfReporting = lec.WeekOfReporting
	orig.DateOfLecture = lec.DateOfLecture
	orig.ActualStudentsPresent = lec.ActualStudentsPresent
	orig.TopicTaught = lec.TopicTaught
	orig.LearningOutcomes = lec.LearningOutcomes
	orig.Recommendations = lec.Recommendations
	return repo.withJoins(*orig), nil
}

func (repo *lectureRepository) DeleteLecture(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.lectures, id)
	return nil
}
