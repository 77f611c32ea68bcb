package inmemdb

import (
	"sort"

	"github.com/motebang/tlaleho/core/assignment"
)

type assignmentRepository struct {
	db *DB
}

var _ assignment.Repository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db *DB) *assignmentRepository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) withJoins(a assignment.Assignment) assignment.Assignment {
	if cls, ok := repo.db.classes[a.ClassID]; ok {
		a.ClassName = &cls.ClassName
		a.TotalRegisteredStudents = cls.TotalRegisteredStudents
		a.Venue = cls.Venue
		a.ScheduledTime = cls.ScheduledTime
		a.FacultyID = cls.FacultyID
		if cls.FacultyID != nil {
			if fac, ok := repo.db.faculties[*cls.FacultyID]; ok {
				a.FacultyName = &fac.Name
			}
		}
	}
	if usr, ok := repo.db.users[a.LecturerID]; ok {
		a.LecturerName = &usr.Name
	}
	return a
}

func (repo *assignmentRepository) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, existing := range repo.db.assignments {
		if existing.LecturerID == a.LecturerID && existing.ClassID == a.ClassID && existing.CourseID == a.CourseID {
			return assignment.Assignment{}, assignment.ErrAlreadyAssigned
		}
	}
	a.ID = repo.db.nextID()
	repo.db.assignments[a.ID] = &a
	return repo.withJoins(a), nil
}

func (repo *assignmentRepository) FilterAssignments(filter assignment.Filter) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rows := make([]assignment.Assignment, 0, len(repo.db.assignments))
	for _, a := range repo.db.assignments {
		if filter.LecturerID != nil && a.LecturerID != *filter.LecturerID {
			continue
		}
		rows = append(rows, repo.withJoins(*a))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return rows, nil
}

func (repo *assignmentRepository) LecturerAssignedToClass(lecturerID, classID int) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, a := range repo.db.assignments {
		if a.LecturerID == lecturerID && a.ClassID == classID {
			return true, nil
		}
	}
	return false, nil
}
