package inmemdb

import (
	"sort"

	"github.com/motebang/tlaleho/core/class"
)

type classRepository struct {
	db *DB
}

var _ class.Repository = (*classRepository)(nil)

func NewClassRepository(db *DB) *classRepository {
	return &classRepository{db: db}
}

func (repo *classRepository) withFaculty(cls class.Class) class.Class {
	if cls.FacultyID != nil {
		if fac, ok := repo.db.faculties[*cls.FacultyID]; ok {
			cls.FacultyName = &fac.Name
		}
	}
	return cls
}

func (repo *classRepository) CreateClass(cls class.Class) (class.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	cls.ID = repo.db.nextID()
	repo.db.classes[cls.ID] = &cls
	return repo.withFaculty(cls), nil
}

func (repo *classRepository) QueryAllClasses() ([]class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	classes := make([]class.Class, 0, len(repo.db.classes))
	for _, cls := range repo.db.classes {
		classes = append(classes, repo.withFaculty(*cls))
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID > classes[j].ID })
	return classes, nil
}

func (repo *classRepository) GetClassByID(id int) (class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if cls, ok := repo.db.classes[id]; ok {
		return repo.withFaculty(*cls), nil
	}
	return class.Class{}, class.ErrNotFound
}

func (repo *classRepository) UpdateClass(cls class.Class) (class.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.classes[cls.ID]
	if !ok {
		return class.Class{}, class.ErrNotFound
	}
	orig.ClassName = cls.ClassName
	orig.FacultyID = cls.FacultyID
	orig.TotalRegisteredStudents = cls.TotalRegisteredStudents
	orig.Venue = cls.Venue
	orig.ScheduledTime = cls.ScheduledTime
	return repo.withFaculty(*orig), nil
}

func (repo *classRepository) DeleteClass(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.classes, id)
	return nil
}

func (repo *classRepository) QueryAllFaculties() ([]class.Faculty, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	faculties := make([]class.Faculty, 0, len(repo.db.faculties))
	for _, fac := range repo.db.faculties {
		faculties = append(faculties, *fac)
	}
	sort.Slice(faculties, func(i, j int) bool { return faculties[i].ID < faculties[j].ID })
	return faculties, nil
}

func (repo *classRepository) GetFacultyByID(id int) (class.Faculty, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if fac, ok := repo.db.faculties[id]; ok {
		return *fac, nil
	}
	return class.Faculty{}, class.ErrFacultyNotFound
}
